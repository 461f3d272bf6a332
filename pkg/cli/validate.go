package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/strat-lab/cogward/pkg/cli/config"
	"github.com/strat-lab/cogward/pkg/domain/model"
	"github.com/strat-lab/cogward/pkg/engine"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var input string
	var rubricCfg config.Rubric

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Snapshot JSON file to check for referential integrity",
			Required:    true,
			Sources:     cli.EnvVars("COGWARD_INPUT"),
			Destination: &input,
		},
	}
	flags = append(flags, rubricCfg.Flags()...)

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Check a snapshot for dangling references and duplicate ids",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			rubric, err := rubricCfg.Kind()
			if err != nil {
				return err
			}
			if _, err := rubricCfg.Schema(); err != nil {
				return goerr.Wrap(err, "rubric config validation failed")
			}

			// #nosec G304 - path is expected to be provided by CLI argument
			data, err := os.ReadFile(input)
			if err != nil {
				return goerr.Wrap(err, "failed to read snapshot file", goerr.V("path", input))
			}

			snapshot, err := model.DecodeSnapshot(data, rubric)
			if err != nil {
				return err
			}

			graph := engine.Resolve(snapshot)
			cogs, caps, reqs, vulns := snapshot.Counts()
			fmt.Printf("entities: %d COGs, %d capabilities, %d requirements, %d vulnerabilities\n",
				cogs, caps, reqs, vulns)

			orphans := graph.Orphans()
			if len(orphans) == 0 {
				color.Green("no referential integrity issues found")
				return nil
			}

			for _, orphan := range orphans {
				switch orphan.Reason {
				case engine.OrphanDuplicateID:
					color.Red("duplicate id: %s %q collides with an earlier entity",
						orphan.Tier, orphan.EntityID)
				default:
					color.Yellow("dangling reference: %s %q points at missing parent %q",
						orphan.Tier, orphan.EntityID, orphan.ParentID)
				}
			}
			fmt.Printf("%d orphaned entities are excluded from every traversal\n", len(orphans))

			// Orphans are warnings, not failures
			return nil
		},
	}
}
