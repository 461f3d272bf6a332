package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/m-mizutani/goerr/v2"
	"github.com/strat-lab/cogward/pkg/cli/config"
	"github.com/strat-lab/cogward/pkg/domain/model"
	domainConfig "github.com/strat-lab/cogward/pkg/domain/model/config"
	"github.com/strat-lab/cogward/pkg/domain/types"
	"github.com/strat-lab/cogward/pkg/engine"
	"github.com/strat-lab/cogward/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// placeholder is what empty free-text fields render as. Defaulting happens
// only here at the presentation boundary, never inside the engine.
const placeholder = "-"

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func scoreLabel(score types.Score, label string) string {
	if label == "" {
		return fmt.Sprintf("%d", score.Int())
	}
	return fmt.Sprintf("%d (%s)", score.Int(), label)
}

func cmdAnalyze() *cli.Command {
	var input string
	var format string
	var excluded []string
	var rubricCfg config.Rubric

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Snapshot JSON file exported by the editing layer",
			Required:    true,
			Sources:     cli.EnvVars("COGWARD_INPUT"),
			Destination: &input,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Output format (table, csv or json)",
			Value:       "table",
			Sources:     cli.EnvVars("COGWARD_FORMAT"),
			Destination: &format,
		},
		&cli.StringSliceFlag{
			Name:        "exclude",
			Aliases:     []string{"x"},
			Usage:       "Entity id to neutralize in a what-if simulation (repeatable)",
			Destination: &excluded,
		},
	}
	flags = append(flags, rubricCfg.Flags()...)

	return &cli.Command{
		Name:    "analyze",
		Aliases: []string{"a"},
		Usage:   "Rank vulnerabilities and summarize COGs from a snapshot file",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			rubric, err := rubricCfg.Kind()
			if err != nil {
				return err
			}
			schema, err := rubricCfg.Schema()
			if err != nil {
				return err
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
			for _, orphan := range graph.Orphans() {
				logging.Default().Warn("orphaned entity excluded from graph",
					"tier", string(orphan.Tier),
					"entity_id", orphan.EntityID,
					"parent_id", orphan.ParentID,
					"reason", string(orphan.Reason),
				)
			}

			sub := graph.Filter(excluded)
			ranked := engine.Rank(sub.Vulnerabilities)
			summaries := sub.SummarizeAll()

			switch format {
			case "table", "csv":
				renderTables(os.Stdout, ranked, summaries, schema, format == "csv")
				return nil
			case "json":
				return renderJSON(os.Stdout, ranked, summaries)
			default:
				return goerr.New("invalid output format", goerr.V("format", format))
			}
		},
	}
}

func renderTables(out io.Writer, ranked []engine.RankedVulnerability, summaries []engine.CoGSummary, schema *domainConfig.RubricSchema, asCSV bool) {
	matrix := table.NewWriter()
	matrix.SetOutputMirror(out)
	matrix.SetTitle("Targeting Matrix")
	matrix.AppendHeader(table.Row{"Rank", "ID", "Vulnerability", "Type", "Impact", "Attainability", "Follow-Up", "Score", "Expected Effect"})
	for _, item := range ranked {
		vuln := item.Vulnerability
		factors := vuln.Scoring.Factors
		matrix.AppendRow(table.Row{
			item.Priority,
			vuln.ID.String(),
			orPlaceholder(vuln.Vulnerability),
			vuln.Type.String(),
			scoreLabel(factors.Impact, schema.ImpactLabel(factors.Impact)),
			scoreLabel(factors.Attainability, schema.AttainabilityLabel(factors.Attainability)),
			scoreLabel(factors.FollowUp, schema.FollowUpLabel(factors.FollowUp)),
			item.Composite,
			orPlaceholder(vuln.ExpectedEffect),
		})
	}

	rollup := table.NewWriter()
	rollup.SetOutputMirror(out)
	rollup.SetTitle("COG Rollup")
	rollup.AppendHeader(table.Row{"COG", "Capabilities", "Requirements", "Vulnerabilities", "Avg Score"})
	for _, summary := range summaries {
		rollup.AppendRow(table.Row{
			summary.CoGID.String(),
			summary.CapabilityCount,
			summary.RequirementCount,
			summary.VulnerabilityCount,
			fmt.Sprintf("%.2f", summary.AverageScore),
		})
	}

	if asCSV {
		matrix.RenderCSV()
		rollup.RenderCSV()
		return
	}
	matrix.SetStyle(table.StyleLight)
	rollup.SetStyle(table.StyleLight)
	matrix.Render()
	rollup.Render()
}

type analyzeOutput struct {
	Rankings  []rankingOutput `json:"rankings"`
	Summaries []summaryOutput `json:"summaries"`
}

type rankingOutput struct {
	Priority      int    `json:"priority"`
	ID            string `json:"id"`
	Vulnerability string `json:"vulnerability"`
	Type          string `json:"vulnerability_type"`
	Impact        int    `json:"impact"`
	Attainability int    `json:"attainability"`
	FollowUp      int    `json:"follow_up"`
	Composite     int    `json:"composite"`
}

type summaryOutput struct {
	CoGID              string  `json:"cog_id"`
	CapabilityCount    int     `json:"capability_count"`
	RequirementCount   int     `json:"requirement_count"`
	VulnerabilityCount int     `json:"vulnerability_count"`
	AverageScore       float64 `json:"average_score"`
}

func renderJSON(out io.Writer, ranked []engine.RankedVulnerability, summaries []engine.CoGSummary) error {
	output := analyzeOutput{
		Rankings:  make([]rankingOutput, 0, len(ranked)),
		Summaries: make([]summaryOutput, 0, len(summaries)),
	}

	for _, item := range ranked {
		vuln := item.Vulnerability
		factors := vuln.Scoring.Factors
		output.Rankings = append(output.Rankings, rankingOutput{
			Priority:      item.Priority,
			ID:            vuln.ID.String(),
			Vulnerability: vuln.Vulnerability,
			Type:          vuln.Type.String(),
			Impact:        factors.Impact.Int(),
			Attainability: factors.Attainability.Int(),
			FollowUp:      factors.FollowUp.Int(),
			Composite:     item.Composite,
		})
	}
	for _, summary := range summaries {
		output.Summaries = append(output.Summaries, summaryOutput{
			CoGID:              summary.CoGID.String(),
			CapabilityCount:    summary.CapabilityCount,
			RequirementCount:   summary.RequirementCount,
			VulnerabilityCount: summary.VulnerabilityCount,
			AverageScore:       summary.AverageScore,
		})
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return goerr.Wrap(err, "failed to encode output")
	}
	return nil
}
