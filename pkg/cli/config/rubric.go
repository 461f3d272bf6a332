package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	domainConfig "github.com/strat-lab/cogward/pkg/domain/model/config"
	"github.com/strat-lab/cogward/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Rubric holds CLI flags for rubric selection and level labels
type Rubric struct {
	kind       string
	configPath string
}

// Flags returns CLI flags for rubric configuration
func (x *Rubric) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "rubric",
			Usage:       "Scoring rubric to read (STANDARD or CUSTOM)",
			Category:    "Rubric",
			Value:       types.RubricStandard.String(),
			Sources:     cli.EnvVars("COGWARD_RUBRIC"),
			Destination: &x.kind,
		},
		&cli.StringFlag{
			Name:        "rubric-config",
			Usage:       "TOML file defining rubric level labels",
			Category:    "Rubric",
			Sources:     cli.EnvVars("COGWARD_RUBRIC_CONFIG"),
			Destination: &x.configPath,
		},
	}
}

// Kind returns the selected rubric kind
func (x *Rubric) Kind() (types.RubricKind, error) {
	return types.ParseRubricKind(types.RubricKind(x.kind).Normalize().String())
}

// Schema loads the rubric level labels, falling back to the standard levels
// when no config file is given
func (x *Rubric) Schema() (*domainConfig.RubricSchema, error) {
	if x.configPath == "" {
		return domainConfig.DefaultRubricSchema(), nil
	}
	return LoadRubricSchema(x.configPath)
}

// rubricFile is the TOML shape of a rubric label configuration
type rubricFile struct {
	Impact        []rubricLevel `toml:"impact"`
	Attainability []rubricLevel `toml:"attainability"`
	FollowUp      []rubricLevel `toml:"follow_up"`
}

type rubricLevel struct {
	Score       int    `toml:"score"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

func toLevels(levels []rubricLevel) []domainConfig.LevelDefinition {
	defs := make([]domainConfig.LevelDefinition, 0, len(levels))
	for _, level := range levels {
		defs = append(defs, domainConfig.LevelDefinition{
			Score:       types.Score(level.Score),
			Name:        level.Name,
			Description: level.Description,
		})
	}
	return defs
}

// LoadRubricSchema loads rubric level labels from a TOML file
func LoadRubricSchema(path string) (*domainConfig.RubricSchema, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read rubric config", goerr.V("path", path))
	}

	var file rubricFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse rubric config", goerr.V("path", path))
	}

	schema := &domainConfig.RubricSchema{
		Impact:        toLevels(file.Impact),
		Attainability: toLevels(file.Attainability),
		FollowUp:      toLevels(file.FollowUp),
	}
	if err := schema.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid rubric config", goerr.V("path", path))
	}

	return schema, nil
}
