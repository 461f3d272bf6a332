package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/strat-lab/cogward/pkg/cli/config"
	"github.com/strat-lab/cogward/pkg/domain/types"
)

const rubricTOML = `
[[impact]]
score = 1
name = "Marginal"

[[impact]]
score = 5
name = "Decisive"
description = "Removes the capability outright"

[[attainability]]
score = 3
name = "Feasible"

[[follow_up]]
score = 2
name = "Limited"
`

func writeRubric(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rubric.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadRubricSchema(t *testing.T) {
	schema, err := config.LoadRubricSchema(writeRubric(t, rubricTOML))
	gt.NoError(t, err).Required()

	gt.S(t, schema.ImpactLabel(types.Score(5))).Equal("Decisive")
	gt.S(t, schema.ImpactLabel(types.Score(1))).Equal("Marginal")
	gt.S(t, schema.AttainabilityLabel(types.Score(3))).Equal("Feasible")
	gt.S(t, schema.FollowUpLabel(types.Score(2))).Equal("Limited")

	// Undefined levels have no label
	gt.S(t, schema.ImpactLabel(types.Score(2))).Equal("")
}

func TestLoadRubricSchema_OutOfRangeScore(t *testing.T) {
	_, err := config.LoadRubricSchema(writeRubric(t, `
[[impact]]
score = 6
name = "Too high"
`))
	gt.Error(t, err)
}

func TestLoadRubricSchema_DuplicateScore(t *testing.T) {
	_, err := config.LoadRubricSchema(writeRubric(t, `
[[impact]]
score = 3
name = "One"

[[impact]]
score = 3
name = "Two"
`))
	gt.Error(t, err)
}

func TestLoadRubricSchema_MissingFile(t *testing.T) {
	_, err := config.LoadRubricSchema(filepath.Join(t.TempDir(), "missing.toml"))
	gt.Error(t, err)
}
