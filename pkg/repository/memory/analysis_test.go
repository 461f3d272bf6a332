package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/strat-lab/cogward/pkg/domain/model"
	"github.com/strat-lab/cogward/pkg/domain/types"
	"github.com/strat-lab/cogward/pkg/repository/memory"
)

func testAnalysis(name string) *model.Analysis {
	return &model.Analysis{
		Name:   name,
		Rubric: types.RubricStandard,
		Snapshot: &model.Snapshot{
			CentersOfGravity: []*model.CenterOfGravity{
				{ID: "c1", Description: "Command network", Actor: types.ActorAdversary, Domain: types.DomainCyber},
			},
		},
	}
}

func TestAnalysisRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Put assigns id and timestamps", func(t *testing.T) {
		repo := memory.New()

		created, err := repo.Analysis().Put(ctx, testAnalysis("op-sabre"))
		gt.NoError(t, err).Required()

		gt.S(t, created.ID.String()).NotEqual("")
		gt.B(t, created.CreatedAt.IsZero()).False()
		gt.B(t, created.UpdatedAt.IsZero()).False()
		gt.V(t, created.Name).Equal("op-sabre")
	})

	t.Run("Put preserves CreatedAt on update", func(t *testing.T) {
		repo := memory.New()

		created, err := repo.Analysis().Put(ctx, testAnalysis("op-sabre"))
		gt.NoError(t, err).Required()

		time.Sleep(10 * time.Millisecond)

		created.Name = "op-sabre-v2"
		updated, err := repo.Analysis().Put(ctx, created)
		gt.NoError(t, err).Required()

		gt.V(t, updated.ID).Equal(created.ID)
		gt.V(t, updated.CreatedAt).Equal(created.CreatedAt)
		gt.B(t, updated.UpdatedAt.After(created.UpdatedAt)).True()
	})

	t.Run("Get returns a deep copy", func(t *testing.T) {
		repo := memory.New()

		created, err := repo.Analysis().Put(ctx, testAnalysis("op-sabre"))
		gt.NoError(t, err).Required()

		got, err := repo.Analysis().Get(ctx, created.ID)
		gt.NoError(t, err).Required()

		got.Snapshot.CentersOfGravity[0].Description = "tampered"

		again, err := repo.Analysis().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.V(t, again.Snapshot.CentersOfGravity[0].Description).Equal("Command network")
	})

	t.Run("Get unknown id returns ErrNotFound", func(t *testing.T) {
		repo := memory.New()

		_, err := repo.Analysis().Get(ctx, model.AnalysisID("missing"))
		gt.Error(t, err)
		gt.B(t, errors.Is(err, memory.ErrNotFound)).True()
	})

	t.Run("List returns newest first", func(t *testing.T) {
		repo := memory.New()

		first, err := repo.Analysis().Put(ctx, testAnalysis("first"))
		gt.NoError(t, err).Required()

		time.Sleep(10 * time.Millisecond)

		second, err := repo.Analysis().Put(ctx, testAnalysis("second"))
		gt.NoError(t, err).Required()

		analyses, err := repo.Analysis().List(ctx)
		gt.NoError(t, err).Required()
		gt.A(t, analyses).Length(2)
		gt.V(t, analyses[0].ID).Equal(second.ID)
		gt.V(t, analyses[1].ID).Equal(first.ID)
	})

	t.Run("Delete removes the analysis", func(t *testing.T) {
		repo := memory.New()

		created, err := repo.Analysis().Put(ctx, testAnalysis("op-sabre"))
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Analysis().Delete(ctx, created.ID))

		_, err = repo.Analysis().Get(ctx, created.ID)
		gt.B(t, errors.Is(err, memory.ErrNotFound)).True()

		err = repo.Analysis().Delete(ctx, created.ID)
		gt.B(t, errors.Is(err, memory.ErrNotFound)).True()
	})
}
