package topic_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracker_api/internal/database/dbtest"
	"tracker_api/internal/domain"
	"tracker_api/internal/question"
	"tracker_api/internal/topic"
)

func TestStore_CreateAndGet(t *testing.T) {
	db := dbtest.Setup(t)
	store := topic.NewStore(db, question.NewStore(db))
	ctx := context.Background()

	created, err := store.Create(ctx, topic.CreateInput{Name: "Arrays", Description: "two pointers"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Arrays", got.Name)
	assert.Equal(t, "two pointers", got.Description)
	assert.NotNil(t, got.Questions)
	assert.Empty(t, got.Questions)
}

func TestStore_GetMissing(t *testing.T) {
	db := dbtest.Setup(t)
	store := topic.NewStore(db, question.NewStore(db))

	_, err := store.Get(context.Background(), 4242)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ListWithQuestions(t *testing.T) {
	db := dbtest.Setup(t)
	questions := question.NewStore(db)
	store := topic.NewStore(db, questions)
	ctx := context.Background()

	arrays, err := store.Create(ctx, topic.CreateInput{Name: "Arrays"})
	require.NoError(t, err)
	graphs, err := store.Create(ctx, topic.CreateInput{Name: "Graphs"})
	require.NoError(t, err)
	_, err = store.Create(ctx, topic.CreateInput{Name: "Empty"})
	require.NoError(t, err)

	_, err = questions.Create(ctx, arrays.ID, question.CreateInput{Title: "Two Sum", IsSolved: true})
	require.NoError(t, err)
	_, err = questions.Create(ctx, graphs.ID, question.CreateInput{Title: "BFS", IsSolved: true})
	require.NoError(t, err)
	_, err = questions.Create(ctx, graphs.ID, question.CreateInput{Title: "Dijkstra"})
	require.NoError(t, err)

	all, err := store.ListWithQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Len(t, all[0].Questions, 1)
	assert.Len(t, all[1].Questions, 2)
	assert.Empty(t, all[2].Questions)
	assert.Equal(t, int64(2), domain.CountCompleted(all))

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	qs, err := store.ListQuestions(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, qs)
}
