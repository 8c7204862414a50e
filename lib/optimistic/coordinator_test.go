package optimistic

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type board struct {
	Columns map[string][]string
}

func appendCard(col, card string) func(board) board {
	return func(b board) board {
		out := board{Columns: map[string][]string{}}
		for k, v := range b.Columns {
			out.Columns[k] = append([]string{}, v...)
		}
		out.Columns[col] = append(out.Columns[col], card)
		return out
	}
}

func TestMutateAppliesBeforeCommit(t *testing.T) {
	c := NewCoordinator(board{Columns: map[string][]string{"applied": {"alice"}}})

	var seen []string
	err := c.Mutate(context.Background(), appendCard("screening", "alice"), func(ctx context.Context) error {
		// the local state is already updated while the commit runs
		seen = c.State().Columns["screening"]
		return nil
	})
	require.Nil(t, err)
	require.Equal(t, []string{"alice"}, seen)
	require.Equal(t, []string{"alice"}, c.State().Columns["screening"])
	require.Nil(t, c.Err())
}

func TestMutateRollsBackOnFailure(t *testing.T) {
	initial := board{Columns: map[string][]string{"applied": {"alice", "bob"}}}
	c := NewCoordinator(initial)

	commitErr := errors.New("simulated server instability")
	err := c.Mutate(context.Background(), appendCard("offer", "bob"), func(ctx context.Context) error {
		return commitErr
	})
	require.Equal(t, commitErr, err)
	require.Equal(t, initial, c.State())
	require.Equal(t, commitErr, c.Err())
}

func TestErrorAutoClears(t *testing.T) {
	c := NewCoordinator(board{Columns: map[string][]string{}}).
		WithErrorClearDelay(30 * time.Millisecond)

	err := c.Mutate(context.Background(), appendCard("applied", "x"), func(ctx context.Context) error {
		return errors.New("boom")
	})
	require.NotNil(t, err)
	require.NotNil(t, c.Err())

	require.Eventually(t, func() bool {
		return c.Err() == nil
	}, time.Second, 5*time.Millisecond)
}

func TestSuccessClearsSurfacedError(t *testing.T) {
	c := NewCoordinator(board{Columns: map[string][]string{}}).
		WithErrorClearDelay(time.Hour)

	_ = c.Mutate(context.Background(), appendCard("applied", "x"), func(ctx context.Context) error {
		return errors.New("boom")
	})
	require.NotNil(t, c.Err())

	err := c.Mutate(context.Background(), appendCard("applied", "y"), func(ctx context.Context) error {
		return nil
	})
	require.Nil(t, err)
	require.Nil(t, c.Err())
	require.Equal(t, []string{"y"}, c.State().Columns["applied"])
}
