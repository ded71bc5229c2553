//go:build unit

package generation_test

import (
	"context"
	"sync"
	"testing"

	"theater-console/internal/pkg/generation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker(t *testing.T) {
	t.Run("newer request supersedes and cancels the older one", func(t *testing.T) {
		tr := generation.NewTracker[string]()

		first, firstCtx := tr.Begin(context.Background(), "screen-1")
		second, secondCtx := tr.Begin(context.Background(), "screen-1")

		assert.Greater(t, second.Generation(), first.Generation())
		assert.False(t, first.Current())
		assert.True(t, second.Current())
		require.ErrorIs(t, firstCtx.Err(), context.Canceled)
		require.NoError(t, secondCtx.Err())

		assert.True(t, second.Done())
		assert.False(t, first.Done())
	})

	t.Run("stale response resolving last is still discarded", func(t *testing.T) {
		tr := generation.NewTracker[string]()

		old, _ := tr.Begin(context.Background(), "k")
		fresh, _ := tr.Begin(context.Background(), "k")

		assert.True(t, fresh.Done())
		assert.False(t, old.Done())
	})

	t.Run("keys are independent", func(t *testing.T) {
		tr := generation.NewTracker[string]()

		a, aCtx := tr.Begin(context.Background(), "a")
		b, _ := tr.Begin(context.Background(), "b")

		assert.True(t, a.Current())
		assert.True(t, b.Current())
		require.NoError(t, aCtx.Err())
		assert.True(t, a.Done())
		assert.True(t, b.Done())
	})

	t.Run("done cancels the derived context", func(t *testing.T) {
		tr := generation.NewTracker[int]()

		tk, ctx := tr.Begin(context.Background(), 1)
		assert.True(t, tk.Done())
		require.ErrorIs(t, ctx.Err(), context.Canceled)
	})

	t.Run("concurrent begins leave exactly one winner", func(t *testing.T) {
		tr := generation.NewTracker[string]()

		const n = 32
		tickets := make([]*generation.Ticket[string], n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				tickets[i], _ = tr.Begin(context.Background(), "same")
			}()
		}
		wg.Wait()

		current := 0
		for _, tk := range tickets {
			if tk.Current() {
				current++
			}
		}
		assert.Equal(t, 1, current)
	})
}
