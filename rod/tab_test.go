package rod_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/jobsnap/rod"
	"github.com/stretchr/testify/assert"
)

func TestLazyLoad(t *testing.T) {
	t.Parallel()

	t.Run("pauses before each scroll and returns to top without a pause", func(t *testing.T) {
		t.Parallel()

		var steps []string
		eval := func(js string, args ...any) error {
			switch js {
			case rod.ScrollByJS:
				steps = append(steps, fmt.Sprintf("scroll %v", args[0]))
			case rod.ScrollTopJS:
				steps = append(steps, "top")
			default:
				t.Fatalf("unexpected script %q", js)
			}
			return nil
		}
		pause := func(_ context.Context, d time.Duration) error {
			steps = append(steps, "pause "+d.String())
			return nil
		}

		err := rod.LazyLoad(context.Background(), rod.DefaultLazyLoad(), eval, pause)

		assert.NoError(t, err)
		assert.Equal(t, []string{
			"pause 150ms", "scroll 300",
			"pause 150ms", "scroll 300",
			"pause 150ms", "scroll 300",
			"top",
			"pause 200ms",
		}, steps)
	})

	t.Run("stops at the first failed script", func(t *testing.T) {
		t.Parallel()

		var evals int
		errPageGone := errors.New("page gone")
		eval := func(string, ...any) error {
			evals++
			return errPageGone
		}
		pause := func(context.Context, time.Duration) error { return nil }

		err := rod.LazyLoad(context.Background(), rod.DefaultLazyLoad(), eval, pause)

		assert.ErrorIs(t, err, errPageGone)
		assert.Equal(t, 1, evals)
	})

	t.Run("returns pause errors", func(t *testing.T) {
		t.Parallel()

		var evals int
		eval := func(string, ...any) error {
			evals++
			return nil
		}
		pause := func(ctx context.Context, _ time.Duration) error { return ctx.Err() }
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := rod.LazyLoad(ctx, rod.DefaultLazyLoad(), eval, pause)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, evals)
	})
}
