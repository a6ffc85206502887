package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// flightTimeout bounds a shared fetch, which outlives any single caller.
const flightTimeout = 45 * time.Second

// goSafe runs fn on g and converts a panic into an error for that task.
func goSafe(g *errgroup.Group, fn func() error) {
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Msg("recovered panic in worker")
				err = fmt.Errorf("internal error: %v", r)
			}
		}()
		return fn()
	})
}

// detach returns a context for work shared by several callers. It keeps the
// values of ctx but not its cancellation.
func detach(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), flightTimeout)
}
