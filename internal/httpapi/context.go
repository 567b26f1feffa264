package httpapi

import (
	"context"
)

// serverBaseCtx is canceled when `petra serve` begins shutting down. Prediction
// handlers derive their upstream context from it so a slow inference call
// does not hold the process past the shutdown grace period.
var serverBaseCtx = context.Background()

// SetBaseContext installs the shutdown context. nil restores Background.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	serverBaseCtx = ctx
}

// joinContexts returns a context canceled by whichever of shutdown or the
// client request ends first. cancel releases the watcher goroutine and must
// be deferred by the handler.
func joinContexts(shutdown, req context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-shutdown.Done():
		case <-req.Done():
		case <-ctx.Done():
		}
		cancel()
	}()
	return ctx, cancel
}
