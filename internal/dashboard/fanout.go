package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Call is one named branch of a fan-out. Run must only write its own result.
type Call struct {
	Name string
	Run  func(ctx context.Context) error
}

// AggregateError reports the branch that failed a page load.
type AggregateError struct {
	Page string
	Call string
	Err  error
}

func (e *AggregateError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Page, e.Call, e.Err)
}

func (e *AggregateError) Unwrap() error { return e.Err }

// FanOut runs every call concurrently and waits for all of them.
// The first failure is returned as an *AggregateError and cancels the context
// seen by the remaining calls; their results are discarded.
func FanOut(ctx context.Context, page string, calls ...Call) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, call := range calls {
		g.Go(func() error {
			if err := call.Run(gctx); err != nil {
				return &AggregateError{Page: page, Call: call.Name, Err: err}
			}
			return nil
		})
	}
	return g.Wait()
}
