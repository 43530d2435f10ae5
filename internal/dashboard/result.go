package dashboard

// State is the lifecycle of a page load.
type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "loading"
	}
}

// Result is the settled outcome of a page load: exactly one of Value or Err is meaningful.
type Result[T any] struct {
	Value   T
	Err     error
	settled bool
}

// Settle records the outcome of a load. A non-nil err discards v.
func Settle[T any](v T, err error) Result[T] {
	if err != nil {
		var zero T
		return Result[T]{Value: zero, Err: err, settled: true}
	}
	return Result[T]{Value: v, settled: true}
}

// State reports whether the result is still loading, ready or failed.
func (r Result[T]) State() State {
	switch {
	case !r.settled:
		return StateLoading
	case r.Err != nil:
		return StateError
	default:
		return StateReady
	}
}
