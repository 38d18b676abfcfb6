// Package relayer describes the operations of an external IBC relayer
// process and runs them as subprocess invocations, decoding the relayer's
// structured JSON replies into typed results.
package relayer

import (
	"context"
	"encoding/json"
)

// Command describes one relayer operation of result type T: its operation
// name, the rendering of its parameters into positional argument tokens,
// and the decoding of a raw reply payload into the typed result.
//
// Name and Args are pure; the relayer is positional-argument sensitive, so
// Args must be deterministic and must omit absent optional flags entirely
// rather than emit empty tokens.
type Command[T any] interface {
	// Name returns the space-separated operation name tokens, e.g.
	// "tx raw create-client".
	Name() string

	// Args returns the ordered parameter tokens appended after the
	// operation name.
	Args() []string

	// Decode converts the raw "result" payload of a successful reply into
	// the typed result.
	Decode(result json.RawMessage) (T, error)
}

// Executor invokes a relayer operation and returns its raw reply envelope.
type Executor interface {
	Execute(ctx context.Context, name string, args []string) (Reply, error)
}

// Run executes cmd through x and pairs the reply with the command so the
// caller can unwrap it into the typed result.
func Run[T any](ctx context.Context, x Executor, cmd Command[T]) (Result[T], error) {
	reply, err := x.Execute(ctx, cmd.Name(), cmd.Args())
	if err != nil {
		return Result[T]{}, err
	}
	return NewResult(cmd, reply), nil
}
