package relayer

import (
	"encoding/json"
)

// StatusSuccess is the reply status the relayer reports for a completed
// operation. Any other status, including a missing one, is a failure.
const StatusSuccess = "success"

// Reply is the generic {status, result} envelope the relayer prints as the
// last line of its standard output.
type Reply struct {
	Status string          `json:"status"`
	Result json.RawMessage `json:"result"`
}

// Result pairs a reply with the command that produced it. It is transient:
// it exists only to carry one invocation's reply to its unwrap site.
type Result[T any] struct {
	cmd   Command[T]
	reply Reply
}

// NewResult wraps a raw reply for later unwrapping by cmd's decoder.
func NewResult[T any](cmd Command[T], reply Reply) Result[T] {
	return Result[T]{cmd: cmd, reply: reply}
}

// Success returns the decoded typed result when the reply status is
// "success". Any other status yields an ExpectedSuccessError carrying the
// command name, the actual status, and the raw payload. A missing or empty
// status reads as "unknown" and a missing payload as an empty structure.
func (r Result[T]) Success() (T, error) {
	status := r.reply.Status
	if status == "" {
		status = "unknown"
	}
	result := r.reply.Result
	if len(result) == 0 {
		result = json.RawMessage(`{}`)
	}
	if status != StatusSuccess {
		var zero T
		return zero, &ExpectedSuccessError{
			Op:     r.cmd.Name(),
			Status: status,
			Result: result,
		}
	}
	return r.cmd.Decode(result)
}
