package relayer

import (
	"encoding/json"
	"fmt"
)

// ExpectedSuccessError reports a reply whose status was not "success". It
// is fatal to a run: no caller in the orchestration recovers from it.
type ExpectedSuccessError struct {
	Op     string
	Status string
	Result json.RawMessage
}

func (e *ExpectedSuccessError) Error() string {
	return fmt.Sprintf("command %q failed: expected status %q, got %q: %s",
		e.Op, StatusSuccess, e.Status, string(e.Result))
}

// DecodeError reports relayer output that could not be decoded, either the
// last stdout line failing to parse as JSON or a well-formed reply whose
// payload does not have the shape the operation expects.
type DecodeError struct {
	Op   string
	Data []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("command %q produced undecodable output %q: %v",
		e.Op, string(e.Data), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
