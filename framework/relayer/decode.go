package relayer

import (
	"encoding/json"
	"fmt"
)

// firstElement returns the first element of a reply payload. Successful
// operations report their outcome as an array whose first element is the
// event of interest.
func firstElement(op string, result json.RawMessage) (json.RawMessage, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(result, &elems); err != nil {
		return nil, &DecodeError{Op: op, Data: result, Err: err}
	}
	if len(elems) == 0 {
		return nil, &DecodeError{Op: op, Data: result, Err: fmt.Errorf("empty result array")}
	}
	return elems[0], nil
}

// taggedResult extracts the payload tagged with the given event name from
// the first element of the reply, e.g. {"CreateClient": {...}}.
func taggedResult(op string, result json.RawMessage, tag string) (json.RawMessage, error) {
	elem, err := firstElement(op, result)
	if err != nil {
		return nil, err
	}
	var tags map[string]json.RawMessage
	if err := json.Unmarshal(elem, &tags); err != nil {
		return nil, &DecodeError{Op: op, Data: elem, Err: err}
	}
	payload, ok := tags[tag]
	if !ok {
		return nil, &DecodeError{Op: op, Data: elem, Err: fmt.Errorf("missing %q tag", tag)}
	}
	return payload, nil
}

// flatResult returns the first element of the reply as-is; pure queries
// report a flat object instead of a tagged event.
func flatResult(op string, result json.RawMessage) (json.RawMessage, error) {
	return firstElement(op, result)
}

// decodeInto unmarshals a payload into the typed result, converting
// unmarshal failures into typed decode errors.
func decodeInto(op string, payload json.RawMessage, out any) error {
	if err := json.Unmarshal(payload, out); err != nil {
		return &DecodeError{Op: op, Data: payload, Err: err}
	}
	return nil
}
