package api

import (
	"bytes"
	"encoding/json"
)

var jsonNull = json.RawMessage("null")

// Unwrap removes one {_tag, _value} envelope layer. A tagged object without
// _value unwraps to null; anything else is returned unchanged.
func Unwrap(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return raw
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return raw
	}
	if _, ok := env["_tag"]; !ok {
		return raw
	}
	if value, ok := env["_value"]; ok {
		return value
	}
	return jsonNull
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull)
}
