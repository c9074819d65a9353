package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrap(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain object", `{"id":"m1"}`, `{"id":"m1"}`},
		{"tagged success", `{"_tag":"Success","_value":{"id":"m1"}}`, `{"id":"m1"}`},
		{"tagged without value", `{"_tag":"None"}`, `null`},
		{"only one layer", `{"_tag":"Some","_value":{"_tag":"Some","_value":1}}`, `{"_tag":"Some","_value":1}`},
		{"array", `[1,2]`, `[1,2]`},
		{"null", `null`, `null`},
		{"not json", `{oops`, `{oops`},
		{"empty", ``, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(Unwrap(json.RawMessage(tt.in))))
		})
	}
}
