package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeList reads a collection from any of the shapes the backend has used:
//
//	[ ... ]
//	{"data": [ ... ]}
//	{"<key>": [ ... ]}
//	{"data": {"<key>": [ ... ]}}
//
// keys are the resource names to probe, e.g. "designations", "designation".
// An empty object or null decodes to an empty list.
func DecodeList(body []byte, out any, keys ...string) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return json.Unmarshal([]byte("[]"), out)
	}

	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, out); err != nil {
			return fmt.Errorf("failed to decode list: %w", err)
		}
		return nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return fmt.Errorf("failed to decode list envelope: %w", err)
	}

	raw, ok := findList(envelope, keys)
	if !ok {
		if data, has := envelope["data"]; has && isObject(data) {
			var nested map[string]json.RawMessage
			if err := json.Unmarshal(data, &nested); err == nil {
				raw, ok = findList(nested, keys)
			}
		}
	}
	if !ok {
		return json.Unmarshal([]byte("[]"), out)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode list: %w", err)
	}
	return nil
}

func findList(obj map[string]json.RawMessage, keys []string) (json.RawMessage, bool) {
	for _, key := range append([]string{"data"}, keys...) {
		if raw, ok := obj[key]; ok && isArray(raw) {
			return raw, true
		}
	}
	return nil, false
}

func isArray(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '['
}

func isObject(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '{'
}
