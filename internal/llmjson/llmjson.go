// Package llmjson extracts the JSON object a language model was asked to
// return from its free-text reply. Models routinely wrap the object in
// prose or markdown fences even when told not to.
package llmjson

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Extract returns the first syntactically balanced JSON object embedded in
// reply. Scanning starts a decoder at each '{' and accepts the first offset
// that yields a complete object, so prose containing stray braces before or
// after the object does not break extraction. If the reply contains several
// complete objects, the first one wins.
func Extract(reply string) (json.RawMessage, bool) {
	for i := 0; i < len(reply); i++ {
		if reply[i] != '{' {
			continue
		}
		dec := json.NewDecoder(strings.NewReader(reply[i:]))
		var raw json.RawMessage
		if err := dec.Decode(&raw); err == nil && len(raw) > 0 && raw[0] == '{' {
			return raw, true
		}
	}
	return nil, false
}

// Decode extracts the embedded object and unmarshals it into T.
// A reply with no embedded object returns ok=false and no error; an object
// that does not fit T returns an error.
func Decode[T any](reply string) (out T, ok bool, err error) {
	raw, found := Extract(reply)
	if !found {
		return out, false, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false, fmt.Errorf("decoding embedded object: %w", err)
	}
	return out, true, nil
}
