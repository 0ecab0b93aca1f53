package display

import (
	"encoding/json"
)

// MarshalJSON marshals JSON with pretty formatting. Indented output keeps
// piped results readable and diffable.
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
