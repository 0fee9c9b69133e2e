package api

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Error is a business-level rejection carried inside the response envelope.
// The server reports these either as plain strings or as a field→messages
// map; both forms are flattened into Messages with the original order kept
// for strings and field names sorted for maps.
type Error struct {
	HTTPStatus int
	Status     string
	Messages   []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "api: unknown error"
	}
	if len(e.Messages) == 0 {
		return fmt.Sprintf("api: request failed with status %q", e.Status)
	}
	return "api: " + strings.Join(e.Messages, "; ")
}

// flattenErrors renders the envelope's heterogeneous errors array into flat
// message strings. Unknown shapes degrade to their JSON text rather than
// being dropped.
func flattenErrors(raw []json.RawMessage) []string {
	var out []string
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}

		var fields map[string][]string
		if err := json.Unmarshal(item, &fields); err == nil {
			names := make([]string, 0, len(fields))
			for name := range fields {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				for _, msg := range fields[name] {
					out = append(out, name+": "+msg)
				}
			}
			continue
		}

		out = append(out, string(item))
	}
	return out
}
