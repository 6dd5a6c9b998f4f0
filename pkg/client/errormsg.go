package client

import (
	"encoding/json"
	"strconv"
	"strings"
)

const unknownErrorMessage = "An unknown error occurred"

// FormatErrorMessage normalizes any backend error payload to a single
// display string. The payload is inspected in a fixed order: plain string;
// list of {loc, msg} validation entries; object with "msg"; object with
// "message"; JSON dump of whatever was received; generic fallback. Every
// surfaced error goes through this one function so the same payload always
// reads the same everywhere.
func FormatErrorMessage(detail any) string {
	switch d := detail.(type) {
	case nil:
		return unknownErrorMessage
	case string:
		return d
	case []any:
		if msg := formatValidationEntries(d); msg != "" {
			return msg
		}
	case map[string]any:
		if msg, ok := d["msg"].(string); ok {
			return msg
		}
		if msg, ok := d["message"].(string); ok {
			return msg
		}
	}

	raw, err := json.Marshal(detail)
	if err != nil {
		return unknownErrorMessage
	}
	return string(raw)
}

func formatValidationEntries(entries []any) string {
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		msg, _ := m["msg"].(string)
		if loc := joinLoc(m["loc"]); loc != "" {
			parts = append(parts, loc+": "+msg)
		} else if msg != "" {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, ", ")
}

func joinLoc(loc any) string {
	items, ok := loc.([]any)
	if !ok || len(items) == 0 {
		return ""
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			parts = append(parts, v)
		case float64:
			parts = append(parts, strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	return strings.Join(parts, ".")
}
