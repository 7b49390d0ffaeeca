package jsonschema

import (
	"fmt"
	"strings"
)

// replace substitutes "{name}" placeholders in template with the
// corresponding entry from params, formatted with fmt.Sprint.
func replace(template string, params map[string]any) string {
	if len(params) == 0 {
		return template
	}
	out := template
	for k, v := range params {
		out = strings.ReplaceAll(out, "{"+k+"}", fmt.Sprint(v))
	}
	return out
}
