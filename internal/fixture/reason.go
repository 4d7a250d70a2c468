// internal/fixture/reason.go
package fixture

import (
    "strings"
)

// RenderReason fills {placeholder} slots in a reason template.
func RenderReason(template string, data map[string]string) string {
    result := template
    for k, v := range data {
        result = strings.ReplaceAll(result, "{"+k+"}", v)
    }
    return result
}
