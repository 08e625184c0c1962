package request

import (
	"fmt"
	"strings"
)

// maxTrailLength bounds the navigation trail accepted from the query string.
const maxTrailLength = 512

// EntityQuery holds the optional query parameters of the entity detail view.
type EntityQuery struct {
	Tab   string
	Trail string
	Mode  string
}

// ParseEntityQuery extracts and validates the entity detail parameters.
//
// Validation rules:
//   - tab: lowercased; validity against the entity kind is checked by the service
//   - trail: comma-separated "kind:id" steps, at most 512 characters
//   - mode: "compact" or "expanded" (defaults to "expanded")
func ParseEntityQuery(tabParam, trailParam, modeParam string) (EntityQuery, error) {
	q := EntityQuery{
		Tab:   strings.ToLower(strings.TrimSpace(tabParam)),
		Trail: strings.TrimSpace(trailParam),
		Mode:  "expanded",
	}

	if len(q.Trail) > maxTrailLength {
		return EntityQuery{}, fmt.Errorf("invalid trail: longer than %d characters", maxTrailLength)
	}

	if modeParam != "" {
		mode := strings.ToLower(strings.TrimSpace(modeParam))
		if mode != "compact" && mode != "expanded" {
			return EntityQuery{}, fmt.Errorf("invalid mode: must be 'compact' or 'expanded'")
		}
		q.Mode = mode
	}

	return q, nil
}
