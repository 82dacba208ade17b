package launch

import (
	"fmt"
	"strings"
)

// FailurePolicy decides what happens when a launch step fails.
type FailurePolicy string

const (
	// PolicyReport logs failures, stops at the first one and makes the
	// launcher exit with a step-specific status. The child's exit status is
	// passed through.
	PolicyReport FailurePolicy = "report"
	// PolicySilent keeps the behavior of the original stub: failures are
	// only visible at debug level, a failed chdir does not prevent the
	// spawn attempt, and the launcher always exits 0.
	PolicySilent FailurePolicy = "silent"
)

// DefaultPolicy is used when neither flag nor config names a policy.
const DefaultPolicy = PolicyReport

// ParsePolicy parses a policy name. The empty string yields DefaultPolicy.
func ParsePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultPolicy, nil
	case PolicyReport:
		return PolicyReport, nil
	case PolicySilent:
		return PolicySilent, nil
	}
	return "", fmt.Errorf("invalid failure policy %q: must be %q or %q", s, PolicyReport, PolicySilent)
}
