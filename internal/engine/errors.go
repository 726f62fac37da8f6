package engine

import (
	"fmt"
	"strings"
)

// InvalidStatisticError reports a requested statistic that no input record
// carries.
type InvalidStatisticError struct {
	Statistic string
}

func (e *InvalidStatisticError) Error() string {
	return fmt.Sprintf("statistic %q not found in any record", e.Statistic)
}

// InvalidTargetError reports a missing, zero, or negative target in
// target-relative mode.
type InvalidTargetError struct {
	Target float64
}

func (e *InvalidTargetError) Error() string {
	if e.Target == 0 {
		return "target value is required and must be positive"
	}
	return fmt.Sprintf("target value must be positive, got %g", e.Target)
}

// NoMatchingTeamsError reports a team filter that eliminated every record.
type NoMatchingTeamsError struct {
	Teams []string
}

func (e *NoMatchingTeamsError) Error() string {
	return fmt.Sprintf("no players found for teams %s", strings.Join(e.Teams, ", "))
}
