// Package testresults correlates parsed features with the results reported
// by an external test run.
package testresults

// Result is the outcome of a feature, scenario or example row.
type Result int

const (
	Inconclusive Result = iota
	Passed
	Failed
)

// String returns the lower-case name of the result.
func (r Result) String() string {
	switch r {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	default:
		return "inconclusive"
	}
}

// Title returns the capitalised name of the result, for display.
func (r Result) Title() string {
	switch r {
	case Passed:
		return "Passed"
	case Failed:
		return "Failed"
	default:
		return "Inconclusive"
	}
}

// Merge combines results: any failure fails the whole, all passes pass it,
// anything else (including no results at all) is inconclusive.
func Merge(results ...Result) Result {
	if len(results) == 0 {
		return Inconclusive
	}
	passed := true
	for _, r := range results {
		switch r {
		case Failed:
			return Failed
		case Inconclusive:
			passed = false
		}
	}
	if passed {
		return Passed
	}
	return Inconclusive
}
