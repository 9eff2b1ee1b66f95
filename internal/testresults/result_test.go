package testresults

import "testing"

func TestMerge(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		want    Result
	}{
		{"empty", nil, Inconclusive},
		{"all passed", []Result{Passed, Passed}, Passed},
		{"one failed", []Result{Passed, Failed, Inconclusive}, Failed},
		{"one inconclusive", []Result{Passed, Inconclusive}, Inconclusive},
		{"single", []Result{Failed}, Failed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Merge(tt.results...); got != tt.want {
				t.Errorf("Merge(%v) = %v, want %v", tt.results, got, tt.want)
			}
		})
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		result Result
		str    string
		title  string
	}{
		{Passed, "passed", "Passed"},
		{Failed, "failed", "Failed"},
		{Inconclusive, "inconclusive", "Inconclusive"},
		{Result(42), "inconclusive", "Inconclusive"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.result.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.result.Title(); got != tt.title {
				t.Errorf("Title() = %q, want %q", got, tt.title)
			}
		})
	}
}
