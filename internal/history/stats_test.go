package history

import "testing"

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate(nil)
	if s.TotalQuizzes != 0 || s.TotalWords != 0 || s.AverageScore != 0 {
		t.Errorf("Aggregate(nil) = %+v, want all zeroes", s)
	}
}

func TestAggregate(t *testing.T) {
	results := []Result{
		{Correct: 10, Total: 10},
		{Correct: 5, Total: 10},
		{Correct: 1, Total: 3},
	}

	s := Aggregate(results)
	if s.TotalQuizzes != 3 {
		t.Errorf("TotalQuizzes = %d, want 3", s.TotalQuizzes)
	}
	if s.TotalWords != 23 {
		t.Errorf("TotalWords = %d, want 23", s.TotalWords)
	}
	// (100 + 50 + 33.33) / 3 = 61.11, rounded to 61.
	if s.AverageScore != 61 {
		t.Errorf("AverageScore = %d, want 61", s.AverageScore)
	}
}

func TestAggregate_ZeroTotalRound(t *testing.T) {
	// A degenerate round with no questions contributes 0% rather than NaN.
	results := []Result{
		{Correct: 0, Total: 0},
		{Correct: 10, Total: 10},
	}

	s := Aggregate(results)
	if s.AverageScore != 50 {
		t.Errorf("AverageScore = %d, want 50", s.AverageScore)
	}
}

func TestResultPercent(t *testing.T) {
	tests := []struct {
		correct, total int
		want           int
	}{
		{0, 0, 0},
		{0, 10, 0},
		{10, 10, 100},
		{1, 3, 33},
		{2, 3, 67},
	}

	for _, tc := range tests {
		r := Result{Correct: tc.correct, Total: tc.total}
		if got := r.Percent(); got != tc.want {
			t.Errorf("Percent(%d/%d) = %d, want %d", tc.correct, tc.total, got, tc.want)
		}
	}
}
