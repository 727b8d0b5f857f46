package history

import "math"

// Stats are the aggregates shown on the home and history screens.
type Stats struct {
	TotalQuizzes int
	// TotalWords is the number of questions answered across all rounds,
	// counting repeats.
	TotalWords int
	// AverageScore is the rounded mean of per-round percentages.
	AverageScore int
}

// Aggregate computes Stats over a list of results. An empty list yields
// all zeroes.
func Aggregate(results []Result) Stats {
	s := Stats{TotalQuizzes: len(results)}
	if len(results) == 0 {
		return s
	}
	sum := 0.0
	for _, r := range results {
		s.TotalWords += r.Total
		if r.Total > 0 {
			sum += float64(r.Correct) / float64(r.Total) * 100
		}
	}
	s.AverageScore = int(math.Round(sum / float64(len(results))))
	return s
}
