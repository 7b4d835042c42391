package matchmaking

import "fmt"

// Compatibility ratings by score threshold.
const (
	RatingBest     = "최고의 인연"
	RatingVeryGood = "매우 좋음"
	RatingGood     = "좋음"
	RatingFine     = "괜찮음"
)

// Rating maps a compatibility score to its qualitative label.
func Rating(score int) string {
	switch {
	case score >= 95:
		return RatingBest
	case score >= 90:
		return RatingVeryGood
	case score >= 85:
		return RatingGood
	default:
		return RatingFine
	}
}

// FormatElapsed renders a waiting time for the search screen.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return fmt.Sprintf("%d초 경과", seconds)
	}
	return fmt.Sprintf("%d분 %d초 경과", seconds/60, seconds%60)
}
