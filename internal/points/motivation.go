package points

import "math"

// Motivation is a 0-100 gauge derived from the ledger state: up to 50
// points from the total (half a point each) and up to 50 from the streak
// (five per consecutive day).
type Motivation struct {
	Score int
	Level string
}

// MotivationFor computes the gauge for the given state. Half points from
// odd totals round to the nearest whole score.
func MotivationFor(state UserPoints) Motivation {
	pointsFactor := float64(state.Total) / 2
	if pointsFactor > 50 {
		pointsFactor = 50
	}
	streakFactor := float64(state.Streak * 5)
	if streakFactor > 50 {
		streakFactor = 50
	}

	score := int(math.Round(pointsFactor + streakFactor))
	if score > 100 {
		score = 100
	}

	return Motivation{Score: score, Level: motivationLevel(score)}
}

func motivationLevel(score int) string {
	switch {
	case score >= 80:
		return "絶好調！"
	case score >= 60:
		return "好調"
	case score >= 40:
		return "普通"
	case score >= 20:
		return "やや低め"
	default:
		return "要注意"
	}
}
