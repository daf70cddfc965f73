package match

import "math"

// ExpectedScore is the probability ELO assigns to own beating opponent
func ExpectedScore(own, opponent int) float64 {
	return 1 / (1 + math.Pow(10, float64(opponent-own)/400))
}

// RatingChange returns A's rating change for scoreA (1 win, 0.5 draw, 0 loss),
// rounded half away from zero. B's change is the negation.
func RatingChange(ratingA, ratingB, k int, scoreA float64) int {
	return int(math.Round(float64(k) * (scoreA - ExpectedScore(ratingA, ratingB))))
}

// applyFloor keeps a rating at or above floor
func applyFloor(rating, floor int) int {
	if rating < floor {
		return floor
	}
	return rating
}
