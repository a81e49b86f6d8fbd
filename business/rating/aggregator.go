package rating

// shrinkage is the confidence constant in the weighted-rating formula:
// an item with few reviews cannot outrank one with many at equal
// average. Business rule, not configuration.
const shrinkage = 10

// Weighted computes the shrinkage-adjusted rating
// avg*count/(count+10). Zero when there are no reviews; approaches
// the raw average as the review count grows; never exceeds it.
func Weighted(averageRating float64, reviewCount int) float64 {
	if reviewCount <= 0 {
		return 0
	}

	return averageRating * float64(reviewCount) / float64(reviewCount+shrinkage)
}

// Apply folds one new rating into the running aggregate and returns
// the updated (average, count, weighted) triple.
func Apply(averageRating float64, reviewCount int, newRating int) (float64, int, float64) {
	if reviewCount < 0 {
		reviewCount = 0
	}

	total := averageRating*float64(reviewCount) + float64(newRating)
	count := reviewCount + 1
	average := total / float64(count)

	return average, count, Weighted(average, count)
}
