package popularity

import "github.com/fervo-app/fervo-backend-go/internal/models"

// categoryCurves holds the two canonical busyness curves for a venue
// category: hour 0 is 00:00-00:59 local time.
type categoryCurves struct {
	weekday [24]int
	weekend [24]int
}

// Reference curves per category. Values encode when each kind of venue is
// typically busy: cafes peak mid-morning, nightclubs after midnight,
// restaurants at lunch and dinner, theaters around evening showtimes.
var curves = map[models.CategoryTag]categoryCurves{
	models.CategoryBar: {
		weekday: [24]int{20, 10, 5, 0, 0, 0, 0, 0, 0, 0, 0, 5, 10, 15, 15, 15, 20, 30, 45, 60, 70, 75, 70, 40},
		weekend: [24]int{60, 50, 35, 20, 10, 5, 0, 0, 0, 0, 0, 5, 10, 15, 20, 25, 30, 40, 55, 70, 80, 90, 95, 80},
	},
	models.CategoryNightclub: {
		weekday: [24]int{50, 60, 55, 35, 15, 5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 10, 15, 25, 30, 40},
		weekend: [24]int{85, 95, 100, 80, 50, 20, 5, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 5, 15, 25, 40, 55, 70},
	},
	models.CategoryRestaurant: {
		weekday: [24]int{5, 0, 0, 0, 0, 0, 0, 5, 10, 15, 20, 40, 70, 75, 50, 25, 20, 25, 40, 65, 70, 60, 35, 15},
		weekend: [24]int{15, 5, 0, 0, 0, 0, 0, 5, 10, 20, 30, 50, 80, 85, 65, 40, 30, 35, 50, 75, 85, 75, 50, 25},
	},
	models.CategoryCafe: {
		weekday: [24]int{0, 0, 0, 0, 0, 0, 10, 50, 90, 85, 70, 55, 50, 45, 50, 60, 65, 55, 40, 25, 15, 10, 5, 0},
		weekend: [24]int{0, 0, 0, 0, 0, 0, 5, 25, 60, 80, 85, 75, 65, 60, 60, 65, 60, 50, 35, 25, 15, 10, 5, 0},
	},
	models.CategoryTheater: {
		weekday: [24]int{10, 5, 0, 0, 0, 0, 0, 0, 0, 0, 10, 15, 20, 25, 30, 35, 40, 50, 65, 80, 85, 70, 45, 20},
		weekend: [24]int{25, 10, 5, 0, 0, 0, 0, 0, 0, 0, 15, 25, 35, 45, 50, 50, 55, 65, 80, 90, 95, 85, 60, 35},
	},
}

// curvesFor returns the curves for a category, falling back to the bar
// pattern for unrecognized or missing categories. The fallback is the
// documented default, not an error.
func curvesFor(category models.CategoryTag) categoryCurves {
	if c, ok := curves[category]; ok {
		return c
	}
	return curves[models.CategoryBar]
}
