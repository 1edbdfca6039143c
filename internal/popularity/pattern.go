package popularity

import (
	"math"
	"time"

	"github.com/fervo-app/fervo-backend-go/internal/models"
)

// Day scaling applied to the weekday curve
const (
	thursdayUplift = 1.1 // early-weekend uplift
	sundayDamping  = 0.8
)

// DefaultTable builds a default popularity table for a venue category.
// Monday-Wednesday use the weekday curve as-is, Thursday is the weekday
// curve scaled up 10%, Friday and Saturday use the weekend curve, and
// Sunday is the weekday curve scaled down 20%. Pure function of category;
// the result always holds 24 values per day, all in [0,100].
func DefaultTable(category models.CategoryTag) models.PopularityTable {
	c := curvesFor(category)

	var t models.PopularityTable
	t.SetDay(time.Monday, c.weekday)
	t.SetDay(time.Tuesday, c.weekday)
	t.SetDay(time.Wednesday, c.weekday)
	t.SetDay(time.Thursday, scaleCurve(c.weekday, thursdayUplift))
	t.SetDay(time.Friday, c.weekend)
	t.SetDay(time.Saturday, c.weekend)
	t.SetDay(time.Sunday, scaleCurve(c.weekday, sundayDamping))
	return t
}

// scaleCurve multiplies every hourly value by factor, rounding to the
// nearest integer and clamping to [0,100]
func scaleCurve(curve [24]int, factor float64) [24]int {
	var out [24]int
	for h, v := range curve {
		scaled := int(math.Round(float64(v) * factor))
		if scaled > 100 {
			scaled = 100
		}
		if scaled < 0 {
			scaled = 0
		}
		out[h] = scaled
	}
	return out
}
