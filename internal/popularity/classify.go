package popularity

// Classification thresholds shared by every consumer (list views, map
// markers, legends). Changing them here changes all views consistently.
const (
	ThresholdModerate = 40
	ThresholdBusy     = 60
	ThresholdPacked   = 80
)

// Label maps a busyness value to its display label:
// [0,40) Tranquilo, [40,60) Moderado, [60,80) Movimentado,
// [80,100] Muito Cheio.
func Label(value int) string {
	switch {
	case value < ThresholdModerate:
		return "Tranquilo"
	case value < ThresholdBusy:
		return "Moderado"
	case value < ThresholdPacked:
		return "Movimentado"
	default:
		return "Muito Cheio"
	}
}

// Color maps a busyness value to a marker color using the same bands as
// Label
func Color(value int) string {
	switch {
	case value < ThresholdModerate:
		return "green"
	case value < ThresholdBusy:
		return "yellow"
	case value < ThresholdPacked:
		return "orange"
	default:
		return "red"
	}
}
