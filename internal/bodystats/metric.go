package bodystats

// Metric names a tracked body metric.
type Metric string

const (
	MetricWeight  Metric = "weight"
	MetricBodyFat Metric = "bodyFat"
	MetricWaist   Metric = "waist"
	MetricNeck    Metric = "neck"
	MetricHip     Metric = "hip"
	MetricArm     Metric = "arm"
	MetricThigh   Metric = "thigh"
	MetricCalf    Metric = "calf"
)

// TrackedMetrics is the report order.
var TrackedMetrics = []Metric{
	MetricWeight,
	MetricBodyFat,
	MetricWaist,
	MetricNeck,
	MetricHip,
	MetricArm,
	MetricThigh,
	MetricCalf,
}

var circumferenceMetrics = []Metric{
	MetricWaist,
	MetricNeck,
	MetricHip,
	MetricArm,
	MetricThigh,
	MetricCalf,
}

func ParseMetric(s string) (Metric, bool) {
	for _, m := range TrackedMetrics {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

func (m Metric) Unit() string {
	switch m {
	case MetricWeight:
		return "kg"
	case MetricBodyFat:
		return "%"
	default:
		return "cm"
	}
}

// Value returns the raw stored value of the metric, nil when not recorded.
// Body fat is returned as stored, see ResolveBodyFat for the derived one.
func (m Metric) Value(measurement Measurement) *float64 {
	switch m {
	case MetricWeight:
		w := measurement.Weight
		return &w
	case MetricBodyFat:
		return measurement.BodyFat
	case MetricWaist:
		return measurement.Waist
	case MetricNeck:
		return measurement.Neck
	case MetricHip:
		return measurement.Hip
	case MetricArm:
		return measurement.Arm
	case MetricThigh:
		return measurement.Thigh
	case MetricCalf:
		return measurement.Calf
	}
	return nil
}
