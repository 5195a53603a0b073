package calc

// BMI returns weight / height(m)^2.
func BMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// WaistToHeightRatio is a cardiovascular risk proxy, both values in cm.
func WaistToHeightRatio(waistCm, heightCm float64) float64 {
	return waistCm / heightCm
}
