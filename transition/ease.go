package transition

// Ease maps linear progress in [0,1] to eased progress in [0,1].
type Ease func(t float64) float64

// Linear leaves the progress unchanged.
func Linear(t float64) float64 {
	return t
}

// SmoothStep accelerates in and decelerates out.
func SmoothStep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// OutQuad starts fast and decelerates towards the end.
func OutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}
