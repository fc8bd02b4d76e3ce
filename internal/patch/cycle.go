package patch

// CycleDuration returns the largest K >= 1 such that
// padding >= 2*K + ceil(K/incubationTime)*infectionRadius, or 0 if no such
// K exists (the caller must then report insufficient padding).
func CycleDuration(padding, incubationTime, infectionRadius int) int {
	k := 1
	for padding >= movementUncertainty(k)+infectionUncertainty(k, incubationTime, infectionRadius) {
		k++
	}
	return k - 1
}

func movementUncertainty(ticks int) int {
	return 2 * ticks
}

func infectionUncertainty(ticks, incubationTime, infectionRadius int) int {
	return ceilDiv(ticks, incubationTime) * infectionRadius
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
