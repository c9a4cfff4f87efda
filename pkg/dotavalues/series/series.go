package seriesvalues

// Series types reported by the provider.
const (
	BestOfOne   = 0
	BestOfThree = 1
	BestOfFive  = 2
)

// winThreshold is the number of game wins that decides a series.
// Only formats listed here can produce a sweep.
var winThreshold = map[int]int{
	BestOfThree: 2,
	BestOfFive:  3,
}

// WinThreshold returns the wins needed to take a series of the given type.
// Returns 0 for formats that can't be swept.
func WinThreshold(seriesType int) int {
	return winThreshold[seriesType]
}
