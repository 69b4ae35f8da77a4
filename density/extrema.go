// SPDX-License-Identifier: MIT

package density

// Extrema returns the indices of strict interior local minima and maxima of
// ys, each ascending.
//
// A point (or a run of equal points) is a maximum when both the value
// before and the value after the run are strictly lower, and a minimum when
// both are strictly higher. Runs touching either end of ys are never
// extrema. For a run the index of its first point is reported.
//
// Complexity: O(n).
func Extrema(ys []float64) (minima, maxima []int) {
	n := len(ys)
	i := 1
	for i < n-1 {
		// extend the run of values equal to ys[i]
		j := i
		for j+1 < n && ys[j+1] == ys[i] {
			j++
		}
		if j == n-1 {
			break
		}
		prev, next := ys[i-1], ys[j+1]
		switch {
		case prev < ys[i] && next < ys[i]:
			maxima = append(maxima, i)
		case prev > ys[i] && next > ys[i]:
			minima = append(minima, i)
		}
		i = j + 1
	}

	return minima, maxima
}
