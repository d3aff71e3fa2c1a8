package figure

// FitLine computes a least-squares regression line through the given points.
// Returns slope and intercept; ok is false when the points are degenerate
// (fewer than two, or no x spread).
func FitLine(xs, ys []float64) (slope, intercept float64, ok bool) {
	n := len(xs)
	if n < 2 || n != len(ys) {
		return 0, 0, false
	}
	var sumX, sumY, sumXY, sumXX float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}
	den := float64(n)*sumXX - sumX*sumX
	if den == 0 {
		return 0, 0, false
	}
	slope = (float64(n)*sumXY - sumX*sumY) / den
	intercept = (sumY - slope*sumX) / float64(n)
	return slope, intercept, true
}

// LinePoints samples the fitted line across [minX, maxX], clamping y to
// [0, maxY] so the overlay stays inside a meaningful band of the chart.
func LinePoints(slope, intercept, minX, maxX, maxY float64, n int) (xs, ys []float64) {
	if n < 2 || maxX <= minX {
		return nil, nil
	}
	step := (maxX - minX) / float64(n-1)
	for i := 0; i < n; i++ {
		x := minX + float64(i)*step
		y := slope*x + intercept
		if y < 0 || y > maxY {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}
