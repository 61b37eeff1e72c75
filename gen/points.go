package gen

// Points returns n points with X and Y drawn independently from [lo, hi].
// Points may coincide. n < 0 fails with ErrInvalidSize.
func Points(n, lo, hi int, opts ...Option) (PointSet, error) {
	return PointsIn(n, lo, hi, lo, hi, opts...)
}

// PointsIn returns n points with X from [xlo, xhi] and Y from [ylo, yhi].
func PointsIn(n, xlo, xhi, ylo, yhi int, opts ...Option) (PointSet, error) {
	if err := validateSize(MethodPoints, "n", n); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	out := make(PointSet, n)
	for i := range out {
		out[i] = Point{X: draw(cfg.src, xlo, xhi), Y: draw(cfg.src, ylo, yhi)}
	}

	return out, nil
}
