package yeojohnson

// TransformSlice applies Transform elementwise and stores the result in
// dst, returning dst. A nil dst is allocated to match y; otherwise the
// lengths must be equal or TransformSlice panics. dst may alias y for an
// in-place transform.
func TransformSlice(dst, y []float64, theta float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(y))
	}
	if len(dst) != len(y) {
		panic("yeojohnson: slice lengths do not match")
	}
	for i, v := range y {
		dst[i] = Transform(v, theta)
	}
	return dst
}

// InverseSlice applies Inverse elementwise with the same dst contract as
// TransformSlice.
func InverseSlice(dst, y []float64, theta float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(y))
	}
	if len(dst) != len(y) {
		panic("yeojohnson: slice lengths do not match")
	}
	for i, v := range y {
		dst[i] = Inverse(v, theta)
	}
	return dst
}

// DerivativeSlice applies Derivative elementwise with the same dst
// contract as TransformSlice.
func DerivativeSlice(dst, y []float64, theta float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(y))
	}
	if len(dst) != len(y) {
		panic("yeojohnson: slice lengths do not match")
	}
	for i, v := range y {
		dst[i] = Derivative(v, theta)
	}
	return dst
}
