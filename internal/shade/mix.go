package shade

// Smoothstep clamps t to [0, 1] and applies the cubic fade 3t²-2t³.
func Smoothstep(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

// Mix blends c1 toward c2 by smoothstep(t). The smoothstep flattens both ends
// so that layered masks fade in without a visible edge.
// Mix(a, b, 0) == a, Mix(a, b, 1) == b and Mix(c, c, t) == c hold exactly.
func Mix(c1, c2 Color, t float64) Color {
	s := Smoothstep(t)
	if s <= 0 {
		return c1
	}
	if s >= 1 {
		return c2
	}
	return Color{
		mixChannel(c1.R, c2.R, s),
		mixChannel(c1.G, c2.G, s),
		mixChannel(c1.B, c2.B, s),
	}
}

func mixChannel(a, b, s float64) float64 {
	if a == b {
		return a
	}
	return a*(1-s) + b*s
}

// WeightedMix averages colors by weights over their common length.
// A zero weight sum returns the first color unchanged.
func WeightedMix(colors []Color, weights []float64) Color {
	if len(colors) == 0 {
		return Black
	}
	n := len(colors)
	if len(weights) < n {
		n = len(weights)
	}

	var sum float64
	var acc Color
	for i := 0; i < n; i++ {
		sum += weights[i]
		acc = acc.Add(colors[i].Scale(weights[i]))
	}
	if sum == 0 {
		return colors[0]
	}
	return acc.Scale(1 / sum)
}
