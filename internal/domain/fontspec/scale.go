package fontspec

// Scale returns a copy of the descriptor with every pixelsize segment
// rescaled for the given monitor density: size*dpi/baseline, truncated
// toward zero.
//
// The multiply-then-divide order is load-bearing for rounding: 12 at
// dpi=110/baseline=75 is 1320/75 = 17, not round(17.6). When dpi equals the
// baseline the receiver is returned as-is, so the result is bit-identical to
// the input even for unusual but parseable size spellings.
func (d Descriptor) Scale(dpi, baseline float64) Descriptor {
	if baseline <= 0 || dpi <= 0 || dpi == baseline {
		return d
	}

	out := d
	for from := 0; ; {
		idx, size := out.pixelSizeAt(from)
		if idx < 0 {
			return out
		}
		out = out.withPixelSize(idx, int(float64(size)*dpi/baseline))
		from = idx + 1
	}
}
