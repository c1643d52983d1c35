package stats

import "math"

// Welford is a running (count, mean, M2) triple for a one-dimensional
// sample. M2 is the running sum of squared deviations from the running
// mean; Variance derives the sample variance from it on demand rather than
// storing it directly, which is what makes the update numerically stable
// for long streams.
type Welford struct {
	Count uint64
	Mean  float64
	M2    float64
}

// Push folds x into the running triple.
//
//   - Stage 1 (Update count): n := Count+1.
//   - Stage 2 (Update mean): delta := x-Mean; Mean += delta/n.
//   - Stage 3 (Update M2): M2 += delta * (x-Mean) — the second delta uses
//     the *new* mean, which is the step that keeps this formulation stable.
func (w *Welford) Push(x float64) {
	w.Count++
	delta := x - w.Mean
	w.Mean += delta / float64(w.Count)
	delta2 := x - w.Mean
	w.M2 += delta * delta2
}

// Variance returns the population variance (M2/Count), clamped to zero
// before any caller takes its square root — floating-point noise can drive
// M2 fractionally negative for near-constant streams.
func (w *Welford) Variance() float64 {
	if w.Count == 0 {
		return 0
	}
	v := w.M2 / float64(w.Count)
	if v < 0 {
		v = 0
	}

	return v
}

// Std returns sqrt(Variance()).
func (w *Welford) Std() float64 {
	return math.Sqrt(w.Variance())
}

// Merge combines a and b into the single triple a parallel accumulation
// over two disjoint partitions would have produced, using the Chan et al.
// parallel variant of Welford's algorithm. Either argument may be the
// zero-count accumulator for an untouched partition.
func Merge(a, b Welford) Welford {
	if a.Count == 0 {
		return b
	}
	if b.Count == 0 {
		return a
	}

	n := a.Count + b.Count
	delta := b.Mean - a.Mean
	mean := a.Mean + delta*float64(b.Count)/float64(n)
	m2 := a.M2 + b.M2 + delta*delta*float64(a.Count)*float64(b.Count)/float64(n)

	return Welford{Count: n, Mean: mean, M2: m2}
}
