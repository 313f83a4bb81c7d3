// Package facematch implements the descriptor comparison used by the
// recognition loop: Euclidean distance over 128-element face embeddings
// with a fixed acceptance threshold.
package facematch

import "math"

// DefaultThreshold is the Euclidean distance below which two descriptors
// are considered the same face.
const DefaultThreshold = 0.5

// Candidate is one enrolled identity from the descriptor store.
type Candidate struct {
	Email      string
	Descriptor []float64
}

// Options controls the decision rule.
type Options struct {
	// Threshold <= 0 means DefaultThreshold.
	Threshold float64
	// Nearest picks the minimum-distance candidate under threshold instead
	// of the first candidate in store order. The store-order rule is the
	// historical behavior: ties between close enrollments are resolved by
	// enrollment order, and the scan stops at the first hit.
	Nearest bool
}

// Result is a successful match.
type Result struct {
	Email    string
	Distance float64
}

// Distance returns the Euclidean distance between two descriptors.
// Mismatched or empty vectors never match anything.
func Distance(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return math.Inf(1)
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Match scans candidates against the live descriptor and returns the
// matched identity, or ok=false when nothing is under threshold.
func Match(live []float64, candidates []Candidate, opts Options) (Result, bool) {
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	if opts.Nearest {
		best := Result{Distance: math.Inf(1)}
		for _, c := range candidates {
			if d := Distance(live, c.Descriptor); d < best.Distance {
				best = Result{Email: c.Email, Distance: d}
			}
		}
		if best.Distance < threshold {
			return best, true
		}
		return Result{}, false
	}

	// First match under threshold wins; scan stops there.
	for _, c := range candidates {
		if d := Distance(live, c.Descriptor); d < threshold {
			return Result{Email: c.Email, Distance: d}, true
		}
	}
	return Result{}, false
}
