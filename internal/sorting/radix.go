package sorting

import (
	"fmt"
	"math"
	"slices"

	"github.com/san-kum/algoviz/internal/step"
)

const radixBase = 10

// Radix is an LSD base-10 sort. When negatives are present, values are keyed
// by their unsigned distance from the minimum so every digit is non-negative,
// even for spans wider than MaxInt. The array always shows the original values.
func Radix(input []int) step.Producer {
	return func(yield func(step.Step) bool) {
		r := newRun(input)
		if r.trivial(yield) {
			return
		}
		if !yield(r.start("radix sort")) {
			return
		}

		offset := min(slices.Min(r.a), 0)
		key := func(v int) uint64 { return uint64(v) - uint64(offset) }
		var maxKey uint64
		for _, v := range r.a {
			maxKey = max(maxKey, key(v))
		}

		buckets := make([][]int, radixBase)
		snap := func(phase step.Phase, msg string, marks map[step.Role][]int, exp uint64) step.Step {
			s := r.snap(phase, msg, marks)
			s.Buckets = cloneBuckets(buckets)
			s.Vars = map[string]int{"exp": int(min(exp, math.MaxInt))}
			return s
		}

		for exp := uint64(1); maxKey/exp > 0; exp *= radixBase {
			r.c.Pass++
			for i, v := range r.a {
				d := int(key(v) / exp % radixBase)
				buckets[d] = append(buckets[d], v)
				msg := fmt.Sprintf("place %d in bucket %d", v, d)
				if !yield(snap(step.PhaseBucket, msg, step.Marks(step.RoleCurrent, i), exp)) {
					return
				}
			}

			idx := 0
			for d := range buckets {
				for len(buckets[d]) > 0 {
					v := buckets[d][0]
					buckets[d] = buckets[d][1:]
					r.a[idx] = v
					r.c.Writes++
					msg := fmt.Sprintf("collect %d from bucket %d", v, d)
					if !yield(snap(step.PhaseCollect, msg, step.Marks(step.RoleSwap, idx), exp)) {
						return
					}
					idx++
				}
				buckets[d] = nil
			}
			// the next place would overflow uint64
			if exp > maxKey/radixBase {
				break
			}
		}
		yield(r.finish())
	}
}

func cloneBuckets(b [][]int) [][]int {
	out := make([][]int, len(b))
	for i, v := range b {
		out[i] = slices.Clone(v)
	}
	return out
}
