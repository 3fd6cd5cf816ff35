package sorting_test

import (
	"math"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/sorting"
	"github.com/san-kum/algoviz/internal/step"
)

var producers = map[string]func([]int) step.Producer{
	"bubble":    sorting.Bubble,
	"insertion": sorting.Insertion,
	"selection": sorting.Selection,
	"heap":      sorting.Heap,
	"radix":     sorting.Radix,
	"merge":     sorting.Merge,
	"quick":     sorting.Quick,
}

var inputs = [][]int{
	{5, 3, 8, 4, 2},
	{170, 45, 75, 90, 802, 24, 2, 66},
	{9, 8, 7, 6, 5, 4, 3, 2, 1},
	{1, 2, 3, 4, 5},
	{4, 4, 1, 4, 1},
	{-5, 12, 0, -40, 7, 3},
	{2, 1},
}

var _ = Describe("sort producers", func() {
	for name, sort := range producers {
		Context(name, func() {
			It("ends with a sorted permutation of the input", func() {
				for _, in := range inputs {
					final, ok := step.Final(sort(in))
					Expect(ok).To(BeTrue())
					Expect(final.Phase).To(Equal(step.PhaseDone))

					want := slices.Clone(in)
					slices.Sort(want)
					Expect(final.Array).To(Equal(want), "input %v", in)
				}
			})

			It("does not modify the caller's slice", func() {
				in := []int{3, 1, 2}
				step.Collect(sort(in))
				Expect(in).To(Equal([]int{3, 1, 2}))
			})

			It("starts from the original order", func() {
				steps := step.Collect(sort([]int{5, 3, 8, 4, 2}))
				Expect(steps[0].Phase).To(Equal(step.PhaseStart))
				Expect(steps[0].Array).To(Equal([]int{5, 3, 8, 4, 2}))
			})

			It("short-circuits empty and single inputs", func() {
				for _, in := range [][]int{nil, {7}} {
					steps := step.Collect(sort(in))
					Expect(steps).To(HaveLen(1))
					Expect(steps[0].Done()).To(BeTrue())
				}
			})

			It("keeps counters monotonic", func() {
				steps := step.Collect(sort([]int{9, 8, 7, 6, 5, 4, 3, 2, 1}))
				for i := 1; i < len(steps); i++ {
					Expect(steps[i].Counters.Comparisons).To(BeNumerically(">=", steps[i-1].Counters.Comparisons))
					Expect(steps[i].Counters.Swaps).To(BeNumerically(">=", steps[i-1].Counters.Swaps))
					Expect(steps[i].Counters.Writes).To(BeNumerically(">=", steps[i-1].Counters.Writes))
				}
			})

			It("stops yielding when the consumer stops", func() {
				it := step.Pull(sort([]int{9, 8, 7, 6, 5}))
				_, ok := it.Next()
				Expect(ok).To(BeTrue())
				it.Stop()
				_, ok = it.Next()
				Expect(ok).To(BeFalse())
			})
		})
	}
})

var _ = Describe("Bubble", func() {
	It("sorts the classic example", func() {
		final, _ := step.Final(sorting.Bubble([]int{5, 3, 8, 4, 2}))
		Expect(final.Array).To(Equal([]int{2, 3, 4, 5, 8}))
	})

	It("exits after one pass on sorted input", func() {
		final, _ := step.Final(sorting.Bubble([]int{1, 2, 3, 4, 5}))
		Expect(final.Counters.Comparisons).To(Equal(4))
		Expect(final.Counters.Swaps).To(BeZero())
		Expect(final.Counters.Pass).To(Equal(1))
	})

	It("marks compared pairs", func() {
		steps := step.Collect(sorting.Bubble([]int{2, 1}))
		Expect(steps[1].Phase).To(Equal(step.PhaseCompare))
		Expect(steps[1].Marks[step.RoleCompare]).To(Equal([]int{0, 1}))
		Expect(steps[2].Phase).To(Equal(step.PhaseSwap))
		Expect(steps[2].Array).To(Equal([]int{1, 2}))
	})
})

var _ = Describe("Insertion", func() {
	It("selects a key, shifts and inserts", func() {
		var phases []step.Phase
		for s := range sorting.Insertion([]int{2, 1}) {
			phases = append(phases, s.Phase)
		}
		Expect(phases).To(Equal([]step.Phase{
			step.PhaseStart, step.PhaseSelect, step.PhaseCompare,
			step.PhaseShift, step.PhaseInsert, step.PhaseDone,
		}))
	})
})

var _ = Describe("Selection", func() {
	It("swaps once per pass at most", func() {
		final, _ := step.Final(sorting.Selection([]int{5, 3, 8, 4, 2}))
		Expect(final.Counters.Swaps).To(BeNumerically("<=", 4))
		Expect(final.Counters.Comparisons).To(Equal(10))
	})
})

var _ = Describe("Radix", func() {
	It("fills and drains ten buckets", func() {
		sawBucket := false
		for s := range sorting.Radix([]int{170, 45, 75, 90, 802, 24, 2, 66}) {
			if s.Phase == step.PhaseBucket {
				sawBucket = true
				Expect(s.Buckets).To(HaveLen(10))
			}
		}
		Expect(sawBucket).To(BeTrue())
	})

	DescribeTable("sorts inputs spanning more than MaxInt",
		func(in []int) {
			final, _ := step.Final(sorting.Radix(in))
			want := slices.Clone(in)
			slices.Sort(want)
			Expect(final.Array).To(Equal(want))
		},
		Entry("max and a negative", []int{math.MaxInt, -2}),
		Entry("both extremes", []int{1 << 62, -(1 << 62), 0}),
		Entry("repeated minimum", []int{1 << 62, -(1 << 62), 0, -(1 << 62)}),
		Entry("full range", []int{math.MaxInt, math.MinInt, 0, -1, 1}),
	)

	It("runs one pass per digit of the largest key", func() {
		final, _ := step.Final(sorting.Radix([]int{170, 45, 75, 90, 802, 24, 2, 66}))
		Expect(final.Counters.Pass).To(Equal(3))
	})
})

var _ = Describe("Merge", func() {
	It("exposes the merge buffers", func() {
		for s := range sorting.Merge([]int{4, 1, 3, 2}) {
			if s.Phase == step.PhaseCompare {
				Expect(s.Aux).To(HaveKey("left"))
				Expect(s.Aux).To(HaveKey("right"))
				Expect(s.Aux).To(HaveKey("buffer"))
			}
		}
	})
})

var _ = Describe("Quick", func() {
	It("uses the last element as the first pivot", func() {
		steps := step.Collect(sorting.Quick([]int{5, 3, 8, 4, 2}))
		Expect(steps[1].Phase).To(Equal(step.PhasePivot))
		Expect(steps[1].Marks[step.RolePivot]).To(Equal([]int{4}))
	})
})
