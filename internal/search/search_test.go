package search_test

import (
	"math/bits"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/search"
	"github.com/san-kum/algoviz/internal/step"
)

var _ = Describe("Linear", func() {
	DescribeTable("reports the index of the first match",
		func(values []int, target, want int) {
			final, ok := step.Final(search.Linear(values, target))
			Expect(ok).To(BeTrue())
			Expect(final.Result).To(Equal(want))
			Expect(final.Found).To(Equal(want >= 0))
			Expect(final.Done()).To(BeTrue())
		},
		Entry("first", []int{4, 7, 1}, 4, 0),
		Entry("last", []int{4, 7, 1}, 1, 2),
		Entry("duplicate", []int{3, 9, 9}, 9, 1),
		Entry("missing", []int{4, 7, 1}, 5, -1),
		Entry("empty", []int{}, 5, -1),
	)

	It("probes once per element until found", func() {
		final, _ := step.Final(search.Linear([]int{10, 20, 30, 40}, 30))
		Expect(final.Counters.Probes).To(Equal(3))
	})
})

var _ = Describe("Binary", func() {
	It("finds 8 in the classic example", func() {
		p, err := search.Binary([]int{2, 3, 4, 5, 8}, 8)
		Expect(err).NotTo(HaveOccurred())
		final, _ := step.Final(p)
		Expect(final.Phase).To(Equal(step.PhaseFound))
		Expect(final.Result).To(Equal(4))
	})

	It("rejects unsorted input", func() {
		_, err := search.Binary([]int{3, 1, 2}, 1)
		Expect(err).To(MatchError(search.ErrUnsorted))
	})

	It("stays within floor(log2 n)+1 probes", func() {
		for n := 1; n <= 64; n++ {
			values := make([]int, n)
			for i := range values {
				values[i] = i * 2
			}
			limit := bits.Len(uint(n))
			for target := -1; target <= 2*n; target++ {
				p, err := search.Binary(values, target)
				Expect(err).NotTo(HaveOccurred())
				final, _ := step.Final(p)
				Expect(final.Counters.Probes).To(BeNumerically("<=", limit), "n=%d target=%d", n, target)
				if target >= 0 && target%2 == 0 && target/2 < n {
					Expect(final.Result).To(Equal(target / 2))
				} else {
					Expect(final.Result).To(Equal(-1))
					Expect(final.Phase).To(Equal(step.PhaseNotFound))
				}
			}
		}
	})

	It("marks discarded ranges", func() {
		p, _ := search.Binary([]int{1, 2, 3, 4, 5, 6, 7}, 7)
		var discard []step.Step
		for s := range p {
			if s.Phase == step.PhaseDiscard {
				discard = append(discard, s)
			}
		}
		Expect(discard).NotTo(BeEmpty())
		Expect(discard[0].Marks[step.RoleDiscard]).To(Equal([]int{0, 1, 2, 3}))
	})
})
