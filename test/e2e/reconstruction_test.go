package e2e

import (
	"strings"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/satkit/remodel/internal/trail"
	"github.com/satkit/remodel/pkg/remodel"
)

const (
	// the formula left over after preprocessing, over variables 2 and 3
	survivingCNF = `c simplified formula
p cnf 3 2
2 3 0
-2 3 0
`
	// the trail recorded while eliminating variable 1 and blocking
	// the literal -4
	recordedTrail = `c elimination trail
e 1 1 2 0 -1 3 0
b 4 -4 2 0
`
)

var _ = Describe("Model reconstruction", func() {
	When("a preprocessed formula is solved and its trail replayed", func() {
		var (
			conv *remodel.Converter
			m    remodel.Model
		)
		BeforeEach(func() {
			cnf, err := trail.ParseCNF(strings.NewReader(survivingCNF))
			Expect(err).To(BeNil())

			conv, err = trail.Parse(strings.NewReader(recordedTrail))
			Expect(err).To(BeNil())
			Expect(conv.Len()).To(Equal(2))

			maxVar := conv.MaxVar(cnf.MaxVar)
			Expect(conv.CheckInvariant(maxVar)).To(BeTrue())

			g := gini.New()
			for _, clause := range cnf.Clauses {
				for _, l := range clause {
					g.Add(l)
				}
				g.Add(z.LitNull)
			}
			Expect(g.Solve()).To(Equal(1))

			m = remodel.NewModel(maxVar)
			for v := range cnf.Vars() {
				m.Set(v, remodel.Lift(g.Value(v.Pos())))
			}
		})
		It("extends the model to satisfy every eliminated clause", func() {
			Expect(conv.Apply(m)).To(Succeed())
			Expect(conv.CheckModel(m)).To(BeTrue())

			// the surviving formula forces variable 3
			Expect(m.Value(3)).To(Equal(remodel.True))

			// every recorded clause holds under the extended model
			for _, clause := range [][]int{{1, 2}, {-1, 3}, {-4, 2}} {
				satisfied := false
				for _, d := range clause {
					if m.Lit(z.Dimacs2Lit(d)) == remodel.True {
						satisfied = true
					}
				}
				Expect(satisfied).To(BeTrue(), "clause %v", clause)
			}
		})
		It("reports a model that was tampered with", func() {
			Expect(conv.Apply(m)).To(Succeed())
			m.Set(3, remodel.False)
			m.Set(1, remodel.False)
			m.Set(2, remodel.False)
			Expect(conv.CheckModel(m)).To(BeFalse())
		})
	})
})
