package remodel

import (
	"math/rand"
	"testing"

	"github.com/go-air/gini/z"
)

// benchConverter records a long trail of eliminations over a block of
// variables, each entry carrying a handful of clauses.
var benchConverter, benchSurvivors = func() (*Converter, []z.Var) {
	const (
		nVars     = 4096
		nElim     = 1024
		seed      = 9
		pBlock    = .25
		maxSide   = 4
		maxClause = 3
	)

	rnd := rand.New(rand.NewSource(seed))
	perm := rnd.Perm(nVars)

	c := New()
	declared := map[z.Var]bool{}
	for i := 0; i < nElim; i++ {
		v := z.Var(perm[i] + 1)
		kind := ElimVar
		if rnd.Float64() < pBlock {
			kind = BlockLit
		}
		id := c.NewEntry(kind, v)
		mine := v.Pos()
		if rnd.Intn(2) == 0 {
			mine = v.Neg()
		}
		for n := 1 + rnd.Intn(maxClause); n > 0; n-- {
			clause := []z.Lit{mine}
			for k := rnd.Intn(maxSide); k > 0; k-- {
				o := z.Var(rnd.Intn(nVars) + 1)
				if o == v || declared[o] {
					continue
				}
				if rnd.Intn(2) == 0 {
					clause = append(clause, o.Pos())
				} else {
					clause = append(clause, o.Neg())
				}
			}
			if err := c.AddClause(id, clause...); err != nil {
				panic(err)
			}
		}
		declared[v] = true
	}

	var survivors []z.Var
	for i := nElim; i < nVars; i++ {
		survivors = append(survivors, z.Var(perm[i]+1))
	}
	return c, survivors
}()

func benchModel() Model {
	m := NewModel(benchConverter.MaxVar(4096))
	for i, v := range benchSurvivors {
		m.Set(v, Lift(i%2 == 0))
	}
	return m
}

func BenchmarkApply(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := benchModel()
		b.StartTimer()
		if err := benchConverter.Apply(m); err != nil {
			b.Fatalf("apply failed: %s", err)
		}
	}
}

func BenchmarkCheckModel(b *testing.B) {
	m := benchModel()
	if err := benchConverter.Apply(m); err != nil {
		b.Fatalf("apply failed: %s", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchConverter.CheckModel(m)
	}
}
