// Copyright 2025 The mmj2 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transforms_test

import (
	"testing"

	"github.com/abchugh/mmj2/internal/treetest"
	"github.com/abchugh/mmj2/lang"
	"github.com/abchugh/mmj2/transforms"
)

// system is the fixture formal system shared by the engine tests:
// equality "=", commutative "+" and "*" (proved by addcom/mulcom),
// a non-commutative pair constructor "pr", and transitivity "eqtr".
type system struct {
	tab  *lang.Table
	eq   *lang.Stmt
	plus *lang.Stmt
	mul  *lang.Stmt
	pr   *lang.Stmt

	addcom *lang.Assrt
	mulcom *lang.Assrt
	eqtr   *lang.Assrt

	reg *transforms.Registry
}

func newSystem(t testing.TB) *system {
	t.Helper()
	s := &system{tab: lang.NewTable()}
	s.eq = treetest.Const(t, s.tab, "=", 2)
	s.plus = treetest.Const(t, s.tab, "+", 2)
	s.mul = treetest.Const(t, s.tab, "*", 2)
	s.pr = treetest.Const(t, s.tab, "pr", 2)

	vs := treetest.Vars(t, s.tab, "va", "vb", "vc")
	a, b, c := vs[0], vs[1], vs[2]

	s.addcom = &lang.Assrt{
		Label:   "addcom",
		VarHyps: []*lang.Stmt{a.Stmt, b.Stmt},
		Conclusion: lang.NewNode(s.eq,
			lang.NewNode(s.plus, a, b),
			lang.NewNode(s.plus, b, a)),
	}
	s.mulcom = &lang.Assrt{
		Label:   "mulcom",
		VarHyps: []*lang.Stmt{a.Stmt, b.Stmt},
		Conclusion: lang.NewNode(s.eq,
			lang.NewNode(s.mul, a, b),
			lang.NewNode(s.mul, b, a)),
	}
	s.eqtr = &lang.Assrt{
		Label:      "eqtr",
		VarHyps:    []*lang.Stmt{a.Stmt, b.Stmt, c.Stmt},
		Conclusion: lang.NewNode(s.eq, a, c),
	}

	plusShape, err := transforms.NewShape(s.plus, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	mulShape, err := transforms.NewShape(s.mul, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	s.reg = transforms.NewRegistry(
		transforms.EqualityDef{EqStmt: s.eq, Trans: s.eqtr},
		transforms.WithCommutative(plusShape, s.addcom),
		transforms.WithCommutative(mulShape, s.mulcom),
	)
	return s
}

func (s *system) read(t testing.TB, src string) *lang.Node {
	t.Helper()
	return treetest.Read(t, s.tab, src)
}

// ctx returns a fresh attempt context with a distinguishable no-op
// marker installed.
func (s *system) ctx() *transforms.Context {
	c := transforms.NewContext(s.reg)
	c.DerivStep = &transforms.ProofStep{}
	return c
}
