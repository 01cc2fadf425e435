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

package lang

import "golang.org/x/xerrors"

// An Assrt is an axiom or theorem of the loaded formal system. Its
// conclusion is a pattern tree whose variable leaves are listed, in
// hypothesis order, in VarHyps.
type Assrt struct {
	// Label is the assertion's unique label.
	Label string

	// VarHyps lists the variable statements occurring in Conclusion.
	VarHyps []*Stmt

	// Conclusion is the assertion's parse tree.
	Conclusion *Node
}

// A Subst maps variable statements to the trees substituted for them.
type Subst map[*Stmt]*Node

// Instantiate returns the assertion's conclusion with every variable
// leaf replaced according to subst. Every variable hypothesis must be
// bound.
func (a *Assrt) Instantiate(subst Subst) (*Node, error) {
	for _, v := range a.VarHyps {
		if subst[v] == nil {
			return nil, xerrors.Errorf(
				"assertion %s: unbound variable %s", a.Label, v.Label())
		}
	}
	return substitute(a.Conclusion, subst), nil
}

func substitute(n *Node, subst Subst) *Node {
	if n.Stmt.Kind() == VarStmt {
		if r := subst[n.Stmt]; r != nil {
			return r
		}
		return n
	}
	changed := false
	children := make([]*Node, len(n.Children))
	for i, c := range n.Children {
		children[i] = substitute(c, subst)
		changed = changed || children[i] != c
	}
	if !changed {
		return n
	}
	return NewNode(n.Stmt, children...)
}
