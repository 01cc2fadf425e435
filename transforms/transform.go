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

package transforms

import "github.com/abchugh/mmj2/lang"

// A transformation is a rewrite strategy bound to one original tree.
// Values are created per node during a single attempt and never
// outlive it.
//
// The variant set is closed: the structural congruence case and the
// commutative case. Further algebraic cases (associative,
// distributive) slot in as new variants in newTransformation without
// touching the existing contracts.
type transformation interface {
	original() *lang.Node

	// transformTo produces a step proving original = target.original,
	// or returns c.DerivStep when the trees are already equal and no
	// step is needed.
	transformTo(target transformation, c *Context) (*ProofStep, error)

	// canonical computes the normal form of the original tree.
	// Memoization lives in the Context, not here.
	canonical(c *Context) (*lang.Node, error)
}

// newTransformation selects the strategy for n: commutative when n's
// operator has a registered commutative property, structural
// congruence otherwise.
func newTransformation(n *lang.Node, c *Context) transformation {
	if fact, ok := c.reg.Commutative(n.Stmt); ok {
		return &commutativeTransformation{node: n, fact: fact}
	}
	return &replaceTransformation{node: n}
}

// A replaceTransformation proves original = target by proving each
// corresponding child pair equal and combining the results through
// congruence of the shared operator.
type replaceTransformation struct {
	node *lang.Node
}

func (tr *replaceTransformation) original() *lang.Node { return tr.node }

func (tr *replaceTransformation) transformTo(target transformation, c *Context) (*ProofStep, error) {
	me, trg := tr.node, target.original()
	if lang.DeepEqual(me, trg) {
		return c.DerivStep, nil
	}
	// The caller is responsible for matching tags and arities before
	// descending; a mismatch here means this strategy does not apply.
	if me.Stmt != trg.Stmt || len(me.Children) != len(trg.Children) {
		return nil, errf(InapplicableError, me, me.Stmt,
			"cannot align %s with %s", me.Stmt.Label(), trg.Stmt.Label())
	}
	if err := c.enter(me); err != nil {
		return nil, err
	}
	defer c.leave()

	var hyps []*ProofStep
	for i, ch := range me.Children {
		tch := trg.Children[i]
		if lang.DeepEqual(ch, tch) {
			continue
		}
		// Strategy selection restarts per subtree; a child may well
		// take the commutative case even when the parent did not.
		step, err := newTransformation(ch, c).transformTo(newTransformation(tch, c), c)
		if err != nil {
			return nil, err
		}
		if step == c.DerivStep {
			continue
		}
		hyps = append(hyps, step)
	}
	if len(hyps) == 0 {
		return c.DerivStep, nil
	}

	eq := c.reg.Equality()
	if eq.EqStmt == nil {
		return nil, invariantf(me, me.Stmt, "registry has no equality statement")
	}
	concl := lang.NewNode(eq.EqStmt, me, trg)
	return c.append(concl, Justification{
		Kind: CongruenceJust,
		Op:   me.Stmt,
		Hyps: hyps,
	}), nil
}

func (tr *replaceTransformation) canonical(c *Context) (*lang.Node, error) {
	n := tr.node
	children := make([]*lang.Node, len(n.Children))
	for i, ch := range n.Children {
		cc, err := c.canonicalForm(ch)
		if err != nil {
			return nil, err
		}
		children[i] = cc
	}
	return lang.NewNode(n.Stmt, children...), nil
}

// A commutativeTransformation proves original = target for trees whose
// shared operator is registered commutative: it decides from canonical
// forms whether the operand order must be swapped, certifies the swap
// with the registered assertion, and delegates the remainder to the
// congruence case.
type commutativeTransformation struct {
	node *lang.Node
	fact *CommutativeFact
}

func (tr *commutativeTransformation) original() *lang.Node { return tr.node }

func (tr *commutativeTransformation) transformTo(target transformation, c *Context) (*ProofStep, error) {
	if tr.node.Stmt != target.original().Stmt ||
		len(tr.node.Children) != len(target.original().Children) {
		return nil, errf(InapplicableError, tr.node, tr.node.Stmt,
			"cannot align %s with %s",
			tr.node.Stmt.Label(), target.original().Stmt.Label())
	}
	trg, ok := target.(*commutativeTransformation)
	if !ok {
		// Strategy selection is a function of the operator, so both
		// sides of a same-tag pair must have picked the same variant.
		return nil, invariantf(target.original(), tr.node.Stmt,
			"commutative strategy paired with a non-commutative target")
	}
	shape := tr.fact.Shape
	if !shape.Matches(tr.node) || !shape.Matches(trg.node) {
		return nil, invariantf(tr.node, shape.Op,
			"registered shape %v does not fit the node", shape)
	}
	if lang.DeepEqual(tr.node, trg.node) {
		return c.DerivStep, nil
	}
	if err := c.enter(tr.node); err != nil {
		return nil, err
	}
	defer c.leave()

	// Comparing the canonical forms of the first operands alone is
	// enough to decide swap direction: canonicalization already placed
	// both sides' operands in the shared total order.
	canonMe, err := c.canonicalForm(shape.First(tr.node))
	if err != nil {
		return nil, err
	}
	canonTrgt, err := c.canonicalForm(shape.First(trg.node))
	if err != nil {
		return nil, err
	}

	var swapStep *ProofStep
	myNode := tr.node
	if !lang.DeepEqual(canonMe, canonTrgt) {
		left, right := shape.First(tr.node), shape.Second(tr.node)
		myNode = shape.Build(tr.node, right, left)
		swapStep, err = c.reg.Instantiate(tr.fact, left, right, c)
		if err != nil {
			return nil, err
		}
	}

	replaceMe := &replaceTransformation{node: myNode}
	replaceTarget := &replaceTransformation{node: trg.node}
	replStep, err := replaceMe.transformTo(replaceTarget, c)
	if err != nil {
		return nil, err
	}

	switch {
	case swapStep != nil && replStep != c.DerivStep:
		return c.eqReasoner().Transitive(c, swapStep, replStep)
	case swapStep != nil:
		// The swap alone closed the gap; no transitivity chain.
		return swapStep, nil
	default:
		return replStep, nil
	}
}

func (tr *commutativeTransformation) canonical(c *Context) (*lang.Node, error) {
	base, err := (&replaceTransformation{node: tr.node}).canonical(c)
	if err != nil {
		return nil, err
	}
	shape := tr.fact.Shape
	if !shape.Matches(base) {
		return nil, invariantf(tr.node, shape.Op,
			"registered shape %v does not fit the node", shape)
	}
	first, second := shape.First(base), shape.Second(base)
	if lang.Compare(first, second) < 0 {
		return shape.Build(base, second, first), nil
	}
	return base, nil
}
