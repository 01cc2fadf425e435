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

import (
	"github.com/mpvl/unique"

	"github.com/abchugh/mmj2/lang"
)

// A CommutativeFact bundles the formal grounds for exchanging an
// operator's operands: the operator's shape and the assertion
// concluding f(a,b) = f(b,a).
type CommutativeFact struct {
	Shape Shape
	Assrt *lang.Assrt
}

// An EqualityDef names the equality primitives of the loaded formal
// system: the statement that forms equalities and the assertion that
// chains them. Both come from the loader; the engine never proves
// them.
type EqualityDef struct {
	// EqStmt tags equality nodes: eq(left, right).
	EqStmt *lang.Stmt

	// Trans concludes a = c from a = b and b = c. Used by Chainer as
	// the justification of synthesized transitivity steps.
	Trans *lang.Assrt
}

// A Registry is the immutable table of algebraic properties known to
// the engine. It is configuration: built once when the formal system
// is loaded and injected into every Context, never mutated during a
// proof attempt.
type Registry struct {
	eq  EqualityDef
	com map[*lang.Stmt]*CommutativeFact
}

// A RegistryOption configures a Registry under construction.
type RegistryOption func(*Registry)

// WithCommutative registers the operator of shape as commutative,
// proved by assrt.
func WithCommutative(shape Shape, assrt *lang.Assrt) RegistryOption {
	return func(r *Registry) {
		r.com[shape.Op] = &CommutativeFact{Shape: shape, Assrt: assrt}
	}
}

// NewRegistry builds a registry for a formal system with the given
// equality primitives.
func NewRegistry(eq EqualityDef, opts ...RegistryOption) *Registry {
	r := &Registry{eq: eq, com: map[*lang.Stmt]*CommutativeFact{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Commutative returns the commutative fact registered for op. Absence
// means no commutative property is known for op, which is a normal
// outcome, not an error.
func (r *Registry) Commutative(op *lang.Stmt) (*CommutativeFact, bool) {
	f, ok := r.com[op]
	return f, ok
}

// Equality returns the registry's equality primitives.
func (r *Registry) Equality() EqualityDef { return r.eq }

// Operators returns the sorted labels of all operators with a
// registered property. For diagnostics.
func (r *Registry) Operators() []string {
	labels := make([]string, 0, len(r.com))
	for op := range r.com {
		labels = append(labels, op.Label())
	}
	unique.Sort(unique.StringSlice{P: &labels})
	return labels
}

// Instantiate builds the concrete swap step f(left,right) = f(right,left)
// from fact's assertion and appends it to the context's proof.
func (r *Registry) Instantiate(fact *CommutativeFact, left, right *lang.Node, c *Context) (*ProofStep, error) {
	a := fact.Assrt
	if a == nil || len(a.VarHyps) != 2 {
		return nil, invariantf(nil, fact.Shape.Op,
			"commutative assertion must have exactly two variable hypotheses")
	}
	concl, err := a.Instantiate(lang.Subst{
		a.VarHyps[0]: left,
		a.VarHyps[1]: right,
	})
	if err != nil {
		return nil, invariantf(nil, fact.Shape.Op, "instantiating %s: %w", a.Label, err)
	}
	return c.append(concl, Justification{Kind: AssrtJust, Assrt: a}), nil
}
