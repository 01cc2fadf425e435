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

// DefaultMaxDepth bounds structural recursion per attempt. Expression
// depth in practice is far below this; hitting the bound means a
// pathological input and is reported as a DepthError rather than
// growing the stack without limit.
const DefaultMaxDepth = 10000

// A StepSequencer allocates identifiers for synthesized steps and owns
// their placement in the surrounding proof. The engine calls it but
// has no say in numbering policy.
type StepSequencer interface {
	Append(s *ProofStep) int
}

// A Context carries the mutable state of one unification attempt: the
// canonicalization memo, the synthesized steps, and the collaborator
// handles. A context is owned by exactly one attempt, is used from one
// goroutine, and is discarded when the attempt ends.
type Context struct {
	// Eq combines equality steps. Left nil, the registry-backed
	// Chainer is used.
	Eq EqualityReasoner

	// Seq allocates step identifiers. Left nil, steps are numbered
	// from 1 in creation order.
	Seq StepSequencer

	// DerivStep is the in-progress derivation step this attempt is
	// unifying against. ProveEqual returns it unchanged to signal that
	// no rewrite was needed; callers compare against it to recognize
	// the no-op outcome.
	DerivStep *ProofStep

	// MaxDepth bounds structural recursion. Zero means
	// DefaultMaxDepth.
	MaxDepth int

	reg   *Registry
	canon map[*lang.Node]*lang.Node
	steps []*ProofStep
	depth int
}

// NewContext returns a fresh context for one proof attempt against the
// given registry.
func NewContext(reg *Registry) *Context {
	return &Context{
		reg:   reg,
		canon: map[*lang.Node]*lang.Node{},
	}
}

// Registry returns the registry this attempt runs against.
func (c *Context) Registry() *Registry { return c.reg }

// Steps returns the steps synthesized so far, in sequence order. The
// caller must not modify the slice.
func (c *Context) Steps() []*ProofStep { return c.steps }

func (c *Context) eqReasoner() EqualityReasoner {
	if c.Eq != nil {
		return c.Eq
	}
	return Chainer{}
}

// append sequences a new step with the given conclusion.
func (c *Context) append(concl *lang.Node, just Justification) *ProofStep {
	s := &ProofStep{Conclusion: concl, Just: just}
	if c.Seq != nil {
		s.Index = c.Seq.Append(s)
	} else {
		s.Index = len(c.steps) + 1
	}
	c.steps = append(c.steps, s)
	return s
}

// enter guards one level of structural recursion. Every enter must be
// paired with leave.
func (c *Context) enter(n *lang.Node) error {
	limit := c.MaxDepth
	if limit == 0 {
		limit = DefaultMaxDepth
	}
	if c.depth >= limit {
		return errf(DepthError, n, nil, "recursion exceeds %d levels", limit)
	}
	c.depth++
	return nil
}

func (c *Context) leave() { c.depth-- }
