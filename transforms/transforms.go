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

// Package transforms decides whether two expression trees are provably
// equal under the registered algebraic properties of their operators
// and, when they are, synthesizes the chain of formal proof steps
// establishing the equality.
//
// The engine rewrites trees only in ways certified by the registry:
// operand swaps of registered commutative operators, congruence over
// shared operators, and transitivity chaining through the formal
// system's equality component. Unification layers call ProveEqual to
// treat syntactically different but semantically equivalent trees as
// interchangeable, and CanonicalForm to obtain normalized keys for
// equivalence-class comparison.
package transforms

import (
	"golang.org/x/xerrors"

	"github.com/abchugh/mmj2/lang"
)

// ProveEqual synthesizes a proof step concluding original = target, if
// the registered properties connect the two trees.
//
// It returns c.DerivStep, without sequencing anything, when the trees
// are already deep-equal. It returns an error matching ErrNoTransform
// when no chain of known rewrites connects them; that is an ordinary
// outcome for the caller to dispatch on, not a failure. Errors with
// code InvariantError or DepthError abort the attempt.
func ProveEqual(original, target *lang.Node, c *Context) (*ProofStep, error) {
	if original == nil || target == nil {
		return nil, invariantf(nil, nil, "nil expression tree")
	}
	if original.Stmt != target.Stmt || len(original.Children) != len(target.Children) {
		return nil, errf(NoTransformError, original, original.Stmt,
			"root tags differ (%s vs %s)",
			original.Stmt.Label(), target.Stmt.Label())
	}

	// Equal canonical forms are a precondition for success: every
	// rewrite this engine emits preserves canonical form.
	canonOrig, err := c.canonicalForm(original)
	if err != nil {
		return nil, err
	}
	canonTrgt, err := c.canonicalForm(target)
	if err != nil {
		return nil, err
	}
	if !lang.DeepEqual(canonOrig, canonTrgt) {
		return nil, errf(NoTransformError, original, original.Stmt,
			"canonical forms differ")
	}

	step, err := newTransformation(original, c).
		transformTo(newTransformation(target, c), c)
	if err != nil {
		var e *Error
		if xerrors.As(err, &e) && e.Code == InapplicableError {
			return nil, errf(NoTransformError, original, original.Stmt,
				"no applicable strategy: %w", err)
		}
		return nil, err
	}
	return step, nil
}
