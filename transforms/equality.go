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

// An EqualityReasoner is the formal system's equality component. The
// engine consumes it to chain certified equality steps; it never
// derives equality facts itself.
type EqualityReasoner interface {
	// Transitive combines a step concluding a = b with a step
	// concluding b = c into a step concluding a = c.
	Transitive(c *Context, ab, bc *ProofStep) (*ProofStep, error)
}

// Chainer is the default EqualityReasoner: it sequences a step
// justified by the registry's transitivity assertion. The zero value
// is ready to use.
type Chainer struct{}

// Transitive implements EqualityReasoner.
func (Chainer) Transitive(c *Context, ab, bc *ProofStep) (*ProofStep, error) {
	eq := c.reg.Equality()
	if eq.EqStmt == nil {
		return nil, invariantf(nil, nil, "registry has no equality statement")
	}
	if ab.Conclusion.Stmt != eq.EqStmt || bc.Conclusion.Stmt != eq.EqStmt {
		return nil, invariantf(ab.Conclusion, eq.EqStmt,
			"transitivity over non-equality steps")
	}
	if !lang.DeepEqual(ab.Right(), bc.Left()) {
		return nil, invariantf(bc.Conclusion, eq.EqStmt,
			"steps %d and %d do not chain", ab.Index, bc.Index)
	}
	concl := lang.NewNode(eq.EqStmt, ab.Left(), bc.Right())
	return c.append(concl, Justification{
		Kind:  TransitivityJust,
		Assrt: eq.Trans,
		Hyps:  []*ProofStep{ab, bc},
	}), nil
}
