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

// CanonicalForm reduces n to its normal form under the registry's
// commutative operators: operands of every commutative node are placed
// in lang.Compare order, recursively. Trees equal up to operand swaps
// map to the identical canonical tree, so canonical forms serve as
// equivalence-class keys.
//
// Results are memoized in c by node identity: within one attempt,
// repeated canonicalization of the same tree returns the same object,
// and canonicalizing a canonical form returns it unchanged.
func CanonicalForm(n *lang.Node, c *Context) (*lang.Node, error) {
	return c.canonicalForm(n)
}

func (c *Context) canonicalForm(n *lang.Node) (*lang.Node, error) {
	if n == nil {
		return nil, invariantf(nil, nil, "canonical form of nil tree")
	}
	if out, ok := c.canon[n]; ok {
		return out, nil
	}
	if err := c.enter(n); err != nil {
		return nil, err
	}
	defer c.leave()

	out, err := newTransformation(n, c).canonical(c)
	if err != nil {
		return nil, err
	}
	c.canon[n] = out
	c.canon[out] = out
	return out, nil
}
