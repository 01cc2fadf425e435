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
	"fmt"

	"github.com/abchugh/mmj2/lang"
)

// A Shape describes a binary operation generically: an operator whose
// nodes carry the two operands in child slots A and B. Children in
// other slots, if any, are fixed syntax and never reordered. One Shape
// value serves every node of its operator; it is immutable and safe to
// share.
type Shape struct {
	Op   *lang.Stmt
	A, B int
}

// NewShape returns the shape placing the operands of op in slots a
// and b. The slots must be distinct and within op's arity.
func NewShape(op *lang.Stmt, a, b int) (Shape, error) {
	s := Shape{Op: op, A: a, B: b}
	if op == nil || a == b || a < 0 || b < 0 || a >= op.Arity() || b >= op.Arity() {
		return Shape{}, invariantf(nil, op,
			"invalid operand slots (%d, %d) for arity %d", a, b, op.Arity())
	}
	return s, nil
}

// Matches reports whether n is an application of the shape's operator
// with both operand slots in bounds.
func (s Shape) Matches(n *lang.Node) bool {
	return n != nil && n.Stmt == s.Op &&
		s.A < len(n.Children) && s.B < len(n.Children)
}

// First returns the operand in slot A.
func (s Shape) First(n *lang.Node) *lang.Node { return n.Children[s.A] }

// Second returns the operand in slot B.
func (s Shape) Second(n *lang.Node) *lang.Node { return n.Children[s.B] }

// Build returns a copy of template with first and second placed in the
// operand slots. Non-operand children carry over unchanged.
func (s Shape) Build(template *lang.Node, first, second *lang.Node) *lang.Node {
	children := make([]*lang.Node, len(template.Children))
	copy(children, template.Children)
	children[s.A] = first
	children[s.B] = second
	return lang.NewNode(template.Stmt, children...)
}

func (s Shape) String() string {
	return fmt.Sprintf("%s[%d,%d]", s.Op.Label(), s.A, s.B)
}
