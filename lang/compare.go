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

import "strings"

// Compare orders a before b (-1), after b (1), or reports them equal
// (0). The order is strict and total: tags compare by label, equal
// tags by child count, and equal counts by children pairwise. It is
// deterministic across tables and independent of load order.
//
// Canonicalization and the commutative swap decision must share this
// one comparator; a second opinion on operand order would make the
// two disagree about canonical form.
func Compare(a, b *Node) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if a.Stmt != b.Stmt {
		if c := strings.Compare(a.Stmt.Label(), b.Stmt.Label()); c != 0 {
			return c
		}
	}
	if c := len(a.Children) - len(b.Children); c != 0 {
		if c < 0 {
			return -1
		}
		return 1
	}
	for i, ch := range a.Children {
		if c := Compare(ch, b.Children[i]); c != 0 {
			return c
		}
	}
	return 0
}
