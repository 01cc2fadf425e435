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

// A Node is one node of an expression tree: a statement applied to an
// ordered list of subtrees. Trees are immutable once constructed; a
// rewrite always builds a fresh tree and shares unchanged subtrees.
type Node struct {
	// Stmt is the statement tag of this node.
	Stmt *Stmt

	// Children holds the subtrees in order. Callers must not modify
	// the slice.
	Children []*Node
}

// NewNode builds a node for st over the given subtrees.
func NewNode(st *Stmt, children ...*Node) *Node {
	return &Node{Stmt: st, Children: children}
}

// DeepEqual reports whether a and b are structurally identical:
// matching tags and recursively equal children, position-sensitive.
func DeepEqual(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Stmt != b.Stmt ||
		len(a.Children) != len(b.Children) {
		return false
	}
	for i, c := range a.Children {
		if !DeepEqual(c, b.Children[i]) {
			return false
		}
	}
	return true
}

// Size returns the number of nodes in the tree rooted at n.
func Size(n *Node) int {
	if n == nil {
		return 0
	}
	size := 1
	for _, c := range n.Children {
		size += Size(c)
	}
	return size
}
