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

// Package debug renders expression trees for diagnostics and test
// output.
package debug

import (
	"io"
	"strings"

	"github.com/abchugh/mmj2/lang"
)

// WriteNode writes a compact s-expression rendering of n to w.
func WriteNode(w io.Writer, n *lang.Node) {
	if n == nil {
		io.WriteString(w, "<nil>")
		return
	}
	if len(n.Children) == 0 {
		io.WriteString(w, n.Stmt.Label())
		return
	}
	io.WriteString(w, "(")
	io.WriteString(w, n.Stmt.Label())
	for _, c := range n.Children {
		io.WriteString(w, " ")
		WriteNode(w, c)
	}
	io.WriteString(w, ")")
}

// NodeString returns the rendering written by WriteNode.
func NodeString(n *lang.Node) string {
	var b strings.Builder
	WriteNode(&b, n)
	return b.String()
}
