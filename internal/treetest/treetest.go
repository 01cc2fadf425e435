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

// Package treetest builds expression-tree fixtures for tests from a
// compact s-expression notation. It is test infrastructure only; the
// engine itself never parses text.
package treetest

import (
	"strings"
	"testing"

	"github.com/abchugh/mmj2/lang"
)

// Read parses src into a tree over tab. An atom reads as a variable
// leaf; a parenthesized list applies its head, registered as an
// operator of matching arity, to the remaining elements:
//
//	(= (+ x y) (+ y x))
//
// Read fails the test on malformed input or on an operator used with
// inconsistent arity.
func Read(tb testing.TB, tab *lang.Table, src string) *lang.Node {
	tb.Helper()
	p := &parser{tb: tb, tab: tab, toks: tokenize(src)}
	n := p.expr()
	if len(p.toks) != p.pos {
		tb.Fatalf("treetest: trailing input in %q", src)
	}
	return n
}

type parser struct {
	tb   testing.TB
	tab  *lang.Table
	toks []string
	pos  int
}

func (p *parser) next() string {
	if p.pos >= len(p.toks) {
		p.tb.Fatalf("treetest: unexpected end of input")
	}
	t := p.toks[p.pos]
	p.pos++
	return t
}

func (p *parser) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos]
}

func (p *parser) expr() *lang.Node {
	tok := p.next()
	if tok != "(" {
		if tok == ")" {
			p.tb.Fatalf("treetest: unexpected )")
		}
		v, err := p.tab.Var(tok)
		if err != nil {
			p.tb.Fatalf("treetest: %v", err)
		}
		return lang.NewNode(v)
	}
	head := p.next()
	var children []*lang.Node
	for p.peek() != ")" {
		children = append(children, p.expr())
	}
	p.next() // consume )
	op, err := p.tab.Const(head, len(children))
	if err != nil {
		p.tb.Fatalf("treetest: %v", err)
	}
	return lang.NewNode(op, children...)
}

func tokenize(src string) []string {
	src = strings.ReplaceAll(src, "(", " ( ")
	src = strings.ReplaceAll(src, ")", " ) ")
	return strings.Fields(src)
}

// Vars registers and returns variable leaves for each label.
func Vars(tb testing.TB, tab *lang.Table, labels ...string) []*lang.Node {
	tb.Helper()
	out := make([]*lang.Node, len(labels))
	for i, l := range labels {
		v, err := tab.Var(l)
		if err != nil {
			tb.Fatalf("treetest: %v", err)
		}
		out[i] = lang.NewNode(v)
	}
	return out
}

// Const registers an operator, failing the test on conflicts.
func Const(tb testing.TB, tab *lang.Table, label string, arity int) *lang.Stmt {
	tb.Helper()
	s, err := tab.Const(label, arity)
	if err != nil {
		tb.Fatalf("treetest: %v", err)
	}
	return s
}
