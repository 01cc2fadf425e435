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

// Package lang defines the data model of a loaded formal system as it
// is consumed by the transformation engine: statement descriptors,
// expression trees, assertions, and the total order over trees.
//
// All values in this package are immutable once constructed. The
// loader that produces them from source text lives outside this
// module; tests construct them directly.
package lang

import "golang.org/x/xerrors"

// A StmtKind indicates the role of a statement within the formal
// system.
type StmtKind uint8

const (
	// ConstStmt is a syntax-building statement: an operator or
	// connective applied to a fixed number of subexpressions.
	ConstStmt StmtKind = iota

	// VarStmt is a variable hypothesis. Nodes tagged with a VarStmt
	// are leaves and act as substitution slots in assertion patterns.
	VarStmt
)

// A Stmt describes one statement of the loaded formal system. Stmt
// values are interned per Table: within one table, two statements are
// the same statement iff they are the same pointer.
type Stmt struct {
	label string
	kind  StmtKind
	arity int
	seq   int
}

// Label returns the statement's unique label.
func (s *Stmt) Label() string { return s.label }

// Kind returns the statement's role.
func (s *Stmt) Kind() StmtKind { return s.kind }

// Arity returns the declared number of children for nodes tagged with
// this statement. Variables always have arity 0.
func (s *Stmt) Arity() int { return s.arity }

// Seq returns the statement's load order within its table.
func (s *Stmt) Seq() int { return s.seq }

func (s *Stmt) String() string { return s.label }

// A Table interns the statements of one formal system. Labels are
// unique: registering the same label twice returns the original
// descriptor, and registering it with a conflicting kind or arity is
// an error.
type Table struct {
	byLabel map[string]*Stmt
	stmts   []*Stmt
}

// NewTable returns an empty statement table.
func NewTable() *Table {
	return &Table{byLabel: map[string]*Stmt{}}
}

// Const registers a syntax-building statement with the given arity.
func (t *Table) Const(label string, arity int) (*Stmt, error) {
	return t.add(label, ConstStmt, arity)
}

// Var registers a variable hypothesis.
func (t *Table) Var(label string) (*Stmt, error) {
	return t.add(label, VarStmt, 0)
}

func (t *Table) add(label string, kind StmtKind, arity int) (*Stmt, error) {
	if s, ok := t.byLabel[label]; ok {
		if s.kind != kind || s.arity != arity {
			return nil, xerrors.Errorf(
				"statement %q redeclared (kind %d arity %d, was kind %d arity %d)",
				label, kind, arity, s.kind, s.arity)
		}
		return s, nil
	}
	s := &Stmt{label: label, kind: kind, arity: arity, seq: len(t.stmts)}
	t.byLabel[label] = s
	t.stmts = append(t.stmts, s)
	return s, nil
}

// Lookup returns the statement registered under label, if any.
func (t *Table) Lookup(label string) (*Stmt, bool) {
	s, ok := t.byLabel[label]
	return s, ok
}

// Len returns the number of registered statements.
func (t *Table) Len() int { return len(t.stmts) }
