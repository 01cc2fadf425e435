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

	"golang.org/x/xerrors"

	"github.com/abchugh/mmj2/internal/debug"
	"github.com/abchugh/mmj2/lang"
)

// An ErrorCode classifies engine failures.
type ErrorCode int

const (
	// InapplicableError signals that a strategy does not apply to the
	// given tag/arity pair. It is a local outcome: the caller tries
	// another strategy or reports no transformation.
	InapplicableError ErrorCode = iota

	// NoTransformError signals that the registered properties and
	// structural descent cannot prove the two trees equal. This is a
	// normal outcome, not a defect.
	NoTransformError

	// InvariantError signals a broken internal precondition, such as a
	// registered shape that does not fit its operator. It indicates a
	// misconfigured registry, not an unprovable goal, and aborts the
	// current attempt.
	InvariantError

	// DepthError signals that structural recursion exceeded the
	// context's depth bound.
	DepthError
)

func (c ErrorCode) String() string {
	switch c {
	case InapplicableError:
		return "inapplicable"
	case NoTransformError:
		return "no transformation found"
	case InvariantError:
		return "invariant violation"
	case DepthError:
		return "depth limit exceeded"
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// An Error is a failure of one proof attempt. Node and Op, when set,
// identify the offending tree and operator.
type Error struct {
	Code ErrorCode
	Node *lang.Node
	Op   *lang.Stmt

	err error
}

// Sentinels for errors.Is. They match any engine error carrying the
// same code.
var (
	ErrInapplicable = &Error{Code: InapplicableError}
	ErrNoTransform  = &Error{Code: NoTransformError}
)

func (e *Error) Error() string {
	s := e.Code.String()
	if e.Op != nil {
		s += fmt.Sprintf(": operator %s", e.Op.Label())
	}
	if e.Node != nil {
		s += fmt.Sprintf(": %s", debug.NodeString(e.Node))
	}
	if e.err != nil {
		s += ": " + e.err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code && t.Node == nil && t.Op == nil && t.err == nil
}

func errf(code ErrorCode, n *lang.Node, op *lang.Stmt, format string, args ...interface{}) *Error {
	return &Error{Code: code, Node: n, Op: op, err: xerrors.Errorf(format, args...)}
}

func invariantf(n *lang.Node, op *lang.Stmt, format string, args ...interface{}) *Error {
	return errf(InvariantError, n, op, format, args...)
}
