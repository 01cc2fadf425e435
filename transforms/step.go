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

	"github.com/abchugh/mmj2/internal/debug"
	"github.com/abchugh/mmj2/lang"
)

// A JustKind discriminates the ways a synthesized step is justified.
type JustKind uint8

const (
	// AssrtJust: the step is a direct instance of a registered
	// assertion.
	AssrtJust JustKind = iota

	// CongruenceJust: equal parts imply equal wholes; Hyps holds the
	// child-level equality steps, Op the shared operator.
	CongruenceJust

	// TransitivityJust: Hyps holds two steps a=b and b=c.
	TransitivityJust
)

func (k JustKind) String() string {
	switch k {
	case AssrtJust:
		return "assertion"
	case CongruenceJust:
		return "congruence"
	case TransitivityJust:
		return "transitivity"
	}
	return fmt.Sprintf("just(%d)", int(k))
}

// A Justification records the formal grounds of a proof step.
type Justification struct {
	Kind  JustKind
	Assrt *lang.Assrt  // AssrtJust and TransitivityJust
	Op    *lang.Stmt   // CongruenceJust
	Hyps  []*ProofStep // prior steps this one rests on
}

// A ProofStep is one derived line of the proof under construction: an
// equality conclusion plus its justification. Steps are append-only
// and immutable once sequenced; the owning Context orders them.
type ProofStep struct {
	// Index is the step's identifier within the proof, allocated by
	// the context's sequencer.
	Index int

	// Conclusion is the equality tree eq(left, right).
	Conclusion *lang.Node

	Just Justification
}

// Left returns the left side of the step's equality.
func (s *ProofStep) Left() *lang.Node { return s.Conclusion.Children[0] }

// Right returns the right side of the step's equality.
func (s *ProofStep) Right() *lang.Node { return s.Conclusion.Children[1] }

func (s *ProofStep) String() string {
	out := fmt.Sprintf("%d: %s  [%s", s.Index, debug.NodeString(s.Conclusion), s.Just.Kind)
	if s.Just.Assrt != nil {
		out += " " + s.Just.Assrt.Label
	}
	if s.Just.Op != nil {
		out += " " + s.Just.Op.Label()
	}
	for _, h := range s.Just.Hyps {
		out += fmt.Sprintf(" #%d", h.Index)
	}
	return out + "]"
}
