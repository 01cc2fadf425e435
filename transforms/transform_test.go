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

package transforms_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abchugh/mmj2/internal/debug"
	"github.com/abchugh/mmj2/transforms"
)

func TestProveEqualNoop(t *testing.T) {
	s := newSystem(t)
	c := s.ctx()

	step, err := transforms.ProveEqual(s.read(t, "(+ x y)"), s.read(t, "(+ x y)"), c)
	require.NoError(t, err)
	assert.Same(t, c.DerivStep, step, "want the no-op marker")
	assert.Empty(t, c.Steps(), "no-op must not sequence steps")
}

func TestProveEqualSwap(t *testing.T) {
	s := newSystem(t)
	c := s.ctx()

	step, err := transforms.ProveEqual(s.read(t, "(+ x y)"), s.read(t, "(+ y x)"), c)
	require.NoError(t, err)
	require.NotSame(t, c.DerivStep, step)

	// A pure operand swap is one instantiated assertion, not a chain.
	assert.Equal(t, transforms.AssrtJust, step.Just.Kind)
	assert.Equal(t, "addcom", step.Just.Assrt.Label)
	assert.Empty(t, step.Just.Hyps)
	assert.Equal(t, "(= (+ x y) (+ y x))", debug.NodeString(step.Conclusion))
	assert.Len(t, c.Steps(), 1)
}

func TestProveEqualCongruence(t *testing.T) {
	s := newSystem(t)
	c := s.ctx()

	// The outer operator is non-commutative; only the first child
	// needs rewriting.
	step, err := transforms.ProveEqual(
		s.read(t, "(pr (+ x y) z)"), s.read(t, "(pr (+ y x) z)"), c)
	require.NoError(t, err)

	require.Equal(t, transforms.CongruenceJust, step.Just.Kind)
	assert.Equal(t, s.pr, step.Just.Op)
	require.Len(t, step.Just.Hyps, 1)
	assert.Equal(t, "(= (pr (+ x y) z) (pr (+ y x) z))", debug.NodeString(step.Conclusion))

	inner := step.Just.Hyps[0]
	assert.Equal(t, transforms.AssrtJust, inner.Just.Kind)
	assert.Equal(t, "(= (+ x y) (+ y x))", debug.NodeString(inner.Conclusion))
	assert.Len(t, c.Steps(), 2)
}

func TestProveEqualNestedCommutative(t *testing.T) {
	s := newSystem(t)
	c := s.ctx()

	// The operand order at the outer level is already aligned, so the
	// commutative case must not swap there: the rewrite happens one
	// level down and is lifted by congruence.
	step, err := transforms.ProveEqual(
		s.read(t, "(+ (+ x y) z)"), s.read(t, "(+ (+ y x) z)"), c)
	require.NoError(t, err)

	require.Equal(t, transforms.CongruenceJust, step.Just.Kind)
	assert.Equal(t, "(= (+ (+ x y) z) (+ (+ y x) z))", debug.NodeString(step.Conclusion))
	require.Len(t, step.Just.Hyps, 1)
	assert.Equal(t, "(= (+ x y) (+ y x))", debug.NodeString(step.Just.Hyps[0].Conclusion))
	assert.Len(t, c.Steps(), 2, "swap below, congruence above, no transitivity")
}

func TestProveEqualSwapThenCongruence(t *testing.T) {
	s := newSystem(t)
	c := s.ctx()

	// Both a top-level swap and a child rewrite are needed, so the
	// result is a transitivity chain.
	step, err := transforms.ProveEqual(
		s.read(t, "(+ x (* y z))"), s.read(t, "(+ (* z y) x)"), c)
	require.NoError(t, err)

	require.Equal(t, transforms.TransitivityJust, step.Just.Kind)
	assert.Equal(t, s.eqtr, step.Just.Assrt)
	assert.Equal(t, "(= (+ x (* y z)) (+ (* z y) x))", debug.NodeString(step.Conclusion))

	require.Len(t, step.Just.Hyps, 2)
	swap, congr := step.Just.Hyps[0], step.Just.Hyps[1]
	assert.Equal(t, transforms.AssrtJust, swap.Just.Kind)
	assert.Equal(t, "(= (+ x (* y z)) (+ (* y z) x))", debug.NodeString(swap.Conclusion))
	assert.Equal(t, transforms.CongruenceJust, congr.Just.Kind)
	assert.Equal(t, "(= (+ (* y z) x) (+ (* z y) x))", debug.NodeString(congr.Conclusion))

	assert.Len(t, c.Steps(), 4)
}

func TestProveEqualNoTransform(t *testing.T) {
	s := newSystem(t)

	testCases := []struct {
		name     string
		original string
		target   string
	}{
		{"non-commutative swap", "(pr x y)", "(pr y x)"},
		{"different roots", "(+ x y)", "(* x y)"},
		{"different leaves", "(+ x y)", "(+ x z)"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := s.ctx()
			_, err := transforms.ProveEqual(s.read(t, tc.original), s.read(t, tc.target), c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, transforms.ErrNoTransform),
				"got %v; want a no-transformation outcome", err)
		})
	}
}

func TestProveEqualDepthGuard(t *testing.T) {
	s := newSystem(t)
	c := s.ctx()
	c.MaxDepth = 3

	deep := func(leaf string) string {
		src := leaf
		for i := 0; i < 8; i++ {
			src = "(pr " + src + " z)"
		}
		return src
	}
	_, err := transforms.ProveEqual(
		s.read(t, deep("(+ x y)")), s.read(t, deep("(+ y x)")), c)
	var e *transforms.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, transforms.DepthError, e.Code)
}
