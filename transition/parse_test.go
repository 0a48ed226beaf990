package transition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linetex/transition"
)

// TestToLaTeX_SingleRotational covers the canonical bare-integer case: one
// transitioning label and an empty constants segment (leading space kept).
func TestToLaTeX_SingleRotational(t *testing.T) {
	out, err := transition.ToLaTeX("j1__j0")
	require.NoError(t, err)
	assert.Equal(t, ` ($J=1$ $\to$ $J=0$)`, out)
}

// TestToLaTeX_ConstantThenTransition verifies grouping: constant labels
// first, transitioning labels in the parenthesised segment.
func TestToLaTeX_ConstantThenTransition(t *testing.T) {
	out, err := transition.ToLaTeX("v0_j1__v0_j0")
	require.NoError(t, err)
	assert.Equal(t, `$\nu=0$ ($J=1$ $\to$ $J=0$)`, out)
}

// TestToLaTeX_DecimalHalfLevels verifies half-integer decimals render as
// fractions on both sides.
func TestToLaTeX_DecimalHalfLevels(t *testing.T) {
	out, err := transition.ToLaTeX("j1d5__j0d5")
	require.NoError(t, err)
	assert.Equal(t, ` ($J=\frac{3}{2}$ $\to$ $J=\frac{1}{2}$)`, out)
}

// TestToLaTeX_EncodedFractionLevels verifies the "_2" fraction encoding
// yields the same label as the equivalent decimal encoding.
func TestToLaTeX_EncodedFractionLevels(t *testing.T) {
	out, err := transition.ToLaTeX("j3_2__j1_2")
	require.NoError(t, err)
	assert.Equal(t, ` ($J=\frac{3}{2}$ $\to$ $J=\frac{1}{2}$)`, out)

	decimal, err := transition.ToLaTeX("j1d5__j0d5")
	require.NoError(t, err)
	assert.Equal(t, decimal, out, "fraction and decimal encodings of 3/2→1/2 must agree")
}

// TestToLaTeX_AllConstant documents the dangling-parentheses artifact: a
// descriptor with no transitioning label keeps the empty " ( $\to$ )"
// segment. Deliberate, for compatibility with existing consumers.
func TestToLaTeX_AllConstant(t *testing.T) {
	out, err := transition.ToLaTeX("j2__j2")
	require.NoError(t, err)
	assert.Equal(t, `$J=2$ ( $\to$ )`, out)
}

// TestToLaTeX_Electronic verifies both electronic suffix tiers: no "name="
// prefix, raw configuration codes compared directly.
func TestToLaTeX_Electronic(t *testing.T) {
	out, err := transition.ToLaTeX("el2p__el1s")
	require.NoError(t, err)
	assert.Equal(t, ` ($2p$ $\to$ $1s$)`, out)

	out, err = transition.ToLaTeX("el2po__el1so")
	require.NoError(t, err)
	assert.Equal(t, ` ($2po$ $\to$ $1so$)`, out)

	out, err = transition.ToLaTeX("el2p__el2p")
	require.NoError(t, err)
	assert.Equal(t, `$2p$ ( $\to$ )`, out, "equal configurations are constant")
}

// TestToLaTeX_HyperfineIgnored verifies the (pp|pm)_fif marker is consumed
// without contributing a label and without breaking subsequent matching.
func TestToLaTeX_HyperfineIgnored(t *testing.T) {
	out, err := transition.ToLaTeX("j2_pp_fif1__j1_pp_fif1")
	require.NoError(t, err)
	assert.Equal(t, ` ($J=2$ $\to$ $J=1$)`, out)

	out, err = transition.ToLaTeX("pm_fif2_j1__pm_fif2_j0")
	require.NoError(t, err)
	assert.Equal(t, ` ($J=1$ $\to$ $J=0$)`, out, "leading marker must not break matching")
}

// TestToLaTeX_MultipleLabels verifies insertion order survives grouping.
func TestToLaTeX_MultipleLabels(t *testing.T) {
	out, err := transition.ToLaTeX("v1_j2_f1__v1_j1_f1")
	require.NoError(t, err)
	assert.Equal(t, `$\nu=1$ $f=1$ ($J=2$ $\to$ $J=1$)`, out)

	out, err = transition.ToLaTeX("ka1_kc2__ka1_kc1")
	require.NoError(t, err)
	assert.Equal(t, `$k_a=1$ ($k_c=2$ $\to$ $k_c=1$)`, out)
}

// TestToLaTeX_EmptyDescriptor: a bare separator has no labels at all.
func TestToLaTeX_EmptyDescriptor(t *testing.T) {
	out, err := transition.ToLaTeX("__")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

// TestToLaTeX_BadFormat verifies the separator-count check.
func TestToLaTeX_BadFormat(t *testing.T) {
	for _, descriptor := range []string{"j1_j0", "j1__j0__j2", "", "j1"} {
		_, err := transition.ToLaTeX(descriptor)
		assert.ErrorIs(t, err, transition.ErrBadFormat, "descriptor %q", descriptor)
	}
}

// TestToLaTeX_LabelNameMismatch: same tier, different label names at the
// same position must fail, never silently pair J with ν.
func TestToLaTeX_LabelNameMismatch(t *testing.T) {
	_, err := transition.ToLaTeX("j1__v0")
	assert.ErrorIs(t, err, transition.ErrAsymmetry)
}

// TestToLaTeX_UnevenLabelCounts: two labels above, one below.
func TestToLaTeX_UnevenLabelCounts(t *testing.T) {
	_, err := transition.ToLaTeX("v0_j1__j0")
	assert.ErrorIs(t, err, transition.ErrAsymmetry)

	_, err = transition.ToLaTeX("j1_j0__j0")
	assert.ErrorIs(t, err, transition.ErrAsymmetry)
}

// TestToLaTeX_OneSidedTierMatch: a tier matching only one half means the
// halves use different encodings at this position.
func TestToLaTeX_OneSidedTierMatch(t *testing.T) {
	_, err := transition.ToLaTeX("j1d5__j1")
	assert.ErrorIs(t, err, transition.ErrAsymmetry)
}

// TestToLaTeX_UnrecognizedFormat verifies leftover text matching no tier
// fails with the remainder in the message.
func TestToLaTeX_UnrecognizedFormat(t *testing.T) {
	_, err := transition.ToLaTeX("x1__x0")
	require.ErrorIs(t, err, transition.ErrUnrecognized)
	assert.Contains(t, err.Error(), `"x1"`)

	_, err = transition.ToLaTeX("j1_zz__j0_zz")
	assert.ErrorIs(t, err, transition.ErrUnrecognized, "residue after a valid label must still fail")
}
