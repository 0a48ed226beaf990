package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNextToken_TierPriority pins the priority order: the fraction tier
// must win over the bare-integer tier when both could match.
func TestNextToken_TierPriority(t *testing.T) {
	tok, err := nextToken("j3_2", "j1_2")
	require.NoError(t, err)
	assert.Equal(t, tierFraction, tok.tier)
	assert.Equal(t, "j", tok.name)
	assert.Equal(t, "3/2", tok.high, "encoded '_' translates to '/'")
	assert.Equal(t, "1/2", tok.low)

	tok, err = nextToken("j1d5", "j0d5")
	require.NoError(t, err)
	assert.Equal(t, tierDecimal, tok.tier)
	assert.Equal(t, "1.5", tok.high, "decimal marker translates to '.'")

	tok, err = nextToken("el2po", "el1so")
	require.NoError(t, err)
	assert.Equal(t, tierElectronicLong, tok.tier, "long suffix tier must shadow the short one")
	assert.Equal(t, "2po", tok.high, "only the el prefix is stripped")
}

// TestNextToken_ConsumedLengths pins how far the driver advances each half.
func TestNextToken_ConsumedLengths(t *testing.T) {
	tok, err := nextToken("ka12_kc3", "ka4_kc3")
	require.NoError(t, err)
	assert.Equal(t, tierInteger, tok.tier)
	assert.Equal(t, "ka", tok.name)
	assert.Equal(t, len("ka12"), tok.highLen)
	assert.Equal(t, len("ka4"), tok.lowLen)
}

// TestNextToken_HyperfineProducesNoLabel verifies the marker tier consumes
// text but carries no name or values.
func TestNextToken_HyperfineProducesNoLabel(t *testing.T) {
	tok, err := nextToken("pp_fif1", "pp_fif1")
	require.NoError(t, err)
	assert.Equal(t, tierHyperfine, tok.tier)
	assert.Empty(t, tok.name)
	assert.Empty(t, tok.high)
	assert.Empty(t, tok.low)
	assert.Equal(t, len("pp_fif1"), tok.highLen)
}
