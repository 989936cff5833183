package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional(t *testing.T) {
	var unset Optional[Amount]
	assert.False(t, unset.IsSet())
	assert.Nil(t, unset.Ptr())
	assert.Equal(t, None[Amount](), unset)

	// zero is a valid set value, distinct from unset
	zero := Some[Amount](0)
	v, ok := zero.Get()
	assert.True(t, ok)
	assert.Zero(t, v)
	assert.NotEqual(t, unset, zero)

	n := int64(7)
	fromPtr := FromPtr(&n)
	n = 8
	got, ok := fromPtr.Get()
	assert.True(t, ok)
	assert.Equal(t, Amount(7), got)
	assert.Equal(t, Amount(7), *fromPtr.Ptr())
	assert.False(t, FromPtr[Amount](nil).IsSet())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "funding_period", StatusFundingPeriod.String())
	assert.Equal(t, "successful", StatusSuccessful.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "unknown", Status(42).String())

	assert.False(t, StatusFundingPeriod.IsTerminal())
	assert.True(t, StatusSuccessful.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
}
