package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice_Scalar(t *testing.T) {
	p := NewPrice(45)

	assert.True(t, p.IsSet())
	assert.False(t, p.IsRange())
	assert.Equal(t, 45.0, p.Min())
	assert.Equal(t, 45.0, p.Max())
	assert.Equal(t, 45.0, p.Unit())
}

func TestPrice_RangeBoundsAreDerivedNotAssumedSorted(t *testing.T) {
	p := NewPrice(120, 80)

	assert.True(t, p.IsRange())
	assert.Equal(t, 80.0, p.Min())
	assert.Equal(t, 120.0, p.Max())
	assert.Equal(t, 80.0, p.Unit())
}

func TestPrice_EqualBoundsCollapseToScalar(t *testing.T) {
	p := NewPrice(60, 60)

	assert.True(t, p.IsSet())
	assert.False(t, p.IsRange())
	assert.Equal(t, 60.0, p.Unit())
}

func TestPrice_UnsetIsZero(t *testing.T) {
	var p Price

	assert.False(t, p.IsSet())
	assert.False(t, p.IsRange())
	assert.Equal(t, 0.0, p.Min())
	assert.Equal(t, 0.0, p.Max())
	assert.Equal(t, 0.0, p.Unit())
}
