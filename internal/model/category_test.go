package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleForCategory(t *testing.T) {
	assert.Equal(t, "coffee", StyleForCategory("Food").Icon)
	assert.Equal(t, "car", StyleForCategory("Transportation").Icon)
}

func TestStyleForCategoryUnknownFallsBackToOther(t *testing.T) {
	style := StyleForCategory("Cryptocurrency")

	assert.Equal(t, "more-horizontal", style.Icon)
	assert.Equal(t, "gray", style.Color)
}

func TestKnownCategory(t *testing.T) {
	for _, name := range Categories {
		assert.True(t, KnownCategory(name), name)
	}
	assert.False(t, KnownCategory("Cryptocurrency"))
}

func TestBannerStyleFallback(t *testing.T) {
	assert.Equal(t, "trending-up", BannerSuccess.Style().Icon)
	assert.Equal(t, "info", BannerType("unknown").Style().Icon)
}
