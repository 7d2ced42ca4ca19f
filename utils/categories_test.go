package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetaForCategory(t *testing.T) {
	m := MetaForCategory("japanese")
	assert.Equal(t, "🍣", m.Emoji)
	assert.Equal(t, "#E8505B", m.Color)
}

func TestMetaForCategoryFallback(t *testing.T) {
	// unknown categories get the default, never a zero value
	for _, unknown := range []string{"", "fusion", "JAPANESE"} {
		m := MetaForCategory(unknown)
		assert.Equal(t, "🍽️", m.Emoji, "category %q", unknown)
		assert.NotEmpty(t, m.Color)
	}
}
