package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayColor_Deterministic(t *testing.T) {
	// Один и тот же ID всегда даёт один и тот же цвет
	for _, id := range []int64{1, 42, 1000000} {
		first := DisplayColor(id)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, DisplayColor(id))
		}
	}
}

func TestDisplayColor_FromPalette(t *testing.T) {
	palette := map[string]bool{}
	for _, c := range displayPalette {
		palette[c] = true
	}

	for id := int64(0); id < 100; id++ {
		assert.True(t, palette[DisplayColor(id)], "id=%d produced color outside palette", id)
	}
}
