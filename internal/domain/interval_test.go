package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	at := func(minutes int) time.Time { return base.Add(time.Duration(minutes) * time.Minute) }

	t.Run("Identical Intervals", func(t *testing.T) {
		assert.True(t, Overlaps(at(0), at(60), at(0), at(60)))
	})

	t.Run("Partial Overlap", func(t *testing.T) {
		assert.True(t, Overlaps(at(0), at(60), at(30), at(90)))
		assert.True(t, Overlaps(at(30), at(90), at(0), at(60)))
	})

	t.Run("Containment", func(t *testing.T) {
		assert.True(t, Overlaps(at(0), at(120), at(30), at(60)))
		assert.True(t, Overlaps(at(30), at(60), at(0), at(120)))
	})

	t.Run("Touching Intervals Do Not Overlap", func(t *testing.T) {
		assert.False(t, Overlaps(at(0), at(60), at(60), at(120)))
		assert.False(t, Overlaps(at(60), at(120), at(0), at(60)))
	})

	t.Run("Disjoint Intervals", func(t *testing.T) {
		assert.False(t, Overlaps(at(0), at(30), at(60), at(90)))
	})
}
