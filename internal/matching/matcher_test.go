package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Jane Doe", want: "jane doe"},
		{input: "  JANE   doe ", want: "jane doe"},
		{input: "José Álvarez", want: "jose alvarez"},
		{input: "O'Brien-Smith", want: "o brien smith"},
		{input: "Zoë", want: "zoe"},
		{input: "...", want: ""},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestDistance(t *testing.T) {
	m := NewMatcher(DefaultThreshold)

	tests := []struct {
		name      string
		query     string
		guest     string
		wantMatch bool
	}{
		{name: "exact", query: "Jane Doe", guest: "Jane Doe", wantMatch: true},
		{name: "case and spacing", query: " jane  DOE", guest: "Jane Doe", wantMatch: true},
		{name: "accent folded", query: "jose alvarez", guest: "José Álvarez", wantMatch: true},
		{name: "typo", query: "Jane Dough", guest: "Jane Doe", wantMatch: true},
		{name: "transposed letters", query: "Jnae Doe", guest: "Jane Doe", wantMatch: true},
		{name: "missing middle name", query: "Jane Doe", guest: "Jane Marie Doe", wantMatch: true},
		{name: "reordered", query: "Doe Jane", guest: "Jane Doe", wantMatch: true},
		{name: "first name only", query: "Jane", guest: "Jane Doe", wantMatch: true},
		{name: "partial first name", query: "Jen Smith", guest: "Jennifer Smith", wantMatch: true},
		{name: "unrelated", query: "zzzznonexistent", guest: "Jane Doe", wantMatch: false},
		{name: "different person", query: "Robert Brown", guest: "Jane Doe", wantMatch: false},
		{name: "empty query", query: "", guest: "Jane Doe", wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := m.Distance(tt.query, tt.guest)
			assert.GreaterOrEqual(t, d, 0.0)
			assert.LessOrEqual(t, d, 1.0)
			assert.Equal(t, tt.wantMatch, d <= m.Threshold(), "distance %.3f", d)
		})
	}
}

func TestDistanceExactIsZero(t *testing.T) {
	m := NewMatcher(0)
	assert.Equal(t, 0.0, m.Distance("Jane Doe", "jane doe"))
	assert.Equal(t, DefaultThreshold, m.Threshold())
}

func TestBest(t *testing.T) {
	m := NewMatcher(DefaultThreshold)
	names := []string{"John Doe", "Jane Doe", "Alice Smith"}

	t.Run("picks the closest name", func(t *testing.T) {
		c, ok := m.Best("jane doe", names)
		assert.True(t, ok)
		assert.Equal(t, 1, c.Index)
		assert.Equal(t, 0.0, c.Distance)
	})

	t.Run("ties keep the first name", func(t *testing.T) {
		c, ok := m.Best("doe", names)
		assert.True(t, ok)
		assert.Equal(t, 0, c.Index)
	})

	t.Run("miss", func(t *testing.T) {
		_, ok := m.Best("zzzznonexistent", names)
		assert.False(t, ok)
	})

	t.Run("empty list", func(t *testing.T) {
		_, ok := m.Best("jane doe", nil)
		assert.False(t, ok)
	})

	t.Run("blank query", func(t *testing.T) {
		_, ok := m.Best("  ", names)
		assert.False(t, ok)
	})
}
