package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "the cloud market is growing", "the cloud market is growing", 1.0},
		{"case insensitive", "The Cloud Market", "the cloud market", 1.0},
		{"disjoint", "apple banana", "cherry date", 0.0},
		{"empty left", "", "some text", 0.0},
		{"empty right", "some text", "", 0.0},
		{"both empty", "", "", 0.0},
		{"half overlap", "a b c", "b c d", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarity_RepeatedTokens(t *testing.T) {
	// Token sets, not bags: repetition does not change the ratio.
	assert.InDelta(t, 1.0, Similarity("go go go", "go"), 1e-9)
}

func TestSimilarity_Symmetric(t *testing.T) {
	a := "latest developments in quantum computing"
	b := "quantum computing developments today"
	assert.InDelta(t, Similarity(a, b), Similarity(b, a), 1e-9)
}
