package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	ids := []string{"hip_hop", "trap", "rock", "hard_rock", "trip_hop", "jazz"}

	tests := []struct {
		name     string
		target   string
		limit    int
		expected []string
	}{
		{"separator typo", "hiphop", 3, []string{"hip_hop", "trip_hop"}},
		{"single substitution", "trop", 1, []string{"trap"}},
		{"nothing close", "zzzzzz", 3, []string{}},
		{"exact match is skipped", "rock", 1, []string{"hard_rock"}},
		{"zero limit", "rock", 0, nil},
		{"empty target", "", 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.target, ids, tt.limit))
		})
	}
}

func TestSuggest_TiesKeepCandidateOrder(t *testing.T) {
	got := Suggest("rxck", []string{"rock", "rack", "rick"}, 3)
	assert.Equal(t, []string{"rock", "rack", "rick"}, got)
}
