package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketID_BranchName(t *testing.T) {
	tests := []struct {
		id       TicketID
		expected string
	}{
		{1, "#1"},
		{7, "#7"},
		{1234, "#1234"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.id.BranchName())
			assert.Equal(t, tt.expected, tt.id.SessionName())
		})
	}
}

func TestParseTicketID(t *testing.T) {
	id, err := ParseTicketID("42")
	require.NoError(t, err)
	assert.Equal(t, TicketID(42), id)

	for _, input := range []string{"", "abc", "0", "-3", "4.2"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTicketID(input)
			assert.ErrorIs(t, err, ErrInvalidTicketID)
		})
	}
}

func TestParseBranchName(t *testing.T) {
	tests := []struct {
		branch string
		id     TicketID
		ok     bool
	}{
		{"#7", 7, true},
		{"#123", 123, true},
		{"master", 0, false},
		{"#", 0, false},
		{"#07", 0, false},
		{"#0", 0, false},
		{"#7a", 0, false},
		{"7", 0, false},
		{"feature/#7", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.branch, func(t *testing.T) {
			id, ok := ParseBranchName(tt.branch)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestParseBranchName_RoundTrip(t *testing.T) {
	for _, id := range []TicketID{1, 9, 10, 99999} {
		parsed, ok := ParseBranchName(id.BranchName())
		require.True(t, ok)
		assert.Equal(t, id, parsed)
	}
}
