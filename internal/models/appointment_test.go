package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromWire(t *testing.T) {
	tests := []struct {
		wire  string
		want  Status
		known bool
	}{
		{"En attente", StatusPending, true},
		{"Confirmé", StatusConfirmed, true},
		{"Annulé", StatusCancelled, true},
		{"", StatusUnknown, false},
		{"Peut-être", StatusUnknown, false},
	}

	for _, tt := range tests {
		got, known := StatusFromWire(tt.wire)
		assert.Equal(t, tt.want, got, tt.wire)
		assert.Equal(t, tt.known, known, tt.wire)
	}
}

func TestStatusWireRoundTrip(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCancelled} {
		got, known := StatusFromWire(s.Wire())
		assert.True(t, known)
		assert.Equal(t, s, got)
	}
	assert.Empty(t, StatusUnknown.Wire())
}
