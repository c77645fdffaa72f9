package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	const (
		alice = "11111111-1111-1111-1111-111111111111"
		bob   = "22222222-2222-2222-2222-222222222222"
	)

	tests := []struct {
		name        string
		principalID string
		ownerID     string
		want        bool
	}{
		{"owner may mutate", alice, alice, true},
		{"non-owner denied", bob, alice, false},
		{"empty principal denied", "", alice, false},
		{"empty owner denied", alice, "", false},
		{"both empty denied", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutate(tt.principalID, tt.ownerID))
		})
	}
}
