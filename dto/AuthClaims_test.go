package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAnyRole(t *testing.T) {
	tests := []struct {
		name     string
		roles    []string
		required []string
		want     bool
	}{
		{name: "empty required always passes", roles: nil, required: nil, want: true},
		{name: "exact match", roles: []string{"Administrator"}, required: []string{"Administrator"}, want: true},
		{name: "intersection", roles: []string{"Customer", "Administrator"}, required: []string{"Administrator"}, want: true},
		{name: "no intersection", roles: []string{"Customer"}, required: []string{"Administrator"}, want: false},
		{name: "no roles at all", roles: nil, required: []string{"Administrator"}, want: false},
		{name: "case sensitive", roles: []string{"administrator"}, required: []string{"Administrator"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &AuthClaims{Roles: tt.roles}
			assert.Equal(t, tt.want, c.HasAnyRole(tt.required...))
		})
	}
}
