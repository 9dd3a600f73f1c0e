package httpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		authed bool
		want   GuardDecision
	}{
		{"home authed", "/", true, GuardDecision{Action: GuardAllow}},
		{"home anonymous", "/", false, GuardDecision{Action: GuardRedirect, Location: "/signin?returnUrl=%2F"}},
		{"signin always public", "/signin", false, GuardDecision{Action: GuardAllow}},
		{"signup always public", "/signup", false, GuardDecision{Action: GuardAllow}},
		{"memorial page public", "/person/abc-123", false, GuardDecision{Action: GuardAllow}},
		{"slideshow public", "/person/abc-123/slideshow", false, GuardDecision{Action: GuardAllow}},
		{"memorial public even when authed", "/person/abc-123", true, GuardDecision{Action: GuardAllow}},
		{"unknown path anonymous", "/admin", false, GuardDecision{Action: GuardRedirect, Location: "/"}},
		{"unknown path authed", "/admin", true, GuardDecision{Action: GuardRedirect, Location: "/"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.path, tt.authed))
		})
	}
}
