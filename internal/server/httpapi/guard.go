package httpapi

import (
	"net/url"
	"strings"
)

// GuardAction is the outcome of a page route decision.
type GuardAction int

const (
	GuardAllow GuardAction = iota
	GuardRedirect
)

// GuardDecision tells the page layer whether to serve the page or send the
// browser elsewhere.
type GuardDecision struct {
	Action   GuardAction
	Location string
}

// Decide applies the page access rules:
//   - /signin, /signup and everything under /person/ are public
//   - the home page requires a session; without one the browser is sent to
//     /signin with the requested path preserved in returnUrl
//   - anything else redirects to the home page
func Decide(path string, authed bool) GuardDecision {
	switch {
	case path == "/signin" || path == "/signup":
		return GuardDecision{Action: GuardAllow}
	case strings.HasPrefix(path, "/person/"):
		return GuardDecision{Action: GuardAllow}
	case path == "/":
		if authed {
			return GuardDecision{Action: GuardAllow}
		}
		return GuardDecision{
			Action:   GuardRedirect,
			Location: "/signin?returnUrl=" + url.QueryEscape(path),
		}
	default:
		return GuardDecision{Action: GuardRedirect, Location: "/"}
	}
}
