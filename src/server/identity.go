package server

import "net/http"

// Identity is the verified caller of a request. A zero Identity is
// anonymous.
type Identity struct {
	Email    string
	LoggedIn bool
}

// IdentityService resolves who is making a request. Session handling
// itself lives outside this system; the core only consumes the result.
type IdentityService interface {
	CurrentIdentity(r *http.Request) Identity
	HasAdminCapability(id Identity) bool
}

// HeaderIdentity trusts the authenticating proxy in front of the
// service to set the caller's email on each request. Admin capability
// comes from a configured allowlist.
type HeaderIdentity struct {
	admins map[string]bool
}

// IdentityHeader is set by the upstream auth proxy.
const IdentityHeader = "X-Forwarded-Email"

func NewHeaderIdentity(adminEmails []string) *HeaderIdentity {
	admins := make(map[string]bool, len(adminEmails))
	for _, email := range adminEmails {
		admins[email] = true
	}
	return &HeaderIdentity{admins: admins}
}

func (h *HeaderIdentity) CurrentIdentity(r *http.Request) Identity {
	email := r.Header.Get(IdentityHeader)
	if email == "" {
		return Identity{}
	}
	return Identity{Email: email, LoggedIn: true}
}

func (h *HeaderIdentity) HasAdminCapability(id Identity) bool {
	return id.LoggedIn && h.admins[id.Email]
}
