package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// nonceTTL bounds how long an issued token stays valid.
const nonceTTL = 24 * time.Hour

type nonce struct {
	action  string
	expires time.Time
}

// NonceStore issues single-use anti-forgery tokens bound to a named
// action. A token proves the request came from a legitimately rendered
// form; verifying consumes it.
type NonceStore struct {
	mu     sync.Mutex
	tokens map[string]nonce
}

func NewNonceStore() *NonceStore {
	return &NonceStore{tokens: make(map[string]nonce)}
}

// Issue mints a token for the given action.
func (ns *NonceStore) Issue(action string) string {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	now := time.Now()
	for tok, n := range ns.tokens {
		if now.After(n.expires) {
			delete(ns.tokens, tok)
		}
	}

	token := uuid.New().String()
	ns.tokens[token] = nonce{action: action, expires: now.Add(nonceTTL)}

	return token
}

// Verify reports whether token was issued for action and has not been
// used or expired. A valid token is consumed.
func (ns *NonceStore) Verify(token, action string) bool {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	n, ok := ns.tokens[token]
	if !ok {
		return false
	}
	delete(ns.tokens, token)

	return n.action == action && time.Now().Before(n.expires)
}
