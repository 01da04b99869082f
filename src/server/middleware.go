package server

import "net/http"

// adminOnly gates a subtree on the admin capability. Failure is fatal
// to the request; nothing of the page is rendered.
func adminOnly(identity IdentityService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident := identity.CurrentIdentity(r)
			if !identity.HasAdminCapability(ident) {
				http.Error(w, "You do not have permission to access this page", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// addCorsHeaders lets the lookup fragment be fetched from any page
// that embeds it.
var addCorsHeaders = func(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedHeaders := "Accept, Content-Type, Content-Length, Accept-Encoding, " + IdentityHeader
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
