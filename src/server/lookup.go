package server

import "net/http"

// handleMyLicense renders the self-service fragment for the calling
// identity. Pure read path; it never mutates the store.
func (s *Serve) handleMyLicense(w http.ResponseWriter, r *http.Request) {
	ident := s.identity.CurrentIdentity(r)

	view := lookupView{LoggedIn: ident.LoggedIn}

	if ident.LoggedIn {
		recs, err := s.store.ListByEmail(ident.Email)
		if err != nil {
			writeError(http.StatusInternalServerError, err.Error(), w)
			return
		}
		view.Records = recs
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "fragment.html", view); err != nil {
		logger.Error().Msgf("error rendering license fragment: %v", err)
	}
}
