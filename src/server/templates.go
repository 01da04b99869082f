package server

import (
	"embed"
	"html/template"

	"license-manager/src/license"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// banner is the inline success/error message rendered after an admin
// action.
type banner struct {
	Kind    string // "updated" or "error"
	Message string
}

func successBanner(msg string) banner { return banner{Kind: "updated", Message: msg} }
func errorBanner(msg string) banner   { return banner{Kind: "error", Message: msg} }

// adminRow pairs a record with the nonce for its edit form. Nonces are
// single use, so every row gets its own.
type adminRow struct {
	license.Record
	EditNonce string
}

// adminView is the full admin console page model.
type adminView struct {
	Banner      banner
	Rows        []adminRow
	AddNonce    string
	ImportNonce string
}

// lookupView is the self-service fragment model.
type lookupView struct {
	LoggedIn bool
	Records  []license.Record
}
