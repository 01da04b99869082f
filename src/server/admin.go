package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"license-manager/src/importer"
	"license-manager/src/license"
)

// Anti-forgery action names, one per protected form.
const (
	addLicenseAction  = "lm_add_license_action"
	importCSVAction   = "lm_import_csv_action"
	editLicenseAction = "lm_edit_license_action"
)

const maxImportBytes = 32 << 20

type actionKind int

const (
	actionNone actionKind = iota
	actionAdd
	actionImport
	actionEdit
	actionDelete
)

// adminAction is the decoded form submission. Exactly one action is
// expected per request, identified by which submit control is present.
type adminAction struct {
	kind    actionKind
	email   string
	license string
	id      int
	nonce   string
}

func decodeAdminAction(r *http.Request) (adminAction, error) {
	if err := r.ParseMultipartForm(maxImportBytes); err != nil && err != http.ErrNotMultipart {
		return adminAction{}, err
	}

	has := func(name string) bool { return r.PostFormValue(name) != "" }

	switch {
	case has("lm_add_license"):
		return adminAction{
			kind:    actionAdd,
			email:   r.PostFormValue("lm_email"),
			license: r.PostFormValue("lm_license"),
			nonce:   r.PostFormValue("lm_add_license_nonce"),
		}, nil
	case has("lm_import_csv"):
		return adminAction{
			kind:  actionImport,
			nonce: r.PostFormValue("lm_import_csv_nonce"),
		}, nil
	case has("lm_edit_license"):
		id, err := strconv.Atoi(r.PostFormValue("lm_id"))
		if err != nil {
			return adminAction{}, fmt.Errorf("bad record id: %w", err)
		}
		return adminAction{
			kind:    actionEdit,
			id:      id,
			license: r.PostFormValue("lm_license"),
			nonce:   r.PostFormValue("lm_edit_license_nonce"),
		}, nil
	case has("lm_delete_license"):
		id, err := strconv.Atoi(r.PostFormValue("lm_id"))
		if err != nil {
			return adminAction{}, fmt.Errorf("bad record id: %w", err)
		}
		return adminAction{
			kind: actionDelete,
			id:   id,
		}, nil
	}

	return adminAction{kind: actionNone}, nil
}

// failForgery terminates the request outright. No partial page is
// rendered after a failed security check.
func failForgery(w http.ResponseWriter) {
	http.Error(w, "Security check failed", http.StatusForbidden)
}

func (s *Serve) handleAdminPage(w http.ResponseWriter, r *http.Request) {
	s.renderAdmin(w, banner{})
}

func (s *Serve) handleAdminPost(w http.ResponseWriter, r *http.Request) {
	action, err := decodeAdminAction(r)
	if err != nil {
		writeError(http.StatusBadRequest, err.Error(), w)
		return
	}

	var b banner

	switch action.kind {
	case actionAdd:
		if !s.nonces.Verify(action.nonce, addLicenseAction) {
			failForgery(w)
			return
		}
		b = s.addLicense(action.email, action.license)
	case actionImport:
		if !s.nonces.Verify(action.nonce, importCSVAction) {
			failForgery(w)
			return
		}
		b = s.importLicenses(r)
	case actionEdit:
		if !s.nonces.Verify(action.nonce, editLicenseAction) {
			failForgery(w)
			return
		}
		if err := s.store.Update(action.id, license.Fields{License: &action.license}); err != nil {
			writeError(http.StatusInternalServerError, err.Error(), w)
			return
		}
		b = successBanner("License updated.")
	case actionDelete:
		// TODO: require a nonce on delete like the other actions.
		if err := s.store.Delete(action.id); err != nil {
			writeError(http.StatusInternalServerError, err.Error(), w)
			return
		}
		b = successBanner("License deleted.")
	default:
		writeError(http.StatusBadRequest, "no recognized action submitted", w)
		return
	}

	s.renderAdmin(w, b)
}

func (s *Serve) addLicense(email, licenseKey string) banner {
	if email == "" {
		return errorBanner("Email cannot be empty.")
	}

	if _, err := s.store.Create(email, licenseKey); err != nil {
		var vErr *license.ValidationError
		if errors.As(err, &vErr) {
			return errorBanner(fmt.Sprintf("Cannot add license: %s.", vErr.Error()))
		}
		logger.Error().Msgf("error creating license record: %v", err)
		return errorBanner("Something went wrong adding the license.")
	}

	if s.notify != nil {
		if err := s.notify(license.SanitizeEmail(email), license.SanitizeText(licenseKey)); err != nil {
			// Delivery is best effort and never fails the add.
			logger.Error().Msgf("error sending license email: %v", err)
		}
	}

	return successBanner("License added successfully!")
}

func (s *Serve) importLicenses(r *http.Request) banner {
	file, header, err := r.FormFile("lm_csv_file")
	if err != nil {
		return errorBanner("Failed to open the file.")
	}
	defer file.Close()

	err = importer.Import(s.store, file, header.Header.Get("Content-Type"))
	if err != nil {
		var fileErr *importer.FileTypeError
		if errors.As(err, &fileErr) {
			return errorBanner("Invalid file type. Please upload a CSV file.")
		}
		logger.Error().Msgf("error importing licenses: %v", err)
		return errorBanner("Failed to open the file.")
	}

	return successBanner("Licenses imported successfully!")
}

func (s *Serve) renderAdmin(w http.ResponseWriter, b banner) {
	recs, err := s.store.ListAll()
	if err != nil {
		writeError(http.StatusInternalServerError, err.Error(), w)
		return
	}

	rows := make([]adminRow, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, adminRow{
			Record:    rec,
			EditNonce: s.nonces.Issue(editLicenseAction),
		})
	}

	view := adminView{
		Banner:      b,
		Rows:        rows,
		AddNonce:    s.nonces.Issue(addLicenseAction),
		ImportNonce: s.nonces.Issue(importCSVAction),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "admin.html", view); err != nil {
		logger.Error().Msgf("error rendering admin page: %v", err)
	}
}

func handleSampleCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="licenses-sample.csv"`)
	fmt.Fprint(w, "alice@example.com,LM-1234-ABCD\nbob@example.com,LM-5678-EFGH\n")
}
