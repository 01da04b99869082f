package license

import "fmt"

// Record is one stored (id, email, license) tuple.
type Record struct {
	tableName struct{} `pg:"licenses"`

	ID      int    `json:"id" pg:"id,pk"`
	Email   string `json:"email" pg:"email"`
	License string `json:"license" pg:"license"`
}

// Fields carries a partial update for a record. Nil members are left
// untouched.
type Fields struct {
	Email   *string
	License *string
}

// Store owns the license table.
type Store interface {
	// Create inserts a new record after sanitizing both fields and
	// returns its id. Email is required; license may be empty.
	Create(email, license string) (int, error)

	// ListAll returns every record in insertion order.
	ListAll() ([]Record, error)

	// ListByEmail returns all records whose email exactly matches, in
	// insertion order.
	ListByEmail(email string) ([]Record, error)

	// Update applies the non-nil fields to the record with the given id.
	// Updating a missing id is a no-op.
	Update(id int, fields Fields) error

	// Delete removes the record with the given id. Deleting a missing id
	// is a no-op.
	Delete(id int) error
}

// ValidationError reports a missing required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// normalizeNew sanitizes a new record's fields and enforces the email
// requirement. Shared by every Store implementation so the invariant
// holds regardless of backend.
func normalizeNew(email, lic string) (string, string, error) {
	email = SanitizeEmail(email)
	lic = SanitizeText(lic)

	if email == "" {
		return "", "", &ValidationError{Field: "email"}
	}

	return email, lic, nil
}
