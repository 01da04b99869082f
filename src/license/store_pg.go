package license

import (
	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// PGStore is the postgres-backed Store.
type PGStore struct {
	db *pg.DB
}

func NewPGStore(db *pg.DB) *PGStore {
	return &PGStore{db: db}
}

// EnsureSchema creates the licenses table if it does not exist. Called
// once at startup, not per request.
func (store *PGStore) EnsureSchema() error {
	return store.db.Model((*Record)(nil)).CreateTable(&orm.CreateTableOptions{
		IfNotExists: true,
	})
}

func (store *PGStore) Create(email, lic string) (int, error) {
	email, lic, err := normalizeNew(email, lic)
	if err != nil {
		return 0, err
	}

	rec := &Record{
		Email:   email,
		License: lic,
	}

	if _, err := store.db.Model(rec).Insert(); err != nil {
		return 0, err
	}

	return rec.ID, nil
}

func (store *PGStore) ListAll() ([]Record, error) {
	var recs []Record

	if err := store.db.Model(&recs).Order("id ASC").Select(); err != nil {
		return nil, err
	}

	return recs, nil
}

func (store *PGStore) ListByEmail(email string) ([]Record, error) {
	var recs []Record

	err := store.db.Model(&recs).Where("email = ?", email).Order("id ASC").Select()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

func (store *PGStore) Update(id int, fields Fields) error {
	q := store.db.Model((*Record)(nil)).Where("id = ?", id)

	touched := false
	if fields.Email != nil {
		q = q.Set("email = ?", SanitizeEmail(*fields.Email))
		touched = true
	}
	if fields.License != nil {
		q = q.Set("license = ?", SanitizeText(*fields.License))
		touched = true
	}

	if !touched {
		return nil
	}

	// Zero rows matched is not an error; updating a missing id is a no-op.
	_, err := q.Update()
	return err
}

func (store *PGStore) Delete(id int) error {
	_, err := store.db.Model((*Record)(nil)).Where("id = ?", id).Delete()
	return err
}
