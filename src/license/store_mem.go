package license

import "sync"

// MemStore is an in-memory Store with the same observable contract as
// PGStore. Used by tests and anywhere a throwaway backend is enough.
type MemStore struct {
	mu     sync.Mutex
	nextID int
	recs   []Record
}

func NewMemStore() *MemStore {
	return &MemStore{nextID: 1}
}

func (store *MemStore) Create(email, lic string) (int, error) {
	email, lic, err := normalizeNew(email, lic)
	if err != nil {
		return 0, err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	rec := Record{
		ID:      store.nextID,
		Email:   email,
		License: lic,
	}
	store.nextID++
	store.recs = append(store.recs, rec)

	return rec.ID, nil
}

func (store *MemStore) ListAll() ([]Record, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	res := make([]Record, len(store.recs))
	copy(res, store.recs)

	return res, nil
}

func (store *MemStore) ListByEmail(email string) ([]Record, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	var res []Record
	for _, rec := range store.recs {
		if rec.Email == email {
			res = append(res, rec)
		}
	}

	return res, nil
}

func (store *MemStore) Update(id int, fields Fields) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for i := range store.recs {
		if store.recs[i].ID != id {
			continue
		}
		if fields.Email != nil {
			store.recs[i].Email = SanitizeEmail(*fields.Email)
		}
		if fields.License != nil {
			store.recs[i].License = SanitizeText(*fields.License)
		}
		return nil
	}

	return nil
}

func (store *MemStore) Delete(id int) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for i := range store.recs {
		if store.recs[i].ID == id {
			store.recs = append(store.recs[:i], store.recs[i+1:]...)
			return nil
		}
	}

	return nil
}
