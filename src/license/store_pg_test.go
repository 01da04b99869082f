package license

import (
	"testing"

	"license-manager/src/config"
	"license-manager/src/db"
)

// Round-trips the postgres store against the dedicated test database.
func TestPGStoreRoundTrip(t *testing.T) {
	if err := config.Init(); err != nil {
		t.Fatal(err)
	}

	conn, err := db.Init(config.DefaultDBTestName)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	defer conn.Close()

	store := NewPGStore(conn)
	if err := store.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	// Idempotent on an existing table.
	if err := store.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema not idempotent: %v", err)
	}

	id, err := store.Create("pgtest@x.com", "PG-LIC-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	defer store.Delete(id)

	recs, err := store.ListByEmail("pgtest@x.com")
	if err != nil {
		t.Fatalf("ListByEmail failed: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("created record not found")
	}
	last := recs[len(recs)-1]
	if last.ID != id || last.License != "PG-LIC-1" {
		t.Errorf("unexpected record: %+v", last)
	}

	lic := "PG-LIC-2"
	if err := store.Update(id, Fields{License: &lic}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	recs, err = store.ListByEmail("pgtest@x.com")
	if err != nil {
		t.Fatal(err)
	}
	last = recs[len(recs)-1]
	if last.License != "PG-LIC-2" || last.Email != "pgtest@x.com" {
		t.Errorf("update touched the wrong fields: %+v", last)
	}

	if err := store.Delete(id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	recs, err = store.ListByEmail("pgtest@x.com")
	if err != nil {
		t.Fatal(err)
	}
	for _, rec := range recs {
		if rec.ID == id {
			t.Error("record still present after delete")
		}
	}
}
