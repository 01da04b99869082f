package importer

import (
	"errors"
	"strings"
	"testing"

	"license-manager/src/license"
)

func TestImportCSV(t *testing.T) {
	store := license.NewMemStore()

	body := "a@x.com,LIC1\nbad,row,three,fields\nb@y.com,LIC2\n"
	if err := Import(store, strings.NewReader(body), "text/csv"); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	recs, err := store.ListAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Email != "a@x.com" || recs[0].License != "LIC1" {
		t.Errorf("unexpected first record: %+v", recs[0])
	}
	if recs[1].Email != "b@y.com" || recs[1].License != "LIC2" {
		t.Errorf("unexpected second record: %+v", recs[1])
	}
}

func TestImportPlainText(t *testing.T) {
	store := license.NewMemStore()

	if err := Import(store, strings.NewReader("a@x.com,LIC1\n"), "text/plain; charset=utf-8"); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	recs, _ := store.ListAll()
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
}

func TestImportRejectsWrongFileType(t *testing.T) {
	store := license.NewMemStore()

	err := Import(store, strings.NewReader("a@x.com,LIC1\n"), "image/png")
	if err == nil {
		t.Fatal("expected an error for image/png upload")
	}

	var fileErr *FileTypeError
	if !errors.As(err, &fileErr) {
		t.Errorf("expected FileTypeError, got %T", err)
	}

	recs, _ := store.ListAll()
	if len(recs) != 0 {
		t.Errorf("expected no records imported, got %d", len(recs))
	}
}

func TestImportSkipsRowsThatFailValidation(t *testing.T) {
	store := license.NewMemStore()

	// Middle row has no email after sanitization; it is skipped, not fatal.
	body := "a@x.com,LIC1\n,LIC-NOBODY\nb@y.com,LIC2\n"
	if err := Import(store, strings.NewReader(body), "text/csv"); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	recs, _ := store.ListAll()
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestImportSurfacesReadFailure(t *testing.T) {
	store := license.NewMemStore()

	if err := Import(store, failingReader{}, "text/csv"); err == nil {
		t.Fatal("expected an error when the file cannot be read")
	}
}
