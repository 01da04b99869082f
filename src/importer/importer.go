// Package importer feeds two-column delimited files into the license store.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"

	"license-manager/src/license"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logger zerolog.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

// FileTypeError reports an upload whose declared type is neither plain
// text nor CSV. Nothing is imported from such a file.
type FileTypeError struct {
	ContentType string
}

func (e *FileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q: want text/plain or text/csv", e.ContentType)
}

// Import reads comma-delimited rows from r and creates one record per
// row with exactly two fields. Other rows are skipped silently, and a
// row that fails to insert does not abort the rest; each insert stands
// alone, there is no batch transaction.
func Import(store license.Store, r io.Reader, contentType string) error {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || (mediaType != "text/plain" && mediaType != "text/csv") {
		return &FileTypeError{ContentType: contentType}
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// Malformed row: skip it, keep going.
				continue
			}
			return fmt.Errorf("reading import file: %w", err)
		}

		if len(row) != 2 {
			continue
		}

		if _, err := store.Create(row[0], row[1]); err != nil {
			logger.Debug().Msgf("skipping import row for %q: %v", row[0], err)
		}
	}

	return nil
}
