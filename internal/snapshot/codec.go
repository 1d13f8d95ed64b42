// Package snapshot turns the store into a portable JSON document and back,
// and persists it through a storage backend.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tallercr/workshop-api/internal/domain"
)

// ErrMalformed is returned when an imported document is not valid JSON.
// The store is left untouched in that case.
var ErrMalformed = errors.New("malformed snapshot document")

// Encode renders the document as indented JSON, the same layout a manual
// export produces.
func Encode(doc domain.SnapshotDocument) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot document. Missing top-level fields stay at
// their zero values; the store defaults each one independently when the
// document is applied.
func Decode(data []byte) (domain.SnapshotDocument, error) {
	var doc domain.SnapshotDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.SnapshotDocument{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return doc, nil
}
