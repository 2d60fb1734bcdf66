package repository

import (
	"encoding/json"
	"fmt"

	"firefly/internal/models"
)

// docRow is one stored document: generated id plus the JSONB body.
type docRow struct {
	ID  string `db:"id"`
	Doc []byte `db:"doc"`
}

func (r docRow) document() (models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal(r.Doc, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", r.ID, err)
	}
	doc["_id"] = r.ID
	return doc, nil
}

func documents(rows []docRow) ([]models.Document, error) {
	docs := make([]models.Document, 0, len(rows))
	for _, row := range rows {
		doc, err := row.document()
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// marshalDoc encodes a document body for storage. The id lives in its
// own column, so a client-supplied _id is dropped rather than stored.
func marshalDoc(doc models.Document) ([]byte, error) {
	if _, ok := doc["_id"]; ok {
		doc = cloneWithoutID(doc)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return raw, nil
}

func cloneWithoutID(doc models.Document) models.Document {
	clone := make(models.Document, len(doc))
	for key, value := range doc {
		if key == "_id" {
			continue
		}
		clone[key] = value
	}
	return clone
}

// marshalPatch encodes a field-level $set patch for a JSONB merge.
func marshalPatch(patch models.Document) ([]byte, error) {
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to encode patch: %w", err)
	}
	return raw, nil
}
