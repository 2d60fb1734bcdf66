package models

// Document is an opaque collection document. The server reads only the
// few fields the routes filter on; everything else passes through as-is.
type Document map[string]interface{}

// InsertResult mirrors the wire shape of a document-store insert.
// InsertedID stays nil when a conditional insert found an existing
// document (the "already exists" sentinel).
type InsertResult struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedID    *string `json:"upsertedId,omitempty"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// AdminStats carries four independent counts plus the payment revenue
// sum. The figures are not a consistent snapshot.
type AdminStats struct {
	Users    int64   `json:"users"`
	Posts    int64   `json:"posts"`
	Payments int64   `json:"payments"`
	Comments int64   `json:"comments"`
	Revenue  float64 `json:"revenue"`
}
