package dto

// DocumentID is the create-response payload; the JSON key matches the wire
// contract exactly.
type DocumentID struct {
	ID string `json:"Id"`
}
