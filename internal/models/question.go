package models

import "encoding/json"

// Question is the content of a question as served by the remote store.
// Content is treated as immutable once fetched, so the payload is kept verbatim.
type Question struct {
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}
