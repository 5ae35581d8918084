package handler

// Deleted is the body answered by delete endpoints.
type Deleted struct {
	Deleted bool   `json:"deleted"`
	ID      uint64 `json:"id"`
}
