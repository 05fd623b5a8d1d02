package model

import "time"

// Submission describes an application accepted by the relay.
// It is returned to the caller and logged; nothing is stored.
type Submission struct {
	ID          string    `json:"id"`
	Provider    string    `json:"provider"`
	Status      string    `json:"status"`
	RelayStatus int       `json:"-"`
	SubmittedAt time.Time `json:"submitted_at"`
}
