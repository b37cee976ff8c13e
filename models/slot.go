package models

import "time"

// Slot is one bookable interval produced by the availability engine.
// End - Start always equals the requested service duration, and a returned
// slot never overlaps a booked interval or leaves the working window.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
