package models

import "time"

// BreakWindow is a pause inside a working day, e.g. lunch.
// Times are "HH:MM" in the business's local day.
type BreakWindow struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// WorkingHours is a business's configuration for one weekday.
// Invariants (validated when the owner saves them): OpenTime < CloseTime when
// IsOpen, every break lies within [OpenTime, CloseTime], breaks do not overlap.
// The availability engine still sorts and merges breaks defensively.
type WorkingHours struct {
	Weekday   time.Weekday  `bson:"weekday" json:"weekday"`
	IsOpen    bool          `bson:"isOpen" json:"isOpen"`
	OpenTime  string        `bson:"openTime,omitempty" json:"openTime,omitempty"`   // "HH:MM"
	CloseTime string        `bson:"closeTime,omitempty" json:"closeTime,omitempty"` // "HH:MM"
	Breaks    []BreakWindow `bson:"breaks,omitempty" json:"breaks,omitempty"`
}
