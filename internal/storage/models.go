package storage

import "time"

// Save is the metadata row of one save slot.
type Save struct {
	Slot      string
	RunID     string
	Name      string
	Day       int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Event is one persisted line of the player-facing event log.
type Event struct {
	Slot    string
	Seq     int
	At      time.Time
	Message string
}
