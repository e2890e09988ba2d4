package models

import "time"

// EventCategory is the normalized calendar event taxonomy.
type EventCategory string

const (
	CategoryConference  EventCategory = "conference"
	CategoryRelease     EventCategory = "release"
	CategoryFork        EventCategory = "fork"
	CategoryHalving     EventCategory = "halving"
	CategoryListing     EventCategory = "listing"
	CategoryPartnership EventCategory = "partnership"
	CategoryAirdrop     EventCategory = "airdrop"
)

// CalendarEvent is one normalized provider event. IsUpcoming is a
// snapshot taken at normalization time, not re-evaluated later.
type CalendarEvent struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Date        time.Time     `json:"date"`
	Category    EventCategory `json:"category"`
	Coins       []string      `json:"coins"`
	Image       string        `json:"image"`
	IsUpcoming  bool          `json:"is_upcoming"`
	CreatedAt   time.Time     `json:"created_at"`
}
