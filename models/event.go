package models

import (
	"strings"
	"time"
)

// EventStatus is set at creation and never recomputed from the date.
type EventStatus string

const (
	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusPast     EventStatus = "past"
)

func (s EventStatus) IsValid() bool {
	return s == EventStatusUpcoming || s == EventStatusPast
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	DefaultMaxParticipants = 50
)

// MediaKind distinguishes photo and video attachments.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

func (k MediaKind) IsValid() bool {
	return k == MediaImage || k == MediaVideo
}

// Attachment is an uploaded document (regulations, protocols, results).
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Media struct {
	Kind MediaKind `json:"kind"`
	URL  string    `json:"url"`
	Name string    `json:"name"`
}

// Event представляет спортивное мероприятие календаря.
type Event struct {
	ID          int        `json:"id"`
	EventNumber *string    `json:"event_number,omitempty"`
	Title       string     `json:"title"`
	Sport       Sport      `json:"sport"`
	CustomSport string     `json:"custom_sport,omitempty"`
	EventType   EventType  `json:"event_type"`
	EventLevel  EventLevel `json:"event_level"`

	Date   string      `json:"date"`
	Time   string      `json:"time"`
	Status EventStatus `json:"status"`

	Participants    int  `json:"participants"`
	MaxParticipants int  `json:"max_participants"`
	MaxSpectators   *int `json:"max_spectators,omitempty"`

	Description string  `json:"description"`
	Organizer   string  `json:"organizer"`
	Location    string  `json:"location"`
	Result      *string `json:"result,omitempty"`

	State       ModerationState `json:"state"`
	SubmittedAt time.Time       `json:"submitted_at"`
	SubmittedBy *string         `json:"submitted_by,omitempty"`

	Documents []Attachment `json:"documents"`
	Media     []Media      `json:"media"`
}

func (e Event) Approved() bool {
	return e.State == StateApproved
}

func (e Event) IsFull() bool {
	return e.Participants >= e.MaxParticipants
}

// Clone returns a copy that shares no slices or pointers with e.
func (e Event) Clone() Event {
	c := e
	c.EventNumber = clonePtr(e.EventNumber)
	c.MaxSpectators = clonePtr(e.MaxSpectators)
	c.Result = clonePtr(e.Result)
	c.SubmittedBy = clonePtr(e.SubmittedBy)
	c.Documents = append([]Attachment(nil), e.Documents...)
	c.Media = append([]Media(nil), e.Media...)
	return c
}

// FileURLs lists the document and media URLs attached to e.
func (e Event) FileURLs() []string {
	urls := make([]string, 0, len(e.Documents)+len(e.Media))
	for _, d := range e.Documents {
		urls = append(urls, d.URL)
	}
	for _, m := range e.Media {
		urls = append(urls, m.URL)
	}
	return urls
}

// TitleWithCustomSport appends the free-text sport to the base title.
func TitleWithCustomSport(base, custom string) string {
	if custom == "" {
		return base
	}
	return base + " (" + custom + ")"
}

// BaseTitle strips the " (custom)" suffix added by TitleWithCustomSport.
func BaseTitle(title, custom string) string {
	if custom == "" {
		return title
	}
	return strings.TrimSpace(strings.TrimSuffix(title, " ("+custom+")"))
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// EventDraft is the add/edit form of an event before validation.
type EventDraft struct {
	Title           string       `json:"title"`
	Date            string       `json:"date"`
	Time            string       `json:"time"`
	Location        string       `json:"location"`
	Sport           Sport        `json:"sport"`
	CustomSport     string       `json:"custom_sport"`
	EventType       EventType    `json:"event_type"`
	EventLevel      EventLevel   `json:"event_level"`
	EventNumber     string       `json:"event_number"`
	Description     string       `json:"description"`
	Organizer       string       `json:"organizer"`
	MaxParticipants int          `json:"max_participants"`
	MaxSpectators   *int         `json:"max_spectators"`
	Status          EventStatus  `json:"status"`
	Result          string       `json:"result"`
	Documents       []Attachment `json:"documents"`
	Media           []Media      `json:"media"`
}

// Registration is a single sign-up for an event. Repeated sign-ups are kept.
type Registration struct {
	ID           int       `json:"id"`
	EventID      int       `json:"event_id"`
	UserEmail    *string   `json:"user_email,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}
