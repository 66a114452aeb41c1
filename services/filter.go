package services

import (
	"strings"
	"unicode/utf8"

	"github.com/kljensen/snowball/russian"

	"github.com/Dosada05/sports-calendar/models"
)

// EventFilter is the public listing predicate: sport equality and free-text search.
type EventFilter struct {
	Sport  models.Sport
	Search string
}

// EventLists is the filtered public listing split by status, in store order.
type EventLists struct {
	Upcoming []models.Event `json:"upcoming"`
	Past     []models.Event `json:"past"`
}

const minStemLength = 3

func (f EventFilter) sportMatches(e models.Event) bool {
	return f.Sport == "" || f.Sport == models.SportAll || e.Sport == f.Sport
}

// terms returns the lowered search term and, for a single word, its stem.
func (f EventFilter) terms() []string {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return nil
	}
	terms := []string{term}
	if words := strings.Fields(term); len(words) == 1 {
		stem := russian.Stem(term, false)
		if stem != term && utf8.RuneCountInString(stem) >= minStemLength {
			terms = append(terms, stem)
		}
	}
	return terms
}

func textMatches(e models.Event, terms []string) bool {
	fields := []string{e.Title, e.Location, e.Organizer}
	if e.EventNumber != nil {
		fields = append(fields, *e.EventNumber)
	}
	for _, field := range fields {
		field = strings.ToLower(field)
		for _, t := range terms {
			if strings.Contains(field, t) {
				return true
			}
		}
	}
	return false
}

// Matches reports whether e passes the filter. Only approved events are eligible.
func (f EventFilter) Matches(e models.Event) bool {
	if !e.Approved() || !f.sportMatches(e) {
		return false
	}
	terms := f.terms()
	return len(terms) == 0 || textMatches(e, terms)
}

// Partition filters events and splits them into upcoming and past, keeping order.
func (f EventFilter) Partition(events []models.Event) EventLists {
	lists := EventLists{Upcoming: []models.Event{}, Past: []models.Event{}}
	terms := f.terms()
	for _, e := range events {
		if !e.Approved() || !f.sportMatches(e) {
			continue
		}
		if len(terms) > 0 && !textMatches(e, terms) {
			continue
		}
		switch e.Status {
		case models.EventStatusPast:
			lists.Past = append(lists.Past, e)
		default:
			lists.Upcoming = append(lists.Upcoming, e)
		}
	}
	return lists
}
