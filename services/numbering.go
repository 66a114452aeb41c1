package services

import (
	"fmt"
	"time"

	"github.com/Dosada05/sports-calendar/models"
)

// autoNumberedLevels получают номер вида MO-{год}-{id} для местных мероприятий.
var autoNumberedLevels = map[models.EventLevel]bool{
	models.LevelMunicipal:      true,
	models.LevelIntermunicipal: true,
}

// EventNumberFor returns the auto-assigned number for a local municipal or
// intermunicipal event, and false for every other combination.
func EventNumberFor(eventType models.EventType, level models.EventLevel, date string, id int) (string, bool) {
	if eventType != models.EventTypeLocal || !autoNumberedLevels[level] {
		return "", false
	}
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("MO-%d-%03d", d.Year(), id), true
}

// renumber returns the number an edited event should carry. An auto number
// follows the event's type, level and year; once the event stops qualifying
// the old auto number is dropped, while a manual number is kept.
func renumber(prev, next models.Event) *string {
	if number, ok := EventNumberFor(next.EventType, next.EventLevel, next.Date, next.ID); ok {
		return &number
	}
	if next.EventNumber == nil || prev.EventNumber == nil {
		return next.EventNumber
	}
	if auto, ok := EventNumberFor(prev.EventType, prev.EventLevel, prev.Date, prev.ID); ok && auto == *next.EventNumber {
		return nil
	}
	return next.EventNumber
}
