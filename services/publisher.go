package services

import (
	"github.com/Dosada05/sports-calendar/models"
)

// Publisher broadcasts state changes to live-update subscribers.
type Publisher interface {
	Publish(msgType string, payload interface{})
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, interface{}) {}

func publisherOrNop(p Publisher) Publisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}

// eventPayload hides pending events from public subscribers.
func eventPayload(e models.Event) interface{} {
	if e.Approved() {
		return e
	}
	return map[string]interface{}{"id": e.ID, "state": e.State}
}
