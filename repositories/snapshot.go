package repositories

import (
	"github.com/Dosada05/sports-calendar/models"
)

// Snapshot is an immutable view of every collection. Update functions
// return a new Snapshot and never modify the receiver's slices.
type Snapshot struct {
	Version       int64
	Events        []models.Event
	Users         []models.User
	Registrations []models.Registration
}

// NextEventID returns max(existing ids, 0) + 1. Ids of deleted events can be reused.
func (s Snapshot) NextEventID() int {
	maxID := 0
	for _, e := range s.Events {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}

func (s Snapshot) nextRegistrationID() int {
	maxID := 0
	for _, r := range s.Registrations {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return maxID + 1
}

func (s Snapshot) eventIndex(id int) int {
	for i, e := range s.Events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s Snapshot) userIndex(email string) int {
	for i, u := range s.Users {
		if u.Email == email {
			return i
		}
	}
	return -1
}

// FindEvent returns a detached copy of the event with the given id.
func (s Snapshot) FindEvent(id int) (models.Event, bool) {
	i := s.eventIndex(id)
	if i < 0 {
		return models.Event{}, false
	}
	return s.Events[i].Clone(), true
}

func (s Snapshot) FindUser(email string) (models.User, bool) {
	i := s.userIndex(email)
	if i < 0 {
		return models.User{}, false
	}
	return s.Users[i], true
}

func (s Snapshot) WithEventAdded(e models.Event) Snapshot {
	out := s
	out.Events = make([]models.Event, 0, len(s.Events)+1)
	out.Events = append(out.Events, s.Events...)
	out.Events = append(out.Events, e.Clone())
	return out
}

// WithEventReplaced swaps the event with e.ID in place, keeping its position.
func (s Snapshot) WithEventReplaced(e models.Event) (Snapshot, error) {
	i := s.eventIndex(e.ID)
	if i < 0 {
		return s, ErrEventNotFound
	}
	out := s
	out.Events = append([]models.Event(nil), s.Events...)
	out.Events[i] = e.Clone()
	return out, nil
}

// WithoutEvent removes the event and every registration that points to it.
func (s Snapshot) WithoutEvent(id int) (Snapshot, error) {
	i := s.eventIndex(id)
	if i < 0 {
		return s, ErrEventNotFound
	}
	out := s
	out.Events = make([]models.Event, 0, len(s.Events)-1)
	out.Events = append(out.Events, s.Events[:i]...)
	out.Events = append(out.Events, s.Events[i+1:]...)

	out.Registrations = make([]models.Registration, 0, len(s.Registrations))
	for _, r := range s.Registrations {
		if r.EventID != id {
			out.Registrations = append(out.Registrations, r)
		}
	}
	return out, nil
}

func (s Snapshot) WithUserAdded(u models.User) (Snapshot, error) {
	if s.userIndex(u.Email) >= 0 {
		return s, ErrUserEmailConflict
	}
	out := s
	out.Users = make([]models.User, 0, len(s.Users)+1)
	out.Users = append(out.Users, s.Users...)
	out.Users = append(out.Users, u)
	return out, nil
}

func (s Snapshot) WithUserReplaced(u models.User) (Snapshot, error) {
	i := s.userIndex(u.Email)
	if i < 0 {
		return s, ErrUserNotFound
	}
	out := s
	out.Users = append([]models.User(nil), s.Users...)
	out.Users[i] = u
	return out, nil
}

func (s Snapshot) WithoutUser(email string) (Snapshot, error) {
	i := s.userIndex(email)
	if i < 0 {
		return s, ErrUserNotFound
	}
	out := s
	out.Users = make([]models.User, 0, len(s.Users)-1)
	out.Users = append(out.Users, s.Users[:i]...)
	out.Users = append(out.Users, s.Users[i+1:]...)
	return out, nil
}

// WithRegistration appends r with the next registration id.
func (s Snapshot) WithRegistration(r models.Registration) (Snapshot, models.Registration) {
	r.ID = s.nextRegistrationID()
	out := s
	out.Registrations = make([]models.Registration, 0, len(s.Registrations)+1)
	out.Registrations = append(out.Registrations, s.Registrations...)
	out.Registrations = append(out.Registrations, r)
	return out, r
}
