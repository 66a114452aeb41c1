package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrPatchInvalidField   = errors.New("invalid field value")
	ErrPatchResultNotPast  = errors.New("result can only be set on past events")
	ErrPatchOverCapacity   = errors.New("max participants cannot be below current participants")
	ErrPatchEmptyRequired  = errors.New("required field cannot be emptied")
	ErrPatchUnknownUserKey = errors.New("user patch cannot change email")
)

// EventPatch carries optional changes for an event. Nil fields are left untouched.
type EventPatch struct {
	Title           *string       `json:"title,omitempty"`
	Date            *string       `json:"date,omitempty"`
	Time            *string       `json:"time,omitempty"`
	Location        *string       `json:"location,omitempty"`
	Sport           *Sport        `json:"sport,omitempty"`
	CustomSport     *string       `json:"custom_sport,omitempty"`
	EventType       *EventType    `json:"event_type,omitempty"`
	EventLevel      *EventLevel   `json:"event_level,omitempty"`
	EventNumber     *string       `json:"event_number,omitempty"`
	Description     *string       `json:"description,omitempty"`
	Organizer       *string       `json:"organizer,omitempty"`
	MaxParticipants *int          `json:"max_participants,omitempty"`
	MaxSpectators   *int          `json:"max_spectators,omitempty"`
	Status          *EventStatus  `json:"status,omitempty"`
	Result          *string       `json:"result,omitempty"`
	Documents       *[]Attachment `json:"documents,omitempty"`
	Media           *[]Media      `json:"media,omitempty"`
}

// ApplyPatch returns a patched copy of e. e itself is never modified.
func (e Event) ApplyPatch(p EventPatch) (Event, error) {
	out := e.Clone()

	setRequired := func(dst *string, v *string, field string) error {
		if v == nil {
			return nil
		}
		trimmed := strings.TrimSpace(*v)
		if trimmed == "" {
			return fmt.Errorf("%w: %s", ErrPatchEmptyRequired, field)
		}
		*dst = trimmed
		return nil
	}

	base := BaseTitle(e.Title, e.CustomSport)
	if err := setRequired(&base, p.Title, "title"); err != nil {
		return e, err
	}
	if err := setRequired(&out.Location, p.Location, "location"); err != nil {
		return e, err
	}
	if err := setRequired(&out.Organizer, p.Organizer, "organizer"); err != nil {
		return e, err
	}
	if p.Date != nil {
		if _, err := time.Parse(DateLayout, *p.Date); err != nil {
			return e, fmt.Errorf("%w: date %q", ErrPatchInvalidField, *p.Date)
		}
		out.Date = *p.Date
	}
	if p.Time != nil {
		if _, err := time.Parse(TimeLayout, *p.Time); err != nil {
			return e, fmt.Errorf("%w: time %q", ErrPatchInvalidField, *p.Time)
		}
		out.Time = *p.Time
	}
	if p.Sport != nil {
		if !p.Sport.IsValid() {
			return e, fmt.Errorf("%w: sport %q", ErrPatchInvalidField, *p.Sport)
		}
		out.Sport = *p.Sport
	}
	if p.CustomSport != nil {
		out.CustomSport = strings.TrimSpace(*p.CustomSport)
	}
	if out.Sport == SportOther && out.CustomSport == "" {
		return e, fmt.Errorf("%w: custom_sport", ErrPatchEmptyRequired)
	}
	if out.Sport != SportOther {
		out.CustomSport = ""
	}
	if p.Title != nil || p.Sport != nil || p.CustomSport != nil {
		// A patched title may still carry either the old or the new suffix.
		base = BaseTitle(BaseTitle(base, e.CustomSport), out.CustomSport)
		out.Title = TitleWithCustomSport(base, out.CustomSport)
	}
	if p.EventType != nil {
		if !p.EventType.IsValid() {
			return e, fmt.Errorf("%w: event_type %q", ErrPatchInvalidField, *p.EventType)
		}
		out.EventType = *p.EventType
	}
	if p.EventLevel != nil {
		if !p.EventLevel.IsValid() {
			return e, fmt.Errorf("%w: event_level %q", ErrPatchInvalidField, *p.EventLevel)
		}
		out.EventLevel = *p.EventLevel
	}
	if p.EventNumber != nil {
		if n := strings.TrimSpace(*p.EventNumber); n == "" {
			out.EventNumber = nil
		} else {
			out.EventNumber = &n
		}
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.MaxParticipants != nil {
		if *p.MaxParticipants <= 0 {
			return e, fmt.Errorf("%w: max_participants must be positive", ErrPatchInvalidField)
		}
		if *p.MaxParticipants < out.Participants {
			return e, ErrPatchOverCapacity
		}
		out.MaxParticipants = *p.MaxParticipants
	}
	if p.MaxSpectators != nil {
		if *p.MaxSpectators <= 0 {
			out.MaxSpectators = nil
		} else {
			v := *p.MaxSpectators
			out.MaxSpectators = &v
		}
	}
	if p.Status != nil {
		if !p.Status.IsValid() {
			return e, fmt.Errorf("%w: status %q", ErrPatchInvalidField, *p.Status)
		}
		out.Status = *p.Status
	}
	if p.Result != nil {
		if r := strings.TrimSpace(*p.Result); r == "" {
			out.Result = nil
		} else {
			out.Result = &r
		}
	}
	if out.Result != nil && out.Status != EventStatusPast {
		return e, ErrPatchResultNotPast
	}
	if p.Documents != nil {
		out.Documents = append([]Attachment{}, (*p.Documents)...)
	}
	if p.Media != nil {
		for _, m := range *p.Media {
			if !m.Kind.IsValid() {
				return e, fmt.Errorf("%w: media kind %q", ErrPatchInvalidField, m.Kind)
			}
		}
		out.Media = append([]Media{}, (*p.Media)...)
	}

	return out, nil
}

// UserPatch carries optional profile changes. Email is the identity and cannot change.
type UserPatch struct {
	Email        *string `json:"email,omitempty"`
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Password     *string `json:"password,omitempty"`
	CompanyName  *string `json:"company_name,omitempty"`
	LegalAddress *string `json:"legal_address,omitempty"`
}

func (u User) ApplyPatch(p UserPatch) (User, error) {
	out := u
	if p.Email != nil && *p.Email != u.Email {
		return u, ErrPatchUnknownUserKey
	}
	for _, f := range []struct {
		dst   *string
		v     *string
		field string
	}{
		{&out.Name, p.Name, "name"},
		{&out.Phone, p.Phone, "phone"},
		{&out.Password, p.Password, "password"},
	} {
		if f.v == nil {
			continue
		}
		if strings.TrimSpace(*f.v) == "" {
			return u, fmt.Errorf("%w: %s", ErrPatchEmptyRequired, f.field)
		}
		*f.dst = *f.v
	}
	if u.UserType == UserTypeLegal {
		if p.CompanyName != nil {
			out.CompanyName = strings.TrimSpace(*p.CompanyName)
		}
		if p.LegalAddress != nil {
			out.LegalAddress = strings.TrimSpace(*p.LegalAddress)
		}
	}
	return out, nil
}
