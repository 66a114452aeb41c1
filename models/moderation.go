package models

import (
	"errors"
	"fmt"
)

// ModerationState is shared by events and users.
type ModerationState string

const (
	StatePending  ModerationState = "pending"
	StateApproved ModerationState = "approved"
	StateDeleted  ModerationState = "deleted"
)

// ModerationAction triggers a state transition.
type ModerationAction string

const (
	ActionApprove ModerationAction = "approve"
	ActionReject  ModerationAction = "reject"
)

var ErrInvalidTransition = errors.New("invalid moderation transition")

var allowedTransitions = map[ModerationState]map[ModerationAction]ModerationState{
	StatePending: {
		ActionApprove: StateApproved,
		ActionReject:  StateDeleted,
	},
	StateApproved: {
		ActionReject: StateDeleted,
	},
	StateDeleted: {},
}

// Transition returns the state reached by applying action to from.
// Approved and deleted are terminal for approve; nothing leaves deleted.
func Transition(from ModerationState, action ModerationAction) (ModerationState, error) {
	next, ok := allowedTransitions[from][action]
	if !ok {
		return from, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, from)
	}
	return next, nil
}

func (s ModerationState) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}
