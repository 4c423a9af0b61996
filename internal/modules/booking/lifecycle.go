package booking

import (
	"fmt"
	"time"

	"artistbook/internal/domain"
)

type Action string

const (
	ActionAccept   Action = "accept"
	ActionDecline  Action = "decline"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
)

// Actor is the authenticated party performing a lifecycle action.
type Actor struct {
	UserID int64
	Role   domain.UserRole
}

// transitions is the full legal state machine. Anything outside it is an
// invalid transition; terminal states have no outgoing edges.
var transitions = map[domain.BookingStatus]map[Action]domain.BookingStatus{
	domain.BookingRequested: {
		ActionAccept:  domain.BookingConfirmed,
		ActionDecline: domain.BookingDeclined,
		ActionCancel:  domain.BookingCancelled,
	},
	domain.BookingConfirmed: {
		ActionCancel:   domain.BookingCancelled,
		ActionComplete: domain.BookingCompleted,
	},
}

// applyTransition mutates the booking in memory: status moves along the
// table and a history entry is appended. The caller persists the result with
// a compare-and-set on the previous status.
func applyTransition(b *domain.Booking, action Action, actor Actor, reason string, now time.Time) error {
	next, ok := transitions[b.Status][action]
	if !ok {
		return fmt.Errorf("%w: cannot %s a %s booking", ErrInvalidStatusTransition, action, b.Status)
	}

	switch action {
	case ActionAccept, ActionDecline, ActionComplete:
		if actor.UserID != b.ArtistID {
			return fmt.Errorf("%w: only the artist may %s", ErrForbidden, action)
		}
	case ActionCancel:
		if !b.IsParty(actor.UserID) {
			return fmt.Errorf("%w: only a party to the booking may cancel", ErrForbidden)
		}
	}

	if action == ActionDecline && reason == "" {
		return fmt.Errorf("%w: a reason is required to decline", ErrValidation)
	}
	if action == ActionCancel && b.Status == domain.BookingConfirmed && reason == "" {
		return fmt.Errorf("%w: a reason is required to cancel a confirmed booking", ErrValidation)
	}
	if action == ActionComplete && domain.DateOnly(b.Date).After(domain.DateOnly(now)) {
		return fmt.Errorf("%w: cannot complete before the session date", ErrInvalidStatusTransition)
	}

	b.Status = next
	b.StatusHistory = append(b.StatusHistory, domain.StatusChange{
		Status:    next,
		Timestamp: now,
		Reason:    reason,
	})
	return nil
}
