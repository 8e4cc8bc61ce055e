package orders

import (
	"fmt"
	"strings"

	"github.com/JAX838/divine-sounds/models"
)

// TransitionPolicy decides which status moves are legal once the new status
// has passed enumeration validation.
type TransitionPolicy int

const (
	// TransitionFree allows any status to be set to any other, matching
	// the historical behavior (manual corrections included).
	TransitionFree TransitionPolicy = iota
	// TransitionForwardOnly only allows moves to a strictly later
	// lifecycle state.
	TransitionForwardOnly
)

// ParsePolicy maps configuration strings to a policy, defaulting to free.
func ParsePolicy(s string) TransitionPolicy {
	if strings.EqualFold(s, "forward") {
		return TransitionForwardOnly
	}
	return TransitionFree
}

// ParseStatus validates a client-supplied status value case-insensitively
// and returns the canonical form.
func ParseStatus(s string) (models.OrderStatus, error) {
	for _, known := range []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusConfirmed,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	} {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (p TransitionPolicy) allows(from, to models.OrderStatus) bool {
	if p == TransitionFree {
		return true
	}
	return to.Rank() > from.Rank()
}
