package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status is the three-state fulfillment status of an order.
//
// Unlike a lifecycle state machine, fulfillment status is derived: the listing
// recomputes it on every read from the order's resolved checklist and its
// delivery completeness (services.DeriveStatus). Orders also carry a stored
// status field that staff can overwrite manually; the stored value never feeds
// back into derivation.
//
// Derivation order matters and is fixed:
//
//	completed: every displayed product has a done "Entregar {name}" task
//	processing: any task anywhere in the checklist is done
//	pending: everything else, including an empty checklist
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending covers orders with no done tasks, including orders whose
	// checklist is empty.
	Pending

	// Processing covers orders with at least one done task that are not yet
	// delivery-complete.
	Processing

	// Completed covers orders whose every displayed product has a done
	// delivery task.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Completed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lower-case name of the status, matching the wire form
// used by the HTTP API. Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ParseStatus converts a wire-form status string into a Status value.
// Returns an error for anything that is not pending, processing or completed.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}
