package catalog

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// PackageType classifies a price plan by the kind of photo shoot it covers.
type PackageType int

const (
	// UnknownType represents an invalid or undefined package type.
	// This value (0) helps catch uninitialized PackageType values.
	UnknownType PackageType = iota

	// Portrait covers individual and family portrait sessions.
	// It is also the coercion default for malformed stored values.
	Portrait

	// Maternity covers maternity and newborn sessions.
	Maternity

	// Events covers weddings and other event coverage.
	Events
)

// getPackageTypeStrings returns a map of PackageType values to their string
// representations. All types are included for string conversion.
func getPackageTypeStrings() map[PackageType]string {
	return map[PackageType]string{
		UnknownType: "unknown",
		Portrait:    "portrait",
		Maternity:   "maternity",
		Events:      "events",
	}
}

// getValidPackageTypeStrings returns a map of only valid PackageType values.
func getValidPackageTypeStrings() map[PackageType]string {
	//nolint:exhaustive // UnknownType is intentionally excluded as it's invalid
	return map[PackageType]string{
		Portrait:  "portrait",
		Maternity: "maternity",
		Events:    "events",
	}
}

// Validate checks if the PackageType value is valid.
// Valid types are: Portrait, Maternity, Events.
func (t PackageType) Validate() error {
	if _, ok := getValidPackageTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("package type is invalid", fmt.Errorf("%d is not a valid package type", t))
	}
	return nil
}

// String returns the lower-case name of the package type, matching the wire
// form used by the HTTP API and storage. Invalid values render as "unknown".
func (t PackageType) String() string {
	if str, ok := getPackageTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// ParsePackageType converts a wire-form type string into a PackageType.
// Returns an error for anything that is not portrait, maternity or events.
func ParsePackageType(s string) (PackageType, error) {
	for packageType, str := range getValidPackageTypeStrings() {
		if str == s {
			return packageType, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause(
		"package type is invalid",
		fmt.Errorf("%q is not a valid package type", s),
	)
}

// CoercePackageType converts a loosely-typed stored value into a PackageType,
// falling back to Portrait for anything malformed. Stored documents predate
// validation and may carry arbitrary values in the type field.
func CoercePackageType(v any) PackageType {
	s, ok := v.(string)
	if !ok {
		return Portrait
	}
	packageType, err := ParsePackageType(s)
	if err != nil {
		return Portrait
	}
	return packageType
}
