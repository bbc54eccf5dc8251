// Package review implements the achievement-review pipeline: identifier
// normalization, plan/progress reconciliation, and achievement scoring.
//
// Everything in this package is a pure function. Callers fetch the plan and
// progress from storage first, then run Reconcile and Score; repeated calls
// with the same inputs always produce the same outputs, so recomputing on
// every request is safe.
package review

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ykondo/camper-journal/internal/domain"
)

// Kind tells Normalize what sort of entry a raw identifier belongs to.
// It only affects error messages; the normalization rules are identical.
type Kind string

const (
	KindPurpose Kind = "purpose"
	KindItem    Kind = "item"
)

// CustomPrefix marks a canonical identifier derived from a custom entry's
// name rather than a stable record-store key.
const CustomPrefix = "custom:"

var (
	integerPattern = regexp.MustCompile(`^[0-9]+$`)
	uuidPattern    = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

// Normalize converts a raw identifier plus optional name into the canonical
// string used for all equality comparisons across sessions.
//
// Numeric and UUID identifiers are stable record-store keys and pass through
// unchanged, as do identifiers already in canonical custom:<name> form.
// Anything else is a client-generated custom identifier (the legacy data
// contains custom_<timestamp>, custom_<timestamp>_<index>, and
// custom_name_<name> shapes); those are unstable across sessions, so the
// canonical form falls back to the trimmed name. A custom identifier with a
// blank name cannot be normalized and yields an error wrapping
// domain.ErrNormalization.
func Normalize(rawID, name string, kind Kind) (string, error) {
	if integerPattern.MatchString(rawID) {
		return rawID, nil
	}
	if uuidPattern.MatchString(rawID) {
		return rawID, nil
	}
	if rest, ok := strings.CutPrefix(rawID, CustomPrefix); ok && strings.TrimSpace(rest) != "" {
		return rawID, nil
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %s %q has no usable name", domain.ErrNormalization, kind, rawID)
	}
	return CustomPrefix + trimmed, nil
}

// CanonicalCustom returns the canonical identifier for a custom entry name.
func CanonicalCustom(name string) string {
	return CustomPrefix + strings.TrimSpace(name)
}
