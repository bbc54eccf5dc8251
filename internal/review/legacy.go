package review

import "strings"

// legacyNamePrefix is the old name-carrying custom identifier shape
// (custom_name_<name>). The name can be recovered from the ID itself.
const legacyNamePrefix = "custom_name_"

// RewriteLegacyIdentifiers converts legacy custom identifiers in a stored
// progress list to canonical form, using the trip's custom entry names as
// context.
//
// Three legacy shapes exist in old snapshots:
//
//   - custom_name_<name>      — carries its own name; rewritten directly
//   - custom_<timestamp>      — no name; matched heuristically
//   - custom_<timestamp>_<i>  — same, with an index suffix
//
// The timestamp shapes lost their originating name, so they are matched
// against the first available custom entry name for the trip. That is a
// heuristic, not a guarantee: if the custom entry was renamed or removed,
// the original ID is kept unchanged and will be dropped by Reconcile.
// Stable numeric/UUID identifiers and already-canonical entries pass
// through untouched. Duplicates produced by the rewrite are collapsed.
func RewriteLegacyIdentifiers(raw []string, customNames []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	fallback := ""
	for _, name := range customNames {
		if strings.TrimSpace(name) != "" {
			fallback = strings.TrimSpace(name)
			break
		}
	}

	for _, id := range raw {
		rewritten := rewriteLegacyID(id, fallback)
		if _, dup := seen[rewritten]; dup {
			continue
		}
		seen[rewritten] = struct{}{}
		out = append(out, rewritten)
	}
	return out
}

func rewriteLegacyID(id, fallback string) string {
	if integerPattern.MatchString(id) || uuidPattern.MatchString(id) {
		return id
	}
	if strings.HasPrefix(id, CustomPrefix) {
		return id
	}
	if name, ok := strings.CutPrefix(id, legacyNamePrefix); ok && strings.TrimSpace(name) != "" {
		return CanonicalCustom(name)
	}
	if strings.HasPrefix(id, "custom_") && fallback != "" {
		return CanonicalCustom(fallback)
	}
	return id
}
