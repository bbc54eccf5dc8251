package review

import (
	"fmt"

	"github.com/ykondo/camper-journal/internal/domain"
)

// Plan is a trip's planned side: purposes and checklist items as fetched
// from the record store (plus any custom entries the caller merged in).
type Plan struct {
	Purposes []domain.Purpose
	Items    []domain.ChecklistItem
}

// Progress is a trip's recorded side: raw identifiers of achieved purposes
// and used items. The lists may come from a prior snapshot, from the
// planning state, or from a union of both — the merge policy belongs to the
// caller. Entries are raw and possibly legacy-shaped; Reconcile normalizes
// them.
type Progress struct {
	AchievedMainRaw []string
	AchievedSubRaw  []string
	UsedRaw         []string
}

// ReconciledState is the intersection of plan and progress, ready for
// scoring. Totals are the deduplicated plan counts; Dropped counts entries
// (plan or progress) that could not be normalized and were skipped.
type ReconciledState struct {
	MainAchieved []domain.Purpose
	SubAchieved  []domain.Purpose
	ItemsUsed    []domain.ChecklistItem

	MainTotal  int
	SubTotal   int
	ItemsTotal int

	Dropped int
}

// Reconcile merges a trip's planned purposes and items with its recorded
// progress, deduplicating by semantic identity (name) rather than raw
// identifier.
//
// Duplicate plan rows are an expected upstream artifact and are collapsed
// silently, first occurrence wins. Progress entries that fail normalization
// are dropped and counted in Dropped — partial or corrupt progress data
// must never block the rest of the review. The only error returned is a nil
// plan, which wraps domain.ErrInvalidPlan and signals a caller bug.
func Reconcile(plan *Plan, progress Progress) (ReconciledState, error) {
	if plan == nil {
		return ReconciledState{}, fmt.Errorf("review.Reconcile: %w", domain.ErrInvalidPlan)
	}

	var state ReconciledState

	// Deduplicate the plan. Every raw identifier seen for an identity is
	// kept as a match candidate, so a duplicate row's ID still counts as
	// that entry — marking any one of them marks the unit.
	purposes, purposeKeys := dedupePurposes(plan.Purposes, &state.Dropped)
	items, itemKeys := dedupeItems(plan.Items, &state.Dropped)

	achievedMain := normalizeSet(progress.AchievedMainRaw, KindPurpose, &state.Dropped)
	achievedSub := normalizeSet(progress.AchievedSubRaw, KindPurpose, &state.Dropped)
	usedItems := normalizeSet(progress.UsedRaw, KindItem, &state.Dropped)

	for _, p := range purposes {
		key := purposeKey(p.Category, p.Identity)
		achieved := achievedSub
		if p.Category == domain.CategoryMain {
			achieved = achievedMain
		}
		if anyIn(purposeKeys[key], achieved) {
			if p.Category == domain.CategoryMain {
				state.MainAchieved = append(state.MainAchieved, p)
			} else {
				state.SubAchieved = append(state.SubAchieved, p)
			}
		}
		if p.Category == domain.CategoryMain {
			state.MainTotal++
		} else {
			state.SubTotal++
		}
	}

	for _, it := range items {
		if anyIn(itemKeys[it.Identity], usedItems) {
			state.ItemsUsed = append(state.ItemsUsed, it)
		}
	}
	state.ItemsTotal = len(items)

	return state, nil
}

// dedupePurposes collapses plan purposes by (category, identity), first
// occurrence wins. The returned map holds every canonical identifier seen
// for each unit, including those of dropped duplicates. Entries that cannot
// be normalized at all (custom rows with blank names) are skipped and
// counted.
func dedupePurposes(purposes []domain.Purpose, dropped *int) ([]domain.Purpose, map[string][]string) {
	var kept []domain.Purpose
	keys := make(map[string][]string)

	for _, p := range purposes {
		canonical, err := Normalize(p.RawID, p.Identity, KindPurpose)
		if err != nil {
			*dropped++
			continue
		}
		key := purposeKey(p.Category, p.Identity)
		if _, seen := keys[key]; !seen {
			kept = append(kept, p)
		}
		keys[key] = append(keys[key], canonical)
	}
	return kept, keys
}

// dedupeItems collapses plan items by identity, first occurrence wins,
// collecting every canonical identifier per identity.
func dedupeItems(items []domain.ChecklistItem, dropped *int) ([]domain.ChecklistItem, map[string][]string) {
	var kept []domain.ChecklistItem
	keys := make(map[string][]string)

	for _, it := range items {
		canonical, err := Normalize(it.RawID, it.Identity, KindItem)
		if err != nil {
			*dropped++
			continue
		}
		if _, seen := keys[it.Identity]; !seen {
			kept = append(kept, it)
		}
		keys[it.Identity] = append(keys[it.Identity], canonical)
	}
	return kept, keys
}

// normalizeSet normalizes a list of raw progress identifiers into a lookup
// set. Raw progress entries carry no name context, so custom entries only
// survive if they are already in canonical form; failures are dropped and
// counted.
func normalizeSet(raw []string, kind Kind, dropped *int) map[string]struct{} {
	set := make(map[string]struct{}, len(raw))
	for _, id := range raw {
		canonical, err := Normalize(id, "", kind)
		if err != nil {
			*dropped++
			continue
		}
		set[canonical] = struct{}{}
	}
	return set
}

// anyIn reports whether any of the candidate keys is present in set.
func anyIn(candidates []string, set map[string]struct{}) bool {
	for _, c := range candidates {
		if _, ok := set[c]; ok {
			return true
		}
	}
	return false
}

func purposeKey(category domain.PurposeCategory, identity string) string {
	return string(category) + "\x00" + identity
}
