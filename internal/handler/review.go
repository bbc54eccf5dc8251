package handler

import (
	"net/http"
	"time"

	"github.com/ykondo/camper-journal/internal/domain"
	"github.com/ykondo/camper-journal/internal/review"
	"github.com/ykondo/camper-journal/internal/service"
)

// ReviewResponse is the body for GET /trips/{id}/review: the score report
// plus the reconciled detail behind it.
type ReviewResponse struct {
	Report       review.ScoreReport `json:"report"`
	MainAchieved []PurposeResponse  `json:"main_achieved"`
	SubAchieved  []PurposeResponse  `json:"sub_achieved"`
	ItemsUsed    []ItemResponse     `json:"items_used"`
	Dropped      int                `json:"dropped"`
	HasSnapshot  bool               `json:"has_snapshot"`
	CapturedAt   *time.Time         `json:"captured_at,omitempty"`
}

// SaveReviewRequest is the body for PUT /trips/{id}/review. The identifier
// lists may use any raw form the client has; they are canonicalized against
// the trip's plan on save.
type SaveReviewRequest struct {
	AchievedMainPurposes []string `json:"achieved_main_purposes"`
	AchievedSubPurposes  []string `json:"achieved_sub_purposes"`
	UsedItems            []string `json:"used_items"`
}

// GetReview handles GET /trips/{id}/review.
func (s *Server) GetReview(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	outcome, err := s.reviews.Report(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "trip not found")
		return
	}
	respondJSON(w, http.StatusOK, outcomeToResponse(outcome))
}

// PutReview handles PUT /trips/{id}/review. The snapshot is overwritten
// wholesale and the recomputed review is returned.
func (s *Server) PutReview(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	var body SaveReviewRequest
	if err := decodeJSON(r, &body); err != nil {
		respondBadRequest(w, "request body is required")
		return
	}

	if _, err := s.reviews.Save(r.Context(), id, body.AchievedMainPurposes, body.AchievedSubPurposes, body.UsedItems); err != nil {
		respondServiceError(w, err, "trip not found")
		return
	}

	outcome, err := s.reviews.Report(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "trip not found")
		return
	}
	respondJSON(w, http.StatusOK, outcomeToResponse(outcome))
}

// DeleteReview handles DELETE /trips/{id}/review.
func (s *Server) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	if err := s.reviews.Reset(r.Context(), id); err != nil {
		respondServiceError(w, err, "review not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func outcomeToResponse(outcome service.ReviewOutcome) ReviewResponse {
	resp := ReviewResponse{
		Report:       outcome.Report,
		MainAchieved: purposesToResponse(outcome.State.MainAchieved),
		SubAchieved:  purposesToResponse(outcome.State.SubAchieved),
		ItemsUsed:    itemsToResponse(outcome.State.ItemsUsed),
		Dropped:      outcome.State.Dropped,
		HasSnapshot:  outcome.HasSnapshot,
	}
	if outcome.Snapshot != nil {
		capturedAt := outcome.Snapshot.CapturedAt
		resp.CapturedAt = &capturedAt
	}
	return resp
}

func purposesToResponse(purposes []domain.Purpose) []PurposeResponse {
	out := make([]PurposeResponse, len(purposes))
	for i, p := range purposes {
		out[i] = PurposeResponse{ID: p.RawID, Name: p.Identity, Category: p.Category, Origin: p.Origin}
	}
	return out
}

func itemsToResponse(items []domain.ChecklistItem) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = ItemResponse{ID: it.RawID, Name: it.Identity, Origin: it.Origin}
	}
	return out
}
