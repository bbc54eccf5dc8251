package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ykondo/camper-journal/internal/domain"
)

// PurposeResponse is the wire form of one planned purpose.
type PurposeResponse struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Category domain.PurposeCategory `json:"category"`
	Origin   domain.Origin          `json:"origin"`
}

// ItemResponse is the wire form of one planned checklist item.
type ItemResponse struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Origin domain.Origin `json:"origin"`
}

// PlanResponse is the body for GET /trips/{id}/plan: the planned purposes,
// the checklist items in scope, and the raw planning state.
type PlanResponse struct {
	Purposes      []PurposeResponse    `json:"purposes"`
	Items         []ItemResponse       `json:"items"`
	PlanningState domain.PlanningState `json:"planning_state"`
}

// PlanRequest is the body for PUT /trips/{id}/plan. It replaces the trip's
// purpose assignments and planning state wholesale.
type PlanRequest struct {
	MainPurposeIDs []int64              `json:"main_purpose_ids"`
	SubPurposeIDs  []int64              `json:"sub_purpose_ids"`
	CustomPurposes []string             `json:"custom_purposes"`
	CheckedItems   []string             `json:"checked_items"`
	CustomItems    []domain.CustomEntry `json:"custom_items"`
}

// GetPlan handles GET /trips/{id}/plan.
func (s *Server) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	if _, err := s.trips.GetByID(r.Context(), id); err != nil {
		respondServiceError(w, err, "trip not found")
		return
	}

	resp, err := s.planResponse(r, id)
	if err != nil {
		respondServiceError(w, err, "trip not found")
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// PutPlan handles PUT /trips/{id}/plan. Purposes are replaced first, then
// the planning state, and the resulting plan is returned.
func (s *Server) PutPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	var body PlanRequest
	if err := decodeJSON(r, &body); err != nil {
		respondBadRequest(w, "request body is required")
		return
	}

	if err := s.plans.SetPurposes(r.Context(), id, body.MainPurposeIDs, body.SubPurposeIDs, body.CustomPurposes); err != nil {
		respondServiceError(w, err, "trip not found")
		return
	}
	if _, err := s.plans.SavePlanningState(r.Context(), id, body.CheckedItems, body.CustomItems); err != nil {
		respondServiceError(w, err, "trip not found")
		return
	}

	resp, err := s.planResponse(r, id)
	if err != nil {
		respondServiceError(w, err, "trip not found")
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// planResponse assembles the shared GET/PUT plan body for one trip.
func (s *Server) planResponse(r *http.Request, id uuid.UUID) (PlanResponse, error) {
	plan, err := s.plans.Plan(r.Context(), id)
	if err != nil {
		return PlanResponse{}, err
	}
	state, err := s.plans.PlanningState(r.Context(), id)
	if err != nil {
		return PlanResponse{}, err
	}

	resp := PlanResponse{
		Purposes:      make([]PurposeResponse, 0, len(plan.Purposes)),
		Items:         make([]ItemResponse, 0, len(plan.Items)),
		PlanningState: state,
	}
	for _, p := range plan.Purposes {
		resp.Purposes = append(resp.Purposes, PurposeResponse{
			ID:       p.RawID,
			Name:     p.Identity,
			Category: p.Category,
			Origin:   p.Origin,
		})
	}
	for _, it := range plan.Items {
		resp.Items = append(resp.Items, ItemResponse{
			ID:     it.RawID,
			Name:   it.Identity,
			Origin: it.Origin,
		})
	}
	return resp, nil
}
