package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ykondo/camper-journal/internal/domain"
)

// RuleResponse is the wire form of one travel rule with its per-trip
// confirmation state.
type RuleResponse struct {
	ID          int64  `json:"id"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsRequired  bool   `json:"is_required"`
	Confirmed   bool   `json:"confirmed"`
}

// RuleListResponse is the body for GET /trips/{id}/rules.
type RuleListResponse struct {
	Data []RuleResponse `json:"data"`
}

// ConfirmRuleRequest is the body for PUT /trips/{id}/rules/{ruleID}.
type ConfirmRuleRequest struct {
	Confirmed bool `json:"confirmed"`
}

// ConfirmRuleResponse is the resulting confirmation record.
type ConfirmRuleResponse struct {
	TripID      string     `json:"trip_id"`
	RuleID      int64      `json:"rule_id"`
	Confirmed   bool       `json:"confirmed"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
}

// ListTripRules handles GET /trips/{id}/rules.
func (s *Server) ListTripRules(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	rules, err := s.rules.ListForTrip(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "trip not found")
		return
	}

	data := make([]RuleResponse, len(rules))
	for i, rule := range rules {
		data[i] = ruleToResponse(rule)
	}
	respondJSON(w, http.StatusOK, RuleListResponse{Data: data})
}

// ConfirmTripRule handles PUT /trips/{id}/rules/{ruleID}.
func (s *Server) ConfirmTripRule(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}
	ruleID, err := strconv.ParseInt(chi.URLParam(r, "ruleID"), 10, 64)
	if err != nil {
		respondNotFound(w, "rule not found")
		return
	}

	var body ConfirmRuleRequest
	if err := decodeJSON(r, &body); err != nil {
		respondBadRequest(w, "request body is required")
		return
	}

	conf, err := s.rules.Confirm(r.Context(), id, ruleID, body.Confirmed)
	if err != nil {
		respondServiceError(w, err, "rule not found")
		return
	}
	respondJSON(w, http.StatusOK, ConfirmRuleResponse{
		TripID:      conf.TripID.String(),
		RuleID:      conf.RuleID,
		Confirmed:   conf.Confirmed,
		ConfirmedAt: conf.ConfirmedAt,
	})
}

func ruleToResponse(rule domain.TripRule) RuleResponse {
	return RuleResponse{
		ID:          rule.ID,
		Category:    rule.Category,
		Title:       rule.Title,
		Description: rule.Description,
		IsRequired:  rule.IsRequired,
		Confirmed:   rule.Confirmed,
	}
}
