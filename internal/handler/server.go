// Package handler implements the HTTP handlers for the Camper Journal API.
// All handlers are methods on Server, split into domain-specific files
// (health.go, trip.go, plan.go, rule.go, review.go) but sharing the same
// struct so they can access its dependencies. Routes assembles the chi
// router; global middleware is wired in main.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ykondo/camper-journal/internal/domain"
	"github.com/ykondo/camper-journal/internal/review"
	"github.com/ykondo/camper-journal/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, next domain.TripStatus) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PlanServicer defines the operations the plan handlers depend on.
type PlanServicer interface {
	Plan(ctx context.Context, tripID uuid.UUID) (*review.Plan, error)
	SetPurposes(ctx context.Context, tripID uuid.UUID, mainIDs, subIDs []int64, customNames []string) error
	PlanningState(ctx context.Context, tripID uuid.UUID) (domain.PlanningState, error)
	SavePlanningState(ctx context.Context, tripID uuid.UUID, checkedItems []string, customItems []domain.CustomEntry) (domain.PlanningState, error)
}

// RuleServicer defines the operations the rule handlers depend on.
type RuleServicer interface {
	ListForTrip(ctx context.Context, tripID uuid.UUID) ([]domain.TripRule, error)
	Confirm(ctx context.Context, tripID uuid.UUID, ruleID int64, confirmed bool) (domain.RuleConfirmation, error)
}

// ReviewServicer defines the operations the review handlers depend on.
type ReviewServicer interface {
	Report(ctx context.Context, tripID uuid.UUID) (service.ReviewOutcome, error)
	Save(ctx context.Context, tripID uuid.UUID, achievedMain, achievedSub, usedItems []string) (domain.ReviewSnapshot, error)
	Reset(ctx context.Context, tripID uuid.UUID) error
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	trips   TripServicer
	plans   PlanServicer
	rules   RuleServicer
	reviews ReviewServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, plans PlanServicer, rules RuleServicer, reviews ReviewServicer) *Server {
	return &Server{trips: trips, plans: plans, rules: rules, reviews: reviews}
}

// Routes returns the router for the full API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Post("/status", s.ChangeTripStatus)

			r.Get("/plan", s.GetPlan)
			r.Put("/plan", s.PutPlan)

			r.Get("/rules", s.ListTripRules)
			r.Put("/rules/{ruleID}", s.ConfirmTripRule)

			r.Get("/review", s.GetReview)
			r.Put("/review", s.PutReview)
			r.Delete("/review", s.DeleteReview)
		})
	})

	return r
}
