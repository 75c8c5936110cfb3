package goals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/axend/internal/telemetry/tracing"
	"github.com/2beens/axend/internal/tracking/clients"
	"github.com/2beens/axend/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=goals_test

type goalsRepo interface {
	Add(ctx context.Context, goal Goal) (*Goal, error)
	Get(ctx context.Context, id uuid.UUID) (*Goal, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]Goal, error)
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

type cacheInvalidator interface {
	InvalidateClient(ctx context.Context, clientID uuid.UUID) error
}

type DeleteGoalResponse struct {
	DeletedID uuid.UUID `json:"deletedId"`
}

type ListResponse struct {
	Goals []Goal `json:"goals"`
	Total int    `json:"total"`
}

type Handler struct {
	repo        goalsRepo
	invalidator cacheInvalidator
}

func NewHandler(repo goalsRepo, invalidator cacheInvalidator) *Handler {
	return &Handler{
		repo:        repo,
		invalidator: invalidator,
	}
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.create")
	defer span.End()

	clientID, err := uuid.Parse(mux.Vars(r)["clientId"])
	if err != nil {
		http.Error(w, "error, invalid client id", http.StatusBadRequest)
		return
	}

	goal, ok := decodeGoal(w, r)
	if !ok {
		return
	}
	goal.ID = uuid.Nil
	goal.ClientID = clientID

	added, err := handler.repo.Add(ctx, goal)
	if err != nil {
		if errors.Is(err, clients.ErrClientNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to add goal for client %s: %s", clientID, err)
		http.Error(w, "error, failed to add goal", http.StatusInternalServerError)
		return
	}

	handler.invalidate(ctx, clientID)

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal new goal: %s", err)
		http.Error(w, "error, failed to add goal", http.StatusInternalServerError)
		return
	}

	log.Debugf("new goal added: %s", addedJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	clientID, err := uuid.Parse(mux.Vars(r)["clientId"])
	if err != nil {
		http.Error(w, "error, invalid client id", http.StatusBadRequest)
		return
	}

	goals, err := handler.repo.ListByClient(ctx, clientID)
	if err != nil {
		log.Errorf("failed to list goals for client %s: %s", clientID, err)
		http.Error(w, "failed to list goals", http.StatusInternalServerError)
		return
	}
	if goals == nil {
		goals = []Goal{}
	}

	listJson, err := json.Marshal(ListResponse{
		Goals: goals,
		Total: len(goals),
	})
	if err != nil {
		log.Errorf("failed to marshal goals: %s", err)
		http.Error(w, "failed to marshal goals", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.get")
	defer span.End()

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid goal id", http.StatusBadRequest)
		return
	}

	goal, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get goal %s: %s", id, err)
		http.Error(w, "failed to get goal", http.StatusInternalServerError)
		return
	}

	goalJson, err := json.Marshal(goal)
	if err != nil {
		log.Errorf("failed to marshal goal: %s", err)
		http.Error(w, "failed to marshal goal", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, goalJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.update")
	defer span.End()

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid goal id", http.StatusBadRequest)
		return
	}

	goal, ok := decodeGoal(w, r)
	if !ok {
		return
	}
	goal.ID = id

	if err := handler.repo.Update(ctx, &goal); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update goal %s: %s", id, err)
		http.Error(w, "failed to update goal", http.StatusInternalServerError)
		return
	}

	handler.invalidate(ctx, goal.ClientID)

	goalJson, err := json.Marshal(goal)
	if err != nil {
		log.Errorf("failed to marshal goal: %s", err)
		http.Error(w, "failed to marshal goal", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, goalJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
	defer span.End()

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid goal id", http.StatusBadRequest)
		return
	}

	clientID, err := handler.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete goal %s: %s", id, err)
		http.Error(w, "failed to delete goal", http.StatusInternalServerError)
		return
	}

	handler.invalidate(ctx, clientID)

	respJson, err := json.Marshal(DeleteGoalResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete goal response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// decodeGoal reads and validates the goal body, writing the error response itself.
func decodeGoal(w http.ResponseWriter, r *http.Request) (Goal, bool) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return Goal{}, false
	}

	var goal Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		log.Tracef("goal, unmarshal json params: %s", err)
		http.Error(w, "invalid goal json", http.StatusBadRequest)
		return Goal{}, false
	}
	if goal.Status == "" {
		goal.Status = StatusActive
	}
	if err := goal.Validate(); err != nil {
		http.Error(w, "invalid goal: "+err.Error(), http.StatusBadRequest)
		return Goal{}, false
	}
	return goal, true
}

func (handler *Handler) invalidate(ctx context.Context, clientID uuid.UUID) {
	if err := handler.invalidator.InvalidateClient(ctx, clientID); err != nil {
		// the snapshot expires on its own, no need to fail the request
		log.Errorf("failed to invalidate progress cache for client %s: %s", clientID, err)
	}
}
