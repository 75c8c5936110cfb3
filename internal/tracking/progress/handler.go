package progress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/axend/internal/telemetry/tracing"
	"github.com/2beens/axend/internal/tracking/clients"
	"github.com/2beens/axend/internal/tracking/goals"
	"github.com/2beens/axend/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type service interface {
	ClientProgress(ctx context.Context, clientID uuid.UUID) (*Snapshot, error)
	GoalProgress(ctx context.Context, goalID uuid.UUID) (*GoalProgress, error)
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleClientProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.client")
	defer span.End()

	clientID, err := uuid.Parse(mux.Vars(r)["clientId"])
	if err != nil {
		http.Error(w, "error, invalid client id", http.StatusBadRequest)
		return
	}

	snap, err := handler.service.ClientProgress(ctx, clientID)
	if err != nil {
		if errors.Is(err, clients.ErrClientNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get progress for client %s: %s", clientID, err)
		http.Error(w, "failed to get client progress", http.StatusInternalServerError)
		return
	}

	snapJson, err := json.Marshal(snap)
	if err != nil {
		log.Errorf("failed to marshal client progress: %s", err)
		http.Error(w, "failed to marshal client progress", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, snapJson, http.StatusOK)
}

func (handler *Handler) HandleGoalProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.goal")
	defer span.End()

	goalID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid goal id", http.StatusBadRequest)
		return
	}

	gp, err := handler.service.GoalProgress(ctx, goalID)
	if err != nil {
		if errors.Is(err, goals.ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get progress for goal %s: %s", goalID, err)
		http.Error(w, "failed to get goal progress", http.StatusInternalServerError)
		return
	}

	gpJson, err := json.Marshal(gp)
	if err != nil {
		log.Errorf("failed to marshal goal progress: %s", err)
		http.Error(w, "failed to marshal goal progress", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, gpJson, http.StatusOK)
}
