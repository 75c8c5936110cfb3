package clients

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/axend/internal/telemetry/tracing"
	"github.com/2beens/axend/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=clients_test

type profilesRepo interface {
	Create(ctx context.Context, profile Profile) (*Profile, error)
	Get(ctx context.Context, id uuid.UUID) (*Profile, error)
	SetTargetWeight(ctx context.Context, id uuid.UUID, weight *float64) error
}

type cacheInvalidator interface {
	InvalidateClient(ctx context.Context, clientID uuid.UUID) error
}

type SetTargetWeightRequest struct {
	TargetWeight *float64 `json:"targetWeight"`
}

type Handler struct {
	repo        profilesRepo
	invalidator cacheInvalidator
}

func NewHandler(repo profilesRepo, invalidator cacheInvalidator) *Handler {
	return &Handler{
		repo:        repo,
		invalidator: invalidator,
	}
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.create")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var profile Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Tracef("new client, unmarshal json params: %s", err)
		http.Error(w, "create client failed", http.StatusBadRequest)
		return
	}
	if err := profile.Validate(); err != nil {
		http.Error(w, "invalid client: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.repo.Create(ctx, profile)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			http.Error(w, "client already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to create client: %s", err)
		http.Error(w, "error, failed to create client", http.StatusInternalServerError)
		return
	}

	createdJson, err := json.Marshal(created)
	if err != nil {
		log.Errorf("failed to marshal new client: %s", err)
		http.Error(w, "error, failed to create client", http.StatusInternalServerError)
		return
	}

	log.Debugf("new client created: %s", created.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, createdJson, http.StatusCreated)
}

func (handler *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.profile.get")
	defer span.End()

	clientID, err := uuid.Parse(mux.Vars(r)["clientId"])
	if err != nil {
		http.Error(w, "error, invalid client id", http.StatusBadRequest)
		return
	}

	profile, err := handler.repo.Get(ctx, clientID)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get client profile %s: %s", clientID, err)
		http.Error(w, "failed to get client profile", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("failed to marshal client profile: %s", err)
		http.Error(w, "failed to marshal client profile", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, profileJson, http.StatusOK)
}

func (handler *Handler) HandleSetTargetWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.profile.settargetweight")
	defer span.End()

	clientID, err := uuid.Parse(mux.Vars(r)["clientId"])
	if err != nil {
		http.Error(w, "error, invalid client id", http.StatusBadRequest)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req SetTargetWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("set target weight, unmarshal json params: %s", err)
		http.Error(w, "set target weight failed", http.StatusBadRequest)
		return
	}
	if err := validateWeight("target weight", req.TargetWeight); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.SetTargetWeight(ctx, clientID, req.TargetWeight); err != nil {
		if errors.Is(err, ErrClientNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to set target weight for client %s: %s", clientID, err)
		http.Error(w, "failed to set target weight", http.StatusInternalServerError)
		return
	}

	if err := handler.invalidator.InvalidateClient(ctx, clientID); err != nil {
		// the snapshot expires on its own, no need to fail the request
		log.Errorf("failed to invalidate progress cache for client %s: %s", clientID, err)
	}

	profile, err := handler.repo.Get(ctx, clientID)
	if err != nil {
		log.Errorf("failed to re-read client profile %s: %s", clientID, err)
		http.Error(w, "failed to get client profile", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("failed to marshal client profile: %s", err)
		http.Error(w, "failed to marshal client profile", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, profileJson, http.StatusOK)
}
