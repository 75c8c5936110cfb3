package measurements

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=measurements_test

type service interface {
	Upsert(ctx context.Context, m Measurement) (*Measurement, error)
	List(ctx context.Context, clientID uuid.UUID) ([]Measurement, error)
	Delete(ctx context.Context, clientID uuid.UUID, date pkg.Date) error
	Trend(ctx context.Context, clientID uuid.UUID) (*Trend, error)
}

type ListResponse struct {
	Measurements []Measurement `json:"measurements"`
	Total        int           `json:"total"`
}

type DeleteResponse struct {
	ClientID uuid.UUID `json:"clientId"`
	Date     pkg.Date  `json:"date"`
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.upsert")
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

	var m Measurement
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		log.Tracef("upsert measurement, unmarshal json params: %s", err)
		http.Error(w, "invalid measurement json", http.StatusBadRequest)
		return
	}
	m.ClientID = clientID
	if err := m.Validate(); err != nil {
		http.Error(w, "invalid measurement: "+err.Error(), http.StatusBadRequest)
		return
	}

	stored, err := handler.service.Upsert(ctx, m)
	if err != nil {
		if errors.Is(err, clients.ErrClientNotFound) {
			http.Error(w, "client not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to upsert measurement [%s] [%s]: %s", clientID, m.Date, err)
		http.Error(w, "error, failed to store measurement", http.StatusInternalServerError)
		return
	}

	storedJson, err := json.Marshal(stored)
	if err != nil {
		log.Errorf("failed to marshal measurement: %s", err)
		http.Error(w, "error, failed to store measurement", http.StatusInternalServerError)
		return
	}

	log.Debugf("measurement stored: %s", storedJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, storedJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.list")
	defer span.End()

	clientID, err := uuid.Parse(mux.Vars(r)["clientId"])
	if err != nil {
		http.Error(w, "error, invalid client id", http.StatusBadRequest)
		return
	}

	measurements, err := handler.service.List(ctx, clientID)
	if err != nil {
		log.Errorf("failed to list measurements for client %s: %s", clientID, err)
		http.Error(w, "failed to list measurements", http.StatusInternalServerError)
		return
	}
	if measurements == nil {
		measurements = []Measurement{}
	}

	listJson, err := json.Marshal(ListResponse{
		Measurements: measurements,
		Total:        len(measurements),
	})
	if err != nil {
		log.Errorf("failed to marshal measurements: %s", err)
		http.Error(w, "failed to marshal measurements", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listJson, http.StatusOK)
}

func (handler *Handler) HandleTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.trend")
	defer span.End()

	clientID, err := uuid.Parse(mux.Vars(r)["clientId"])
	if err != nil {
		http.Error(w, "error, invalid client id", http.StatusBadRequest)
		return
	}

	trend, err := handler.service.Trend(ctx, clientID)
	if err != nil {
		log.Errorf("failed to get weight trend for client %s: %s", clientID, err)
		http.Error(w, "failed to get weight trend", http.StatusInternalServerError)
		return
	}

	trendJson, err := json.Marshal(trend)
	if err != nil {
		log.Errorf("failed to marshal weight trend: %s", err)
		http.Error(w, "failed to marshal weight trend", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, trendJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.delete")
	defer span.End()

	vars := mux.Vars(r)
	clientID, err := uuid.Parse(vars["clientId"])
	if err != nil {
		http.Error(w, "error, invalid client id", http.StatusBadRequest)
		return
	}
	date, err := pkg.ParseDate(vars["date"])
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	if err := handler.service.Delete(ctx, clientID, date); err != nil {
		if errors.Is(err, ErrMeasurementNotFound) {
			http.Error(w, "measurement not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete measurement [%s] [%s]: %s", clientID, date, err)
		http.Error(w, "failed to delete measurement", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteResponse{ClientID: clientID, Date: date})
	if err != nil {
		log.Errorf("failed to marshal delete measurement response: %s", err)
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
