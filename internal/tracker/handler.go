package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/bodystats/internal/bodystats"
	"github.com/2beens/bodystats/internal/telemetry/tracing"
	"github.com/2beens/bodystats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=tracker_mocks_test.go -package=tracker_test

type trackerService interface {
	AddMeasurement(ctx context.Context, input bodystats.MeasurementInput) (*bodystats.Measurement, error)
	ListMeasurements(ctx context.Context) ([]bodystats.Measurement, error)
	DeleteMeasurement(ctx context.Context, id string) error
	Profile(ctx context.Context) (bodystats.UserProfile, error)
	UpdateProfile(ctx context.Context, profile bodystats.UserProfile) error
	Goal(ctx context.Context) (bodystats.Goal, error)
	UpdateGoal(ctx context.Context, goal bodystats.Goal) error
	Report(ctx context.Context) (*bodystats.Report, error)
	MetricReport(ctx context.Context, metric bodystats.Metric) (*bodystats.MetricReport, error)
}

type ListMeasurementsResponse struct {
	Measurements []bodystats.Measurement `json:"measurements"`
	Total        int                     `json:"total"`
}

type DeleteMeasurementResponse struct {
	DeletedID string `json:"deletedId"`
}

type Handler struct {
	service trackerService
}

func NewHandler(service trackerService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/measurements", h.HandleAddMeasurement).Methods("POST", "OPTIONS").Name("new-measurement")
	router.HandleFunc("/measurements", h.HandleListMeasurements).Methods("GET", "OPTIONS").Name("list-measurements")
	router.HandleFunc("/measurements/{id}", h.HandleDeleteMeasurement).Methods("DELETE", "OPTIONS").Name("delete-measurement")
	router.HandleFunc("/profile", h.HandleGetProfile).Methods("GET", "OPTIONS").Name("get-profile")
	router.HandleFunc("/profile", h.HandleUpdateProfile).Methods("PUT", "OPTIONS").Name("update-profile")
	router.HandleFunc("/goals", h.HandleGetGoal).Methods("GET", "OPTIONS").Name("get-goals")
	router.HandleFunc("/goals", h.HandleUpdateGoal).Methods("PUT", "OPTIONS").Name("update-goals")
	router.HandleFunc("/report", h.HandleReport).Methods("GET", "OPTIONS").Name("report")
	router.HandleFunc("/report/{metric}", h.HandleMetricReport).Methods("GET", "OPTIONS").Name("metric-report")
}

func (h *Handler) HandleAddMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.measurements.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var input bodystats.MeasurementInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Tracef("new measurement, unmarshal json params: %s", err)
		http.Error(w, "add measurement failed", http.StatusBadRequest)
		return
	}

	m, err := h.service.AddMeasurement(ctx, input)
	if err != nil {
		writeServiceError(w, "add measurement", err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, m)
}

func (h *Handler) HandleListMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.measurements.list")
	defer span.End()

	measurements, err := h.service.ListMeasurements(ctx)
	if err != nil {
		writeServiceError(w, "list measurements", err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, ListMeasurementsResponse{
		Measurements: measurements,
		Total:        len(measurements),
	})
}

func (h *Handler) HandleDeleteMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.measurements.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteMeasurement(ctx, id); err != nil {
		writeServiceError(w, "delete measurement", err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, DeleteMeasurementResponse{DeletedID: id})
}

func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.profile.get")
	defer span.End()

	profile, err := h.service.Profile(ctx)
	if err != nil {
		writeServiceError(w, "get profile", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.profile.update")
	defer span.End()

	var profile bodystats.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Tracef("update profile, unmarshal json params: %s", err)
		http.Error(w, "update profile failed", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateProfile(ctx, profile); err != nil {
		writeServiceError(w, "update profile", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) HandleGetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.goal.get")
	defer span.End()

	goal, err := h.service.Goal(ctx)
	if err != nil {
		writeServiceError(w, "get goal", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, goal)
}

func (h *Handler) HandleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.goal.update")
	defer span.End()

	var goal bodystats.Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		log.Tracef("update goal, unmarshal json params: %s", err)
		http.Error(w, "update goal failed", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateGoal(ctx, goal); err != nil {
		writeServiceError(w, "update goal", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, goal)
}

func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.report")
	defer span.End()

	report, err := h.service.Report(ctx)
	if err != nil {
		writeServiceError(w, "report", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, report)
}

func (h *Handler) HandleMetricReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.report.metric")
	defer span.End()

	metric, ok := bodystats.ParseMetric(mux.Vars(r)["metric"])
	if !ok {
		http.Error(w, "error, unknown metric", http.StatusBadRequest)
		return
	}

	mr, err := h.service.MetricReport(ctx, metric)
	if err != nil {
		writeServiceError(w, "metric report", err)
		return
	}
	pkg.WriteJSON(w, http.StatusOK, mr)
}

// writeServiceError maps validation failures to 400 and missing records to 404.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, bodystats.ErrInvalidMeasurement),
		errors.Is(err, bodystats.ErrInvalidProfile),
		errors.Is(err, bodystats.ErrInvalidGoal):
		log.Debugf("%s: %s", op, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "error, not found", http.StatusNotFound)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "error, "+op+" failed", http.StatusInternalServerError)
	}
}
