package simulationhandler

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"paysim/internal/domain/payroll"
	"paysim/internal/domain/reports"
	"paysim/internal/platform/metrics"
	"paysim/internal/transport/http/api"
	"paysim/internal/transport/http/middleware"
	"paysim/internal/transport/http/shared"
)

type Calculator interface {
	Compare(percentage int) (payroll.Comparison, error)
	Compute(percentage int, regime payroll.Regime) (payroll.Result, error)
	Regime(key string) (payroll.Regime, error)
	Bounds() payroll.Bounds
	Regimes() []payroll.Regime
}

type Handler struct {
	Calc              Calculator
	Metrics           *metrics.Collector
	DefaultPercentage int
}

func NewHandler(calc Calculator, collector *metrics.Collector, defaultPercentage int) *Handler {
	return &Handler{Calc: calc, Metrics: collector, DefaultPercentage: defaultPercentage}
}

type simulationPayload struct {
	Percentage *int `json:"percentage" validate:"required"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/regimes", h.handleListRegimes)
	r.Get("/regimes/{key}/simulations", h.handleSimulateRegime)
	r.Route("/simulations", func(r chi.Router) {
		r.Get("/", h.handleSimulate)
		r.Post("/", h.handleSimulatePayload)
		r.Get("/export.csv", h.handleExportCSV)
		r.Get("/report.pdf", h.handleReportPDF)
	})
}

func (h *Handler) handleListRegimes(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]any{
		"bounds":            h.Calc.Bounds(),
		"defaultPercentage": h.DefaultPercentage,
		"regimes":           reports.NewRegimeViews(h.Calc.Regimes()),
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSimulateRegime(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	regime, err := h.Calc.Regime(chi.URLParam(r, "key"))
	if err != nil {
		if errors.Is(err, payroll.ErrUnknownRegime) {
			api.Fail(w, http.StatusNotFound, "regime_not_found", err.Error(), requestID)
			return
		}
		slog.Error("regime lookup failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "simulation_failed", "failed to compute simulation", requestID)
		return
	}

	v := shared.NewValidator()
	percentage, _ := v.Int("percentage", r.URL.Query().Get("percentage"), h.DefaultPercentage)
	if v.Reject(w, requestID) {
		return
	}
	result, err := h.Calc.Compute(percentage, regime)
	if err != nil {
		h.failCompute(w, err, percentage, requestID)
		return
	}
	h.recordSimulation("json")
	api.Success(w, reports.NewResultView(result), requestID)
}

func (h *Handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	comparison, ok := h.compareFromQuery(w, r)
	if !ok {
		return
	}
	h.recordSimulation("json")
	api.Success(w, reports.NewSimulationView(comparison, h.Calc.Bounds()), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSimulatePayload(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var payload simulationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	v := shared.NewValidator()
	v.Struct(payload)
	if v.Reject(w, requestID) {
		return
	}
	comparison, ok := h.compare(w, r, *payload.Percentage)
	if !ok {
		return
	}
	h.recordSimulation("json")
	api.Success(w, reports.NewSimulationView(comparison, h.Calc.Bounds()), requestID)
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	comparison, ok := h.compareFromQuery(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := reports.WriteCSV(&buf, reports.BuildTable(comparison)); err != nil {
		slog.Error("export csv failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to export simulation", middleware.GetRequestID(r.Context()))
		return
	}
	h.recordSimulation("csv")
	writeAttachment(w, "text/csv", fmt.Sprintf("apprentice-pay-%d.csv", comparison.Percentage), buf.Bytes())
}

func (h *Handler) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	comparison, ok := h.compareFromQuery(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := reports.WritePDF(&buf, comparison); err != nil {
		slog.Error("render pdf failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to render report", middleware.GetRequestID(r.Context()))
		return
	}
	h.recordSimulation("pdf")
	writeAttachment(w, "application/pdf", fmt.Sprintf("apprentice-pay-%d.pdf", comparison.Percentage), buf.Bytes())
}

func (h *Handler) compareFromQuery(w http.ResponseWriter, r *http.Request) (payroll.Comparison, bool) {
	v := shared.NewValidator()
	percentage, _ := v.Int("percentage", r.URL.Query().Get("percentage"), h.DefaultPercentage)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return payroll.Comparison{}, false
	}
	return h.compare(w, r, percentage)
}

func (h *Handler) compare(w http.ResponseWriter, r *http.Request, percentage int) (payroll.Comparison, bool) {
	comparison, err := h.Calc.Compare(percentage)
	if err != nil {
		h.failCompute(w, err, percentage, middleware.GetRequestID(r.Context()))
		return payroll.Comparison{}, false
	}
	return comparison, true
}

func (h *Handler) failCompute(w http.ResponseWriter, err error, percentage int, requestID string) {
	var inputErr *payroll.InvalidInputError
	if errors.As(err, &inputErr) {
		v := shared.NewValidator()
		v.IntRange(inputErr.Field, inputErr.Value, inputErr.Min, inputErr.Max)
		v.Reject(w, requestID)
		return
	}
	if errors.Is(err, payroll.ErrInvalidInput) {
		api.Fail(w, http.StatusBadRequest, "invalid_input", err.Error(), requestID)
		return
	}
	slog.Error("simulation failed", "err", err, "percentage", percentage, "requestId", requestID)
	api.Fail(w, http.StatusInternalServerError, "simulation_failed", "failed to compute simulation", requestID)
}

func (h *Handler) recordSimulation(format string) {
	if h.Metrics != nil {
		h.Metrics.RecordSimulation(format)
	}
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Warn("write attachment failed", "err", err, "filename", filename)
	}
}
