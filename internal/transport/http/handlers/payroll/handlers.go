package payrollhandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"payslipcalc/internal/domain/payroll"
	"payslipcalc/internal/platform/metrics"
	"payslipcalc/internal/transport/http/api"
	"payslipcalc/internal/transport/http/middleware"
	"payslipcalc/internal/transport/http/shared"
)

type Handler struct {
	Metrics *metrics.Collector
	Logger  *slog.Logger
	Now     func() time.Time
}

// NewHandler uses slog.Default when logger is nil.
func NewHandler(collector *metrics.Collector, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{Metrics: collector, Logger: logger, Now: time.Now}
}

type calculatePayload struct {
	GrossSalary    decimal.Decimal `json:"grossSalary"`
	ReceiveAdvance bool            `json:"receiveAdvance"`
}

type MarginalBracket struct {
	UpperLimit string `json:"upperLimit"`
	Rate       string `json:"rate"`
}

// DeductionBracket has a nil UpperLimit for the open-ended top bracket.
type DeductionBracket struct {
	UpperLimit *string `json:"upperLimit"`
	Rate       string  `json:"rate"`
	Deduction  string  `json:"deduction"`
}

type BracketTables struct {
	INSS []MarginalBracket  `json:"inss"`
	IRRF []DeductionBracket `json:"irrf"`
}

func bracketTables() BracketTables {
	tables := BracketTables{
		INSS: make([]MarginalBracket, 0, len(payroll.INSSSchedule)),
		IRRF: make([]DeductionBracket, 0, len(payroll.IRRFSchedule)),
	}
	for _, b := range payroll.INSSSchedule {
		tables.INSS = append(tables.INSS, MarginalBracket{
			UpperLimit: payroll.FormatMoney(b.UpperLimit),
			Rate:       b.Rate.String(),
		})
	}
	for i, b := range payroll.IRRFSchedule {
		row := DeductionBracket{Rate: b.Rate.String(), Deduction: payroll.FormatMoney(b.Deduction)}
		if i < len(payroll.IRRFSchedule)-1 {
			limit := payroll.FormatMoney(b.UpperLimit)
			row.UpperLimit = &limit
		}
		tables.IRRF = append(tables.IRRF, row)
	}
	return tables
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/brackets", h.handleBrackets)
		r.Post("/payslips/calculate", h.handleCalculate)
		r.Post("/payslips/pdf", h.handlePayslipPDF)
	})
}

func (h *Handler) handleBrackets(w http.ResponseWriter, r *http.Request) {
	api.Success(w, bracketTables(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	slip, ok := h.calculate(w, r)
	if !ok {
		return
	}
	api.Success(w, slip.Display(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePayslipPDF(w http.ResponseWriter, r *http.Request) {
	slip, ok := h.calculate(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := payroll.RenderPDF(&buf, slip, h.Now()); err != nil {
		h.Logger.Error("render payslip pdf failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "payslip_pdf_failed", "failed to render payslip", middleware.GetRequestID(r.Context()))
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordPDF()
	}
	api.Attachment(w, "application/pdf", "payslip.pdf", buf.Bytes())
}

// calculate decodes and validates the body, then runs the calculation. It
// writes the error response itself and reports false when it did.
func (h *Handler) calculate(w http.ResponseWriter, r *http.Request) (payroll.Payslip, bool) {
	requestID := middleware.GetRequestID(r.Context())

	var payload calculatePayload
	if err := decodeJSON(r.Body, &payload); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large", requestID)
			return payroll.Payslip{}, false
		}
		api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid request body", requestID)
		return payroll.Payslip{}, false
	}

	validator := shared.NewValidator()
	validator.Check("grossSalary", payroll.ValidateGrossSalary(payload.GrossSalary), "must be a positive amount up to 1000000000000 with at most two decimal places")
	if validator.Reject(w, requestID) {
		return payroll.Payslip{}, false
	}

	slip := payroll.CalculateNetSalary(payload.GrossSalary, payload.ReceiveAdvance)
	if h.Metrics != nil {
		h.Metrics.RecordCalculation(slip.ReceiveAdvance)
	}
	return slip, true
}

func decodeJSON(body io.Reader, dst any) error {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return err
	}
	if decoder.More() {
		return errors.New("unexpected trailing data")
	}
	return nil
}
