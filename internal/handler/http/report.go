package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nomina-hq/nomina-backend-go/internal/domain/report"
	"github.com/nomina-hq/nomina-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	PeriodSummary(w http.ResponseWriter, r *http.Request)
	EmployeeHistory(w http.ResponseWriter, r *http.Request)
	Receipt(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) PeriodSummary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	result, err := h.reportService.PeriodSummary(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) EmployeeHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.reportService.EmployeeHistory(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) Receipt(w http.ResponseWriter, r *http.Request) {
	payrollID := chi.URLParam(r, "id")
	employeeID := chi.URLParam(r, "employeeID")
	if payrollID == "" || employeeID == "" {
		response.BadRequest(w, "Payroll ID and employee ID are required", nil)
		return
	}

	result, err := h.reportService.Receipt(r.Context(), payrollID, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
