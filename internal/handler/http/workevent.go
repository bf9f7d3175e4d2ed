package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nomina-hq/nomina-backend-go/internal/domain/workevent"
	"github.com/nomina-hq/nomina-backend-go/internal/handler/http/response"
)

type WorkEventHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type workEventHandlerImpl struct {
	workEventService workevent.WorkEventService
}

func NewWorkEventHandler(workEventService workevent.WorkEventService) WorkEventHandler {
	return &workEventHandlerImpl{workEventService: workEventService}
}

func (h *workEventHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req workevent.CreateWorkEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.workEventService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work event registered", result)
}

func (h *workEventHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Work event ID is required", nil)
		return
	}

	result, err := h.workEventService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workEventHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := workevent.WorkEventFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Type:       workevent.EventType(r.URL.Query().Get("type")),
		Status:     workevent.EventStatus(r.URL.Query().Get("status")),
	}

	result, err := h.workEventService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workEventHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Work event ID is required", nil)
		return
	}

	var req workevent.UpdateWorkEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.workEventService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *workEventHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Work event ID is required", nil)
		return
	}

	result, err := h.workEventService.Approve(r.Context(), id, actorFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work event approved", result)
}

func (h *workEventHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Work event ID is required", nil)
		return
	}

	result, err := h.workEventService.Reject(r.Context(), id, actorFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work event rejected", result)
}
