package workevent

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nomina-hq/nomina-backend-go/internal/domain/employee"
	"github.com/nomina-hq/nomina-backend-go/internal/domain/workevent"
)

type WorkEventServiceImpl struct {
	eventRepo    workevent.WorkEventRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewWorkEventService(
	eventRepo workevent.WorkEventRepository,
	employeeRepo employee.EmployeeRepository,
) workevent.WorkEventService {
	return &WorkEventServiceImpl{
		eventRepo:    eventRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

func (s *WorkEventServiceImpl) Create(ctx context.Context, req workevent.CreateWorkEventRequest) (workevent.WorkEventResponse, error) {
	if err := req.Validate(); err != nil {
		return workevent.WorkEventResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return workevent.WorkEventResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)

	event := workevent.WorkEvent{
		EmployeeID:  req.EmployeeID,
		Type:        workevent.EventType(req.Type),
		StartDate:   startDate,
		Description: req.Description,
		DocumentRef: req.DocumentRef,
		Status:      workevent.EventStatusPendiente,
		Hours:       decimal.Zero,
	}
	if req.EndDate != nil {
		endDate, _ := time.Parse("2006-01-02", *req.EndDate)
		event.EndDate = &endDate
	}
	if req.Days != nil {
		event.Days = *req.Days
	}
	if req.Hours != nil {
		event.Hours = *req.Hours
	}

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return workevent.WorkEventResponse{}, fmt.Errorf("failed to create work event: %w", err)
	}

	return mapToResponse(created), nil
}

func (s *WorkEventServiceImpl) Get(ctx context.Context, id string) (workevent.WorkEventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return workevent.WorkEventResponse{}, err
	}
	return mapToResponse(event), nil
}

func (s *WorkEventServiceImpl) List(ctx context.Context, filter workevent.WorkEventFilter) ([]workevent.WorkEventResponse, error) {
	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]workevent.WorkEventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, mapToResponse(e))
	}
	return result, nil
}

// Update rewrites the mutable fields of a Pendiente event. Processed events
// are frozen so approved payroll inputs stay reproducible.
func (s *WorkEventServiceImpl) Update(ctx context.Context, req workevent.UpdateWorkEventRequest) (workevent.WorkEventResponse, error) {
	if err := req.Validate(); err != nil {
		return workevent.WorkEventResponse{}, err
	}

	event, err := s.eventRepo.GetByID(ctx, req.ID)
	if err != nil {
		return workevent.WorkEventResponse{}, err
	}
	if event.Status != workevent.EventStatusPendiente {
		return workevent.WorkEventResponse{}, workevent.ErrWorkEventAlreadyProcessed
	}

	if req.Type != nil {
		event.Type = workevent.EventType(*req.Type)
	}
	if req.StartDate != nil {
		startDate, _ := time.Parse("2006-01-02", *req.StartDate)
		event.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, _ := time.Parse("2006-01-02", *req.EndDate)
		event.EndDate = &endDate
	}
	if req.Days != nil {
		event.Days = *req.Days
	}
	if req.Hours != nil {
		event.Hours = *req.Hours
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.DocumentRef != nil {
		event.DocumentRef = req.DocumentRef
	}

	// Keep the payload consistent with the (possibly changed) type.
	if event.Type.UsesHours() {
		event.Days = 0
	} else {
		event.Hours = decimal.Zero
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return workevent.WorkEventResponse{}, fmt.Errorf("failed to update work event: %w", err)
	}

	return mapToResponse(event), nil
}

func (s *WorkEventServiceImpl) Approve(ctx context.Context, id, actor string) (workevent.WorkEventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return workevent.WorkEventResponse{}, err
	}
	if event.Status != workevent.EventStatusPendiente {
		return workevent.WorkEventResponse{}, workevent.ErrWorkEventAlreadyProcessed
	}

	approvedAt := s.now()
	event.Status = workevent.EventStatusAprobado
	event.ApprovedBy = &actor
	event.ApprovedAt = &approvedAt

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return workevent.WorkEventResponse{}, fmt.Errorf("failed to approve work event: %w", err)
	}

	return mapToResponse(event), nil
}

func (s *WorkEventServiceImpl) Reject(ctx context.Context, id, actor string) (workevent.WorkEventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return workevent.WorkEventResponse{}, err
	}
	if event.Status != workevent.EventStatusPendiente {
		return workevent.WorkEventResponse{}, workevent.ErrWorkEventAlreadyProcessed
	}

	rejectedAt := s.now()
	event.Status = workevent.EventStatusRechazado
	event.RejectedBy = &actor
	event.RejectedAt = &rejectedAt

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return workevent.WorkEventResponse{}, fmt.Errorf("failed to reject work event: %w", err)
	}

	return mapToResponse(event), nil
}

// ========== HELPERS ==========

func mapToResponse(e workevent.WorkEvent) workevent.WorkEventResponse {
	resp := workevent.WorkEventResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.EmployeeName,
		Type:         string(e.Type),
		StartDate:    e.StartDate.Format("2006-01-02"),
		Description:  e.Description,
		DocumentRef:  e.DocumentRef,
		Status:       string(e.Status),
		ApprovedBy:   e.ApprovedBy,
		RejectedBy:   e.RejectedBy,
	}
	if e.EndDate != nil {
		endDate := e.EndDate.Format("2006-01-02")
		resp.EndDate = &endDate
	}
	if e.Type.UsesHours() {
		hours := e.Hours
		resp.Hours = &hours
	} else {
		days := e.Days
		resp.Days = &days
	}
	if e.ApprovedAt != nil {
		approvedAt := e.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approvedAt
	}
	if e.RejectedAt != nil {
		rejectedAt := e.RejectedAt.Format(time.RFC3339)
		resp.RejectedAt = &rejectedAt
	}
	return resp
}
