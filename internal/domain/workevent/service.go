package workevent

import "context"

type WorkEventService interface {
	Create(ctx context.Context, req CreateWorkEventRequest) (WorkEventResponse, error)
	Get(ctx context.Context, id string) (WorkEventResponse, error)
	List(ctx context.Context, filter WorkEventFilter) ([]WorkEventResponse, error)
	Update(ctx context.Context, req UpdateWorkEventRequest) (WorkEventResponse, error)
	Approve(ctx context.Context, id, actor string) (WorkEventResponse, error)
	Reject(ctx context.Context, id, actor string) (WorkEventResponse, error)
}
