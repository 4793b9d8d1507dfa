package position

import "context"

type PositionService interface {
	Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	Get(ctx context.Context, id string) (PositionResponse, error)
	List(ctx context.Context, includeArchived bool) ([]PositionResponse, error)
	Update(ctx context.Context, req UpdatePositionRequest) (PositionResponse, error)
	Archive(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
}
