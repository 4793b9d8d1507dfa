package position

import "context"

type PositionRepository interface {
	Create(ctx context.Context, position Position) (Position, error)
	GetByID(ctx context.Context, id string) (Position, error)
	List(ctx context.Context, includeArchived bool) ([]Position, error)
	Update(ctx context.Context, req UpdatePositionRequest) error
	Archive(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
}
