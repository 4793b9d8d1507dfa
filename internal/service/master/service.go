package master

import (
	"context"

	"github.com/workline-ph/erp-backend-go/internal/domain/master/position"
)

type positionServiceImpl struct {
	positionRepo position.PositionRepository
}

func NewPositionService(positionRepo position.PositionRepository) position.PositionService {
	return &positionServiceImpl{positionRepo: positionRepo}
}

func toPositionResponse(pos position.Position) position.PositionResponse {
	return position.PositionResponse{
		ID:         pos.ID,
		Title:      pos.Title,
		Department: pos.Department,
		Branch:     pos.Branch,
		HourlyRate: pos.HourlyRate,
		Archived:   pos.DeletedAt != nil,
	}
}

func (s *positionServiceImpl) Create(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	created, err := s.positionRepo.Create(ctx, position.Position{
		Title:      req.Title,
		Department: req.Department,
		Branch:     req.Branch,
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		return position.PositionResponse{}, err
	}

	return toPositionResponse(created), nil
}

func (s *positionServiceImpl) Get(ctx context.Context, id string) (position.PositionResponse, error) {
	pos, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		return position.PositionResponse{}, err
	}
	return toPositionResponse(pos), nil
}

func (s *positionServiceImpl) List(ctx context.Context, includeArchived bool) ([]position.PositionResponse, error) {
	positions, err := s.positionRepo.List(ctx, includeArchived)
	if err != nil {
		return nil, err
	}

	responses := make([]position.PositionResponse, 0, len(positions))
	for _, pos := range positions {
		responses = append(responses, toPositionResponse(pos))
	}
	return responses, nil
}

func (s *positionServiceImpl) Update(ctx context.Context, req position.UpdatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	if err := s.positionRepo.Update(ctx, req); err != nil {
		return position.PositionResponse{}, err
	}

	updated, err := s.positionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return position.PositionResponse{}, err
	}
	return toPositionResponse(updated), nil
}

func (s *positionServiceImpl) Archive(ctx context.Context, id string) error {
	return s.positionRepo.Archive(ctx, id)
}

func (s *positionServiceImpl) Restore(ctx context.Context, id string) error {
	return s.positionRepo.Restore(ctx, id)
}
