package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/workline-ph/erp-backend-go/internal/domain/master/position"
	"github.com/workline-ph/erp-backend-go/internal/pkg/database"
)

type positionRepositoryImpl struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

// Create implements position.PositionRepository.
func (p *positionRepositoryImpl) Create(ctx context.Context, pos position.Position) (position.Position, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO positions (title, department, branch, hourly_rate)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	created := pos
	err := q.QueryRow(ctx, query, pos.Title, pos.Department, pos.Branch, pos.HourlyRate).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_positions_title_department") {
			return position.Position{}, position.ErrPositionTitleExists
		}
		return position.Position{}, fmt.Errorf("failed to create position: %w", err)
	}

	return created, nil
}

// GetByID implements position.PositionRepository.
func (p *positionRepositoryImpl) GetByID(ctx context.Context, id string) (position.Position, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, title, department, branch, hourly_rate, created_at, updated_at, deleted_at
		FROM positions
		WHERE id = $1
	`

	var pos position.Position
	err := q.QueryRow(ctx, query, id).Scan(
		&pos.ID, &pos.Title, &pos.Department, &pos.Branch, &pos.HourlyRate,
		&pos.CreatedAt, &pos.UpdatedAt, &pos.DeletedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return position.Position{}, position.ErrPositionNotFound
		}
		return position.Position{}, fmt.Errorf("failed to get position with id %s: %w", id, err)
	}

	return pos, nil
}

// List implements position.PositionRepository.
func (p *positionRepositoryImpl) List(ctx context.Context, includeArchived bool) ([]position.Position, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, title, department, branch, hourly_rate, created_at, updated_at, deleted_at
		FROM positions
	`
	if !includeArchived {
		query += " WHERE deleted_at IS NULL"
	}
	query += " ORDER BY department, title"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var positions []position.Position
	for rows.Next() {
		var pos position.Position
		err := rows.Scan(
			&pos.ID, &pos.Title, &pos.Department, &pos.Branch, &pos.HourlyRate,
			&pos.CreatedAt, &pos.UpdatedAt, &pos.DeletedAt,
		)
		if err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}

// Update implements position.PositionRepository.
func (p *positionRepositoryImpl) Update(ctx context.Context, req position.UpdatePositionRequest) error {
	q := GetQuerier(ctx, p.db)

	sets := []string{"updated_at = NOW()"}
	args := []any{}
	argPos := 1

	if req.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", argPos))
		args = append(args, *req.Title)
		argPos++
	}
	if req.Department != nil {
		sets = append(sets, fmt.Sprintf("department = $%d", argPos))
		args = append(args, *req.Department)
		argPos++
	}
	if req.Branch != nil {
		sets = append(sets, fmt.Sprintf("branch = $%d", argPos))
		args = append(args, *req.Branch)
		argPos++
	}
	if req.HourlyRate != nil {
		sets = append(sets, fmt.Sprintf("hourly_rate = $%d", argPos))
		args = append(args, *req.HourlyRate)
		argPos++
	}

	query := fmt.Sprintf(`
		UPDATE positions
		SET %s
		WHERE id = $%d AND deleted_at IS NULL
		RETURNING id
	`, strings.Join(sets, ", "), argPos)
	args = append(args, req.ID)

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return position.ErrPositionNotFound
		}
		if strings.Contains(err.Error(), "uk_positions_title_department") {
			return position.ErrPositionTitleExists
		}
		return fmt.Errorf("failed to update position with id %s: %w", req.ID, err)
	}

	return nil
}

// Archive implements position.PositionRepository.
func (p *positionRepositoryImpl) Archive(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE positions
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var archivedID string
	err := q.QueryRow(ctx, query, id).Scan(&archivedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return position.ErrPositionNotFound
		}
		return fmt.Errorf("failed to archive position with id %s: %w", id, err)
	}

	return nil
}

// Restore implements position.PositionRepository.
func (p *positionRepositoryImpl) Restore(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE positions
		SET deleted_at = NULL, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NOT NULL
		RETURNING id
	`

	var restoredID string
	err := q.QueryRow(ctx, query, id).Scan(&restoredID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return position.ErrPositionNotArchived
		}
		return fmt.Errorf("failed to restore position with id %s: %w", id, err)
	}

	return nil
}
