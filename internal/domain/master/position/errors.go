package position

import "errors"

var (
	ErrPositionNotFound    = errors.New("position not found")
	ErrPositionTitleExists = errors.New("position with this title already exists in the department")
	ErrPositionNotArchived = errors.New("position is not archived")
)
