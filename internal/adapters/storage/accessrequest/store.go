package accessrequest

import (
	"context"

	domain "zuzz/internal/domain/accessrequest"
)

// Store persists AccessRequest state. Records are immutable once created;
// the intake pipeline only ever inserts.
type Store interface {
	Create(ctx context.Context, r domain.AccessRequest) (domain.AccessRequest, error)
	GetByID(ctx context.Context, id string) (domain.AccessRequest, error)
	List(ctx context.Context, filter ListFilter) ([]domain.AccessRequest, error)
	Count(ctx context.Context) (int, error)
}

// ListFilter carries filtering parameters for List operations.
type ListFilter struct {
	Status string
	Limit  int
	Offset int
}
