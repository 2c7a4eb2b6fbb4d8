package data

import "context"

// Repository is the uniform create/read/update/delete surface over a
// collection of entities of type T keyed by ID.
type Repository[T any, ID comparable] interface {
	Add(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, entity T) (T, error)
	Delete(ctx context.Context, entity T) error
	GetByID(ctx context.Context, id ID) (T, error)
	GetAll(ctx context.Context) ([]T, error)
}

// IDFunc extracts the identifier of an entity.
type IDFunc[T any, ID comparable] func(entity T) ID
