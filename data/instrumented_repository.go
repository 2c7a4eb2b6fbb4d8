package data

import (
	"context"
	"errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultOK       = "ok"
	resultNotFound = "not_found"
	resultError    = "error"
)

// RepositoryMetrics holds the counters shared by every InstrumentedRepository
// registered against the same registry.
type RepositoryMetrics struct {
	operations *prometheus.CounterVec
}

func NewRepositoryMetrics(reg prometheus.Registerer) (*RepositoryMetrics, error) {
	m := &RepositoryMetrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "repository_operations_total",
				Help: "Total number of repository operations.",
			},
			[]string{"entity", "operation", "result"},
		),
	}
	if err := reg.Register(m.operations); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *RepositoryMetrics) observe(entity string, operation string, err error) {
	result := resultOK
	if errors.Is(err, NotFoundError) {
		result = resultNotFound
	} else if err != nil {
		result = resultError
	}
	m.operations.WithLabelValues(entity, operation, result).Inc()
}

// InstrumentedRepository counts every call made to the wrapped repository.
type InstrumentedRepository[T any, ID comparable] struct {
	repository Repository[T, ID]
	metrics    *RepositoryMetrics
	entity     string
}

func NewInstrumentedRepository[T any, ID comparable](metrics *RepositoryMetrics, entity string, repository Repository[T, ID]) *InstrumentedRepository[T, ID] {
	return &InstrumentedRepository[T, ID]{
		repository: repository,
		metrics:    metrics,
		entity:     entity,
	}
}

func (i *InstrumentedRepository[T, ID]) Add(ctx context.Context, entity T) (T, error) {
	added, err := i.repository.Add(ctx, entity)
	i.metrics.observe(i.entity, "add", err)
	return added, err
}

func (i *InstrumentedRepository[T, ID]) Update(ctx context.Context, entity T) (T, error) {
	updated, err := i.repository.Update(ctx, entity)
	i.metrics.observe(i.entity, "update", err)
	return updated, err
}

func (i *InstrumentedRepository[T, ID]) Delete(ctx context.Context, entity T) error {
	err := i.repository.Delete(ctx, entity)
	i.metrics.observe(i.entity, "delete", err)
	return err
}

func (i *InstrumentedRepository[T, ID]) GetByID(ctx context.Context, id ID) (T, error) {
	found, err := i.repository.GetByID(ctx, id)
	i.metrics.observe(i.entity, "get_by_id", err)
	return found, err
}

func (i *InstrumentedRepository[T, ID]) GetAll(ctx context.Context) ([]T, error) {
	all, err := i.repository.GetAll(ctx)
	i.metrics.observe(i.entity, "get_all", err)
	return all, err
}
