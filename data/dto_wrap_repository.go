package data

import (
	"context"
)

// DTO converts between a storage record and its domain model M.
// From is called on the zero value and returns the record as D.
type DTO[M any] interface {
	To() M
	From(m M) any
}

type DtoWrapRepository[D DTO[M], M any, ID comparable] struct {
	dtoRepository Repository[D, ID]
}

func NewDtoWrapRepository[D DTO[M], M any, ID comparable](dtoRepository Repository[D, ID]) *DtoWrapRepository[D, M, ID] {
	return &DtoWrapRepository[D, M, ID]{
		dtoRepository: dtoRepository,
	}
}

func (d *DtoWrapRepository[D, M, ID]) Add(ctx context.Context, entity M) (M, error) {
	var dto D
	dto = dto.From(entity).(D)
	created, err := d.dtoRepository.Add(ctx, dto)
	return created.To(), err
}

func (d *DtoWrapRepository[D, M, ID]) Update(ctx context.Context, entity M) (M, error) {
	var dto D
	dto = dto.From(entity).(D)
	updated, err := d.dtoRepository.Update(ctx, dto)
	return updated.To(), err
}

func (d *DtoWrapRepository[D, M, ID]) Delete(ctx context.Context, entity M) error {
	var dto D
	dto = dto.From(entity).(D)
	return d.dtoRepository.Delete(ctx, dto)
}

func (d *DtoWrapRepository[D, M, ID]) GetByID(ctx context.Context, id ID) (M, error) {
	dto, err := d.dtoRepository.GetByID(ctx, id)
	return dto.To(), err
}

func (d *DtoWrapRepository[D, M, ID]) GetAll(ctx context.Context) ([]M, error) {
	dtos, err := d.dtoRepository.GetAll(ctx)

	models := make([]M, 0, len(dtos))
	for _, v := range dtos {
		models = append(models, v.To())
	}
	return models, err
}
