package data

import (
	"context"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SequencedRecord is implemented by records that carry an auto-incremented
// insertion sequence column. GetAll orders by it and Update never writes it.
type SequencedRecord interface {
	SequenceColumn() string
}

func sequenceColumn[T any]() (string, bool) {
	var entity T
	if sequenced, ok := any(&entity).(SequencedRecord); ok {
		return sequenced.SequenceColumn(), true
	}
	return "", false
}

// GormRepository stores T in the table gorm maps it to. The identifier
// column must be named id. GetAll returns rows in insertion order when T is
// a SequencedRecord and in id order otherwise.
type GormRepository[T any, ID comparable] struct {
	transactionManager TransactionManager
}

func NewGormRepository[T any, ID comparable](transactionManager TransactionManager) *GormRepository[T, ID] {
	return &GormRepository[T, ID]{transactionManager: transactionManager}
}

func (u *GormRepository[T, ID]) db(ctx context.Context) *gorm.DB {
	db, ok := u.transactionManager.Get(ctx).(*gorm.DB)
	if !ok {
		panic("GormRepository: transaction manager does not provide *gorm.DB")
	}
	return db
}

func (u *GormRepository[T, ID]) Add(ctx context.Context, entity T) (T, error) {
	var created T
	logrus.Debugf("GormRepository.Add: entity [%+v]", entity)
	if err := u.db(ctx).Create(&entity).Error; err != nil {
		return created, fmt.Errorf("add: %w", err)
	}
	created = entity
	return created, nil
}

func (u *GormRepository[T, ID]) Update(ctx context.Context, entity T) (T, error) {
	var updated T
	id, _ := findID[T, ID](entity)
	logrus.Debugf("GormRepository.Update: id [%v] entity [%+v]", id, entity)

	// Select("*") writes zero values too, so the row ends up equal to entity.
	db := u.db(ctx).Model(new(T)).Where("id = ?", id).Select("*")
	if column, ok := sequenceColumn[T](); ok {
		db = db.Omit(column)
	}
	result := db.Updates(&entity)
	if result.Error != nil {
		return updated, fmt.Errorf("update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return updated, NotFoundError
	}
	updated = entity
	return updated, nil
}

func (u *GormRepository[T, ID]) Delete(ctx context.Context, entity T) error {
	id, _ := findID[T, ID](entity)
	logrus.Debugf("GormRepository.Delete: id [%v]", id)

	result := u.db(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return fmt.Errorf("delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return NotFoundError
	}
	return nil
}

func (u *GormRepository[T, ID]) GetByID(ctx context.Context, id ID) (T, error) {
	var entity T
	if err := u.db(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity, NotFoundError
		} else {
			return entity, fmt.Errorf("get by id: %w", err)
		}
	}
	return entity, nil
}

func (u *GormRepository[T, ID]) GetAll(ctx context.Context) ([]T, error) {
	entities := make([]T, 0)
	order := "id"
	if column, ok := sequenceColumn[T](); ok {
		order = column
	}
	if err := u.db(ctx).Order(order).Find(&entities).Error; err != nil {
		return entities, fmt.Errorf("get all: %w", err)
	}
	return entities, nil
}
