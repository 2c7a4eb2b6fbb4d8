package data

import (
	"context"
	"github.com/sirupsen/logrus"
	"slices"
	"sync"
)

// InMemoryRepository keeps entities in insertion order. Identifiers are
// assigned by the caller and are not required to be unique: lookups,
// updates and deletes act on the first match.
type InMemoryRepository[T any, ID comparable] struct {
	m                  sync.RWMutex
	database           []T
	idOf               IDFunc[T, ID]
	transactionManager TransactionManager
}

// NewInMemoryRepository reads identifiers from the entity's ID field.
// A nil transactionManager falls back to the dummy one.
func NewInMemoryRepository[T any, ID comparable](transactionManager TransactionManager) *InMemoryRepository[T, ID] {
	return NewInMemoryRepositoryFunc[T, ID](transactionManager, FieldID[T, ID])
}

func NewInMemoryRepositoryFunc[T any, ID comparable](transactionManager TransactionManager, idOf IDFunc[T, ID]) *InMemoryRepository[T, ID] {
	if transactionManager == nil {
		transactionManager = NewDummyTransactionManager()
	}
	return &InMemoryRepository[T, ID]{
		database:           make([]T, 0),
		idOf:               idOf,
		transactionManager: transactionManager,
	}
}

func (u *InMemoryRepository[T, ID]) indexOf(id ID) int {
	for i, v := range u.database {
		if u.idOf(v) == id {
			return i
		}
	}
	return -1
}

func (u *InMemoryRepository[T, ID]) Add(ctx context.Context, entity T) (T, error) {
	u.m.Lock()
	defer u.m.Unlock()
	transaction := u.transactionManager.Get(ctx)
	logrus.Infof("InMemoryRepository.Add: transaction [%v] entity [%+v]", transaction, entity)
	u.database = append(u.database, entity)
	return entity, nil
}

func (u *InMemoryRepository[T, ID]) Update(ctx context.Context, entity T) (T, error) {
	var v T
	u.m.Lock()
	defer u.m.Unlock()
	transaction := u.transactionManager.Get(ctx)
	id := u.idOf(entity)
	i := u.indexOf(id)
	if i < 0 {
		logrus.Infof("InMemoryRepository.Update: transaction [%v] id [%v] not found", transaction, id)
		return v, NotFoundError
	}
	logrus.Infof("InMemoryRepository.Update: transaction [%v] entity [%+v]", transaction, entity)
	u.database[i] = entity
	return entity, nil
}

func (u *InMemoryRepository[T, ID]) Delete(ctx context.Context, entity T) error {
	u.m.Lock()
	defer u.m.Unlock()
	transaction := u.transactionManager.Get(ctx)
	id := u.idOf(entity)
	i := u.indexOf(id)
	if i < 0 {
		logrus.Infof("InMemoryRepository.Delete: transaction [%v] id [%v] not found", transaction, id)
		return NotFoundError
	}
	logrus.Infof("InMemoryRepository.Delete: transaction [%v] entity [%+v]", transaction, u.database[i])
	u.database = slices.Delete(u.database, i, i+1)
	return nil
}

func (u *InMemoryRepository[T, ID]) GetByID(ctx context.Context, id ID) (T, error) {
	var v T
	u.m.RLock()
	defer u.m.RUnlock()
	if i := u.indexOf(id); i >= 0 {
		return u.database[i], nil
	}
	return v, NotFoundError
}

// GetAll returns a copy, so later mutations of the store do not show through.
func (u *InMemoryRepository[T, ID]) GetAll(ctx context.Context) ([]T, error) {
	u.m.RLock()
	defer u.m.RUnlock()
	all := make([]T, len(u.database))
	copy(all, u.database)
	return all, nil
}

// Len reports the number of stored entities, duplicates included.
func (u *InMemoryRepository[T, ID]) Len() int {
	u.m.RLock()
	defer u.m.RUnlock()
	return len(u.database)
}
