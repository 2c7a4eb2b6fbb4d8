package data

import (
	"context"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// dummyTransactionManager only labels a unit of work with a uuid. The
// in-memory store uses it to correlate diagnostics.
type dummyTransactionManager struct {
}

func NewDummyTransactionManager() *dummyTransactionManager {
	return &dummyTransactionManager{}
}

type dummyTransactionKey struct{}

func (d *dummyTransactionManager) Do(ctx context.Context, f func(ctx context.Context) error) error {
	transactionID := uuid.New()
	logrus.Infof("DummyTransactionManager.Do: transaction [%s]", transactionID)
	return f(context.WithValue(ctx, dummyTransactionKey{}, transactionID))
}

func (d *dummyTransactionManager) Get(ctx context.Context) any {
	tx, ok := ctx.Value(dummyTransactionKey{}).(uuid.UUID)
	if !ok {
		return uuid.New()
	}
	return tx
}
