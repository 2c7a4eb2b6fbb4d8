package infra

import (
	"github.com/reuben-baek/repository-pattern/data"
	"github.com/reuben-baek/repository-pattern/domain"
)

type UserRepository struct {
	data.Repository[domain.User, int]
}

func NewUserRepository(repository data.Repository[domain.User, int]) *UserRepository {
	return &UserRepository{Repository: repository}
}

func NewInMemoryUserRepository(transactionManager data.TransactionManager) *UserRepository {
	return NewUserRepository(data.NewInMemoryRepository[domain.User, int](transactionManager))
}

// NewGormUserRepository expects transactionManager to hand out *gorm.DB,
// see data.NewGormTransactionManager.
func NewGormUserRepository(transactionManager data.TransactionManager) *UserRepository {
	return NewUserRepository(
		data.NewDtoWrapRepository[UserRecord, domain.User, int](
			data.NewGormRepository[UserRecord, int](transactionManager),
		),
	)
}
