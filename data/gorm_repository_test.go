package data_test

import (
	"context"
	"github.com/reuben-baek/repository-pattern/data"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"log"
	"os"
	"testing"
	"time"
)

func init() {
	logrus.SetLevel(logrus.DebugLevel)
}

func getGormDB(t *testing.T) *gorm.DB {
	logConfig := logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold: 100 * time.Millisecond,
		LogLevel:      logger.Info,
		Colorful:      true,
	})

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logConfig,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.Nil(t, err)

	// every connection to file::memory: is a separate database
	sqlDB, err := db.DB()
	require.Nil(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.Nil(t, db.AutoMigrate(&User{}))
	return db
}

func TestGormRepository(t *testing.T) {
	ctx := context.Background()
	alice := User{ID: 1, Name: "Alice", Email: "alice@example.com"}
	bob := User{ID: 2, Name: "Bob", Email: "bob@example.com"}

	t.Run("scenario", func(t *testing.T) {
		db := getGormDB(t)
		var userRepository UserRepository
		userRepository = data.NewGormRepository[User, int](data.NewGormTransactionManager(db))

		_, err := userRepository.Add(ctx, alice)
		require.Nil(t, err)
		_, err = userRepository.Add(ctx, bob)
		require.Nil(t, err)

		all, err := userRepository.GetAll(ctx)
		assert.Nil(t, err)
		assert.Equal(t, []User{alice, bob}, all)

		updated, err := userRepository.Update(ctx, User{ID: 1, Name: "Alicia"})
		assert.Nil(t, err)
		assert.Equal(t, "Alicia", updated.Name)

		found, err := userRepository.GetByID(ctx, 1)
		assert.Nil(t, err)
		assert.Equal(t, "Alicia", found.Name)
		assert.Empty(t, found.Email)

		err = userRepository.Delete(ctx, bob)
		assert.Nil(t, err)

		all, err = userRepository.GetAll(ctx)
		assert.Nil(t, err)
		assert.Equal(t, []User{{ID: 1, Name: "Alicia"}}, all)
	})
	t.Run("duplicate id is rejected", func(t *testing.T) {
		db := getGormDB(t)
		userRepository := data.NewGormRepository[User, int](data.NewGormTransactionManager(db))

		_, err := userRepository.Add(ctx, alice)
		require.Nil(t, err)
		_, err = userRepository.Add(ctx, alice)
		assert.NotNil(t, err)
		assert.NotErrorIs(t, err, data.NotFoundError)
	})
	t.Run("not found", func(t *testing.T) {
		db := getGormDB(t)
		userRepository := data.NewGormRepository[User, int](data.NewGormTransactionManager(db))
		userRepository.Add(ctx, alice)

		_, err := userRepository.GetByID(ctx, 2)
		assert.ErrorIs(t, err, data.NotFoundError)

		_, err = userRepository.Update(ctx, bob)
		assert.ErrorIs(t, err, data.NotFoundError)

		err = userRepository.Delete(ctx, bob)
		assert.ErrorIs(t, err, data.NotFoundError)

		all, err := userRepository.GetAll(ctx)
		assert.Nil(t, err)
		assert.Equal(t, []User{alice}, all)
	})
	t.Run("get all of empty table", func(t *testing.T) {
		db := getGormDB(t)
		userRepository := data.NewGormRepository[User, int](data.NewGormTransactionManager(db))

		all, err := userRepository.GetAll(ctx)
		assert.Nil(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})
}

type Member struct {
	Seq  uint64 `gorm:"primaryKey;autoIncrement"`
	ID   string `gorm:"uniqueIndex;not null"`
	Name string
}

func (Member) SequenceColumn() string {
	return "seq"
}

func TestGormRepository_SequencedRecord(t *testing.T) {
	ctx := context.Background()
	db := getGormDB(t)
	require.Nil(t, db.AutoMigrate(&Member{}))
	memberRepository := data.NewGormRepository[Member, string](data.NewGormTransactionManager(db))

	_, err := memberRepository.Add(ctx, Member{ID: "zoe", Name: "Zoe"})
	require.Nil(t, err)
	_, err = memberRepository.Add(ctx, Member{ID: "adam", Name: "Adam"})
	require.Nil(t, err)

	names := func() []string {
		all, err := memberRepository.GetAll(ctx)
		require.Nil(t, err)
		names := make([]string, 0, len(all))
		for _, v := range all {
			names = append(names, v.Name)
		}
		return names
	}
	assert.Equal(t, []string{"Zoe", "Adam"}, names())

	_, err = memberRepository.Update(ctx, Member{ID: "zoe", Name: "Zoey"})
	require.Nil(t, err)
	assert.Equal(t, []string{"Zoey", "Adam"}, names())

	found, err := memberRepository.GetByID(ctx, "zoe")
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), found.Seq)

	_, err = memberRepository.Add(ctx, Member{ID: "adam", Name: "Adam Again"})
	assert.NotNil(t, err)
}
