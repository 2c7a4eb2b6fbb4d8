// Command userdemo walks a user repository through add, update, delete and
// listing on the configured backend.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/reuben-baek/repository-pattern/config"
	"github.com/reuben-baek/repository-pattern/data"
	"github.com/reuben-baek/repository-pattern/domain"
	"github.com/reuben-baek/repository-pattern/infra"
	"github.com/sirupsen/logrus"
	"io"
	"os"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("userdemo: %v", err)
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logrus.Fatalf("userdemo: %v", err)
	}
	logrus.SetLevel(level)

	if err := run(context.Background(), cfg, prometheus.NewRegistry(), os.Stdout); err != nil {
		logrus.Fatalf("userdemo: %v", err)
	}
}

func newUserRepository(cfg *config.Config) (domain.UserRepository, data.TransactionManager, error) {
	switch cfg.Store.Backend {
	case "sqlite":
		db, err := infra.OpenDatabase(cfg.Store.DSN, infra.GormLogLevel(cfg.Log.Level))
		if err != nil {
			return nil, nil, err
		}
		if err := infra.Migrate(db); err != nil {
			return nil, nil, err
		}
		transactionManager := data.NewGormTransactionManager(db)
		return infra.NewGormUserRepository(transactionManager), transactionManager, nil
	default:
		transactionManager := data.NewDummyTransactionManager()
		return infra.NewInMemoryUserRepository(transactionManager), transactionManager, nil
	}
}

func run(ctx context.Context, cfg *config.Config, reg prometheus.Registerer, out io.Writer) error {
	repository, transactionManager, err := newUserRepository(cfg)
	if err != nil {
		return err
	}
	metrics, err := data.NewRepositoryMetrics(reg)
	if err != nil {
		return err
	}
	userRepository := data.NewInstrumentedRepository[domain.User, int](metrics, "user", repository)

	alice := domain.User{ID: 1, Name: "Alice", Email: "alice@example.com", Password: "alice-secret"}
	bob := domain.User{ID: 2, Name: "Bob", Email: "bob@example.com", Password: "bob-secret"}

	// a persistent dsn still holds the users of an earlier run
	for _, user := range []domain.User{alice, bob} {
		if err := repository.Delete(ctx, user); err != nil && !errors.Is(err, data.NotFoundError) {
			return fmt.Errorf("reset users: %w", err)
		}
	}

	err = transactionManager.Do(ctx, func(ctx context.Context) error {
		if _, err := userRepository.Add(ctx, alice); err != nil {
			return err
		}
		_, err := userRepository.Add(ctx, bob)
		return err
	})
	if err != nil {
		return fmt.Errorf("add users: %w", err)
	}
	if err := printUsers(ctx, out, userRepository); err != nil {
		return err
	}

	alice.Name = "Alicia"
	err = transactionManager.Do(ctx, func(ctx context.Context) error {
		if _, err := userRepository.Update(ctx, alice); err != nil {
			return err
		}
		return userRepository.Delete(ctx, bob)
	})
	if err != nil {
		return fmt.Errorf("update users: %w", err)
	}
	return printUsers(ctx, out, userRepository)
}

func printUsers(ctx context.Context, out io.Writer, userRepository data.Repository[domain.User, int]) error {
	users, err := userRepository.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	fmt.Fprintf(out, "%d users\n", len(users))
	for _, user := range users {
		fmt.Fprintf(out, "  %s\n", user)
	}
	return nil
}
