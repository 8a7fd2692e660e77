package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/ibeloyar/returndesk/internal/config"
	"github.com/ibeloyar/returndesk/internal/repository/memory"
	"github.com/ibeloyar/returndesk/internal/repository/pg"
	"github.com/ibeloyar/returndesk/internal/service"
	"go.uber.org/zap"

	redisRepo "github.com/ibeloyar/returndesk/internal/repository/redis"
)

// storage groups the repositories picked by configuration.
type storage struct {
	orders    service.OrderRepository
	inventory service.InventoryRepository
	pg        *pg.Repository
	// sink receives synced stock levels, it always backs inventory lookups
	sink pg.QuantitySink

	pingers   []func() error
	shutdowns []func() error
}

// openStorage picks Postgres when DATABASE_URI is set and the seeded
// in-memory tables otherwise. REDIS_ADDRESS moves inventory to Redis.
func openStorage(ctx context.Context, cfg config.Config, lg *zap.SugaredLogger) (*storage, error) {
	st := &storage{}

	if cfg.DatabaseURI != "" {
		repo, err := pg.New(cfg.DatabaseURI, lg)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		st.orders, st.inventory, st.pg, st.sink = repo, repo, repo, repo
		st.add(repo.Ping, repo.Shutdown)
		lg.Info("using postgres storage")
	} else {
		repo := memory.NewSeeded()
		st.orders, st.inventory = repo, repo
		st.add(repo.Ping, repo.Shutdown)
		lg.Info("using in-memory storage")
	}

	if cfg.RedisAddress != "" {
		repo, err := redisRepo.New(cfg.RedisAddress)
		if err != nil {
			st.Shutdown()
			return nil, fmt.Errorf("open redis: %w", err)
		}

		if err := repo.Seed(ctx, memory.SeedInventory()); err != nil {
			repo.Shutdown()
			st.Shutdown()
			return nil, fmt.Errorf("seed redis inventory: %w", err)
		}

		st.inventory, st.sink = repo, repo
		st.add(repo.Ping, repo.Shutdown)
		lg.Infof("using redis inventory at %s", cfg.RedisAddress)
	}

	return st, nil
}

func (s *storage) add(ping, shutdown func() error) {
	s.pingers = append(s.pingers, ping)
	s.shutdowns = append(s.shutdowns, shutdown)
}

func (s *storage) Ping() error {
	for _, ping := range s.pingers {
		if err := ping(); err != nil {
			return err
		}
	}
	return nil
}

func (s *storage) Shutdown() error {
	var errs []error
	for i := len(s.shutdowns) - 1; i >= 0; i-- {
		errs = append(errs, s.shutdowns[i]())
	}
	return errors.Join(errs...)
}
