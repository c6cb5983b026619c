package app

import (
	"context"
	"time"

	config "github.com/DRSN-tech/bakery-backend/internal/cfg"
	boltRepo "github.com/DRSN-tech/bakery-backend/internal/repository/bolt"
	"github.com/DRSN-tech/bakery-backend/internal/repository/memory"
	"github.com/DRSN-tech/bakery-backend/internal/repository/pgdb"
	redisRepo "github.com/DRSN-tech/bakery-backend/internal/repository/redis"
	"github.com/DRSN-tech/bakery-backend/internal/usecase"
	"github.com/DRSN-tech/bakery-backend/pkg/clients"
	"github.com/DRSN-tech/bakery-backend/pkg/closer"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
	"github.com/DRSN-tech/bakery-backend/pkg/postgres"
	"github.com/jimlawless/whereami"
)

const connectTimeout = 10 * time.Second

// newStateRepository открывает бэкенд хранилища состояния, выбранный в STORAGE_DRIVER,
// и регистрирует его закрытие в closer.
func newStateRepository(cfg *config.Config, logger logger.Logger, cl *closer.Closer) (usecase.StateRepository, error) {
	switch cfg.Storage.Driver {
	case "", config.StorageBolt:
		return initBolt(cfg, logger, cl)
	case config.StorageRedis:
		return initRedis(cfg, logger, cl)
	case config.StoragePostgres:
		return initPGDB(cfg, logger, cl)
	case config.StorageMemory:
		logger.Warnf("memory storage selected, state will be lost on restart")
		return memory.NewStateRepo(), nil
	default:
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrUnknownStorageDriver)
	}
}

func initBolt(cfg *config.Config, logger logger.Logger, cl *closer.Closer) (usecase.StateRepository, error) {
	db, err := clients.NewBoltClient(cfg.Bolt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.AddSimple("bolt", db.Close)

	repo, err := boltRepo.NewStateRepo(db, cfg.Bolt.Bucket)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	logger.Infof("bolt storage opened: %s", cfg.Bolt.Path)
	return repo, nil
}

func initRedis(cfg *config.Config, logger logger.Logger, cl *closer.Closer) (usecase.StateRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	redisClient, err := clients.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.AddSimple("redis", redisClient.Close)

	logger.Infof("redis storage connected: %s", cfg.Redis.Addr)
	return redisRepo.NewStateRepo(redisClient, logger), nil
}

func initPGDB(cfg *config.Config, logger logger.Logger, cl *closer.Closer) (usecase.StateRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.AddSimple("postgres", func() error {
		db.Close()
		return nil
	})

	if err := db.Migrate(cfg.Db.MigrationsURL, logger); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	logger.Infof("postgres storage connected: %s:%s/%s", cfg.Db.Host, cfg.Db.Port, cfg.Db.DBName)
	return pgdb.NewStateRepo(db.Pool), nil
}
