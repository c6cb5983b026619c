package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/bakery-backend/internal/cfg"
	v1Grpc "github.com/DRSN-tech/bakery-backend/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/bakery-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/bakery-backend/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/bakery-backend/internal/infrastructure/minio"
	s3Repo "github.com/DRSN-tech/bakery-backend/internal/repository/minio"
	"github.com/DRSN-tech/bakery-backend/internal/usecase"
	"github.com/DRSN-tech/bakery-backend/pkg/clients"
	"github.com/DRSN-tech/bakery-backend/pkg/closer"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	shutdownTimeout = 10 * time.Second
	forcedTimeout   = 3 * time.Second
)

// App - единый контекст приложения: хранилища, сценарии и серверы
// создаются один раз и передаются по указателю.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	Catalog   *usecase.CatalogUseCase
	Cart      *usecase.CartUseCase
	Orders    *usecase.OrderUseCase
	Navigator *usecase.Navigator

	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
}

func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	cl := closer.New(forcedTimeout)

	app, err := build(cfg, logger, cl)
	if err != nil {
		if closeErr := cl.Close(context.Background()); closeErr != nil {
			logger.Warnf("cleanup after failed start: %v", closeErr)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return app, nil
}

func build(cfg *config.Config, logger logger.Logger, cl *closer.Closer) (*App, error) {
	ctx := context.Background()

	repo, err := newStateRepository(cfg, logger, cl)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	state := usecase.NewStateStore(repo, cfg.Storage.KeyPrefix, logger)

	var publisher usecase.EventPublisher
	if cfg.Kafka != nil {
		producer, err := initKafka(cfg.Kafka, logger)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		cl.AddSimple("kafka producer", producer.Close)
		publisher = producer
	} else {
		logger.Infof("KAFKA_BROKERS is not set, domain events are disabled")
	}

	logger.Warnf("admin login is a static credential check and is not a security boundary")

	catalog := usecase.NewCatalogUC(ctx, state, publisher, logger)
	cart := usecase.NewCartUC(ctx, state, logger)
	orders := usecase.NewOrderUC(ctx, state, publisher, logger)
	nav := usecase.NewNavigator(*cfg.Admin, logger)

	useCases := &v1Http.UseCases{
		Catalog:   catalog,
		Cart:      cart,
		Orders:    orders,
		Checkout:  usecase.NewCheckoutUC(cart, orders, logger),
		Navigator: nav,
		Dashboard: usecase.NewDashboardUC(catalog, orders),
	}

	var maxImageSize int64
	if cfg.Minio != nil {
		images, err := initImages(cfg.Minio, logger)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		useCases.Images = images
		maxImageSize = cfg.Minio.MaxImageSize
	} else {
		logger.Infof("MINIO_ENDPOINT is not set, image upload is disabled")
	}

	r := chi.NewRouter()
	v1Http.NewRouter(r, cfg.Http, logger).Init(useCases, maxImageSize)

	grpcSrv := v1Grpc.NewGRPCServer(cfg.Grpc, logger)
	grpcSrv.RegisterServices(catalog, orders)

	return &App{
		cfg:       cfg,
		logger:    logger,
		closer:    cl,
		Catalog:   catalog,
		Cart:      cart,
		Orders:    orders,
		Navigator: nav,
		httpSrv:   v1Http.NewServer(r, cfg.Http),
		grpcSrv:   grpcSrv,
	}, nil
}

func initKafka(cfg *config.KafkaCfg, logger logger.Logger) (*kafka.Producer, error) {
	producer := kafka.NewProducer(logger, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := producer.EnsureTopic(ctx); err != nil {
		_ = producer.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	logger.Infof("kafka producer ready, topic: %s", cfg.Topic)
	return producer, nil
}

func initImages(cfg *config.MinIOCfg, logger logger.Logger) (*usecase.ImageUseCase, error) {
	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := clients.EnsureBucket(ctx, minioClient, cfg.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	imageRepo := s3Repo.NewProductImageRepo(minioClient, cfg.BucketName)
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg, logger)

	return usecase.NewImageUC(imagesInfra, cfg.MaxImageSize, logger), nil
}

// Run запускает HTTP и gRPC серверы и блокируется до сигнала остановки
// или фатальной ошибки одного из серверов.
func (a *App) Run() error {
	a.closer.Add("grpc server", a.grpcSrv.Stop)
	a.closer.Add("http server", a.httpSrv.Stop)

	errCh := make(chan error, 2)

	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			errCh <- e.Wrap("gRPC server", err)
		}
	}()

	go func() {
		a.logger.Infof("HTTP server started on %s", a.httpSrv.Addr())
		if err := a.httpSrv.Run(); err != nil {
			errCh <- e.Wrap("HTTP server", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(ctx); err != nil {
		a.logger.Errorf(err, "shutdown error")
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}
