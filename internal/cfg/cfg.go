package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

// Драйверы хранилища состояния
const (
	StorageBolt     = "bolt"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Storage *StorageCfg
	Http    *HTTPConfig
	Grpc    *GRPCConfig
	Bolt    *BoltCfg
	Db      *PGDBCfg
	Redis   *RedisCfg
	Kafka   *KafkaCfg // nil, если KAFKA_BROKERS не задан
	Minio   *MinIOCfg // nil, если MINIO_ENDPOINT не задан
	Admin   *AdminCfg
}

type StorageCfg struct {
	Driver    string
	KeyPrefix string // Префикс ключей состояния (products, cart, orders)
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	SwaggerHost  string
}

type GRPCConfig struct {
	Port        string
	NetworkMode string
}

type BoltCfg struct {
	Path        string
	Bucket      string
	OpenTimeout time.Duration
}

type PGDBCfg struct {
	Host          string
	Port          string
	User          string
	Password      string
	DBName        string
	SSLMode       string
	MigrationsURL string
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
}

type KafkaCfg struct {
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
	EnsureAttempts    int
}

type MinIOCfg struct {
	MinioEndpoint     string // Адрес конечной точки MinIO
	BucketName        string // Бакет для изображений товаров
	MinioRootUser     string
	MinioRootPassword string
	MinioUseSSL       bool
	PublicBaseURL     string // Базовый URL, по которому изображения отдаются клиенту
	MaxImageSize      int64
}

// AdminCfg - учётные данные панели администратора.
// Это заглушка статической проверки, а не механизм безопасности.
type AdminCfg struct {
	Username string
	Password string
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	storage, err := loadStorageCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	bolt, err := loadBoltCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cfg := &Config{
		Storage: storage,
		Http:    http,
		Grpc:    loadGRPCConfig(),
		Bolt:    bolt,
		Admin:   loadAdminCfg(log),
	}

	switch storage.Driver {
	case StoragePostgres:
		if cfg.Db, err = loadPGDBCfg(log); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	case StorageRedis:
		if cfg.Redis, err = loadRedisCfg(log); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	if cfg.Kafka, err = loadKafkaCfg(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if cfg.Minio, err = loadMinIOCfg(log); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return cfg, nil
}

func loadStorageCfg(log logger.Logger) (*StorageCfg, error) {
	const (
		defaultDriver    = StorageBolt
		defaultKeyPrefix = "bakery"
	)

	driver := strings.ToLower(getEnvOrDefault("STORAGE_DRIVER", defaultDriver))
	switch driver {
	case StorageBolt, StorageRedis, StoragePostgres, StorageMemory:
	default:
		err := fmt.Errorf("%w: %s", e.ErrUnknownStorageDriver, driver)
		log.Errorf(err, "invalid STORAGE_DRIVER")
		return nil, err
	}

	return &StorageCfg{
		Driver:    driver,
		KeyPrefix: getEnvOrDefault("STORAGE_KEY_PREFIX", defaultKeyPrefix),
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		SwaggerHost:  getEnvOrDefault("SWAGGER_HOST", "localhost:"+port),
	}, nil
}

func loadGRPCConfig() *GRPCConfig {
	const (
		defaultPort        = "8091"
		defaultNetworkMode = "tcp"
	)

	return &GRPCConfig{
		Port:        getEnvOrDefault("GRPC_PORT", defaultPort),
		NetworkMode: getEnvOrDefault("GRPC_NETWORK_MODE", defaultNetworkMode),
	}
}

func loadBoltCfg(log logger.Logger) (*BoltCfg, error) {
	const (
		defaultPath        = "./data/bakery.db"
		defaultBucket      = "state"
		defaultOpenTimeout = time.Second
	)

	openTimeout, err := parseDurationEnv("BOLT_OPEN_TIMEOUT", defaultOpenTimeout)
	if err != nil {
		log.Errorf(err, "invalid BOLT_OPEN_TIMEOUT")
		return nil, err
	}

	return &BoltCfg{
		Path:        getEnvOrDefault("BOLT_PATH", defaultPath),
		Bucket:      getEnvOrDefault("BOLT_BUCKET", defaultBucket),
		OpenTimeout: openTimeout,
	}, nil
}

func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost          = "localhost"
		defaultPort          = "5432"
		defaultSSLMode       = "disable"
		defaultMigrationsURL = "file://db/migrations"
	)

	user := getEnv("POSTGRES_USER")
	if user == "" {
		err := fmt.Errorf("POSTGRES_USER is required")
		log.Errorf(err, "missing POSTGRES_USER")
		return nil, err
	}

	password := getEnv("POSTGRES_PASSWORD")
	if password == "" {
		err := fmt.Errorf("POSTGRES_PASSWORD is required")
		log.Errorf(err, "missing POSTGRES_PASSWORD")
		return nil, err
	}

	dbName := getEnv("POSTGRES_DB")
	if dbName == "" {
		err := fmt.Errorf("POSTGRES_DB is required")
		log.Errorf(err, "missing POSTGRES_DB")
		return nil, err
	}

	return &PGDBCfg{
		Host:          getEnvOrDefault("POSTGRES_HOST", defaultHost),
		Port:          getEnvOrDefault("POSTGRES_PORT", defaultPort),
		User:          user,
		Password:      password,
		DBName:        dbName,
		SSLMode:       getEnvOrDefault("SSL_MODE", defaultSSLMode),
		MigrationsURL: getEnvOrDefault("MIGRATIONS_URL", defaultMigrationsURL),
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
	)

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        getEnvOrDefault("REDIS_ADDR", defaultAddr),
		Password:    getEnv("REDIS_PASSWORD"),
		User:        getEnv("REDIS_USER"),
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
	}, nil
}

// loadKafkaCfg возвращает nil без ошибки, если публикация событий не настроена.
func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultTopic             = "bakery.events"
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
		defaultEnsureAttempts    = 5
	)

	brokerStr := getEnv("KAFKA_BROKERS")
	if brokerStr == "" {
		return nil, nil
	}

	brokers := make([]string, 0)
	for _, broker := range strings.Split(brokerStr, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	if len(brokers) == 0 {
		return nil, e.Wrap("KAFKA_BROKERS", e.ErrIncorrectEnvVariable)
	}

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("REPLICATION_FACTOR", err)
	}

	ensureAttempts, err := parseIntEnv("KAFKA_ENSURE_ATTEMPTS", defaultEnsureAttempts)
	if err != nil {
		return nil, e.Wrap("KAFKA_ENSURE_ATTEMPTS", err)
	}

	return &KafkaCfg{
		Brokers:           brokers,
		Topic:             getEnvOrDefault("KAFKA_TOPIC", defaultTopic),
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
		EnsureAttempts:    ensureAttempts,
	}, nil
}

// loadMinIOCfg возвращает nil без ошибки, если загрузка изображений не настроена.
func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL       = false
		defaultBucket       = "product-images"
		defaultMaxImageSize = 5 << 20
	)

	endpoint := getEnv("MINIO_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	maxImageSize, err := parseIntEnv("MAX_IMAGE_SIZE", defaultMaxImageSize)
	if err != nil {
		log.Errorf(err, "invalid MAX_IMAGE_SIZE")
		return nil, err
	}

	scheme := "http"
	if useSSL {
		scheme = "https"
	}

	return &MinIOCfg{
		MinioEndpoint:     endpoint,
		BucketName:        getEnvOrDefault("BUCKET_NAME", defaultBucket),
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
		PublicBaseURL:     strings.TrimSuffix(getEnvOrDefault("MINIO_PUBLIC_URL", scheme+"://"+endpoint), "/"),
		MaxImageSize:      int64(maxImageSize),
	}, nil
}

func loadAdminCfg(log logger.Logger) *AdminCfg {
	const (
		defaultUsername = "admin"
		defaultPassword = "123456"
	)

	cfg := &AdminCfg{
		Username: getEnvOrDefault("ADMIN_USERNAME", defaultUsername),
		Password: getEnvOrDefault("ADMIN_PASSWORD", defaultPassword),
	}

	if cfg.Username == defaultUsername && cfg.Password == defaultPassword {
		log.Warnf("admin panel uses the default static credentials, this check is not a security boundary")
	}

	return cfg
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
