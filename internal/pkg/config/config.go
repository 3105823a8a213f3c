package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type (
	App struct {
		ServiceName string
		LogLevel    string
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter refill
		RateLimiterBurst int           // middleware rate limiter capacity
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host              string
		Port              string
		User              string
		Password          string
		DBName            string
		SSLMode           string
		MigrationsEnabled bool
	}

	Gateways struct {
		CatalogURL     string
		CatalogStatic  bool // встроенный каталог вместо HTTP, для локального запуска
		CustomerURL    string
		RequestTimeout time.Duration
	}

	Kafka struct {
		PortHealthcheck     string
		Brokers             string
		PurchaseEventsTopic string
		PaymentStatusTopic  string
		ConsumerGroup       string
		Sarama              Sarama
		Handlers            KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		PaymentStatusChanged HandlerTimeout
	}

	RabbitMQ struct {
		PortHealthcheck   string
		URL               string
		Exchange          string
		PaymentRoutingKey string
		PaymentQueue      string
		Prefetch          int
		Handlers          RabbitMQHandlers
	}

	RabbitMQHandlers struct {
		PaymentRequested HandlerTimeout
	}

	HandlerTimeout struct {
		ProcessTimeout time.Duration
	}

	Outbox struct {
		Enabled       bool
		RelayInterval time.Duration
		BatchSize     int
		MaxAttempts   int
	}

	Config struct {
		App      App
		Server   HTTPServer
		Database Database
		Gateways Gateways
		Kafka    Kafka
		RabbitMQ RabbitMQ
		Outbox   Outbox
	}
)

// Section - группа настроек, которую бинарник обязан получить.
type Section int

const (
	SectionServer Section = iota
	SectionDatabase
	SectionGateways
	SectionKafkaProducer
	SectionKafkaConsumer
	SectionRabbitMQ
	SectionRabbitMQConsumer
	SectionOutbox
)

const defaultServiceName = "order-service"

// Load читает окружение целиком и проверяет только перечисленные секции.
func Load(required ...Section) (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg, required); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// BrokerList разбирает KAFKA_BROKERS, разделитель - запятая.
func (k *Kafka) BrokerList() []string {
	brokers := strings.Split(k.Brokers, ",")
	result := make([]string, 0, len(brokers))
	for _, broker := range brokers {
		broker = strings.TrimSpace(broker)
		if broker != "" {
			result = append(result, broker)
		}
	}
	return result
}

func loadFromEnv() (*Config, error) {
	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrationsEnabled, err := osGetBool("POSTGRES_MIGRATIONS_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	catalogStatic, err := osGetBool("CATALOG_STATIC_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	gatewayTimeout, err := osGetEnvDuration("GATEWAY_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	paymentStatusTimeout, err := osGetEnvDuration("KAFKA_HANDLER_PAYMENT_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rabbitPrefetch, err := osGetInt("RABBITMQ_PREFETCH")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	paymentRequestedTimeout, err := osGetEnvDuration("RABBITMQ_HANDLER_PAYMENT_REQUESTED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	outboxEnabled, err := osGetBool("EVENTS_OUTBOX_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	outboxInterval, err := osGetEnvDuration("OUTBOX_RELAY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	outboxBatchSize, err := osGetInt("OUTBOX_RELAY_BATCH_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	outboxMaxAttempts, err := osGetInt("OUTBOX_MAX_ATTEMPTS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	return &Config{
		App: App{
			ServiceName: serviceName,
			LogLevel:    os.Getenv("LOG_LEVEL"),
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:              os.Getenv("POSTGRES_HOST"),
			Port:              os.Getenv("POSTGRES_PORT"),
			User:              os.Getenv("POSTGRES_USER"),
			Password:          os.Getenv("POSTGRES_PASSWORD"),
			DBName:            os.Getenv("POSTGRES_DB"),
			SSLMode:           os.Getenv("POSTGRES_SSLMODE"),
			MigrationsEnabled: migrationsEnabled,
		},
		Gateways: Gateways{
			CatalogURL:     os.Getenv("CATALOG_SERVICE_URL"),
			CatalogStatic:  catalogStatic,
			CustomerURL:    os.Getenv("CUSTOMER_SERVICE_URL"),
			RequestTimeout: gatewayTimeout,
		},
		Kafka: Kafka{
			Brokers:             os.Getenv("KAFKA_BROKERS"),
			PurchaseEventsTopic: os.Getenv("KAFKA_PURCHASE_EVENTS_TOPIC"),
			PaymentStatusTopic:  os.Getenv("KAFKA_PAYMENT_STATUS_TOPIC"),
			ConsumerGroup:       os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck:     os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				PaymentStatusChanged: HandlerTimeout{
					ProcessTimeout: paymentStatusTimeout,
				},
			},
		},
		RabbitMQ: RabbitMQ{
			PortHealthcheck:   os.Getenv("RABBITMQ_HTTP_HEALTHCHECK_PORT"),
			URL:               os.Getenv("RABBITMQ_URL"),
			Exchange:          os.Getenv("RABBITMQ_EXCHANGE"),
			PaymentRoutingKey: os.Getenv("RABBITMQ_PAYMENT_ROUTING_KEY"),
			PaymentQueue:      os.Getenv("RABBITMQ_PAYMENT_QUEUE"),
			Prefetch:          rabbitPrefetch,
			Handlers: RabbitMQHandlers{
				PaymentRequested: HandlerTimeout{
					ProcessTimeout: paymentRequestedTimeout,
				},
			},
		},
		Outbox: Outbox{
			Enabled:       outboxEnabled,
			RelayInterval: outboxInterval,
			BatchSize:     outboxBatchSize,
			MaxAttempts:   outboxMaxAttempts,
		},
	}, nil
}

func validateConfig(cfg *Config, required []Section) error {
	if cfg.App.LogLevel != "" {
		switch strings.ToLower(cfg.App.LogLevel) {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("LOG_LEVEL %q is not supported", cfg.App.LogLevel)
		}
	}

	for _, section := range required {
		var err error
		switch section {
		case SectionServer:
			err = validateServer(&cfg.Server)
		case SectionDatabase:
			err = validateDatabase(&cfg.Database)
		case SectionGateways:
			err = validateGateways(&cfg.Gateways)
		case SectionKafkaProducer:
			err = validateKafkaProducer(&cfg.Kafka)
		case SectionKafkaConsumer:
			err = validateKafkaConsumer(&cfg.Kafka)
		case SectionRabbitMQ:
			err = validateRabbitMQ(&cfg.RabbitMQ)
		case SectionRabbitMQConsumer:
			err = validateRabbitMQConsumer(&cfg.RabbitMQ)
		case SectionOutbox:
			err = validateOutbox(&cfg.Outbox)
		default:
			err = fmt.Errorf("unknown config section %d", section)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func validateServer(cfg *HTTPServer) error {
	if cfg.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.PprofPort == "" && cfg.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	return nil
}

func validateDatabase(cfg *Database) error {
	if cfg.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func validateGateways(cfg *Gateways) error {
	if cfg.CatalogURL == "" && !cfg.CatalogStatic {
		return errors.New("CATALOG_SERVICE_URL is required unless CATALOG_STATIC_ENABLED=true")
	}
	if cfg.CustomerURL == "" {
		return errors.New("CUSTOMER_SERVICE_URL is required")
	}
	if cfg.RequestTimeout == time.Duration(0) {
		return errors.New("GATEWAY_REQUEST_TIMEOUT is required")
	}
	return nil
}

func validateKafkaProducer(cfg *Kafka) error {
	if len(cfg.BrokerList()) == 0 {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.PurchaseEventsTopic == "" {
		return errors.New("KAFKA_PURCHASE_EVENTS_TOPIC is required")
	}
	if cfg.PaymentStatusTopic == "" {
		return errors.New("KAFKA_PAYMENT_STATUS_TOPIC is required")
	}
	return nil
}

func validateKafkaConsumer(cfg *Kafka) error {
	if len(cfg.BrokerList()) == 0 {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.PaymentStatusTopic == "" {
		return errors.New("KAFKA_PAYMENT_STATUS_TOPIC is required")
	}
	if cfg.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Handlers.PaymentStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_PAYMENT_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}
	return nil
}

func validateRabbitMQ(cfg *RabbitMQ) error {
	if cfg.URL == "" {
		return errors.New("RABBITMQ_URL is required")
	}
	if cfg.Exchange == "" {
		return errors.New("RABBITMQ_EXCHANGE is required")
	}
	if cfg.PaymentRoutingKey == "" {
		return errors.New("RABBITMQ_PAYMENT_ROUTING_KEY is required")
	}
	if cfg.PaymentQueue == "" {
		return errors.New("RABBITMQ_PAYMENT_QUEUE is required")
	}
	return nil
}

func validateRabbitMQConsumer(cfg *RabbitMQ) error {
	if err := validateRabbitMQ(cfg); err != nil {
		return err
	}
	if cfg.Prefetch <= 0 {
		return errors.New("RABBITMQ_PREFETCH must be positive")
	}
	if cfg.PortHealthcheck == "" {
		return errors.New("RABBITMQ_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Handlers.PaymentRequested.ProcessTimeout == time.Duration(0) {
		return errors.New("RABBITMQ_HANDLER_PAYMENT_REQUESTED_PROCESS_TIMEOUT is required")
	}
	return nil
}

// секция outbox проверяется только когда режим включён
func validateOutbox(cfg *Outbox) error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.RelayInterval == time.Duration(0) {
		return errors.New("OUTBOX_RELAY_INTERVAL is required when EVENTS_OUTBOX_ENABLED=true")
	}
	if cfg.BatchSize <= 0 {
		return errors.New("OUTBOX_RELAY_BATCH_SIZE must be positive")
	}
	if cfg.MaxAttempts <= 0 {
		return errors.New("OUTBOX_MAX_ATTEMPTS must be positive")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
