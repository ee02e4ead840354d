package infra

import (
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/imaging-leads/internal/auth"
	"github.com/umalmyha/imaging-leads/internal/cache"
	"github.com/umalmyha/imaging-leads/internal/config"
	"github.com/umalmyha/imaging-leads/internal/events"
	"github.com/umalmyha/imaging-leads/internal/pricing"
	"github.com/umalmyha/imaging-leads/internal/repository"
	"github.com/umalmyha/imaging-leads/internal/service"
	"github.com/umalmyha/imaging-leads/internal/validation"
	"github.com/umalmyha/imaging-leads/pkg/db/transactor"
	"go.mongodb.org/mongo-driver/mongo"
)

// Connections holds opened datastore connections, mongo is required only for mongo storage backend
type Connections struct {
	Postgres  *pgxpool.Pool
	Mongo     *mongo.Client
	Redis     *redis.Client
	Publisher events.Publisher
}

// Services holds application services and shared components built on top of connections
type Services struct {
	Validator    *validation.Validator
	JwtValidator *auth.JwtValidator
	Pricing      pricing.Provider
	Intake       service.IntakeService
	Review       service.ReviewService
	Lifecycle    service.LifecycleService
	Auth         service.AuthService
}

// BuildServices wires repositories, caches and services
func BuildServices(cfg *config.Config, conns Connections) (*Services, error) {
	v, err := validation.New()
	if err != nil {
		return nil, err
	}

	// Transactors
	trx := transactor.NewPgxTransactor(conns.Postgres)
	trxExec := transactor.NewPgxWithinTransactionExecutor(conns.Postgres)

	// Extra functionality
	jwtCfg := cfg.AuthCfg.JwtCfg
	jwtIssuer := auth.NewJwtIssuer(jwtCfg.Issuer, jwtCfg.SigningMethod, jwtCfg.TimeToLive, jwtCfg.PrivateKey)
	jwtValidator := auth.NewJwtValidator(jwtCfg.Issuer, jwtCfg.SigningMethod, jwtCfg.PublicKey)

	// Repositories
	var submRepo repository.SubmissionRepository
	switch cfg.StorageBackend {
	case config.StorageMongo:
		submRepo = repository.NewMongoSubmissionRepository(conns.Mongo.Database(cfg.MongoCfg.Database))
	default:
		submRepo = repository.NewPostgresSubmissionRepository(trxExec)
	}
	logrus.Infof("lead submissions are kept in %s", cfg.StorageBackend)

	bookingRepo := repository.NewPostgresBookingRepository(trxExec)
	staffRepo := repository.NewPostgresStaffRepository(trxExec)

	// Caches
	submCache := cache.NewRedisSubmissionCache(conns.Redis)
	tickets := cache.NewRedisDeletionTicketStore(conns.Redis, cfg.ReviewCfg.DeleteConfirmTTL)
	locCache := cache.NewRedisLocationCache(conns.Redis)

	publisher := conns.Publisher
	if publisher == nil {
		publisher = events.NewNopPublisher()
	}

	return &Services{
		Validator:    v,
		JwtValidator: jwtValidator,
		Pricing:      pricing.NewCachingProvider(pricing.NewMockProvider(time.Now().UnixNano()), locCache),
		Intake:       service.NewIntakeService(v, submRepo, bookingRepo, publisher),
		Review:       service.NewReviewService(submRepo, cfg.ReviewCfg.Location),
		Lifecycle:    service.NewLifecycleService(submRepo, submCache, tickets),
		Auth:         service.NewAuthService(jwtIssuer, trx, staffRepo),
	}, nil
}

// Publisher builds kafka events publisher, events are dropped when no brokers are configured
func Publisher(cfg config.KafkaCfg) events.Publisher {
	if len(cfg.Brokers) == 0 {
		logrus.Warn("kafka brokers are not configured, lead events won't be published")
		return events.NewNopPublisher()
	}
	return events.NewKafkaPublisher(cfg.Brokers, cfg.Topic)
}
