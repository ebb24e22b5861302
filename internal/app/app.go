package app

import (
	"jobboard-api/config"
	"jobboard-api/internal/mailer"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/storage/postgres"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate

	UserRepo        storage.UserRepository
	CompanyRepo     storage.CompanyRepository
	JobRepo         storage.JobRepository
	ApplicationRepo storage.ApplicationRepository

	UserService        services.UserService
	CompanyService     services.CompanyService
	JobService         services.JobService
	ApplicationService services.ApplicationService
}

// New wires repositories and services around the shared pool and clients.
func New(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client, validate *validator.Validate) *Application {
	userRepo := postgres.NewUserRepo(pool)
	companyRepo := postgres.NewCompanyRepo(pool)
	jobRepo := postgres.NewJobRepo(pool)
	applicationRepo := postgres.NewApplicationRepo(pool)

	sessions := services.NewRedisSessionStore(redisClient)
	mail := mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})

	return &Application{
		Config:      cfg,
		DBPool:      pool,
		RedisClient: redisClient,
		Validator:   validate,

		UserRepo:        userRepo,
		CompanyRepo:     companyRepo,
		JobRepo:         jobRepo,
		ApplicationRepo: applicationRepo,

		UserService:        services.NewUserService(userRepo, sessions, cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.RefreshExpiration),
		CompanyService:     services.NewCompanyService(companyRepo, jobRepo),
		JobService:         services.NewJobService(jobRepo, companyRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo, mail),
	}
}
