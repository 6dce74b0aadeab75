package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"planora/internal/config"
	"planora/internal/handler"
	"planora/internal/metrics"
	"planora/internal/middleware"
	"planora/internal/model"
	"planora/internal/repository"
	"planora/internal/service"
	"planora/internal/session"
	"planora/internal/version"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	mongo  *mongo.Client
	redis  *redis.Client
	logger zerolog.Logger
}

// Repositories groups the per-entity document repositories.
type Repositories struct {
	Users       repository.IUserRepository
	Expenses    repository.IExpenseRepository
	Projects    repository.IProjectRepository
	Memberships repository.IMembershipRepository
	Contacts    repository.IContactRepository
}

// Services groups the business-logic services.
type Services struct {
	Auth     *service.AuthService
	Users    *service.UserService
	Expenses *service.ExpenseService
	Projects *service.ProjectService
	Intake   *service.IntakeService
}

// Handlers groups the HTTP handlers.
type Handlers struct {
	Auth     *handler.AuthHandler
	Users    *handler.UserHandler
	Expenses *handler.ExpenseHandler
	Projects *handler.ProjectHandler
	Intake   *handler.IntakeHandler
}

// New creates a new server instance
func New(cfg *config.Config, logger zerolog.Logger) (*Server, error) {
	mongoClient, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	sessions := session.NewRedisStore(redisClient, time.Duration(cfg.Session.TTLHours)*time.Hour)

	repos := InitRepositories(db)
	services := InitServices(cfg, repos, sessions)
	handlers := InitHandlers(cfg, services)

	router := setupRouter(cfg, logger, handlers, services, sessions)

	return &Server{
		cfg:    cfg,
		router: router,
		mongo:  mongoClient,
		redis:  redisClient,
		logger: logger,
	}, nil
}

func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// InitRepositories builds the document repositories.
func InitRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:       repository.NewUserRepository(db),
		Expenses:    repository.NewExpenseRepository(db),
		Projects:    repository.NewProjectRepository(db),
		Memberships: repository.NewMembershipRepository(db),
		Contacts:    repository.NewContactRepository(db),
	}
}

// InitServices builds the business services.
func InitServices(cfg *config.Config, repos *Repositories, sessions session.Store) *Services {
	return &Services{
		Auth:     service.NewAuthService(repos.Users, sessions, cfg.BcryptCost),
		Users:    service.NewUserService(repos.Users),
		Expenses: service.NewExpenseService(repos.Expenses, repos.Users),
		Projects: service.NewProjectService(repos.Projects, repos.Users),
		Intake:   service.NewIntakeService(repos.Memberships, repos.Contacts, repos.Users),
	}
}

// InitHandlers builds the HTTP handlers.
func InitHandlers(cfg *config.Config, services *Services) *Handlers {
	return &Handlers{
		Auth:     handler.NewAuthHandler(services.Auth, cfg.Session),
		Users:    handler.NewUserHandler(services.Users),
		Expenses: handler.NewExpenseHandler(services.Expenses),
		Projects: handler.NewProjectHandler(services.Projects),
		Intake:   handler.NewIntakeHandler(services.Intake),
	}
}

// Close disconnects the persistence clients.
func (s *Server) Close() error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			return err
		}
	}
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

// Run starts the server
func (s *Server) Run() error {
	s.logger.Info().Str("addr", s.cfg.Server.Address()).Str("version", version.Version).Msg("server listening")
	return s.router.Run(s.cfg.Server.Address())
}

func setupRouter(cfg *config.Config, logger zerolog.Logger, h *Handlers, services *Services, sessions session.Store) *gin.Engine {
	r := gin.New()
	r.SetTrustedProxies(nil)
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	m := metrics.New()
	r.Use(m.Middleware())
	r.GET("/metrics", gin.WrapH(m.Handler()))

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, model.NewSuccessResponse("", version.Get()))
	})

	// Public routes
	r.POST("/signup", h.Auth.Signup)
	r.POST("/login", h.Auth.Login)
	r.POST("/contactus", h.Intake.Contact)
	r.POST("/membership", middleware.OptionalSession(sessions, cfg.Session.CookieName), h.Intake.Membership)

	// Every identity-dependent route goes through the session gate.
	protected := r.Group("")
	protected.Use(middleware.RequireSession(sessions, cfg.Session.CookieName))
	{
		protected.POST("/logout", h.Auth.Logout)
		protected.GET("/me", h.Users.Me)

		protected.GET("/budget", h.Users.GetBudget)
		protected.PUT("/budget", h.Users.UpdateBudget)

		protected.POST("/expenses", h.Expenses.Create)
		protected.GET("/get-expenses", h.Expenses.List)
		protected.PUT("/expenses/:id", h.Expenses.Update)
		protected.DELETE("/expenses/:id", h.Expenses.Delete)

		protected.POST("/event-planning", h.Projects.CreateEventPlan)
		protected.GET("/get-events", h.Projects.ListEvents)
		protected.POST("/financial-model", h.Projects.AttachFinancialModel)
		protected.POST("/notes", h.Projects.AppendNote)
		protected.GET("/notes/:projectId", h.Projects.ListNotes)
		protected.GET("/preview-event/:projectId", h.Projects.Preview)

		// Member-only routes sit behind the membership gate as well.
		members := protected.Group("")
		members.Use(middleware.RequireMembership(services.Intake))
		{
			members.GET("/membership/status", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"success": true, "member": true})
			})
		}
	}

	return r
}
