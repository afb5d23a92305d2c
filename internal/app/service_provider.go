package app

import (
	"context"
	"net/http"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	simulationAPI "spin2win/internal/api/simulation"
	strategyAPI "spin2win/internal/api/strategy"
	"spin2win/internal/config"
	"spin2win/internal/config/env"
	"spin2win/internal/logger"
	"spin2win/internal/middleware"
	"spin2win/internal/repository"
	"spin2win/internal/repository/session_repo"
	"spin2win/internal/repository/simulation_repo"
	"spin2win/internal/service"
	"spin2win/internal/service/simulation"
	"spin2win/internal/service/strategy"
)

const requestTimeout = 60 * time.Second

type ServiceProvider struct {
	// Logger
	logCfg config.LoggerConfig
	log    *zap.Logger

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Strategy presets
	strategyCfg config.StrategyConfig

	// Session bits
	tokenCfg     config.SessionTokenConfig
	sessionRepo  repository.SessionRepository
	strategyServ service.SessionService
	strategyHand *strategyAPI.Handler

	// Simulation bits
	simulationRepo repository.SimulationRepository
	simulationServ service.SimulationService
	simulationHand *simulationAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.logCfg == nil {
		sp.logCfg = env.NewLoggerConfig()
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		l, err := logger.New(sp.LoggerCfg())
		if err != nil {
			panic("failed to build logger: " + err.Error())
		}
		sp.log = l
	}
	return sp.log
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		poolCfg, err := pgxpool.ParseConfig(sp.PgConfig().DSN())
		if err != nil {
			panic("failed to parse db config: " + err.Error())
		}
		if n := sp.PgConfig().MaxConns(); n > 0 {
			poolCfg.MaxConns = n
		}
		dbc, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) StrategyCfg() config.StrategyConfig {
	if sp.strategyCfg == nil {
		cfg, err := env.NewStrategyConfigFromYAML(env.StrategyConfigPath())
		if err != nil {
			panic("failed to get strategy config: " + err.Error())
		}
		sp.strategyCfg = cfg
	}
	return sp.strategyCfg
}

func (sp *ServiceProvider) TokenCfg() config.SessionTokenConfig {
	if sp.tokenCfg == nil {
		cfg, err := env.NewSessionTokenConfig()
		if err != nil {
			panic("failed to get session token config: " + err.Error())
		}
		sp.tokenCfg = cfg
	}
	return sp.tokenCfg
}

func (sp *ServiceProvider) SessionRepository() repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository()
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) StrategyService() service.SessionService {
	if sp.strategyServ == nil {
		sp.strategyServ = strategy.NewStrategyService(sp.SessionRepository(), sp.StrategyCfg(), sp.TokenCfg(), sp.Logger())
	}
	return sp.strategyServ
}

func (sp *ServiceProvider) StrategyHandler() *strategyAPI.Handler {
	if sp.strategyHand == nil {
		sp.strategyHand = strategyAPI.NewHandler(strategyAPI.HandlerDeps{
			Serv: sp.StrategyService(),
			Log:  sp.Logger(),
		})
	}
	return sp.strategyHand
}

func (sp *ServiceProvider) SimulationRepository(ctx context.Context) repository.SimulationRepository {
	if sp.simulationRepo == nil {
		sp.simulationRepo = simulation_repo.NewSimulationRepository(sp.DBClient(ctx))
	}
	return sp.simulationRepo
}

func (sp *ServiceProvider) SimulationService(ctx context.Context) service.SimulationService {
	if sp.simulationServ == nil {
		sp.simulationServ = simulation.NewSimulationService(
			sp.SimulationRepository(ctx),
			sp.StrategyCfg(),
			sp.TXManager(ctx),
			sp.Logger(),
		)
	}
	return sp.simulationServ
}

func (sp *ServiceProvider) SimulationHandler(ctx context.Context) *simulationAPI.Handler {
	if sp.simulationHand == nil {
		sp.simulationHand = simulationAPI.NewHandler(simulationAPI.HandlerDeps{
			Serv: sp.SimulationService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.simulationHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.Recoverer)
		r.Use(middleware.RequestLogger(sp.Logger()))
		r.Use(chimw.Timeout(requestTimeout))

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		// Session endpoints
		strategyHandler := sp.StrategyHandler()
		r.Get("/presets", strategyHandler.Presets)
		r.Post("/sessions", strategyHandler.Create)
		r.Route("/sessions/{"+middleware.SessionIDParam+"}", func(rr chi.Router) {
			rr.Use(middleware.SessionAuth(sp.TokenCfg().SecretKey()))
			rr.Get("/", strategyHandler.Get)
			rr.Delete("/", strategyHandler.Delete)
			rr.Post("/spins", strategyHandler.Spin)
			rr.Post("/reset", strategyHandler.Reset)
		})

		// Simulation endpoints
		simulationHandler := sp.SimulationHandler(ctx)
		r.Route("/simulations", func(rr chi.Router) {
			rr.Post("/", simulationHandler.Run)
			rr.Post("/batch", simulationHandler.Batch)
			rr.Get("/{id}", simulationHandler.Get)
		})

		sp.router = r
	}

	return sp.router
}

// Close Освобождает пул соединений и сбрасывает буфер логгера
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.log != nil {
		_ = sp.log.Sync()
	}
}
