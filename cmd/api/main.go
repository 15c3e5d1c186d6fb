// @title                      Bharat Chakra API
// @version                    1.0
// @description                Dashboard político con secciones habilitadas según el rol de la sesión.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/bharat-chakra/docs"
	"github.com/jhoicas/bharat-chakra/internal/application/auth"
	"github.com/jhoicas/bharat-chakra/internal/application/dashboard"
	"github.com/jhoicas/bharat-chakra/internal/application/ports"
	"github.com/jhoicas/bharat-chakra/internal/application/report"
	"github.com/jhoicas/bharat-chakra/internal/application/usecase"
	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
	"github.com/jhoicas/bharat-chakra/internal/domain/repository"
	infraai "github.com/jhoicas/bharat-chakra/internal/infrastructure/ai"
	"github.com/jhoicas/bharat-chakra/internal/infrastructure/kml"
	"github.com/jhoicas/bharat-chakra/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/bharat-chakra/internal/infrastructure/pdf"
	"github.com/jhoicas/bharat-chakra/internal/infrastructure/postgres"
	"github.com/jhoicas/bharat-chakra/internal/infrastructure/seed"
	"github.com/jhoicas/bharat-chakra/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/bharat-chakra/internal/interfaces/http"
	"github.com/jhoicas/bharat-chakra/pkg/config"
	"github.com/jhoicas/bharat-chakra/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_source", cfg.Data.Source).
		Msg("iniciando aplicación")

	ctx := context.Background()

	items, err := seed.LoadFile(cfg.Data.File)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar semilla de circunscripciones")
	}

	repo, closer, err := openRepository(ctx, cfg, items, log)
	if err != nil {
		log.Fatal().Err(err).Str("data_source", cfg.Data.Source).Msg("abrir base de conocimiento")
	}
	defer closer.Close()

	rnd := usecase.DefaultRandom()
	sessionUC := auth.NewSessionUseCase(auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.NewRevocationList(), log)

	weatherUC := usecase.NewWeatherUseCase(usecase.WeatherConfig{
		ElectionName:  cfg.Dashboard.ElectionName,
		CountdownDays: cfg.Dashboard.CountdownDays,
	}, rnd)
	tilesUC := usecase.NewTilesUseCase(repo)
	mapUC := usecase.NewMapUseCase(repo, kml.NewExporter())
	predictionUC := usecase.NewPredictionUseCase(log)
	constituencyUC := usecase.NewConstituencyUseCase(repo, predictionUC, rnd)
	searchUC := usecase.NewSearchUseCase(repo, queryInterpreter(cfg.AI, log), infraai.NewRuleInterpreter(), log)
	campaignUC := usecase.NewCampaignUseCase(rnd)

	// PDF descargable de la sección Reports
	reportUC := report.NewUseCase(infrapdf.NewMarotoReportGenerator(), rnd, log)

	dashboardUC := dashboard.NewUseCase(dashboard.Providers{
		Weather:    weatherUC,
		Tiles:      tilesUC,
		Map:        mapUC,
		DeepDive:   constituencyUC,
		Search:     searchUC,
		Campaign:   campaignUC,
		Prediction: predictionUC,
		Report:     reportUC,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bharat Chakra API",
	}))

	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionUC:      sessionUC,
		DashboardUC:    dashboardUC,
		WeatherUC:      weatherUC,
		TilesUC:        tilesUC,
		MapUC:          mapUC,
		ConstituencyUC: constituencyUC,
		SearchUC:       searchUC,
		CampaignUC:     campaignUC,
		PredictionUC:   predictionUC,
		ReportUC:       reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openRepository abre la base de conocimiento según DATA_SOURCE y la siembra si está vacía.
func openRepository(ctx context.Context, cfg *config.Config, items []*entity.Constituency, log *logger.Logger) (repository.ConstituencyRepository, io.Closer, error) {
	switch cfg.Data.Source {
	case config.DataSourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		n, err := postgres.Bootstrap(ctx, pool, items)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Int("inserted", n).Msg("PostgreSQL listo")
		return postgres.NewConstituencyRepository(pool), closerFunc(func() error { pool.Close(); return nil }), nil

	case config.DataSourceSQLite:
		store, err := sqlite.Open(ctx, cfg.Data.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		n, err := store.SeedIfEmpty(ctx, items)
		if err != nil {
			store.Close()
			return nil, nil, err
		}
		log.Info().Int("inserted", n).Str("path", cfg.Data.SQLitePath).Msg("SQLite listo")
		return store, store, nil

	default:
		log.Info().Int("constituencies", len(items)).Msg("base de conocimiento en memoria")
		return memory.NewConstituencyRepository(items), closerFunc(func() error { return nil }), nil
	}
}

// queryInterpreter intérprete LLM según AI_PROVIDER; nil = solo reglas.
func queryInterpreter(cfg config.AIConfig, log *logger.Logger) ports.QueryInterpreter {
	switch cfg.Provider {
	case config.AIProviderAnthropic:
		if cfg.AnthropicAPIKey != "" {
			return infraai.NewAnthropicInterpreter(cfg.AnthropicAPIKey, cfg.AnthropicModel)
		}
	case config.AIProviderGemini:
		if cfg.GeminiAPIKey != "" {
			return infraai.NewGeminiInterpreter(cfg.GeminiAPIKey, cfg.GeminiModel)
		}
	default:
		return nil
	}
	log.Warn().Str("provider", cfg.Provider).Msg("proveedor de IA sin API key, se usa solo el intérprete por reglas")
	return nil
}
