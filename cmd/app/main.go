package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/bnchealth/benefits-backend/internal/admin"
	"github.com/bnchealth/benefits-backend/internal/assetcache"
	"github.com/bnchealth/benefits-backend/internal/banner"
	"github.com/bnchealth/benefits-backend/internal/config"
	"github.com/bnchealth/benefits-backend/internal/localization"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(checkMiddleware)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	ctx := context.Background()

	source := banner.NewPostgresSource(db)
	if err := source.EnsureSchema(ctx); err != nil {
		panic(err)
	}

	// load the newest stored payload; seed a fresh install so the app renders something
	bannerService := banner.NewService()
	payload, err := source.Latest(ctx)
	if errors.Is(err, banner.ErrNoPayload) {
		payload = banner.SamplePayload()
		if err := source.Save(ctx, payload, "seed"); err != nil {
			fmt.Printf("warning: could not seed banner payload: %v\n", err)
		}
	} else if err != nil {
		panic(err)
	}
	if err := bannerService.LoadJSON(payload); err != nil {
		panic(err)
	}

	display := mustLoadDisplayConfig(cfg.DisplayConfigPath)
	icons := assetcache.New(cfg.AssetsDir)
	bannerHandler := banner.NewHandler(bannerService, display, source, icons)
	bannerHandler.RegisterPublicRoutes(app)

	stringsManager := localization.NewManager(
		localization.NewFileDataSource(cfg.StringsDir),
		localization.Language(cfg.DefaultLanguage),
	)
	localization.NewHandler(stringsManager).RegisterPublicRoutes(app)

	admin.NewHandler().RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))
	bannerHandler.RegisterProtectedRoutes(app)

	app.Listen(cfg.Addr)
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

// mustLoadDisplayConfig reads and validates the display policy once at
// startup. A missing file means "show everything in the default order"; an
// invalid file is a hard failure.
func mustLoadDisplayConfig(path string) banner.DisplayConfig {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("warning: display config not found at %s, using defaults\n", path)
		return banner.DisplayConfig{}
	}
	cfg, err := banner.ParseDisplayConfig(data)
	if err != nil {
		panic(err)
	}
	return cfg
}

func checkMiddleware(c *fiber.Ctx) error {
	start := time.Now()
	fmt.Printf("URL = %s, Method = %s, Start Time = %v\n", c.OriginalURL(), c.Method(), start)
	return c.Next()
}
