package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"desaku_backend/internals/configs"
	database "desaku_backend/internals/databases"
	settingsModel "desaku_backend/internals/features/settings/model"
	settingsStore "desaku_backend/internals/features/settings/store"
	submissionModel "desaku_backend/internals/features/submissions/model"
	submissionService "desaku_backend/internals/features/submissions/service"
	submissionStore "desaku_backend/internals/features/submissions/store"
	templateModel "desaku_backend/internals/features/templates/model"
	templateStore "desaku_backend/internals/features/templates/store"
	uploadService "desaku_backend/internals/features/uploads/service"
	userModel "desaku_backend/internals/features/users/user/model"
	userStore "desaku_backend/internals/features/users/user/store"
	middlewares "desaku_backend/internals/middlewares"
	routes "desaku_backend/internals/route"
	"desaku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		BodyLimit:               int(configs.MaxUploadSize) * (configs.MaxUploadFiles + 1),
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	deps := buildDeps()

	// akun admin bawaan (seperti instalasi pertama)
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 5*time.Second)
	seeds.EnsureDefaultAdmin(seedCtx, deps.Users)
	seedCancel()

	// ❤️ Health check (anti-cold start)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// ✅ Routes
	routes.SetupRoutes(app, deps)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if database.DB != nil {
		if sqlDB, err := database.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

// buildDeps memilih backend penyimpanan: Postgres kalau DB_HOST terisi,
// selain itu memori (mode pengembangan / demo).
func buildDeps() routes.Deps {
	uploads, err := uploadService.NewUploadService(
		configs.UploadDir, configs.MaxUploadSize, configs.MaxUploadFiles)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	if os.Getenv("DB_HOST") == "" {
		log.Println("⚠️ DB_HOST kosong, memakai penyimpanan memori (data hilang saat restart)")
		users := userStore.NewInMemory()
		return routes.Deps{
			Users:       users,
			Submissions: submissionService.NewSubmissionService(submissionStore.NewInMemory(users)),
			Templates:   templateStore.NewInMemory(),
			Settings:    settingsStore.NewInMemory(),
			Uploads:     uploads,
		}
	}

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.Migrate(
		&userModel.UserModel{},
		&submissionModel.SubmissionModel{},
		&templateModel.TemplateModel{},
		&settingsModel.OrganizationModel{},
	)
	database.WarmUpQueries()

	return routes.Deps{
		Users:       userStore.NewGorm(database.DB),
		Submissions: submissionService.NewSubmissionService(submissionStore.NewGorm(database.DB)),
		Templates:   templateStore.NewGorm(database.DB),
		Settings:    settingsStore.NewGorm(database.DB),
		Uploads:     uploads,
	}
}
