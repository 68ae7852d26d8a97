package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"otm_dashboard/internals/apiclient"
	"otm_dashboard/internals/configs"
	"otm_dashboard/internals/middlewares"
	"otm_dashboard/internals/middlewares/logger"
	routes "otm_dashboard/internals/route"
	"otm_dashboard/internals/services/health"
	"otm_dashboard/internals/session"
	"otm_dashboard/views"
)

func main() {
	configs.LoadEnv()

	// cancelled on SIGINT/SIGTERM; in-flight backend calls abort with it
	baseCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		Views:                 views.Engine(),
		ViewsLayout:           "layouts/main",
		ErrorHandler:          middlewares.ErrorHandler,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// ⚙️ middleware dasar + performa
	app.Use(middlewares.RecoveryMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(middlewares.RequestID())
	app.Use(logger.LoggerMiddleware())
	app.Use(middlewares.RequestContext(baseCtx, configs.RequestDeadline()))

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   views.Static(),
		MaxAge: 3600,
	}))

	// 🍪 session: redis when configured, otherwise in-process memory
	var storage fiber.Storage
	if configs.RedisAddr != "" {
		rdb, err := session.DialRedis(context.Background(), configs.RedisAddr, configs.RedisPassword)
		if err != nil {
			log.Fatalf("❌ redis %s: %v", configs.RedisAddr, err)
		}
		rs := session.NewRedisStorage(rdb, "")
		defer rs.Close()
		storage = rs
		log.Printf("[INFO] sessions stored in redis at %s", configs.RedisAddr)
	} else {
		log.Println("[INFO] sessions stored in memory")
	}
	app.Use(session.Middleware(session.NewStore(storage, configs.SessionTTL, configs.CookieSecure)))
	app.Use(middlewares.CSRFMiddleware(configs.CookieSecure))

	api := apiclient.New(configs.APIBaseURL, apiclient.WithTimeout(configs.APITimeout))

	// ❤️ backend health probe
	monitor := health.NewMonitor(api, "")
	if err := monitor.Start(configs.HealthCron); err != nil {
		log.Printf("[WARN] health monitor disabled: %v", err)
	}
	defer monitor.Stop()

	// ✅ Routes
	routes.SetupRoutes(app, api, monitor)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = configs.WriteTimeout
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("✅ Listening on :%s (backend %s)", configs.Port, configs.APIBaseURL)
		if err := app.Listen("0.0.0.0:" + configs.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-baseCtx.Done()
	log.Println("[INFO] shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
}
