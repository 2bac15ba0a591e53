package protocal

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"messenger-selfcheck/configs"
	httpAdapter "messenger-selfcheck/internal/adapters/input/http"
	"messenger-selfcheck/internal/adapters/output/memory"
	messengerAdapter "messenger-selfcheck/internal/adapters/output/messenger"
	"messenger-selfcheck/internal/adapters/output/postgres"
	questionsAdapter "messenger-selfcheck/internal/adapters/output/questions"
	redisAdapter "messenger-selfcheck/internal/adapters/output/redis"
	"messenger-selfcheck/internal/application"
	"messenger-selfcheck/internal/ports/output"
	"messenger-selfcheck/pkg/database_driver/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	logrus.Info(configs.GetViper().Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))
	dbConGorm, err := gorm.ConnectToPostgreSQL(
		configs.GetViper().Postgres.Host,
		configs.GetViper().Postgres.Port,
		configs.GetViper().Postgres.Username,
		configs.GetViper().Postgres.Password,
		configs.GetViper().Postgres.DbName,
		configs.GetViper().Postgres.SSLMode,
	)
	if err != nil {
		return err
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			gorm.DisconnectPostgres(dbConGorm.Postgres)
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	sessionTTL := time.Duration(configs.GetViper().Session.TTLMinutes) * time.Minute
	if configs.GetViper().Session.TTLMinutes <= 0 {
		sessionTTL = 30 * time.Minute
	}
	catalogTTL := time.Duration(configs.GetViper().Questions.CacheTTLSeconds) * time.Second
	if configs.GetViper().Questions.CacheTTLSeconds <= 0 {
		catalogTTL = 5 * time.Minute
	}

	// Wire up the hexagonal architecture layers
	// Output adapters
	var sessionStore output.SessionStore
	switch configs.GetViper().Session.Store {
	case "redis":
		addr := fmt.Sprintf("%s:%s", configs.GetViper().Redis.Host, configs.GetViper().Redis.Port)
		sessionStore = redisAdapter.NewRedisSessionStore(addr, sessionTTL, catalogTTL)
	default:
		sessionStore = memory.NewMemorySessionStore(sessionTTL, catalogTTL)
	}
	messengerClient := messengerAdapter.NewMessengerClientAdapter(configs.GetViper().Facebook)
	questionsClient := questionsAdapter.NewQuestionsClientAdapter(configs.GetViper().Questions)
	resultRepo := postgres.NewResultRepository(dbConGorm.Postgres)

	// Application services (use cases)
	catalogProvider := application.NewCatalogProvider(sessionStore, questionsClient, catalogTTL)
	flowSrv := application.NewFlowService(sessionStore, messengerClient, questionsClient, catalogProvider, resultRepo)
	resultSrv := application.NewResultService(resultRepo)

	// Input adapters (HTTP handlers)
	hdl := httpAdapter.New(resultSrv, messengerClient, dbConGorm.Postgres)
	webhookHdl := httpAdapter.NewWebhookHandler(flowSrv, configs.GetViper().Facebook.VerifyToken)

	app.Get("/health", hdl.HealthCheck)

	// Messenger webhook endpoints
	app.Get("/", webhookHdl.VerifyWebhook)
	app.Post("/", webhookHdl.HandleWebhook)

	// One-off Messenger profile administration
	app.Get("/init", hdl.InitProfile)
	app.Get("/menu", hdl.SetupMenu)

	magnolia := app.Group("/v1/api")
	{
		magnolia.Get("/results", hdl.GetResults)
	}

	err = app.Listen(":" + configs.GetViper().App.Port)
	if err != nil {
		return err
	}

	logrus.Println("Listerning on port: ", configs.GetViper().App.Port)
	return nil
}
