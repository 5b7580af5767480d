package cmd

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/vibast-solutions/ms-go-intent/app/client"
	"github.com/vibast-solutions/ms-go-intent/app/controller"
	"github.com/vibast-solutions/ms-go-intent/app/middleware"
	"github.com/vibast-solutions/ms-go-intent/app/repository"
	"github.com/vibast-solutions/ms-go-intent/app/service"
	"github.com/vibast-solutions/ms-go-intent/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the HTTP server exposing the prediction endpoint.`,
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}
	logrus.WithField("env", cfg.Env).Info("Starting in configured mode")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("Failed to ping database")
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mongoClient, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to document store")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logrus.WithError(err).Warn("Failed to disconnect from document store")
		}
	}()
	if err := mongoClient.Ping(connectCtx, nil); err != nil {
		logrus.WithError(err).Fatal("Failed to ping document store")
	}
	logCollection := mongoClient.Database(cfg.MongoDB).Collection(cfg.PredictionLogCollection())

	modelClient := client.NewModelClient(cfg.ModelURL, cfg.InferenceTimeout)
	classifier := client.NewModelClassifier(modelClient)

	tokenRepo := repository.NewAccessTokenRepository(db)
	logRepo := repository.NewPredictionLogRepository(logCollection)
	tokenService := service.NewTokenService(tokenRepo)
	predictionService := service.NewPredictionService(classifier, logRepo, cfg.InferenceTimeout, cfg.PersistenceTimeout)

	startHTTPServer(cfg, tokenService, predictionService, modelClient)
}

func startHTTPServer(cfg *config.Config, tokenService service.TokenService, predictionService service.PredictionService, modelClient *client.ModelClient) {
	e := echo.New()
	defer e.Close()
	e.HideBanner = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	predictController := controller.NewPredictController(predictionService)
	statusController := controller.NewStatusController(cfg.Env, modelClient)
	authMiddleware := middleware.NewAuthMiddleware(tokenService, cfg.AuthEnabled())

	e.GET("/", statusController.Root)
	e.GET("/health", statusController.Health)
	e.POST("/predict", predictController.Predict, authMiddleware.RequireToken)

	httpAddr := net.JoinHostPort(cfg.HTTPHost, cfg.HTTPPort)
	logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
	if err := e.Start(httpAddr); err != nil {
		logrus.WithError(err).Fatal("Failed to start HTTP server")
	}
}

func configureLogging(cfg *config.Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return errors.New("LOG_FORMAT must be either text or json")
	}

	return nil
}
