package main

import (
	"crypto/tls"
	"net/http"
	"time"

	"gamehub/config"
	"gamehub/db"
	"gamehub/handlers"
	"gamehub/monitoring"
	"gamehub/routes"
	"gamehub/services"
	"gamehub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm/logger"
)

func main() {
	cfg := config.Load()

	utils.InitLogger(utils.LoggerConfig{
		Level:   cfg.LogLevel,
		Release: cfg.Release(),
		File:    cfg.LogFile,
	})

	if cfg.Release() {
		gin.SetMode(gin.ReleaseMode)
	}

	gormLevel := logger.Warn
	if cfg.LogLevel == "debug" {
		gormLevel = logger.Info
	}

	gdb, err := db.Open(db.Config{
		DSN:          cfg.DatabaseURL,
		MaxOpenConns: cfg.DBMaxOpenConns,
		LogLevel:     gormLevel,
	})
	if err != nil {
		utils.Log.WithError(err).Fatal("Failed to connect to database")
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			utils.Log.WithError(err).Warn("Failed to close database")
		}
	}()

	if cfg.AutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			utils.Log.WithError(err).Fatal("Failed to migrate database")
		}
	}
	if cfg.SeedOnStart {
		if err := db.Seed(gdb, db.TestData()); err != nil {
			utils.Log.WithError(err).Fatal("Failed to seed database")
		}
		utils.Log.Info("Database seeded with test data")
	}

	monitoring.InitMetrics()

	r := routes.NewRouter(
		handlers.New(services.New(gdb)),
		cors.New(cors.Config{
			AllowOrigins:  cfg.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Content-Type"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}),
	)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if cfg.TLSEnabled() {
		server.TLSConfig = &tls.Config{
			MinVersion:       tls.VersionTLS12,
			CurvePreferences: []tls.CurveID{tls.CurveP521, tls.CurveP384, tls.CurveP256},
			CipherSuites: []uint16{
				tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
				tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
				tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
				tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
			},
		}

		utils.Log.WithFields(logrus.Fields{
			"port": cfg.Port,
			"cert": cfg.TLSCertFile,
		}).Info("Starting server with HTTPS")

		if err := server.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile); err != nil && err != http.ErrServerClosed {
			utils.Log.WithError(err).Fatal("Failed to start HTTPS server")
		}
		return
	}

	utils.Log.WithField("port", cfg.Port).Info("Starting server with HTTP")
	if cfg.UseHTTPS {
		utils.Log.Warn("USE_HTTPS is set but TLS_CERT_FILE or TLS_KEY_FILE is missing")
	}
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		utils.Log.WithError(err).Fatal("Failed to start server")
	}
}
