package main

import (
	"log"
	"os"
	"strings"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rienbien8/pos-frontend/internal/config"
	apphttp "github.com/rienbien8/pos-frontend/internal/http"
	"github.com/rienbien8/pos-frontend/internal/http/handlers"
	"github.com/rienbien8/pos-frontend/internal/modules/catalog"
	"github.com/rienbien8/pos-frontend/internal/modules/checkout"
	"github.com/rienbien8/pos-frontend/internal/modules/journal"
	"github.com/rienbien8/pos-frontend/internal/session"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	// Local sales journal (optional)
	var repo *journal.Repo
	if cfg.JournalDSN != "" {
		db, err := gorm.Open(sqlite.Open(cfg.JournalDSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open journal db: %v", err)
		}
		if err := journal.Migrate(db); err != nil {
			log.Fatalf("failed to migrate journal db: %v", err)
		}
		repo = journal.NewRepo(db)
	}

	sess := session.New()
	cat := catalog.NewClient(cfg.APIBase, cfg.UpstreamTimeout)
	orch := checkout.NewOrchestrator(
		checkout.NewClient(cfg.APIBase, cfg.UpstreamTimeout),
		checkout.RegisterIdentity{
			StoreCode:   cfg.StoreCode,
			POSID:       cfg.POSID,
			CashierCode: cfg.CashierCode,
		},
		repo, logger,
	)

	pos := handlers.NewPOSHandler(sess, cat, orch, repo, logger)

	logger.Info("pos terminal starting",
		"addr", cfg.Addr,
		"api_base", cfg.APIBase,
		"store_code", cfg.StoreCode,
		"pos_id", cfg.POSID,
	)

	r := apphttp.NewRouter(logger, pos)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
