package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gridview/server/internal/controller"
	"github.com/gridview/server/internal/grid"
	multiviewRedis "github.com/gridview/server/internal/repository/multiview/redis"
	"github.com/gridview/server/internal/service/multiview"
	"github.com/gridview/server/pkg/ctxlogger"
	"github.com/gridview/server/pkg/redisclient"
	"github.com/gridview/server/pkg/ytoembed"
)

type AppConfig struct {
	Host          string `json:"host"`
	Port          int    `json:"port"`
	LogLevel      string `json:"log_level"`
	GridCols      int    `json:"grid_cols"`
	GridRows      int    `json:"grid_rows"`
	MinCellSize   int    `json:"min_cell_size"`
	MaxCells      int    `json:"max_cells"`
	MaxPlayers    int    `json:"max_players"`
	RedisPort     int    `json:"redis_port"`
	RedisHost     string `json:"redis_host"`
	RedisPassword string `json:"-"`
}

func (cfg *AppConfig) Validate() error {
	if cfg.GridCols < 1 || cfg.GridRows < 1 {
		return fmt.Errorf("grid dimensions must be greater than 0")
	}
	if cfg.MinCellSize < 1 {
		return fmt.Errorf("min cell size must be greater than 0")
	}
	if cfg.MinCellSize > cfg.GridCols || cfg.MinCellSize > cfg.GridRows {
		return fmt.Errorf("min cell size must fit the grid")
	}
	if cfg.MaxPlayers < 1 {
		return fmt.Errorf("max players must be greater than 0")
	}
	return nil
}

func Run(ctx context.Context, cfg *AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logLevel := slog.LevelInfo
	if err := logLevel.UnmarshalText([]byte(strings.ToUpper(cfg.LogLevel))); err != nil {
		log.Fatal(err)
	}

	h := ctxlogger.ContextHandler{
		Handler: slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}),
	}

	logger := slog.New(&h)

	rc, err := redisclient.NewRedisClient(&redisclient.Config{
		Port:     cfg.RedisPort,
		Host:     cfg.RedisHost,
		Password: cfg.RedisPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer rc.Close()

	stateRepo := multiviewRedis.NewRepo(rc, 24*14*time.Hour)
	metadataClient := ytoembed.New()
	multiviewService := multiview.NewService(stateRepo, metadataClient, &multiview.Config{
		Grid: grid.Config{
			Cols: cfg.GridCols,
			Rows: cfg.GridRows,
			MinW: cfg.MinCellSize,
			MinH: cfg.MinCellSize,
		},
		MaxCells:   cfg.MaxCells,
		MaxPlayers: cfg.MaxPlayers,
	}, logger)

	// restore the previous session if one was persisted
	loaded, err := multiviewService.Load(ctx)
	if err != nil {
		logger.WarnContext(ctx, "failed to load persisted state", "error", err)
	} else if loaded {
		logger.InfoContext(ctx, "persisted state restored")
	}

	controller := controller.NewController(multiviewService, logger)
	server := &http.Server{Addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port), Handler: controller.GetMux()}

	// graceful shutdown
	serverCtx, serverStopCtx := context.WithCancel(ctx)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		shutdownCtx, c := context.WithTimeout(serverCtx, 30*time.Second)
		defer c()

		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		// persist the session before going down
		if err := multiviewService.Save(shutdownCtx); err != nil {
			logger.WarnContext(shutdownCtx, "failed to save state on shutdown", "error", err)
		}

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Fatal(err)
		}
		serverStopCtx()
	}()

	slog.InfoContext(serverCtx, "starting server", "address", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	<-serverCtx.Done()

	return nil
}
