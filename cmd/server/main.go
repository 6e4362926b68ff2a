package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gridview/server/internal/app"
)

type configVar[T any] struct {
	envKey       string
	flagKey      string
	defaultValue T
}

var (
	port = configVar[int]{
		envKey:       "SERVER_PORT",
		flagKey:      "port",
		defaultValue: 80,
	}
	host = configVar[string]{
		envKey:       "SERVER_HOST",
		flagKey:      "host",
		defaultValue: "0.0.0.0",
	}
	logLevel = configVar[string]{
		envKey:       "SERVER_LOG_LEVEL",
		flagKey:      "log-level",
		defaultValue: "INFO",
	}
	gridCols = configVar[int]{
		envKey:       "SERVER_GRID_COLS",
		flagKey:      "grid-cols",
		defaultValue: 24,
	}
	gridRows = configVar[int]{
		envKey:       "SERVER_GRID_ROWS",
		flagKey:      "grid-rows",
		defaultValue: 24,
	}
	minCellSize = configVar[int]{
		envKey:       "SERVER_MIN_CELL_SIZE",
		flagKey:      "min-cell-size",
		defaultValue: 2,
	}
	maxCells = configVar[int]{
		envKey:       "SERVER_MAX_CELLS",
		flagKey:      "max-cells",
		defaultValue: 16,
	}
	maxPlayers = configVar[int]{
		envKey:       "SERVER_MAX_PLAYERS",
		flagKey:      "max-players",
		defaultValue: 6,
	}
	redisPort = configVar[int]{
		envKey:       "REDIS_PORT",
		flagKey:      "redis-port",
		defaultValue: 6379,
	}
	redisHost = configVar[string]{
		envKey:       "REDIS_HOST",
		flagKey:      "redis-host",
		defaultValue: "localhost",
	}
	redisPassword = configVar[string]{
		envKey:       "REDIS_PASSWORD",
		flagKey:      "redis-password",
		defaultValue: "",
	}
)

func loadAppConfig() *app.AppConfig {
	pflag.Int(port.flagKey, port.defaultValue, "Server port")
	pflag.String(host.flagKey, host.defaultValue, "Server host")
	pflag.String(logLevel.flagKey, logLevel.defaultValue, "Logging level")
	pflag.Int(gridCols.flagKey, gridCols.defaultValue, "Number of grid columns")
	pflag.Int(gridRows.flagKey, gridRows.defaultValue, "Number of grid rows")
	pflag.Int(minCellSize.flagKey, minCellSize.defaultValue, "Minimum cell size in grid units")
	pflag.Int(maxCells.flagKey, maxCells.defaultValue, "Maximum number of cells in the grid")
	pflag.Int(maxPlayers.flagKey, maxPlayers.defaultValue, "Maximum number of simultaneously active players")
	pflag.Int(redisPort.flagKey, redisPort.defaultValue, "Redis port")
	pflag.String(redisHost.flagKey, redisHost.defaultValue, "Redis host")
	pflag.String(redisPassword.flagKey, redisPassword.defaultValue, "Redis password")
	pflag.Parse()

	viper.BindPFlags(pflag.CommandLine)

	viper.BindEnv(port.flagKey, port.envKey)
	viper.BindEnv(host.flagKey, host.envKey)
	viper.BindEnv(logLevel.flagKey, logLevel.envKey)
	viper.BindEnv(gridCols.flagKey, gridCols.envKey)
	viper.BindEnv(gridRows.flagKey, gridRows.envKey)
	viper.BindEnv(minCellSize.flagKey, minCellSize.envKey)
	viper.BindEnv(maxCells.flagKey, maxCells.envKey)
	viper.BindEnv(maxPlayers.flagKey, maxPlayers.envKey)
	viper.BindEnv(redisPort.flagKey, redisPort.envKey)
	viper.BindEnv(redisHost.flagKey, redisHost.envKey)
	viper.BindEnv(redisPassword.flagKey, redisPassword.envKey)

	viper.SetDefault(port.flagKey, port.defaultValue)
	viper.SetDefault(host.flagKey, host.defaultValue)
	viper.SetDefault(logLevel.flagKey, logLevel.defaultValue)
	viper.SetDefault(gridCols.flagKey, gridCols.defaultValue)
	viper.SetDefault(gridRows.flagKey, gridRows.defaultValue)
	viper.SetDefault(minCellSize.flagKey, minCellSize.defaultValue)
	viper.SetDefault(maxCells.flagKey, maxCells.defaultValue)
	viper.SetDefault(maxPlayers.flagKey, maxPlayers.defaultValue)
	viper.SetDefault(redisPort.flagKey, redisPort.defaultValue)
	viper.SetDefault(redisHost.flagKey, redisHost.defaultValue)
	viper.SetDefault(redisPassword.flagKey, redisPassword.defaultValue)

	config := &app.AppConfig{
		Host:          viper.GetString(host.flagKey),
		Port:          viper.GetInt(port.flagKey),
		LogLevel:      viper.GetString(logLevel.flagKey),
		GridCols:      viper.GetInt(gridCols.flagKey),
		GridRows:      viper.GetInt(gridRows.flagKey),
		MinCellSize:   viper.GetInt(minCellSize.flagKey),
		MaxCells:      viper.GetInt(maxCells.flagKey),
		MaxPlayers:    viper.GetInt(maxPlayers.flagKey),
		RedisPort:     viper.GetInt(redisPort.flagKey),
		RedisHost:     viper.GetString(redisHost.flagKey),
		RedisPassword: viper.GetString(redisPassword.flagKey),
	}

	return config
}

func main() {
	ctx := context.Background()

	appConfig := loadAppConfig()

	jsonConfig, _ := json.MarshalIndent(appConfig, "", "  ")
	fmt.Printf("starting app with config: %s\n", jsonConfig)

	log.Fatal(app.Run(ctx, appConfig))
}
