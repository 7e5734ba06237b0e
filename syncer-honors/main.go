package main

import (
	"os"
	"strings"

	"github.com/Team-Haruki/sekai-honors-syncer/common"
)

func main() {
	config := LoadConfig()
	defer common.HandleUnexpectedPanic(config.CommonConfig)

	common.LogInfo(config.CommonConfig, "sekai-honors-syncer", common.VERSION)
	common.LogInfo(config.CommonConfig, "Starting honors sync for server:", config.Server)

	result := run(config)
	if !result.Success {
		os.Exit(1)
	}
}

func run(config *Config) *Result {
	syncer := NewSyncer(config)

	postgres := NewPostgres(config)
	defer postgres.Close()
	common.LogInfo(config.CommonConfig, "Connected to database for server:", config.Server, "("+syncer.Server.DisplayName+")")

	result := syncer.Run(postgres)
	logSummary(config, result)

	if result.Success {
		NewNotifier(config).Publish(result)
	}
	return result
}

func logSummary(config *Config, result *Result) {
	if !result.Success {
		common.LogError(config.CommonConfig, "Sync failed:", result.Error)
		return
	}

	common.LogInfo(config.CommonConfig, strings.Repeat("=", 50))
	common.LogInfo(config.CommonConfig, "SYNC SUCCESSFUL")
	common.LogInfo(config.CommonConfig, "Run ID:", result.RunId)
	common.LogInfo(config.CommonConfig, "Server:", result.Server, "("+result.ServerName+")")
	common.LogInfo(config.CommonConfig, "Honors:", result.Honors)
	common.LogInfo(config.CommonConfig, "Bonds Honors:", result.BondsHonors)
	common.LogInfo(config.CommonConfig, "Honor Groups:", result.HonorGroups)
	common.LogInfo(config.CommonConfig, strings.Repeat("=", 50))
}
