package main

import (
	"github.com/Team-Haruki/sekai-honors-syncer/common"
)

func initTestConfig() *Config {
	return &Config{
		CommonConfig: &common.CommonConfig{
			LogLevel: common.LOG_LEVEL_ERROR, // Use ERROR to avoid excessive logging during tests
		},
		Server:              "jp",
		FetchTimeoutSeconds: 5,
	}
}

func initTestServer() Server {
	return Server{
		Code:        "jp",
		Repo:        "haruki-sekai-master",
		DisplayName: "日本語",
	}
}
