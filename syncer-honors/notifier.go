package main

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/Team-Haruki/sekai-honors-syncer/common"
)

type Notifier struct {
	Config *Config
}

func NewNotifier(config *Config) *Notifier {
	return &Notifier{
		Config: config,
	}
}

// Publish sends the committed run summary to the configured NATS subject.
// The transaction is already committed by the time this runs, so a publish
// failure only logs a warning and never fails the run.
func (notifier *Notifier) Publish(result *Result) {
	if notifier.Config.NatsUrl == "" {
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		common.LogWarn(notifier.Config.CommonConfig, "Failed to encode run summary:", err)
		return
	}

	nc, err := nats.Connect(notifier.Config.NatsUrl)
	if err != nil {
		common.LogWarn(notifier.Config.CommonConfig, "Failed to connect to NATS:", err)
		return
	}
	defer nc.Close()

	if err := nc.Publish(notifier.Config.NatsSubject, payload); err != nil {
		common.LogWarn(notifier.Config.CommonConfig, "Failed to publish run summary:", err)
		return
	}
	if err := nc.Flush(); err != nil {
		common.LogWarn(notifier.Config.CommonConfig, "Failed to flush run summary:", err)
		return
	}

	common.LogInfo(notifier.Config.CommonConfig, "Published run summary to", notifier.Config.NatsSubject)
}
