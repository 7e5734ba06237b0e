package main

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Team-Haruki/sekai-honors-syncer/common"
)

type Syncer struct {
	Config     *Config
	Server     Server
	MasterData *MasterData
}

// Result is the structured summary of one run. A run is either wholly
// committed (Success) or wholly rolled back.
type Result struct {
	RunId       string `json:"runId"`
	Server      string `json:"server"`
	ServerName  string `json:"serverName"`
	Honors      int    `json:"honors"`
	BondsHonors int    `json:"bondsHonors"`
	HonorGroups int    `json:"honorGroups"`
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
}

func NewSyncer(config *Config) *Syncer {
	server, err := ResolveServer(config.Server)
	common.PanicIfError(config.CommonConfig, err)

	return &Syncer{
		Config:     config,
		Server:     server,
		MasterData: NewMasterData(config, server),
	}
}

// Run syncs all three master data files inside one transaction. Any failure
// rolls back every entity kind of this run, including ones already upserted.
func (syncer *Syncer) Run(postgres *Postgres) *Result {
	result := &Result{
		RunId:      uuid.NewString(),
		Server:     syncer.Server.Code,
		ServerName: syncer.Server.DisplayName,
	}

	ctx := context.Background()
	tx, err := postgres.Begin(ctx)
	if err != nil {
		return syncer.fail(result, err)
	}

	return syncer.finish(ctx, tx, result, syncer.sync(ctx, postgres, tx, result))
}

// finish commits only if every stage succeeded; any error rolls back all
// entity kinds written in this run, including ones already upserted.
func (syncer *Syncer) finish(ctx context.Context, tx pgx.Tx, result *Result, err error) *Result {
	if err != nil {
		_ = tx.Rollback(ctx)
		return syncer.fail(result, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return syncer.fail(result, err)
	}

	result.Success = true
	common.LogInfo(syncer.Config.CommonConfig, "Sync completed for "+result.Server+":",
		result.Honors, "honors,", result.BondsHonors, "bonds honors,", result.HonorGroups, "honor groups")
	return result
}

func (syncer *Syncer) fail(result *Result, err error) *Result {
	result.Error = err.Error()
	common.LogError(syncer.Config.CommonConfig, "Sync failed for "+result.Server+":", err)
	return result
}

func (syncer *Syncer) sync(ctx context.Context, postgres *Postgres, tx pgx.Tx, result *Result) error {
	var err error

	result.Honors, err = syncer.syncHonors(ctx, postgres, tx)
	if err != nil {
		return err
	}

	result.BondsHonors, err = syncer.syncBondsHonors(ctx, postgres, tx)
	if err != nil {
		return err
	}

	result.HonorGroups, err = syncer.syncHonorGroups(ctx, postgres, tx)
	return err
}

func (syncer *Syncer) syncHonors(ctx context.Context, postgres *Postgres, tx pgx.Tx) (int, error) {
	data := syncer.MasterData.Fetch(HONORS_FILE)
	if len(data) == 0 {
		return 0, nil
	}

	rows := make([][]any, 0, len(data))
	for _, rawHonor := range data {
		var honor Honor
		if err := json.Unmarshal(rawHonor, &honor); err != nil {
			return 0, err
		}
		rows = append(rows, honor.Row(syncer.Server.Code))
	}

	count, err := postgres.Upsert(ctx, tx, HONORS_TABLE, HONORS_COLUMNS, HONORS_CONFLICT_COLUMNS, rows)
	if err != nil {
		return 0, err
	}

	common.LogInfo(syncer.Config.CommonConfig, "Synced", count, "honor(s) for", syncer.Server.Code)
	return count, nil
}

func (syncer *Syncer) syncBondsHonors(ctx context.Context, postgres *Postgres, tx pgx.Tx) (int, error) {
	data := syncer.MasterData.Fetch(BONDS_HONORS_FILE)
	if len(data) == 0 {
		return 0, nil
	}

	rows := make([][]any, 0, len(data))
	for _, rawBondsHonor := range data {
		var bondsHonor BondsHonor
		if err := json.Unmarshal(rawBondsHonor, &bondsHonor); err != nil {
			return 0, err
		}
		rows = append(rows, bondsHonor.Row(syncer.Server.Code))
	}

	count, err := postgres.Upsert(ctx, tx, BONDS_HONORS_TABLE, BONDS_HONORS_COLUMNS, BONDS_HONORS_CONFLICT_COLUMNS, rows)
	if err != nil {
		return 0, err
	}

	common.LogInfo(syncer.Config.CommonConfig, "Synced", count, "bonds honor(s) for", syncer.Server.Code)
	return count, nil
}

func (syncer *Syncer) syncHonorGroups(ctx context.Context, postgres *Postgres, tx pgx.Tx) (int, error) {
	data := syncer.MasterData.Fetch(HONOR_GROUPS_FILE)
	if len(data) == 0 {
		return 0, nil
	}

	rows := make([][]any, 0, len(data))
	for _, rawHonorGroup := range data {
		var honorGroup HonorGroup
		if err := json.Unmarshal(rawHonorGroup, &honorGroup); err != nil {
			return 0, err
		}
		rows = append(rows, honorGroup.Row(syncer.Server.Code))
	}

	count, err := postgres.Upsert(ctx, tx, HONOR_GROUPS_TABLE, HONOR_GROUPS_COLUMNS, HONOR_GROUPS_CONFLICT_COLUMNS, rows)
	if err != nil {
		return 0, err
	}

	common.LogInfo(syncer.Config.CommonConfig, "Synced", count, "honor group(s) for", syncer.Server.Code)
	return count, nil
}
