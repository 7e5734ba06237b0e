package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Team-Haruki/sekai-honors-syncer/common"
)

const (
	RAW_URL_TEMPLATE = "https://raw.githubusercontent.com/Team-Haruki/{repo}/main/master/{file}"
	CDN_URL_TEMPLATE = "https://cdn.jsdelivr.net/gh/Team-Haruki/{repo}@main/master/{file}"

	HONORS_FILE       = "honors.json"
	BONDS_HONORS_FILE = "bondsHonors.json"
	HONOR_GROUPS_FILE = "honorGroups.json"

	MAX_ERROR_BODY_BYTES = 1024 // CDN error pages can be large
)

type MasterData struct {
	Config         *Config
	Server         Server
	HttpClient     *http.Client
	RawUrlTemplate string
	CdnUrlTemplate string
}

func NewMasterData(config *Config, server Server) *MasterData {
	return &MasterData{
		Config:         config,
		Server:         server,
		HttpClient:     &http.Client{Timeout: time.Duration(config.FetchTimeoutSeconds) * time.Second},
		RawUrlTemplate: RAW_URL_TEMPLATE,
		CdnUrlTemplate: CDN_URL_TEMPLATE,
	}
}

// Fetch returns the decoded JSON array for filename, trying the GitHub raw
// URL first and the jsDelivr mirror second. Each source gets exactly one
// attempt. A nil result means every source failed and the file contributes
// zero records to this run.
func (masterData *MasterData) Fetch(filename string) []json.RawMessage {
	urls := []string{
		masterData.url(masterData.RawUrlTemplate, filename),
		masterData.url(masterData.CdnUrlTemplate, filename),
	}

	for _, url := range urls {
		common.LogInfo(masterData.Config.CommonConfig, "Fetching", filename, "from", url)
		records, err := masterData.fetchUrl(url)
		if err != nil {
			common.LogWarn(masterData.Config.CommonConfig, "Failed to fetch from "+url+":", err)
			continue
		}

		common.LogInfo(masterData.Config.CommonConfig, "Fetched", len(records), "record(s) from", filename)
		return records
	}

	common.LogError(masterData.Config.CommonConfig, "All sources failed for", filename)
	return nil
}

func (masterData *MasterData) fetchUrl(url string) ([]json.RawMessage, error) {
	resp, err := masterData.HttpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, MAX_ERROR_BODY_BYTES))
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	var records []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, err
	}

	return records, nil
}

func (masterData *MasterData) url(template string, filename string) string {
	url := strings.ReplaceAll(template, "{repo}", masterData.Server.Repo)
	return strings.ReplaceAll(url, "{file}", filename)
}
