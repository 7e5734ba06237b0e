package main

import (
	"encoding/json"
)

const HONORS_TABLE = "honors"

var (
	HONORS_COLUMNS = []string{
		"server",
		"honor_id",
		"seq",
		"group_id",
		"honor_rarity",
		"name",
		"asset_bundle_name",
		"levels",
	}
	HONORS_CONFLICT_COLUMNS = []string{"server", "honor_id"}
)

// Honor is one entry of honors.json. Optional fields are pointers so that
// keys missing from the source become SQL NULLs.
type Honor struct {
	Id              *int64          `json:"id"`
	Seq             *int64          `json:"seq"`
	GroupId         *int64          `json:"groupId"`
	HonorRarity     *string         `json:"honorRarity"`
	Name            *string         `json:"name"`
	AssetbundleName *string         `json:"assetbundleName"`
	Levels          json.RawMessage `json:"levels"`
}

// Row returns the values in HONORS_COLUMNS order.
func (honor *Honor) Row(server string) []any {
	return []any{
		server,
		honor.Id,
		honor.Seq,
		honor.GroupId,
		honor.HonorRarity,
		honor.Name,
		honor.AssetbundleName,
		levelsJson(honor.Levels),
	}
}

// The level-detail list is stored as an opaque JSONB value, defaulting to an
// empty array when the key is missing.
func levelsJson(levels json.RawMessage) json.RawMessage {
	if levels == nil {
		return json.RawMessage("[]")
	}
	return levels
}
