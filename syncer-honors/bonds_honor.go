package main

import (
	"encoding/json"
)

const BONDS_HONORS_TABLE = "bonds_honors"

var (
	BONDS_HONORS_COLUMNS = []string{
		"server",
		"bonds_honor_id",
		"seq",
		"bonds_group_id",
		"game_character_unit_id1",
		"game_character_unit_id2",
		"honor_rarity",
		"name",
		"description",
		"levels",
	}
	BONDS_HONORS_CONFLICT_COLUMNS = []string{"server", "bonds_honor_id"}
)

// BondsHonor is one entry of bondsHonors.json. The two character unit ids
// are kept as an ordered pair exactly as the source publishes them.
type BondsHonor struct {
	Id                   *int64          `json:"id"`
	Seq                  *int64          `json:"seq"`
	BondsGroupId         *int64          `json:"bondsGroupId"`
	GameCharacterUnitId1 *int64          `json:"gameCharacterUnitId1"`
	GameCharacterUnitId2 *int64          `json:"gameCharacterUnitId2"`
	HonorRarity          *string         `json:"honorRarity"`
	Name                 *string         `json:"name"`
	Description          *string         `json:"description"`
	Levels               json.RawMessage `json:"levels"`
}

// Row returns the values in BONDS_HONORS_COLUMNS order.
func (bondsHonor *BondsHonor) Row(server string) []any {
	return []any{
		server,
		bondsHonor.Id,
		bondsHonor.Seq,
		bondsHonor.BondsGroupId,
		bondsHonor.GameCharacterUnitId1,
		bondsHonor.GameCharacterUnitId2,
		bondsHonor.HonorRarity,
		bondsHonor.Name,
		bondsHonor.Description,
		levelsJson(bondsHonor.Levels),
	}
}
