package main

const HONOR_GROUPS_TABLE = "honor_groups"

var (
	HONOR_GROUPS_COLUMNS = []string{
		"server",
		"group_id",
		"name",
		"honor_type",
		"background_asset_bundle_name",
	}
	HONOR_GROUPS_CONFLICT_COLUMNS = []string{"server", "group_id"}
)

// HonorGroup is one entry of honorGroups.json.
type HonorGroup struct {
	Id                        *int64  `json:"id"`
	Name                      *string `json:"name"`
	HonorType                 *string `json:"honorType"`
	BackgroundAssetbundleName *string `json:"backgroundAssetbundleName"`
}

// Row returns the values in HONOR_GROUPS_COLUMNS order.
func (honorGroup *HonorGroup) Row(server string) []any {
	return []any{
		server,
		honorGroup.Id,
		honorGroup.Name,
		honorGroup.HonorType,
		honorGroup.BackgroundAssetbundleName,
	}
}
