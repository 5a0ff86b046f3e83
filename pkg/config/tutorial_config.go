package config

import "github.com/decker502/onboarding/pkg/types"

// 教学对话条目键
// 这些键是本地化文本资源的查找键，必须逐字保留
const (
	EntryBasicMovement       = "Basic_movement"
	EntryFarmTile            = "Farm_tile"
	EntryPlantCrop           = "Plant_crop"
	EntryWaterCrop           = "Water_crop"
	EntryHitTree             = "Go_to_forest_and_hit_tree"
	EntryMarketTrade         = "Go_to_market_and_buy/sell_something"
	EntryPlayMinigame        = "Go_to_minigame_map_and_play"
	EntryInteractIngroup     = "Interact_with_ingroup_member"
	EntryInteractOutgroup    = "Interact_with_outgroup_member"
	EntryHatFromIngroup      = "Get_hat_from_ingroup"
	EntryNecklaceFromIngroup = "Get_necklace_from_ingroup"
	EntrySwitchToOutgroup    = "Walk_around_outgroup_farm_and_switch_to_outgroup"
	EntryTutorialEnd         = "Tutorial_end"
)

// TaskEntryKeys 每个任务对应的对话条目
// 终止任务显示的是结束对话
var TaskEntryKeys = [types.TaskCount]string{
	types.TaskBasicMovement:    EntryBasicMovement,
	types.TaskInteractIngroup:  EntryInteractIngroup,
	types.TaskFarmTile:         EntryFarmTile,
	types.TaskPlantCrop:        EntryPlantCrop,
	types.TaskWaterCrop:        EntryWaterCrop,
	types.TaskHitTree:          EntryHitTree,
	types.TaskMarketTrade:      EntryMarketTrade,
	types.TaskPlayMinigame:     EntryPlayMinigame,
	types.TaskInteractOutgroup: EntryInteractOutgroup,
	types.TaskSwitchToOutgroup: EntrySwitchToOutgroup,
	types.TaskConfirmEnd:       EntryTutorialEnd,
}

// 屏幕与对话框尺寸
const (
	// ScreenWidth 逻辑屏幕宽度
	ScreenWidth = 1280
	// ScreenHeight 逻辑屏幕高度
	ScreenHeight = 720

	// TextboxWidth 教学对话框宽度
	TextboxWidth = 540
	// TextboxHeight 教学对话框高度
	TextboxHeight = 200

	// TextboxCharsPerSecond 打字机效果的显示速度
	TextboxCharsPerSecond = 45.0
)

// DialoguePosition 教学对话框左上角位置：贴右边缘，位于屏幕 2/3 高度之上
func DialoguePosition() (x, y float64) {
	x = float64(ScreenWidth - TextboxWidth)
	y = float64(ScreenHeight)/1.5 - float64(TextboxHeight)
	return x, y
}
