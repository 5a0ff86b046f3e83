package types

import "fmt"

// TaskID 教学任务编号，按展示顺序排列
type TaskID int

const (
	// TaskBasicMovement 向四个方向移动
	TaskBasicMovement TaskID = iota
	// TaskInteractIngroup 与内群组成员交谈
	TaskInteractIngroup
	// TaskFarmTile 用锄头翻地
	TaskFarmTile
	// TaskPlantCrop 种下作物
	TaskPlantCrop
	// TaskWaterCrop 浇水
	TaskWaterCrop
	// TaskHitTree 去森林砍树
	TaskHitTree
	// TaskMarketTrade 去市场买卖
	TaskMarketTrade
	// TaskPlayMinigame 去小游戏地图完成一局
	TaskPlayMinigame
	// TaskInteractOutgroup 与外群组成员交谈
	TaskInteractOutgroup
	// TaskSwitchToOutgroup 参观外群组农场并切换分组（可选分支）
	TaskSwitchToOutgroup
	// TaskConfirmEnd 终止阶段：等待玩家确认结束
	TaskConfirmEnd

	// TaskCount 任务总数
	TaskCount int = iota
)

// Valid 编号是否在任务表范围内
func (id TaskID) Valid() bool {
	return id >= 0 && int(id) < TaskCount
}

// String 返回任务的字符串表示
func (id TaskID) String() string {
	switch id {
	case TaskBasicMovement:
		return "BasicMovement"
	case TaskInteractIngroup:
		return "InteractIngroup"
	case TaskFarmTile:
		return "FarmTile"
	case TaskPlantCrop:
		return "PlantCrop"
	case TaskWaterCrop:
		return "WaterCrop"
	case TaskHitTree:
		return "HitTree"
	case TaskMarketTrade:
		return "MarketTrade"
	case TaskPlayMinigame:
		return "PlayMinigame"
	case TaskInteractOutgroup:
		return "InteractOutgroup"
	case TaskSwitchToOutgroup:
		return "SwitchToOutgroup"
	case TaskConfirmEnd:
		return "ConfirmEnd"
	default:
		return fmt.Sprintf("Task(%d)", int(id))
	}
}
