package components

import "github.com/decker502/onboarding/pkg/types"

// PlayerComponent 玩家状态组件
// 由玩家/世界模拟写入，教学系统只读，Blocked 与 OutgroupMemberInteracted 除外
type PlayerComponent struct {
	// DirectionX, DirectionY 当前移动方向（-1/0/1，x 向右为正，y 向下为正）
	DirectionX float64
	DirectionY float64

	// IngroupMemberInteracted 是否与内群组成员交谈过
	IngroupMemberInteracted bool

	// OutgroupMemberInteracted 是否与外群组成员交谈过
	// 教学在进入可选分支时会清除该标记
	OutgroupMemberInteracted bool

	// BoughtSold 是否在市场完成过一次买卖
	BoughtSold bool

	// MinigameFinished 是否完成过一局小游戏
	MinigameFinished bool

	// StudyGroup 当前所属分组
	StudyGroup types.StudyGroup

	// InteractHeld 交互键当前是否按住
	InteractHeld bool

	// Blocked 为 true 时玩家输入被屏蔽
	Blocked bool
}
