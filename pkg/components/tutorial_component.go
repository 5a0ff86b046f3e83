package components

import "github.com/decker502/onboarding/pkg/types"

// TaskStatus 单个教学任务的状态
type TaskStatus int

const (
	// TaskPending 尚未轮到
	TaskPending TaskStatus = iota
	// TaskActive 当前正在展示/等待完成
	TaskActive
	// TaskAchieved 已完成，不会再回到其他状态
	TaskAchieved
	// TaskSkipped 被分支跳过（playable_outgroup 关闭时的任务 9）
	TaskSkipped
)

// Done 任务是否已结束（完成或跳过）
func (s TaskStatus) Done() bool {
	return s == TaskAchieved || s == TaskSkipped
}

// String 返回 TaskStatus 的字符串表示
func (s TaskStatus) String() string {
	switch s {
	case TaskPending:
		return "Pending"
	case TaskActive:
		return "Active"
	case TaskAchieved:
		return "Achieved"
	case TaskSkipped:
		return "Skipped"
	default:
		return "Unknown"
	}
}

// 移动方向槽位（MovementAxis 的下标）
const (
	AxisWest = iota
	AxisEast
	AxisNorth
	AxisSouth

	AxisCount
)

// TutorialComponent 教学进度组件
// 存储新手教学的运行时状态，由 TutorialSystem 独占读写
type TutorialComponent struct {
	// Statuses 每个任务的状态，下标为 types.TaskID
	// 一旦变为 TaskAchieved/TaskSkipped 就不再改变
	Statuses [types.TaskCount]TaskStatus

	// CurrentTaskIndex 当前屏幕上应显示其对话的任务
	CurrentTaskIndex types.TaskID

	// MovementAxis 自任务 0 开始后玩家是否向 西/东/北/南 移动过
	// 非零即表示移动过，任务 0 完成前不会被清零
	MovementAxis [AxisCount]float64

	// StageReached 已结束的任务数量（完成 + 跳过）
	StageReached int

	// IsActive 教学是否激活
	// false 表示教学已完成，或存档显示已完成过教学
	IsActive bool

	// Completed 终止任务已完成且完成标记已写入存档
	Completed bool
}
