package systems

import (
	"log"
	"slices"

	"github.com/decker502/onboarding/pkg/components"
	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/ecs"
	"github.com/decker502/onboarding/pkg/types"
)

// ProgressSaver 存档接口，由 game.SaveManager 实现
type ProgressSaver interface {
	// IsTutorialCompleted 存档是否已记录教学完成
	IsTutorialCompleted() bool
	// MarkTutorialCompleted 写入教学完成标记
	MarkTutorialCompleted() error
}

// Hint 不属于任务序列的辅助提示对话
type Hint int

const (
	// HintHat 提示从内群组成员处领取帽子
	HintHat Hint = iota
	// HintNecklace 提示从内群组成员处领取项链
	HintNecklace
)

// transitionPolicy 任务完成后的转场方式
type transitionPolicy int

const (
	// policyCatchUp 任务 0-2：未完成时若显示的对话落后/错位则重新显示本任务的对话
	policyCatchUp transitionPolicy = iota
	// policyMoveForward 任务 3-7：一次性世界事件，直接前进到下一任务
	policyMoveForward
	// policyOutgroupBranch 任务 8：根据 playable_outgroup 进入任务 9 或直接进入终止阶段
	policyOutgroupBranch
	// policyShowEnd 任务 9：显示结束对话并进入终止阶段
	policyShowEnd
	// policyFinish 任务 10：解除输入屏蔽、清空对话、写入存档
	policyFinish
)

// tickContext 单帧判定所需的外部信号
type tickContext struct {
	player     *components.PlayerComponent
	level      *components.LevelComponent
	gamePaused bool
}

// taskDescriptor 任务表中的一项
type taskDescriptor struct {
	id       types.TaskID
	entryKey string
	policy   transitionPolicy
	// completed 任务自身的完成条件；"对话框已显示完毕"由 Update 统一判定
	completed func(ctx *tickContext) bool
}

// TutorialSystem 新手教学进度系统
//
// 每帧只判定当前激活的任务（编号最小的未结束任务），
// 条件满足时标记完成并切换对话，保证对话与任务进度同步。
type TutorialSystem struct {
	entityManager *ecs.EntityManager
	dialogue      DialogueController
	saver         ProgressSaver
	roundConfig   config.RoundConfig

	tutorialEntity ecs.EntityID
	playerEntity   ecs.EntityID
	levelEntity    ecs.EntityID

	// 对话框位置
	dialogueX, dialogueY float64

	tasks [types.TaskCount]taskDescriptor
}

// NewTutorialSystem 创建教学系统实例
// 参数：
//   - em: EntityManager 实例
//   - dialogue: 对话子系统
//   - saver: 存档，可为 nil（不持久化）
//   - roundConfig: 回合配置，可为 nil（按 playable_outgroup=false 处理）
//   - playerEntity: 挂有 PlayerComponent 的实体
//   - levelEntity: 挂有 LevelComponent 的实体
//
// 存档显示已完成过教学时，系统创建后即处于未激活状态。
func NewTutorialSystem(
	em *ecs.EntityManager,
	dialogue DialogueController,
	saver ProgressSaver,
	roundConfig config.RoundConfig,
	playerEntity, levelEntity ecs.EntityID,
) *TutorialSystem {
	active := saver == nil || !saver.IsTutorialCompleted()

	tutorialEntity := em.CreateEntity()
	ecs.AddComponent(em, tutorialEntity, &components.TutorialComponent{
		CurrentTaskIndex: types.TaskBasicMovement,
		IsActive:         active,
		Completed:        !active,
	})

	x, y := config.DialoguePosition()
	s := &TutorialSystem{
		entityManager:  em,
		dialogue:       dialogue,
		saver:          saver,
		roundConfig:    roundConfig,
		tutorialEntity: tutorialEntity,
		playerEntity:   playerEntity,
		levelEntity:    levelEntity,
		dialogueX:      x,
		dialogueY:      y,
		tasks:          newTaskTable(),
	}

	if active {
		log.Printf("[TutorialSystem] Initialized with %d tasks (playable outgroup: %v)", types.TaskCount, roundConfig.PlayableOutgroup())
	} else {
		log.Printf("[TutorialSystem] Tutorial already completed, staying inactive")
	}
	return s
}

// newTaskTable 构建固定的任务表，下标即 TaskID
func newTaskTable() [types.TaskCount]taskDescriptor {
	task := func(id types.TaskID, policy transitionPolicy, completed func(ctx *tickContext) bool) taskDescriptor {
		return taskDescriptor{id: id, entryKey: config.TaskEntryKeys[id], policy: policy, completed: completed}
	}

	return [types.TaskCount]taskDescriptor{
		// 任务 0 的条件读取 TutorialComponent.MovementAxis，在 Update 中单独处理
		task(types.TaskBasicMovement, policyCatchUp, nil),
		task(types.TaskInteractIngroup, policyCatchUp, func(ctx *tickContext) bool {
			return ctx.player.IngroupMemberInteracted
		}),
		task(types.TaskFarmTile, policyCatchUp, func(ctx *tickContext) bool {
			return ctx.level.TileFarmed
		}),
		task(types.TaskPlantCrop, policyMoveForward, func(ctx *tickContext) bool {
			return slices.Contains(ctx.level.CropPlanted, true)
		}),
		task(types.TaskWaterCrop, policyMoveForward, func(ctx *tickContext) bool {
			return ctx.level.CropWatered
		}),
		task(types.TaskHitTree, policyMoveForward, func(ctx *tickContext) bool {
			return ctx.level.HitTree
		}),
		task(types.TaskMarketTrade, policyMoveForward, func(ctx *tickContext) bool {
			return ctx.player.BoughtSold && !ctx.gamePaused
		}),
		task(types.TaskPlayMinigame, policyMoveForward, func(ctx *tickContext) bool {
			return ctx.player.MinigameFinished
		}),
		task(types.TaskInteractOutgroup, policyOutgroupBranch, func(ctx *tickContext) bool {
			return ctx.player.OutgroupMemberInteracted
		}),
		task(types.TaskSwitchToOutgroup, policyShowEnd, func(ctx *tickContext) bool {
			return ctx.player.StudyGroup == types.StudyGroupOutgroup
		}),
		task(types.TaskConfirmEnd, policyFinish, func(ctx *tickContext) bool {
			return ctx.player.InteractHeld
		}),
	}
}

// Start 教学开始时调用：尚无任务完成时显示任务 0 的对话
// 一旦有任务完成，再次调用不产生任何效果
func (s *TutorialSystem) Start() {
	tutorial, ok := s.tutorial()
	if !ok || !tutorial.IsActive || tutorial.StageReached > 0 {
		return
	}

	tutorial.Statuses[types.TaskBasicMovement] = components.TaskActive
	s.advanceToTask(tutorial, types.TaskBasicMovement)
	log.Printf("[TutorialSystem] Tutorial started")
}

// Update 每帧调用一次
// 参数：
//   - gamePaused: 游戏是否处于暂停（菜单/商店界面打开）
//
// 只判定编号最小的未结束任务，因此每帧最多触发一次转场。
func (s *TutorialSystem) Update(gamePaused bool) {
	tutorial, ok := s.tutorial()
	if !ok || !tutorial.IsActive || tutorial.Statuses[types.TaskBasicMovement] == components.TaskPending {
		return
	}

	player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerEntity)
	if !ok {
		return
	}
	level, ok := ecs.GetComponent[*components.LevelComponent](s.entityManager, s.levelEntity)
	if !ok {
		return
	}
	ctx := &tickContext{player: player, level: level, gamePaused: gamePaused}

	for i := range s.tasks {
		task := &s.tasks[i]
		if tutorial.Statuses[task.id].Done() {
			continue
		}
		tutorial.Statuses[task.id] = components.TaskActive

		if s.checkTask(tutorial, task, ctx) {
			s.completeTask(tutorial, task, ctx)
		} else if task.policy == policyCatchUp && tutorial.CurrentTaskIndex != task.id {
			// 显示的对话与激活任务错位，重新显示本任务的对话
			log.Printf("[TutorialSystem] Displayed task %d drifted from active task %d, catching up", tutorial.CurrentTaskIndex, task.id)
			s.advanceToTask(tutorial, task.id)
		}
		return
	}
}

// checkTask 判定任务是否完成（所有任务都要求当前对话框已显示完毕）
func (s *TutorialSystem) checkTask(tutorial *components.TutorialComponent, task *taskDescriptor, ctx *tickContext) bool {
	if task.id == types.TaskBasicMovement {
		s.recordMovement(tutorial, ctx.player)
		return s.dialogue.CurrentEntryFinishedAdvancing() && movedInAllDirections(tutorial)
	}
	return s.dialogue.CurrentEntryFinishedAdvancing() && task.completed(ctx)
}

// recordMovement 记录玩家移动过的方向（非零后保持）
func (s *TutorialSystem) recordMovement(tutorial *components.TutorialComponent, player *components.PlayerComponent) {
	switch {
	case player.DirectionX < 0:
		tutorial.MovementAxis[components.AxisWest] = player.DirectionX
	case player.DirectionX > 0:
		tutorial.MovementAxis[components.AxisEast] = player.DirectionX
	}
	switch {
	case player.DirectionY < 0:
		tutorial.MovementAxis[components.AxisNorth] = player.DirectionY
	case player.DirectionY > 0:
		tutorial.MovementAxis[components.AxisSouth] = player.DirectionY
	}
}

func movedInAllDirections(tutorial *components.TutorialComponent) bool {
	return !slices.Contains(tutorial.MovementAxis[:], 0)
}

// completeTask 标记任务完成并按任务的转场方式切换
func (s *TutorialSystem) completeTask(tutorial *components.TutorialComponent, task *taskDescriptor, ctx *tickContext) {
	s.markDone(tutorial, task.id, components.TaskAchieved)
	log.Printf("[TutorialSystem] Task %d (%s) achieved", task.id, task.entryKey)

	switch task.policy {
	case policyCatchUp, policyMoveForward:
		next := task.id + 1
		if tutorial.CurrentTaskIndex < next {
			s.advanceToTask(tutorial, next)
		}

	case policyOutgroupBranch:
		if s.roundConfig.PlayableOutgroup() {
			s.advanceToTask(tutorial, types.TaskSwitchToOutgroup)
			ctx.player.OutgroupMemberInteracted = false
			return
		}
		s.markDone(tutorial, types.TaskSwitchToOutgroup, components.TaskSkipped)
		s.enterTerminalStage(tutorial, ctx.player)

	case policyShowEnd:
		s.enterTerminalStage(tutorial, ctx.player)

	case policyFinish:
		s.finish(tutorial, ctx.player)
	}
}

// enterTerminalStage 显示结束对话并屏蔽玩家输入，等待确认
func (s *TutorialSystem) enterTerminalStage(tutorial *components.TutorialComponent, player *components.PlayerComponent) {
	s.advanceToTask(tutorial, types.TaskConfirmEnd)
	player.Blocked = true
	log.Printf("[TutorialSystem] Entered terminal stage, player input blocked")
}

// finish 结束教学并写入存档（只会执行一次）
func (s *TutorialSystem) finish(tutorial *components.TutorialComponent, player *components.PlayerComponent) {
	player.Blocked = false
	s.dialogue.PurgeQueue()
	tutorial.IsActive = false
	tutorial.Completed = true

	if s.saver != nil {
		if err := s.saver.MarkTutorialCompleted(); err != nil {
			log.Printf("[TutorialSystem] Warning: Failed to persist tutorial completion: %v", err)
		}
	}
	log.Printf("[TutorialSystem] Tutorial completed")
}

// advanceToTask 显示任务 index 的对话
// 有对话框在显示时先关闭它；队列里还有其他对话框时全部清空，
// 保证新打开的任务对话位于队首且是唯一的对话框
func (s *TutorialSystem) advanceToTask(tutorial *components.TutorialComponent, index types.TaskID) {
	tutorial.CurrentTaskIndex = index
	if s.dialogue.State() == DialogueDisplaying {
		s.dialogue.Advance()
	}
	if s.dialogue.State() == DialogueDisplaying {
		s.dialogue.PurgeQueue()
	}
	s.dialogue.OpenDialogue(s.tasks[index].entryKey, s.dialogueX, s.dialogueY)
}

// markDone 把任务标记为完成/跳过（只在未结束时生效）
func (s *TutorialSystem) markDone(tutorial *components.TutorialComponent, id types.TaskID, status components.TaskStatus) {
	if tutorial.Statuses[id].Done() {
		return
	}
	tutorial.Statuses[id] = status
	tutorial.StageReached++
}

// ShowHint 显示辅助提示对话，不影响任务进度
// 教学进行中对话框属于当前任务，提示被忽略并返回 false
func (s *TutorialSystem) ShowHint(hint Hint) bool {
	if tutorial, ok := s.tutorial(); ok && tutorial.IsActive {
		log.Printf("[TutorialSystem] Hint %d ignored while the tutorial is running", hint)
		return false
	}

	key := config.EntryHatFromIngroup
	if hint == HintNecklace {
		key = config.EntryNecklaceFromIngroup
	}
	s.dialogue.OpenDialogue(key, s.dialogueX, s.dialogueY)
	return true
}

func (s *TutorialSystem) tutorial() (*components.TutorialComponent, bool) {
	return ecs.GetComponent[*components.TutorialComponent](s.entityManager, s.tutorialEntity)
}

// CurrentTask 当前显示对话的任务
func (s *TutorialSystem) CurrentTask() types.TaskID {
	tutorial, ok := s.tutorial()
	if !ok {
		return types.TaskBasicMovement
	}
	return tutorial.CurrentTaskIndex
}

// Status 返回任务状态，非法编号返回 TaskPending
func (s *TutorialSystem) Status(id types.TaskID) components.TaskStatus {
	tutorial, ok := s.tutorial()
	if !ok || !id.Valid() {
		return components.TaskPending
	}
	return tutorial.Statuses[id]
}

// StageReached 已结束（完成或跳过）的任务数量
func (s *TutorialSystem) StageReached() int {
	tutorial, ok := s.tutorial()
	if !ok {
		return 0
	}
	return tutorial.StageReached
}

// IsActive 教学是否仍在进行
func (s *TutorialSystem) IsActive() bool {
	tutorial, ok := s.tutorial()
	return ok && tutorial.IsActive
}

// IsCompleted 教学是否已完成（本次完成或存档记录已完成）
func (s *TutorialSystem) IsCompleted() bool {
	tutorial, ok := s.tutorial()
	return ok && tutorial.Completed
}

// MovementAxis 返回移动方向记录（西/东/北/南）
func (s *TutorialSystem) MovementAxis() [components.AxisCount]float64 {
	tutorial, ok := s.tutorial()
	if !ok {
		return [components.AxisCount]float64{}
	}
	return tutorial.MovementAxis
}
