package scenes

import (
	"log"

	"github.com/decker502/onboarding/pkg/components"
	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/ecs"
	"github.com/decker502/onboarding/pkg/systems"
	"github.com/decker502/onboarding/pkg/types"
	"github.com/decker502/onboarding/pkg/utils"
)

// FarmPlots 农场地块数量
const FarmPlots = 9

// WorldEvent 世界模拟上报的一次性事件
type WorldEvent int

const (
	EventIngroupInteraction WorldEvent = iota
	EventTileFarmed
	EventCropPlanted
	EventCropWatered
	EventTreeHit
	EventTrade
	EventMinigameFinished
	EventOutgroupInteraction
	EventSwitchToOutgroup
)

// String 返回事件名
func (e WorldEvent) String() string {
	switch e {
	case EventIngroupInteraction:
		return "IngroupInteraction"
	case EventTileFarmed:
		return "TileFarmed"
	case EventCropPlanted:
		return "CropPlanted"
	case EventCropWatered:
		return "CropWatered"
	case EventTreeHit:
		return "TreeHit"
	case EventTrade:
		return "Trade"
	case EventMinigameFinished:
		return "MinigameFinished"
	case EventOutgroupInteraction:
		return "OutgroupInteraction"
	case EventSwitchToOutgroup:
		return "SwitchToOutgroup"
	default:
		return "Unknown"
	}
}

// FarmScene 农场场景：承载玩家、农场状态、对话与教学系统
//
// 每帧顺序：输入 → 对话动画 → 教学判定 → 清理实体
type FarmScene struct {
	entityManager *ecs.EntityManager
	dialogue      *systems.DialogueSystem
	tutorial      *systems.TutorialSystem

	playerEntity ecs.EntityID
	levelEntity  ecs.EntityID

	paused bool
	// interactLatched 交互键这次按下已用于跳过动画，松开前不再当作交互
	interactLatched bool

	// readControls 读取键盘输入，测试和无窗口运行时可替换
	readControls func() utils.Controls
}

// NewFarmScene 创建农场场景
//
// 参数：
//   - roundConfig: 回合配置
//   - texts: 对话文本
//   - saver: 存档，可为 nil
func NewFarmScene(roundConfig config.RoundConfig, texts config.DialogueTexts, saver systems.ProgressSaver) *FarmScene {
	em := ecs.NewEntityManager()

	playerEntity := em.CreateEntity()
	em.AddComponent(playerEntity, &components.PlayerComponent{StudyGroup: types.StudyGroupIngroup})

	levelEntity := em.CreateEntity()
	em.AddComponent(levelEntity, &components.LevelComponent{CropPlanted: make([]bool, FarmPlots)})

	dialogue := systems.NewDialogueSystem(em, texts)
	tutorial := systems.NewTutorialSystem(em, dialogue, saver, roundConfig, playerEntity, levelEntity)

	s := &FarmScene{
		entityManager: em,
		dialogue:      dialogue,
		tutorial:      tutorial,
		playerEntity:  playerEntity,
		levelEntity:   levelEntity,
		readControls:  utils.ReadControls,
	}
	tutorial.Start()
	return s
}

// SetControlsReader 替换输入来源
func (s *FarmScene) SetControlsReader(read func() utils.Controls) {
	s.readControls = read
}

// Update 实现 game.Scene：读取键盘并推进一帧
func (s *FarmScene) Update(deltaTime float64) {
	s.Step(deltaTime, s.readControls())
}

// Step 用给定输入推进一帧
func (s *FarmScene) Step(deltaTime float64, controls utils.Controls) {
	if controls.PauseJustPressed {
		s.paused = !s.paused
		log.Printf("[FarmScene] Paused: %v", s.paused)
	}

	player := s.Player()
	if s.paused {
		player.DirectionX, player.DirectionY = 0, 0
		player.InteractHeld = false
	} else {
		s.handleInteract(controls)
		utils.ApplyControls(player, controls)
		// 用于跳过动画的那次按键在松开前不算交互
		if s.interactLatched {
			player.InteractHeld = false
		}
	}

	s.dialogue.Update(deltaTime)
	s.tutorial.Update(s.paused)
	s.entityManager.RemoveMarkedEntities()
}

// handleInteract 交互键：文本未显示完时跳过打字机动画；
// 教学结束后关闭已显示完的提示对话框
func (s *FarmScene) handleInteract(controls utils.Controls) {
	if !controls.InteractHeld {
		s.interactLatched = false
	}
	if !controls.InteractJustPressed {
		return
	}

	if !s.dialogue.CurrentEntryFinishedAdvancing() {
		s.dialogue.SkipAnimation()
		s.interactLatched = controls.InteractHeld
		return
	}
	if !s.tutorial.IsActive() {
		s.dialogue.Advance()
	}
}

// ShowHint 显示帽子/项链提示（教学进行中会被忽略）
func (s *FarmScene) ShowHint(hint systems.Hint) bool {
	return s.tutorial.ShowHint(hint)
}

// Apply 把世界事件写入玩家/农场组件
func (s *FarmScene) Apply(event WorldEvent) {
	player := s.Player()
	level := s.Level()

	switch event {
	case EventIngroupInteraction:
		player.IngroupMemberInteracted = true
	case EventTileFarmed:
		level.TileFarmed = true
	case EventCropPlanted:
		for i, planted := range level.CropPlanted {
			if !planted {
				level.CropPlanted[i] = true
				break
			}
		}
	case EventCropWatered:
		level.CropWatered = true
	case EventTreeHit:
		level.HitTree = true
	case EventTrade:
		player.BoughtSold = true
	case EventMinigameFinished:
		player.MinigameFinished = true
	case EventOutgroupInteraction:
		player.OutgroupMemberInteracted = true
	case EventSwitchToOutgroup:
		player.StudyGroup = types.StudyGroupOutgroup
	}
	log.Printf("[FarmScene] World event: %v", event)
}

// Paused 是否暂停
func (s *FarmScene) Paused() bool {
	return s.paused
}

// Player 玩家组件
func (s *FarmScene) Player() *components.PlayerComponent {
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerEntity)
	return player
}

// Level 农场组件
func (s *FarmScene) Level() *components.LevelComponent {
	level, _ := ecs.GetComponent[*components.LevelComponent](s.entityManager, s.levelEntity)
	return level
}

// Tutorial 教学系统
func (s *FarmScene) Tutorial() *systems.TutorialSystem {
	return s.tutorial
}

// Dialogue 对话系统
func (s *FarmScene) Dialogue() *systems.DialogueSystem {
	return s.dialogue
}
