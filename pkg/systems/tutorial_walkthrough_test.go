package systems

import (
	"testing"

	"github.com/decker502/onboarding/pkg/components"
	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/ecs"
	"github.com/decker502/onboarding/pkg/types"
)

// TestTutorialWalkthrough_WithDialogueSystem 使用真实对话系统跑完整个教学
func TestTutorialWalkthrough_WithDialogueSystem(t *testing.T) {
	for _, playable := range []bool{false, true} {
		name := "outgroup disabled"
		if playable {
			name = "outgroup playable"
		}

		t.Run(name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			playerEntity := em.CreateEntity()
			player := &components.PlayerComponent{StudyGroup: types.StudyGroupIngroup}
			em.AddComponent(playerEntity, player)
			levelEntity := em.CreateEntity()
			level := &components.LevelComponent{CropPlanted: make([]bool, 9)}
			em.AddComponent(levelEntity, level)

			dialogue := NewDialogueSystem(em, nil)
			saver := &memorySaver{}
			cfg := config.RoundConfig{config.KeyPlayableOutgroup: playable}
			tutorial := NewTutorialSystem(em, dialogue, saver, cfg, playerEntity, levelEntity)

			// frame 模拟一帧：对话动画 → 教学判定 → 清理实体
			frame := func() {
				dialogue.Update(1.0 / 60.0)
				tutorial.Update(false)
				em.RemoveMarkedEntities()
			}
			// waitForText 让当前对话框显示完毕
			waitForText := func() {
				for i := 0; i < 600 && !dialogue.CurrentEntryFinishedAdvancing(); i++ {
					frame()
				}
			}

			tutorial.Start()
			waitForText()

			for _, dir := range [][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				player.DirectionX, player.DirectionY = dir[0], dir[1]
				frame()
			}
			player.DirectionX, player.DirectionY = 0, 0

			events := []func(){
				func() { player.IngroupMemberInteracted = true },
				func() { level.TileFarmed = true },
				func() { level.CropPlanted[4] = true },
				func() { level.CropWatered = true },
				func() { level.HitTree = true },
				func() { player.BoughtSold = true },
				func() { player.MinigameFinished = true },
				func() { player.OutgroupMemberInteracted = true },
			}
			for i, event := range events {
				waitForText()
				event()
				frame()
				if tutorial.Status(types.TaskID(i+1)) != components.TaskAchieved {
					t.Fatalf("Task %d not achieved", i+1)
				}
			}

			if playable {
				current, _ := dialogue.Current()
				if current.Key != config.EntrySwitchToOutgroup {
					t.Fatalf("Expected %q, got %q", config.EntrySwitchToOutgroup, current.Key)
				}
				waitForText()
				player.StudyGroup = types.StudyGroupOutgroup
				frame()
			}

			current, _ := dialogue.Current()
			if current == nil || current.Key != config.EntryTutorialEnd {
				t.Fatalf("Expected the end textbox, got %+v", current)
			}
			if dialogue.QueueLength() != 1 {
				t.Errorf("Expected exactly one textbox on screen, got %d", dialogue.QueueLength())
			}
			if !player.Blocked {
				t.Error("Input should be blocked while waiting for confirmation")
			}

			waitForText()
			player.InteractHeld = true
			frame()

			if !tutorial.IsCompleted() || saver.writes != 1 {
				t.Errorf("Tutorial should be completed and saved once (writes=%d)", saver.writes)
			}
			if player.Blocked || dialogue.State() != DialogueIdle {
				t.Error("Completion should unblock input and clear dialogue")
			}
			if em.EntityCount() != 3 {
				t.Errorf("Expected only player, level and tutorial entities to remain, got %d", em.EntityCount())
			}
		})
	}
}
