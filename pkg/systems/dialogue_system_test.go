package systems

import (
	"testing"

	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/ecs"
)

// createTestDialogueSystem 创建测试用的对话系统
func createTestDialogueSystem() (*DialogueSystem, *ecs.EntityManager) {
	em := ecs.NewEntityManager()
	texts := config.DialogueTexts{
		config.EntryBasicMovement: "Walk around.",
		config.EntryFarmTile:      "Till.",
	}
	return NewDialogueSystem(em, texts), em
}

func TestDialogueSystem_OpenAndState(t *testing.T) {
	s, _ := createTestDialogueSystem()

	if s.State() != DialogueIdle {
		t.Errorf("Expected Idle, got %v", s.State())
	}
	if s.CurrentEntryFinishedAdvancing() {
		t.Error("Idle dialogue should never report finished advancing")
	}

	s.OpenDialogue(config.EntryBasicMovement, 10, 20)

	if s.State() != DialogueDisplaying {
		t.Errorf("Expected Displaying, got %v", s.State())
	}
	textbox, ok := s.Current()
	if !ok {
		t.Fatal("Expected a current textbox")
	}
	if textbox.Key != config.EntryBasicMovement || textbox.Text != "Walk around." {
		t.Errorf("Unexpected textbox %+v", textbox)
	}
	if textbox.X != 10 || textbox.Y != 20 {
		t.Errorf("Unexpected position (%v, %v)", textbox.X, textbox.Y)
	}
	if s.CurrentEntryFinishedAdvancing() {
		t.Error("Fresh textbox should still be animating")
	}
}

func TestDialogueSystem_TypewriterReveal(t *testing.T) {
	s, _ := createTestDialogueSystem()
	s.SetCharsPerSecond(10)
	s.OpenDialogue(config.EntryFarmTile, 0, 0) // "Till." 5 个字符

	s.Update(0.35)
	if got := s.VisibleText(); got != "Til" {
		t.Errorf("Expected %q after 0.35s, got %q", "Til", got)
	}
	if s.CurrentEntryFinishedAdvancing() {
		t.Error("Should not be finished yet")
	}

	s.Update(0.3)
	if !s.CurrentEntryFinishedAdvancing() {
		t.Error("Should be finished after all characters were revealed")
	}
	if got := s.VisibleText(); got != "Till." {
		t.Errorf("Expected full text, got %q", got)
	}
}

func TestDialogueSystem_SkipAnimation(t *testing.T) {
	s, _ := createTestDialogueSystem()
	s.OpenDialogue(config.EntryBasicMovement, 0, 0)

	s.SkipAnimation()

	if !s.CurrentEntryFinishedAdvancing() {
		t.Error("SkipAnimation should finish the current textbox")
	}
}

func TestDialogueSystem_InstantWhenSpeedDisabled(t *testing.T) {
	s, _ := createTestDialogueSystem()
	s.SetCharsPerSecond(0)
	s.OpenDialogue(config.EntryBasicMovement, 0, 0)

	if !s.CurrentEntryFinishedAdvancing() {
		t.Error("Textbox should be finished immediately when speed is disabled")
	}
}

func TestDialogueSystem_AdvanceAndPurge(t *testing.T) {
	s, em := createTestDialogueSystem()
	s.OpenDialogue(config.EntryBasicMovement, 0, 0)
	s.OpenDialogue(config.EntryFarmTile, 0, 0)
	s.OpenDialogue("Unknown_entry", 0, 0)

	if s.QueueLength() != 3 {
		t.Fatalf("Expected 3 textboxes, got %d", s.QueueLength())
	}

	s.Advance()
	textbox, _ := s.Current()
	if textbox.Key != config.EntryFarmTile {
		t.Errorf("Expected %q at the front, got %q", config.EntryFarmTile, textbox.Key)
	}

	s.PurgeQueue()
	if s.State() != DialogueIdle {
		t.Error("Queue should be empty after purge")
	}
	// 空队列上 Advance 不报错
	s.Advance()

	em.RemoveMarkedEntities()
	if em.EntityCount() != 0 {
		t.Errorf("All textbox entities should be destroyed, %d left", em.EntityCount())
	}
}

func TestDialogueSystem_UnknownKeyFallback(t *testing.T) {
	s, _ := createTestDialogueSystem()
	s.OpenDialogue("Missing", 0, 0)

	textbox, _ := s.Current()
	if textbox.Text != "[Missing]" {
		t.Errorf("Expected debug fallback text, got %q", textbox.Text)
	}
}
