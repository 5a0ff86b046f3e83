package game

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 在临时 HOME 下创建 gdata Manager，无法创建时跳过测试
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	t.Helper()

	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	appName := fmt.Sprintf("onboarding_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

// TestSaveManagerNilGdata 测试降级模式
func TestSaveManagerNilGdata(t *testing.T) {
	sm := NewSaveManager(nil)

	if sm.Persistent() {
		t.Error("Nil gdata manager should not be persistent")
	}
	if sm.IsTutorialCompleted() {
		t.Error("Fresh save should not have tutorial completed")
	}

	if err := sm.MarkTutorialCompleted(); err != nil {
		t.Fatalf("MarkTutorialCompleted() in degraded mode: %v", err)
	}
	if !sm.IsTutorialCompleted() {
		t.Error("Flag should be kept in memory in degraded mode")
	}
}

// TestSaveManagerPersistsTutorialFlag 写入后新建管理器应能读回标记
func TestSaveManagerPersistsTutorialFlag(t *testing.T) {
	manager := createTestGdataManager(t, "persist")

	sm1 := NewSaveManager(manager)
	if sm1.IsTutorialCompleted() {
		t.Fatal("Fresh save should not have tutorial completed")
	}
	if err := sm1.MarkTutorialCompleted(); err != nil {
		t.Fatalf("MarkTutorialCompleted() error: %v", err)
	}

	sm2 := NewSaveManager(manager)
	if !sm2.IsTutorialCompleted() {
		t.Error("Tutorial completed flag should survive reload")
	}
}

// TestSaveManagerCorruptSave 损坏的存档回退为空存档
func TestSaveManagerCorruptSave(t *testing.T) {
	manager := createTestGdataManager(t, "corrupt")

	if err := manager.SaveObjectProp(saveObject, saveProperty, []byte("isTutorialCompleted: [oops")); err != nil {
		t.Fatalf("Failed to seed corrupt save: %v", err)
	}

	sm := NewSaveManager(manager)
	if sm.IsTutorialCompleted() {
		t.Error("Corrupt save should fall back to a fresh save")
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report the corrupt save")
	}
}

// TestSaveManagerReset 重置后重新加载不再显示已完成
func TestSaveManagerReset(t *testing.T) {
	manager := createTestGdataManager(t, "reset")

	sm := NewSaveManager(manager)
	if err := sm.MarkTutorialCompleted(); err != nil {
		t.Fatalf("MarkTutorialCompleted() error: %v", err)
	}
	sm.Reset()
	if sm.IsTutorialCompleted() {
		t.Error("Reset should clear the flag in memory")
	}

	reloaded := NewSaveManager(manager)
	if reloaded.IsTutorialCompleted() {
		t.Error("Reset should be persisted")
	}
}
