package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName gdata 存储使用的应用名
const AppName = "farm_onboarding"

// 存储路径常量
const (
	saveObject   = "save"
	saveProperty = "progress"
)

// SaveFile 玩家存档内容
type SaveFile struct {
	// IsTutorialCompleted 是否完成过新手教学，完成后重新启动游戏不再显示教学
	IsTutorialCompleted bool `yaml:"isTutorialCompleted"`
}

// SaveManager 存档管理器
//
// 职责：
//   - 从 gdata 加载存档，启动时决定是否需要教学
//   - 教学完成时写入完成标记
//
// gdataManager 为 nil 时进入降级模式：存档只保存在内存中
type SaveManager struct {
	gdataManager *gdata.Manager
	data         *SaveFile
}

// OpenSaveManager 打开默认应用目录下的存档
// gdata 初始化失败时返回降级模式的管理器（不报错）
func OpenSaveManager(appName string) *SaveManager {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[SaveManager] Warning: gdata unavailable: %v (progress will not persist)", err)
		manager = nil
	}
	return NewSaveManager(manager)
}

// NewSaveManager 创建存档管理器并尝试加载已有存档
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewSaveManager(gdataManager *gdata.Manager) *SaveManager {
	sm := &SaveManager{
		gdataManager: gdataManager,
		data:         &SaveFile{},
	}

	// 加载失败不是致命错误，使用空存档
	if err := sm.Load(); err != nil {
		log.Printf("[SaveManager] Warning: Failed to load save: %v (starting fresh)", err)
	}
	return sm
}

// Load 从 gdata 加载存档，存档不存在时保持空存档
func (sm *SaveManager) Load() error {
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(saveObject, saveProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return fmt.Errorf("failed to load save: %w", err)
	}

	var loaded SaveFile
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal save: %w", err)
	}

	sm.data = &loaded
	log.Printf("[SaveManager] Save loaded (tutorial completed: %v)", loaded.IsTutorialCompleted)
	return nil
}

// Save 把当前存档写入 gdata，降级模式下直接返回 nil
func (sm *SaveManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.data)
	if err != nil {
		return fmt.Errorf("failed to marshal save: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(saveObject, saveProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}

	log.Printf("[SaveManager] Save written")
	return nil
}

// IsTutorialCompleted 存档是否记录了教学已完成
func (sm *SaveManager) IsTutorialCompleted() bool {
	return sm.data.IsTutorialCompleted
}

// MarkTutorialCompleted 设置教学完成标记并立即持久化
func (sm *SaveManager) MarkTutorialCompleted() error {
	sm.data.IsTutorialCompleted = true
	return sm.Save()
}

// Persistent 是否真正写入磁盘（false 表示降级模式）
func (sm *SaveManager) Persistent() bool {
	return sm.gdataManager != nil
}

// Reset 清除教学完成标记并持久化，下次启动重新显示教学
func (sm *SaveManager) Reset() {
	sm.data = &SaveFile{}
	if err := sm.Save(); err != nil {
		log.Printf("[SaveManager] Warning: Failed to reset save: %v", err)
	}
}
