// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/embedded"
	"github.com/decker502/onboarding/pkg/game"
	"github.com/decker502/onboarding/pkg/scenes"
	"github.com/decker502/onboarding/pkg/systems"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Language 对话文本语言，为空时使用 config.DefaultLanguage
	Language string
	// RoundConfigPath 磁盘上的回合配置文件，为空时使用内嵌的 data/round_config.yaml
	RoundConfigPath string
	// ResetProgress 启动时忽略已有的完成标记，重新进行教学
	ResetProgress bool
}

// debugEventKeys 数字键到世界事件的映射（没有完整农场玩法时用于手动驱动教学）
var debugEventKeys = map[ebiten.Key]scenes.WorldEvent{
	ebiten.Key1: scenes.EventIngroupInteraction,
	ebiten.Key2: scenes.EventTileFarmed,
	ebiten.Key3: scenes.EventCropPlanted,
	ebiten.Key4: scenes.EventCropWatered,
	ebiten.Key5: scenes.EventTreeHit,
	ebiten.Key6: scenes.EventTrade,
	ebiten.Key7: scenes.EventMinigameFinished,
	ebiten.Key8: scenes.EventOutgroupInteraction,
	ebiten.Key9: scenes.EventSwitchToOutgroup,
}

// debugHintKeys 提示对话的调试按键（教学结束后才会显示）
var debugHintKeys = map[ebiten.Key]systems.Hint{
	ebiten.KeyH: systems.HintHat,
	ebiten.KeyN: systems.HintNecklace,
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	farmScene    *scenes.FarmScene
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.Language == "" {
		cfg.Language = config.DefaultLanguage
	}

	roundConfig, err := loadRoundConfig(cfg.RoundConfigPath)
	if err != nil {
		return nil, err
	}

	textData, err := embedded.ReadFile(config.DialogueTextPath(cfg.Language))
	if err != nil {
		return nil, fmt.Errorf("对话文本读取失败: %w", err)
	}
	texts, err := config.ParseDialogueTexts(textData)
	if err != nil {
		return nil, fmt.Errorf("对话文本解析失败: %w", err)
	}
	log.Printf("[App] Loaded %d dialogue texts (%s)", len(texts), cfg.Language)

	saveManager := game.OpenSaveManager(game.AppName)
	log.Printf("[App] Save persistent: %v", saveManager.Persistent())
	if cfg.ResetProgress {
		saveManager.Reset()
	}

	farmScene := scenes.NewFarmScene(roundConfig, texts, saveManager)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(farmScene)

	return &App{
		sceneManager: sceneManager,
		farmScene:    farmScene,
	}, nil
}

// loadRoundConfig 读取回合配置：指定了路径时从磁盘读取，否则使用内嵌默认配置
func loadRoundConfig(path string) (config.RoundConfig, error) {
	if path != "" {
		roundConfig, err := config.LoadRoundConfig(path)
		if err != nil {
			return nil, fmt.Errorf("回合配置加载失败: %w", err)
		}
		log.Printf("[App] Loaded round config from %s", path)
		return roundConfig, nil
	}

	data, err := embedded.ReadFile(config.RoundConfigPath)
	if err != nil {
		return nil, fmt.Errorf("回合配置读取失败: %w", err)
	}
	roundConfig, err := config.ParseRoundConfig(data)
	if err != nil {
		return nil, fmt.Errorf("回合配置解析失败: %w", err)
	}
	return roundConfig, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// 暂停（商店/菜单界面）时不接受调试事件
	if !a.farmScene.Paused() {
		for key, event := range debugEventKeys {
			if inpututil.IsKeyJustPressed(key) {
				a.farmScene.Apply(event)
			}
		}
		for key, hint := range debugHintKeys {
			if inpututil.IsKeyJustPressed(key) {
				a.farmScene.ShowHint(hint)
			}
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
