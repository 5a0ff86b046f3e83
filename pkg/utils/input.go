// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/onboarding/pkg/components"
)

// Controls 当前帧的键盘输入状态
type Controls struct {
	// DirectionX, DirectionY 移动方向（-1/0/1，y 向下为正）
	DirectionX, DirectionY float64
	// InteractHeld 交互键（E/空格）是否按住
	InteractHeld bool
	// InteractJustPressed 交互键是否在本帧刚按下
	InteractJustPressed bool
	// PauseJustPressed 暂停键（Esc/P）是否在本帧刚按下
	PauseJustPressed bool
}

var (
	leftKeys     = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys    = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	upKeys       = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	downKeys     = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	interactKeys = []ebiten.Key{ebiten.KeyE, ebiten.KeySpace}
	pauseKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}
)

// ReadControls 读取当前帧的键盘输入
func ReadControls() Controls {
	c := Controls{
		InteractHeld:        anyPressed(interactKeys),
		InteractJustPressed: anyJustPressed(interactKeys),
		PauseJustPressed:    anyJustPressed(pauseKeys),
	}
	c.DirectionX, c.DirectionY = DirectionFromKeys(
		anyPressed(leftKeys), anyPressed(rightKeys), anyPressed(upKeys), anyPressed(downKeys),
	)
	return c
}

// DirectionFromKeys 把方向键状态转换为方向向量
// 相反方向同时按下时该轴为 0
func DirectionFromKeys(left, right, up, down bool) (x, y float64) {
	if left {
		x--
	}
	if right {
		x++
	}
	if up {
		y--
	}
	if down {
		y++
	}
	return x, y
}

// ApplyControls 把输入写入玩家组件
// 玩家被屏蔽输入时不能移动，但交互键状态仍然写入（用于确认结束教学）
func ApplyControls(player *components.PlayerComponent, c Controls) {
	player.InteractHeld = c.InteractHeld
	if player.Blocked {
		player.DirectionX, player.DirectionY = 0, 0
		return
	}
	player.DirectionX, player.DirectionY = c.DirectionX, c.DirectionY
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
