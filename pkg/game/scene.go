package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 由主循环驱动的场景
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}
