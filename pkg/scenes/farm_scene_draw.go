package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/types"
)

var (
	lawnColor    = color.RGBA{R: 144, G: 238, B: 144, A: 255}
	textboxColor = color.RGBA{R: 40, G: 30, B: 20, A: 220}
)

// Draw 实现 game.Scene：调试用的最简绘制（状态行 + 对话框）
func (s *FarmScene) Draw(screen *ebiten.Image) {
	screen.Fill(lawnColor)
	ebitenutil.DebugPrint(screen, s.StatusLine())

	textbox, ok := s.dialogue.Current()
	if !ok {
		return
	}
	vector.DrawFilledRect(screen, float32(textbox.X), float32(textbox.Y),
		config.TextboxWidth, config.TextboxHeight, textboxColor, false)
	ebitenutil.DebugPrintAt(screen, wrap(s.dialogue.VisibleText(), 60), int(textbox.X)+12, int(textbox.Y)+12)
}

// StatusLine 当前教学状态的单行描述
func (s *FarmScene) StatusLine() string {
	player := s.Player()
	status := "done"
	if s.tutorial.IsActive() {
		status = fmt.Sprintf("task %d/%d %v", s.tutorial.CurrentTask(), types.TaskCount-1, s.tutorial.CurrentTask())
	}
	return fmt.Sprintf("tutorial: %s | stage %d | paused %v | blocked %v | group %v",
		status, s.tutorial.StageReached(), s.paused, player.Blocked, player.StudyGroup)
}

// wrap 按宽度折行（调试字体不支持自动换行）
func wrap(text string, width int) string {
	words := strings.Fields(text)
	var b strings.Builder
	lineLen := 0
	for _, w := range words {
		if lineLen > 0 && lineLen+1+len(w) > width {
			b.WriteByte('\n')
			lineLen = 0
		} else if lineLen > 0 {
			b.WriteByte(' ')
			lineLen++
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
