package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/onboarding/pkg/app"
	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	lang := flag.String("lang", config.DefaultLanguage, "Dialogue text language")
	reset := flag.Bool("reset", false, "Forget tutorial completion and show the tutorial again")
	roundConfig := flag.String("round-config", "", "Round config YAML on disk (default: embedded data/round_config.yaml)")
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:         *verbose,
		Language:        *lang,
		RoundConfigPath: *roundConfig,
		ResetProgress:   *reset,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Farm Onboarding")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
