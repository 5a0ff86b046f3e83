// tutorial_walkthrough 无窗口地自动走完一遍新手教学并打印每次任务切换
//
// 用法：
//
//	go run ./cmd/tutorial_walkthrough
//	go run ./cmd/tutorial_walkthrough --outgroup --verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/scenes"
	"github.com/decker502/onboarding/pkg/types"
	"github.com/decker502/onboarding/pkg/utils"
)

const tickDelta = 1.0 / 60.0

var (
	outgroup = flag.Bool("outgroup", false, "Enable the playable_outgroup branch")
	lang     = flag.String("lang", config.DefaultLanguage, "Dialogue text language")
	maxTicks = flag.Int("max-ticks", 2000, "Give up after this many ticks")
	verbose  = flag.Bool("verbose", false, "显示详细调试信息")
)

// taskEvents 每个任务对应的世界事件（任务 0 和任务 10 由输入驱动）
var taskEvents = map[types.TaskID]scenes.WorldEvent{
	types.TaskInteractIngroup:  scenes.EventIngroupInteraction,
	types.TaskFarmTile:         scenes.EventTileFarmed,
	types.TaskPlantCrop:        scenes.EventCropPlanted,
	types.TaskWaterCrop:        scenes.EventCropWatered,
	types.TaskHitTree:          scenes.EventTreeHit,
	types.TaskMarketTrade:      scenes.EventTrade,
	types.TaskPlayMinigame:     scenes.EventMinigameFinished,
	types.TaskInteractOutgroup: scenes.EventOutgroupInteraction,
	types.TaskSwitchToOutgroup: scenes.EventSwitchToOutgroup,
}

// movementCycle 任务 0 依次按下的方向
var movementCycle = [][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	texts, err := config.LoadDialogueTexts(config.DialogueTextPath(*lang))
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载对话文本失败: %v\n", err)
		os.Exit(1)
	}
	roundConfig := config.RoundConfig{config.KeyPlayableOutgroup: *outgroup}

	// 不传存档：走查结果不写入玩家存档
	scene := scenes.NewFarmScene(roundConfig, texts, nil)
	tutorial := scene.Tutorial()

	fmt.Printf("playable_outgroup=%v\n", *outgroup)
	lastTask := types.TaskID(-1)
	tick := 0
	for ; tick < *maxTicks && !tutorial.IsCompleted(); tick++ {
		task := tutorial.CurrentTask()
		if task != lastTask {
			fmt.Printf("tick %4d  task %2d %-18v stage %2d  %q\n",
				tick, task, task, tutorial.StageReached(), scene.Dialogue().VisibleText())
			lastTask = task
		}

		// 每帧按一次交互键跳过打字机动画
		controls := utils.Controls{InteractJustPressed: true}
		switch task {
		case types.TaskBasicMovement:
			dir := movementCycle[tick%len(movementCycle)]
			controls.DirectionX, controls.DirectionY = dir[0], dir[1]
		case types.TaskConfirmEnd:
			// 跳过动画的那次按键不算确认，文本显示完后再按住
			controls.InteractHeld = scene.Dialogue().CurrentEntryFinishedAdvancing()
		default:
			if event, ok := taskEvents[task]; ok {
				scene.Apply(event)
			}
		}

		scene.Step(tickDelta, controls)
	}

	if !tutorial.IsCompleted() {
		fmt.Fprintf(os.Stderr, "教学未在 %d 帧内完成，停在任务 %v\n", *maxTicks, tutorial.CurrentTask())
		os.Exit(1)
	}

	fmt.Printf("tick %4d  tutorial completed, stage %d\n", tick, tutorial.StageReached())
	for id := range types.TaskID(types.TaskCount) {
		fmt.Printf("  %2d %-18v %v\n", id, id, tutorial.Status(id))
	}
}
