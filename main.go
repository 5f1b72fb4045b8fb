package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonewx/scrollscene/pkg/app"
	"github.com/gonewx/scrollscene/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "场景配置文件 (.yaml/.toml)")
	preset := flag.String("preset", "", "内置预设名（优先于 --config）")
	listPresets := flag.Bool("presets", false, "列出内置预设后退出")
	watch := flag.Bool("watch", true, "配置文件变化时热重载")
	verbose := flag.Bool("verbose", false, "启用详细日志")
	width := flag.Int("width", 0, "窗口宽度（0 使用上次的设置）")
	height := flag.Int("height", 0, "窗口高度（0 使用上次的设置）")
	flag.Parse()

	if *listPresets {
		names, err := embedded.Presets()
		if err != nil {
			log.Fatal(err)
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return
	}

	previewApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Preset:     *preset,
		Width:      *width,
		Height:     *height,
		Watch:      *watch,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	w, h := previewApp.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Scroll Scene Preview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	// Update 在窗口关闭时保存并返回 ebiten.Termination
	if err := ebiten.RunGame(previewApp); err != nil {
		previewApp.Shutdown()
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}
}
