//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.scrollscene -o build/android/scrollscene.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/ScrollScene.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/scrollscene/pkg/app"
)

func init() {
	// 移动端没有配置文件，app 会选用低功耗预设
	cfg := app.Config{Verbose: true}

	previewApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("预览初始化失败: %v", err)
	}

	mobile.SetGame(previewApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
