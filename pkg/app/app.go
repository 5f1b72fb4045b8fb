// Package app 提供预览器的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/gonewx/scrollscene/pkg/config"
	"github.com/gonewx/scrollscene/pkg/embedded"
	"github.com/gonewx/scrollscene/pkg/game"
	"github.com/gonewx/scrollscene/pkg/scenes"
	"github.com/gonewx/scrollscene/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "scrollscene"

// MobilePreset 移动端没有指定配置时使用的预设
const MobilePreset = "lowpower"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 场景配置文件，为空则使用上次保存的路径或默认配置
	ConfigPath string
	// Preset 内置预设名，优先于 ConfigPath；移动端默认使用 MobilePreset
	Preset string
	// Width, Height 窗口尺寸，为 0 则使用保存的设置
	Width, Height int
	// Watch 监听配置文件并热重载
	Watch bool
}

// App 是预览器的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *scenes.SceneManager
	preview      *scenes.PreviewScene
	settings     *game.SettingsManager
	watcher      *config.Watcher
	verbose      bool

	windowWidth, windowHeight int
	pendingWindowSizeReset    bool // 延迟设置窗口大小标志
	windowSizeResetCountdown  int  // 延迟帧数
}

// NewApp 创建并初始化预览应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Storage directory unavailable: %v", err)
	}

	// gdata 不可用时进入降级模式，设置只保存在内存中
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}
	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置加载失败: %w", err)
	}

	sceneCfg, configPath, err := loadSceneConfig(cfg, settings)
	if err != nil {
		return nil, err
	}

	var watcher *config.Watcher
	if cfg.Watch && configPath != "" {
		watcher, err = config.NewWatcher(configPath)
		if err != nil {
			// 热重载只是辅助功能
			log.Printf("[App] Config watcher disabled: %v", err)
			watcher = nil
		}
	}

	if cfg.Width > 0 && cfg.Height > 0 {
		settings.SetWindowSize(cfg.Width, cfg.Height)
	}
	s := settings.GetSettings()

	preview, err := scenes.NewPreviewScene(sceneCfg, settings, watcher, s.WindowWidth, s.WindowHeight)
	if err != nil {
		if watcher != nil {
			watcher.Close()
		}
		return nil, fmt.Errorf("预览场景创建失败: %w", err)
	}

	sceneManager := scenes.NewSceneManager()
	sceneManager.SwitchTo(preview)

	return &App{
		sceneManager: sceneManager,
		preview:      preview,
		settings:     settings,
		watcher:      watcher,
		verbose:      cfg.Verbose,
		windowWidth:  s.WindowWidth,
		windowHeight: s.WindowHeight,
	}, nil
}

// loadSceneConfig 按 预设 → 配置文件 → 上次的配置文件 → 默认配置 的顺序加载
// 返回的 configPath 只在从文件加载时非空（用于热重载）
func loadSceneConfig(cfg Config, settings *game.SettingsManager) (*config.SceneConfig, string, error) {
	if cfg.Preset == "" && cfg.ConfigPath == "" && utils.IsMobile() {
		cfg.Preset = MobilePreset
	}
	if cfg.Preset != "" {
		data, ext, err := embedded.ReadPreset(cfg.Preset)
		if err != nil {
			return nil, "", fmt.Errorf("预设加载失败: %w", err)
		}
		sceneCfg, err := config.ParseSceneConfig(data, ext)
		if err != nil {
			return nil, "", fmt.Errorf("预设 %s 无效: %w", cfg.Preset, err)
		}
		log.Printf("[App] Loaded preset: %s", cfg.Preset)
		return sceneCfg, "", nil
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = settings.GetSettings().ConfigPath
	}
	if configPath == "" {
		log.Printf("[App] Using default scene config")
		return config.DefaultSceneConfig(), "", nil
	}

	sceneCfg, err := config.LoadSceneConfig(configPath)
	if err != nil {
		return nil, "", fmt.Errorf("场景配置加载失败: %w", err)
	}
	settings.SetConfigPath(configPath)
	log.Printf("[App] Loaded scene config: %s", configPath)
	return sceneCfg, configPath, nil
}

// WindowSize 返回初始窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.windowWidth, a.windowHeight
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.Shutdown()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.windowWidth, a.windowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.windowWidth, a.windowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			a.windowWidth, a.windowHeight = ebiten.WindowSize()
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 逻辑屏幕尺寸跟随窗口，视口变化时重新计算场景布局
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	a.preview.Resize(w, h)
	return w, h
}

// Shutdown 保存当前场景状态并停止配置监听
// 可以重复调用
func (a *App) Shutdown() {
	a.sceneManager.SaveCurrent()
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			log.Printf("[App] Failed to close config watcher: %v", err)
		}
		a.watcher = nil
	}
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
