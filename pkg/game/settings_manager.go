package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// PreviewSettings 预览窗口的设置
// 只影响预览器本身，场景运动参数在 SceneConfig 中
type PreviewSettings struct {
	// ConfigPath 上次使用的场景配置文件，空表示使用默认配置
	ConfigPath string `yaml:"configPath"`

	// 滚动设置（与网页 ScrollControls 一致）
	ScrollPages   float64 `yaml:"scrollPages"`   // 页面高度倍数，决定滚轮灵敏度
	ScrollDamping float64 `yaml:"scrollDamping"` // 滚动偏移的阻尼时间（秒）

	// 显示设置
	ShowDebug    bool `yaml:"showDebug"`    // 是否显示调试信息
	WindowWidth  int  `yaml:"windowWidth"`  // 窗口宽度
	WindowHeight int  `yaml:"windowHeight"` // 窗口高度
}

// DefaultSettings 返回默认设置
func DefaultSettings() *PreviewSettings {
	return &PreviewSettings{
		ScrollPages:   2.5,
		ScrollDamping: 0.3,
		ShowDebug:     true,
		WindowWidth:   1280,
		WindowHeight:  720,
	}
}

// SettingsManager 设置管理器
// 负责预览设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager   // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *PreviewSettings // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "preview"
)

// 设置值范围
const (
	minScrollPages   = 1.0
	maxScrollPages   = 20.0
	maxScrollDamping = 5.0
	minWindowSize    = 320
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置。
// 文件中缺失的字段保持默认值。
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	sanitize(loaded)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *PreviewSettings {
	return sm.settings
}

// SetConfigPath 记录场景配置文件路径
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetConfigPath(path string) {
	sm.settings.ConfigPath = path
}

// SetScrollPages 设置滚动页数，限制在 [1, 20]
func (sm *SettingsManager) SetScrollPages(pages float64) {
	sm.settings.ScrollPages = clampRange(pages, minScrollPages, maxScrollPages)
}

// SetScrollDamping 设置滚动阻尼，限制在 [0, 5]
func (sm *SettingsManager) SetScrollDamping(damping float64) {
	sm.settings.ScrollDamping = clampRange(damping, 0, maxScrollDamping)
}

// SetShowDebug 设置调试信息开关
func (sm *SettingsManager) SetShowDebug(show bool) {
	sm.settings.ShowDebug = show
}

// SetWindowSize 记录窗口尺寸，过小的值被忽略
func (sm *SettingsManager) SetWindowSize(w, h int) {
	if w < minWindowSize || h < minWindowSize {
		return
	}
	sm.settings.WindowWidth = w
	sm.settings.WindowHeight = h
}

// sanitize 修正从文件读到的越界值
func sanitize(s *PreviewSettings) {
	def := DefaultSettings()
	s.ScrollPages = clampRange(s.ScrollPages, minScrollPages, maxScrollPages)
	s.ScrollDamping = clampRange(s.ScrollDamping, 0, maxScrollDamping)
	if s.WindowWidth < minWindowSize || s.WindowHeight < minWindowSize {
		s.WindowWidth, s.WindowHeight = def.WindowWidth, def.WindowHeight
	}
}

// clampRange 将值限制在 [lo, hi] 范围内
func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
