package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadSceneConfig 从文件加载场景配置
//
// 先取默认配置，再用文件内容覆盖（文件中未出现的字段保持默认值），最后校验。
// 根据扩展名选择解码器：.yaml/.yml 使用 YAML，.toml 使用 TOML。
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *SceneConfig: 合并后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config file %s: %w", path, err)
	}

	cfg, err := ParseSceneConfig(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("invalid scene config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseSceneConfig 解析配置内容并覆盖到默认配置上
//
// 参数:
//   - data: 文件内容
//   - ext: 扩展名（".yaml", ".yml", ".toml"），决定解码格式
func ParseSceneConfig(data []byte, ext string) (*SceneConfig, error) {
	cfg := DefaultSceneConfig()

	switch strings.ToLower(ext) {
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验配置
//
// 阈值倒置属于开发期的配置错误：运行时核心只做 epsilon 防护，
// 因此在加载阶段就把它报告出来。
func (c *SceneConfig) Validate() error {
	cam := c.Camera
	if !(cam.HeroHoldEnd >= 0 && cam.HeroHoldEnd < cam.HeroMoveEnd &&
		cam.HeroMoveEnd < cam.ServicesStart && cam.ServicesStart <= 1) {
		return fmt.Errorf("camera thresholds must satisfy 0 <= heroHoldEnd < heroMoveEnd < servicesStart <= 1, got %v / %v / %v",
			cam.HeroHoldEnd, cam.HeroMoveEnd, cam.ServicesStart)
	}
	if len(cam.PositionAnchors) != 3 {
		return fmt.Errorf("camera.positionAnchors: need 3 anchors (hero, about, services), got %d", len(cam.PositionAnchors))
	}
	if len(cam.LookAnchors) != 3 {
		return fmt.Errorf("camera.lookAnchors: need 3 anchors (hero, about, services), got %d", len(cam.LookAnchors))
	}
	if cam.FOV <= 0 || cam.FOV >= 180 {
		return fmt.Errorf("camera.fov must be in (0, 180), got %v", cam.FOV)
	}

	if c.Fish.FollowHz < 0 || c.Fish.TurnSpeed < 0 || c.Fish.PhaseStiffness < 0 {
		return fmt.Errorf("fish: followHz, turnSpeed and phaseStiffness cannot be negative")
	}

	d := c.Damping
	if d.UDamp < 0 || d.UDampLocked < 0 || d.DampBase < 0 || d.DampHold < 0 || d.SlerpRate < 0 {
		return fmt.Errorf("damping rates cannot be negative")
	}

	s := c.Scroll
	if s.SectionThreshold < 0 {
		return fmt.Errorf("scroll.sectionThreshold cannot be negative, got %v", s.SectionThreshold)
	}
	if s.TransitionDuration <= 0 {
		return fmt.Errorf("scroll.transitionDuration must be positive, got %v", s.TransitionDuration)
	}

	tm := c.Timing
	if tm.MaxDt <= 0 {
		return fmt.Errorf("timing.maxDt must be positive, got %v", tm.MaxDt)
	}
	if tm.BlendStep <= 0 || tm.BlendStep > 1 {
		return fmt.Errorf("timing.blendStep must be in (0, 1], got %v", tm.BlendStep)
	}
	if tm.BlendUpdateMS < 0 {
		return fmt.Errorf("timing.blendUpdateMs cannot be negative, got %v", tm.BlendUpdateMS)
	}

	if len(c.Text.HeadlinePositions) != 3 {
		return fmt.Errorf("text.headlinePositions: need 3 lines, got %d", len(c.Text.HeadlinePositions))
	}

	if c.Bubbles.Count < 0 {
		return fmt.Errorf("bubbles.count cannot be negative, got %d", c.Bubbles.Count)
	}
	if c.Bubbles.SizeMin > c.Bubbles.SizeMax {
		return fmt.Errorf("bubbles: sizeMin %v > sizeMax %v", c.Bubbles.SizeMin, c.Bubbles.SizeMax)
	}

	g := c.Grid
	if g.ColsDesktop < 1 || g.ColsTablet < 1 || g.ColsMobile < 1 || g.ColsSmall < 1 {
		return fmt.Errorf("grid: column counts must be at least 1")
	}
	if g.MinScale > g.MaxScale {
		return fmt.Errorf("grid: minScale %v > maxScale %v", g.MinScale, g.MaxScale)
	}
	return nil
}
