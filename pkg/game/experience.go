package game

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/scrollscene/pkg/components"
	"github.com/gonewx/scrollscene/pkg/config"
	"github.com/gonewx/scrollscene/pkg/systems"
	"github.com/gonewx/scrollscene/pkg/utils"
)

// Options 构造 Experience 时的视口与运行参数
type Options struct {
	// Viewport 视口在世界空间中的尺寸
	Viewport systems.Viewport
	// PixelRatio 设备像素比
	PixelRatio float64
	// ViewportPx 视口像素宽度（服务网格断点）
	ViewportPx float64
	// Seed 随机种子（气泡和鱼的初始相位）
	Seed int64
	// Listener 节流后的 About 进度监听者，可为 nil
	Listener systems.ProgressListener
}

// DefaultOptions 1440x810 像素视口、像素比 1
func DefaultOptions(cfg *config.SceneConfig) Options {
	return OptionsFor(cfg, 1440, 810, 1)
}

// OptionsFor 由视口像素尺寸计算 Options
//
// 世界空间视口取 Hero 镜头到原点距离处的透视截面，宽高比与像素视口一致。
// 非正的尺寸按 16:9 处理，非正的像素比按 1 处理。
func OptionsFor(cfg *config.SceneConfig, widthPx, heightPx, pixelRatio float64) Options {
	aspect := 16.0 / 9.0
	if widthPx > 0 && heightPx > 0 {
		aspect = widthPx / heightPx
	} else {
		widthPx = 1440
	}
	if !(pixelRatio > 0) {
		pixelRatio = 1
	}
	distance := cfg.Camera.PositionAnchors[0].Vec().Len()
	return Options{
		Viewport:   systems.ViewportAt(distance, cfg.Camera.FOV, aspect),
		PixelRatio: pixelRatio,
		ViewportPx: widthPx,
		Seed:       1,
	}
}

// Experience 滚动场景的全部状态和系统
//
// 所有可变状态都由 Experience 持有，只在 Update 中按固定顺序修改：
// 滚动采样 → 分区 → 镜头 → 文字 → blend → 鱼 → 气泡 → 灯光 → 网格。
// 渲染端在 Update 返回后读取 Frame，不直接访问内部状态。
// Experience 不是并发安全的，调用方必须在同一个帧循环里使用它。
type Experience struct {
	cfg    *config.SceneConfig
	layout systems.Layout

	scroll  components.ScrollComponent
	section components.SectionComponent
	camera  components.CameraComponent
	blend   components.BlendComponent
	red     components.FishComponent
	black   components.FishComponent
	text    components.TextComponent
	light   components.LightComponent

	scrollSystem   *systems.ScrollSystem
	sectionSystem  *systems.SectionSystem
	cameraSystem   *systems.CameraSystem
	blendSystem    *systems.BlendSystem
	fishSystem     *systems.FishSystem
	textSystem     *systems.TextSystem
	lightingSystem *systems.LightingSystem
	gridSystem     *systems.GridSystem
	redBubbles     *systems.BubbleSystem
	blackBubbles   *systems.BubbleSystem

	hovered int
	phase   systems.CameraPhase
	elapsed float64
}

// NewExperience 创建场景
//
// 参数:
//   - cfg: 场景配置（应已通过 Validate）
//   - opts: 视口与运行参数
//
// 返回:
//   - error: 配置无法构成镜头路径时返回错误
func NewExperience(cfg *config.SceneConfig, opts Options) (*Experience, error) {
	e := &Experience{cfg: cfg, hovered: -1}
	e.layout = systems.ComputeLayout(opts.Viewport, opts.PixelRatio, cfg)

	cameraSystem, err := systems.NewCameraSystem(cfg, &e.camera)
	if err != nil {
		return nil, fmt.Errorf("failed to build camera paths: %w", err)
	}
	e.cameraSystem = cameraSystem

	e.red.Name = "red"
	e.black.Name = "black"
	e.scrollSystem = systems.NewScrollSystem(&e.scroll, &cfg.Scroll)
	e.sectionSystem = systems.NewSectionSystem(&e.section, cfg)
	e.blendSystem = systems.NewBlendSystem(&e.blend, &cfg.Timing, opts.Listener)
	e.fishSystem = systems.NewFishSystem(&cfg.Fish, &e.red, &e.black, e.layout, rand.New(rand.NewSource(opts.Seed+2)))
	e.textSystem = systems.NewTextSystem(cfg, &e.text)
	e.lightingSystem = systems.NewLightingSystem(&cfg.Light, &cfg.Timing, &e.light, e.layout.AboutTextPos)

	e.gridSystem = systems.NewGridSystem(&cfg.Grid)
	e.resizeGrid(opts)

	if cfg.Bubbles.Enabled {
		e.redBubbles = systems.NewBubbleSystem(&cfg.Bubbles, rand.New(rand.NewSource(opts.Seed)))
		e.blackBubbles = systems.NewBubbleSystem(&cfg.Bubbles, rand.New(rand.NewSource(opts.Seed+1)))
	}

	log.Printf("[Experience] Created (viewport %.2fx%.2f, lowPerf=%v)",
		opts.Viewport.Width, opts.Viewport.Height, e.layout.LowPerf)
	return e, nil
}

func (e *Experience) resizeGrid(opts Options) {
	distance := e.cfg.Camera.PositionAnchors[0].Vec().Len()
	aspect := 1.0
	if opts.Viewport.Height > 0 {
		aspect = opts.Viewport.Width / opts.Viewport.Height
	}
	e.gridSystem.Resize(opts.ViewportPx, systems.WorldWidthAt(distance, e.cfg.Camera.FOV, aspect))
}

// Resize 视口变化后重新计算布局
func (e *Experience) Resize(opts Options) {
	e.layout = systems.ComputeLayout(opts.Viewport, opts.PixelRatio, e.cfg)
	e.fishSystem.SetLayout(e.layout)
	e.lightingSystem.SetAnchor(e.layout.AboutTextPos)
	e.resizeGrid(opts)
}

// SetProgressListener 替换 About 进度监听者
func (e *Experience) SetProgressListener(l systems.ProgressListener) { e.blendSystem.SetListener(l) }

// SetHovered 设置悬停的服务卡片，-1 表示没有
func (e *Experience) SetHovered(card int) { e.hovered = card }

// Config 当前配置
func (e *Experience) Config() *config.SceneConfig { return e.cfg }

// Layout 当前布局
func (e *Experience) Layout() systems.Layout { return e.layout }

// Update 推进一帧
//
// 参数:
//   - frameDelta: 距上一帧的时间（秒），内部截断到 MaxDt
//   - elapsed: 场景时钟（秒），用于分区过渡和通知节流
//   - scrollOffset: 外部滚动偏移 [0,1]，NaN/Inf 时沿用上一帧的值
//
// 返回:
//   - Frame: 本帧的输出快照
func (e *Experience) Update(frameDelta, elapsed, scrollOffset float64) Frame {
	dt := frameDelta
	if !utils.IsFinite(dt) || dt < 0 {
		dt = 0
	}
	dt = math.Min(dt, e.cfg.Timing.MaxDt)
	e.elapsed = elapsed

	offset := e.scrollSystem.Sample(scrollOffset, dt)
	e.phase = systems.MapPhase(offset, e.cfg.Camera)

	change := e.sectionSystem.Update(offset, elapsed)
	if change.IsFastReverse(e.scroll.AvgVelocity, e.cfg.Scroll.FastScrollThreshold) {
		e.cameraSystem.ArmLock()
	}
	e.cameraSystem.Update(dt, offset, e.scroll.Velocity, e.section.Current, e.section.TransitionProgress)

	e.textSystem.Update(offset)
	blend := e.blendSystem.Update(dt, e.phase.T, elapsed*1000)

	e.fishSystem.AdvancePhases(dt, blend)
	e.fishSystem.Update(dt, blend)
	if e.redBubbles != nil {
		e.redBubbles.Update(dt, e.red.Position)
		e.blackBubbles.Update(dt, e.black.Position)
	}

	e.lightingSystem.Update(blend)
	e.gridSystem.Update(dt, e.hovered)

	e.scrollSystem.Commit()
	return e.Frame()
}

// Frame 返回当前状态的快照（不推进时间）
func (e *Experience) Frame() Frame {
	f := Frame{
		Elapsed:       e.elapsed,
		Offset:        e.scroll.Offset,
		Velocity:      e.scroll.Velocity,
		Section:       e.section.Current,
		Phase:         e.phase.T,
		HoldAbout:     e.phase.HoldAbout,
		Blend:         e.blend.Value,
		AboutProgress: e.blend.Emitted,
		Camera: CameraFrame{
			Position:    e.camera.CurrentPos,
			Look:        e.camera.CurrentLook,
			Orientation: quatXYZW(e.camera.Orientation),
			Forward:     systems.Forward(e.camera.Orientation),
			FOV:         e.cfg.Camera.FOV,
			Locked:      e.camera.IsLocked,
		},
		Fish: []FishFrame{fishFrame(&e.red), fishFrame(&e.black)},
		Text: TextFrame{
			SubtextY:       e.text.SubtextY,
			SubtextOpacity: e.text.SubtextOpacity,
			AboutY:         e.text.AboutY,
		},
		Light: LightFrame{
			Target:           e.light.Target,
			ShadowHalfExtent: e.light.ShadowHalfExtent,
			ShadowRevision:   e.light.ShadowRevision,
			ShadowMapSize:    e.layout.ShadowMapSize,
		},
		Grid: GridFrame{
			Origin: e.gridSystem.Origin(),
			Scale:  e.gridSystem.Scale(),
		},
	}

	for i, h := range e.text.Headlines {
		f.Text.Headlines[i] = HeadlineFrame{X: h.X, Y: h.Y, Opacity: h.Opacity}
	}
	for _, c := range e.gridSystem.Cards() {
		f.Grid.Cards = append(f.Grid.Cards, CardFrame{Title: c.Title, Position: c.Position, Scale: c.Scale, Lift: c.Lift})
	}
	if e.redBubbles != nil {
		f.Bubbles = appendBubbles(f.Bubbles, e.redBubbles.Bubbles())
		f.Bubbles = appendBubbles(f.Bubbles, e.blackBubbles.Bubbles())
	}
	return f
}

func fishFrame(f *components.FishComponent) FishFrame {
	return FishFrame{Name: f.Name, Position: f.Position, Yaw: f.Yaw, Pitch: f.Pitch, Phase: f.PathAngle}
}

func appendBubbles(dst []BubbleFrame, bubbles []components.BubbleComponent) []BubbleFrame {
	for i := range bubbles {
		b := &bubbles[i]
		if !b.Active() {
			continue
		}
		dst = append(dst, BubbleFrame{Position: b.Position, Size: b.Size, Color: b.Color})
	}
	return dst
}

// quatXYZW 转换为 (x, y, z, w) 顺序，与常见渲染引擎一致
func quatXYZW(q mgl64.Quat) [4]float64 {
	return [4]float64{q.V[0], q.V[1], q.V[2], q.W}
}
