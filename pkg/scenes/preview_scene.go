package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/scrollscene/pkg/config"
	"github.com/gonewx/scrollscene/pkg/game"
	"github.com/gonewx/scrollscene/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 输入参数
const (
	wheelPixels   = 120.0 // 一格滚轮对应的像素
	keyScrollStep = 0.02  // 方向键每帧滚动的偏移
	pageStep      = 0.25  // PageUp/PageDown 跳转的偏移
)

// 首屏标题文字
var headlineText = [3]string{"Good visual", "with tons", "of creativity"}

// 跳转到各分区的偏移
var sectionOffsets = []float64{0, 0.64, 1}

var (
	colorBackground = color.RGBA{R: 12, G: 22, B: 38, A: 255}
	colorGrid       = color.RGBA{R: 40, G: 60, B: 90, A: 255}
	colorRedFish    = color.RGBA{R: 230, G: 70, B: 60, A: 255}
	colorBlackFish  = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	colorFishRim    = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	colorCard       = color.RGBA{R: 200, G: 210, B: 230, A: 255}
	colorCardHover  = color.RGBA{R: 255, G: 210, B: 90, A: 255}
	colorLight      = color.RGBA{R: 255, G: 240, B: 150, A: 255}
	colorScrollBar  = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	colorScrollPos  = color.RGBA{R: 255, G: 255, B: 255, A: 200}
)

// PreviewScene 滚动场景的桌面预览
//
// 把滚轮和键盘输入转换为滚动偏移，驱动 Experience，
// 并用透视投影把镜头、鱼、气泡、卡片画成示意图。
type PreviewScene struct {
	cfg      *config.SceneConfig
	settings *game.SettingsManager
	watcher  *config.Watcher

	exp    *game.Experience
	driver *systems.ScrollDriver
	frame  game.Frame

	width, height int
	elapsed       float64
	paused        bool
	hovered       int
	progress      float64

	// 拖动滚动（触摸或按住鼠标左键）
	drag DragTracker
}

// NewPreviewScene 创建预览场景
//
// 参数:
//   - cfg: 场景配置
//   - settings: 预览设置管理器
//   - watcher: 配置监听器，可为 nil（不热重载）
//   - width, height: 逻辑屏幕尺寸
func NewPreviewScene(cfg *config.SceneConfig, settings *game.SettingsManager, watcher *config.Watcher, width, height int) (*PreviewScene, error) {
	s := settings.GetSettings()
	ps := &PreviewScene{
		cfg:      cfg,
		settings: settings,
		watcher:  watcher,
		driver:   systems.NewScrollDriver(s.ScrollPages, s.ScrollDamping),
		width:    width,
		height:   height,
		hovered:  -1,
	}
	if err := ps.rebuild(cfg); err != nil {
		return nil, err
	}
	return ps, nil
}

func (ps *PreviewScene) options(cfg *config.SceneConfig) game.Options {
	return game.OptionsFor(cfg, float64(ps.width), float64(ps.height), ebiten.Monitor().DeviceScaleFactor())
}

// rebuild 用新配置重建场景；运动状态是临时的，不需要迁移
func (ps *PreviewScene) rebuild(cfg *config.SceneConfig) error {
	exp, err := game.NewExperience(cfg, ps.options(cfg))
	if err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}
	exp.SetProgressListener(systems.ProgressFunc(func(p float64) { ps.progress = p }))
	ps.cfg = cfg
	ps.exp = exp
	ps.progress = 0
	ps.frame = exp.Frame()
	return nil
}

// Update 处理输入并推进一帧
func (ps *PreviewScene) Update(deltaTime float64) {
	ps.pollConfig()
	ps.handleInput()

	if ps.paused {
		deltaTime = 0
	}
	ps.elapsed += deltaTime

	offset := ps.driver.Update(deltaTime)
	ps.exp.SetHovered(ps.hovered)
	ps.frame = ps.exp.Update(deltaTime, ps.elapsed, offset)
}

func (ps *PreviewScene) pollConfig() {
	if ps.watcher == nil {
		return
	}
	select {
	case cfg := <-ps.watcher.Updates():
		if err := ps.rebuild(cfg); err != nil {
			log.Printf("[PreviewScene] Reload rejected: %v", err)
			return
		}
		log.Printf("[PreviewScene] Scene rebuilt from reloaded config")
	default:
	}
}

func (ps *PreviewScene) handleInput() {
	_, wy := ebiten.Wheel()
	if wy != 0 {
		ps.driver.Wheel(-wy*wheelPixels, float64(ps.height))
	}

	pointer := ps.handleDrag()

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyDown):
		ps.driver.SetTarget(ps.driver.Target() + keyScrollStep)
	case ebiten.IsKeyPressed(ebiten.KeyUp):
		ps.driver.SetTarget(ps.driver.Target() - keyScrollStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		ps.driver.SetTarget(ps.driver.Target() + pageStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		ps.driver.SetTarget(ps.driver.Target() - pageStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		ps.driver.SetTarget(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		ps.driver.SetTarget(1)
	}
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if inpututil.IsKeyJustPressed(key) {
			ps.driver.SetTarget(sectionOffsets[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		ps.paused = !ps.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		ps.settings.SetShowDebug(!ps.settings.GetSettings().ShowDebug)
	}

	// 触摸没有悬停
	ps.hovered = -1
	if !pointer.Touch {
		ps.hovered = ps.cardAt(float64(pointer.X), float64(pointer.Y))
	}
}

// handleDrag 拖动滚动页面：指针上移时向下滚动
// 返回当前指针状态，供悬停检测使用
func (ps *PreviewScene) handleDrag() PointerSample {
	p := ReadPointer()
	if _, dy := ps.drag.Feed(p); dy != 0 {
		ps.driver.Wheel(float64(-dy), float64(ps.height))
	}
	return p
}

// cardAt 返回光标下的卡片下标（使用上一帧的投影），没有时返回 -1
func (ps *PreviewScene) cardAt(mx, my float64) int {
	proj := NewProjector(ps.frame.Camera, ps.width, ps.height)
	for i := range ps.frame.Grid.Cards {
		minX, minY, maxX, maxY, ok := ps.cardBounds(proj, i)
		if ok && mx >= minX && mx <= maxX && my >= minY && my <= maxY {
			return i
		}
	}
	return -1
}

// cardCorners 卡片四个角的世界坐标
func (ps *PreviewScene) cardCorners(i int) [4]mgl64.Vec3 {
	g := ps.frame.Grid
	c := g.Cards[i]
	hw := ps.cfg.Grid.CardWidth / 2 * c.Scale
	hd := ps.cfg.Grid.CardHeight / 2 * c.Scale
	center := c.Position.Add(mgl64.Vec3{0, c.Lift, 0})
	world := func(dx, dz float64) mgl64.Vec3 {
		return g.Origin.Add(center.Add(mgl64.Vec3{dx, 0, dz}).Mul(g.Scale))
	}
	return [4]mgl64.Vec3{world(-hw, -hd), world(hw, -hd), world(hw, hd), world(-hw, hd)}
}

func (ps *PreviewScene) cardBounds(proj Projector, i int) (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, corner := range ps.cardCorners(i) {
		x, y, _, visible := proj.Project(corner)
		if !visible {
			return 0, 0, 0, 0, false
		}
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return minX, minY, maxX, maxY, true
}

// Draw 绘制示意图
func (ps *PreviewScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	proj := NewProjector(ps.frame.Camera, ps.width, ps.height)

	ps.drawGround(screen, proj)
	ps.drawCards(screen, proj)
	ps.drawText(screen, proj)
	ps.drawBubbles(screen, proj)
	ps.drawFish(screen, proj)
	ps.drawLight(screen, proj)
	ps.drawScrollBar(screen)

	if ps.settings.GetSettings().ShowDebug {
		ps.drawDebug(screen)
	}
}

func (ps *PreviewScene) line(screen *ebiten.Image, proj Projector, a, b mgl64.Vec3, width float32, clr color.Color) {
	x0, y0, _, ok0 := proj.Project(a)
	x1, y1, _, ok1 := proj.Project(b)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
}

// drawGround 在地面高度画参考网格
func (ps *PreviewScene) drawGround(screen *ebiten.Image, proj Projector) {
	y := ps.exp.Layout().GroundY
	const half, step = 30.0, 3.0
	for v := -half; v <= half; v += step {
		ps.line(screen, proj, mgl64.Vec3{v, y, -half}, mgl64.Vec3{v, y, half}, 1, colorGrid)
		ps.line(screen, proj, mgl64.Vec3{-half, y, v}, mgl64.Vec3{half, y, v}, 1, colorGrid)
	}
}

func (ps *PreviewScene) drawCards(screen *ebiten.Image, proj Projector) {
	for i, card := range ps.frame.Grid.Cards {
		clr := colorCard
		if i == ps.hovered {
			clr = colorCardHover
		}
		corners := ps.cardCorners(i)
		for k := range corners {
			ps.line(screen, proj, corners[k], corners[(k+1)%4], 2, clr)
		}
		if x, y, _, ok := proj.Project(ps.frame.Grid.Origin.Add(card.Position.Mul(ps.frame.Grid.Scale))); ok {
			ebitenutil.DebugPrintAt(screen, card.Title, int(x)-len(card.Title)*3, int(y)-8)
		}
	}
}

func (ps *PreviewScene) drawText(screen *ebiten.Image, proj Projector) {
	scale := ps.exp.Layout().ResponsiveScale
	for i, h := range ps.frame.Text.Headlines {
		if h.Opacity < 0.05 {
			continue
		}
		if x, y, _, ok := proj.Project(mgl64.Vec3{h.X, h.Y, 0}.Mul(scale)); ok {
			label := fmt.Sprintf("%s (%.0f%%)", headlineText[i], h.Opacity*100)
			ebitenutil.DebugPrintAt(screen, label, int(x)-len(label)*3, int(y))
		}
	}

	if ps.frame.Text.SubtextOpacity > 0.05 {
		if x, y, _, ok := proj.Project(mgl64.Vec3{0, ps.frame.Text.SubtextY, 0}.Mul(scale)); ok {
			ebitenutil.DebugPrintAt(screen, "Location  |  Design-driven  |  Email", int(x)-110, int(y))
		}
	}

	about := ps.exp.Layout().AboutTextPos.Add(mgl64.Vec3{0, ps.frame.Text.AboutY, 0})
	if x, y, _, ok := proj.Project(about); ok {
		ebitenutil.DebugPrintAt(screen, "ABOUT", int(x), int(y))
	}

	reveal := subtextReveal(ps.progress)
	if reveal.Opacity > 0.05 {
		sub := ps.exp.Layout().AboutSubtextPos.Add(mgl64.Vec3{reveal.X, reveal.Y, 0})
		if x, y, _, ok := proj.Project(sub); ok {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("about subtext (%.0f%%)", reveal.Opacity*100), int(x), int(y))
		}
	}
}

func (ps *PreviewScene) drawBubbles(screen *ebiten.Image, proj Projector) {
	for _, b := range ps.frame.Bubbles {
		x, y, depth, ok := proj.Project(b.Position)
		if !ok {
			continue
		}
		r := float32(b.Size * proj.PixelsPerUnit(depth) / 2)
		if r < 0.5 {
			continue
		}
		clr := color.RGBA{
			R: uint8(255 * clamp01(b.Color[0])),
			G: uint8(255 * clamp01(b.Color[1])),
			B: uint8(255 * clamp01(b.Color[2])),
			A: 160,
		}
		vector.StrokeCircle(screen, float32(x), float32(y), r, 1, clr, true)
	}
}

func (ps *PreviewScene) drawFish(screen *ebiten.Image, proj Projector) {
	for _, f := range ps.frame.Fish {
		x, y, depth, ok := proj.Project(f.Position)
		if !ok {
			continue
		}
		clr := colorRedFish
		if f.Name == "black" {
			clr = colorBlackFish
		}
		r := float32(math.Max(3, 0.6*proj.PixelsPerUnit(depth)))
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, clr, true)
		vector.StrokeCircle(screen, float32(x), float32(y), r, 1, colorFishRim, true)

		// 朝向：鱼的局部 +X 为头部
		head := mgl64.Rotate3DY(f.Yaw).Mul3x1(mgl64.Vec3{1, 0, 0})
		ps.line(screen, proj, f.Position, f.Position.Add(head.Mul(1.2)), 2, colorFishRim)
	}
}

func (ps *PreviewScene) drawLight(screen *ebiten.Image, proj Projector) {
	x, y, _, ok := proj.Project(ps.frame.Light.Target)
	if !ok {
		return
	}
	const s = 6
	vector.StrokeLine(screen, float32(x-s), float32(y), float32(x+s), float32(y), 2, colorLight, true)
	vector.StrokeLine(screen, float32(x), float32(y-s), float32(x), float32(y+s), 2, colorLight, true)
}

func (ps *PreviewScene) drawScrollBar(screen *ebiten.Image) {
	const barW, margin = 6, 8
	h := float32(ps.height - 2*margin)
	x := float32(ps.width - margin - barW)
	vector.DrawFilledRect(screen, x, margin, barW, h, colorScrollBar, true)
	thumbY := float32(margin) + h*float32(ps.frame.Offset) - 10
	vector.DrawFilledRect(screen, x-2, thumbY, barW+4, 20, colorScrollPos, true)
}

func (ps *PreviewScene) drawDebug(screen *ebiten.Image) {
	f := ps.frame
	lines := []string{
		fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("offset: %.3f (target %.3f)  velocity: %+.2f", f.Offset, ps.driver.Target(), f.Velocity),
		fmt.Sprintf("section: %s  phase: %.3f  holdAbout: %v", f.Section, f.Phase, f.HoldAbout),
		fmt.Sprintf("blend: %.3f  aboutProgress: %.2f", f.Blend, f.AboutProgress),
		fmt.Sprintf("camera: (%.2f, %.2f, %.2f)  locked: %v", f.Camera.Position[0], f.Camera.Position[1], f.Camera.Position[2], f.Camera.Locked),
		fmt.Sprintf("shadow: half=%.1f rev=%d  bubbles: %d", f.Light.ShadowHalfExtent, f.Light.ShadowRevision, len(f.Bubbles)),
		"wheel/arrows: scroll  1/2/3: sections  P: pause  D: debug",
	}
	if ps.paused {
		lines = append(lines, "PAUSED")
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 10, 10+i*16)
	}
}

// Resize 逻辑屏幕尺寸变化
func (ps *PreviewScene) Resize(width, height int) {
	if width == ps.width && height == ps.height {
		return
	}
	ps.width, ps.height = width, height
	ps.exp.Resize(ps.options(ps.cfg))
}

// subtextReveal About 副文字随节流后的进度自左向右出现
func subtextReveal(progress float64) systems.RevealState {
	return systems.Reveal(systems.RevealX, &progress, false)
}

// SaveOnExit 实现 Saveable：保存窗口尺寸和滚动设置
func (ps *PreviewScene) SaveOnExit() bool {
	ps.settings.SetWindowSize(ps.width, ps.height)
	ps.settings.SetScrollPages(ps.driver.Pages)
	ps.settings.SetScrollDamping(ps.driver.Damping)
	if err := ps.settings.Save(); err != nil {
		log.Printf("[PreviewScene] Failed to save settings: %v", err)
		return false
	}
	return true
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
