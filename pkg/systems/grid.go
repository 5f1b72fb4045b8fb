package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/scrollscene/pkg/components"
	"github.com/gonewx/scrollscene/pkg/config"
	"github.com/gonewx/scrollscene/pkg/utils"
)

// gridScaleEpsilon 网格缩放变化小于该值时不重新应用
const gridScaleEpsilon = 0.0005

// GridLayout 服务卡片网格的布局结果
type GridLayout struct {
	Cols  int
	Rows  int
	Scale float64

	// GapX/GapZ 局部坐标下的间距（已除以缩放，使屏幕间距保持不变）
	GapX float64
	GapZ float64

	// Positions 每张卡片的局部中心位置（XZ 平面）
	Positions []mgl64.Vec3
}

// GridColumns 根据视口像素宽度选择列数
func GridColumns(viewportPx float64, cfg *config.GridConfig) int {
	switch {
	case viewportPx >= cfg.BpDesktopPx:
		return cfg.ColsDesktop
	case viewportPx >= cfg.BpTabletPx:
		return cfg.ColsTablet
	case viewportPx >= cfg.BpMobilePx:
		return cfg.ColsMobile
	default:
		return cfg.ColsSmall
	}
}

// LayoutServicesGrid 计算卡片网格布局
//
// 参数:
//   - viewportPx: 视口像素宽度（决定列数）
//   - worldWidth: 网格所在深度处的可见世界宽度
//   - cfg: 网格配置
//   - n: 卡片数量
func LayoutServicesGrid(viewportPx, worldWidth float64, cfg *config.GridConfig, n int) GridLayout {
	cols := GridColumns(viewportPx, cfg)
	if n > 0 && cols > n {
		cols = n
	}
	rows := 0
	if n > 0 {
		rows = int(math.Ceil(float64(n) / float64(cols)))
	}

	rawWidth := float64(cols)*cfg.CardWidth + float64(cols-1)*cfg.GapX
	var scale float64
	if cfg.AutoFit {
		scale = worldWidth / math.Max(1e-6, rawWidth+cfg.FitPadding) * cfg.AutoFitFactor
	} else {
		scale = worldWidth / cfg.BaseWidth
	}
	scale *= cfg.UIScale
	if cfg.MobileFocus && viewportPx < cfg.BpTabletPx {
		scale *= cfg.MobileBoost
	}
	scale = utils.Clamp(scale, cfg.MinScale, cfg.MaxScale)

	l := GridLayout{
		Cols:      cols,
		Rows:      rows,
		Scale:     scale,
		GapX:      cfg.GapX / scale,
		GapZ:      cfg.GapZ / scale,
		Positions: make([]mgl64.Vec3, n),
	}

	totalW := float64(cols)*cfg.CardWidth + float64(cols-1)*l.GapX
	totalD := float64(rows)*cfg.CardHeight + float64(rows-1)*l.GapZ
	for i := 0; i < n; i++ {
		col, row := i%cols, i/cols
		x := -totalW/2 + cfg.CardWidth/2 + float64(col)*(cfg.CardWidth+l.GapX)
		z := -totalD/2 + cfg.CardHeight/2 + float64(row)*(cfg.CardHeight+l.GapZ)
		l.Positions[i] = mgl64.Vec3{x, 0, z}
	}
	return l
}

// GridSystem 服务卡片网格
//
// 视口变化时重新布局；每帧对悬停卡片做缩放和抬升的阻尼动画。
type GridSystem struct {
	cfg    *config.GridConfig
	cards  []components.CardComponent
	layout GridLayout

	// appliedScale 最近一次应用到网格根节点的缩放
	appliedScale float64
}

// NewGridSystem 创建网格系统，卡片标题来自配置
func NewGridSystem(cfg *config.GridConfig) *GridSystem {
	gs := &GridSystem{cfg: cfg, cards: make([]components.CardComponent, len(cfg.Titles))}
	for i, title := range cfg.Titles {
		gs.cards[i] = components.CardComponent{Title: title, Scale: 1}
	}
	return gs
}

// Resize 视口变化后重新布局
func (gs *GridSystem) Resize(viewportPx, worldWidth float64) {
	gs.layout = LayoutServicesGrid(viewportPx, worldWidth, gs.cfg, len(gs.cards))
	for i := range gs.cards {
		gs.cards[i].Position = gs.layout.Positions[i]
	}
	if math.Abs(gs.layout.Scale-gs.appliedScale) > gridScaleEpsilon {
		gs.appliedScale = gs.layout.Scale
	}
}

// Update 推进悬停动画
//
// 参数:
//   - dt: 帧间隔
//   - hovered: 悬停卡片下标，-1 表示没有
func (gs *GridSystem) Update(dt float64, hovered int) {
	alpha := utils.ExpAlpha(dt, gs.cfg.HoverHz)
	for i := range gs.cards {
		c := &gs.cards[i]
		targetScale, targetLift := 1.0, 0.0
		if i == hovered {
			targetScale, targetLift = gs.cfg.HoverScale, gs.cfg.HoverLift
		}
		c.Scale += (targetScale - c.Scale) * alpha
		c.Lift += (targetLift - c.Lift) * alpha
	}
}

// Cards 只读访问卡片
func (gs *GridSystem) Cards() []components.CardComponent { return gs.cards }

// Layout 当前布局
func (gs *GridSystem) Layout() GridLayout { return gs.layout }

// Scale 已应用的网格缩放
func (gs *GridSystem) Scale() float64 { return gs.appliedScale }

// Origin 网格世界坐标原点
func (gs *GridSystem) Origin() mgl64.Vec3 { return gs.cfg.Origin.Vec() }
