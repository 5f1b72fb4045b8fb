package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/scrollscene/pkg/config"
)

// Viewport 视口在世界空间中的尺寸（镜头到原点距离处）
type Viewport struct {
	Width  float64
	Height float64
}

// Layout 由视口派生的响应式布局
type Layout struct {
	// AboutTextPos About 文字块锚点，也是鱼的 About 椭圆中心和灯光目标
	AboutTextPos mgl64.Vec3
	// AboutSubtextPos About 副文字锚点
	AboutSubtextPos mgl64.Vec3
	// GroundY 地面高度
	GroundY float64

	// ResponsiveScale 文字缩放
	ResponsiveScale float64

	// AboutRadiusX/AboutRadiusZ 鱼在 About 区的椭圆半径
	AboutRadiusX float64
	AboutRadiusZ float64

	Narrow  bool
	GutterX float64

	// LowPerf 低性能模式：高像素比或窄屏
	LowPerf       bool
	ShadowMapSize int
	EnvResolution int
}

const (
	narrowWidth       = 8.0
	highPixelRatio    = 1.5
	responsiveBaseW   = 12.0
	responsiveFactor  = 0.8
	gutterMin         = 3.2
	gutterRatio       = 0.22
	lowPerfEnvRes     = 32
	highPerfEnvRes    = 64
	subtextOffsetX    = 5.0
	subtextOffsetY    = -3.0
	groundBelowAboutY = 10.0
)

// ComputeLayout 计算响应式布局
//
// 参数:
//   - vp: 视口世界尺寸
//   - pixelRatio: 设备像素比
//   - cfg: 场景配置（鱼的椭圆参数与阴影贴图尺寸）
func ComputeLayout(vp Viewport, pixelRatio float64, cfg *config.SceneConfig) Layout {
	w, h := vp.Width, vp.Height
	l := Layout{
		AboutTextPos:    mgl64.Vec3{-w/2 + 2, -2 * h, 0},
		ResponsiveScale: math.Min(w/responsiveBaseW, 1) * responsiveFactor,
		AboutRadiusX:    w * cfg.Fish.AboutRadiusXK,
		AboutRadiusZ:    cfg.Fish.AboutRadiusZ,
		Narrow:          w < narrowWidth,
		LowPerf:         pixelRatio > highPixelRatio || w < narrowWidth,
	}

	if !l.Narrow {
		l.GutterX = math.Max(gutterMin, gutterRatio*w)
	}
	about := l.AboutTextPos
	subY := about.Y()
	if l.Narrow {
		subY -= 1
	}
	l.AboutSubtextPos = mgl64.Vec3{about.X() + subtextOffsetX + l.GutterX, subY + subtextOffsetY, about.Z()}
	l.GroundY = about.Y() - groundBelowAboutY

	if l.LowPerf {
		l.ShadowMapSize = cfg.Light.LowPerfMapSize
		l.EnvResolution = lowPerfEnvRes
	} else {
		l.ShadowMapSize = cfg.Light.HighPerfMapSize
		l.EnvResolution = highPerfEnvRes
	}
	return l
}

// ViewportAt 透视镜头在 distance 处可见的世界尺寸
//
// 参数:
//   - distance: 到镜头的距离
//   - fovDeg: 垂直视角（度）
//   - aspect: 宽高比
func ViewportAt(distance, fovDeg, aspect float64) Viewport {
	h := 2 * distance * math.Tan(mgl64.DegToRad(fovDeg)/2)
	return Viewport{Width: h * aspect, Height: h}
}

// WorldWidthAt 透视镜头在 distance 处可见的世界宽度
func WorldWidthAt(distance, fovDeg, aspect float64) float64 {
	return ViewportAt(distance, fovDeg, aspect).Width
}
