package config

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// 场景配置
// 本文件定义滚动场景的全部可调参数。默认值与线上页面保持一致，
// 任何字段都可以通过 YAML/TOML 配置文件覆盖（见 LoadSceneConfig）。

// Point3 配置文件中的三维坐标
type Point3 struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
	Z float64 `yaml:"z" toml:"z"`
}

// Vec 转换为 mgl64.Vec3
func (p Point3) Vec() mgl64.Vec3 { return mgl64.Vec3{p.X, p.Y, p.Z} }

// P3 构造 Point3
func P3(x, y, z float64) Point3 { return Point3{X: x, Y: y, Z: z} }

// SceneConfig 场景总配置
type SceneConfig struct {
	Camera  CameraConfig  `yaml:"camera" toml:"camera"`
	Fish    FishConfig    `yaml:"fish" toml:"fish"`
	Damping DampingConfig `yaml:"damping" toml:"damping"`
	Scroll  ScrollConfig  `yaml:"scroll" toml:"scroll"`
	Timing  TimingConfig  `yaml:"timing" toml:"timing"`
	Text    TextConfig    `yaml:"text" toml:"text"`
	Light   LightConfig   `yaml:"light" toml:"light"`
	Bubbles BubbleConfig  `yaml:"bubbles" toml:"bubbles"`
	Grid    GridConfig    `yaml:"grid" toml:"grid"`
}

// CameraConfig 镜头路径与滚动分段阈值
//
// 滚动偏移 [0,1] 被分为四段：
//
//	[0, HeroHoldEnd]              停留在 Hero
//	(HeroHoldEnd, HeroMoveEnd]    缓动移动到 About
//	(HeroMoveEnd, ServicesStart]  停留在 About
//	(ServicesStart, 1]            缓动移动到 Services
//
// 必须满足 HeroHoldEnd < HeroMoveEnd < ServicesStart，否则映射退化（不会崩溃）。
type CameraConfig struct {
	HeroHoldEnd   float64 `yaml:"heroHoldEnd" toml:"heroHoldEnd"`
	HeroMoveEnd   float64 `yaml:"heroMoveEnd" toml:"heroMoveEnd"`
	ServicesStart float64 `yaml:"servicesStart" toml:"servicesStart"`

	// 镜头位置锚点：Hero, About, Services
	PositionAnchors []Point3 `yaml:"positionAnchors" toml:"positionAnchors"`
	// 镜头注视点锚点：Hero, About（向下看）, Services（平移）
	LookAnchors []Point3 `yaml:"lookAnchors" toml:"lookAnchors"`

	// FOV 垂直视角（度），与画布相机一致
	FOV float64 `yaml:"fov" toml:"fov"`
}

// FishConfig 鱼的运动学参数
type FishConfig struct {
	OrbitRadius    float64 `yaml:"orbitRadius" toml:"orbitRadius"`       // Hero 水平环绕半径
	OrbitSpeed     float64 `yaml:"orbitSpeed" toml:"orbitSpeed"`         // 相位角速度（弧度/秒）
	TurnSpeed      float64 `yaml:"turnSpeed" toml:"turnSpeed"`           // 偏航跟随速度
	FollowHz       float64 `yaml:"followHz" toml:"followHz"`             // 位置跟随衰减率
	PhaseTarget    float64 `yaml:"phaseTarget" toml:"phaseTarget"`       // 黑鱼相对红鱼的目标相位差
	PhaseStiffness float64 `yaml:"phaseStiffness" toml:"phaseStiffness"` // 相位耦合刚度
	FollowerSpeed  float64 `yaml:"followerSpeed" toml:"followerSpeed"`   // 黑鱼相位速度倍率
	PitchGain      float64 `yaml:"pitchGain" toml:"pitchGain"`           // 垂直速度到俯仰角的增益
	PitchHz        float64 `yaml:"pitchHz" toml:"pitchHz"`               // 俯仰角跟随速度
	AboutRadiusZ   float64 `yaml:"aboutRadiusZ" toml:"aboutRadiusZ"`     // About 椭圆 Z 半径
	AboutRadiusXK  float64 `yaml:"aboutRadiusXK" toml:"aboutRadiusXK"`   // About 椭圆 X 半径 = 视口宽度 * K
	AboutWobble    float64 `yaml:"aboutWobble" toml:"aboutWobble"`       // About 椭圆垂直摆动幅度
	LeaderStart    Point3  `yaml:"leaderStart" toml:"leaderStart"`       // 红鱼出生位置
	FollowerStart  Point3  `yaml:"followerStart" toml:"followerStart"`   // 黑鱼出生位置
}

// DampingConfig 阻尼参数
type DampingConfig struct {
	UDamp        float64 `yaml:"uDamp" toml:"uDamp"`               // 曲线参数阻尼 U_DAMP
	UDampLocked  float64 `yaml:"uDampLocked" toml:"uDampLocked"`   // 朝向锁定时的曲线参数阻尼
	DampBase     float64 `yaml:"dampBase" toml:"dampBase"`         // 位置/注视点阻尼 DAMP_BASE
	DampHold     float64 `yaml:"dampHold" toml:"dampHold"`         // About 停留区的阻尼 DAMP_HOLD
	EpsSplit     float64 `yaml:"epsSplit" toml:"epsSplit"`         // 拐点吸附带宽
	EpsSplitHold float64 `yaml:"epsSplitHold" toml:"epsSplitHold"` // 停留时的拐点吸附带宽
	SlerpRate    float64 `yaml:"slerpRate" toml:"slerpRate"`       // 俯视朝向的球面插值速率
}

// ScrollConfig 滚动相关阈值
type ScrollConfig struct {
	VHoldMax            float64 `yaml:"vHoldMax" toml:"vHoldMax"`                       // V_HOLD_MAX
	FastScrollThreshold float64 `yaml:"fastScrollThreshold" toml:"fastScrollThreshold"` // FAST_SCROLL_THRESHOLD
	OrientationLockTime float64 `yaml:"orientationLockTime" toml:"orientationLockTime"` // ORIENTATION_LOCK_TIME（秒）
	SectionThreshold    float64 `yaml:"sectionThreshold" toml:"sectionThreshold"`       // SECTION_TRANSITION_THRESHOLD
	TransitionDuration  float64 `yaml:"transitionDuration" toml:"transitionDuration"`   // 分区过渡时长（秒）
	MinVelocityDt       float64 `yaml:"minVelocityDt" toml:"minVelocityDt"`             // 速度计算的最小 dt
}

// TimingConfig 时间步长相关参数
type TimingConfig struct {
	MaxDt         float64 `yaml:"maxDt" toml:"maxDt"`                 // MAX_DT
	BlendHz       float64 `yaml:"blendHz" toml:"blendHz"`             // blend 平滑速率
	BlendStep     float64 `yaml:"blendStep" toml:"blendStep"`         // BLEND_STEP
	BlendUpdateMS float64 `yaml:"blendUpdateMs" toml:"blendUpdateMs"` // BLEND_UPDATE_MS
	LightUpdateT  float64 `yaml:"lightUpdateT" toml:"lightUpdateT"`   // 阴影视锥重算阈值
}

// TextConfig 文字层布局
type TextConfig struct {
	LineHeight        float64  `yaml:"lineHeight" toml:"lineHeight"`
	HeadlineYOffset   float64  `yaml:"headlineYOffset" toml:"headlineYOffset"`
	SubtextInitialY   float64  `yaml:"subtextInitialY" toml:"subtextInitialY"`
	SubtextRise       float64  `yaml:"subtextRise" toml:"subtextRise"`             // 副标题 y = 初始值 + offset * Rise
	AboutDrift        float64  `yaml:"aboutDrift" toml:"aboutDrift"`               // About 块 y = min(offset, servicesStart) * Drift
	HeadlineSlide     float64  `yaml:"headlineSlide" toml:"headlineSlide"`         // 标题水平滑出距离
	HeadlinePositions []Point3 `yaml:"headlinePositions" toml:"headlinePositions"` // 三行标题的初始位置
}

// LightConfig 方向光与阴影
type LightConfig struct {
	Position        Point3  `yaml:"position" toml:"position"`
	Intensity       float64 `yaml:"intensity" toml:"intensity"`
	ShadowWide      float64 `yaml:"shadowWide" toml:"shadowWide"`   // Hero 阴影视锥半宽
	ShadowTight     float64 `yaml:"shadowTight" toml:"shadowTight"` // About 阴影视锥半宽
	ShadowNear      float64 `yaml:"shadowNear" toml:"shadowNear"`
	ShadowFar       float64 `yaml:"shadowFar" toml:"shadowFar"`
	ShadowBias      float64 `yaml:"shadowBias" toml:"shadowBias"`
	ShadowNormBias  float64 `yaml:"shadowNormalBias" toml:"shadowNormalBias"`
	LowPerfMapSize  int     `yaml:"lowPerfMapSize" toml:"lowPerfMapSize"`
	HighPerfMapSize int     `yaml:"highPerfMapSize" toml:"highPerfMapSize"`
}

// BubbleConfig 气泡粒子
type BubbleConfig struct {
	Enabled  bool    `yaml:"enabled" toml:"enabled"`
	Count    int     `yaml:"count" toml:"count"`
	SizeMin  float64 `yaml:"sizeMin" toml:"sizeMin"`
	SizeMax  float64 `yaml:"sizeMax" toml:"sizeMax"`
	Lifespan float64 `yaml:"lifespan" toml:"lifespan"`
	MaxDt    float64 `yaml:"maxDt" toml:"maxDt"`
}

// GridConfig 服务卡片网格
type GridConfig struct {
	Origin        Point3   `yaml:"origin" toml:"origin"`
	CardWidth     float64  `yaml:"cardWidth" toml:"cardWidth"`
	CardHeight    float64  `yaml:"cardHeight" toml:"cardHeight"`
	ColsDesktop   int      `yaml:"colsDesktop" toml:"colsDesktop"`
	ColsTablet    int      `yaml:"colsTablet" toml:"colsTablet"`
	ColsMobile    int      `yaml:"colsMobile" toml:"colsMobile"`
	ColsSmall     int      `yaml:"colsSmall" toml:"colsSmall"`
	BpDesktopPx   float64  `yaml:"bpDesktopPx" toml:"bpDesktopPx"`
	BpTabletPx    float64  `yaml:"bpTabletPx" toml:"bpTabletPx"`
	BpMobilePx    float64  `yaml:"bpMobilePx" toml:"bpMobilePx"`
	GapX          float64  `yaml:"gapX" toml:"gapX"`
	GapZ          float64  `yaml:"gapZ" toml:"gapZ"`
	UIScale       float64  `yaml:"uiScale" toml:"uiScale"`
	BaseWidth     float64  `yaml:"baseWidth" toml:"baseWidth"`
	MinScale      float64  `yaml:"minScale" toml:"minScale"`
	MaxScale      float64  `yaml:"maxScale" toml:"maxScale"`
	AutoFit       bool     `yaml:"autoFit" toml:"autoFit"`
	AutoFitFactor float64  `yaml:"autoFitFactor" toml:"autoFitFactor"`
	FitPadding    float64  `yaml:"fitPadding" toml:"fitPadding"`
	MobileFocus   bool     `yaml:"mobileFocus" toml:"mobileFocus"`
	MobileBoost   float64  `yaml:"mobileBoost" toml:"mobileBoost"`
	HoverScale    float64  `yaml:"hoverScale" toml:"hoverScale"`
	HoverLift     float64  `yaml:"hoverLift" toml:"hoverLift"`
	HoverHz       float64  `yaml:"hoverHz" toml:"hoverHz"`
	Titles        []string `yaml:"titles" toml:"titles"`
}

// DefaultSceneConfig 返回默认场景配置
func DefaultSceneConfig() *SceneConfig {
	const lineHeight, headlineYOffset = 1.5, 0.6
	return &SceneConfig{
		Camera: CameraConfig{
			HeroHoldEnd:   0.20,
			HeroMoveEnd:   0.52,
			ServicesStart: 0.75,
			PositionAnchors: []Point3{
				P3(0, 0, 15),  // Hero
				P3(0, -2, 0),  // About
				P3(15, -2, 0), // Services（向右平移）
			},
			LookAnchors: []Point3{
				P3(0, 0, 0),
				P3(0, -20, 0),
				P3(15, -20, 0),
			},
			FOV: 35,
		},
		Fish: FishConfig{
			OrbitRadius:    8,
			OrbitSpeed:     0.3,
			TurnSpeed:      3,
			FollowHz:       6.0,
			PhaseTarget:    math.Pi,
			PhaseStiffness: 1.6,
			FollowerSpeed:  0.95,
			PitchGain:      0.1,
			PitchHz:        5,
			AboutRadiusZ:   6.0,
			AboutRadiusXK:  0.35,
			AboutWobble:    0.5,
			LeaderStart:    P3(-0.5, -1, 1),
			FollowerStart:  P3(0.5, 1, -1),
		},
		Damping: DampingConfig{
			UDamp:        6.0,
			UDampLocked:  2.0,
			DampBase:     5,
			DampHold:     12,
			EpsSplit:     1e-3,
			EpsSplitHold: 1e-4,
			SlerpRate:    8,
		},
		Scroll: ScrollConfig{
			VHoldMax:            0.8,
			FastScrollThreshold: 2.0,
			OrientationLockTime: 0.5,
			SectionThreshold:    0.1,
			TransitionDuration:  0.5,
			MinVelocityDt:       1e-3,
		},
		Timing: TimingConfig{
			MaxDt:         1.0 / 30,
			BlendHz:       8,
			BlendStep:     0.05,
			BlendUpdateMS: 50,
			LightUpdateT:  0.05,
		},
		Text: TextConfig{
			LineHeight:      lineHeight,
			HeadlineYOffset: headlineYOffset,
			SubtextInitialY: -4.7,
			SubtextRise:     5,
			AboutDrift:      -0.5,
			HeadlineSlide:   2,
			HeadlinePositions: []Point3{
				P3(0, 1*lineHeight+headlineYOffset, 0),
				P3(2, 0+headlineYOffset, 0),
				P3(0, -1*lineHeight+headlineYOffset, 0),
			},
		},
		Light: LightConfig{
			Position:        P3(5, 15, 5),
			Intensity:       1.2,
			ShadowWide:      60,
			ShadowTight:     16,
			ShadowNear:      0.5,
			ShadowFar:       160,
			ShadowBias:      -0.00015,
			ShadowNormBias:  0.02,
			LowPerfMapSize:  512,
			HighPerfMapSize: 1024,
		},
		Bubbles: BubbleConfig{
			Enabled:  true,
			Count:    40,
			SizeMin:  0.15,
			SizeMax:  0.35,
			Lifespan: 4.0,
			MaxDt:    0.1,
		},
		Grid: GridConfig{
			Origin:        P3(14, -7, 0),
			CardWidth:     3.2,
			CardHeight:    2.0,
			ColsDesktop:   5,
			ColsTablet:    3,
			ColsMobile:    2,
			ColsSmall:     1,
			BpDesktopPx:   1280,
			BpTabletPx:    768,
			BpMobilePx:    480,
			GapX:          0.2,
			GapZ:          0.32,
			UIScale:       1,
			BaseWidth:     12,
			MinScale:      0.55,
			MaxScale:      1.1,
			AutoFit:       true,
			AutoFitFactor: 0.9,
			FitPadding:    0.6,
			MobileFocus:   true,
			MobileBoost:   1.12,
			HoverScale:    1.035,
			HoverLift:     0.18,
			HoverHz:       8,
			Titles: []string{
				"Brand Development",
				"Design Needs",
				"Social Media Management",
				"Performance Marketing",
				"Production",
			},
		},
	}
}
