package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/scrollscene/pkg/components"
)

// Frame 一帧的输出快照
// 同时用于 WebSocket 桥（JSON）和 scrolltrace（YAML）
type Frame struct {
	Elapsed       float64            `json:"elapsed" yaml:"elapsed"`
	Offset        float64            `json:"offset" yaml:"offset"`
	Velocity      float64            `json:"velocity" yaml:"velocity"`
	Section       components.Section `json:"section" yaml:"section"`
	Phase         float64            `json:"phase" yaml:"phase"`
	HoldAbout     bool               `json:"holdAbout" yaml:"holdAbout"`
	Blend         float64            `json:"blend" yaml:"blend"`
	AboutProgress float64            `json:"aboutProgress" yaml:"aboutProgress"`

	Camera  CameraFrame   `json:"camera" yaml:"camera"`
	Fish    []FishFrame   `json:"fish" yaml:"fish"`
	Text    TextFrame     `json:"text" yaml:"text"`
	Light   LightFrame    `json:"light" yaml:"light"`
	Grid    GridFrame     `json:"grid" yaml:"grid"`
	Bubbles []BubbleFrame `json:"bubbles,omitempty" yaml:"bubbles,omitempty"`
}

// CameraFrame 镜头变换
type CameraFrame struct {
	Position mgl64.Vec3 `json:"position" yaml:"position,flow"`
	Look     mgl64.Vec3 `json:"look" yaml:"look,flow"`
	// Orientation 四元数 (x, y, z, w)
	Orientation [4]float64 `json:"orientation" yaml:"orientation,flow"`
	Forward     mgl64.Vec3 `json:"forward" yaml:"forward,flow"`
	FOV         float64    `json:"fov" yaml:"fov"`
	Locked      bool       `json:"locked" yaml:"locked"`
}

// FishFrame 单条鱼的变换
type FishFrame struct {
	Name     string     `json:"name" yaml:"name"`
	Position mgl64.Vec3 `json:"position" yaml:"position,flow"`
	Yaw      float64    `json:"yaw" yaml:"yaw"`
	Pitch    float64    `json:"pitch" yaml:"pitch"`
	Phase    float64    `json:"phase" yaml:"phase"`
}

// HeadlineFrame 单行标题
type HeadlineFrame struct {
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Opacity float64 `json:"opacity" yaml:"opacity"`
}

// TextFrame 文字层
type TextFrame struct {
	Headlines      [components.HeadlineCount]HeadlineFrame `json:"headlines" yaml:"headlines"`
	SubtextY       float64                                 `json:"subtextY" yaml:"subtextY"`
	SubtextOpacity float64                                 `json:"subtextOpacity" yaml:"subtextOpacity"`
	AboutY         float64                                 `json:"aboutY" yaml:"aboutY"`
}

// LightFrame 方向光
type LightFrame struct {
	Target           mgl64.Vec3 `json:"target" yaml:"target,flow"`
	ShadowHalfExtent float64    `json:"shadowHalfExtent" yaml:"shadowHalfExtent"`
	ShadowRevision   int        `json:"shadowRevision" yaml:"shadowRevision"`
	ShadowMapSize    int        `json:"shadowMapSize" yaml:"shadowMapSize"`
}

// GridFrame 服务卡片网格
type GridFrame struct {
	Origin mgl64.Vec3  `json:"origin" yaml:"origin,flow"`
	Scale  float64     `json:"scale" yaml:"scale"`
	Cards  []CardFrame `json:"cards" yaml:"cards"`
}

// CardFrame 单张卡片
type CardFrame struct {
	Title    string     `json:"title" yaml:"title"`
	Position mgl64.Vec3 `json:"position" yaml:"position,flow"`
	Scale    float64    `json:"scale" yaml:"scale"`
	Lift     float64    `json:"lift" yaml:"lift"`
}

// BubbleFrame 存活的气泡
type BubbleFrame struct {
	Position mgl64.Vec3 `json:"position" yaml:"position,flow"`
	Size     float64    `json:"size" yaml:"size"`
	Color    [3]float64 `json:"color" yaml:"color,flow"`
}
