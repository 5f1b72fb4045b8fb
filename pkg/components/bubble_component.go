package components

import "github.com/go-gl/mathgl/mgl64"

// BubbleComponent 单个气泡粒子
type BubbleComponent struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3

	// BaseSize 出生时随机的基础尺寸
	BaseSize float64
	// Size 本帧渲染尺寸（含生长和淡入淡出），失活时为 0
	Size float64

	// Life 剩余寿命（秒），<= 0 表示失活
	Life    float64
	MaxLife float64

	// Wobble 摆动相位
	Wobble float64

	// Color 虹彩颜色 RGB [0,1]
	Color [3]float64
}

// Active 是否存活
func (b *BubbleComponent) Active() bool { return b.Life > 0 }
