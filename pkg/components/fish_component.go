package components

import "github.com/go-gl/mathgl/mgl64"

// FishComponent 单条鱼的运动状态
type FishComponent struct {
	// Name 标识（"red" / "black"）
	Name string

	// Position 当前位置
	Position mgl64.Vec3

	// PrevPosition 上一帧位置，用于求速度
	PrevPosition mgl64.Vec3

	// PathAngle 环绕相位角（弧度，持续累加）
	PathAngle float64

	// SpeedScale 相位角速度倍率
	SpeedScale float64

	// Yaw 偏航角（弧度）
	Yaw float64

	// Pitch 俯仰角（弧度）
	Pitch float64
}
