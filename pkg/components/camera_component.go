package components

import "github.com/go-gl/mathgl/mgl64"

// CameraComponent 管理滚动镜头的阻尼状态。
// 每帧由 CameraSystem 更新，渲染端只读取 Position 和 Orientation。
type CameraComponent struct {
	// CurrentPos 阻尼后的镜头位置
	CurrentPos mgl64.Vec3

	// CurrentLook 阻尼后的注视点
	CurrentLook mgl64.Vec3

	// TargetPos 从位置曲线采样的目标位置
	TargetPos mgl64.Vec3

	// TargetLook 从注视曲线采样的目标注视点
	TargetLook mgl64.Vec3

	// UPos 位置曲线参数（弧长归一化）
	UPos float64

	// ULook 注视曲线参数
	ULook float64

	// Orientation 镜头当前朝向（世界空间，镜头看向 -Z）
	Orientation mgl64.Quat

	// StableQuat 最近一次稳定的俯视朝向，也是锁定时的快照
	StableQuat mgl64.Quat

	// IsLocked 朝向是否被锁定
	IsLocked bool

	// LockTimer 锁定剩余时间（秒）
	LockTimer float64

	// HoldSoft 本帧是否处于 About 停留区且滚动几乎停止
	HoldSoft bool
}
