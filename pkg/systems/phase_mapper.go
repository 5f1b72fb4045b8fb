package systems

import (
	"github.com/gonewx/scrollscene/pkg/config"
	"github.com/gonewx/scrollscene/pkg/utils"
)

// CameraPhase 镜头宏观路径上的进度
//
// T=0 为 Hero 机位，T=0.5 为 About 机位，T=1 为 Services 机位。
// HoldAbout 表示偏移处于 About 停留区 (HeroMoveEnd, ServicesStart]。
type CameraPhase struct {
	T         float64
	HoldAbout bool
}

// MapPhase 将滚动偏移映射为镜头进度
//
// 纯函数。区间外的偏移由各段内部的 Map01 截断：小于 0 等同 0，大于 1 等同 1。
// 零宽区间不会除零（Map01 有最小分母）。
func MapPhase(offset float64, cam config.CameraConfig) CameraPhase {
	switch {
	case offset <= cam.HeroHoldEnd:
		return CameraPhase{T: 0}
	case offset <= cam.HeroMoveEnd:
		p := utils.Map01(offset, cam.HeroHoldEnd, cam.HeroMoveEnd)
		return CameraPhase{T: 0.5 * utils.EaseSmoothstep(p)}
	case offset <= cam.ServicesStart:
		return CameraPhase{T: 0.5, HoldAbout: true}
	default:
		p := utils.Map01(offset, cam.ServicesStart, 1)
		return CameraPhase{T: 0.5 + 0.5*utils.EaseSmoothstep(p)}
	}
}

// CurveTarget 计算曲线参数的目标值
//
// 与 MapPhase 使用相同的分段，但各段线性映射（不缓动），
// 再按弧长拐点 split 重新分配：第一段映射到 [0, split]，第二段映射到 [split, 1]。
// 这样镜头在两段路径上花费的滚动距离与路径物理长度成正比。
func CurveTarget(offset, split float64, cam config.CameraConfig) float64 {
	switch {
	case offset <= cam.HeroHoldEnd:
		return 0
	case offset <= cam.HeroMoveEnd:
		return split * utils.Map01(offset, cam.HeroHoldEnd, cam.HeroMoveEnd)
	case offset <= cam.ServicesStart:
		return split
	default:
		p := utils.Map01(offset, cam.ServicesStart, 1)
		return split + (1-split)*p
	}
}
