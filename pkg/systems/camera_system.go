package systems

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/scrollscene/internal/curve"
	"github.com/gonewx/scrollscene/pkg/components"
	"github.com/gonewx/scrollscene/pkg/config"
	"github.com/gonewx/scrollscene/pkg/utils"
)

// CameraSystem 滚动驱动的镜头控制器
//
// 每帧：
//  1. 由滚动偏移求出曲线参数目标 (uPos, uLook)，指数阻尼逼近，并在拐点附近吸附
//  2. 在位置/注视曲线上采样，再次阻尼得到 CurrentPos / CurrentLook
//  3. 求朝向：Hero 区使用 look-at；About/Services 区使用固定俯视基；
//     快速回滚触发锁定时，朝向冻结为快照，直到计时结束
type CameraSystem struct {
	cfg   *config.SceneConfig
	state *components.CameraComponent

	posPath   *curve.Path
	lookPath  *curve.Path
	posSplit  float64
	lookSplit float64
	downward  mgl64.Quat
}

// NewCameraSystem 创建镜头控制器
//
// 镜头初始位于 Hero 机位并看向 Hero 注视点。
//
// 返回:
//   - error: 锚点不足以构成路径时返回错误
func NewCameraSystem(cfg *config.SceneConfig, state *components.CameraComponent) (*CameraSystem, error) {
	posPath, err := curve.NewPath(anchors(cfg.Camera.PositionAnchors)...)
	if err != nil {
		return nil, err
	}
	lookPath, err := curve.NewPath(anchors(cfg.Camera.LookAnchors)...)
	if err != nil {
		return nil, err
	}

	cs := &CameraSystem{
		cfg:       cfg,
		state:     state,
		posPath:   posPath,
		lookPath:  lookPath,
		posSplit:  posPath.Split(),
		lookSplit: lookPath.Split(),
		downward:  DownwardQuat(),
	}

	state.CurrentPos = posPath.PointAt(0)
	state.CurrentLook = lookPath.PointAt(0)
	state.TargetPos = state.CurrentPos
	state.TargetLook = state.CurrentLook
	state.Orientation = LookAtQuat(state.CurrentPos, state.CurrentLook)
	state.StableQuat = state.Orientation
	return cs, nil
}

func anchors(points []config.Point3) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(points))
	for i, p := range points {
		out[i] = p.Vec()
	}
	return out
}

// Splits 返回位置曲线和注视曲线的弧长拐点
func (cs *CameraSystem) Splits() (pos, look float64) { return cs.posSplit, cs.lookSplit }

// ArmLock 锁定朝向，快照为当前朝向
func (cs *CameraSystem) ArmLock() {
	s := cs.state
	s.IsLocked = true
	s.LockTimer = cs.cfg.Scroll.OrientationLockTime
	s.StableQuat = s.Orientation
	log.Printf("[CameraSystem] Orientation locked for %.2fs", s.LockTimer)
}

// Update 推进镜头一帧
//
// 参数:
//   - dt: 已截断的帧间隔
//   - offset: 本帧滚动偏移
//   - velocity: 本帧滚动速度（偏移/秒）
//   - section: 本帧分区
//   - progress: 分区过渡进度 [0,1]
func (cs *CameraSystem) Update(dt, offset, velocity float64, section components.Section, progress float64) {
	s := cs.state
	cam := cs.cfg.Camera
	damp := cs.cfg.Damping

	phase := MapPhase(offset, cam)
	s.HoldSoft = phase.HoldAbout && math.Abs(velocity) < cs.cfg.Scroll.VHoldMax

	if s.IsLocked {
		s.LockTimer -= dt
		if s.LockTimer <= 0 {
			s.IsLocked = false
			s.LockTimer = 0
			log.Printf("[CameraSystem] Orientation lock released")
		}
	}

	// 曲线参数：锁定期间放慢，解锁时不会突跳
	uDamp := damp.UDamp
	if s.IsLocked {
		uDamp = damp.UDampLocked
	}
	uAlpha := utils.ExpAlpha(dt, uDamp)
	s.UPos += (CurveTarget(offset, cs.posSplit, cam) - s.UPos) * uAlpha
	s.ULook += (CurveTarget(offset, cs.lookSplit, cam) - s.ULook) * uAlpha
	s.UPos = utils.SnapNear(s.UPos, cs.posSplit, damp.EpsSplit)
	s.ULook = utils.SnapNear(s.ULook, cs.lookSplit, damp.EpsSplit)

	s.TargetPos = cs.posPath.PointAt(s.UPos)
	s.TargetLook = cs.lookPath.PointAt(s.ULook)

	posDamp := damp.DampBase
	if s.HoldSoft {
		posDamp = damp.DampHold
	}
	alpha := utils.ExpAlpha(dt, posDamp)
	s.CurrentPos = utils.LerpVec3(s.CurrentPos, s.TargetPos, alpha)
	s.CurrentLook = utils.LerpVec3(s.CurrentLook, s.TargetLook, alpha)

	if s.HoldSoft {
		s.UPos = utils.SnapNear(s.UPos, cs.posSplit, damp.EpsSplitHold)
		s.ULook = utils.SnapNear(s.ULook, cs.lookSplit, damp.EpsSplitHold)
	}

	cs.updateOrientation(dt, section, progress)
}

func (cs *CameraSystem) updateOrientation(dt float64, section components.Section, progress float64) {
	s := cs.state
	if section != components.SectionAbout && section != components.SectionServices {
		s.Orientation = LookAtQuat(s.CurrentPos, s.CurrentLook)
		return
	}

	if s.IsLocked {
		s.Orientation = s.StableQuat
		return
	}

	if progress < 1 {
		s.Orientation = SlerpShortest(s.Orientation, cs.downward, utils.Clamp(dt*cs.cfg.Damping.SlerpRate, 0, 1))
	} else {
		s.Orientation = cs.downward
	}
	s.StableQuat = s.Orientation
}

// Position 镜头位置
func (cs *CameraSystem) Position() mgl64.Vec3 { return cs.state.CurrentPos }

// Orientation 镜头朝向
func (cs *CameraSystem) Orientation() mgl64.Quat { return cs.state.Orientation }
