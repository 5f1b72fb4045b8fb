package systems

import (
	"math"

	"github.com/gonewx/scrollscene/pkg/components"
	"github.com/gonewx/scrollscene/pkg/config"
	"github.com/gonewx/scrollscene/pkg/utils"
)

// ProgressListener 接收节流后的 About 进度
type ProgressListener interface {
	OnProgressChange(progress float64)
}

// ProgressFunc 函数适配器
type ProgressFunc func(progress float64)

// OnProgressChange 实现 ProgressListener
func (f ProgressFunc) OnProgressChange(progress float64) { f(progress) }

// BlendSystem Hero→About 混合量积分器
//
// 目标值为 smoothstep(clamp(t/0.5, 0, 1))，只反映进入 About 的程度，
// Services 段不再改变它。对外通知做两层节流：
// 量化到 BlendStep 的整数倍，且两次通知间隔超过 BlendUpdateMS。
type BlendSystem struct {
	state    *components.BlendComponent
	cfg      *config.TimingConfig
	listener ProgressListener
}

// NewBlendSystem 创建混合量积分器
// listener 可以为 nil，此时只维护内部状态
func NewBlendSystem(state *components.BlendComponent, cfg *config.TimingConfig, listener ProgressListener) *BlendSystem {
	return &BlendSystem{state: state, cfg: cfg, listener: listener}
}

// SetListener 替换进度监听者
func (bs *BlendSystem) SetListener(l ProgressListener) { bs.listener = l }

// BlendTarget 由镜头进度求混合量目标
func BlendTarget(t float64) float64 {
	return utils.EaseSmoothstep(utils.Clamp(t/0.5, 0, 1))
}

// Update 推进混合量一帧
//
// 参数:
//   - dt: 已截断的帧间隔
//   - t: 本帧镜头进度
//   - nowMS: 墙钟时间（毫秒），只用于通知节流
//
// 返回:
//   - 平滑后的混合量
func (bs *BlendSystem) Update(dt, t, nowMS float64) float64 {
	s := bs.state
	s.Value += (BlendTarget(t) - s.Value) * utils.ExpAlpha(dt, bs.cfg.BlendHz)

	snapped := math.Round(s.Value/bs.cfg.BlendStep) * bs.cfg.BlendStep
	if snapped != s.Emitted && nowMS-s.LastEmitMS > bs.cfg.BlendUpdateMS {
		s.Emitted = snapped
		s.LastEmitMS = nowMS
		if bs.listener != nil {
			bs.listener.OnProgressChange(snapped)
		}
	}
	return s.Value
}

// Value 当前混合量
func (bs *BlendSystem) Value() float64 { return bs.state.Value }

// Emitted 最近一次对外通知的进度
func (bs *BlendSystem) Emitted() float64 { return bs.state.Emitted }
