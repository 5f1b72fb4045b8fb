package systems

import (
	"math"

	"github.com/gonewx/scrollscene/pkg/components"
	"github.com/gonewx/scrollscene/pkg/config"
	"github.com/gonewx/scrollscene/pkg/utils"
)

// ScrollSystem 采样外部滚动偏移
//
// 职责：
//   - 非有限输入（NaN/Inf）替换为上一帧的有效值
//   - 计算瞬时速度并写入速度历史
//   - 帧末提交本帧偏移，作为下一帧的参考
type ScrollSystem struct {
	state *components.ScrollComponent
	cfg   *config.ScrollConfig
}

// NewScrollSystem 创建滚动采样系统
func NewScrollSystem(state *components.ScrollComponent, cfg *config.ScrollConfig) *ScrollSystem {
	return &ScrollSystem{state: state, cfg: cfg}
}

// Sample 采样本帧滚动偏移
//
// 参数:
//   - raw: 外部提供的原始偏移（可能为 NaN）
//   - dt: 已截断的帧间隔
//
// 返回:
//   - 本帧实际使用的偏移
func (ss *ScrollSystem) Sample(raw, dt float64) float64 {
	s := ss.state
	offset := raw
	if !utils.IsFinite(offset) {
		offset = s.PrevOffset
	}
	s.Offset = offset

	if dt <= 0 {
		// 时间没有前进：不产生新的速度样本
		return offset
	}

	s.Velocity = (offset - s.PrevOffset) / math.Max(dt, ss.cfg.MinVelocityDt)
	s.History.Push(s.Velocity)
	s.AvgVelocity = s.History.Average()
	return offset
}

// Commit 帧末提交本帧偏移
func (ss *ScrollSystem) Commit() {
	ss.state.PrevOffset = ss.state.Offset
}
