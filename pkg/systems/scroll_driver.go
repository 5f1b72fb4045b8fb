package systems

import (
	"math"

	"github.com/gonewx/scrollscene/pkg/utils"
)

// ScrollDriver 把滚轮输入转换为阻尼后的滚动偏移
//
// 页面高度为 Pages 个视口，可滚动距离为 (Pages-1) 个视口高度；
// 滚轮增量先移动原始目标，再以 Damping 秒的时间常数平滑输出。
// Damping 为 0 时直接跟随目标。
type ScrollDriver struct {
	Pages   float64
	Damping float64

	target float64
	offset float64
}

// NewScrollDriver 创建滚动驱动
func NewScrollDriver(pages, damping float64) *ScrollDriver {
	return &ScrollDriver{Pages: pages, Damping: damping}
}

// Wheel 应用一次滚轮/拖动输入
//
// 参数:
//   - deltaPx: 滚动像素（向下为正）
//   - viewportPx: 视口像素高度
func (d *ScrollDriver) Wheel(deltaPx, viewportPx float64) {
	scrollable := math.Max(1, (d.Pages-1)*viewportPx)
	d.SetTarget(d.target + deltaPx/scrollable)
}

// SetTarget 直接设置目标偏移，限制在 [0,1]
func (d *ScrollDriver) SetTarget(target float64) {
	if !utils.IsFinite(target) {
		return
	}
	d.target = utils.Clamp(target, 0, 1)
}

// Update 推进阻尼，返回本帧偏移
func (d *ScrollDriver) Update(dt float64) float64 {
	if d.Damping <= 0 {
		d.offset = d.target
		return d.offset
	}
	d.offset += (d.target - d.offset) * utils.ExpAlpha(dt, 1/d.Damping)
	return d.offset
}

// Offset 当前偏移
func (d *ScrollDriver) Offset() float64 { return d.offset }

// Target 原始目标偏移
func (d *ScrollDriver) Target() float64 { return d.target }
