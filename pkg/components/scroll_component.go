package components

// VelocityHistorySize 滚动速度历史的容量
const VelocityHistorySize = 5

// VelocityHistory 固定容量的滚动速度环形缓冲区
// 只在未满时增长，满了之后覆盖最旧的样本，不会分配内存
type VelocityHistory struct {
	samples [VelocityHistorySize]float64
	next    int // 下一个写入位置
	count   int // 有效样本数
}

// Push 写入一个速度样本
func (h *VelocityHistory) Push(v float64) {
	h.samples[h.next] = v
	h.next = (h.next + 1) % VelocityHistorySize
	if h.count < VelocityHistorySize {
		h.count++
	}
}

// Average 返回有效样本的平均值，无样本时返回 0
func (h *VelocityHistory) Average() float64 {
	if h.count == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < h.count; i++ {
		sum += h.samples[i]
	}
	return sum / float64(h.count)
}

// Len 返回有效样本数
func (h *VelocityHistory) Len() int { return h.count }

// ScrollComponent 滚动信号状态
type ScrollComponent struct {
	// Offset 本帧使用的滚动偏移（已替换非有限值）
	Offset float64

	// PrevOffset 上一帧的有效偏移，也是非有限输入的回退值
	PrevOffset float64

	// Velocity 本帧瞬时速度（偏移/秒）
	Velocity float64

	// History 最近几帧的速度，用于平滑的快速滚动判定
	History VelocityHistory

	// AvgVelocity History 的平均值
	AvgVelocity float64
}
