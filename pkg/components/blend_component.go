package components

// BlendComponent Hero→About 混合量及其节流通知状态
type BlendComponent struct {
	// Value 平滑后的混合量 [0,1]
	Value float64

	// Emitted 最近一次对外通知的量化值
	Emitted float64

	// LastEmitMS 最近一次通知的时间（毫秒）
	LastEmitMS float64
}
