package components

// HeadlineCount 首屏标题行数
const HeadlineCount = 3

// HeadlineState 单行标题的输出状态
type HeadlineState struct {
	X       float64
	Y       float64
	Opacity float64
}

// TextComponent 文字层的输出状态
type TextComponent struct {
	Headlines      [HeadlineCount]HeadlineState
	SubtextY       float64
	SubtextOpacity float64
	AboutY         float64
}
