package systems

import "github.com/gonewx/scrollscene/pkg/utils"

// RevealVariant 副文字出现动画的类型
type RevealVariant string

const (
	// RevealFadeUp 自下而上淡入
	RevealFadeUp RevealVariant = "fadeUp"
	// RevealX 自左向右淡入
	RevealX RevealVariant = "revealX"
)

// RevealState 出现动画的输出：相对位移和不透明度
type RevealState struct {
	X       float64
	Y       float64
	Opacity float64
}

func revealStart(v RevealVariant) RevealState {
	switch v {
	case RevealFadeUp:
		return RevealState{Y: 0.3}
	case RevealX:
		return RevealState{X: -0.5}
	default:
		return RevealState{}
	}
}

// Reveal 由节流后的 About 进度求副文字状态
//
// progress 为 nil 表示没有外部进度：onMount 时直接完全显示，否则保持隐藏。
func Reveal(variant RevealVariant, progress *float64, onMount bool) RevealState {
	var p float64
	switch {
	case progress != nil:
		p = utils.Clamp(*progress, 0, 1)
		if !utils.IsFinite(p) {
			p = 0
		}
	case onMount:
		p = 1
	}

	from := revealStart(variant)
	return RevealState{
		X:       utils.Lerp(from.X, 0, p),
		Y:       utils.Lerp(from.Y, 0, p),
		Opacity: utils.Lerp(from.Opacity, 1, p),
	}
}
