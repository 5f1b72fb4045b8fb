package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerSample 一帧的指针状态（触摸优先，其次鼠标左键）
type PointerSample struct {
	// Pressed 是否按下
	Pressed bool
	// X, Y 指针位置（屏幕坐标）
	X, Y int
	// Touch 是否来自触摸
	Touch bool
}

// ReadPointer 读取当前帧的指针状态
// 有多个触摸点时只取第一个
func ReadPointer() PointerSample {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return PointerSample{Pressed: true, X: x, Y: y, Touch: true}
	}
	x, y := ebiten.CursorPosition()
	return PointerSample{Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), X: x, Y: y}
}

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放），只持续一帧
	DragStateEnded
)

// DragTracker 跟踪拖拽并给出逐帧位移
// 预览场景用它把手指/鼠标拖动转换成滚动
type DragTracker struct {
	state          DragState
	startX, startY int
	lastX, lastY   int
	touch          bool
}

// Feed 输入一帧的指针状态
//
// 返回:
//   - dx, dy: 相对上一帧的位移；拖拽开始和结束的那一帧为 0
func (d *DragTracker) Feed(s PointerSample) (dx, dy int) {
	switch d.state {
	case DragStateNone, DragStateEnded:
		if !s.Pressed {
			d.state = DragStateNone
			return 0, 0
		}
		d.state = DragStateStarted
		d.startX, d.startY = s.X, s.Y
		d.lastX, d.lastY = s.X, s.Y
		d.touch = s.Touch
		return 0, 0

	default:
		if !s.Pressed {
			d.state = DragStateEnded
			return 0, 0
		}
		d.state = DragStateDragging
		dx, dy = s.X-d.lastX, s.Y-d.lastY
		d.lastX, d.lastY = s.X, s.Y
		return dx, dy
	}
}

// Reset 重置拖拽状态
func (d *DragTracker) Reset() {
	*d = DragTracker{}
}

// State 当前拖拽状态
func (d *DragTracker) State() DragState { return d.state }

// IsDragging 是否按住中（包括刚按下的那一帧）
func (d *DragTracker) IsDragging() bool {
	return d.state == DragStateStarted || d.state == DragStateDragging
}

// IsTouchDrag 是否为触摸拖拽
func (d *DragTracker) IsTouchDrag() bool { return d.touch }

// Distance 从起点到当前位置的总位移
func (d *DragTracker) Distance() (dx, dy int) {
	return d.lastX - d.startX, d.lastY - d.startY
}
