package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager controls which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// SaveCurrent 在退出前保存当前场景的状态
//
// 当前场景未实现 Saveable 时直接返回 true。
func (sm *SceneManager) SaveCurrent() bool {
	s, ok := sm.currentScene.(Saveable)
	if !ok {
		return true
	}
	if !s.SaveOnExit() {
		log.Printf("[SceneManager] Scene failed to save state on exit")
		return false
	}
	return true
}

// Update updates the currently active scene.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
