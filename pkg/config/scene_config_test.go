package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultSceneConfig_Valid(t *testing.T) {
	cfg := DefaultSceneConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	if cfg.Camera.HeroHoldEnd != 0.20 || cfg.Camera.HeroMoveEnd != 0.52 || cfg.Camera.ServicesStart != 0.75 {
		t.Errorf("unexpected default thresholds: %+v", cfg.Camera)
	}
	if cfg.Fish.PhaseTarget != math.Pi {
		t.Errorf("PhaseTarget = %v, want π", cfg.Fish.PhaseTarget)
	}
	if math.Abs(cfg.Timing.MaxDt-1.0/30) > 1e-12 {
		t.Errorf("MaxDt = %v, want 1/30", cfg.Timing.MaxDt)
	}
	if got := cfg.Text.HeadlinePositions[0].Y; math.Abs(got-2.1) > 1e-12 {
		t.Errorf("first headline Y = %v, want 2.1", got)
	}
}

func TestParseSceneConfig_YAMLOverride(t *testing.T) {
	data := []byte(`
camera:
  heroHoldEnd: 0.1
  heroMoveEnd: 0.4
fish:
  orbitRadius: 5
timing:
  blendStep: 0.1
`)
	cfg, err := ParseSceneConfig(data, ".yaml")
	if err != nil {
		t.Fatalf("ParseSceneConfig failed: %v", err)
	}

	if cfg.Camera.HeroHoldEnd != 0.1 || cfg.Camera.HeroMoveEnd != 0.4 {
		t.Errorf("thresholds not overridden: %+v", cfg.Camera)
	}
	// 未出现的字段保持默认
	if cfg.Camera.ServicesStart != 0.75 {
		t.Errorf("ServicesStart = %v, want default 0.75", cfg.Camera.ServicesStart)
	}
	if len(cfg.Camera.PositionAnchors) != 3 {
		t.Errorf("PositionAnchors should keep defaults, got %d", len(cfg.Camera.PositionAnchors))
	}
	if cfg.Fish.OrbitRadius != 5 || cfg.Fish.FollowHz != 6 {
		t.Errorf("fish override wrong: %+v", cfg.Fish)
	}
	if cfg.Timing.BlendStep != 0.1 || cfg.Timing.BlendUpdateMS != 50 {
		t.Errorf("timing override wrong: %+v", cfg.Timing)
	}
}

func TestParseSceneConfig_TOMLOverride(t *testing.T) {
	data := []byte(`
[scroll]
fastScrollThreshold = 3.5
orientationLockTime = 0.8

[[camera.lookAnchors]]
x = 0.0
y = 0.0
z = 0.0

[[camera.lookAnchors]]
x = 0.0
y = -10.0
z = 0.0

[[camera.lookAnchors]]
x = 12.0
y = -10.0
z = 0.0
`)
	cfg, err := ParseSceneConfig(data, ".toml")
	if err != nil {
		t.Fatalf("ParseSceneConfig failed: %v", err)
	}
	if cfg.Scroll.FastScrollThreshold != 3.5 || cfg.Scroll.OrientationLockTime != 0.8 {
		t.Errorf("scroll override wrong: %+v", cfg.Scroll)
	}
	if cfg.Scroll.SectionThreshold != 0.1 {
		t.Errorf("SectionThreshold = %v, want default 0.1", cfg.Scroll.SectionThreshold)
	}
	if got := cfg.Camera.LookAnchors[2]; got != P3(12, -10, 0) {
		t.Errorf("LookAnchors[2] = %+v, want (12,-10,0)", got)
	}
}

func TestParseSceneConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		ext     string
		wantErr string
	}{
		{"阈值倒置", "camera:\n  heroHoldEnd: 0.6\n", ".yaml", "camera thresholds"},
		{"锚点数量错误", "camera:\n  positionAnchors:\n    - {x: 0, y: 0, z: 0}\n", ".yaml", "positionAnchors"},
		{"非正 maxDt", "timing:\n  maxDt: 0\n", ".yaml", "maxDt"},
		{"未知格式", "{}", ".json", "unsupported"},
		{"YAML 语法错误", "camera: [", ".yaml", "YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSceneConfig([]byte(tt.data), tt.ext)
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadSceneConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yml")
	if err := os.WriteFile(path, []byte("fish:\n  turnSpeed: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSceneConfig(path)
	if err != nil {
		t.Fatalf("LoadSceneConfig failed: %v", err)
	}
	if cfg.Fish.TurnSpeed != 4 {
		t.Errorf("TurnSpeed = %v, want 4", cfg.Fish.TurnSpeed)
	}

	if _, err := LoadSceneConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWatcher_Reload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte("fish:\n  orbitRadius: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("fish:\n  orbitRadius: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Updates():
			// 一次写入可能触发多个事件，等到内容生效为止
			if cfg.Fish.OrbitRadius == 3 {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for config reload")
		}
	}
}
