package bridge

import (
	"go/build"
	"path/filepath"
	"strings"
	"testing"
)

const modulePath = "github.com/gonewx/scrollscene"

// headlessImports 收集 dir 包及其模块内依赖的全部非测试导入
func headlessImports(t *testing.T, root, dir string, seen map[string]bool, out map[string]string) {
	t.Helper()
	if seen[dir] {
		return
	}
	seen[dir] = true

	pkg, err := build.Default.ImportDir(filepath.Join(root, dir), 0)
	if err != nil {
		t.Fatalf("failed to read package %s: %v", dir, err)
	}
	for _, imp := range pkg.Imports {
		if _, ok := out[imp]; !ok {
			out[imp] = dir
		}
		if rel, ok := strings.CutPrefix(imp, modulePath+"/"); ok {
			headlessImports(t, root, rel, seen, out)
		}
	}
}

// TestHeadlessPackagesAvoidEbiten 测试桥接服务和轨迹回放不依赖图形栈
func TestHeadlessPackagesAvoidEbiten(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatal(err)
	}

	for _, dir := range []string{"pkg/bridge", "cmd/scenebridge", "cmd/scrolltrace", "internal/trace"} {
		t.Run(dir, func(t *testing.T) {
			imports := map[string]string{}
			headlessImports(t, root, dir, map[string]bool{}, imports)
			for imp, from := range imports {
				if strings.HasPrefix(imp, "github.com/hajimehoshi/ebiten") {
					t.Errorf("%s imports %s (via %s)", dir, imp, from)
				}
			}
		})
	}
}
