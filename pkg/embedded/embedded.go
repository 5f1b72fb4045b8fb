// Package embedded 提供内置场景预设的统一访问接口
//
// 预设文件位于 presets/ 目录，编译时嵌入二进制。
// 桌面端、移动端和命令行工具都通过预设名（不带扩展名）读取。
package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed presets
var presetsFS embed.FS

// source 当前使用的文件系统，测试中可以替换
var source fs.FS = presetsFS

const presetDir = "presets"

// Use 替换预设来源
// 参数 fsys 的根目录下必须有 presets/ 目录；传入 nil 恢复内置预设
func Use(fsys fs.FS) {
	if fsys == nil {
		source = presetsFS
		return
	}
	source = fsys
}

// Presets 返回所有预设名，按字母排序
func Presets() ([]string, error) {
	entries, err := fs.ReadDir(source, presetDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isConfigExt(path.Ext(e.Name())) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names, nil
}

// ReadPreset 读取指定预设
//
// 参数:
//   - name: 预设名，如 "calm"
//
// 返回:
//   - data: 文件内容
//   - ext: 扩展名（".yaml" 或 ".toml"），用于选择解码器
//   - error: 预设不存在时返回错误
func ReadPreset(name string) (data []byte, ext string, err error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, "", fmt.Errorf("invalid preset name %q", name)
	}
	for _, e := range []string{".yaml", ".yml", ".toml"} {
		data, err := fs.ReadFile(source, path.Join(presetDir, name+e))
		if err == nil {
			return data, e, nil
		}
	}
	return nil, "", fmt.Errorf("preset %q not found", name)
}

// Exists 检查预设是否存在
func Exists(name string) bool {
	_, _, err := ReadPreset(name)
	return err == nil
}

func isConfigExt(ext string) bool {
	switch ext {
	case ".yaml", ".yml", ".toml":
		return true
	}
	return false
}
