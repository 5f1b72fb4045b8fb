//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在打开 gdata 之前创建 Android 应用的数据目录
//
// gdata 在 Android 上写入 /data/data/{package}/，但不会创建子目录，
// 第一次保存预览设置前必须保证目录存在且可写。
func EnsureStorageDir() error {
	pkg, err := androidPackage()
	if err != nil {
		return fmt.Errorf("failed to detect Android package: %w", err)
	}

	dir := filepath.Join("/data/data", pkg, "settings")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return fmt.Errorf("settings directory %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// androidPackage 从 /proc/self/cmdline 读取包名（以 NUL 结尾的第一个参数）
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	name := string(bytes.TrimSpace(data))
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}
