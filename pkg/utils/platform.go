//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 1 时桌面端按移动端处理（用于本地调试低功耗预设）
const MobileEmulateEnv = "SCROLLSCENE_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时只看 MobileEmulateEnv
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
