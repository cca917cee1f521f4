//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly || windows)

package platform

// osMachine은 OS 아키텍처를 조회할 수 없는 플랫폼에서 빈 문자열을 반환합니다.
func osMachine() string {
	return ""
}
