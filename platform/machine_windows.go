//go:build windows

package platform

import (
	"debug/pe"
	"os"

	"golang.org/x/sys/windows"
)

// osMachine은 Windows가 보고하는 네이티브 프로세서 아키텍처를 반환합니다.
// IsWow64Process2의 네이티브 머신 값을 사용하므로 에뮬레이션 중인 프로세스에서도 실제 OS 아키텍처가 나옵니다.
func osMachine() string {
	var processMachine, nativeMachine uint16
	if err := windows.IsWow64Process2(windows.CurrentProcess(), &processMachine, &nativeMachine); err == nil {
		if name := machineName(nativeMachine); name != "" {
			return name
		}
	}

	// IsWow64Process2가 없는 Windows 10 1511 이전 버전
	if arch := os.Getenv("PROCESSOR_ARCHITEW6432"); arch != "" {
		return arch
	}
	return os.Getenv("PROCESSOR_ARCHITECTURE")
}

// machineName은 IMAGE_FILE_MACHINE 값을 아키텍처 이름으로 변환합니다.
// 알 수 없는 값이면 빈 문자열을 반환합니다.
func machineName(machine uint16) string {
	switch machine {
	case pe.IMAGE_FILE_MACHINE_I386:
		return "x86"
	case pe.IMAGE_FILE_MACHINE_AMD64:
		return "x64"
	case pe.IMAGE_FILE_MACHINE_ARMNT:
		return "arm"
	case pe.IMAGE_FILE_MACHINE_ARM64:
		return "arm64"
	default:
		return ""
	}
}
