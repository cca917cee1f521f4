// Package main은 nativelib CLI의 진입점입니다.
// 현재 플랫폼에 맞는 네이티브 라이브러리를 추출하고 로드합니다.
package main

import (
	"os"

	"github.com/insajin/nativelib/cmd"
)

// 빌드 시 ldflags로 주입되는 버전 정보
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	// 버전 정보를 root 패키지에 설정
	cmd.SetVersionInfo(version, commit, buildDate)

	// CLI 실행
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
