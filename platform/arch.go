package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Architecture는 CPU 명령어 집합 계열을 나타냅니다.
type Architecture uint8

const (
	// UnknownArchitecture는 판별할 수 없는 아키텍처입니다.
	UnknownArchitecture Architecture = iota
	// X86은 32비트 x86입니다.
	X86
	// X64는 64비트 x86(amd64)입니다.
	X64
	// Arm은 32비트 ARM입니다.
	Arm
	// Arm64는 64비트 ARM(aarch64)입니다.
	Arm64
	// Wasm은 WebAssembly입니다.
	Wasm
	// S390x는 IBM z/Architecture입니다.
	S390x
	// Ppc64le는 리틀 엔디언 64비트 PowerPC입니다.
	Ppc64le
	// RiscV64는 64비트 RISC-V입니다.
	RiscV64
	// LoongArch64는 64비트 LoongArch입니다.
	LoongArch64
)

var archNames = map[Architecture]string{
	UnknownArchitecture: "unknown",
	X86:                 "x86",
	X64:                 "x64",
	Arm:                 "arm",
	Arm64:               "arm64",
	Wasm:                "wasm",
	S390x:               "s390x",
	Ppc64le:             "ppc64le",
	RiscV64:             "riscv64",
	LoongArch64:         "loongarch64",
}

// archAliases는 GOARCH, uname, Windows 환경변수가 보고하는 이름을 아키텍처로 매핑합니다.
var archAliases = map[string]Architecture{
	"x86":         X86,
	"386":         X86,
	"i386":        X86,
	"i486":        X86,
	"i586":        X86,
	"i686":        X86,
	"x64":         X64,
	"amd64":       X64,
	"x86_64":      X64,
	"arm":         Arm,
	"armv6l":      Arm,
	"armv7l":      Arm,
	"armv8l":      Arm,
	"arm64":       Arm64,
	"aarch64":     Arm64,
	"wasm":        Wasm,
	"s390x":       S390x,
	"ppc64le":     Ppc64le,
	"riscv64":     RiscV64,
	"loong64":     LoongArch64,
	"loongarch64": LoongArch64,
}

func (a Architecture) String() string {
	if name, ok := archNames[a]; ok {
		return name
	}
	return fmt.Sprintf("arch(%d)", uint8(a))
}

// ParseArchitecture는 문자열을 Architecture로 변환합니다.
func ParseArchitecture(s string) (Architecture, error) {
	if a, ok := archAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return a, nil
	}
	return UnknownArchitecture, fmt.Errorf("알 수 없는 아키텍처: %q", s)
}

// ProcessArchitecture는 현재 프로세스 자체의 아키텍처를 반환합니다.
func ProcessArchitecture() Architecture {
	a, _ := ParseArchitecture(runtime.GOARCH)
	return a
}

// OSArchitecture는 운영체제가 보고하는 아키텍처를 반환합니다.
// 판별할 수 없으면 프로세스 아키텍처를 사용합니다.
func OSArchitecture() Architecture {
	name := osMachine()
	if name == "" {
		return ProcessArchitecture()
	}
	a, err := ParseArchitecture(name)
	if err != nil {
		return ProcessArchitecture()
	}
	return a
}

// ResolveArchitecture는 매칭에 사용할 아키텍처를 결정합니다.
// OS가 64비트 x86을 보고하면 프로세스 아키텍처로 대체합니다.
// 64비트 OS 위의 32비트 프로세스나 변환 실행 중인 프로세스는 OS 값과 다른 바이너리만 로드할 수 있습니다.
func ResolveArchitecture(osArch, processArch Architecture) Architecture {
	if osArch == X64 {
		return processArch
	}
	return osArch
}

// CurrentArchitecture는 실제 신호로 ResolveArchitecture를 적용한 결과를 반환합니다.
func CurrentArchitecture() Architecture {
	return ResolveArchitecture(OSArchitecture(), ProcessArchitecture())
}
