// Package platform은 현재 실행 중인 운영체제와 CPU 아키텍처를 판별합니다.
// 네이티브 라이브러리 선택에 필요한 닫힌 집합(Windows, Linux, macOS)만 다룹니다.
package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"
)

// Platform은 지원하는 운영체제를 나타냅니다.
// 0 값은 유효한 플랫폼이 아닙니다.
type Platform uint8

const (
	// Windows는 Microsoft Windows입니다.
	Windows Platform = iota + 1
	// Linux는 Linux 커널 기반 시스템입니다.
	Linux
	// MacOS는 Apple macOS입니다.
	MacOS
)

// String은 플랫폼 이름을 반환합니다.
func (p Platform) String() string {
	switch p {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case MacOS:
		return "macos"
	default:
		return fmt.Sprintf("platform(%d)", uint8(p))
	}
}

// Valid는 p가 지원되는 플랫폼인지 반환합니다.
func (p Platform) Valid() bool {
	return p >= Windows && p <= MacOS
}

// ParsePlatform은 문자열을 Platform으로 변환합니다.
// 매니페스트와 CLI 플래그에서 사용하는 별칭을 허용합니다.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "windows", "win":
		return Windows, nil
	case "linux":
		return Linux, nil
	case "macos", "osx", "darwin":
		return MacOS, nil
	default:
		return 0, &UnsupportedPlatformError{Name: s}
	}
}

// ErrUnsupportedPlatform은 현재 운영체제를 지원 플랫폼으로 판별할 수 없을 때 반환됩니다.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// UnsupportedPlatformError는 플랫폼 판별 실패의 상세 정보를 담습니다.
type UnsupportedPlatformError struct {
	// Name은 커널 식별 파일 등이 보고한 OS 이름입니다. 알 수 없으면 비어 있습니다.
	Name string
	// Err는 판별 중 발생한 원인 에러입니다.
	Err error
}

func (e *UnsupportedPlatformError) Error() string {
	switch {
	case e.Name != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", ErrUnsupportedPlatform, e.Name, e.Err)
	case e.Name != "":
		return fmt.Sprintf("%s: %s", ErrUnsupportedPlatform, e.Name)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", ErrUnsupportedPlatform, e.Err)
	default:
		return ErrUnsupportedPlatform.Error()
	}
}

// Is는 errors.Is(err, ErrUnsupportedPlatform)를 지원합니다.
func (e *UnsupportedPlatformError) Is(target error) bool {
	return target == ErrUnsupportedPlatform
}

func (e *UnsupportedPlatformError) Unwrap() error {
	return e.Err
}

// 플랫폼 판별에 사용하는 파일 시스템 표식
const (
	// KernelOSTypeFile은 커널 이름을 보고하는 의사 파일입니다.
	KernelOSTypeFile = "/proc/sys/kernel/ostype"
	// MacOSVersionFile은 macOS 시스템 버전 파일입니다.
	MacOSVersionFile = "/System/Library/CoreServices/SystemVersion.plist"
	// windowsDirEnv는 Windows 디렉토리를 가리키는 환경변수입니다.
	windowsDirEnv = "windir"
)

// unixFamily는 POSIX 계열로 취급하는 GOOS 값입니다.
var unixFamily = map[string]struct{}{
	"aix":       {},
	"android":   {},
	"darwin":    {},
	"dragonfly": {},
	"freebsd":   {},
	"hurd":      {},
	"illumos":   {},
	"ios":       {},
	"linux":     {},
	"netbsd":    {},
	"openbsd":   {},
	"solaris":   {},
}

// Probe는 플랫폼 판별에 필요한 OS 신호에 대한 접근을 추상화합니다.
type Probe struct {
	// Getenv는 환경변수를 조회합니다.
	Getenv func(key string) string
	// Stat은 파일 정보를 조회합니다.
	Stat func(name string) (fs.FileInfo, error)
	// ReadFile은 파일 내용을 읽습니다.
	ReadFile func(name string) ([]byte, error)
	// GOOS는 런타임이 보고하는 OS 계열입니다.
	GOOS string
}

// DefaultProbe는 실제 운영체제를 조회하는 Probe를 반환합니다.
func DefaultProbe() Probe {
	return Probe{
		Getenv:   os.Getenv,
		Stat:     os.Stat,
		ReadFile: os.ReadFile,
		GOOS:     runtime.GOOS,
	}
}

// Resolver는 Probe를 사용하여 플랫폼을 판별합니다.
type Resolver struct {
	probe Probe
}

// NewResolver는 주어진 Probe로 Resolver를 생성합니다.
// 비어 있는 함수 필드는 DefaultProbe의 값으로 채워집니다.
func NewResolver(probe Probe) *Resolver {
	def := DefaultProbe()
	if probe.Getenv == nil {
		probe.Getenv = def.Getenv
	}
	if probe.Stat == nil {
		probe.Stat = def.Stat
	}
	if probe.ReadFile == nil {
		probe.ReadFile = def.ReadFile
	}
	return &Resolver{probe: probe}
}

// Resolve는 실제 운영체제 신호로 현재 플랫폼을 판별합니다.
func Resolve() (Platform, error) {
	return NewResolver(DefaultProbe()).Resolve()
}

// Resolve는 현재 플랫폼을 판별합니다.
// 신호는 컨테이너 등에서 공존하거나 위장될 수 있으므로 순서대로 검사하고 처음 일치한 값을 사용합니다.
func (r *Resolver) Resolve() (Platform, error) {
	if r.isWindows() {
		return Windows, nil
	}

	if r.exists(KernelOSTypeFile) {
		data, err := r.probe.ReadFile(KernelOSTypeFile)
		if err != nil {
			return 0, &UnsupportedPlatformError{Err: fmt.Errorf("커널 식별 파일 읽기 실패: %w", err)}
		}
		name := strings.TrimSpace(string(data))
		if strings.HasPrefix(strings.ToLower(name), "linux") {
			return Linux, nil
		}
		return 0, &UnsupportedPlatformError{Name: name}
	}

	if r.exists(MacOSVersionFile) {
		return MacOS, nil
	}

	// Linux 커널 표식이 없는 POSIX 계열(BSD 등)도 Linux로 취급합니다. 근사치입니다.
	if _, ok := unixFamily[r.probe.GOOS]; ok {
		return Linux, nil
	}

	return 0, &UnsupportedPlatformError{Name: r.probe.GOOS}
}

// isWindows는 Windows 디렉토리 환경변수 또는 런타임 OS 계열로 Windows를 판별합니다.
func (r *Resolver) isWindows() bool {
	if r.probe.GOOS == "windows" {
		return true
	}
	dir := r.probe.Getenv(windowsDirEnv)
	if dir == "" || !strings.ContainsAny(dir, `\/`) {
		return false
	}
	info, err := r.probe.Stat(dir)
	return err == nil && info.IsDir()
}

func (r *Resolver) exists(name string) bool {
	_, err := r.probe.Stat(name)
	return err == nil
}
