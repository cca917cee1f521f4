// Package nativelib은 임베드된 네이티브 공유 라이브러리 중 현재 플랫폼에 맞는 바이너리를 골라
// 대상 디렉토리에 추출하고, 필요하면 OS 로더로 명시적으로 로드합니다.
// 로드는 Manager마다 최대 한 번만 수행됩니다.
package nativelib

import (
	"errors"
	"fmt"

	"github.com/insajin/nativelib/platform"
)

// 라이브러리 관련 에러 정의
var (
	// ErrNoBinaryForPlatform은 등록된 항목 중 현재 플랫폼/아키텍처에 맞는 것이 없을 때 반환됩니다.
	ErrNoBinaryForPlatform = errors.New("no binary registered for platform")

	// ErrExplicitLoadFailed는 OS 로더가 추출된 바이너리를 거부했을 때 반환됩니다.
	ErrExplicitLoadFailed = errors.New("explicit library load failed")

	// ErrExplicitLoadUnsupported는 현재 빌드에 명시적 로드 수단이 없을 때 반환됩니다.
	ErrExplicitLoadUnsupported = errors.New("explicit library loading is not supported on this build")

	// ErrChecksumMismatch는 페이로드의 SHA256이 기대값과 다를 때 반환됩니다.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrResourceNotFound는 리소스 제공자에 요청한 리소스가 없을 때 반환됩니다.
	ErrResourceNotFound = errors.New("resource not found")
)

// File은 추출할 파일의 이름과 페이로드 출처를 기술합니다.
type File struct {
	// Name은 대상 디렉토리에 기록될 파일 이름입니다.
	Name string
	// Resource는 Provider에 전달할 리소스 식별자입니다.
	Resource string
	// SHA256은 페이로드의 기대 체크섬(hex)입니다. 비어 있으면 검증하지 않습니다.
	SHA256 string
	// Provider는 페이로드 바이트를 제공합니다.
	Provider ResourceProvider
}

// Item은 (플랫폼, 아키텍처, 파일) 튜플입니다.
type Item struct {
	Platform     platform.Platform
	Architecture platform.Architecture
	File         File
}

func (i Item) String() string {
	return fmt.Sprintf("%s/%s:%s", i.Platform, i.Architecture, i.File.Name)
}

// NoBinaryForPlatformError는 매칭 실패 시 판별된 플랫폼과 아키텍처를 담습니다.
type NoBinaryForPlatformError struct {
	Platform     platform.Platform
	Architecture platform.Architecture
}

func (e *NoBinaryForPlatformError) Error() string {
	return fmt.Sprintf("%s: %s/%s", ErrNoBinaryForPlatform, e.Platform, e.Architecture)
}

// Is는 errors.Is(err, ErrNoBinaryForPlatform)를 지원합니다.
func (e *NoBinaryForPlatformError) Is(target error) bool {
	return target == ErrNoBinaryForPlatform
}

// ExplicitLoadError는 OS 로더 실패의 상세 정보를 담습니다.
type ExplicitLoadError struct {
	Platform platform.Platform
	Path     string
	Err      error
}

func (e *ExplicitLoadError) Error() string {
	return fmt.Sprintf("%s: %s (%s): %v", ErrExplicitLoadFailed, e.Path, e.Platform, e.Err)
}

// Is는 errors.Is(err, ErrExplicitLoadFailed)를 지원합니다.
func (e *ExplicitLoadError) Is(target error) bool {
	return target == ErrExplicitLoadFailed
}

func (e *ExplicitLoadError) Unwrap() error {
	return e.Err
}

// FindItem은 등록 순서대로 항목을 훑어 (플랫폼, 아키텍처)가 정확히 일치하는 첫 항목을 반환합니다.
// 호환 아키텍처 매칭은 하지 않습니다.
func FindItem(items []Item, p platform.Platform, arch platform.Architecture) (Item, error) {
	for _, item := range items {
		if item.Platform == p && item.Architecture == arch {
			return item, nil
		}
	}
	return Item{}, &NoBinaryForPlatformError{Platform: p, Architecture: arch}
}
