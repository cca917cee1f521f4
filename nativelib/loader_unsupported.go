//go:build !(darwin || linux || freebsd || windows)

package nativelib

import "fmt"

// openLibrary는 명시적 로드 수단이 없는 플랫폼에서 에러를 반환합니다.
func openLibrary(path string) (uintptr, error) {
	return 0, fmt.Errorf("%w: cannot load %s", ErrExplicitLoadUnsupported, path)
}
