//go:build darwin || linux || freebsd

package nativelib

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// openLibrary는 dlopen으로 공유 객체를 로드합니다.
// 이후 FFI 바인딩이 심볼을 찾을 수 있도록 RTLD_GLOBAL로 엽니다.
func openLibrary(path string) (uintptr, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	if handle == 0 {
		return 0, fmt.Errorf("dlopen이 빈 핸들을 반환했습니다: %s", path)
	}
	return handle, nil
}
