//go:build windows

package nativelib

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// openLibrary는 LoadLibraryEx로 DLL을 로드합니다.
// 의존 DLL을 라이브러리와 같은 디렉토리에서 찾도록 LOAD_WITH_ALTERED_SEARCH_PATH를 사용합니다.
func openLibrary(path string) (uintptr, error) {
	handle, err := windows.LoadLibraryEx(path, 0, windows.LOAD_WITH_ALTERED_SEARCH_PATH)
	if err != nil {
		return 0, err
	}
	if handle == 0 {
		return 0, fmt.Errorf("LoadLibraryEx가 빈 핸들을 반환했습니다: %s", path)
	}
	return uintptr(handle), nil
}
