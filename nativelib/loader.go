package nativelib

import "sync"

// ExplicitLoader는 추출된 라이브러리를 프로세스 주소 공간에 명시적으로 로드하는 OS 기본 기능입니다.
type ExplicitLoader interface {
	LoadLibrary(path string) error
}

// ExplicitLoaderFunc는 함수를 ExplicitLoader로 사용할 수 있게 합니다.
type ExplicitLoaderFunc func(path string) error

// LoadLibrary는 f(path)를 호출합니다.
func (f ExplicitLoaderFunc) LoadLibrary(path string) error {
	return f(path)
}

// nativeLoader는 현재 빌드의 OS 로더를 사용합니다.
// 언로드는 지원하지 않으므로 핸들은 프로세스 수명 동안 보관만 합니다.
type nativeLoader struct {
	mu      sync.Mutex
	handles map[string]uintptr
}

// NativeLoader는 현재 빌드에 맞는 ExplicitLoader를 반환합니다.
// Windows에서는 LoadLibraryEx, Unix에서는 dlopen을 사용합니다.
func NativeLoader() ExplicitLoader {
	return &nativeLoader{handles: make(map[string]uintptr)}
}

// LoadLibrary는 path를 OS 로더로 엽니다. 이미 연 경로는 다시 열지 않습니다.
func (l *nativeLoader) LoadLibrary(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.handles[path]; ok {
		return nil
	}
	handle, err := openLibrary(path)
	if err != nil {
		return err
	}
	l.handles[path] = handle
	return nil
}
