//go:build darwin || linux || freebsd

package nativelib

import (
	"errors"
	"os"
	"testing"

	"github.com/insajin/nativelib/platform"
)

// TestManager_NativeLoaderRejectsCorruptPayload는 실제 OS 로더가 손상된 바이너리를 거부할 때
// Load가 실패 상태를 유지하고 재시도 시 다시 추출하는지 테스트합니다.
func TestManager_NativeLoaderRejectsCorruptPayload(t *testing.T) {
	dir := t.TempDir()
	ext := newCountingExtractor()
	items := []Item{
		{Platform: platform.Linux, Architecture: platform.X64, File: BytesFile("libcorrupt.so", []byte("not an ELF shared object"))},
	}
	m := NewManager(items,
		WithTargetDir(dir),
		WithEnvironment(StaticEnvironment(platform.Linux, platform.X64)),
		WithExtractor(ext),
		WithExplicitLoad(true),
	)

	err := m.Load()
	if !errors.Is(err, ErrExplicitLoadFailed) {
		t.Fatalf("Load() error = %v, want ErrExplicitLoadFailed", err)
	}
	var le *ExplicitLoadError
	if !errors.As(err, &le) {
		t.Fatalf("ExplicitLoadError가 아닙니다: %T", err)
	}
	if _, statErr := os.Stat(le.Path); statErr != nil {
		t.Errorf("추출된 파일이 없습니다: %v", statErr)
	}
	if m.Loaded() {
		t.Fatal("실패 후 Loaded()가 true입니다")
	}
	if m.Path() != "" {
		t.Errorf("실패 후 Path() = %q, want empty", m.Path())
	}

	// 재시도는 매칭부터 다시 수행
	if err := m.Load(); !errors.Is(err, ErrExplicitLoadFailed) {
		t.Fatalf("재시도 Load() error = %v, want ErrExplicitLoadFailed", err)
	}
	if ext.calls.Load() != 2 {
		t.Errorf("추출 횟수 = %d, want 2", ext.calls.Load())
	}
	snap := m.Stats().Snapshot()
	if snap.LoadAttempts != 2 || snap.ExplicitFailures != 2 || snap.LoadSuccesses != 0 {
		t.Errorf("snapshot = %+v, want attempts=2 explicit_failures=2 successes=0", snap)
	}
}
