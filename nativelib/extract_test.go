package nativelib

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"
)

// TestFileExtractor_Extract는 새 파일 추출을 테스트합니다.
func TestFileExtractor_Extract(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "lib")
	e := NewFileExtractor()

	path, err := e.Extract(dir, "libfoo.so", []byte("payload"))
	if err != nil {
		t.Fatalf("Extract() 에러: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("반환 경로가 절대 경로가 아닙니다: %s", path)
	}
	if path != filepath.Join(dir, "libfoo.so") {
		t.Errorf("Extract() = %s, want %s", path, filepath.Join(dir, "libfoo.so"))
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "payload" {
		t.Errorf("추출된 내용 = %q, %v", data, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir 실패: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("임시 파일이 남아 있습니다: %d개 항목", len(entries))
	}
}

// TestFileExtractor_SkipIdentical은 같은 내용의 파일이 있으면 쓰지 않는지 테스트합니다.
func TestFileExtractor_SkipIdentical(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "foo.dll")
	if err := os.WriteFile(target, []byte("same"), 0o644); err != nil {
		t.Fatalf("사전 파일 생성 실패: %v", err)
	}
	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	if err := os.Chtimes(target, old, old); err != nil {
		t.Fatalf("Chtimes 실패: %v", err)
	}

	if _, err := NewFileExtractor().Extract(dir, "foo.dll", []byte("same")); err != nil {
		t.Fatalf("Extract() 에러: %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Stat 실패: %v", err)
	}
	if !info.ModTime().Equal(old) {
		t.Errorf("동일한 파일이 다시 기록되었습니다: modtime %v", info.ModTime())
	}
}

// TestFileExtractor_OverwriteDifferent는 내용이 다르면 교체하는지 테스트합니다.
func TestFileExtractor_OverwriteDifferent(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "foo.dll")
	if err := os.WriteFile(target, []byte("old-content"), 0o644); err != nil {
		t.Fatalf("사전 파일 생성 실패: %v", err)
	}

	if _, err := NewFileExtractor().Extract(dir, "foo.dll", []byte("new")); err != nil {
		t.Fatalf("Extract() 에러: %v", err)
	}

	data, _ := os.ReadFile(target)
	if string(data) != "new" {
		t.Errorf("내용 = %q, want %q", data, "new")
	}
}

// TestFileExtractor_InvalidName은 경로가 포함된 이름을 거부하는지 테스트합니다.
func TestFileExtractor_InvalidName(t *testing.T) {
	for _, name := range []string{"", ".", "..", "../escape.so", `sub\foo.dll`} {
		if _, err := NewFileExtractor().Extract(t.TempDir(), name, []byte("x")); err == nil {
			t.Errorf("Extract(%q)가 에러를 반환하지 않았습니다", name)
		}
	}
}

// TestVerifyChecksum은 체크섬 검증을 테스트합니다.
func TestVerifyChecksum(t *testing.T) {
	data := []byte("library")
	sum := sha256.Sum256(data)
	good := hex.EncodeToString(sum[:])

	tests := []struct {
		name     string
		expected string
		wantErr  bool
	}{
		{name: "일치", expected: good},
		{name: "대문자 hex도 허용", expected: toUpper(good)},
		{name: "불일치", expected: "deadbeef", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verifyChecksum(data, tt.expected)
			if tt.wantErr != (err != nil) {
				t.Fatalf("verifyChecksum() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrChecksumMismatch) {
				t.Errorf("ErrChecksumMismatch가 아닙니다: %v", err)
			}
		})
	}
}

func toUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'f' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// TestFSProvider는 fs.FS 기반 리소스 제공자를 테스트합니다.
func TestFSProvider(t *testing.T) {
	fsys := fstest.MapFS{
		"lib/linux-x64/libfoo.so": {Data: []byte("elf")},
	}

	f := EmbeddedFile(fsys, "lib/linux-x64/libfoo.so")
	if f.Name != "libfoo.so" {
		t.Errorf("Name = %q, want libfoo.so", f.Name)
	}

	data, err := readPayload(f)
	if err != nil || string(data) != "elf" {
		t.Fatalf("readPayload() = %q, %v", data, err)
	}

	_, err = FSProvider{FS: fsys}.ReadResource("missing.so")
	if !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("ReadResource(missing) error = %v, want ErrResourceNotFound", err)
	}
}

// TestReadPayload_NoProvider는 제공자가 없는 파일을 테스트합니다.
func TestReadPayload_NoProvider(t *testing.T) {
	_, err := readPayload(File{Name: "x.so", Resource: "x.so"})
	if !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("readPayload() error = %v, want ErrResourceNotFound", err)
	}
}
