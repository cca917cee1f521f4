package nativelib

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// defaultDirPermissions는 대상 디렉토리 생성 권한입니다.
	defaultDirPermissions = 0o755
	// defaultFilePermissions는 추출된 라이브러리 파일 권한입니다.
	defaultFilePermissions = 0o755
)

// Extractor는 (이름, 바이트) 쌍을 대상 디렉토리에 기록하고 절대 경로를 반환합니다.
// 같은 내용의 파일이 이미 있으면 쓰기를 건너뛰어야 합니다.
type Extractor interface {
	Extract(dir, name string, data []byte) (string, error)
}

// FileExtractor는 로컬 파일 시스템에 라이브러리를 추출합니다.
type FileExtractor struct {
	// Perm은 새로 쓰는 파일의 권한입니다. 0이면 0755를 사용합니다.
	Perm fs.FileMode
	// Logger는 추출 과정을 기록합니다.
	Logger zerolog.Logger
}

// NewFileExtractor는 기본 권한과 Nop 로거를 사용하는 FileExtractor를 생성합니다.
func NewFileExtractor() *FileExtractor {
	return &FileExtractor{
		Perm:   defaultFilePermissions,
		Logger: zerolog.Nop(),
	}
}

// Extract는 dir/name에 data를 기록합니다.
// 기존 파일의 SHA256이 같으면 쓰지 않고, 다르면 같은 디렉토리의 임시 파일에 쓴 뒤 rename으로 교체합니다.
func (e *FileExtractor) Extract(dir, name string, data []byte) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("잘못된 라이브러리 파일 이름: %q", name)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("대상 디렉토리 경로 확인 실패: %w", err)
	}
	if err := os.MkdirAll(absDir, defaultDirPermissions); err != nil {
		return "", fmt.Errorf("대상 디렉토리 생성 실패: %w", err)
	}

	target := filepath.Join(absDir, name)

	same, err := sameContent(target, data)
	if err != nil {
		return "", err
	}
	if same {
		e.Logger.Debug().Str("path", target).Msg("동일한 라이브러리 파일이 이미 존재하여 추출을 건너뜁니다")
		return target, nil
	}

	perm := e.Perm
	if perm == 0 {
		perm = defaultFilePermissions
	}

	tmp, err := os.CreateTemp(absDir, "."+name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("임시 파일 생성 실패: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// 교체 성공 시에는 이미 rename되어 없음
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("파일 쓰기 실패: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("파일 닫기 실패: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return "", fmt.Errorf("파일 권한 설정 실패: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return "", fmt.Errorf("라이브러리 파일 교체 실패 (%s): %w", target, err)
	}

	e.Logger.Info().Str("path", target).Int("bytes", len(data)).Msg("라이브러리 파일 추출 완료")
	return target, nil
}

// sameContent는 path의 파일이 data와 같은 내용인지 확인합니다.
func sameContent(path string, data []byte) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("기존 파일 확인 실패: %w", err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("추출 대상 경로가 디렉토리입니다: %s", path)
	}
	if info.Size() != int64(len(data)) {
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("기존 파일 열기 실패: %w", err)
	}
	defer func() { _ = f.Close() }()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return false, fmt.Errorf("해시 계산 실패: %w", err)
	}
	want := sha256.Sum256(data)
	return bytes.Equal(hasher.Sum(nil), want[:]), nil
}

// verifyChecksum은 data의 SHA256 체크섬을 검증합니다.
func verifyChecksum(data []byte, expected string) error {
	sum := sha256.Sum256(data)
	actual := hex.EncodeToString(sum[:])
	if !strings.EqualFold(actual, strings.TrimSpace(expected)) {
		return fmt.Errorf("%w: 예상 %s, 실제 %s", ErrChecksumMismatch, expected, actual)
	}
	return nil
}
