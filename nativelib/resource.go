package nativelib

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// ResourceProvider는 식별자로 임베드된 바이너리 페이로드를 제공합니다.
type ResourceProvider interface {
	ReadResource(id string) ([]byte, error)
}

// FSProvider는 fs.FS(embed.FS, os.DirFS 등)에서 리소스를 읽습니다.
type FSProvider struct {
	FS fs.FS
}

// ReadResource는 FS에서 id 경로의 파일을 읽습니다.
func (p FSProvider) ReadResource(id string) ([]byte, error) {
	data, err := fs.ReadFile(p.FS, id)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("리소스 읽기 실패 (%s): %w", id, err)
	}
	return data, nil
}

// BytesProvider는 메모리에 보관된 리소스를 제공합니다.
type BytesProvider map[string][]byte

// ReadResource는 id에 해당하는 바이트를 반환합니다.
func (p BytesProvider) ReadResource(id string) ([]byte, error) {
	data, ok := p[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, id)
	}
	return data, nil
}

// EmbeddedFile은 fsys 안의 name 경로를 페이로드로 하는 File을 만듭니다.
// 추출 파일 이름은 경로의 마지막 요소입니다.
func EmbeddedFile(fsys fs.FS, name string) File {
	return File{
		Name:     path.Base(name),
		Resource: name,
		Provider: FSProvider{FS: fsys},
	}
}

// BytesFile은 data를 페이로드로 하는 File을 만듭니다.
func BytesFile(name string, data []byte) File {
	return File{
		Name:     name,
		Resource: name,
		Provider: BytesProvider{name: data},
	}
}

// readPayload는 파일의 페이로드를 읽고 체크섬을 검증합니다.
func readPayload(f File) ([]byte, error) {
	if f.Provider == nil {
		return nil, fmt.Errorf("%w: %s (리소스 제공자가 없습니다)", ErrResourceNotFound, f.Resource)
	}
	data, err := f.Provider.ReadResource(f.Resource)
	if err != nil {
		return nil, err
	}
	if f.SHA256 != "" {
		if err := verifyChecksum(data, f.SHA256); err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
	}
	return data, nil
}
