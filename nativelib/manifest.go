package nativelib

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/insajin/nativelib/platform"
)

// Manifest는 YAML로 기술된 라이브러리 항목 목록입니다.
type Manifest struct {
	// TargetDir는 추출 대상 디렉토리입니다. 상대 경로는 매니페스트 위치 기준입니다.
	TargetDir string `yaml:"target_dir"`
	// ExplicitLoad는 명시적 로드 여부입니다.
	ExplicitLoad bool `yaml:"explicit_load"`
	// Libraries는 등록 순서대로 나열된 항목입니다.
	Libraries []ManifestEntry `yaml:"libraries"`

	// dir는 매니페스트 파일이 있는 디렉토리입니다.
	dir string
}

// ManifestEntry는 매니페스트의 단일 항목입니다.
type ManifestEntry struct {
	Platform string `yaml:"platform"`
	Arch     string `yaml:"arch"`
	// Name은 추출 파일 이름입니다. 비어 있으면 Path의 마지막 요소를 사용합니다.
	Name string `yaml:"name"`
	// Path는 매니페스트 디렉토리 기준 페이로드 경로입니다.
	Path   string `yaml:"path"`
	SHA256 string `yaml:"sha256"`
}

// LoadManifest는 path의 YAML 매니페스트를 읽습니다.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("매니페스트 읽기 실패: %w", err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("매니페스트 경로 확인 실패: %w", err)
	}
	m.dir = filepath.Dir(absPath)
	return m, nil
}

// ParseManifest는 YAML 바이트를 Manifest로 파싱합니다.
// 페이로드 경로는 현재 작업 디렉토리 기준으로 해석됩니다.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("매니페스트 파싱 실패: %w", err)
	}
	if len(m.Libraries) == 0 {
		return nil, fmt.Errorf("매니페스트에 라이브러리 항목이 없습니다")
	}
	m.dir = "."
	return &m, nil
}

// Dir은 페이로드 경로 해석 기준 디렉토리를 반환합니다.
func (m *Manifest) Dir() string {
	return m.dir
}

// ResolvedTargetDir는 매니페스트 디렉토리 기준으로 해석한 대상 디렉토리를 반환합니다.
// TargetDir가 비어 있으면 빈 문자열을 반환합니다.
func (m *Manifest) ResolvedTargetDir() string {
	if m.TargetDir == "" || filepath.IsAbs(m.TargetDir) {
		return m.TargetDir
	}
	return filepath.Join(m.dir, m.TargetDir)
}

// Items는 매니페스트 디렉토리를 페이로드 출처로 하는 항목 목록을 만듭니다.
func (m *Manifest) Items() ([]Item, error) {
	return m.ItemsFS(os.DirFS(m.dir))
}

// ItemsFS는 fsys를 페이로드 출처로 하는 항목 목록을 만듭니다.
func (m *Manifest) ItemsFS(fsys fs.FS) ([]Item, error) {
	provider := FSProvider{FS: fsys}
	items := make([]Item, 0, len(m.Libraries))

	for i, e := range m.Libraries {
		p, err := platform.ParsePlatform(e.Platform)
		if err != nil {
			return nil, fmt.Errorf("libraries[%d]: %w", i, err)
		}
		arch, err := platform.ParseArchitecture(e.Arch)
		if err != nil {
			return nil, fmt.Errorf("libraries[%d]: %w", i, err)
		}
		if e.Path == "" {
			return nil, fmt.Errorf("libraries[%d]: path가 비어 있습니다", i)
		}

		resource := filepath.ToSlash(e.Path)
		if !fs.ValidPath(resource) {
			return nil, fmt.Errorf("libraries[%d]: 잘못된 path: %q", i, e.Path)
		}
		name := e.Name
		if name == "" {
			name = filepath.Base(e.Path)
		}

		items = append(items, Item{
			Platform:     p,
			Architecture: arch,
			File: File{
				Name:     name,
				Resource: resource,
				SHA256:   e.SHA256,
				Provider: provider,
			},
		})
	}
	return items, nil
}
