package nativelib

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/insajin/nativelib/platform"
)

// Environment는 현재 실행 환경의 플랫폼과 매칭용 아키텍처를 보고합니다.
type Environment interface {
	Platform() (platform.Platform, error)
	Architecture() platform.Architecture
}

// hostEnvironment는 실제 OS 신호를 사용합니다.
type hostEnvironment struct{}

func (hostEnvironment) Platform() (platform.Platform, error) { return platform.Resolve() }
func (hostEnvironment) Architecture() platform.Architecture {
	return platform.CurrentArchitecture()
}

// HostEnvironment는 실제 호스트를 조회하는 Environment를 반환합니다.
func HostEnvironment() Environment {
	return hostEnvironment{}
}

// staticEnvironment는 고정된 값을 보고합니다.
type staticEnvironment struct {
	platform platform.Platform
	arch     platform.Architecture
}

func (e staticEnvironment) Platform() (platform.Platform, error) {
	if !e.platform.Valid() {
		return 0, &platform.UnsupportedPlatformError{Name: e.platform.String()}
	}
	return e.platform, nil
}

func (e staticEnvironment) Architecture() platform.Architecture { return e.arch }

// StaticEnvironment는 항상 p와 arch를 보고하는 Environment를 반환합니다.
// 교차 검사나 다른 플랫폼용 매니페스트 확인에 사용합니다.
func StaticEnvironment(p platform.Platform, arch platform.Architecture) Environment {
	return staticEnvironment{platform: p, arch: arch}
}

// Manager는 등록된 항목 중 현재 환경에 맞는 라이브러리를 추출하고 로드합니다.
// 로드는 Manager마다 최대 한 번 수행되며 여러 고루틴에서 동시에 호출해도 안전합니다.
type Manager struct {
	// targetDir는 라이브러리를 추출할 디렉토리입니다. 생성 후 변경되지 않습니다.
	targetDir string
	// items는 등록 순서대로 보관된 후보 항목입니다. 생성 후 변경되지 않습니다.
	items []Item

	explicitLoad atomic.Bool
	// loaded는 mu를 잡은 상태에서만 true로 바뀝니다.
	loaded atomic.Bool
	mu     sync.Mutex
	path   string

	env       Environment
	extractor Extractor
	loader    ExplicitLoader
	logger    zerolog.Logger
	stats     *Stats
}

// Option은 Manager 설정 옵션입니다.
type Option func(*Manager)

// WithTargetDir은 추출 대상 디렉토리를 설정합니다. 기본값은 현재 작업 디렉토리입니다.
func WithTargetDir(dir string) Option {
	return func(m *Manager) {
		if dir != "" {
			m.targetDir = dir
		}
	}
}

// WithExplicitLoad는 명시적 로드 여부의 초기값을 설정합니다.
func WithExplicitLoad(enabled bool) Option {
	return func(m *Manager) {
		m.explicitLoad.Store(enabled)
	}
}

// WithLogger는 로거를 설정합니다.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithEnvironment는 플랫폼/아키텍처 판별 방법을 교체합니다.
func WithEnvironment(env Environment) Option {
	return func(m *Manager) {
		if env != nil {
			m.env = env
		}
	}
}

// WithExtractor는 추출기를 교체합니다.
func WithExtractor(e Extractor) Option {
	return func(m *Manager) {
		if e != nil {
			m.extractor = e
		}
	}
}

// WithExplicitLoader는 명시적 로드에 사용할 OS 로더를 교체합니다.
func WithExplicitLoader(l ExplicitLoader) Option {
	return func(m *Manager) {
		if l != nil {
			m.loader = l
		}
	}
}

// WithStats는 통계 수집 대상을 설정합니다.
func WithStats(s *Stats) Option {
	return func(m *Manager) {
		if s != nil {
			m.stats = s
		}
	}
}

// NewManager는 주어진 항목으로 Manager를 생성합니다.
// items는 복사되어 보관되므로 호출자가 이후에 슬라이스를 수정해도 영향이 없습니다.
func NewManager(items []Item, opts ...Option) *Manager {
	m := &Manager{
		targetDir: ".",
		items:     append([]Item(nil), items...),
		env:       HostEnvironment(),
		loader:    NativeLoader(),
		logger:    zerolog.Nop(),
		stats:     NewStats(),
	}
	if wd, err := os.Getwd(); err == nil {
		m.targetDir = wd
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.extractor == nil {
		m.extractor = &FileExtractor{Perm: defaultFilePermissions, Logger: m.logger}
	}
	return m
}

// TargetDir는 추출 대상 디렉토리를 반환합니다.
func (m *Manager) TargetDir() string {
	return m.targetDir
}

// Items는 등록된 항목의 복사본을 반환합니다.
func (m *Manager) Items() []Item {
	return append([]Item(nil), m.items...)
}

// ExplicitLoad는 명시적 로드 여부를 반환합니다.
func (m *Manager) ExplicitLoad() bool {
	return m.explicitLoad.Load()
}

// SetExplicitLoad는 명시적 로드 여부를 설정합니다. Load 이후의 변경은 효과가 없습니다.
func (m *Manager) SetExplicitLoad(enabled bool) {
	m.explicitLoad.Store(enabled)
}

// Loaded는 로드가 완료되었는지 반환합니다.
func (m *Manager) Loaded() bool {
	return m.loaded.Load()
}

// Path는 로드된 라이브러리 파일 경로를 반환합니다. 로드 전에는 빈 문자열입니다.
func (m *Manager) Path() string {
	// path는 loaded가 true로 바뀌기 전에 기록되고 이후 변경되지 않음
	if !m.loaded.Load() {
		return ""
	}
	return m.path
}

// Stats는 통계 수집기를 반환합니다.
func (m *Manager) Stats() *Stats {
	return m.stats
}

// FindItem은 추출이나 로드 없이 현재 환경에 맞는 항목을 반환합니다.
func (m *Manager) FindItem() (Item, error) {
	p, err := m.env.Platform()
	if err != nil {
		return Item{}, err
	}
	return FindItem(m.items, p, m.env.Architecture())
}

// Load는 현재 환경에 맞는 라이브러리를 추출하고, 명시적 로드가 설정되어 있으면 OS 로더로 로드합니다.
// 실제 작업은 한 번만 수행되며, 실패한 경우 loaded 상태가 유지되지 않으므로 다시 호출하면 전체 과정을 재시도합니다.
func (m *Manager) Load() error {
	m.stats.LoadCalls.Add(1)
	if m.loaded.Load() {
		m.stats.FastPathHits.Add(1)
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// 잠금을 기다리는 동안 다른 고루틴이 로드를 끝냈을 수 있음
	if m.loaded.Load() {
		m.stats.FastPathHits.Add(1)
		return nil
	}

	m.stats.LoadAttempts.Add(1)
	start := time.Now()
	logger := m.logger.With().Str("attempt_id", uuid.NewString()).Logger()

	path, err := m.loadLocked(logger)
	m.stats.recordAttempt(time.Since(start), err)
	if err != nil {
		logger.Error().Err(err).Str("target_dir", m.targetDir).Msg("네이티브 라이브러리 로드 실패")
		return err
	}

	m.path = path
	m.loaded.Store(true)
	logger.Info().
		Str("path", path).
		Dur("duration", time.Since(start)).
		Msg("네이티브 라이브러리 준비 완료")
	return nil
}

// loadLocked는 매칭, 추출, 명시적 로드를 수행합니다. mu를 잡은 상태에서 호출해야 합니다.
func (m *Manager) loadLocked(logger zerolog.Logger) (string, error) {
	item, err := m.FindItem()
	if err != nil {
		return "", err
	}
	logger.Debug().
		Stringer("platform", item.Platform).
		Stringer("arch", item.Architecture).
		Str("name", item.File.Name).
		Msg("플랫폼에 맞는 라이브러리 항목 선택")

	data, err := readPayload(item.File)
	if err != nil {
		return "", fmt.Errorf("라이브러리 페이로드 읽기 실패: %w", err)
	}

	path, err := m.extractor.Extract(m.targetDir, item.File.Name, data)
	if err != nil {
		return "", fmt.Errorf("라이브러리 추출 실패: %w", err)
	}

	if !m.explicitLoad.Load() {
		return path, nil
	}

	switch item.Platform {
	case platform.Windows, platform.Linux:
		if err := m.loader.LoadLibrary(path); err != nil {
			m.stats.ExplicitFailures.Add(1)
			return "", &ExplicitLoadError{Platform: item.Platform, Path: path, Err: err}
		}
		m.stats.ExplicitLoads.Add(1)
		logger.Info().Str("path", path).Stringer("platform", item.Platform).Msg("라이브러리 명시적 로드 완료")
	case platform.MacOS:
		m.stats.ExplicitSkipped.Add(1)
		logger.Warn().
			Str("path", path).
			Msg("macOS에서는 명시적 로드로 심볼을 해석할 수 없습니다. 대상 디렉토리가 동적 로더 검색 경로에 포함되어 있어야 합니다")
	default:
		return "", &platform.UnsupportedPlatformError{Name: item.Platform.String()}
	}

	return path, nil
}
