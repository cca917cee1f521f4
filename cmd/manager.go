package cmd

import (
	"fmt"

	"github.com/insajin/nativelib/internal/config"
	"github.com/insajin/nativelib/nativelib"
	"github.com/insajin/nativelib/platform"
)

// managerFlags는 inspect와 load 명령이 공유하는 플래그 값입니다.
// 빈 문자열과 nil은 플래그가 지정되지 않았음을 뜻합니다.
type managerFlags struct {
	manifest  string
	targetDir string
	explicit  *bool
	platform  string
	arch      string
}

// newManager는 설정과 플래그를 합쳐 매니페스트 기반 Manager를 생성합니다.
// 우선순위: 플래그 > 설정(환경변수 포함) > 매니페스트 > 현재 디렉토리
func newManager(cfg config.LoaderConfig, flags managerFlags, opts ...nativelib.Option) (*nativelib.Manager, error) {
	manifestPath := cfg.Manifest
	if flags.manifest != "" {
		manifestPath = flags.manifest
	}

	m, err := nativelib.LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}
	items, err := m.Items()
	if err != nil {
		return nil, err
	}

	targetDir := m.ResolvedTargetDir()
	if cfg.TargetDir != "" {
		targetDir = cfg.TargetDir
	}
	if flags.targetDir != "" {
		targetDir = flags.targetDir
	}

	explicit := m.ExplicitLoad
	if cfg.ExplicitLoad != nil {
		explicit = *cfg.ExplicitLoad
	}
	if flags.explicit != nil {
		explicit = *flags.explicit
	}

	env, err := overrideEnvironment(flags.platform, flags.arch)
	if err != nil {
		return nil, err
	}

	base := []nativelib.Option{
		nativelib.WithTargetDir(targetDir),
		nativelib.WithExplicitLoad(explicit),
		nativelib.WithLogger(libLogger),
	}
	if env != nil {
		base = append(base, nativelib.WithEnvironment(env))
	}
	return nativelib.NewManager(items, append(base, opts...)...), nil
}

// overrideEnvironment는 --platform/--arch 지정 시 고정 환경을 반환합니다.
// 둘 다 비어 있으면 nil을 반환하며 호스트 환경이 사용됩니다.
func overrideEnvironment(platformName, archName string) (nativelib.Environment, error) {
	if platformName == "" && archName == "" {
		return nil, nil
	}

	var p platform.Platform
	if platformName != "" {
		parsed, err := platform.ParsePlatform(platformName)
		if err != nil {
			return nil, err
		}
		p = parsed
	} else {
		resolved, err := platform.Resolve()
		if err != nil {
			return nil, fmt.Errorf("플랫폼 판별 실패: %w", err)
		}
		p = resolved
	}

	arch := platform.CurrentArchitecture()
	if archName != "" {
		parsed, err := platform.ParseArchitecture(archName)
		if err != nil {
			return nil, err
		}
		arch = parsed
	}

	return nativelib.StaticEnvironment(p, arch), nil
}
