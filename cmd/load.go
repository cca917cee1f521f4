package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/insajin/nativelib/internal/config"
	"github.com/insajin/nativelib/nativelib"
	"github.com/spf13/cobra"
)

// LoadResult는 load 명령의 JSON 출력입니다.
type LoadResult struct {
	Loaded bool                    `json:"loaded"`
	Path   string                  `json:"path,omitempty"`
	Error  string                  `json:"error,omitempty"`
	Stats  nativelib.StatsSnapshot `json:"stats"`
}

var (
	loadManifest  string
	loadTargetDir string
	loadExplicit  bool
	loadJSON      bool
)

// loadCmd는 라이브러리를 추출하고 필요하면 명시적으로 로드합니다.
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "현재 환경에 맞는 라이브러리를 추출하고 로드합니다",
	Long: `매니페스트에서 현재 플랫폼과 아키텍처에 일치하는 라이브러리를 찾아
대상 디렉토리에 추출합니다.

--explicit가 지정되면 Windows와 Linux에서는 추출된 파일을 OS 로더로
로드합니다. macOS에서는 경고만 남기고 로드를 건너뜁니다.`,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringVarP(&loadManifest, "manifest", "m", "", "매니페스트 파일 경로 (기본값: 설정의 loader.manifest)")
	loadCmd.Flags().StringVarP(&loadTargetDir, "target-dir", "d", "", "추출 대상 디렉토리")
	loadCmd.Flags().BoolVar(&loadExplicit, "explicit", false, "추출 후 OS 로더로 명시적으로 로드")
	loadCmd.Flags().BoolVar(&loadJSON, "json", false, "JSON 형식으로 출력")
}

// runLoad는 load 명령의 실행 로직입니다.
func runLoad(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	flags := managerFlags{
		manifest:  loadManifest,
		targetDir: loadTargetDir,
	}
	if cmd.Flags().Changed("explicit") {
		flags.explicit = &loadExplicit
	}

	mgr, err := newManager(cfg.Loader, flags)
	if err != nil {
		return err
	}

	loadErr := mgr.Load()

	out := cmd.OutOrStdout()
	if loadJSON {
		result := LoadResult{
			Loaded: mgr.Loaded(),
			Path:   mgr.Path(),
			Stats:  mgr.Stats().Snapshot(),
		}
		if loadErr != nil {
			result.Error = loadErr.Error()
		}
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("JSON 직렬화 실패: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return loadErr
	}

	if loadErr != nil {
		fmt.Fprintln(out, failStyle.Render("로드 실패"))
		return loadErr
	}

	snap := mgr.Stats().Snapshot()
	printTitle(out, "라이브러리 로드")
	printField(out, "상태", okStyle.Render("로드됨"))
	printField(out, "경로", mgr.Path())
	printField(out, "명시적 로드", mgr.ExplicitLoad())
	printField(out, "명시적 로드 횟수", snap.ExplicitLoads)
	printField(out, "명시적 로드 생략", snap.ExplicitSkipped)
	printField(out, "소요 시간", fmt.Sprintf("%.2fms", snap.LastDurationMs))
	return nil
}
