package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/AnthonyWong1216/hmcscannerdraw/internal/collector"
	"github.com/AnthonyWong1216/hmcscannerdraw/internal/config"
	"github.com/AnthonyWong1216/hmcscannerdraw/internal/render"
	"github.com/AnthonyWong1216/hmcscannerdraw/internal/ui"
	"github.com/spf13/cobra"
)

var (
	outputJSON   string
	outputD2     string
	logDir       string
	snapshotFile string
	detailLevel  string
	autoRender   bool
	renderFormat string
	themeName    string
	direction    string
	textDiagram  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a D2 diagram of the SEA topology",
	Long: `Extract the SEA topology from lssea logs (or a previously saved JSON
snapshot), persist it as JSON, and generate a D2 diagram file.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&outputJSON, "output-json", "", "output JSON model path")
	generateCmd.Flags().StringVarP(&outputD2, "output", "o", "", "output D2 file path")
	generateCmd.Flags().StringVar(&logDir, "log-dir", "", "directory containing lssea*log files")
	generateCmd.Flags().StringVar(&snapshotFile, "snapshot", "", "previously extracted JSON snapshot to render instead of logs")
	generateCmd.Flags().StringVar(&detailLevel, "detail", "", "detail level: minimal, standard, detailed")
	generateCmd.Flags().BoolVar(&autoRender, "render", false, "auto-render to SVG/PNG after generating D2 (requires d2)")
	generateCmd.Flags().StringVar(&renderFormat, "format", "", "output format for --render: svg, png (default: svg)")
	generateCmd.Flags().StringVar(&themeName, "theme", "", "color theme: default, dark, monochrome, ocean")
	generateCmd.Flags().StringVar(&direction, "direction", "", "diagram direction: down, right")
	generateCmd.Flags().BoolVar(&textDiagram, "text", false, "also print a plain-text tree of the topology")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run 'hmcscannerdraw init' to create a config file"))
		return err
	}

	applyFlagOverrides(cfg)

	fmt.Println(ui.Bold("Extracting SEA topology..."))

	topo, results, err := collector.Collect(cfg)

	// Print collector results
	for _, r := range results {
		if r.Skipped {
			ui.CollectorSkipped(r.Name)
			continue
		}
		if r.Err != nil {
			fmt.Fprint(os.Stderr, ui.FormatError(r.Name+" failed", r.Err.Error(), ""))
			continue
		}
		ui.CollectorDone(r.Name, r.Detail)
		for _, w := range r.Warnings {
			ui.Warn(w)
		}
	}

	if err != nil {
		return err
	}

	// Persist the extracted model
	if cfg.Output.JSON != "" {
		data, err := json.MarshalIndent(topo.Hosts, "", "  ")
		if err != nil {
			fmt.Fprint(os.Stderr, ui.FormatError("Failed to encode model", err.Error(), ""))
			return err
		}
		if err := os.WriteFile(cfg.Output.JSON, data, 0644); err != nil {
			fmt.Fprint(os.Stderr, ui.FormatError("Failed to write JSON output", err.Error(), ""))
			return err
		}
	}

	d2Content := render.RenderD2(topo, cfg)

	if err := os.WriteFile(cfg.Output.D2, []byte(d2Content), 0644); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to write output", err.Error(), ""))
		return err
	}

	ui.Success(fmt.Sprintf("Generated %s (%d hosts, %d SEA sections)", cfg.Output.D2, len(topo.Hosts), topo.SeaCount()))

	if textDiagram {
		fmt.Println()
		fmt.Print(render.RenderText(topo))
	}

	// Auto-render if requested
	if cfg.Render.AutoRender {
		if err := autoRenderD2(cfg.Output.D2, cfg.Render.Format); err != nil {
			fmt.Fprint(os.Stderr, ui.FormatError("Auto-render failed", err.Error(), "install d2: https://d2lang.com/tour/install"))
		}
	}

	return nil
}

func applyFlagOverrides(cfg *config.Config) {
	if outputJSON != "" {
		cfg.Output.JSON = outputJSON
	}
	if outputD2 != "" {
		cfg.Output.D2 = outputD2
	}
	if logDir != "" {
		cfg.Sources.Lssea.Dir = logDir
		setRawSource(cfg, "lssea", "dir", logDir)
	}
	if snapshotFile != "" {
		cfg.Sources.Snapshot.File = snapshotFile
		setRawSource(cfg, "snapshot", "file", snapshotFile)
	}
	if detailLevel != "" {
		cfg.Render.DetailLevel = detailLevel
	}
	if autoRender {
		cfg.Render.AutoRender = true
	}
	if renderFormat != "" {
		cfg.Render.Format = renderFormat
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	if direction != "" {
		cfg.Direction = direction
	}
}

// setRawSource mirrors a flag override into the raw sources map that
// drives the collector registry.
func setRawSource(cfg *config.Config, collectorKey, field, value string) {
	if cfg.RawSources == nil {
		cfg.RawSources = make(map[string]any)
	}
	section, _ := cfg.RawSources[collectorKey].(map[string]any)
	if section == nil {
		section = make(map[string]any)
	}
	section[field] = value
	cfg.RawSources[collectorKey] = section
}

func autoRenderD2(d2File, format string) error {
	if format == "" {
		format = "svg"
	}

	// Check if d2 is available
	d2Path, err := findExecutable("d2")
	if err != nil {
		return fmt.Errorf("d2 not found in PATH - install it from https://d2lang.com/tour/install")
	}

	outFile := strings.TrimSuffix(d2File, ".d2") + "." + format

	cmd := execCommand(d2Path, d2File, outFile)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("d2 render failed: %w", err)
	}

	ui.Success(fmt.Sprintf("Rendered %s", outFile))
	return nil
}
