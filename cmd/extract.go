package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnthonyWong1216/hmcscannerdraw/internal/collector"
	"github.com/AnthonyWong1216/hmcscannerdraw/internal/config"
	"github.com/AnthonyWong1216/hmcscannerdraw/internal/model"
	"github.com/AnthonyWong1216/hmcscannerdraw/internal/ui"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	extractLogDir string
	extractOutput string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the SEA topology to JSON without rendering",
	Long: `Parse every lssea*log file in the configured directory, print a
per-file summary, and save the extracted model as JSON.`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&extractLogDir, "log-dir", "", "directory containing lssea*log files")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output JSON path")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run 'hmcscannerdraw init' to create a config file"))
		return err
	}

	if extractLogDir != "" {
		cfg.Sources.Lssea.Dir = extractLogDir
	}
	if extractOutput != "" {
		cfg.Output.JSON = extractOutput
	}

	lc := &collector.LsseaCollector{
		Dir:    cfg.Sources.Lssea.Dir,
		Prefix: cfg.Sources.Lssea.Prefix,
		Suffix: cfg.Sources.Lssea.Suffix,
	}

	fmt.Println(ui.Bold(fmt.Sprintf("Processing lssea logs in %s...", lc.Dir)))

	topo := model.NewTopology()
	if err := lc.Collect(topo); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Extraction failed", err.Error(), ""))
		return err
	}
	collector.Finalize(topo)

	for _, w := range lc.Warnings() {
		ui.Warn(w)
	}

	for _, hc := range topo.Hosts {
		size := ""
		if info, err := os.Stat(filepath.Join(lc.Dir, hc.SourceFile)); err == nil {
			size = humanize.Bytes(uint64(info.Size()))
		}
		ui.FileProcessed(hc.SourceFile, hc.HostLabel(), len(hc.SeaSections), size)
	}

	if len(topo.Hosts) == 0 {
		ui.Warn(fmt.Sprintf("no lssea logs found in %s", lc.Dir))
		return nil
	}

	data, err := json.MarshalIndent(topo.Hosts, "", "  ")
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to encode model", err.Error(), ""))
		return err
	}
	if err := os.WriteFile(cfg.Output.JSON, data, 0644); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to write JSON output", err.Error(), ""))
		return err
	}

	ui.Success(fmt.Sprintf("Network configuration saved to %s (%d hosts, %d SEA sections)",
		cfg.Output.JSON, len(topo.Hosts), topo.SeaCount()))

	return nil
}
