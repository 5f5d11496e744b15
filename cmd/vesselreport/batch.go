// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vesselmon/internal/output"
	"github.com/katalvlaran/vesselmon/payload"
	"github.com/katalvlaran/vesselmon/report"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>...",
	Short: "Compose reports for many documents concurrently",
	Long: `Compose one report per document, detecting each document's kind.
A failing document is reported without stopping the others.

Examples:
  vesselreport batch results/*.json
  vesselreport batch a.json b.json --workers 8 --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().Int("workers", 4, "number of documents composed concurrently")
}

// batchResult is the outcome for one document.
type batchResult struct {
	File   string         `json:"file"`
	Report *report.Report `json:"report,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	results := composeAll(cmd.Context(), args, cfg.Batch.Workers)

	var failed int
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}

	if cfg.Output.Format == "json" {
		if err := output.WriteJSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
	} else {
		printer, err := newPrinter(cmd)
		if err != nil {
			return err
		}
		printBatch(printer, results)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}

	return nil
}

// composeAll composes every file with at most workers in flight. Results keep
// the order of files.
func composeAll(ctx context.Context, files []string, workers int) []batchResult {
	results := make([]batchResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, file := range files {
		results[i].File = file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Error = err.Error()
				return nil
			}
			r, err := composeFile(file)
			if err != nil {
				logger.Debug("document failed", "file", file, "error", err)
				results[i].Error = err.Error()
				return nil
			}
			results[i].Report = r
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func composeFile(file string) (*report.Report, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	return payload.Compose(composer, "", data, "")
}

func printBatch(p *output.Printer, results []batchResult) {
	t := output.NewTable(p.Out(), []string{"文件", "类型", "标题", "结论"})
	for _, r := range results {
		name := filepath.Base(r.File)
		if r.Error != "" {
			t.AddRow(name, "-", "-", "错误: "+r.Error)
			continue
		}
		t.AddRow(name, string(r.Report.Kind), r.Report.Title, verdict(r.Report))
	}
	t.Render()

	var failed int
	for _, r := range results {
		if r.Error != "" {
			p.Error("%s: %s", r.File, r.Error)
			failed++
		}
	}
	if failed == 0 {
		p.Success("%d documents composed", len(results))
	}
}

// verdict summarizes a report in one cell.
func verdict(r *report.Report) string {
	switch {
	case r.Empty:
		return report.NoDataText
	case r.Assessment != nil:
		v := r.Assessment.Regime.Label()
		if r.Assessment.Provisional {
			v += " (临时)"
		}
		return v
	case r.Tier != 0:
		return r.Tier.Label()
	default:
		return fmt.Sprintf("%d 项统计", len(r.Stats))
	}
}
