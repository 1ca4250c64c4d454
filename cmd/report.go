package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spalmeida/verifica-sites/internal/report"
	"github.com/spalmeida/verifica-sites/internal/store"
)

var reportPDFPath string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize the snapshot archive and optionally export the last run as PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := store.New(cliConfig.OutputDir)

		summaries, err := st.Summaries()
		if err != nil {
			return fmt.Errorf("scan archive: %w", err)
		}

		renderer := &report.Renderer{Out: os.Stdout}
		renderer.RenderArchive(summaries)

		if reportPDFPath == "" {
			return nil
		}

		resultsPath := filepath.Join(cliConfig.OutputDir, resultsFilename)
		out, err := report.LoadJSON(resultsPath)
		if err != nil {
			return fmt.Errorf("no run output to export (run verify first): %w", err)
		}
		if err := report.WritePDF(reportPDFPath, out); err != nil {
			return err
		}
		fmt.Printf("%s %s\n", colorInfo("PDF report:"), reportPDFPath)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportPDFPath, "pdf", "", "export the last run's results to this PDF file")
}
