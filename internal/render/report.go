package render

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Nomadcxx/sceneparse/internal/parser"
)

// Generate writes a timestamped batch report file and returns its path.
func Generate(results []*parser.Release) (string, error) {
	reportDir := getReportDir()
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	now := time.Now()
	filename := filepath.Join(reportDir, now.Format("20060102_150405")+".txt")

	content := Summary(results, now) + "\nRESULTS\n"
	for _, r := range results {
		content += fmt.Sprintf("%s\n  %s\n", r.Raw, r.String())
	}

	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return filename, nil
}

// getReportDir returns the report directory path
func getReportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "/tmp/sceneparse/reports"
	}
	return filepath.Join(home, ".local/share/sceneparse/reports")
}
