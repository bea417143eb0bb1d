package dispatch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jakobhellermann/beancount-paypal/internal/ledger"
)

// Importer is the contract the dispatch loop expects from each configured
// importer instance.
type Importer interface {
	// Identify must be cheap and side-effect-free: header row only.
	Identify(path string) bool
	// Extract converts the file into directives. The existing directives
	// hint is informational and may be ignored.
	Extract(path string, existing []ledger.Directive) ([]ledger.Directive, error)
	// Account is the fixed account this importer books against.
	Account(path string) string
	// Date is a best-effort archival hint.
	Date(path string) (time.Time, bool)
	// Filename is the fixed archival filename for matched files.
	Filename(path string) string
}

// FileInfo describes one candidate file found by Scan.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// Result pairs a matched file with its importer's output.
type Result struct {
	File       FileInfo
	Importer   Importer
	Directives []ledger.Directive
}

// processedDir is where archived files land, relative to the scanned dir.
const processedDir = "processed"

// Scan returns the CSV files directly under dir.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// Dispatch probes each file against the importers in order and extracts with
// the first one that identifies it. Files no importer claims are logged and
// skipped; extraction failures abort the run.
func Dispatch(files []FileInfo, importers []Importer, logger *log.Logger) ([]Result, error) {
	var results []Result
	for _, file := range files {
		imp := match(file.Path, importers)
		if imp == nil {
			logger.Warn("no importer claims file", "file", file.Name)
			continue
		}
		directives, err := imp.Extract(file.Path, nil)
		if err != nil {
			return nil, fmt.Errorf("extracting %s: %w", file.Name, err)
		}
		logger.Info("extracted", "file", file.Name, "account", imp.Account(file.Path), "directives", len(directives))
		results = append(results, Result{File: file, Importer: imp, Directives: directives})
	}
	return results, nil
}

func match(path string, importers []Importer) Importer {
	for _, imp := range importers {
		if imp.Identify(path) {
			return imp
		}
	}
	return nil
}

// Archive moves a processed file into dir/processed/, renamed to the
// importer's archival filename prefixed with the file's best-effort date.
func Archive(dir string, file FileInfo, imp Importer) (string, error) {
	name := imp.Filename(file.Path)
	if date, ok := imp.Date(file.Path); ok {
		name = date.Format("2006-01-02") + "." + name
	}

	dstDir := filepath.Join(dir, processedDir)
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return "", fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, name)
	if err := os.Rename(file.Path, dst); err != nil {
		return "", fmt.Errorf("archiving %s: %w", file.Name, err)
	}
	return dst, nil
}
