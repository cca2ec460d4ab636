package adapter

import (
	"cmp"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

// ReportStore persists calculation reports, one file per report.
type ReportStore interface {
	SaveReports(dir m.FilePath, reports []m.Report) error
	LoadReports(dir m.FilePath) ([]m.Report, error)
}

// LocalReportStore writes reports into a directory on the local filesystem.
type LocalReportStore struct {
	format   m.ReportFormat
	compress bool
}

// NewReportStore creates a store writing the given format. Reports of every
// supported format are read back regardless of the configured one.
func NewReportStore(format m.ReportFormat, compress bool) *LocalReportStore {
	if format == "" {
		format = m.FormatJSON
	}

	return &LocalReportStore{format: format, compress: compress}
}

// SaveReports implements ReportStore. Reports without an ID get a fresh UUID.
func (s *LocalReportStore) SaveReports(dir m.FilePath, reports []m.Report) error {
	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	for _, report := range reports {
		if report.ID == "" {
			report.ID = uuid.NewString()
		}

		data, err := encodeReport(s.format, report)
		if err != nil {
			return fmt.Errorf("encode report %s: %w", report.ID, err)
		}

		name := report.ID + "." + string(s.format)
		if s.compress {
			name += compressedExt
		}

		path := m.FilePath(filepath.Join(string(dir), name))
		if err := writeFile(path, data, s.compress); err != nil {
			slog.Error("failed to write report", "path", path, "error", err)
			return fmt.Errorf("write report %s: %w", report.ID, err)
		}
	}

	slog.Debug("saved reports", "dir", dir, "count", len(reports), "format", s.format)

	return nil
}

// LoadReports implements ReportStore. Files of unknown formats are skipped.
func (s *LocalReportStore) LoadReports(dir m.FilePath) ([]m.Report, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	var reports []m.Report

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		format, ok := formatOf(entry.Name())
		if !ok {
			continue
		}

		path := m.FilePath(filepath.Join(string(dir), entry.Name()))

		data, err := readFile(path)
		if err != nil {
			return nil, err
		}

		report, err := decodeReport(format, data)
		if err != nil {
			return nil, fmt.Errorf("decode report %s: %w", path, err)
		}

		reports = append(reports, report)
	}

	slices.SortFunc(reports, func(a, b m.Report) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})

	return reports, nil
}

func formatOf(name string) (m.ReportFormat, bool) {
	switch baseExt(name) {
	case ".json":
		return m.FormatJSON, true
	case ".yaml", ".yml":
		return m.FormatYAML, true
	case ".msgpack":
		return m.FormatMsgpack, true
	default:
		return "", false
	}
}

func encodeReport(format m.ReportFormat, report m.Report) ([]byte, error) {
	switch format {
	case m.FormatJSON:
		return json.MarshalIndent(report, "", "  ")
	case m.FormatYAML:
		return yaml.Marshal(report)
	case m.FormatMsgpack:
		return msgpack.Marshal(report)
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}

func decodeReport(format m.ReportFormat, data []byte) (m.Report, error) {
	var (
		report m.Report
		err    error
	)

	switch format {
	case m.FormatJSON:
		err = json.Unmarshal(data, &report)
	case m.FormatYAML:
		err = yaml.Unmarshal(data, &report)
	case m.FormatMsgpack:
		err = msgpack.Unmarshal(data, &report)
	default:
		err = fmt.Errorf("unsupported report format %q", format)
	}

	return report, err
}
