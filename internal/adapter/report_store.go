package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/svlint/internal/model"
)

const (
	reportVersion = 1
	indexFileName = "_index.yaml"
)

var reportFileName = regexp.MustCompile(`^[0-9a-f]{16}\.yaml$`)

// ReportStore persists and retrieves lint reports. A report directory holds
// one YAML document per linted file plus an index summarising the run.
type ReportStore interface {
	SaveReports(dir m.Path, results []m.FileResult) error
	LoadReports(dir m.Path) ([]m.FileResult, error)
	RegenerateIndex(dir m.Path) error
}

// LocalReportStore stores reports on the local filesystem.
type LocalReportStore struct {
	logger *zap.SugaredLogger
}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore(logger *zap.SugaredLogger) ReportStore {
	return &LocalReportStore{logger: logger}
}

type reportYAML struct {
	Version      int `yaml:"version"`
	m.FileResult `yaml:",inline"`
}

type indexEntry struct {
	Version     int            `yaml:"version"`
	TotalFiles  int            `yaml:"total_files"`
	FailedFiles int            `yaml:"failed_files"`
	Failures    int            `yaml:"failures"`
	Suppressed  int            `yaml:"suppressed"`
	RuleErrors  int            `yaml:"rule_errors"`
	Rules       map[string]int `yaml:"rules,omitempty"`
	Reports     []indexReport  `yaml:"reports"`
}

type indexReport struct {
	File     string `yaml:"file"`
	Origin   m.Path `yaml:"origin"`
	Failures int    `yaml:"failures"`
}

// SaveReports replaces the reports in dir with one document per result.
func (rs *LocalReportStore) SaveReports(dir m.Path, results []m.FileResult) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	if err := rs.clear(dir); err != nil {
		return err
	}

	for _, result := range results {
		data, err := yaml.Marshal(reportYAML{Version: reportVersion, FileResult: result})
		if err != nil {
			return fmt.Errorf("encode report for %s: %w", result.Source.Origin, err)
		}

		name := rs.computeReportHash(result) + ".yaml"
		if err := os.WriteFile(filepath.Join(string(dir), name), data, 0o600); err != nil {
			return fmt.Errorf("write report %s: %w", name, err)
		}
	}

	rs.logger.Debugw("reports saved", "dir", dir, "count", len(results))

	return nil
}

// LoadReports reads every report in dir, ordered by source path.
func (rs *LocalReportStore) LoadReports(dir m.Path) ([]m.FileResult, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("read report dir: %w", err)
	}

	results := []m.FileResult{}

	for _, entry := range entries {
		if entry.IsDir() || !reportFileName.MatchString(entry.Name()) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(string(dir), entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", entry.Name(), err)
		}

		var doc reportYAML
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", entry.Name(), err)
		}

		if doc.Version != reportVersion {
			return nil, fmt.Errorf("report %s: unsupported version %d", entry.Name(), doc.Version)
		}

		results = append(results, doc.FileResult)
	}

	slices.SortFunc(results, func(a, b m.FileResult) int {
		return strings.Compare(string(a.Source.Origin), string(b.Source.Origin))
	})

	rs.logger.Debugw("reports loaded", "dir", dir, "count", len(results))

	return results, nil
}

// RegenerateIndex summarises the reports in dir into _index.yaml.
func (rs *LocalReportStore) RegenerateIndex(dir m.Path) error {
	results, err := rs.LoadReports(dir)
	if err != nil {
		return err
	}

	idx := indexEntry{Version: reportVersion, Rules: map[string]int{}, Reports: []indexReport{}}

	for _, result := range results {
		idx.TotalFiles++
		idx.Failures += len(result.Failures)
		idx.Suppressed += result.Suppressed
		idx.RuleErrors += len(result.Errors)

		if len(result.Failures) > 0 {
			idx.FailedFiles++
		}

		for _, f := range result.Failures {
			idx.Rules[f.Rule]++
		}

		idx.Reports = append(idx.Reports, indexReport{
			File:     rs.computeReportHash(result) + ".yaml",
			Origin:   result.Source.Origin,
			Failures: len(result.Failures),
		})
	}

	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}

	if err := os.WriteFile(filepath.Join(string(dir), indexFileName), data, 0o600); err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	return nil
}

// computeReportHash names a report after its source path and content.
func (rs *LocalReportStore) computeReportHash(result m.FileResult) string {
	h := sha256.New()
	_, _ = h.Write([]byte(result.Source.Origin))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(result.Source.Hash))

	return hex.EncodeToString(h.Sum(nil))[:16]
}

func (rs *LocalReportStore) clear(dir m.Path) error {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return fmt.Errorf("read report dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || (!reportFileName.MatchString(entry.Name()) && entry.Name() != indexFileName) {
			continue
		}

		if err := os.Remove(filepath.Join(string(dir), entry.Name())); err != nil {
			return fmt.Errorf("remove stale report: %w", err)
		}
	}

	return nil
}
