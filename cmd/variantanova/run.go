// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/perfmatrix/variantstat/anova"
	"github.com/perfmatrix/variantstat/internal/config"
	"github.com/perfmatrix/variantstat/report"
	"github.com/perfmatrix/variantstat/variantstat"
)

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	backend, err := anova.ParseBackend(cfg.Backend)
	if err != nil {
		return err
	}
	tester := anova.NewTester(backend)

	summary, err := report.Open(cfg.Summary)
	if errors.Is(err, report.ErrNoSummary) {
		logger.Warn("ANOVA skipped: missing summary file", "path", cfg.Summary)
		return writeNotice(cfg.Output, fmt.Sprintf("No %s found. Run `pnpm run-matrix` before analysing.", cfg.Summary))
	} else if err != nil {
		return err
	}
	if len(summary.Tools) == 0 {
		logger.Warn("ANOVA skipped: no tool data found", "path", cfg.Summary)
		return writeNotice(cfg.Output, fmt.Sprintf("Insufficient data in %s. Populate reports by running `pnpm run-matrix`.", cfg.Summary))
	}

	c := variantstat.NewCollection(cfg.Variants, cfg.Metrics)
	c.AddSummary(summary)
	comparisons, err := variantstat.Compare(ctx, tester, c.Tables(), cfg.Workers)
	if err != nil {
		return err
	}

	th := variantstat.Thresholds{Alpha: cfg.Alpha, StrongAlpha: cfg.StrongAlpha}
	var buf bytes.Buffer
	w := variantstat.NewWriter(&buf, th)
	w.WriteHeader(cfg.Summary, tester.Exact())
	for _, cmp := range comparisons {
		if cmp.Skipped != "" {
			logger.Info("metric skipped", "tool", cmp.Tool, "metric", cmp.Metric, "reason", cmp.Skipped)
		} else {
			logger.Debug("metric compared", "tool", cmp.Tool, "metric", cmp.Metric,
				"f", cmp.Result.F, "p", cmp.Result.P, "variants", len(cmp.Groups))
		}
		w.Write(cmp)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if err := writeFile(cfg.Output, buf.Bytes()); err != nil {
		return err
	}
	logger.Info("ANOVA results written", "path", cfg.Output, "backend", backend, "comparisons", len(comparisons))
	return nil
}

func writeNotice(path, msg string) error {
	var buf bytes.Buffer
	if err := variantstat.WriteNotice(&buf, msg); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
