// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command variantanova compares page variants with a one-way ANOVA.
//
// It reads a measurement summary (by default reports/summary.json),
// runs an ANOVA across variants for every selected metric of every
// measurement tool, and writes the F-statistics and p-values to a
// text report (by default reports/anova-results.txt).
//
// Usage:
//
//	variantanova [flags]
//
// Flags override values from the optional YAML file given by -config:
//
//	summary: reports/summary.json
//	output: reports/anova-results.txt
//	variants: [A, A', B, B', C, C', D, D']
//	metrics: [LCP, FCP]
//	backend: exact        # or fallback
//	alpha: 0.05
//	strong_alpha: 0.01
//	workers: 4
//	log_level: info
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/perfmatrix/variantstat/internal/config"
)

type flags struct {
	configPath string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	var f flags
	def := config.Default()

	cmd := &cobra.Command{
		Use:           "variantanova",
		Short:         "Compare page variants with a one-way ANOVA",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, &cfg, &f.cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()}))
			return run(cmd.Context(), cfg, logger)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "read configuration from YAML `file`")
	fs.StringVar(&f.cfg.Summary, "summary", def.Summary, "measurement summary `file`")
	fs.StringVar(&f.cfg.Output, "out", def.Output, "write the report to `file`")
	fs.StringSliceVar(&f.cfg.Variants, "variants", def.Variants, "variants to compare, in report order")
	fs.StringSliceVar(&f.cfg.Metrics, "metrics", def.Metrics, "metrics to compare")
	fs.StringVar(&f.cfg.Backend, "backend", def.Backend, "ANOVA backend: exact or fallback")
	fs.IntVar(&f.cfg.Workers, "workers", def.Workers, "maximum concurrent tests")
	fs.StringVar(&f.cfg.LogLevel, "log-level", def.LogLevel, "log level: debug, info, warn or error")
	return cmd
}

// applyFlags copies explicitly set flags over the file configuration.
func applyFlags(cmd *cobra.Command, cfg, fl *config.Config) {
	changed := cmd.Flags().Changed
	if changed("summary") {
		cfg.Summary = fl.Summary
	}
	if changed("out") {
		cfg.Output = fl.Output
	}
	if changed("variants") {
		cfg.Variants = fl.Variants
	}
	if changed("metrics") {
		cfg.Metrics = fl.Metrics
	}
	if changed("backend") {
		cfg.Backend = fl.Backend
	}
	if changed("workers") {
		cfg.Workers = fl.Workers
	}
	if changed("log-level") {
		cfg.LogLevel = fl.LogLevel
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("variantanova failed", "err", err)
		os.Exit(1)
	}
}
