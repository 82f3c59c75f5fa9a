// cmd/modelfetch/commands.go
package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"modelfetch/internal/catalog"
	"modelfetch/internal/core/domain"
	"modelfetch/internal/core/ports"
	"modelfetch/internal/core/usecases"
	"modelfetch/internal/platform/config"
	"modelfetch/internal/platform/errors"
	"modelfetch/internal/platform/execx"
	"modelfetch/internal/platform/fsutil"
	"modelfetch/internal/platform/lock"
	"modelfetch/internal/platform/logx"
	"modelfetch/internal/platform/ui"
	"modelfetch/internal/strategies"
)

// app holds what every subcommand shares once flags are parsed.
type app struct {
	cfg    config.Config
	logger logx.Logger
	ui     ui.Presenter
}

func newApp() *app {
	return &app{cfg: config.Load()}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "modelfetch",
		Short:             "Fetch ML model assets with fallback strategies",
		Long:              config.LongHelp,
		Example:           config.Examples,
		Version:           fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	config.BindFlags(root.PersistentFlags(), &a.cfg)

	root.AddCommand(a.fetchCommand(), a.listCommand(), a.checkCommand())
	return root
}

// setup normalises the configuration and builds the logger and presenter.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	config.Normalize(&a.cfg)
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.logger = newLogger(a.cfg)
	a.ui = ui.New(a.cfg.Output, a.cfg.Quiet, a.cfg.NoColor)
	a.logger.Debug("configuration loaded", "config", a.cfg.String())
	return nil
}

// newLogger picks the stderr log level. The pretty presenter already narrates
// every attempt, so there the logger only speaks up for errors unless asked.
func newLogger(cfg config.Config) logx.Logger {
	switch {
	case cfg.Verbose:
		return logx.NewWithLevel(logx.LevelDebug)
	case cfg.Quiet:
		return logx.NewSilent()
	case cfg.Output == config.OutputPretty && !logLevelChanged(cfg):
		return logx.NewSilent()
	}
	return logx.NewWithLevel(logx.ParseLevel(cfg.LogLevel))
}

func logLevelChanged(cfg config.Config) bool {
	return cfg.LogLevel != config.DefaultConfig().LogLevel
}

func (a *app) fetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <asset> <models_dir>",
		Short: "Acquire an asset into the models directory",
		Long: `Runs the asset's strategy chain against <models_dir>, stopping at the first
strategy that succeeds. Exits 1 when every strategy fails (0 for optional assets).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fetch(cmd.Context(), args[0], args[1])
		},
	}
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the assets in the catalog",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.list()
		},
	}
}

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <asset> <models_dir>",
		Short: "Report whether an asset is already complete",
		Long:  "Exits 0 when the asset's destination passes its completion check, 1 otherwise.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.check(args[0], args[1])
		},
	}
}

// fetch resuelve el asset, toma el lock del directorio y ejecuta el plan.
func (a *app) fetch(ctx context.Context, asset, modelsDir string) error {
	spec, plan, err := a.plan(asset, modelsDir)
	if err != nil {
		return err
	}

	if err := fsutil.EnsureDir(modelsDir); err != nil {
		return err
	}
	lk, err := lock.Acquire(ctx, lock.PathFor(modelsDir))
	if err != nil {
		return err
	}
	defer func() {
		if err := lk.Unlock(); err != nil {
			a.logger.Warn("failed to release lock", "error", err.Error())
		}
	}()

	runner := usecases.NewRunner(usecases.RunnerOptions{
		Logger:          a.logger,
		Observer:        a.ui,
		StrategyTimeout: a.cfg.StrategyTimeout(),
		Force:           a.cfg.Force,
	})
	report := runner.Run(ctx, plan)

	if report.Status == domain.StatusSucceeded && spec.ListContents {
		a.showContents(plan.Target.Dir)
	}

	if code := report.ExitCode(); code != exitOK {
		return &exitError{code: code}
	}
	return nil
}

func (a *app) list() error {
	cat, err := catalog.LoadOrDefault(a.cfg.CatalogPath)
	if err != nil {
		return err
	}

	entries := cat.Entries()
	rows := make([]ui.AssetRow, 0, len(entries))
	for _, e := range entries {
		row := ui.AssetRow{
			Name:        e.Name,
			Description: e.Description,
			Dir:         e.Dir,
			Optional:    e.Optional,
		}
		// Resolver con un directorio de ejemplo solo para conocer las estrategias
		if spec, err := e.Resolve(catalog.NewVars("models", filepath.Join("models", e.Dir))); err == nil {
			for _, s := range spec.Strategies {
				row.Strategies = append(row.Strategies, s.Name)
			}
		}
		rows = append(rows, row)
	}

	a.ui.Assets(cat.Source(), rows)
	return nil
}

func (a *app) check(asset, modelsDir string) error {
	_, plan, err := a.plan(asset, modelsDir)
	if err != nil {
		return err
	}

	result := ui.CheckResult{
		Asset:    plan.Target.Name,
		Dir:      plan.Target.Dir,
		Declared: plan.Complete != nil,
	}
	if fsutil.Exists(plan.Target.Dir) {
		if result.Declared {
			done, err := plan.Complete(plan.Target.Dir)
			if err != nil {
				return err
			}
			result.Complete = done
		}
		if entries, err := fsutil.List(plan.Target.Dir); err == nil {
			result.Entries = entries
		}
	}

	a.ui.Check(result)
	if !result.Complete {
		return &exitError{code: exitFailure}
	}
	return nil
}

// plan carga el catálogo, resuelve el asset y construye su plan.
func (a *app) plan(asset, modelsDir string) (catalog.AssetSpec, ports.Plan, error) {
	if strings.TrimSpace(modelsDir) == "" {
		return catalog.AssetSpec{}, ports.Plan{}, errors.Wrap(errors.ErrInvalidInput, domain.ErrEmptyDir.Error())
	}

	cat, err := catalog.LoadOrDefault(a.cfg.CatalogPath)
	if err != nil {
		return catalog.AssetSpec{}, ports.Plan{}, err
	}

	spec, target, err := cat.Resolve(asset, modelsDir)
	if err != nil {
		return catalog.AssetSpec{}, ports.Plan{}, err
	}

	var confirmer strategies.Confirmer
	if c := ui.NewConfirmer(); c != nil && a.cfg.Output == config.OutputPretty && !a.cfg.Quiet {
		confirmer = c
	}

	plan, err := catalog.Build(spec, target, catalog.BuildOptions{
		Runner:    execx.NewLocalRunner(a.logger),
		Logger:    a.logger,
		Python:    a.cfg.Python,
		Git:       a.cfg.Git,
		Confirmer: confirmer,
		AssumeYes: a.cfg.AssumeYes,
	})
	if err != nil {
		return catalog.AssetSpec{}, ports.Plan{}, err
	}

	a.logger.Debug("plan built",
		"asset", target.Name,
		"dest", target.Dir,
		"strategies", strings.Join(plan.StrategyNames(), ","),
	)
	return spec, plan, nil
}

func (a *app) showContents(dir string) {
	entries, err := fsutil.List(dir)
	if err != nil {
		a.ui.Warning(fmt.Sprintf("could not list %s: %v", dir, err))
		return
	}
	a.ui.Contents(dir, entries)
}

// isUsageError reports bad input: unknown assets and cobra's argument and
// flag errors, which carry no sentinel.
func isUsageError(err error) bool {
	if errors.Is(err, domain.ErrUnknownAsset) || errors.Is(err, domain.ErrEmptyDir) || errors.Is(err, domain.ErrEmptyAssetName) {
		return true
	}
	msg := err.Error()
	for _, prefix := range []string{"accepts ", "unknown command", "unknown flag", "unknown shorthand", "invalid argument", "flag needs"} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
