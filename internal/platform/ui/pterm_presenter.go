// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/core/ports"
	"modelfetch/internal/platform/fsutil"
)

// PTermPresenter implementa Presenter usando la biblioteca pterm
// para renderizar spinners, colores y símbolos en la terminal.
type PTermPresenter struct {
	mu sync.Mutex

	// Spinner del intento en curso
	spinner *pterm.SpinnerPrinter
	started time.Time
}

// NewPTermPresenter crea una nueva instancia del presenter con pterm
func NewPTermPresenter(noColor bool) *PTermPresenter {
	if noColor {
		pterm.DisableColor()
	}
	return &PTermPresenter{}
}

// RunStarted muestra el header con el asset, el destino y la cadena de estrategias
func (p *PTermPresenter) RunStarted(plan ports.Plan) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.started = time.Now()

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("modelfetch - " + plan.Target.Name)
	pterm.Println()

	info := fmt.Sprintf("%s Asset: %s\n", IconAsset, StylePrimary.Sprint(plan.Target.Name))
	if plan.Description != "" {
		info += fmt.Sprintf("   %s\n", plan.Description)
	}
	info += fmt.Sprintf("%s Destination: %s\n", IconFolder, pterm.Cyan(plan.Target.Dir))
	info += fmt.Sprintf("   Strategies: %s", strings.Join(plan.StrategyNames(), " → "))
	if plan.Optional {
		info += "\n" + StyleWarning.Sprint("   Optional: failure will not fail the run")
	}

	pterm.DefaultBox.
		WithTitle("Acquisition Plan").
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Println(info)
	pterm.Println()
}

// PrerequisiteFailed muestra el prerequisito que detuvo la ejecución
func (p *PTermPresenter) PrerequisiteFailed(name string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Error.Printf("Prerequisite %s not met: %v\n", pterm.Bold.Sprint(name), err)
}

// AttemptStarted arranca un spinner para el intento
func (p *PTermPresenter) AttemptStarted(index, total int, strategy string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopSpinner()
	spinner, err := pterm.DefaultSpinner.
		WithStyle(pterm.NewStyle(pterm.FgCyan)).
		WithSequence("⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷").
		WithRemoveWhenDone(true).
		Start(fmt.Sprintf("  [%d/%d] Running %s...", index, total, pterm.Cyan(strategy)))
	if err == nil {
		p.spinner = spinner
	}
}

// AttemptFinished reemplaza el spinner por la línea final del intento
func (p *PTermPresenter) AttemptFinished(index, total int, attempt domain.Attempt) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopSpinner()

	status := FromOutcome(attempt.Outcome)
	line := fmt.Sprintf("  %s [%d/%d] %s (%s)", status.Symbol(), index, total, attempt.Strategy, formatDuration(attempt.Duration))
	switch {
	case attempt.Outcome.Succeeded() && attempt.Outcome.Detail() != "":
		line += " " + attempt.Outcome.Detail()
	case !attempt.Outcome.Succeeded():
		line += fmt.Sprintf(" %s: %s", attempt.Outcome.Category().Label(), truncate(attempt.Outcome.Reason().Error(), 80))
	}
	status.Style().Println(line)
}

// RunFinished muestra la remediación (si hubo fallos) y el resumen final
func (p *PTermPresenter) RunFinished(report domain.Report) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopSpinner()
	pterm.Println()

	if report.Status == domain.StatusAlreadyComplete {
		pterm.Success.Printf("%s is already complete in %s (use --force to fetch again)\n", report.Target.Name, report.Target.Dir)
		return
	}

	if !report.Succeeded() && len(report.Guidance) > 0 {
		pterm.DefaultSection.Println("Remediation")
		for _, g := range report.Guidance {
			p.renderGuidance(g)
		}
	}

	pterm.Println(SeparatorHeavy)
	status := FromRunStatus(report.Status)
	switch report.Status {
	case domain.StatusSucceeded:
		pterm.Success.Printf("%s installed via %s → %s\n", report.Target.Name, report.Winner, report.Target.Dir)
	case domain.StatusWarning:
		pterm.Warning.Printf("%s could not be installed; it is optional, other assets are unaffected\n", report.Target.Name)
	default:
		pterm.Error.Printf("%s could not be installed (%d attempts)\n", report.Target.Name, len(report.Attempts))
	}

	if len(report.Notes) > 0 {
		pterm.Println()
		pterm.Println(status.Style().Sprint("📋 NEXT STEPS"))
		for _, note := range report.Notes {
			pterm.Printf("   • %s\n", note)
		}
	}

	pterm.Println()
	pterm.Printf("%s  Duration: %s\n", IconTime, formatDuration(report.Duration))
	pterm.Println(SeparatorHeavy)
	pterm.Println()
}

// Assets muestra el catálogo como tabla
func (p *PTermPresenter) Assets(source string, rows []AssetRow) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.DefaultSection.Println("Assets (" + source + ")")

	data := pterm.TableData{{"Asset", "Directory", "Strategies", "Description"}}
	for _, r := range rows {
		name := r.Name
		if r.Optional {
			name += StyleWarning.Sprint(" (optional)")
		}
		dir := r.Dir
		if dir == "" {
			dir = "."
		}
		data = append(data, []string{name, dir, strings.Join(r.Strategies, ", "), truncate(r.Description, 50)})
	}

	_ = pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render()
	pterm.Println()
}

// Check muestra el estado de completitud de un asset
func (p *PTermPresenter) Check(result CheckResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case !result.Declared:
		pterm.Info.Printf("%s declares no completion check; %s will always run its strategies\n", result.Asset, result.Dir)
	case result.Complete:
		pterm.Success.Printf("%s is complete in %s\n", result.Asset, result.Dir)
	default:
		pterm.Warning.Printf("%s is missing or incomplete in %s\n", result.Asset, result.Dir)
	}
	if len(result.Entries) > 0 {
		p.renderEntries(result.Entries)
	}
}

// Contents lista lo descargado con su tamaño
func (p *PTermPresenter) Contents(dir string, entries []fsutil.Entry) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(entries) == 0 {
		pterm.Warning.Printf("Destination %s is empty\n", dir)
		return
	}
	pterm.DefaultSection.WithLevel(2).Println("Downloaded content")
	p.renderEntries(entries)
}

// Info muestra un mensaje informativo
func (p *PTermPresenter) Info(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Info.Println(msg)
}

// Warning muestra una advertencia
func (p *PTermPresenter) Warning(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Warning.Println(msg)
}

// Error muestra un error
func (p *PTermPresenter) Error(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pterm.Error.Println(msg)
}

// Close detiene el spinner si quedó alguno activo
func (p *PTermPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopSpinner()
	return nil
}

func (p *PTermPresenter) stopSpinner() {
	if p.spinner != nil {
		_ = p.spinner.Stop()
		p.spinner = nil
	}
}

func (p *PTermPresenter) renderEntries(entries []fsutil.Entry) {
	data := pterm.TableData{{"Name", "Type", "Size"}}
	var total float64
	for _, e := range entries {
		kind := "file"
		if e.IsDir {
			kind = "dir"
		}
		data = append(data, []string{e.Name, kind, formatMB(e.SizeMB())})
		total += e.SizeMB()
	}
	data = append(data, []string{StyleSecondary.Sprint("total"), "", formatMB(total)})
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Println()
}

// renderGuidance muestra un bloque ERROR / REASON / SOLUTIONS / DOCS
func (p *PTermPresenter) renderGuidance(g domain.Guidance) {
	indent := "      "

	pterm.Printf("  %s %s\n", StyleError.Sprint(StatusError.Symbol()), pterm.Bold.Sprint(g.Strategy))
	if g.Error != nil {
		pterm.Printf("%sERROR: %s\n", indent, truncate(g.Error.Error(), 120))
	}
	if g.Reason != "" {
		pterm.Printf("%sREASON: %s (%s)\n", indent, g.Reason, g.Category.Label())
	}

	if len(g.Solutions) > 0 {
		pterm.Printf("%s%s SOLUTIONS:\n", indent, IconFix)
		for i, solution := range g.Solutions {
			lines := strings.Split(wrapText(solution, 60), "\n")
			pterm.Printf("%s%d) %s\n", indent, i+1, lines[0])
			for _, l := range lines[1:] {
				pterm.Printf("%s   %s\n", indent, l)
			}
		}
	}

	if g.DocsURL != "" {
		pterm.Printf("%s%s DOCS: %s\n", indent, IconDocs, g.DocsURL)
	}
	pterm.Println()
}
