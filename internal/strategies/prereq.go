// internal/strategies/prereq.go
package strategies

import (
	"context"
	"runtime"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/platform/errors"
)

// Tool comprueba que una herramienta externa existe y responde, ejecutando
// un comando de versión (ej: "git --version", "git lfs version").
type Tool struct {
	name    string
	command string
	args    []string
	tc      Toolchain
}

// NewTool crea el prerequisito. name es lo que se reporta como ausente.
func NewTool(name, command string, args []string, tc Toolchain) *Tool {
	return &Tool{name: name, command: command, args: args, tc: tc}
}

// NewGitLFS comprueba "git lfs version".
func NewGitLFS(tc Toolchain) *Tool {
	return NewTool("git-lfs", tc.Git, []string{"lfs", "version"}, tc)
}

func (t *Tool) Name() string { return t.name }

// Check falla con ToolMissing si el binario no está o el comando no responde.
func (t *Tool) Check(ctx context.Context) error {
	if _, err := t.tc.Runner.LookPath(t.command); err != nil {
		return domain.MissingTool(t.name)
	}
	res, err := t.tc.exec(ctx, "", t.command, t.args...)
	if err != nil {
		if cat := domain.Classify(err); cat == domain.CategoryCancelled || cat == domain.CategoryTimeout {
			return err
		}
		return errors.Wrap(domain.MissingTool(t.name), err.Error())
	}
	t.tc.Logger.Debug("tool available", "tool", t.name, "version", firstLine(res.Stdout))
	return nil
}

// Confirmer pregunta al usuario una confirmación sí/no.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// XcodeLicense verifica en macOS que la licencia de Xcode está aceptada y,
// si no, ofrece aceptarla con sudo. En otros sistemas siempre pasa.
type XcodeLicense struct {
	tc        Toolchain
	confirmer Confirmer
	assumeYes bool
	goos      string
}

// NewXcodeLicense crea el prerequisito para el sistema actual.
func NewXcodeLicense(tc Toolchain, confirmer Confirmer, assumeYes bool) *XcodeLicense {
	return &XcodeLicense{tc: tc, confirmer: confirmer, assumeYes: assumeYes, goos: runtime.GOOS}
}

func (x *XcodeLicense) Name() string { return "xcode-license" }

// Check implementa ports.Prerequisite.
func (x *XcodeLicense) Check(ctx context.Context) error {
	if x.goos != "darwin" {
		return nil
	}
	if _, err := x.tc.Runner.LookPath("xcodebuild"); err != nil {
		x.tc.Logger.Warn("xcodebuild not found, skipping license check")
		return nil
	}
	if _, err := x.tc.exec(ctx, "", "xcodebuild", "-license", "check"); err == nil {
		return nil
	}

	accept := x.assumeYes
	if !accept {
		if x.confirmer == nil {
			return errors.Wrap(errors.ErrLicenseNotAccepted, "no terminal to confirm")
		}
		ok, err := x.confirmer.Confirm("The Xcode license has not been accepted. Accept it now with sudo?")
		if err != nil {
			return errors.Wrap(errors.ErrLicenseNotAccepted, err.Error())
		}
		accept = ok
	}
	if !accept {
		return errors.Wrap(errors.ErrLicenseNotAccepted, "declined")
	}

	x.tc.Logger.Info("accepting Xcode license")
	if _, err := x.tc.exec(ctx, "", "sudo", "xcodebuild", "-license", "accept"); err != nil {
		return errors.Wrapf(errors.ErrLicenseNotAccepted, "sudo xcodebuild -license accept: %v", err)
	}
	return nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
