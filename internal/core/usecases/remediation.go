// internal/core/usecases/remediation.go
package usecases

import (
	"fmt"
	"net/url"
	"runtime"
	"strings"

	"golang.org/x/net/publicsuffix"

	"modelfetch/internal/core/domain"
	"modelfetch/internal/platform/errors"
)

// toolHints son las instrucciones de instalación por herramienta y sistema.
var toolHints = map[string]map[string][]string{
	"git": {
		"darwin":  {"brew install git", "Or install the Xcode Command Line Tools: xcode-select --install"},
		"linux":   {"sudo apt-get install git", "Or: sudo yum install git"},
		"windows": {"Download and install https://git-scm.com/download/win", "Or with Chocolatey: choco install git"},
	},
	"git-lfs": {
		"darwin":  {"brew install git-lfs && git lfs install"},
		"linux":   {"sudo apt-get install git-lfs && git lfs install", "Or: sudo yum install git-lfs && git lfs install"},
		"windows": {"Download and install https://git-lfs.github.com/", "Or with Chocolatey: choco install git-lfs", "Then run: git lfs install"},
	},
	"python": {
		"darwin":  {"brew install python", "Or point --python at an existing interpreter"},
		"linux":   {"sudo apt-get install python3 python3-pip", "Or point --python at an existing interpreter"},
		"windows": {"Install Python from https://www.python.org/downloads/", "Or point --python at an existing interpreter"},
	},
}

// Analyze convierte el motivo de un fallo en remediación legible.
// remote es la URL con la que habló la estrategia (puede estar vacía).
func Analyze(strategy string, err error, remote, docsURL string) domain.Guidance {
	g := domain.Guidance{
		Strategy: strategy,
		Category: domain.Classify(err),
		Error:    err,
		DocsURL:  docsURL,
	}

	msg := ""
	if err != nil {
		msg = strings.ToLower(err.Error())
	}

	switch g.Category {
	case domain.CategoryToolMissing:
		tool := toolName(err)
		g.Reason = fmt.Sprintf("%s is not installed or not on PATH", tool)
		g.Solutions = installHints(tool, runtime.GOOS)

	case domain.CategoryLicense:
		g.Reason = "The Xcode license has not been accepted"
		g.Solutions = []string{
			"Run: sudo xcodebuild -license",
			"Then type 'agree' and press enter",
			"Or rerun with --yes to accept it automatically",
		}

	case domain.CategoryNoInstallable:
		g.Reason = "The fetched source has no setup.py or pyproject.toml"
		g.Solutions = []string{
			"The repository layout may have changed and no longer ships a standard Python package",
			"Dependencies may need to be installed by hand; check the project's install docs",
		}

	case domain.CategoryTimeout:
		g.Reason = "The strategy exceeded its time budget"
		g.Solutions = []string{
			"Check your connection and retry",
			"Raise the limit with --strategy-timeout (0 disables it)",
		}

	case domain.CategoryCancelled:
		g.Reason = "The run was interrupted"
		g.Solutions = []string{"Rerun the command; completed assets are detected and skipped"}

	default:
		g.Reason, g.Solutions = analyzeMessage(g.Category, msg, remote)
	}

	return g
}

// analyzeMessage cubre NetworkOrRemoteFailure y lo inesperado por heurística de mensaje.
func analyzeMessage(category domain.Category, msg, remote string) (string, []string) {
	host := registrableHost(remote)

	switch {
	case strings.Contains(msg, "could not resolve host") || strings.Contains(msg, "no such host") || strings.Contains(msg, "temporary failure in name resolution"):
		solutions := []string{"Check your internet connection and DNS settings"}
		if host != "" {
			solutions = append(solutions, fmt.Sprintf("Verify %s is reachable: ping %s", host, host))
		}
		return "DNS resolution failed", solutions

	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "connection reset") || strings.Contains(msg, "connection timed out"):
		return "Network connection was refused or reset", []string{
			"Check if a firewall is blocking outbound connections",
			"Verify proxy settings (HTTPS_PROXY, pip --proxy) if behind a corporate proxy",
			"Try again in a few moments",
		}

	case strings.Contains(msg, "no matching distribution") || strings.Contains(msg, "could not find a version"):
		return "The package is not published on the package index", []string{
			"It may not be a standard PyPI package or may have been renamed",
			"Check the project's documentation for the correct install source",
			"Skip this asset if it is not needed",
		}

	case strings.Contains(msg, "repository not found") || strings.Contains(msg, "not found") && strings.Contains(msg, "git"):
		solutions := []string{"The repository may have moved or been made private"}
		if remote != "" {
			solutions = append(solutions, "Check the URL: "+remote)
		}
		return "Remote repository not found", solutions

	case strings.Contains(msg, "permission denied"):
		return "Insufficient permissions to write to the destination", []string{
			"Choose a user-writable models directory",
			"Or install into a virtualenv: --python /path/to/venv/bin/python",
		}

	case strings.Contains(msg, "no space left"):
		return "Insufficient disk space", []string{
			"Free up disk space and try again",
			"Check available space: df -h",
		}

	case strings.Contains(msg, "xcrun") || strings.Contains(msg, "xcode"):
		return "Xcode tooling is missing or its license is not accepted", []string{
			"Run: sudo xcodebuild -license",
			"Or install the Command Line Tools: xcode-select --install",
		}
	}

	if category == domain.CategoryRemote || remote != "" {
		solutions := []string{"Check your network connection"}
		if host != "" {
			solutions = append(solutions, fmt.Sprintf("Make sure %s is reachable from this machine", host))
		}
		solutions = append(solutions, "Rerun with --verbose to see the tool's own output")
		return "The install or clone command failed", solutions
	}

	return "An unexpected error occurred", []string{
		"Rerun with --verbose for detailed logs",
		"Install manually if the issue persists",
	}
}

func installHints(tool, goos string) []string {
	key := tool
	if strings.HasPrefix(tool, "python") {
		key = "python"
	}
	if hints, ok := toolHints[key][goos]; ok {
		return hints
	}
	return []string{fmt.Sprintf("Install %s and make sure it is on PATH", tool)}
}

func toolName(err error) string {
	var te *domain.ToolError
	if errors.As(err, &te) {
		return te.Tool
	}
	return "a required tool"
}

// registrableHost devuelve el dominio registrable (eTLD+1) de una URL remota,
// ej: "https://github.com/FunAudioLLM/CosyVoice.git" -> "github.com".
func registrableHost(remote string) string {
	if remote == "" {
		return ""
	}
	remote = strings.TrimPrefix(remote, "git+")
	u, err := url.Parse(remote)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	host, err := publicsuffix.EffectiveTLDPlusOne(u.Hostname())
	if err != nil {
		return u.Hostname()
	}
	return host
}
