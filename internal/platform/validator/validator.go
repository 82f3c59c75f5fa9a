// internal/platform/validator/validator.go
package validator

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// git@github.com:org/repo.git
	scpLikeRegex = regexp.MustCompile(`^[A-Za-z0-9._-]+@[A-Za-z0-9.-]+:[^\s]+$`)

	// nombre[extras]specificador, ej: "multi-tts", "paddleocr>=2.6,<3", "torch[cpu]==2.1"
	requirementRegex = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?(\[[A-Za-z0-9._,-]+\])?([<>=!~]=?[^\s;]+)?$`)

	moduleRegex  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)
	envNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// URL validators

// IsURL verifica que sea una URL http(s) con host.
func IsURL(urlStr string) bool {
	if len(urlStr) == 0 {
		return false
	}

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}

	// Debe tener scheme y host
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// IsRepoURL acepta lo que git clone acepta en la práctica: URLs https, ssh,
// git o file, la forma scp (git@host:org/repo) y rutas locales absolutas.
func IsRepoURL(repo string) bool {
	repo = strings.TrimSpace(repo)
	if repo == "" || strings.ContainsAny(repo, " \t\n") {
		return false
	}

	if scpLikeRegex.MatchString(repo) && !strings.Contains(repo, "://") {
		return true
	}

	if filepath.IsAbs(repo) {
		return true
	}

	parsed, err := url.Parse(repo)
	if err != nil {
		return false
	}
	switch parsed.Scheme {
	case "https", "http", "ssh", "git":
		return parsed.Host != "" && strings.Trim(parsed.Path, "/") != ""
	case "file":
		return parsed.Path != ""
	}
	return false
}

// Package validators

// IsPipRequirement valida lo que se pasa a "pip install": un requisito con
// nombre (con extras y versión opcionales) o una URL git+.
func IsPipRequirement(req string) bool {
	req = strings.TrimSpace(req)
	if rest, ok := strings.CutPrefix(req, "git+"); ok {
		return IsRepoURL(rest)
	}
	return requirementRegex.MatchString(req)
}

// NormalizeRequirement quita espacios y normaliza el nombre como hace pip
// (minúsculas, "_" y "." equivalen a "-"), respetando la parte de versión.
func NormalizeRequirement(req string) string {
	req = strings.TrimSpace(req)
	if strings.HasPrefix(req, "git+") {
		return req
	}

	end := strings.IndexAny(req, "[<>=!~")
	if end < 0 {
		end = len(req)
	}
	name := strings.ToLower(req[:end])
	name = strings.NewReplacer("_", "-", ".", "-").Replace(name)
	return name + req[end:]
}

// IsModuleName verifica un nombre de módulo Python con puntos (ej: "paddleocr", "cosyvoice.cli").
func IsModuleName(module string) bool {
	return moduleRegex.MatchString(module)
}

// Generic validators

// IsEnvName verifica un nombre de variable de entorno portable.
func IsEnvName(name string) bool {
	return envNameRegex.MatchString(name)
}

// MaxLength verifica que un string no exceda una longitud máxima.
func MaxLength(s string, max int) bool {
	return len(s) <= max
}
