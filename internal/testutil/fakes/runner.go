// Package fakes provides test doubles for the platform ports. It is kept apart
// from testutil so that testutil itself never imports internal packages.
package fakes

import (
	"context"
	"strings"
	"sync"

	"modelfetch/internal/platform/errors"
	"modelfetch/internal/platform/execx"
)

// Handler produces the result of a scripted command.
type Handler func(cmd execx.Command) (execx.Result, error)

type rule struct {
	prefix  string
	handler Handler
}

// Runner es un execx.Runner que registra cada comando ejecutado y responde
// según reglas por prefijo. Sin regla que coincida, el comando tiene éxito.
type Runner struct {
	mu      sync.Mutex
	calls   []execx.Command
	rules   []rule
	missing map[string]bool
}

// NewRunner crea un runner vacío donde todas las herramientas existen.
func NewRunner() *Runner {
	return &Runner{missing: make(map[string]bool)}
}

// Missing marca herramientas como no instaladas: LookPath y Run fallan con
// ErrToolMissing y el comando no se registra.
func (r *Runner) Missing(names ...string) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range names {
		r.missing[n] = true
	}
	return r
}

// On registra un handler para los comandos cuyo String() empieza por prefix.
// La primera regla registrada que coincide gana.
func (r *Runner) On(prefix string, h Handler) *Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule{prefix: prefix, handler: h})
	return r
}

// Fail hace que los comandos con ese prefijo terminen con código 1 y stderr.
func (r *Runner) Fail(prefix, stderr string) *Runner {
	return r.On(prefix, func(cmd execx.Command) (execx.Result, error) {
		return execx.Result{Stderr: stderr, ExitCode: 1},
			&execx.ExitError{Command: cmd.String(), ExitCode: 1, Stderr: stderr}
	})
}

// LookPath implementa execx.Runner.
func (r *Runner) LookPath(name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.missing[name] {
		return "", errors.Wrapf(errors.ErrToolMissing, "%s not found in PATH", name)
	}
	return "/usr/bin/" + name, nil
}

// Run implementa execx.Runner.
func (r *Runner) Run(ctx context.Context, cmd execx.Command) (execx.Result, error) {
	if _, err := r.LookPath(cmd.Name); err != nil {
		return execx.Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return execx.Result{}, err
	}

	r.mu.Lock()
	r.calls = append(r.calls, cmd)
	var handler Handler
	line := cmd.String()
	for _, rl := range r.rules {
		if strings.HasPrefix(line, rl.prefix) {
			handler = rl.handler
			break
		}
	}
	r.mu.Unlock()

	if handler == nil {
		return execx.Result{}, nil
	}
	return handler(cmd)
}

// Calls devuelve una copia de los comandos ejecutados, en orden.
func (r *Runner) Calls() []execx.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]execx.Command{}, r.calls...)
}

// Lines devuelve los comandos ejecutados como texto.
func (r *Runner) Lines() []string {
	calls := r.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.String()
	}
	return out
}

// Ran indica si algún comando ejecutado empieza por prefix.
func (r *Runner) Ran(prefix string) bool {
	for _, l := range r.Lines() {
		if strings.HasPrefix(l, prefix) {
			return true
		}
	}
	return false
}
