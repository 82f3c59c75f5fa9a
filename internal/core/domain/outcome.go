// internal/core/domain/outcome.go
package domain

import (
	"context"

	"modelfetch/internal/platform/errors"
)

// Category clasifica por qué falló una estrategia.
type Category string

const (
	CategoryNone          Category = ""
	CategoryToolMissing   Category = "tool_missing"
	CategoryRemote        Category = "network_or_remote"
	CategoryNoInstallable Category = "no_installable_artifact"
	CategoryLicense       Category = "license_not_accepted"
	CategoryTimeout       Category = "timeout"
	CategoryCancelled     Category = "cancelled"
	CategoryUnexpected    Category = "unexpected"
)

// Label devuelve el nombre legible de la categoría.
func (c Category) Label() string {
	switch c {
	case CategoryToolMissing:
		return "ToolMissing"
	case CategoryRemote:
		return "NetworkOrRemoteFailure"
	case CategoryNoInstallable:
		return "NoInstallableArtifactFound"
	case CategoryLicense:
		return "LicenseNotAccepted"
	case CategoryTimeout:
		return "Timeout"
	case CategoryCancelled:
		return "Cancelled"
	case CategoryUnexpected:
		return "Unexpected"
	default:
		return "None"
	}
}

// Classify mapea un error a su categoría buscando los sentinels en la cadena.
func Classify(err error) Category {
	switch {
	case err == nil:
		return CategoryNone
	case errors.IsToolMissing(err):
		return CategoryToolMissing
	case errors.IsLicenseNotAccepted(err):
		return CategoryLicense
	case errors.IsNoInstallable(err):
		return CategoryNoInstallable
	case errors.IsTimeout(err), errors.Is(err, context.DeadlineExceeded):
		return CategoryTimeout
	case errors.Is(err, context.Canceled), errors.Is(err, ErrRunCancelled):
		return CategoryCancelled
	case errors.IsRemoteFailure(err):
		return CategoryRemote
	default:
		return CategoryUnexpected
	}
}

// Outcome es el resultado de un intento: Success o Failure(reason).
type Outcome struct {
	ok     bool
	detail string
	reason error
}

// Success marca el intento como exitoso.
func Success() Outcome {
	return Outcome{ok: true}
}

// SuccessWith marca éxito con un detalle (ej: "setup.py").
func SuccessWith(detail string) Outcome {
	return Outcome{ok: true, detail: detail}
}

// Failure marca el intento como fallido. Un reason nil se trata como Unexpected.
func Failure(reason error) Outcome {
	if reason == nil {
		reason = errors.ErrUnexpected
	}
	return Outcome{reason: reason}
}

// Succeeded indica si el intento tuvo éxito.
func (o Outcome) Succeeded() bool { return o.ok }

// Detail devuelve el detalle opcional de un éxito.
func (o Outcome) Detail() string { return o.detail }

// Reason devuelve el motivo del fallo (nil si tuvo éxito).
func (o Outcome) Reason() error { return o.reason }

// Category clasifica el motivo del fallo.
func (o Outcome) Category() Category {
	if o.ok {
		return CategoryNone
	}
	return Classify(o.reason)
}

func (o Outcome) String() string {
	if o.ok {
		if o.detail != "" {
			return "success (" + o.detail + ")"
		}
		return "success"
	}
	return "failure: " + o.reason.Error()
}
