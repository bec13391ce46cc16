package deploy

import (
	"github.com/kballard/go-shellquote"
)

// InitArgsLine returns the init phase list as one shell-safe string.
func (r *Result) InitArgsLine() string {
	return shellquote.Join(r.InitArgs...)
}

// PlanArgsLine returns the plan phase list as one shell-safe string.
func (r *Result) PlanArgsLine() string {
	return shellquote.Join(r.PlanArgs...)
}

// ApplyArgsLine returns the apply phase list as one shell-safe string.
func (r *Result) ApplyArgsLine() string {
	return shellquote.Join(r.ApplyArgs...)
}
