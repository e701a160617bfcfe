package compiler

import "strings"

// AST is a parsed type expression.
type AST struct {
	Name     string `json:"name"`
	TypeArgs []*AST `json:"typeArgs,omitempty"`
}

// String renders the expression with ASCII brackets.
func (a *AST) String() string {
	if a == nil {
		return ""
	}
	if len(a.TypeArgs) == 0 {
		return a.Name
	}
	args := make([]string, len(a.TypeArgs))
	for i, arg := range a.TypeArgs {
		args[i] = arg.String()
	}
	return a.Name + "<" + strings.Join(args, ", ") + ">"
}
