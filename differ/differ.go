package differ

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Saber-Kurama/learn-pont/internal/severity"
	"github.com/Saber-Kurama/learn-pont/standard"
)

// DiffMode indicates the type of diff operation to perform
type DiffMode int

const (
	// ModeSimple reports all differences
	ModeSimple DiffMode = iota
	// ModeBreaking ranks differences by their impact on generated code
	ModeBreaking
)

// ChangeType indicates whether a change is an addition, removal, or modification
type ChangeType string

const (
	ChangeTypeAdded    ChangeType = "added"
	ChangeTypeRemoved  ChangeType = "removed"
	ChangeTypeModified ChangeType = "modified"
)

// ChangeCategory indicates which part of the model changed
type ChangeCategory string

const (
	CategoryOrigin    ChangeCategory = "origin"
	CategoryClass     ChangeCategory = "class"
	CategoryProperty  ChangeCategory = "property"
	CategoryMod       ChangeCategory = "mod"
	CategoryInterface ChangeCategory = "interface"
	CategoryParameter ChangeCategory = "parameter"
	CategoryResponse  ChangeCategory = "response"
)

// Severity indicates the severity level of a change
type Severity = severity.Severity

const (
	SeverityInfo     = severity.SeverityInfo
	SeverityWarning  = severity.SeverityWarning
	SeverityError    = severity.SeverityError
	SeverityCritical = severity.SeverityCritical
)

// Change is a single difference between two models.
type Change struct {
	Path     string         `json:"path"`
	Type     ChangeType     `json:"type"`
	Category ChangeCategory `json:"category"`
	Severity Severity       `json:"severity"`
	OldValue any            `json:"oldValue,omitempty"`
	NewValue any            `json:"newValue,omitempty"`
	Message  string         `json:"message"`
}

// String returns a formatted string representation of the change
func (c Change) String() string {
	var symbol string
	switch c.Severity {
	case SeverityError, SeverityCritical:
		symbol = "✗"
	case SeverityWarning:
		symbol = "⚠"
	case SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "·"
	}
	return fmt.Sprintf("%s %s [%s] %s: %s", symbol, c.Path, c.Type, c.Category, c.Message)
}

// Result holds the changes between two models.
type Result struct {
	Changes []Change `json:"changes"`
	// BreakingCount is the number of Critical and Error changes
	BreakingCount      int  `json:"breakingCount"`
	WarningCount       int  `json:"warningCount"`
	InfoCount          int  `json:"infoCount"`
	HasBreakingChanges bool `json:"hasBreakingChanges"`
}

// Empty reports whether the models are identical.
func (r *Result) Empty() bool {
	return len(r.Changes) == 0
}

// Summary returns a one-line count of the changes.
func (r *Result) Summary() string {
	if r.Empty() {
		return "no changes"
	}
	return fmt.Sprintf("%d changes (%d breaking, %d warnings, %d info)",
		len(r.Changes), r.BreakingCount, r.WarningCount, r.InfoCount)
}

// ByCategory returns the changes of one category.
func (r *Result) ByCategory(cat ChangeCategory) []Change {
	var out []Change
	for _, c := range r.Changes {
		if c.Category == cat {
			out = append(out, c)
		}
	}
	return out
}

// Option configures a diff.
type Option func(*diffConfig)

type diffConfig struct {
	mode        DiffMode
	includeInfo bool
}

// WithMode selects simple or breaking mode.
// Default: ModeSimple
func WithMode(mode DiffMode) Option {
	return func(cfg *diffConfig) { cfg.mode = mode }
}

// WithIncludeInfo keeps informational changes in breaking mode.
// Default: true
func WithIncludeInfo(include bool) Option {
	return func(cfg *diffConfig) { cfg.includeInfo = include }
}

// equalOpts treats nil and empty slices alike and ignores grouping-only
// fields, so a lock read back from JSON equals the model it was written from.
var equalOpts = gocmp.Options{
	cmpopts.EquateEmpty(),
	cmpopts.IgnoreFields(standard.Interface{}, "Tags"),
}

type differ struct {
	cfg     diffConfig
	prefix  string
	changes []Change
}

// Diff compares two data sources of one origin. A nil side is an empty
// model.
func Diff(old, updated *standard.DataSource, opts ...Option) *Result {
	d := newDiffer(opts)
	d.diffSource(old, updated)
	return d.result()
}

// DiffAll compares lists of data sources matched by origin name.
func DiffAll(old, updated []*standard.DataSource, opts ...Option) *Result {
	d := newDiffer(opts)
	oldByName := indexBy(old, func(ds *standard.DataSource) string { return ds.Name })
	newByName := indexBy(updated, func(ds *standard.DataSource) string { return ds.Name })
	multi := len(old) > 1 || len(updated) > 1

	for _, name := range unionKeys(oldByName, newByName) {
		d.prefix = ""
		o, n := oldByName[name], newByName[name]
		switch {
		case o == nil:
			d.add(name, ChangeTypeAdded, CategoryOrigin, SeverityInfo, nil, name, "origin added")
		case n == nil:
			d.add(name, ChangeTypeRemoved, CategoryOrigin, SeverityCritical, name, nil, "origin removed")
		default:
			if multi {
				d.prefix = name + ":"
			}
			d.diffSource(o, n)
		}
	}
	d.prefix = ""
	return d.result()
}

func newDiffer(opts []Option) *differ {
	cfg := diffConfig{mode: ModeSimple, includeInfo: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &differ{cfg: cfg}
}

func (d *differ) add(path string, typ ChangeType, cat ChangeCategory, sev Severity, oldValue, newValue any, msg string) {
	if d.cfg.mode == ModeBreaking && sev == SeverityInfo && !d.cfg.includeInfo {
		return
	}
	if d.cfg.mode == ModeSimple {
		sev = SeverityInfo
	}
	d.changes = append(d.changes, Change{
		Path:     d.prefix + path,
		Type:     typ,
		Category: cat,
		Severity: sev,
		OldValue: oldValue,
		NewValue: newValue,
		Message:  msg,
	})
}

func (d *differ) result() *Result {
	slices.SortStableFunc(d.changes, func(a, b Change) int {
		return cmp.Compare(a.Path, b.Path)
	})
	r := &Result{Changes: d.changes}
	if d.cfg.mode != ModeBreaking {
		return r
	}
	for _, c := range r.Changes {
		switch {
		case c.Severity.AtLeast(SeverityError):
			r.BreakingCount++
		case c.Severity == SeverityWarning:
			r.WarningCount++
		default:
			r.InfoCount++
		}
	}
	r.HasBreakingChanges = r.BreakingCount > 0
	return r
}

func (d *differ) diffSource(old, updated *standard.DataSource) {
	if old == nil {
		old = &standard.DataSource{}
	}
	if updated == nil {
		updated = &standard.DataSource{}
	}
	if gocmp.Equal(old, updated, equalOpts) {
		return
	}
	d.diffClasses(old.BaseClasses, updated.BaseClasses)
	d.diffMods(old.Mods, updated.Mods)
}

func (d *differ) diffClasses(old, updated []*standard.BaseClass) {
	oldByName := indexBy(old, func(c *standard.BaseClass) string { return c.Name })
	newByName := indexBy(updated, func(c *standard.BaseClass) string { return c.Name })
	for _, name := range unionKeys(oldByName, newByName) {
		path := "defs." + name
		o, n := oldByName[name], newByName[name]
		switch {
		case o == nil:
			d.add(path, ChangeTypeAdded, CategoryClass, SeverityInfo, nil, name, "class added")
		case n == nil:
			d.add(path, ChangeTypeRemoved, CategoryClass, SeverityError, name, nil, "class removed")
		case !gocmp.Equal(o, n, equalOpts):
			if o.Description != n.Description {
				d.add(path, ChangeTypeModified, CategoryClass, SeverityInfo, o.Description, n.Description, "description changed")
			}
			if len(o.TemplateArgs) != len(n.TemplateArgs) {
				d.add(path, ChangeTypeModified, CategoryClass, SeverityWarning, len(o.TemplateArgs), len(n.TemplateArgs),
					fmt.Sprintf("generic parameter count changed from %d to %d", len(o.TemplateArgs), len(n.TemplateArgs)))
			}
			d.diffProperties(path, CategoryProperty, o.Properties, n.Properties)
		}
	}
}

// diffProperties compares class members or operation parameters.
func (d *differ) diffProperties(base string, cat ChangeCategory, old, updated []*standard.Property) {
	oldByName := indexBy(old, func(p *standard.Property) string { return p.Name })
	newByName := indexBy(updated, func(p *standard.Property) string { return p.Name })
	for _, name := range unionKeys(oldByName, newByName) {
		path := base + "." + name
		o, n := oldByName[name], newByName[name]
		switch {
		case o == nil:
			sev := SeverityInfo
			if n.Required {
				sev = SeverityWarning
				if cat == CategoryParameter {
					sev = SeverityError
				}
			}
			d.add(path, ChangeTypeAdded, cat, sev, nil, n.DataType.Code(""), string(cat)+" added")
		case n == nil:
			d.add(path, ChangeTypeRemoved, cat, SeverityError, o.DataType.Code(""), nil, string(cat)+" removed")
		default:
			if oc, nc := o.DataType.Code(""), n.DataType.Code(""); oc != nc {
				d.add(path, ChangeTypeModified, cat, SeverityError, oc, nc,
					fmt.Sprintf("type changed from %s to %s", oc, nc))
			}
			if o.Required != n.Required {
				sev := SeverityInfo
				msg := "no longer required"
				if n.Required {
					sev = SeverityWarning
					msg = "now required"
				}
				d.add(path, ChangeTypeModified, cat, sev, o.Required, n.Required, msg)
			}
			if o.In != n.In {
				d.add(path, ChangeTypeModified, cat, SeverityError, o.In, n.In,
					fmt.Sprintf("location changed from %q to %q", o.In, n.In))
			}
			if o.Description != n.Description {
				d.add(path, ChangeTypeModified, cat, SeverityInfo, o.Description, n.Description, "description changed")
			}
		}
	}
}

func (d *differ) diffMods(old, updated []*standard.Mod) {
	oldByName := indexBy(old, func(m *standard.Mod) string { return m.Name })
	newByName := indexBy(updated, func(m *standard.Mod) string { return m.Name })
	for _, name := range unionKeys(oldByName, newByName) {
		path := "mods." + name
		o, n := oldByName[name], newByName[name]
		switch {
		case o == nil:
			d.add(path, ChangeTypeAdded, CategoryMod, SeverityInfo, nil, name,
				fmt.Sprintf("group added with %d operations", len(n.Interfaces)))
		case n == nil:
			d.add(path, ChangeTypeRemoved, CategoryMod, SeverityCritical, name, nil, "group removed")
		case !gocmp.Equal(o, n, equalOpts):
			if o.Description != n.Description {
				d.add(path, ChangeTypeModified, CategoryMod, SeverityInfo, o.Description, n.Description, "description changed")
			}
			d.diffInterfaces(path, o.Interfaces, n.Interfaces)
		}
	}
}

func (d *differ) diffInterfaces(base string, old, updated []*standard.Interface) {
	oldByName := indexBy(old, func(i *standard.Interface) string { return i.Name })
	newByName := indexBy(updated, func(i *standard.Interface) string { return i.Name })
	for _, name := range unionKeys(oldByName, newByName) {
		path := base + "." + name
		o, n := oldByName[name], newByName[name]
		switch {
		case o == nil:
			d.add(path, ChangeTypeAdded, CategoryInterface, SeverityInfo, nil, endpoint(n), "operation added")
		case n == nil:
			d.add(path, ChangeTypeRemoved, CategoryInterface, SeverityCritical, endpoint(o), nil, "operation removed")
		case !gocmp.Equal(o, n, equalOpts):
			if endpoint(o) != endpoint(n) {
				d.add(path, ChangeTypeModified, CategoryInterface, SeverityError, endpoint(o), endpoint(n),
					fmt.Sprintf("endpoint changed from %s to %s", endpoint(o), endpoint(n)))
			}
			if oc, nc := o.Response.Code(""), n.Response.Code(""); oc != nc {
				d.add(path, ChangeTypeModified, CategoryResponse, SeverityError, oc, nc,
					fmt.Sprintf("response changed from %s to %s", oc, nc))
			}
			if !slices.Equal(o.Consumes, n.Consumes) {
				d.add(path, ChangeTypeModified, CategoryInterface, SeverityWarning, o.Consumes, n.Consumes, "consumed media types changed")
			}
			if o.Description != n.Description {
				d.add(path, ChangeTypeModified, CategoryInterface, SeverityInfo, o.Description, n.Description, "description changed")
			}
			d.diffProperties(path, CategoryParameter, o.Parameters, n.Parameters)
		}
	}
}

func endpoint(i *standard.Interface) string {
	return strings.ToUpper(i.Method) + " " + i.Path
}

func indexBy[T any](items []T, key func(T) string) map[string]T {
	m := make(map[string]T, len(items))
	for _, item := range items {
		m[key(item)] = item
	}
	return m
}

func unionKeys[T any](a, b map[string]T) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}
