package standard

import (
	"regexp"
	"strings"
)

var identifierRe = regexp.MustCompile(`^[a-zA-Z_$][a-zA-Z0-9_$]*$`)

// Optionality selects how a property signature marks optional members.
type Optionality int

const (
	// MarkOptional appends "?" unless the property is required. Class
	// members and parameter lists use it.
	MarkOptional Optionality = iota
	// ForceOptional appends "?" to every member.
	ForceOptional
	// NoMarker renders every member as present. Inline object types use it.
	NoMarker
)

// Described is implemented by every entity carrying a human description.
type Described interface {
	GetDescription() string
}

// Property is a class member or an operation parameter.
type Property struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Required    bool      `json:"required"`
	In          string    `json:"in,omitempty"`
	DataType    *DataType `json:"dataType"`
}

var _ Described = (*Property)(nil)

// NewProperty builds a property, keeping only the segment after the last
// dot of name.
func NewProperty(name, description string, required bool, dataType *DataType) *Property {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	if dataType == nil {
		dataType = Any()
	}
	return &Property{
		Name:        name,
		Description: description,
		Required:    required,
		DataType:    dataType,
	}
}

// GetDescription implements Described.
func (p *Property) GetDescription() string {
	return p.Description
}

// Identifier returns the member name, quoted when it is not a valid
// identifier.
func (p *Property) Identifier() string {
	if identifierRe.MatchString(p.Name) {
		return p.Name
	}
	return "'" + strings.ReplaceAll(p.Name, "'", `\'`) + "'"
}

// Optional reports whether the member renders with a "?" marker.
func (p *Property) Optional(mode Optionality) bool {
	switch mode {
	case ForceOptional:
		return true
	case MarkOptional:
		return !p.Required
	default:
		return false
	}
}

// Signature renders "name?: type;".
func (p *Property) Signature(origin string, mode Optionality) string {
	marker := ""
	if p.Optional(mode) {
		marker = "?"
	}
	return p.Identifier() + marker + ": " + p.DataType.Code(origin) + ";"
}

// IsIdentifier reports whether s can be used unquoted as a member name.
func IsIdentifier(s string) bool {
	return identifierRe.MatchString(s)
}
