package transformer

import (
	"sort"
	"strings"

	"github.com/Saber-Kurama/learn-pont/internal/naming"
	"github.com/Saber-Kurama/learn-pont/parser"
	"github.com/Saber-Kurama/learn-pont/standard"
)

// operation is an interface before it has been named and grouped.
type operation struct {
	inter       *standard.Interface
	operationID string
}

// transformOperations runs the operations pass.
func (t *transformer) transformOperations() []*standard.Mod {
	ops := t.collectOperations()
	tags := t.groupTags(ops)

	mods := make([]*standard.Mod, 0, len(tags))
	for _, tag := range tags {
		var members []*operation
		for _, op := range ops {
			if operationMatchesTag(op.inter.Tags, tag) {
				members = append(members, op)
			}
		}
		if len(members) == 0 {
			continue
		}
		mods = append(mods, t.buildMod(tag, members))
	}
	resolveModNames(mods)
	return mods
}

func (t *transformer) collectOperations() []*operation {
	var ops []*operation
	for _, path := range t.doc.PathNames() {
		item := t.doc.Paths[path]
		for _, method := range parser.Methods {
			op, ok := item.Operations[method]
			if !ok {
				continue
			}
			ops = append(ops, &operation{
				inter:       t.buildInterface(path, method, item, op),
				operationID: op.OperationID,
			})
		}
	}
	return ops
}

func (t *transformer) buildInterface(path, method string, item *parser.PathItem, op *parser.Operation) *standard.Interface {
	// Path-level parameters come first so an operation can override them.
	merged := make([]*parser.Parameter, 0, len(item.Parameters)+len(op.Parameters))
	merged = append(merged, item.Parameters...)
	merged = append(merged, op.Parameters...)

	params := make([]*standard.Property, 0, len(merged))
	index := make(map[string]int, len(merged))
	for _, p := range merged {
		prop := standard.NewProperty(
			strings.ReplaceAll(p.Name, "/", ""),
			p.Description,
			p.Required,
			t.resolver.SchemaType(p.AsSchema(), nil),
		)
		prop.In = p.In
		if i, dup := index[p.Name]; dup {
			params[i] = prop
			continue
		}
		index[p.Name] = len(params)
		params = append(params, prop)
	}

	consumes := op.Consumes
	if len(consumes) == 0 {
		consumes = t.doc.Consumes
	}
	tags := op.Tags
	if len(tags) == 0 {
		tags = []string{DefaultModule}
	}

	return &standard.Interface{
		Description: strings.TrimSpace(op.Summary + "\n" + op.Description),
		Method:      method,
		Path:        path,
		Consumes:    consumes,
		Parameters:  params,
		Response:    t.resolver.SchemaType(responseSchema(op.Responses), nil),
		Tags:        tags,
	}
}

// responseSchema picks the success response: 200, then the lowest other
// 2xx code, then default.
func responseSchema(responses map[string]*parser.Schema) *parser.Schema {
	if s, ok := responses["200"]; ok {
		return s
	}
	codes := make([]string, 0, len(responses))
	for code := range responses {
		if strings.HasPrefix(code, "2") {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	if len(codes) > 0 {
		return responses[codes[0]]
	}
	return responses["default"]
}

// groupTags returns the declared tags, then a tag for every operation tag
// no declared tag matches, then defaultModule.
func (t *transformer) groupTags(ops []*operation) []parser.Tag {
	tags := append([]parser.Tag(nil), t.doc.Tags...)
	for _, op := range ops {
		for _, name := range op.inter.Tags {
			if name == DefaultModule || tagDeclared(tags, name) {
				continue
			}
			t.logger.Debug("operation tag not declared, adding group", "tag", name, "path", op.inter.Path)
			tags = append(tags, parser.Tag{Name: name})
		}
	}
	if !tagDeclared(tags, DefaultModule) {
		tags = append(tags, parser.Tag{Name: DefaultModule, Description: DefaultModule})
	}
	return tags
}

func tagDeclared(tags []parser.Tag, name string) bool {
	for _, tag := range tags {
		if tagMatches(tag, name) {
			return true
		}
	}
	return false
}

func operationMatchesTag(opTags []string, tag parser.Tag) bool {
	for _, name := range opTags {
		if tagMatches(tag, name) {
			return true
		}
	}
	return false
}

// tagMatches reports whether an operation tag refers to tag: by name or
// description ignoring case, or by the dash-cased description.
func tagMatches(tag parser.Tag, opTag string) bool {
	if strings.EqualFold(opTag, tag.Name) {
		return true
	}
	if tag.Description == "" {
		return false
	}
	return strings.EqualFold(opTag, tag.Description) || opTag == naming.ToDashCase(tag.Description)
}

// buildMod names the members of one group and builds the mod.
func (t *transformer) buildMod(tag parser.Tag, members []*operation) *standard.Mod {
	paths := make([]string, len(members))
	for i, op := range members {
		paths[i] = strings.TrimPrefix(op.inter.Path, "/")
	}
	samePath := GetMaxSamePath(paths)

	used := make(map[string]bool, len(members))
	interfaces := make([]*standard.Interface, 0, len(members))
	for _, op := range members {
		name := t.operationName(op, samePath)
		if used[name] {
			renamed := uniqueName(IdentifierFromURL(op.inter.Path, op.inter.Method, samePath), used)
			t.logger.Debug("duplicate operation name, deriving from path",
				"name", name, "renamed", renamed, "path", op.inter.Path)
			name = renamed
		}
		used[name] = true

		inter := *op.inter
		inter.Name = name
		interfaces = append(interfaces, &inter)
	}

	name, description := tag.Name, tag.Description
	if tag.Description != "" && naming.HasNonLatin(tag.Name) && !naming.HasNonLatin(tag.Description) {
		name, description = tag.Description, tag.Name
	}
	return &standard.Mod{
		Name:        naming.TransformCamelCase(name),
		Description: description,
		Interfaces:  interfaces,
	}
}

func (t *transformer) operationName(op *operation, samePath string) string {
	if t.cfg.usingOperationID && op.operationID != "" {
		if name := IdentifierFromOperationID(op.operationID); name != "" {
			return name
		}
	}
	return IdentifierFromURL(op.inter.Path, op.inter.Method, samePath)
}

// resolveModNames converts names that collide ignoring case to underscore
// case, makes every name a valid identifier and suffixes what still
// collides.
func resolveModNames(mods []*standard.Mod) {
	counts := make(map[string]int, len(mods))
	for _, m := range mods {
		counts[strings.ToLower(m.Name)]++
	}
	used := make(map[string]bool, len(mods))
	for _, m := range mods {
		name := m.Name
		if counts[strings.ToLower(name)] > 1 {
			name = naming.ToUnderscoreCase(name)
		}
		name = naming.ToIdentifier(name)
		if name == "" {
			name = DefaultModule
		}
		name = uniqueName(name, used)
		used[name] = true
		m.Name = name
	}
}
