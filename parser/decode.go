package parser

import (
	"slices"
	"strings"
)

// preferredMediaTypes are tried in order when an OpenAPI 3 body or response
// has several content entries.
var preferredMediaTypes = []string{"application/json", "*/*"}

// decoder turns a raw document map into a Document.
type decoder struct {
	dialect Dialect
	// sharedParams holds #/parameters/ (V2) or #/components/parameters/ (V3).
	sharedParams map[string]any
	// sharedBodies holds #/components/requestBodies/ (V3 only).
	sharedBodies map[string]any
	// sharedResponses holds #/responses/ (V2) or #/components/responses/ (V3).
	sharedResponses map[string]any
	logger          Logger
}

func (d *decoder) decodeDocument(m map[string]any) *Document {
	doc := &Document{
		Dialect:  d.dialect,
		Tags:     decodeTags(mapGetSlice(m, "tags")),
		Consumes: mapGetStringSlice(m, "consumes"),
	}
	if info := mapGetMap(m, "info"); info != nil {
		doc.Title = mapGetString(info, "title")
	}

	switch d.dialect {
	case DialectOpenAPIV3:
		doc.Version = mapGetString(m, "openapi")
		components := mapGetMap(m, "components")
		doc.Definitions = decodeSchemaMap(mapGetMap(components, "schemas"))
		d.sharedParams = mapGetMap(components, "parameters")
		d.sharedBodies = mapGetMap(components, "requestBodies")
		d.sharedResponses = mapGetMap(components, "responses")
	default:
		doc.Version = mapGetString(m, "swagger")
		doc.Definitions = decodeSchemaMap(mapGetMap(m, "definitions"))
		d.sharedParams = mapGetMap(m, "parameters")
		d.sharedResponses = mapGetMap(m, "responses")
	}

	paths := mapGetMap(m, "paths")
	doc.Paths = make(map[string]*PathItem, len(paths))
	for path, v := range paths {
		if item, ok := v.(map[string]any); ok {
			doc.Paths[path] = d.decodePathItem(path, item)
		}
	}
	return doc
}

func (d *decoder) decodePathItem(path string, m map[string]any) *PathItem {
	item := &PathItem{
		Parameters: d.decodeParameters(path, mapGetSlice(m, "parameters")),
		Operations: make(map[string]*Operation),
	}
	for _, method := range Methods {
		if op := mapGetMap(m, method); op != nil {
			item.Operations[method] = d.decodeOperation(path, op)
		}
	}
	return item
}

func (d *decoder) decodeOperation(path string, m map[string]any) *Operation {
	op := &Operation{
		OperationID: mapGetString(m, "operationId"),
		Summary:     mapGetString(m, "summary"),
		Description: mapGetString(m, "description"),
		Tags:        mapGetStringSlice(m, "tags"),
		Consumes:    mapGetStringSlice(m, "consumes"),
		Parameters:  d.decodeParameters(path, mapGetSlice(m, "parameters")),
		Responses:   make(map[string]*Schema),
	}

	if d.dialect == DialectOpenAPIV3 {
		if body := d.deref(mapGetMap(m, "requestBody"), "#/components/requestBodies/", d.sharedBodies); body != nil {
			content := mapGetMap(body, "content")
			op.Consumes = sortedKeys(content)
			op.Parameters = append(op.Parameters, &Parameter{
				Name:        "body",
				In:          "body",
				Description: mapGetString(body, "description"),
				Required:    mapGetBool(body, "required"),
				Schema:      decodeSchema(pickMedia(content)),
			})
		}
	}

	for code, v := range mapGetMap(m, "responses") {
		resp, ok := v.(map[string]any)
		if !ok {
			continue
		}
		resp = d.deref(resp, d.responsePrefix(), d.sharedResponses)
		if d.dialect == DialectOpenAPIV3 {
			op.Responses[code] = decodeSchema(pickMedia(mapGetMap(resp, "content")))
		} else {
			op.Responses[code] = decodeSchema(mapGetMap(resp, "schema"))
		}
	}
	return op
}

func (d *decoder) responsePrefix() string {
	if d.dialect == DialectOpenAPIV3 {
		return "#/components/responses/"
	}
	return "#/responses/"
}

func (d *decoder) paramPrefix() string {
	if d.dialect == DialectOpenAPIV3 {
		return "#/components/parameters/"
	}
	return "#/parameters/"
}

// deref replaces a local $ref to a shared component with its target. An
// unknown target is returned unchanged.
func (d *decoder) deref(m map[string]any, prefix string, shared map[string]any) map[string]any {
	ref := mapGetString(m, "$ref")
	if ref == "" || !strings.HasPrefix(ref, prefix) {
		return m
	}
	target, ok := shared[strings.TrimPrefix(ref, prefix)].(map[string]any)
	if !ok {
		d.logger.Warn("unresolved component reference", "ref", ref)
		return m
	}
	return target
}

func (d *decoder) decodeParameters(path string, arr []any) []*Parameter {
	params := make([]*Parameter, 0, len(arr))
	for _, item := range arr {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		m = d.deref(m, d.paramPrefix(), d.sharedParams)
		p := &Parameter{
			Name:        mapGetString(m, "name"),
			In:          mapGetString(m, "in"),
			Description: mapGetString(m, "description"),
			Required:    mapGetBool(m, "required"),
			Type:        mapGetString(m, "type"),
			Format:      mapGetString(m, "format"),
			Enum:        mapGetSlice(m, "enum"),
			Items:       decodeSchema(mapGetMap(m, "items")),
		}
		schema := decodeSchema(mapGetMap(m, "schema"))
		switch {
		case p.In == "body":
			p.Schema = schema
		case schema != nil:
			// OpenAPI 3 parameters describe their value with a schema.
			p.Type = schema.Type
			p.Format = schema.Format
			p.Ref = schema.Ref
			p.Enum = schema.Enum
			p.Items = schema.Items
		}
		if p.Name == "" {
			d.logger.Warn("parameter without name", "path", path)
		}
		params = append(params, p)
	}
	return params
}

// pickMedia returns the schema of the preferred media type in an OpenAPI 3
// content map.
func pickMedia(content map[string]any) map[string]any {
	if len(content) == 0 {
		return nil
	}
	keys := sortedKeys(content)
	for _, preferred := range preferredMediaTypes {
		if slices.Contains(keys, preferred) {
			return mapGetMap(mapGetMap(content, preferred), "schema")
		}
	}
	return mapGetMap(mapGetMap(content, keys[0]), "schema")
}
