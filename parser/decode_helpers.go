package parser

import (
	"fmt"
	"sort"
)

// stringKeys rewrites YAML mappings with non-string keys, such as unquoted
// status codes, into map[string]any throughout v.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, sub := range t {
			t[k] = stringKeys(sub)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, sub := range t {
			out[fmt.Sprint(k)] = stringKeys(sub)
		}
		return out
	case []any:
		for i, sub := range t {
			t[i] = stringKeys(sub)
		}
		return t
	default:
		return v
	}
}

// mapGetString extracts a string from m[key].
func mapGetString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// mapGetBool extracts a bool from m[key].
func mapGetBool(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

// mapGetMap extracts a nested object from m[key].
func mapGetMap(m map[string]any, key string) map[string]any {
	sub, _ := m[key].(map[string]any)
	return sub
}

// mapGetSlice extracts a []any from m[key].
func mapGetSlice(m map[string]any, key string) []any {
	arr, _ := m[key].([]any)
	return arr
}

// mapGetStringSlice extracts a []string from m[key], handling the []any that
// yaml.Unmarshal / json.Unmarshal produce.
func mapGetStringSlice(m map[string]any, key string) []string {
	arr := mapGetSlice(m, key)
	if arr == nil {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// sortedKeys returns the keys of m in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// decodeSchemaMap decodes a name -> schema object.
func decodeSchemaMap(m map[string]any) map[string]*Schema {
	if m == nil {
		return nil
	}
	result := make(map[string]*Schema, len(m))
	for name, v := range m {
		if sub, ok := v.(map[string]any); ok {
			result[name] = decodeSchema(sub)
		}
	}
	return result
}

// decodeSchema decodes one schema object. A nil map yields nil.
func decodeSchema(m map[string]any) *Schema {
	if m == nil {
		return nil
	}
	s := &Schema{
		Type:        mapGetString(m, "type"),
		Format:      mapGetString(m, "format"),
		Ref:         mapGetString(m, "$ref"),
		Description: mapGetString(m, "description"),
		Enum:        mapGetSlice(m, "enum"),
		Items:       decodeSchema(mapGetMap(m, "items")),
		Properties:  decodeSchemaMap(mapGetMap(m, "properties")),
		Required:    mapGetStringSlice(m, "required"),
	}
	// OpenAPI 3.1 allows type: [string, "null"]; keep the first non-null.
	if types := mapGetStringSlice(m, "type"); len(types) > 0 {
		for _, t := range types {
			if t != "null" {
				s.Type = t
				break
			}
		}
	}
	switch ap := m["additionalProperties"].(type) {
	case map[string]any:
		s.AdditionalProperties = decodeSchema(ap)
		s.AllowsAdditional = true
	case bool:
		s.AllowsAdditional = ap
	}
	return s
}

// decodeTags decodes the top-level tags array.
func decodeTags(arr []any) []Tag {
	tags := make([]Tag, 0, len(arr))
	for _, item := range arr {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name := mapGetString(m, "name")
		if name == "" {
			continue
		}
		tags = append(tags, Tag{Name: name, Description: mapGetString(m, "description")})
	}
	return tags
}
