// Package parser reads Swagger 2.0 and OpenAPI 3 documents into the subset
// of the schema model pont generates code from.
//
// Both dialects are normalized into one [Document]: OpenAPI 3
// components/schemas become Definitions, request bodies become a "body"
// parameter and response content is reduced to one schema per status code.
// The [Dialect] records which reference prefix ("#/definitions/" or
// "#/components/schemas/") the document uses.
//
// JSON input takes a fast path through encoding/json; everything else is
// decoded as YAML. Decoding goes through map[string]any so that fields with
// polymorphic shapes (additionalProperties as bool or schema, $ref'd
// parameters) can be handled in one place.
//
//	doc, err := parser.Parse(data, parser.WithSourceName("petstore.json"))
//	if err != nil {
//		return err
//	}
//	for name := range doc.Definitions {
//		fmt.Println(name)
//	}
package parser
