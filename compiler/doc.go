// Package compiler parses type reference strings and resolves them into
// [standard.DataType] trees.
//
// A reference is a schema-dialect prefix followed by a type expression:
//
//	#/definitions/Page«List«User»»
//	#/components/schemas/Result<User>
//
// The grammar accepts both ASCII angle brackets and the guillemets emitted by
// Java tooling such as springfox:
//
//	TypeExpr := Ident [ Open TypeExpr { "," TypeExpr } Close ]
//	Open     := "<" | "«"
//	Close    := ">" | "»"
//
// [Compile] produces an [AST]. [Resolve] turns an AST into a data type by
// mapping Java-style primitives (Long, List, Map, ...) to their TypeScript
// counterparts, marking known definitions as class references, and binding
// nodes that render identically to one of the enclosing class's generic
// parameters to that parameter's position.
//
// Definition names such as "Page«User»" go through the same grammar, which is
// how generic classes learn their own template arguments.
package compiler
