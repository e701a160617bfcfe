// Package transformer converts a parsed schema document into the
// [standard.DataSource] model code is generated from.
//
// The transformation runs in two passes. The definitions pass compiles
// every definition name (names such as "Page«User»" declare generic
// classes), resolves member types against the full set of definitions and
// the class's own template arguments, then orders generic overloads so the
// most specific one is kept when names collapse. The operations pass turns
// every path and method into an operation, groups operations into mods by
// tag, and assigns each operation a name that is unique within its mod.
//
// Structural anomalies never drop data: untagged operations land in
// "defaultModule", tags missing from the document's tag list get their own
// mod, colliding names are re-derived from the path and then suffixed, and a
// member $ref that does not parse becomes "any" with a warning. Only a
// definition name that does not parse aborts the run.
package transformer
