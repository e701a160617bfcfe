// Package standard defines the normalized data model every origin is
// transformed into before code is emitted.
//
// A [DataSource] holds the schema classes ([BaseClass]) and operation groups
// ([Mod]) of one origin. Types are expressed as trees of [DataType] nodes and
// rendered to TypeScript type expressions with [DataType.Code]. Rendering
// takes the origin name as an argument so class references can be qualified
// (defs.petstore.Pet) when several origins share one output tree.
//
// Entities are built once by the transformer and treated as immutable
// afterwards. They carry JSON tags so a slice of data sources can be written
// as the api-lock.json snapshot.
package standard
