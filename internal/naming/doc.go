// Package naming provides the case conversion helpers used to derive
// identifiers for generated TypeScript code.
//
// The transformer uses these to name operations (getUserById), groups
// (userController -> user) and to resolve group names that collide
// case-insensitively (userApi vs UserApi -> user_api).
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
