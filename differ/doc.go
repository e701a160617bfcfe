/*
Package differ compares two transformed data sources and reports what an
API change means for the generated client.

Changes are keyed by model path:

	defs.User                 class
	defs.User.name            class member
	mods.user                 operation group
	mods.user.getById         operation
	mods.user.getById.id      operation parameter

With more than one origin the path is prefixed with "origin:".

# Diff Modes

  - ModeSimple: every difference, without severities
  - ModeBreaking: differences ranked by their impact on generated code

# Severity Levels

In ModeBreaking:

  - SeverityCritical: a group or operation disappeared
  - SeverityError: a class, member or parameter disappeared, or a type changed
  - SeverityWarning: a member became required, or media types changed
  - SeverityInfo: additions and description changes

# Example

	result := differ.Diff(lock, remote, differ.WithMode(differ.ModeBreaking))
	for _, c := range result.Changes {
		fmt.Println(c)
	}
*/
package differ
