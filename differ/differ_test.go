package differ

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saber-Kurama/learn-pont/standard"
)

func model() *standard.DataSource {
	id := standard.NewProperty("id", "", true, standard.NewDataType(standard.TypeNumber))
	id.In = "path"
	return &standard.DataSource{
		BaseClasses: []*standard.BaseClass{{
			Name: "User",
			Properties: []*standard.Property{
				standard.NewProperty("id", "user id", true, standard.NewDataType(standard.TypeNumber)),
				standard.NewProperty("name", "", false, standard.NewDataType(standard.TypeString)),
			},
		}},
		Mods: []*standard.Mod{{
			Name: "user",
			Interfaces: []*standard.Interface{{
				Name:       "getById",
				Method:     "get",
				Path:       "/user/{id}",
				Parameters: []*standard.Property{id},
				Response:   standard.Defs("User"),
				Tags:       []string{"user"},
			}},
		}},
	}
}

func paths(r *Result) []string {
	out := make([]string, len(r.Changes))
	for i, c := range r.Changes {
		out[i] = c.Path
	}
	return out
}

func TestDiffIdentical(t *testing.T) {
	r := Diff(model(), model())
	assert.True(t, r.Empty())
	assert.Equal(t, "no changes", r.Summary())
}

func TestDiffLockRoundTrip(t *testing.T) {
	data, err := json.Marshal(model())
	require.NoError(t, err)
	var back standard.DataSource
	require.NoError(t, json.Unmarshal(data, &back))

	assert.True(t, Diff(model(), &back).Empty(), "lock snapshot equals the model it came from")
}

func TestDiffChanges(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(ds *standard.DataSource)
		path     string
		typ      ChangeType
		category ChangeCategory
		severity Severity
	}{
		{
			name:     "class removed",
			mutate:   func(ds *standard.DataSource) { ds.BaseClasses = nil },
			path:     "defs.User",
			typ:      ChangeTypeRemoved,
			category: CategoryClass,
			severity: SeverityError,
		},
		{
			name: "class added",
			mutate: func(ds *standard.DataSource) {
				ds.BaseClasses = append(ds.BaseClasses, &standard.BaseClass{Name: "Pet"})
			},
			path:     "defs.Pet",
			typ:      ChangeTypeAdded,
			category: CategoryClass,
			severity: SeverityInfo,
		},
		{
			name:     "member type changed",
			mutate:   func(ds *standard.DataSource) { ds.BaseClasses[0].Properties[0].DataType = standard.NewDataType("string") },
			path:     "defs.User.id",
			typ:      ChangeTypeModified,
			category: CategoryProperty,
			severity: SeverityError,
		},
		{
			name:     "member became required",
			mutate:   func(ds *standard.DataSource) { ds.BaseClasses[0].Properties[1].Required = true },
			path:     "defs.User.name",
			typ:      ChangeTypeModified,
			category: CategoryProperty,
			severity: SeverityWarning,
		},
		{
			name:     "description changed",
			mutate:   func(ds *standard.DataSource) { ds.BaseClasses[0].Description = "a user" },
			path:     "defs.User",
			typ:      ChangeTypeModified,
			category: CategoryClass,
			severity: SeverityInfo,
		},
		{
			name:     "group removed",
			mutate:   func(ds *standard.DataSource) { ds.Mods = nil },
			path:     "mods.user",
			typ:      ChangeTypeRemoved,
			category: CategoryMod,
			severity: SeverityCritical,
		},
		{
			name:     "operation removed",
			mutate:   func(ds *standard.DataSource) { ds.Mods[0].Interfaces[0].Name = "fetch" },
			path:     "mods.user.getById",
			typ:      ChangeTypeRemoved,
			category: CategoryInterface,
			severity: SeverityCritical,
		},
		{
			name:     "response changed",
			mutate:   func(ds *standard.DataSource) { ds.Mods[0].Interfaces[0].Response = standard.ArrayOf(standard.Defs("User")) },
			path:     "mods.user.getById",
			typ:      ChangeTypeModified,
			category: CategoryResponse,
			severity: SeverityError,
		},
		{
			name: "required parameter added",
			mutate: func(ds *standard.DataSource) {
				p := standard.NewProperty("tenant", "", true, standard.NewDataType("string"))
				p.In = "header"
				ds.Mods[0].Interfaces[0].Parameters = append(ds.Mods[0].Interfaces[0].Parameters, p)
			},
			path:     "mods.user.getById.tenant",
			typ:      ChangeTypeAdded,
			category: CategoryParameter,
			severity: SeverityError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated := model()
			tt.mutate(updated)
			r := Diff(model(), updated, WithMode(ModeBreaking))

			var found *Change
			for i := range r.Changes {
				if r.Changes[i].Path == tt.path && r.Changes[i].Category == tt.category {
					found = &r.Changes[i]
				}
			}
			require.NotNil(t, found, "changes: %v", paths(r))
			assert.Equal(t, tt.typ, found.Type)
			assert.Equal(t, tt.severity, found.Severity)
		})
	}
}

func TestDiffModes(t *testing.T) {
	updated := model()
	updated.Mods = nil
	updated.BaseClasses[0].Description = "changed"

	simple := Diff(model(), updated)
	require.Len(t, simple.Changes, 2)
	assert.Equal(t, SeverityInfo, simple.Changes[1].Severity, "simple mode does not rank changes")
	assert.Zero(t, simple.BreakingCount)

	breaking := Diff(model(), updated, WithMode(ModeBreaking))
	assert.True(t, breaking.HasBreakingChanges)
	assert.Equal(t, 1, breaking.BreakingCount)
	assert.Equal(t, 1, breaking.InfoCount)
	assert.Equal(t, "2 changes (1 breaking, 0 warnings, 1 info)", breaking.Summary())

	quiet := Diff(model(), updated, WithMode(ModeBreaking), WithIncludeInfo(false))
	assert.Equal(t, []string{"mods.user"}, paths(quiet))
}

func TestDiffAll(t *testing.T) {
	a, b := model(), model()
	a.Name, b.Name = "alpha", "beta"
	changed := model()
	changed.Name = "alpha"
	changed.BaseClasses = nil

	r := DiffAll([]*standard.DataSource{a, b}, []*standard.DataSource{changed}, WithMode(ModeBreaking))
	assert.Equal(t, []string{"alpha:defs.User", "beta"}, paths(r))
	assert.Equal(t, CategoryOrigin, r.Changes[1].Category)
	assert.Len(t, r.ByCategory(CategoryClass), 1)
}

func TestChangeString(t *testing.T) {
	c := Change{Path: "mods.user", Type: ChangeTypeRemoved, Category: CategoryMod, Severity: SeverityCritical, Message: "group removed"}
	assert.Equal(t, "✗ mods.user [removed] mod: group removed", c.String())
}
