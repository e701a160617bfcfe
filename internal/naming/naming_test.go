package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpperLowerFirst(t *testing.T) {
	assert.Equal(t, "", UpperFirst(""))
	assert.Equal(t, "Hello", UpperFirst("hello"))
	assert.Equal(t, "Éclair", UpperFirst("éclair"))
	assert.Equal(t, "", LowerFirst(""))
	assert.Equal(t, "userController", LowerFirst("UserController"))
}

func TestCamelDashes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"user", "user"},
		{"user-info", "userInfo"},
		{"user-info-detail", "userInfoDetail"},
		{"a-b-c", "aBC"},
		{"trailing-", "trailing"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, CamelDashes(tt.input))
		})
	}
}

func TestToDashCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"User Controller", "user-controller"},
		{"userController", "user-controller"},
		{"pet", "pet"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToDashCase(tt.input))
		})
	}
}

func TestToUnderscoreCase(t *testing.T) {
	assert.Equal(t, "user_api", ToUnderscoreCase("userApi"))
	assert.Equal(t, "_user_api", ToUnderscoreCase("UserApi"))
}

func TestTransformCamelCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "dash separated controller", input: "user-controller", want: "user"},
		{name: "space separated", input: "Pet Store", want: "petStore"},
		{name: "single word", input: "Pet", want: "pet"},
		{name: "camel controller", input: "OrderController", want: "order"},
		{name: "bare controller kept", input: "Controller", want: "controller"},
		{name: "already camel", input: "storeApi", want: "storeApi"},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TransformCamelCase(tt.input))
		})
	}
}

func TestHasNonLatin(t *testing.T) {
	assert.True(t, HasNonLatin("用户管理"))
	assert.True(t, HasNonLatin("user 用户"))
	assert.False(t, HasNonLatin("user-controller"))
	assert.False(t, HasNonLatin("café 123"))
	assert.False(t, HasNonLatin(""))
}

func TestToIdentifier(t *testing.T) {
	assert.Equal(t, "v1_user_admin", ToIdentifier("v1/user.admin"))
	assert.Equal(t, "user", ToIdentifier("/user"))
	assert.Equal(t, "_2fa", ToIdentifier("2fa"))
	assert.Equal(t, "petStore", ToIdentifier("pet Store"))
}
