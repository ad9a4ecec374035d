package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPasswordStrong(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Str0ng!pass", true},
		{"short1!", false},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoNumbers!!", false},
		{"NoSpecials11", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsPasswordStrong(tc.password), "password %q", tc.password)
	}
}

func TestStringTrim(t *testing.T) {
	assert.Equal(t, "abc", StringTrim("  abc \n"))
	assert.Equal(t, "", StringTrim("   "))
}
