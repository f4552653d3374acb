package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"paint", "Paint"},
		{"Paint", "Paint"},
		{" paint ", "Paint"},
		{"city hall", "City hall"},
		{"CITY HALL", "City hall"},
		{"água", "Água"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeCategory(c.in), "input %q", c.in)
	}
}

func TestNormalizeCategoryIdempotent(t *testing.T) {
	for _, in := range []string{"Paint", "City hall", "Obras"} {
		once := NormalizeCategory(in)
		assert.Equal(t, once, NormalizeCategory(once))
	}
}

func TestGenAvatar(t *testing.T) {
	a := GenAvatar("joao@engipec.com.br")
	b := GenAvatar("joao@engipec.com.br")
	assert.Equal(t, a, b)
	assert.Contains(t, a, "joao@engipec.com.br")
	assert.NotEqual(t, a, GenAvatar("maria@engipec.com.br"))
}
