package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DICT_URLS", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	c := FromEnv()
	assert.Equal(t, "5177", c.Port)
	assert.Equal(t, []string{defaultDictURL}, c.DictURLs)
	assert.Empty(t, c.AllowedOrigins)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DICT_URLS", "http://a.example/words.txt, http://b.example/words.txt")
	t.Setenv("ALLOWED_ORIGINS", "https://yoink.example")

	c := FromEnv()
	assert.Equal(t, "9000", c.Port)
	assert.Equal(t, []string{"http://a.example/words.txt", "http://b.example/words.txt"}, c.DictURLs)
	assert.Equal(t, []string{"https://yoink.example"}, c.AllowedOrigins)
}
