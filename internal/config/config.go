package config

import (
	"os"
	"strings"
)

const defaultDictURL = "https://raw.githubusercontent.com/dwyl/english-words/master/words_alpha.txt"

type Config struct {
	Port           string
	DictURLs       []string
	AllowedOrigins []string
	GinMode        string
}

func FromEnv() Config {
	c := Config{}
	c.Port = getenv("PORT", "5177")
	c.DictURLs = splitList(getenv("DICT_URLS", defaultDictURL))
	c.AllowedOrigins = splitList(os.Getenv("ALLOWED_ORIGINS"))
	c.GinMode = os.Getenv("GIN_MODE")
	return c
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
