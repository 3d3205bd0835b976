package clix

import (
	"github.com/spf13/pflag"

	"techpulse/internal/models"
)

// ParseContentType reads the "type" flag and resolves it to a content type,
// accepting both singular and plural spellings.
func ParseContentType(flags *pflag.FlagSet) (models.ContentType, error) {
	raw, _ := flags.GetString("type")
	return models.ParseContentType(raw)
}

// ParseLimit reads the "limit" flag with a sane default.
func ParseLimit(flags *pflag.FlagSet) int {
	limit, _ := flags.GetInt("limit")
	if limit <= 0 {
		limit = 20
	}
	return limit
}
