package pricingapi

import "embed"

// Assets holds the schema migrations and the per-environment seed data.
//
//go:embed migrations/*.sql data/*/*/*.json
var Assets embed.FS
