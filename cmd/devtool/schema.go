package main

import (
	"fmt"

	"github.com/farrow-dev/SkullPit_Go/internal/store/schema"
)

// runSchema prints the canonical schema, handy for bootstrapping a fresh
// database without running the migration chain.
func runSchema() error {
	fmt.Print(schema.SchemaSQL)
	return nil
}
