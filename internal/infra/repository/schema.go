package repository

import _ "embed"

// Schema is the full DDL for the service, applied by migrations tooling
// and by integration tests against a throwaway container.
//
//go:embed schema.sql
var Schema string
