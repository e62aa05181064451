package main

import "embed"

//go:embed migrations/*.sql
var migrationsFS embed.FS

const insertParseRunSQL = `
	INSERT INTO parse_runs (id, file_name, document_sha256, transaction_count, grand_total, granularity, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
`

const listParseRunsSQL = `
	SELECT id, file_name, document_sha256, transaction_count, grand_total, granularity, created_at
	FROM parse_runs
	ORDER BY created_at DESC
	LIMIT $1
`
