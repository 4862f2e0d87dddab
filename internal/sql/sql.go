// Package sql embeds the schema migrations and queries used by the store.
package sql

import "embed"

// Migrations holds the schema DDL files, applied in filename order.
//
//go:embed migrations
var Migrations embed.FS

//go:embed queries/insert_run.sql
var InsertRun string

//go:embed queries/select_report.sql
var SelectReport string
