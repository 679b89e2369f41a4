// SPDX-License-Identifier: MIT

// Package migrations embeds the result-history schema.
package migrations

import "embed"

// FS holds the SQL migration files.
//
//go:embed *.sql
var FS embed.FS
