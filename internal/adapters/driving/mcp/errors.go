// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Exporta. It lets AI assistants like Claude look up and search the
// local catalog of converted records.
package mcp

import "errors"

// ErrMissingCatalog is returned when the catalog service is not provided.
var ErrMissingCatalog = errors.New("mcp: catalog service is required")
