// Package mcp provides an MCP (Model Context Protocol) server adapter
// for MindVault. It lets AI assistants search the vault and add
// documents to it.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
