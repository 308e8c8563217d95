// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/monday-consulting/modres/internal/adapters/logger"
	_ "github.com/monday-consulting/modres/internal/adapters/workspace"
	// Register the app node.
	_ "github.com/monday-consulting/modres/internal/app"
)
