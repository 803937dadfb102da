// Package dev provides the development-mode route directory watcher.
// It reports debounced batches of file changes so callers can rebuild
// the route table.
package dev
