// Package internalcheck holds source-level policy tests for the rsademo
// packages. It has no exported API; the checks load the engine packages
// with golang.org/x/tools/go/packages and walk their syntax trees.
package internalcheck
