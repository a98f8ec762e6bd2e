//go:build debug

package build

const suffix = " (dev)"
