//go:build !latticedebug

package debug

const Enabled = false
