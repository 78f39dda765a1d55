package kgsl

import "os"

// Scanner locates KGSL device nodes
type Scanner struct {
	paths []string
}

// NewScanner creates a scanner over the default candidate node paths
func NewScanner() *Scanner {
	return &Scanner{paths: DefaultDevicePaths}
}

// Scan returns the candidate paths that currently exist, preserving
// candidate order. An absent device is a normal outcome, not an error,
// so no nodes means an empty result.
func (s *Scanner) Scan() []string {
	var found []string
	for _, path := range s.paths {
		if _, err := os.Stat(path); err == nil {
			found = append(found, path)
		}
	}
	return found
}

// Scan uses the default scanner to find KGSL device nodes
func Scan() []string {
	return NewScanner().Scan()
}
