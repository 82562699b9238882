// Package env provides Environment implementations backed by the process
// environment or by a plain map.
package env

import "os"

// OS reads variables from the running process.
type OS struct{}

// NewOS returns the process environment reader.
func NewOS() OS { return OS{} }

// Lookup returns the value of the environment variable named by name.
func (OS) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Map serves variables from memory. Useful for tests and local runs.
type Map map[string]string

// Lookup returns the value stored under name.
func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}
