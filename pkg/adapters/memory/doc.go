// Package memory provides an in-memory ports.FileOutput that records the
// copies and writes it receives. It backs tests of modules built on the adapter.
package memory
