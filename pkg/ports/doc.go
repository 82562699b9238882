/*
Package ports defines the driven ports (interfaces) of the adapter.

These interfaces decouple the envelope and output logic from the process
environment and the filesystem, so both can be swapped for in-memory doubles.

# Key Interfaces

  - Environment: Looks up the variable carrying the input envelope.
  - FileOutput: Copies module files into the output root and writes the output params file.
*/
package ports
