/*
Package domain holds the vocabulary shared by every part of the adapter.

It is kept free of I/O so that the envelope, the output accumulator and the
relocator can depend on it without pulling in adapters.

# Error Kinds

  - EnvironmentError: the input envelope could not be read or decoded. Returned only at construction.
  - InputError: a single input lookup failed (missing key, wrong kind, non-uniform array).
  - OutputError: setting an output, relocating a file or finalizing failed.

Each kind wraps a sentinel (ErrMissingKey, ErrUnencodable, ...) and prefixes its
message with LogPrefix.
*/
package domain
