package adk

// Version is the release of the adapter.
const Version = "0.3.0"
