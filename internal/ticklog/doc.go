/*
Ticklog persists encoded market events as append-only segment files.

# Module
  - writer: buffered async appends with segment rotation
  - reader: sequential record decode with checksum verification

# Source
  - generated events from tickgen
  - converted events from tickconv

# Produce
  - replay input via source

# Sharded
  - none
*/
package ticklog
