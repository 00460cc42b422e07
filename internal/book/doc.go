/*
Book keeps per-symbol limit order book state during a replay run.

# Module
  - Book: live resting orders plus per-side price-level aggregates
  - Registry: symbol to Book mapping, created lazily, owned per run

# Source
  - decoded events from replay via source

# Produce
  - none

# Sharded
  - none
*/
package book
