/*
Package ohms implements strongly-typed electrical quantities backed by
fixed-point integers.
It provides four value types, Current, Voltage, Resistance, and Power, each
wrapping a single 64-bit integer at a fixed canonical denomination, and
combines them with cross-type operators implementing Ohm's law.

# Features

  - Immutable quantity values, ensuring safe usage across multiple goroutines
  - Distinct types per quantity, preventing unit-confusion bugs at compile time
  - Overflow-checked arithmetic and comparison operations
  - Denomination conversions with deterministic truncation toward zero
  - Ohm's-law operators relating voltage, current, and resistance

# Representation

Each quantity stores an exact integer count of its canonical unit:
microamps for Current, microvolts for Voltage, milliohms for Resistance,
and microwatts for Power.
Current, Resistance, and Power are unsigned and can never be negative;
Voltage is signed.
The Unit type represents a denomination of one of the four quantities and
is implemented as an integer index into an in-memory array containing the
symbol and the fixed power-of-1000 ratio to the canonical unit.

# Operations

Quantities support checked addition, subtraction, scaling by integer and
floating-point factors, and total ordering.
Every lossy operation truncates toward zero: fractional remainders are
discarded without regard to sign.
The physical-law operators compute V = I·R, I = V/R, and R = V/I across
types, rescaling between canonical denominations and discarding the sign
of the voltage, as currents and resistances are modeled as non-negative.

# Errors

All failures are reported as error values rather than panics.
Each failure category has its own sentinel: arithmetic overflow, division
by zero, NaN or infinite float operands, negative operands for
non-negative quantities, unit mismatches, and the physical singularities
of zero resistance and zero current.
Callers discriminate the categories with errors.Is. Must* variants panic
and exist to simplify initialization of global variables.
*/
package ohms
