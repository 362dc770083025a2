package ohms

import (
	"errors"
	"fmt"
)

// Each failure category has its own sentinel error, so callers can
// discriminate, for example, a physical-law singularity from an arithmetic
// overflow using [errors.Is].
var (
	// ErrOverflow indicates that a result does not fit the canonical
	// storage range of its quantity type.
	ErrOverflow = errors.New("quantity overflow")

	// ErrDivisionByZero indicates a zero integer or floating-point divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidFloatOperand indicates a NaN or infinite floating-point
	// operand.
	ErrInvalidFloatOperand = errors.New("invalid float operand")

	// ErrNegativeOperand indicates a negative operand in an operation on
	// a quantity type that cannot be negative.
	ErrNegativeOperand = errors.New("negative operand")

	// ErrUnitMismatch indicates a unit that belongs to a different
	// quantity type.
	ErrUnitMismatch = errors.New("unit mismatch")

	// ErrZeroResistance indicates a division of voltage by zero
	// resistance, which would imply an infinite current.
	ErrZeroResistance = errors.New("resistance cannot be zero")

	// ErrZeroCurrent indicates a division of voltage by zero current,
	// which would imply an infinite resistance.
	ErrZeroCurrent = errors.New("current cannot be zero")

	errInvalidUnit = errors.New("invalid unit")
)

// Infinity and NaN are reported distinctly to aid debugging, but both match
// [ErrInvalidFloatOperand].
var (
	errInfinity = fmt.Errorf("%w: infinity", ErrInvalidFloatOperand)
	errNaN      = fmt.Errorf("%w: NaN", ErrInvalidFloatOperand)
)
