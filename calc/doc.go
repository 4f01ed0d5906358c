// Package calc provides stateless arithmetic operations.
//
// All operations are pure functions over their operands. Operations with a
// precondition (Divide, Factorial) return ErrInvalidArgument when it is
// violated:
//
//	quot, err := calc.Divide(a, b)
//	if errors.Is(err, calc.ErrInvalidArgument) {
//	    // b was zero
//	}
//
// Power follows math.Pow semantics, including fractional and negative
// exponents; it never returns an error.
package calc
