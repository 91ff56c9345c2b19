package lox

import "time"

// clockFunction is the one primitive the global environment is seeded
// with (§3, §4.4.4): zero arity, returns fractional seconds since the
// Unix epoch.
func clockFunction() *NativeFunction {
	return &NativeFunction{
		NativeArity: 0,
		Fn: func(_ *Interpreter, _ []Value) (Value, error) {
			return NewNumber(float64(time.Now().UnixNano()) / float64(time.Second)), nil
		},
	}
}
