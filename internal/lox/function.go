package lox

// Function is the runtime callable variant of Value (§3): either a
// user-defined closure or a host-supplied primitive. Grounded on the
// teacher's callable.go (`Callable` interface, `LoxFunction`), split
// into two concrete types instead of one struct with an `isInit`/class
// escape hatch since this interpreter never grows classes (§1 Non-goals).
type Function interface {
	Value
	Arity() int
	Call(interp *Interpreter, args []Value) (Value, error)
}

// UserFunction is a function declared in source, bundled with the
// environment active when it was declared (§3 "closure environment").
type UserFunction struct {
	Decl    *FunctionStmt
	Closure *Environment
}

func (*UserFunction) isValue() {}
func (f *UserFunction) String() string {
	return "<fn " + f.Decl.Name.Lexeme + ">"
}

func (f *UserFunction) Arity() int {
	return len(f.Decl.Params)
}

// Call implements the call protocol of §4.4.4: a fresh environment
// chained to the closure (not the caller's environment — this is what
// makes closures lexical), parameters bound to arguments, the
// interpreter's current environment swapped in for the body and
// restored on every exit path.
func (f *UserFunction) Call(interp *Interpreter, args []Value) (Value, error) {
	callEnv := NewEnvironment(f.Closure)
	for i, param := range f.Decl.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	previous := interp.env
	interp.env = callEnv
	defer func() { interp.env = previous }()

	for _, stmt := range f.Decl.Body {
		if err := interp.execute(stmt); err != nil {
			if ret, ok := err.(*returnSignal); ok {
				return ret.Value, nil
			}
			return nil, err
		}
	}
	return NewNil(), nil
}

// NativeFunction is a host-supplied procedure exposed as a callable
// value, e.g. `clock` (§4.4.4). It must not touch the environment chain.
type NativeFunction struct {
	NativeArity int
	Fn          func(interp *Interpreter, args []Value) (Value, error)
}

func (*NativeFunction) isValue()        {}
func (*NativeFunction) String() string  { return "<native fn>" }
func (f *NativeFunction) Arity() int    { return f.NativeArity }
func (f *NativeFunction) Call(interp *Interpreter, args []Value) (Value, error) {
	return f.Fn(interp, args)
}
