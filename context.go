package crabculator

// Context is the identifier→f64 mapping the evaluator reads from and the
// driver writes assignments into. It is not safe for concurrent use: the
// driver owns the only handle during an evaluation pass, matching the
// single-threaded model in spec.
type Context struct {
	names map[string]float64
}

// NewContext returns a context pre-loaded with the constant table. User
// assignments may shadow any of these names; Reset restores exactly this
// baseline.
func NewContext() *Context {
	ctx := &Context{names: make(map[string]float64, len(Constants)+8)}
	ctx.Reset()
	return ctx
}

// Lookup returns the value bound to name and whether it was found.
func (ctx *Context) Lookup(name string) (float64, bool) {
	v, ok := ctx.names[name]
	return v, ok
}

// Set binds name to value, shadowing a constant of the same name if any.
func (ctx *Context) Set(name string, value float64) {
	ctx.names[name] = value
}

// Reset discards every user assignment and restores the constant-only
// baseline, per the `clear` pseudo-line in spec.
func (ctx *Context) Reset() {
	for k := range ctx.names {
		delete(ctx.names, k)
	}
	for k, v := range Constants {
		ctx.names[k] = v
	}
}

// Clone returns an independent copy of ctx, for a caller that wants to run
// the driver over a buffer without mutating the context it holds (for
// example, a dry-run preview). The driver itself never clones.
func (ctx *Context) Clone() *Context {
	n := &Context{names: make(map[string]float64, len(ctx.names))}
	for k, v := range ctx.names {
		n.names[k] = v
	}
	return n
}
