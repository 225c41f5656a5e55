package crabculator

// OutcomeKind classifies a LineOutcome.
type OutcomeKind int8

const (
	OutcomeEmpty OutcomeKind = iota
	OutcomeValue
	OutcomeAssigned
	OutcomeError
)

// LineOutcome is the per-line result of one evaluation pass.
type LineOutcome struct {
	Kind  OutcomeKind
	Value float64

	// Name is set only when Kind == OutcomeAssigned.
	Name string

	// Err is set only when Kind == OutcomeError.
	Err Error
}

// Driver is the top-level routine that iterates a buffer's lines, invoking
// the tokenizer/parser/evaluator and threading a shared Context across
// them. A Driver holds no state of its own beyond what's needed to run a
// pass; the Context it's given is the only thing that persists between
// calls to Run.
type Driver struct{}

// NewDriver returns a ready-to-use Driver. It exists (rather than calling
// Run as a bare function) to leave room for future per-pass options
// without changing Run's signature.
func NewDriver() *Driver { return &Driver{} }

// Run evaluates every line of buf against ctx in order, mutating ctx as
// assignments succeed, and returns one LineOutcome per input line.
//
// A line that reads exactly "clear" (after trimming surrounding
// whitespace) is treated as a pseudo-line: it resets ctx to the
// constant-only baseline and yields OutcomeEmpty, rather than being
// tokenized as an identifier-only expression that would otherwise fail
// with UndefinedVariable. This is the one extension to spec.md's grammar,
// granted to the CLI's `clear` command with no change to expression syntax.
func (d *Driver) Run(buf []string, ctx *Context) []LineOutcome {
	outcomes := make([]LineOutcome, len(buf))
	for i, line := range buf {
		outcomes[i] = d.runLine(line, ctx)
	}
	return outcomes
}

func (d *Driver) runLine(line string, ctx *Context) LineOutcome {
	if isClearLine(line) {
		ctx.Reset()
		return LineOutcome{Kind: OutcomeEmpty}
	}

	parsed, err := ParseLine(line)
	if err != nil {
		return errOutcome(err)
	}

	switch parsed.Kind {
	case LineEmpty:
		return LineOutcome{Kind: OutcomeEmpty}

	case LineAssignment:
		v, err := Eval(parsed.Expr, ctx)
		if err != nil {
			return errOutcome(err)
		}
		ctx.Set(parsed.Name, v)
		return LineOutcome{Kind: OutcomeAssigned, Name: parsed.Name, Value: v}

	case LineExpression:
		v, err := Eval(parsed.Expr, ctx)
		if err != nil {
			return errOutcome(err)
		}
		return LineOutcome{Kind: OutcomeValue, Value: v}

	default:
		panic("crabculator: unhandled LineKind")
	}
}

func errOutcome(err error) LineOutcome {
	diag, ok := err.(Error)
	if !ok {
		// Every error constructed by this package implements Error; a plain
		// error reaching here would be a bug in the tokenizer/parser/evaluator.
		panic("crabculator: error without a span: " + err.Error())
	}
	return LineOutcome{Kind: OutcomeError, Err: diag}
}

// FormatOutcome renders a LineOutcome's value or assignment for display,
// the way a REPL or TUI status line would. It panics on OutcomeError and
// OutcomeEmpty, which callers are expected to handle separately: the
// first renders via Err.Error(), the second renders as nothing at all.
func FormatOutcome(o LineOutcome) string {
	switch o.Kind {
	case OutcomeValue:
		return formatFloat(o.Value)
	case OutcomeAssigned:
		return o.Name + " = " + formatFloat(o.Value)
	default:
		panic("crabculator: FormatOutcome called on a non-value outcome")
	}
}

func isClearLine(line string) bool {
	start, end := 0, len(line)
	for start < end && (line[start] == ' ' || line[start] == '\t') {
		start++
	}
	for end > start && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}
	return line[start:end] == "clear"
}
