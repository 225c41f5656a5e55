package crabculator

import "testing"

func mustEval(t *testing.T, src string) float64 {
	t.Helper()
	line, err := ParseLine(src)
	if err != nil {
		t.Fatalf("ParseLine(%q): unexpected error %v", src, err)
	}
	v, err := Eval(line.Expr, NewContext())
	if err != nil {
		t.Fatalf("Eval(%q): unexpected error %v", src, err)
	}
	return v
}

func TestParseLineClassification(t *testing.T) {
	cases := []struct {
		src  string
		kind LineKind
	}{
		{"", LineEmpty},
		{"   ", LineEmpty},
		{"1 + 1", LineExpression},
		{"x = 1", LineAssignment},
	}
	for _, c := range cases {
		line, err := ParseLine(c.src)
		if err != nil {
			t.Errorf("ParseLine(%q): unexpected error %v", c.src, err)
			continue
		}
		if line.Kind != c.kind {
			t.Errorf("ParseLine(%q): got kind %v, want %v", c.src, line.Kind, c.kind)
		}
	}
}

func TestParseAssignmentName(t *testing.T) {
	line, err := ParseLine("area = 5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.Kind != LineAssignment || line.Name != "area" {
		t.Fatalf("got %+v", line)
	}
}

func TestDoubleEqualsIsSyntaxError(t *testing.T) {
	_, err := ParseLine("x = y = 5")
	if err == nil {
		t.Fatal("expected a syntax error for a second '='")
	}
	var diag *UnexpectedTokenError
	if !asError(err, &diag) {
		t.Fatalf("got %T, want *UnexpectedTokenError", err)
	}
}

func TestArithmeticPrecedence(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"2^3^2", 512},
		{"3!^2", 36},
		{"2*4!", 48},
		{"2 - 3 - 1", -2},
		{"10 % 3", 1},
		{"2^-3", 0.125},
		{"-5 + 3", -2},
		{"- - 5", 5},
	}
	for _, c := range cases {
		if got := mustEval(t, c.src); got != c.want {
			t.Errorf("eval(%q) = %v, want %v", c.src, got, c.want)
		}
	}
}

func TestImplicitMultiplication(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"2pi", 2 * 3.141592653589793},
		{"3(4+5)", 27},
		{"(2+3)(4+5)", 45},
		{"(2+3)pi", 5 * 3.141592653589793},
		{"2sqrt(9)", 6},
	}
	for _, c := range cases {
		if got := mustEval(t, c.src); got != c.want {
			t.Errorf("eval(%q) = %v, want %v", c.src, got, c.want)
		}
	}
}

func TestFunctionCallNotImplicitMultiplication(t *testing.T) {
	if got := mustEval(t, "sqrt(9)"); got != 3 {
		t.Errorf("sqrt(9) = %v, want 3", got)
	}
}

func TestMissingOperandAfterDoubleSign(t *testing.T) {
	toks, _ := Tokenize("5 + + 3")
	_, err := ParseLine("5 + + 3")
	var diag *MissingOperandError
	if !asError(err, &diag) {
		t.Fatalf("got %T (%v), want *MissingOperandError", err, err)
	}
	if diag.Span() != toks[2].Span {
		t.Errorf("got span %v, want %v (second '+')", diag.Span(), toks[2].Span)
	}
}

func TestSignAllowedAfterExplicitMulOperator(t *testing.T) {
	if got := mustEval(t, "2 * -3"); got != -6 {
		t.Errorf("2 * -3 = %v, want -6", got)
	}
}

func TestUnmatchedParen(t *testing.T) {
	cases := []string{"(1 + 2", "sqrt(9", "1 + 2)"}
	for _, src := range cases {
		_, err := ParseLine(src)
		if err == nil {
			t.Errorf("ParseLine(%q): expected an error", src)
		}
	}
}

func TestBaseLiterals(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"0xff + 1", 256},
		{"0b1010 * 2", 20},
		{"0o10 + 0x10", 24},
	}
	for _, c := range cases {
		if got := mustEval(t, c.src); got != c.want {
			t.Errorf("eval(%q) = %v, want %v", c.src, got, c.want)
		}
	}
}
