package crabculator

import "testing"

func TestDriverEndToEndScenarios(t *testing.T) {
	t.Run("arithmetic and implicit multiplication", func(t *testing.T) {
		outcomes := runBuffer(t, "a = 5", "c = 5*3", "(a+c)^2", "9*sqrt(9)")
		wantValues(t, outcomes, 5, 15, 400, 27)
	})

	t.Run("sqrt and implicit pi multiplication", func(t *testing.T) {
		outcomes := runBuffer(t, "x = 9", "sqrt(x)", "2pi")
		wantValues(t, outcomes, 9, 3, 6.283185307179586)
	})

	t.Run("right-associative pow and factorial precedence", func(t *testing.T) {
		outcomes := runBuffer(t, "2^3^2", "3!^2", "2*4!")
		wantValues(t, outcomes, 512, 36, 48)
	})

	t.Run("base literals", func(t *testing.T) {
		outcomes := runBuffer(t, "0xff + 1", "0b1010 * 2", "0o10 + 0x10")
		wantValues(t, outcomes, 256, 20, 24)
	})

	t.Run("errors do not halt the pass", func(t *testing.T) {
		outcomes := runBuffer(t, "5 + + 3", "5/0", "foo")
		for i, o := range outcomes {
			if o.Kind != OutcomeError {
				t.Errorf("line %d: got kind %v, want OutcomeError", i, o.Kind)
			}
		}
		var missing *MissingOperandError
		if !asError(outcomes[0].Err, &missing) {
			t.Errorf("line 0: got %T, want *MissingOperandError", outcomes[0].Err)
		}
		var divz *DivisionByZeroError
		if !asError(outcomes[1].Err, &divz) {
			t.Errorf("line 1: got %T, want *DivisionByZeroError", outcomes[1].Err)
		}
		var undef *UndefinedVariableError
		if !asError(outcomes[2].Err, &undef) || undef.Name != "foo" {
			t.Errorf("line 2: got %T, want *UndefinedVariableError(foo)", outcomes[2].Err)
		}
	})

	t.Run("failed assignment leaves the name unbound", func(t *testing.T) {
		outcomes := runBuffer(t, "a = 1/0", "a + 1")
		if outcomes[0].Kind != OutcomeError || outcomes[1].Kind != OutcomeError {
			t.Fatalf("got %+v", outcomes)
		}
	})
}

func TestDriverDeterminism(t *testing.T) {
	buf := []string{"a = 5", "b = a * 2", "b + sqrt(a)"}
	first := NewDriver().Run(buf, NewContext())
	second := NewDriver().Run(buf, NewContext())
	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Kind != second[i].Kind || first[i].Value != second[i].Value {
			t.Errorf("line %d diverged: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestDriverEmptyLine(t *testing.T) {
	outcomes := runBuffer(t, "", "   ")
	for i, o := range outcomes {
		if o.Kind != OutcomeEmpty {
			t.Errorf("line %d: got %+v, want OutcomeEmpty", i, o)
		}
	}
}

func TestDriverClearRestoresConstantBaseline(t *testing.T) {
	ctx := NewContext()
	d := NewDriver()
	d.Run([]string{"pi = 0", "x = 1"}, ctx)
	if v, _ := ctx.Lookup("pi"); v != 0 {
		t.Fatalf("pi not shadowed: got %v", v)
	}
	d.Run([]string{"clear"}, ctx)
	if v, ok := ctx.Lookup("pi"); !ok || v != Constants["pi"] {
		t.Errorf("pi not restored after clear: got %v, %v", v, ok)
	}
	if _, ok := ctx.Lookup("x"); ok {
		t.Errorf("x still bound after clear")
	}
}

func runBuffer(t *testing.T, lines ...string) []LineOutcome {
	t.Helper()
	return NewDriver().Run(lines, NewContext())
}

func wantValues(t *testing.T, outcomes []LineOutcome, want ...float64) {
	t.Helper()
	if len(outcomes) != len(want) {
		t.Fatalf("got %d outcomes, want %d", len(outcomes), len(want))
	}
	for i, w := range want {
		o := outcomes[i]
		if o.Kind == OutcomeError {
			t.Errorf("line %d: got error %v, want value %v", i, o.Err, w)
			continue
		}
		if o.Value != w {
			t.Errorf("line %d: got %v, want %v", i, o.Value, w)
		}
	}
}
