package mython

import "testing"

func TestIsTrue(t *testing.T) {
	cases := []struct {
		val  Value
		want bool
	}{
		{NewNumber(0), false},
		{NewNumber(1), true},
		{NewNumber(-1), true},
		{NewString(""), false},
		{NewString("a"), true},
		{NewBool(false), false},
		{NewBool(true), true},
		{NewNone(), false},
	}
	for _, c := range cases {
		if got := c.val.IsTrue(); got != c.want {
			t.Errorf("IsTrue(%#v) = %v, want %v", c.val, got, c.want)
		}
	}
}

func TestEqualBothNoneIsTrue(t *testing.T) {
	pos := Position{Line: 1}
	got, err := Equal(NewNone(), NewNone(), nil, pos)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatal("expected None == None to be true")
	}
}

func TestEqualOneNoneIsAnError(t *testing.T) {
	pos := Position{Line: 1}
	if _, err := Equal(NewNone(), NewNumber(0), nil, pos); err == nil {
		t.Fatal("expected an error comparing None to a Number")
	}
}

func TestLessNoneIsAnErrorUnlikeEqual(t *testing.T) {
	pos := Position{Line: 1}
	if _, err := Less(NewNone(), NewNone(), nil, pos); err == nil {
		t.Fatal("expected None < None to be an error, unlike None == None")
	}
}

func TestLessOnPrimitives(t *testing.T) {
	pos := Position{Line: 1}
	got, err := Less(NewNumber(1), NewNumber(2), nil, pos)
	if err != nil || !got {
		t.Fatalf("expected 1 < 2, got %v, err %v", got, err)
	}
	got, err = Less(NewString("a"), NewString("b"), nil, pos)
	if err != nil || !got {
		t.Fatalf("expected 'a' < 'b', got %v, err %v", got, err)
	}
}

func TestClassFlattenedMethodTableInheritsAndOverrides(t *testing.T) {
	base := NewClassDef("Base", nil, []*Method{
		{Name: "greet", Params: nil, Body: &MethodBody{Body: &Compound{}}},
		{Name: "shared", Params: nil, Body: &MethodBody{Body: &Compound{}}},
	})
	derived := NewClassDef("Derived", base, []*Method{
		{Name: "greet", Params: []string{"x"}, Body: &MethodBody{Body: &Compound{}}},
	})

	if _, ok := derived.GetMethod("shared"); !ok {
		t.Fatal("expected Derived to inherit 'shared' from Base")
	}
	m, ok := derived.GetMethod("greet")
	if !ok {
		t.Fatal("expected Derived to have 'greet'")
	}
	if len(m.Params) != 1 {
		t.Fatal("expected Derived's own 'greet' to override Base's, not inherit its arity")
	}
}

func TestInstanceHasMethodChecksArity(t *testing.T) {
	class := NewClassDef("C", nil, []*Method{
		{Name: "f", Params: []string{"a", "b"}, Body: &MethodBody{Body: &Compound{}}},
	})
	inst := NewInstanceObj(class)
	if !inst.HasMethod("f", 2) {
		t.Fatal("expected HasMethod(f, 2) to be true")
	}
	if inst.HasMethod("f", 1) {
		t.Fatal("expected HasMethod(f, 1) to be false: arity mismatch")
	}
	if inst.HasMethod("missing", 0) {
		t.Fatal("expected HasMethod(missing, 0) to be false")
	}
}
