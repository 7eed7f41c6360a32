package mython

import (
	"bytes"
	"context"
	"testing"
)

func runScript(t *testing.T, source string) string {
	t.Helper()
	var out bytes.Buffer
	engine := NewEngine(Config{Stdout: &out})
	script, err := engine.Compile([]byte(source))
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if err := script.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return out.String()
}

func TestSimplePrints(t *testing.T) {
	src := "print 57\n" +
		"print 10, 24, -8\n" +
		"print 'hello'\n" +
		"print \"world\"\n" +
		"print True, False\n" +
		"print\n" +
		"print None\n"
	want := "57\n10 24 -8\nhello\nworld\nTrue False\n\nNone\n"
	if got := runScript(t, src); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestAssignmentsAndRebinding(t *testing.T) {
	src := "x = 57\n" +
		"print x\n" +
		"x = 'C++ black belt'\n" +
		"print x\n" +
		"y = False\n" +
		"x = y\n" +
		"print x\n" +
		"x = None\n" +
		"print x, y\n"
	want := "57\nC++ black belt\nFalse\nNone False\n"
	if got := runScript(t, src); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestArithmeticPrecedence(t *testing.T) {
	src := "print 1+2+3+4+5, 1*2*3*4*5, 1-2-3-4-5, 36/4/3, 2*5+10/2\n"
	want := "15 120 -13 3 15\n"
	if got := runScript(t, src); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPointerSemanticsSharedInstances(t *testing.T) {
	src := "class Counter:\n" +
		"  def __init__():\n" +
		"    self.value = 0\n" +
		"  def add():\n" +
		"    self.value = self.value + 1\n" +
		"\n" +
		"class Dummy:\n" +
		"  def do_add(c):\n" +
		"    c.add()\n" +
		"\n" +
		"x = Counter()\n" +
		"y = x\n" +
		"x.add()\n" +
		"y.add()\n" +
		"print x.value\n" +
		"d = Dummy()\n" +
		"d.do_add(x)\n" +
		"print y.value\n"
	want := "2\n3\n"
	if got := runScript(t, src); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUserDefinedEqualityAndOrdering(t *testing.T) {
	src := "class Box:\n" +
		"  def __init__(n):\n" +
		"    self.n = n\n" +
		"  def __eq__(rhs):\n" +
		"    return self.n == rhs.n\n" +
		"  def __lt__(rhs):\n" +
		"    return self.n < rhs.n\n" +
		"\n" +
		"a = Box(1)\n" +
		"b = Box(2)\n" +
		"c = Box(1)\n" +
		"print a == c, a == b, a != b\n" +
		"print a < b, a > b, a <= c, a >= c\n"
	want := "True False True\nTrue False True True\n"
	if got := runScript(t, src); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReturnExitsOnlyEnclosingMethod(t *testing.T) {
	src := "class C:\n" +
		"  def f():\n" +
		"    if True:\n" +
		"      return 1\n" +
		"    print 999\n" +
		"    return 2\n" +
		"\n" +
		"c = C()\n" +
		"print c.f()\n"
	want := "1\n"
	if got := runScript(t, src); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDivisionByZeroIsARuntimeError(t *testing.T) {
	var out bytes.Buffer
	engine := NewEngine(Config{Stdout: &out})
	script, err := engine.Compile([]byte("print 1/0\n"))
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	err = script.Run(context.Background())
	if err == nil {
		t.Fatal("expected a division by zero error")
	}
	langErr, ok := err.(*LanguageError)
	if !ok {
		t.Fatalf("expected *LanguageError, got %T", err)
	}
	if langErr.Kind != KindRuntimeErr {
		t.Fatalf("expected a runtime error, got %s", langErr.Kind)
	}
}

func TestNewInstanceSkipsInitWhenArityMismatches(t *testing.T) {
	src := "class NoArgInit:\n" +
		"  def __init__():\n" +
		"    self.ready = True\n" +
		"\n" +
		"n = NoArgInit(1)\n" +
		"print n.ready\n"
	var out bytes.Buffer
	engine := NewEngine(Config{Stdout: &out})
	script, err := engine.Compile([]byte(src))
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if err := script.Run(context.Background()); err == nil {
		t.Fatal("expected a runtime error reading an unset field")
	}
}
