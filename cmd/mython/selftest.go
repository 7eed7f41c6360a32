package main

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/bogaev/cpp-mython/mython"
)

type selfTestCase struct {
	name string
	src  string
	want string
}

var selfTestCases = []selfTestCase{
	{
		name: "simple prints",
		src: "print 57\n" +
			"print 10, 24, -8\n" +
			"print 'hello'\n" +
			"print \"world\"\n" +
			"print True, False\n" +
			"print\n" +
			"print None\n",
		want: "57\n10 24 -8\nhello\nworld\nTrue False\n\nNone\n",
	},
	{
		name: "assignments and rebinding",
		src: "x = 57\n" +
			"print x\n" +
			"x = 'C++ black belt'\n" +
			"print x\n" +
			"y = False\n" +
			"x = y\n" +
			"print x\n" +
			"x = None\n" +
			"print x, y\n",
		want: "57\nC++ black belt\nFalse\nNone False\n",
	},
	{
		name: "arithmetic precedence",
		src:  "print 1+2+3+4+5, 1*2*3*4*5, 1-2-3-4-5, 36/4/3, 2*5+10/2\n",
		want: "15 120 -13 3 15\n",
	},
	{
		name: "pointer semantics",
		src: "class Counter:\n" +
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
			"print y.value\n",
		want: "2\n3\n",
	},
	{
		name: "user-defined equality and ordering",
		src: "class Box:\n" +
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
			"print a < b, a > b, a <= c, a >= c\n",
		want: "True False True\nTrue False True True\n",
	},
	{
		name: "return exits only the enclosing method",
		src: "class C:\n" +
			"  def f():\n" +
			"    if True:\n" +
			"      return 1\n" +
			"    print 999\n" +
			"    return 2\n" +
			"\n" +
			"c = C()\n" +
			"print c.f()\n",
		want: "1\n",
	},
}

// runSelfTest exercises every scenario the language is expected to handle
// correctly and reports the first mismatch it finds for each.
func runSelfTest(stdout, stderr io.Writer) error {
	failures := 0
	for _, tc := range selfTestCases {
		var out bytes.Buffer
		engine := mython.NewEngine(mython.Config{Stdout: &out})
		script, err := engine.Compile([]byte(tc.src))
		if err != nil {
			failures++
			fmt.Fprintf(stderr, "FAIL %s: compile error: %v\n", tc.name, err)
			continue
		}
		if err := script.Run(context.Background()); err != nil {
			failures++
			fmt.Fprintf(stderr, "FAIL %s: run error: %v\n", tc.name, err)
			continue
		}
		if got := out.String(); got != tc.want {
			failures++
			fmt.Fprintf(stderr, "FAIL %s: got %q, want %q\n", tc.name, got, tc.want)
			continue
		}
		fmt.Fprintf(stdout, "ok   %s\n", tc.name)
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d self-test scenarios failed", failures, len(selfTestCases))
	}
	return nil
}
