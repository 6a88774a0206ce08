package either_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/npillmayer/immutable/either"
	"github.com/npillmayer/immutable/maybe"
)

func TestEitherMatchSwitch(t *testing.T) {
	one := either.Left[int, string](1)
	t.Logf("one = %v", one)
	var count int
	var s string
	switch m := one.Match(); m {
	case m.Left(&count):
	case m.Right(&s):
		count = Atoi(s)
	}
	if count != 1 {
		t.Errorf("expected count to be 1, is %d", count)
	}
	two := either.Right[int]("2")
	switch m := two.Match(); m {
	case m.Left(&count):
	case m.Right(&s):
		count = Atoi(s)
	}
	if count != 2 {
		t.Errorf("expected count to be 2, is %d", count)
	}
}

func TestEitherMatchFunction(t *testing.T) {
	id := func(n int) int { return n }
	count := either.Match(either.Right[int]("2"), Atoi, id)
	if count != 2 {
		t.Errorf("expected Match(Right \"2\") to be 2, is %d", count)
	}
	count = either.Match(either.Left[int, string](7), Atoi, id)
	if count != 7 {
		t.Errorf("expected Match(Left 7) to be 7, is %d", count)
	}
}

func TestEitherMap(t *testing.T) {
	r := either.Map(Atoi, either.Right[error]("21"))
	if v := either.Match(r, double, failed); v != 42 {
		t.Errorf("expected mapped Right to be 42, is %d", v)
	}
	errBoom := errors.New("boom")
	l := either.Map(Atoi, either.Left[error, string](errBoom))
	if l.IsRight() {
		t.Error("expected Map on Left to stay Left")
	}
	if v := either.Match(l, double, failed); v != -1 {
		t.Errorf("expected Left to pass through Map, got %d", v)
	}
}

func TestEitherFlatMap(t *testing.T) {
	parse := func(s string) either.Either[error, int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return either.Left[error, int](err)
		}
		return either.Right[error](n)
	}
	ok := either.FlatMap(parse, either.Right[error]("5"))
	if v := either.Match(ok, double, failed); v != 10 {
		t.Errorf("expected FlatMap(parse, Right \"5\") to give 10, is %d", v)
	}
	bad := either.FlatMap(parse, either.Right[error]("five"))
	if bad.IsRight() {
		t.Error("expected FlatMap(parse, Right \"five\") to be Left")
	}
}

func TestEitherLeftMapAndOtherwise(t *testing.T) {
	l := either.Left[int, string](404)
	msg := either.LeftMap(func(code int) string {
		return "status " + strconv.Itoa(code)
	}, l)
	var s string
	switch m := msg.Match(); m {
	case m.Left(&s):
	case m.Right(&s):
		t.Error("expected LeftMap to keep Left")
	}
	if s != "status 404" {
		t.Errorf("expected left value to be 'status 404', is %q", s)
	}
	recovered := either.Otherwise(func(code int) either.Either[error, string] {
		return either.Right[error]("fallback")
	}, l)
	if !recovered.IsRight() {
		t.Error("expected Otherwise to recover into Right")
	}
	untouched := either.Otherwise(func(code int) either.Either[error, string] {
		return either.Left[error, string](errors.New("unreachable"))
	}, either.Right[int]("fine"))
	if either.Match(untouched, func(s string) string { return s }, func(error) string { return "" }) != "fine" {
		t.Error("expected Otherwise to leave Right untouched")
	}
}

func TestEitherFilter(t *testing.T) {
	positive := func(n int) bool { return n > 0 }
	onFail := func() string { return "not positive" }
	if !either.Right[string](3).Filter(positive, onFail).IsRight() {
		t.Error("expected Right(3) to pass filter")
	}
	f := either.Right[string](-3).Filter(positive, onFail)
	var s string
	var n int
	switch m := f.Match(); m {
	case m.Right(&n):
		t.Error("expected Right(-3) to be demoted to Left")
	case m.Left(&s):
	}
	if s != "not positive" {
		t.Errorf("expected left value to be 'not positive', is %q", s)
	}
	if either.Left[string, int]("x").Filter(positive, onFail).IsRight() {
		t.Error("expected Left to stay Left under filter")
	}
}

func TestEitherMaybeConversion(t *testing.T) {
	if !either.ToMaybe(either.Right[error](1)).IsJust() {
		t.Error("expected Right to convert to Just")
	}
	if either.ToMaybe(either.Left[error, int](errors.New("x"))).IsJust() {
		t.Error("expected Left to convert to Nothing")
	}
	e := either.FromMaybe(maybe.Nothing[int](), func() string { return "absent" })
	if e.IsRight() {
		t.Error("expected Nothing to convert to Left")
	}
}

// ---------------------------------------------------------------------------

func Atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func double(n int) int { return 2 * n }

func failed(error) int { return -1 }

// constant is an Either implemented outside of package either.
type constant int

func (c constant) Match() either.Matcher[string, int] { return constantMatcher{int(c)} }
func (c constant) IsRight() bool                      { return true }

func (c constant) Filter(predicate func(int) bool, onFail func() string) either.Either[string, int] {
	if predicate(int(c)) {
		return c
	}
	return either.Left[string, int](onFail())
}

type constantMatcher struct{ n int }

func (m constantMatcher) Left(*string) either.Matcher[string, int] { return nil }

func (m constantMatcher) Right(r *int) either.Matcher[string, int] {
	*r = m.n
	return m
}

func TestEitherOtherImplementations(t *testing.T) {
	var e either.Either[string, int] = constant(21)
	if n := either.Match(either.Map(double, e), double, func(string) int { return -1 }); n != 84 {
		t.Errorf("expected Map(double, 21) matched with double to be 84, is %d", n)
	}
	if v := either.ToMaybe(either.LeftMap(strconv.Quote, e)).WithDefault(0); v != 21 {
		t.Errorf("expected Right(21) to survive LeftMap, is %d", v)
	}
	var none either.Either[string, int]
	s := either.Match(none, strconv.Itoa, func(l string) string { return "left:" + l })
	if s != "left:" {
		t.Errorf("expected a nil Either to match as Left of the zero value, is %q", s)
	}
	if either.FlatMap(func(n int) either.Either[string, int] { return either.Right[string](n) }, none).IsRight() {
		t.Error("expected FlatMap over a nil Either to be Left")
	}
}
