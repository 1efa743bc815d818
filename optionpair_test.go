package seqkmer

import "testing"

func TestOptionPairSingle(t *testing.T) {
	o := Single(5)
	if o.IsPair() {
		t.Fatal("Single should not report IsPair")
	}
	v, ok := o.TrySingle()
	if !ok || v != 5 {
		t.Fatalf("TrySingle() = (%d, %v), want (5, true)", v, ok)
	}
}

func TestOptionPairPair(t *testing.T) {
	o := Pair("a", "b")
	if !o.IsPair() {
		t.Fatal("Pair should report IsPair")
	}
	if _, ok := o.TrySingle(); ok {
		t.Fatal("TrySingle on a Pair should return false")
	}
	if o.First() != "a" || o.Second() != "b" {
		t.Fatalf("First/Second = %q/%q, want a/b", o.First(), o.Second())
	}
}

func TestFromSlice(t *testing.T) {
	if o := FromSlice([]int{1}); o.IsPair() || o.First() != 1 {
		t.Fatalf("FromSlice([1]) = %+v, want Single(1)", o)
	}
	if o := FromSlice([]int{1, 2}); !o.IsPair() || o.First() != 1 || o.Second() != 2 {
		t.Fatalf("FromSlice([1,2]) = %+v, want Pair(1,2)", o)
	}
}

func TestFromSliceInvalidArityPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("FromSlice with 3 elements should panic")
		}
	}()
	FromSlice([]int{1, 2, 3})
}

func TestApplyPreservesShape(t *testing.T) {
	single := Apply(Single(2), func(i int) int { return i * 10 })
	if single.IsPair() || single.First() != 20 {
		t.Fatalf("Apply(Single) = %+v, want Single(20)", single)
	}

	pair := Apply(Pair(2, 3), func(i int) int { return i * 10 })
	if !pair.IsPair() || pair.First() != 20 || pair.Second() != 30 {
		t.Fatalf("Apply(Pair) = %+v, want Pair(20,30)", pair)
	}
}

func TestMapPropagatesFirstError(t *testing.T) {
	boom := errTest("boom")
	_, err := Map(Pair(1, 2), func(i int) (int, error) {
		if i == 1 {
			return 0, boom
		}
		return i, nil
	})
	if err != boom {
		t.Fatalf("Map error = %v, want %v", err, boom)
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }

func TestReduceStringJoinsWithSeparator(t *testing.T) {
	got := ReduceString(Pair("a", "b"), "|", func(s string) string { return s })
	if got != "a|b" {
		t.Fatalf("ReduceString(Pair) = %q, want %q", got, "a|b")
	}
	got = ReduceString(Single("a"), "|", func(s string) string { return s })
	if got != "a" {
		t.Fatalf("ReduceString(Single) = %q, want %q", got, "a")
	}
}
