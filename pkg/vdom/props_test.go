package vdom

import "testing"

func TestHasPropsChangedSizeDiffers(t *testing.T) {
	prev := Props{"a": 1}
	next := Props{"a": 1, "b": 2}
	if !HasPropsChanged(prev, next) {
		t.Error("size change should report changed")
	}
}

func TestHasPropsChangedValueDiffers(t *testing.T) {
	prev := Props{"a": 1, "b": "x"}
	next := Props{"a": 1, "b": "y"}
	if !HasPropsChanged(prev, next) {
		t.Error("value change should report changed")
	}
}

func TestHasPropsChangedEqual(t *testing.T) {
	prev := Props{"a": 1, "b": "x", "c": true}
	next := Props{"a": 1, "b": "x", "c": true}
	if HasPropsChanged(prev, next) {
		t.Error("equal props should not report changed")
	}
}

func TestHasPropsChangedKeyReplaced(t *testing.T) {
	prev := Props{"a": 1}
	next := Props{"b": 1}
	if !HasPropsChanged(prev, next) {
		t.Error("replaced key should report changed")
	}
}

func TestHasPropsChangedBothEmpty(t *testing.T) {
	if HasPropsChanged(nil, nil) {
		t.Error("nil props should not report changed")
	}
	if HasPropsChanged(Props{}, nil) {
		t.Error("empty vs nil should not report changed")
	}
}

func TestPropsEqualMixedTypes(t *testing.T) {
	if PropsEqual("1", 1) {
		t.Error("string and int should not be equal")
	}
	if !PropsEqual(nil, nil) {
		t.Error("nil should equal nil")
	}
	if PropsEqual(nil, 0) {
		t.Error("nil should not equal 0")
	}
}

func TestPropsEqualFuncIdentity(t *testing.T) {
	f := func() {}
	g := func() {}
	if !PropsEqual(f, f) {
		t.Error("same func should be equal")
	}
	if PropsEqual(f, g) {
		t.Error("distinct funcs should not be equal")
	}
}

func TestPropsEqualSlices(t *testing.T) {
	if !PropsEqual([]int{1, 2}, []int{1, 2}) {
		t.Error("deep-equal slices should be equal")
	}
	if PropsEqual([]int{1, 2}, []int{2, 1}) {
		t.Error("different slices should not be equal")
	}
}
