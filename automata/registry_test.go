package automata

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRegistryHandles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexa.automata")
	defer teardown()
	//
	r := NewRegistry[string]()
	for i, label := range []string{"A", "B", "C"} {
		h, err := r.Add(label)
		if err != nil {
			t.Fatal(err)
		}
		if h != Handle(i) {
			t.Errorf("expected handle %d for %s, have %d", i, label, h)
		}
	}
	h, err := r.Add("B")
	if !errors.Is(err, ErrDuplicateState) {
		t.Errorf("expected duplicate registration to fail, have %v", err)
	}
	if h != 1 || r.Len() != 3 {
		t.Errorf("expected existing handle to stay valid")
	}
	if h, _ = r.Resolve("C"); r.Label(h) != "C" {
		t.Errorf("expected label/handle mapping to be bijective")
	}
	if _, err = r.Resolve("X"); !errors.Is(err, ErrUnknownState) {
		t.Errorf("expected ErrUnknownState, have %v", err)
	}
}
