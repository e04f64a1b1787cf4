package utils_test

import (
	"encoding/json"
	"testing"

	"n2t.dev/toolchain/pkg/utils"
)

func TestOrderedMapPreservesInsertionOrder(t *testing.T) {
	om := utils.NewOrderedMap[string, int]()
	om.Set("z", 1)
	om.Set("a", 2)
	om.Set("m", 3)

	var keys []string
	for k := range om.Entries() {
		keys = append(keys, k)
	}

	expected := []string{"z", "a", "m"}
	if len(keys) != len(expected) {
		t.Fatalf("expected %d keys, got %d", len(expected), len(keys))
	}
	for i, k := range expected {
		if keys[i] != k {
			t.Errorf("expected key[%d] = %s, got %s", i, k, keys[i])
		}
	}
}

func TestOrderedMapOverwriteKeepsPosition(t *testing.T) {
	om := utils.NewOrderedMap[string, int]()
	om.Set("a", 1)
	om.Set("b", 2)
	om.Set("a", 99)

	var keys []string
	for k := range om.Entries() {
		keys = append(keys, k)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("expected [a b], got %v", keys)
	}

	value, found := om.Get("a")
	if !found || value != 99 {
		t.Fatalf("expected overwritten value 99, got %d (found=%v)", value, found)
	}
}

func TestOrderedMapFromList(t *testing.T) {
	om := utils.NewOrderedMapFromList([]utils.MapEntry[string, int]{
		{Key: "x", Value: 10},
		{Key: "y", Value: 20},
	})

	if om.Size() != 2 {
		t.Fatalf("expected size 2, got %d", om.Size())
	}
	if v, found := om.Get("y"); !found || v != 20 {
		t.Fatalf("expected y=20, got %d (found=%v)", v, found)
	}
}

func TestOrderedMapZeroValueUsable(t *testing.T) {
	var om utils.OrderedMap[string, int]
	om.Set("first", 1)

	if v, found := om.Get("first"); !found || v != 1 {
		t.Fatalf("expected first=1, got %d (found=%v)", v, found)
	}
}

func TestOrderedMapMissingKey(t *testing.T) {
	om := utils.NewOrderedMap[string, int]()
	if _, found := om.Get("missing"); found {
		t.Fatalf("expected 'missing' to not be found")
	}
}

func TestOrderedMapMarshalJSON(t *testing.T) {
	om := utils.NewOrderedMap[string, int]()
	om.Set("z", 1)
	om.Set("a", 2)

	raw, err := json.Marshal(om)
	if err != nil {
		t.Fatalf("expected no error marshaling, got: %v", err)
	}

	expected := `{"z":1,"a":2}`
	if string(raw) != expected {
		t.Fatalf("expected %s, got %s", expected, string(raw))
	}
}

func TestOrderedMapUnmarshalJSON(t *testing.T) {
	var om utils.OrderedMap[string, int]
	if err := json.Unmarshal([]byte(`{"z":1,"a":2,"m":3}`), &om); err != nil {
		t.Fatalf("expected no error unmarshaling, got: %v", err)
	}

	if om.Size() != 3 {
		t.Fatalf("expected size 3, got %d", om.Size())
	}

	var keys []string
	for k := range om.Entries() {
		keys = append(keys, k)
	}
	expected := []string{"z", "a", "m"}
	for i, k := range expected {
		if keys[i] != k {
			t.Errorf("expected key[%d] = %s, got %s", i, k, keys[i])
		}
	}

	if v, found := om.Get("a"); !found || v != 2 {
		t.Fatalf("expected a=2, got %d (found=%v)", v, found)
	}
}

func TestOrderedMapJSONRoundTrip(t *testing.T) {
	type nested struct {
		Name string
	}

	om := utils.NewOrderedMap[string, nested]()
	om.Set("first", nested{Name: "one"})
	om.Set("second", nested{Name: "two"})

	raw, err := json.Marshal(om)
	if err != nil {
		t.Fatalf("expected no error marshaling, got: %v", err)
	}

	var decoded utils.OrderedMap[string, nested]
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("expected no error unmarshaling, got: %v", err)
	}

	if decoded.Size() != om.Size() {
		t.Fatalf("expected size %d, got %d", om.Size(), decoded.Size())
	}
	if v, found := decoded.Get("second"); !found || v.Name != "two" {
		t.Fatalf("expected second.Name=two, got %+v (found=%v)", v, found)
	}
}
