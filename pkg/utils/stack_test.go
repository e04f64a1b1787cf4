package utils_test

import (
	"testing"

	"n2t.dev/toolchain/pkg/utils"
)

func TestStackPushPopOrder(t *testing.T) {
	stack := utils.NewStack[int]()
	stack.Push(1)
	stack.Push(2)
	stack.Push(3)

	if stack.Count() != 3 {
		t.Fatalf("expected count 3, got %d", stack.Count())
	}

	top, err := stack.Top()
	if err != nil || top != 3 {
		t.Fatalf("expected top 3, got %d (err=%v)", top, err)
	}

	for _, want := range []int{3, 2, 1} {
		got, err := stack.Pop()
		if err != nil || got != want {
			t.Fatalf("expected pop %d, got %d (err=%v)", want, got, err)
		}
	}

	if _, err := stack.Pop(); err == nil {
		t.Fatalf("expected error popping an empty stack")
	}
}

func TestStackIteratorTopToBottom(t *testing.T) {
	stack := utils.NewStack[string]("a", "b", "c")

	var seen []string
	for v := range stack.Iterator() {
		seen = append(seen, v)
	}

	expected := []string{"c", "b", "a"}
	for i, v := range expected {
		if seen[i] != v {
			t.Fatalf("expected seen[%d] = %s, got %s", i, v, seen[i])
		}
	}
}
