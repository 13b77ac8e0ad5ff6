package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedDeliversInOrder(t *testing.T) {
	var f Feed[int]
	var got []string
	f.Subscribe(func(v int) { got = append(got, "a") })
	f.Subscribe(func(v int) { got = append(got, "b") })
	f.Emit(1)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 2, f.Len())
}

func TestFeedRemove(t *testing.T) {
	var f Feed[string]
	calls := 0
	sub := f.Subscribe(func(string) { calls++ })
	f.Emit("x")
	sub.Remove()
	sub.Remove()
	f.Emit("y")
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, f.Len())

	Subscription{}.Remove()
	assert.Equal(t, Subscription{}, f.Subscribe(nil))
}

func TestFeedRemoveDuringEmit(t *testing.T) {
	var f Feed[struct{}]
	var order []int
	var second Subscription
	f.Subscribe(func(struct{}) {
		order = append(order, 1)
		second.Remove()
	})
	second = f.Subscribe(func(struct{}) { order = append(order, 2) })
	f.Subscribe(func(struct{}) { order = append(order, 3) })

	f.Emit(struct{}{})
	assert.Equal(t, []int{1, 2, 3}, order)

	order = nil
	f.Emit(struct{}{})
	assert.Equal(t, []int{1, 3}, order)
}
