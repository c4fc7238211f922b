package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pinged struct{ n int }

func TestBusDeliversSynchronously(t *testing.T) {
	b := NewBus()

	var got []int
	b.Subscribe("events.pinged", func(e interface{}) { got = append(got, e.(pinged).n) })
	b.Subscribe("events.pinged", func(e interface{}) { got = append(got, -e.(pinged).n) })

	b.Publish(pinged{n: 1})
	b.Publish(struct{}{})

	assert.Equal(t, []int{1, -1}, got)
}

func TestEventType(t *testing.T) {
	assert.Equal(t, "events.pinged", EventType(pinged{}))
	assert.Equal(t, "*events.pinged", EventType(&pinged{}))
}

func TestNullBus(t *testing.T) {
	var b EventBus = &NullBus{}
	b.Subscribe("x", func(interface{}) { t.Fatal("called") })
	b.Publish(pinged{})
}
