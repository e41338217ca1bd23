package events

import "testing"

func TestBroadcasterFanOut(t *testing.T) {
	b := NewBroadcaster()
	ch1 := b.Subscribe()
	ch2 := b.Subscribe()

	b.Publish("hello")

	for i, ch := range []chan string{ch1, ch2} {
		select {
		case msg := <-ch:
			if msg != "hello" {
				t.Errorf("subscriber %d got %q, want %q", i, msg, "hello")
			}
		default:
			t.Errorf("subscriber %d received nothing", i)
		}
	}
}

func TestBroadcasterUnsubscribe(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()
	b.Unsubscribe(ch)

	if _, ok := <-ch; ok {
		t.Error("channel should be closed after unsubscribe")
	}

	// Unsubscribing twice must not panic.
	b.Unsubscribe(ch)

	b.Publish("after")
}

func TestBroadcasterDropsWhenSubscriberFull(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Subscribe()

	// Fill the buffer and keep publishing; slow subscribers lose messages
	// instead of blocking the publisher.
	for i := 0; i < subscriberBuffer+10; i++ {
		b.Publish("msg")
	}

	if got := len(ch); got != subscriberBuffer {
		t.Errorf("buffered = %d, want %d", got, subscriberBuffer)
	}
}
