package eventbus

import (
	"testing"
	"time"
)

func TestPublishFanOut(t *testing.T) {
	bus := New[DayPlanned]()
	defer bus.Close()

	sub1, cancel1 := bus.Subscribe()
	sub2, cancel2 := bus.Subscribe()
	defer cancel1()
	defer cancel2()

	ev := DayPlanned{Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Blocks: 3, StudyMinutes: 180}
	bus.Publish(ev)

	for _, sub := range []<-chan DayPlanned{sub1, sub2} {
		select {
		case got := <-sub:
			if got.Blocks != 3 || got.StudyMinutes != 180 {
				t.Fatalf("unexpected event %+v", got)
			}
		default:
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	bus := New[ExportDone]()
	defer bus.Close()

	sub, cancel := bus.Subscribe()
	cancel()

	if _, ok := <-sub; ok {
		t.Fatal("channel should be closed after cancel")
	}
	// Publishing after cancel must not panic.
	bus.Publish(ExportDone{BatchID: "b1", Events: 2})
}

func TestPublishNonBlocking(t *testing.T) {
	bus := New[int]()
	defer bus.Close()

	sub, cancel := bus.Subscribe()
	defer cancel()

	// Overflow the buffer; the publisher must not block.
	for i := 0; i < 100; i++ {
		bus.Publish(i)
	}
	if len(sub) != cap(sub) {
		t.Fatalf("expected full buffer, got %d", len(sub))
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	bus := New[int]()
	sub, _ := bus.Subscribe()
	bus.Close()
	bus.Close()
	if _, ok := <-sub; ok {
		t.Fatal("channel should be closed")
	}
	if sub2, _ := bus.Subscribe(); sub2 != nil {
		if _, ok := <-sub2; ok {
			t.Fatal("subscribe after close should return a closed channel")
		}
	}
}
