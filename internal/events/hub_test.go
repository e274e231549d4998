package events

import (
	"encoding/json"
	"testing"
)

func TestHubFanOut(t *testing.T) {
	h := NewHub()
	a := h.Subscribe()
	b := h.Subscribe()
	defer h.Unsubscribe(b)

	h.Publish("one")
	if got := <-a; got != "one" {
		t.Fatalf("a got %q", got)
	}
	if got := <-b; got != "one" {
		t.Fatalf("b got %q", got)
	}

	h.Unsubscribe(a)
	h.Publish("two")
	if got := <-b; got != "two" {
		t.Fatalf("b got %q after unsubscribe of a", got)
	}
}

func TestHubDropsWhenSlow(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	// Overfill the client buffer; the publisher must never block.
	for i := 0; i < clientBuffer+5; i++ {
		h.Publish("evt")
	}
	if len(ch) != clientBuffer {
		t.Fatalf("buffered = %d, want %d with overflow dropped", len(ch), clientBuffer)
	}
}

func TestMakeEvent(t *testing.T) {
	raw := MakeEvent("req-1", TypeAnalysisDone, 1, map[string]any{"composite": 62})
	var evt Event
	if err := json.Unmarshal([]byte(raw), &evt); err != nil {
		t.Fatal(err)
	}
	if evt.Type != TypeAnalysisDone || evt.Version != 1 || evt.RequestID != "req-1" {
		t.Fatalf("event = %+v", evt)
	}
	var data map[string]int
	if err := json.Unmarshal(evt.Data, &data); err != nil {
		t.Fatal(err)
	}
	if data["composite"] != 62 {
		t.Fatalf("data = %v", data)
	}
	if evt.At.IsZero() {
		t.Fatal("timestamp not set")
	}
}

func TestMakeEventNilData(t *testing.T) {
	raw := MakeEvent("", TypeHeartbeat, 1, nil)
	var evt Event
	if err := json.Unmarshal([]byte(raw), &evt); err != nil {
		t.Fatal(err)
	}
	if len(evt.Data) != 0 {
		t.Fatalf("data = %s, want empty", evt.Data)
	}
}
