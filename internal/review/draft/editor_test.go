package draft

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAutoModeResolution(t *testing.T) {
	cases := []struct {
		name      string
		suggested string
		expected  Mode
	}{
		{"json_array_is_list", `["a","b"]`, ModeList},
		{"plain_text_is_text", "one line", ModeText},
		{"newline_text_is_text", "one\ntwo", ModeText},
		{"malformed_json_is_text", `["a"`, ModeText},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEditor(tc.suggested, nil)
			if got := e.EffectiveMode(); got != tc.expected {
				t.Fatalf("got %q want %q", got, tc.expected)
			}
		})
	}
}

func TestItemsReturnsSeededCopy(t *testing.T) {
	e := NewEditor(`["Go","Rust"]`, nil)
	items := e.Items()
	if !reflect.DeepEqual(items, []string{"Go", "Rust"}) {
		t.Fatalf("got %v", items)
	}
	items[0] = "mutated"
	if got := e.Items()[0]; got != "Go" {
		t.Fatalf("buffer leaked through Items: %q", got)
	}
	if e := NewEditor("plain text", nil); e.Items() != nil {
		t.Fatalf("text suggestion should have no list seed, got %v", e.Items())
	}
}

func TestListModeSeedsFromSuggestion(t *testing.T) {
	e := NewEditor("one line", nil)
	e.SetMode(ModeList)
	e.AddItem("added")
	// Suggested content was not array-shaped, so the wire format stays text.
	if got := e.Value(); got != "one line\nadded" {
		t.Fatalf("got %q", got)
	}
}

func TestArrayShapedSuggestionRoundTrip(t *testing.T) {
	var latest string
	e := NewEditor(`["Built X","Led Y"]`, func(wire string) { latest = wire })

	e.UpdateItem(1, "Led the Y initiative")

	var back []string
	if err := json.Unmarshal([]byte(latest), &back); err != nil {
		t.Fatalf("callback value is not a JSON array: %v", err)
	}
	if !reflect.DeepEqual(back, []string{"Built X", "Led the Y initiative"}) {
		t.Fatalf("unexpected items: %v", back)
	}
}

func TestSingleItemCollapsesToBareText(t *testing.T) {
	e := NewEditor(`["Built X","Led Y"]`, nil)
	e.RemoveItem(1)
	if got := e.Value(); got != "Built X" {
		t.Fatalf("expected bare element, got %q", got)
	}
}

func TestSwitchToTextJoinsItems(t *testing.T) {
	e := NewEditor(`["a","b"]`, nil)
	e.SetMode(ModeText)
	if got := e.Value(); got != "a\nb" {
		t.Fatalf("got %q", got)
	}
}

func TestTextEditsCarryIntoListMode(t *testing.T) {
	e := NewEditor("ignored", nil)
	e.SetText("first\nsecond")
	e.SetMode(ModeList)
	e.AddItem("third")
	if got := e.Value(); got != "first\nsecond\nthird" {
		t.Fatalf("got %q", got)
	}
}

func TestResetClearsStateAndMode(t *testing.T) {
	e := NewEditor(`["a","b"]`, nil)
	e.AddItem("c")
	e.SetMode(ModeText)

	e.Reset("plain suggestion")

	if got := e.EffectiveMode(); got != ModeText {
		t.Fatalf("mode not back to auto resolution: %q", got)
	}
	if got := e.Value(); got != "" {
		t.Fatalf("expected empty buffer after reset, got %q", got)
	}

	e.Reset(`["x","y"]`)
	if got := e.EffectiveMode(); got != ModeList {
		t.Fatalf("auto mode should see new array shape, got %q", got)
	}
	if got := e.Value(); got != `["x","y"]` {
		t.Fatalf("list not reseeded from new suggestion: %q", got)
	}
}

func TestOutOfRangeMutationsIgnored(t *testing.T) {
	e := NewEditor(`["a"]`, nil)
	e.UpdateItem(5, "nope")
	e.RemoveItem(-1)
	if got := e.Value(); got != "a" {
		t.Fatalf("buffer corrupted: %q", got)
	}
}

func TestEveryMutationEmitsWireString(t *testing.T) {
	var calls []string
	e := NewEditor(`["a","b"]`, func(wire string) { calls = append(calls, wire) })
	e.AddItem("c")
	e.UpdateItem(0, "a2")
	e.RemoveItem(2)
	if len(calls) != 3 {
		t.Fatalf("expected 3 callbacks, got %d: %v", len(calls), calls)
	}
	if calls[len(calls)-1] != `["a2","b"]` {
		t.Fatalf("unexpected final wire: %q", calls[len(calls)-1])
	}
}
