package shell

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestHistoryEvictsOldest(t *testing.T) {
	var h history
	for i := 1; i <= 11; i++ {
		h.add(fmt.Sprintf("c%d", i))
	}
	want := []string{"c2", "c3", "c4", "c5", "c6", "c7", "c8", "c9", "c10", "c11"}
	if !reflect.DeepEqual(h.entries, want) {
		t.Fatalf("entries = %v; want %v", h.entries, want)
	}
	if h.count() != HistorySize {
		t.Fatalf("count() = %d; want %d", h.count(), HistorySize)
	}
}

func TestHistoryNeverExceedsCapacity(t *testing.T) {
	var h history
	for i := 0; i < 100; i++ {
		h.add(fmt.Sprintf("cmd %d", i))
		if h.count() > HistorySize {
			t.Fatalf("count() = %d after %d adds; want <= %d", h.count(), i+1, HistorySize)
		}
	}
	if got := h.recent(0); got != "cmd 99" {
		t.Fatalf("recent(0) = %q; want %q", got, "cmd 99")
	}
}

func TestHistorySkipsConsecutiveDuplicates(t *testing.T) {
	var h history
	for _, line := range []string{"ls", "ls", "help", "ls", "ls"} {
		h.add(line)
	}
	want := []string{"ls", "help", "ls"}
	if !reflect.DeepEqual(h.entries, want) {
		t.Fatalf("entries = %v; want %v", h.entries, want)
	}
}

func TestHistoryTruncatesLongEntries(t *testing.T) {
	var h history
	h.add(strings.Repeat("x", 300))
	if n := len([]rune(h.recent(0))); n != MaxEntryLen {
		t.Fatalf("len(recent(0)) = %d; want %d", n, MaxEntryLen)
	}
}

func TestNavigatorUpDownRoundTrip(t *testing.T) {
	for n := 0; n <= HistorySize; n++ {
		var h history
		for i := 0; i < n; i++ {
			h.add(fmt.Sprintf("line%d", i))
		}
		before := append([]string(nil), h.entries...)

		var nav navigator
		nav.reset()
		line := ""
		for i := 0; i < n; i++ {
			got, ok := nav.up(&h)
			if !ok {
				t.Fatalf("n=%d: up #%d ok = false", n, i)
			}
			if want := fmt.Sprintf("line%d", n-1-i); got != want {
				t.Fatalf("n=%d: up #%d = %q; want %q", n, i, got, want)
			}
			line = got
		}
		for i := 0; i < n; i++ {
			got, ok := nav.down(&h)
			if !ok {
				t.Fatalf("n=%d: down #%d ok = false", n, i)
			}
			line = got
		}
		if line != "" || nav.index != -1 {
			t.Fatalf("n=%d: line=%q index=%d; want empty and -1", n, line, nav.index)
		}
		if !reflect.DeepEqual(h.entries, before) {
			t.Fatalf("n=%d: entries = %v; want %v", n, h.entries, before)
		}
	}
}

func TestNavigatorHoldsAtOldest(t *testing.T) {
	var h history
	h.add("a")
	h.add("b")

	var nav navigator
	nav.reset()
	for i := 0; i < 5; i++ {
		nav.up(&h)
	}
	if nav.index != 1 || h.recent(nav.index) != "a" {
		t.Fatalf("index = %d; want 1 (oldest)", nav.index)
	}
}

func TestNavigatorNoops(t *testing.T) {
	var h history
	var nav navigator
	nav.reset()

	if _, ok := nav.up(&h); ok {
		t.Fatalf("up on empty history ok = true; want false")
	}
	h.add("a")
	if _, ok := nav.down(&h); ok {
		t.Fatalf("down at live line ok = true; want false")
	}
	if nav.index != -1 {
		t.Fatalf("index = %d; want -1", nav.index)
	}
}
