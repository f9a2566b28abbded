package hal

import "testing"

func TestParseEscape_Keys(t *testing.T) {
	tcs := []struct {
		in   string
		n    int
		code KeyCode
		ok   bool
		name string
	}{
		{name: "up", in: "\x1b[A", n: 3, code: KeyUp, ok: true},
		{name: "down", in: "\x1b[B", n: 3, code: KeyDown, ok: true},
		{name: "right", in: "\x1b[C", n: 3, code: KeyRight, ok: true},
		{name: "left", in: "\x1b[D", n: 3, code: KeyLeft, ok: true},
		{name: "ss3 up", in: "\x1bOA", n: 3, code: KeyUp, ok: true},
		{name: "home", in: "\x1b[H", n: 3, code: KeyHome, ok: true},
		{name: "end", in: "\x1b[F", n: 3, code: KeyEnd, ok: true},
		{name: "delete", in: "\x1b[3~", n: 4, code: KeyDelete, ok: true},
		{name: "f1 skipped", in: "\x1b[11~", n: 5, code: KeyUnknown, ok: true},
		{name: "partial", in: "\x1b[", n: 0, code: KeyUnknown, ok: false},
		{name: "partial param", in: "\x1b[1", n: 0, code: KeyUnknown, ok: false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			n, code, ok := parseEscape([]byte(tc.in))
			if ok != tc.ok || n != tc.n || code != tc.code {
				t.Fatalf("parseEscape(%q) = n=%d code=%v ok=%v; want n=%d code=%v ok=%v", tc.in, n, code, ok, tc.n, tc.code, tc.ok)
			}
		})
	}
}

func TestDecoder_LineWithEditing(t *testing.T) {
	var d vt100Decoder
	evs, eof := d.Feed([]byte("ab\x7f\x1b[A\x1b[Bc\r"))
	if eof {
		t.Fatal("unexpected eof")
	}
	want := []KeyEvent{
		{Rune: 'a'},
		{Rune: 'b'},
		{Code: KeyBackspace},
		{Code: KeyUp},
		{Code: KeyDown},
		{Rune: 'c'},
		{Code: KeyEnter},
	}
	if len(evs) != len(want) {
		t.Fatalf("events=%v; want %v", evs, want)
	}
	for i := range want {
		if evs[i] != want[i] {
			t.Fatalf("events[%d]=%+v; want %+v", i, evs[i], want[i])
		}
	}
}

func TestDecoder_SplitEscapeAndRune(t *testing.T) {
	var d vt100Decoder
	if evs, _ := d.Feed([]byte("\x1b")); len(evs) != 0 {
		t.Fatalf("events after ESC=%v; want none", evs)
	}
	if evs, _ := d.Feed([]byte("[")); len(evs) != 0 {
		t.Fatalf("events after ESC [=%v; want none", evs)
	}
	evs, _ := d.Feed([]byte("A"))
	if len(evs) != 1 || evs[0].Code != KeyUp {
		t.Fatalf("events=%v; want [up]", evs)
	}

	snow := []byte("é")
	if evs, _ := d.Feed(snow[:1]); len(evs) != 0 {
		t.Fatalf("events after partial rune=%v; want none", evs)
	}
	evs, _ = d.Feed(snow[1:])
	if len(evs) != 1 || evs[0].Rune != 'é' {
		t.Fatalf("events=%v; want [é]", evs)
	}
}

func TestDecoder_CRLFIsOneEnter(t *testing.T) {
	var d vt100Decoder
	evs, _ := d.Feed([]byte("x\r\ny\n"))
	enters := 0
	for _, ev := range evs {
		if ev.Code == KeyEnter {
			enters++
		}
	}
	if enters != 2 {
		t.Fatalf("enters=%d; want 2 (events=%v)", enters, evs)
	}
}

func TestDecoder_CtrlDEndsInput(t *testing.T) {
	var d vt100Decoder
	evs, eof := d.Feed([]byte("ok\x04ignored"))
	if !eof {
		t.Fatal("expected eof")
	}
	if len(evs) != 2 {
		t.Fatalf("events=%v; want 2 runes before eof", evs)
	}
}

func TestKeyEventPrintable(t *testing.T) {
	tcs := []struct {
		ev   KeyEvent
		want bool
	}{
		{KeyEvent{Rune: 'a'}, true},
		{KeyEvent{Rune: ' '}, true},
		{KeyEvent{Rune: '\t'}, false},
		{KeyEvent{Rune: 0x7f}, false},
		{KeyEvent{Code: KeyUp}, false},
		{KeyEvent{Code: KeyEnter, Rune: 'x'}, false},
	}
	for _, tc := range tcs {
		if got := tc.ev.Printable(); got != tc.want {
			t.Fatalf("%+v.Printable() = %v; want %v", tc.ev, got, tc.want)
		}
	}
}
