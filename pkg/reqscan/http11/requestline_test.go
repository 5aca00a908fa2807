package http11

import (
	"errors"
	"testing"

	"github.com/yourusername/reqscan/pkg/reqscan/segbuf"
)

func parseLine(t *testing.T, input string) (StartLine, bool, int, error) {
	t.Helper()
	p := NewParser(Options{})
	cur := segbuf.NewCursor(segbuf.New([]byte(input)))
	defer cur.Release()

	var got StartLine
	ok, consumed, err := p.ParseRequestLine(cur, StartLineHandlerFunc(func(sl StartLine) {
		got = sl
	}))
	return got, ok, consumed, err
}

func TestParseRequestLinePlaintext(t *testing.T) {
	sl, ok, consumed, err := parseLine(t, "GET /plaintext HTTP/1.1\r\nHost: example\r\n\r\n")
	if err != nil || !ok {
		t.Fatalf("ParseRequestLine failed: ok=%v err=%v", ok, err)
	}
	if sl.Method != MethodGET {
		t.Errorf("Method = %v, want GET", sl.Method)
	}
	if sl.Version != Version11 {
		t.Errorf("Version = %v, want HTTP/1.1", sl.Version)
	}
	if string(sl.Target) != "/plaintext" || string(sl.Path) != "/plaintext" || len(sl.Query) != 0 {
		t.Errorf("Target/Path/Query = %q/%q/%q, want /plaintext//plaintext/\"\"", sl.Target, sl.Path, sl.Query)
	}
	if sl.PathEncoded {
		t.Errorf("PathEncoded = true, want false")
	}
	if consumed != 25 {
		t.Errorf("consumed = %d, want 25", consumed)
	}
}

func TestParseRequestLineEncodedQuery(t *testing.T) {
	sl, ok, _, err := parseLine(t, "POST /a?b=1%20 HTTP/1.0\r\n\r\n")
	if err != nil || !ok {
		t.Fatalf("ParseRequestLine failed: ok=%v err=%v", ok, err)
	}
	if sl.Method != MethodPOST {
		t.Errorf("Method = %v, want POST", sl.Method)
	}
	if sl.Version != Version10 {
		t.Errorf("Version = %v, want HTTP/1.0", sl.Version)
	}
	if string(sl.Target) != "/a?b=1%20" || string(sl.Path) != "/a" || string(sl.Query) != "b=1%20" {
		t.Errorf("Target/Path/Query = %q/%q/%q", sl.Target, sl.Path, sl.Query)
	}
	if !sl.PathEncoded {
		t.Errorf("PathEncoded = false, want true (the '%%' in the query still sets it)")
	}
}

func TestParseRequestLineCustomMethod(t *testing.T) {
	sl, ok, _, err := parseLine(t, "FOO / HTTP/1.1\r\n\r\n")
	if err != nil || !ok {
		t.Fatalf("ParseRequestLine failed: ok=%v err=%v", ok, err)
	}
	if sl.Method != MethodCUSTOM {
		t.Errorf("Method = %v, want CUSTOM", sl.Method)
	}
	if string(sl.CustomMethod) != "FOO" {
		t.Errorf("CustomMethod = %q, want %q", sl.CustomMethod, "FOO")
	}
	if string(sl.Target) != "/" || string(sl.Path) != "/" {
		t.Errorf("Target/Path = %q/%q, want \"/\"/\"/\"", sl.Target, sl.Path)
	}
}

func TestParseRequestLineUnrecognizedVersion(t *testing.T) {
	_, ok, _, err := parseLine(t, "GET / HTTP/2.0\r\n\r\n")
	if ok || err == nil {
		t.Fatalf("expected rejection, got ok=%v err=%v", ok, err)
	}
	if !errors.Is(err, ErrUnrecognizedHTTPVersion) {
		t.Fatalf("err = %v, want ErrUnrecognizedHTTPVersion", err)
	}
}

func TestParseRequestLineEmptyPathRejects(t *testing.T) {
	_, ok, _, err := parseLine(t, "GET  / HTTP/1.1\r\n\r\n")
	if ok || err == nil {
		t.Fatalf("expected rejection, got ok=%v err=%v", ok, err)
	}
	if !errors.Is(err, ErrInvalidRequestLine) {
		t.Fatalf("err = %v, want ErrInvalidRequestLine", err)
	}
}

func TestParseRequestLineMethodAtDictionaryBoundary(t *testing.T) {
	for _, method := range []string{"GET", "OPTIONS"} {
		sl, ok, _, err := parseLine(t, method+" / HTTP/1.1\r\n\r\n")
		if err != nil || !ok {
			t.Fatalf("method %s: ParseRequestLine failed: ok=%v err=%v", method, ok, err)
		}
		if sl.Method == MethodUnknown || sl.Method == MethodCUSTOM {
			t.Errorf("method %s classified as %v", method, sl.Method)
		}
	}
}

func TestParseRequestLineOneByteCustomMethod(t *testing.T) {
	sl, ok, _, err := parseLine(t, "X / HTTP/1.1\r\n\r\n")
	if err != nil || !ok {
		t.Fatalf("ParseRequestLine failed: ok=%v err=%v", ok, err)
	}
	if sl.Method != MethodCUSTOM || string(sl.CustomMethod) != "X" {
		t.Errorf("Method/CustomMethod = %v/%q, want CUSTOM/\"X\"", sl.Method, sl.CustomMethod)
	}
}

func TestParseRequestLineIncompleteNoLF(t *testing.T) {
	cur := segbuf.NewCursor(segbuf.New([]byte("GET / HTTP/1.1")))
	p := NewParser(Options{})
	ok, consumed, err := p.ParseRequestLine(cur, StartLineHandlerFunc(func(StartLine) {
		t.Fatalf("handler invoked on incomplete input")
	}))
	if ok || err != nil {
		t.Fatalf("expected incomplete (false, nil), got ok=%v err=%v", ok, err)
	}
	if consumed != 0 || cur.Pos() != 0 {
		t.Fatalf("incomplete parse must not advance the cursor: consumed=%d pos=%d", consumed, cur.Pos())
	}
}

func TestParseRequestLineSplitAcrossSegmentsMatchesSingleShot(t *testing.T) {
	full := "GET /plaintext HTTP/1.1\r\n"
	for split := 0; split <= len(full); split++ {
		segs := segbuf.FromSlices([][]byte{[]byte(full[:split]), []byte(full[split:])})
		cur := segbuf.NewCursor(segs)
		p := NewParser(Options{})

		var invocations int
		ok, consumed, err := p.ParseRequestLine(cur, StartLineHandlerFunc(func(StartLine) {
			invocations++
		}))
		if err != nil || !ok {
			t.Fatalf("split=%d: ParseRequestLine failed: ok=%v err=%v", split, ok, err)
		}
		if invocations != 1 {
			t.Fatalf("split=%d: handler invoked %d times, want 1", split, invocations)
		}
		if consumed != len(full) {
			t.Fatalf("split=%d: consumed = %d, want %d", split, consumed, len(full))
		}
		cur.Release()
	}
}

func TestParseRequestLineTargetInvariant(t *testing.T) {
	sl, ok, _, err := parseLine(t, "GET /a/b?x=1 HTTP/1.1\r\n\r\n")
	if err != nil || !ok {
		t.Fatalf("ParseRequestLine failed: ok=%v err=%v", ok, err)
	}
	want := string(sl.Path) + "?" + string(sl.Query)
	if string(sl.Target) != want {
		t.Errorf("Target = %q, want path+?+query = %q", sl.Target, want)
	}
}
