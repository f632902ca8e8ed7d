package protocol

import (
	"errors"
	"strings"
	"testing"

	"github.com/danmuck/netcode/internal/testutil/testlog"
)

func TestEncodeFramesTagAndBody(t *testing.T) {
	testlog.Start(t)
	got, err := Encode("Chat", "hi")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got != "[Chat]hi" {
		t.Fatalf("unexpected frame: %q", got)
	}
}

func TestEncodeRejectsBracketedTags(t *testing.T) {
	testlog.Start(t)
	for _, tag := range []string{"", "a[b", "a]b", "[x]"} {
		if _, err := Encode(tag, "hi"); !errors.Is(err, ErrInvalidTag) {
			t.Fatalf("expected ErrInvalidTag for %q, got %v", tag, err)
		}
	}
}

func TestEncodeCeiling(t *testing.T) {
	testlog.Start(t)
	tag := "Chat"
	body := strings.Repeat("x", MaxMessageLen-len(tag)-2)
	if _, err := Encode(tag, body); err != nil {
		t.Fatalf("expected body at ceiling to encode: %v", err)
	}
	if _, err := Encode(tag, body+"x"); !errors.Is(err, ErrMessageTooLong) {
		t.Fatalf("expected ErrMessageTooLong, got %v", err)
	}
	if _, err := EncodeReserved(tag, body, RolePrefixLen); !errors.Is(err, ErrMessageTooLong) {
		t.Fatalf("expected reserved prefix to push over ceiling, got %v", err)
	}
	short := body[:MaxBodyLen(tag, RolePrefixLen)]
	framed, err := EncodeReserved(tag, short, RolePrefixLen)
	if err != nil {
		t.Fatalf("encode reserved: %v", err)
	}
	if n := len(WithRole(RoleClient, framed)); n != MaxMessageLen {
		t.Fatalf("composed length=%d want %d", n, MaxMessageLen)
	}
}

func TestMaxBodyLenNeverNegative(t *testing.T) {
	testlog.Start(t)
	if n := MaxBodyLen(strings.Repeat("t", 200), RolePrefixLen); n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
	if n := MaxBodyLen("Chat", RolePrefixLen); n != 118 {
		t.Fatalf("expected 118, got %d", n)
	}
}

func TestDecodeIncoming(t *testing.T) {
	testlog.Start(t)
	msg := Decode("[Chat][12345]hello there")
	if msg.Tag != "Chat" || msg.Sender != 12345 || msg.Body != "hello there" {
		t.Fatalf("unexpected decode: %+v", msg)
	}
}

func TestDecodeBodyKeepsBrackets(t *testing.T) {
	testlog.Start(t)
	msg := Decode("[Chat][7][x]y]z[")
	if msg.Tag != "Chat" || msg.Sender != 7 || msg.Body != "[x]y]z[" {
		t.Fatalf("unexpected decode: %+v", msg)
	}
}

func TestDecodeIsTotal(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		raw  string
		want ParsedMessage
	}{
		{raw: "", want: ParsedMessage{}},
		{raw: "[", want: ParsedMessage{Body: "["}},
		{raw: "]", want: ParsedMessage{Body: "]"}},
		{raw: "[]", want: ParsedMessage{}},
		{raw: "[][]", want: ParsedMessage{}},
		{raw: "plain", want: ParsedMessage{Body: "plain"}},
		{raw: "[Chat", want: ParsedMessage{Body: "[Chat"}},
		{raw: "[Chat]", want: ParsedMessage{Tag: "Chat"}},
		{raw: "[Chat][", want: ParsedMessage{Tag: "Chat", Body: "["}},
		{raw: "[Chat][12", want: ParsedMessage{Tag: "Chat", Body: "[12"}},
		{raw: "[Chat][]hi", want: ParsedMessage{Tag: "Chat", Body: "hi"}},
		{raw: "[Chat][0]hi", want: ParsedMessage{Tag: "Chat", Body: "hi"}},
		{raw: "[Chat][abc]hi", want: ParsedMessage{Tag: "Chat", Body: "hi"}},
		{raw: "[Chat]x[9]hi", want: ParsedMessage{Tag: "Chat", Body: "x[9]hi"}},
	}
	for _, tc := range cases {
		got := Decode(tc.raw)
		if got != tc.want {
			t.Fatalf("decode %q: got=%+v want=%+v", tc.raw, got, tc.want)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	testlog.Start(t)
	tags := []string{"Chat", "a", "Plugin_With.Long-Name"}
	bodies := []string{"", "hi", "hello there", "x]y", "a[b]c", strings.Repeat("z", 90)}
	for _, tag := range tags {
		for _, body := range bodies {
			framed, err := Encode(tag, body)
			if err != nil {
				t.Fatalf("encode %q/%q: %v", tag, body, err)
			}
			got := Decode(framed)
			if got.Tag != tag || got.Body != body || !got.Sender.IsZero() {
				t.Fatalf("round trip %q/%q: got=%+v", tag, body, got)
			}
		}
	}
}

func TestParseOutgoingInvertsEncode(t *testing.T) {
	testlog.Start(t)
	for _, body := range []string{"", "hi", "[5]leading bracket", "[]"} {
		framed, err := Encode("Chat", body)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		tag, got := ParseOutgoing(framed)
		if tag != "Chat" || got != body {
			t.Fatalf("parse outgoing %q: tag=%q body=%q", framed, tag, got)
		}
	}
}

func TestEncodeIncomingDecodes(t *testing.T) {
	testlog.Start(t)
	raw := EncodeIncoming("Chat", 42, "hey")
	if raw != "[Chat][42]hey" {
		t.Fatalf("unexpected incoming frame: %q", raw)
	}
	if raw := EncodeIncoming("Chat", 0, "hey"); raw != "[Chat][]hey" {
		t.Fatalf("unexpected anonymous frame: %q", raw)
	}
	msg := Decode(raw)
	if msg.Sender != 42 || msg.Body != "hey" {
		t.Fatalf("unexpected decode: %+v", msg)
	}
}

func TestStripRole(t *testing.T) {
	testlog.Start(t)
	role, rest := StripRole("[PC][Chat]hi")
	if role != RoleClient || rest != "[Chat]hi" {
		t.Fatalf("unexpected strip: role=%q rest=%q", role, rest)
	}
	role, rest = StripRole("[Chat]hi")
	if role != "" || rest != "[Chat]hi" {
		t.Fatalf("expected unchanged value, got role=%q rest=%q", role, rest)
	}
}

func TestParseIdentity(t *testing.T) {
	testlog.Start(t)
	cases := map[string]Identity{
		"":                     0,
		"0":                    0,
		"12345":                12345,
		"-1":                   0,
		"12ab":                 0,
		"18446744073709551615": Identity(^uint64(0)),
	}
	for in, want := range cases {
		if got := ParseIdentity(in); got != want {
			t.Fatalf("parse %q: got=%d want=%d", in, got, want)
		}
	}
}
