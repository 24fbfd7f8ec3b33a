package remote

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gridsnake/internal/session"
	"gridsnake/pkg/core"
	"gridsnake/pkg/snake"

	"github.com/gorilla/websocket"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		raw  string
		want session.Command
	}{
		{`{"t":"d","d":"up"}`, session.Turn(core.Up)},
		{`{"t":"d","d":"Left"}`, session.Turn(core.Left)},
		{`{"t":"d","d":" down "}`, session.Turn(core.Down)},
		{`{"t":"r"}`, session.Restart()},
	}
	for _, tc := range cases {
		got, err := Decode([]byte(tc.raw))
		if err != nil {
			t.Fatalf("Decode(%s): %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("Decode(%s) = %s, expected %s", tc.raw, got, tc.want)
		}
	}

	for _, raw := range []string{`{"t":"d","d":"sideways"}`, `{"t":"x"}`, `not json`} {
		if _, err := Decode([]byte(raw)); !errors.Is(err, ErrBadMessage) {
			t.Fatalf("Decode(%s) error = %v, expected ErrBadMessage", raw, err)
		}
	}
}

func testFrame(score int) session.Frame {
	p := snake.Projection{W: 2, H: 1, Cells: []snake.Cell{
		{Kind: snake.KindHead, Glyph: snake.GlyphHead, Icon: -1},
		{Kind: snake.KindFood, Glyph: snake.Icons[2], Icon: 2},
	}}
	return session.Frame{Projection: p, Score: score, HighScore: 9, Length: score + 1}
}

func TestStateMsgEncoding(t *testing.T) {
	f := testFrame(3)
	f.Finished = true
	f.Cause = snake.CauseSelf
	msg := NewStateMsg(f)
	if msg.Type != MsgState || msg.Finished != 1 || msg.Cause != "self" || msg.Score != 3 || msg.High != 9 {
		t.Fatalf("unexpected message %+v", msg)
	}
	if len(msg.Rows) != 1 || msg.Rows[0] != string([]rune{snake.GlyphHead, snake.Icons[2]}) {
		t.Fatalf("rows = %q", msg.Rows)
	}
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + WebSocketPath
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { ws.Close() })
	ws.SetReadDeadline(time.Now().Add(5 * time.Second))
	return ws
}

func readJSON(t *testing.T, ws *websocket.Conn, v any) {
	t.Helper()
	_, raw, err := ws.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
}

func TestHubRoundTrip(t *testing.T) {
	cmds := make(chan session.Command, 4)
	hub := NewHub("session-1", cmds, log.New(io.Discard, "", 0))
	hub.Publish(testFrame(1))
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	ws := dial(t, srv)

	var welcome WelcomeMsg
	readJSON(t, ws, &welcome)
	if welcome.Type != MsgWelcome || welcome.Session != "session-1" || welcome.ID == "" {
		t.Fatalf("unexpected welcome %+v", welcome)
	}

	var state StateMsg
	readJSON(t, ws, &state)
	if state.Type != MsgState || state.Score != 1 {
		t.Fatalf("late joiner should receive the last frame, got %+v", state)
	}

	if err := ws.WriteMessage(websocket.TextMessage, []byte(`{"t":"d","d":"sideways"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := ws.WriteMessage(websocket.TextMessage, []byte(`{"t":"d","d":"up"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case cmd := <-cmds:
		if cmd != session.Turn(core.Up) {
			t.Fatalf("command = %s, expected turn up", cmd)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no command forwarded")
	}

	deadline := time.Now().Add(5 * time.Second)
	for hub.Count() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("hub counts %d pads", hub.Count())
		}
		time.Sleep(5 * time.Millisecond)
	}
	hub.Publish(testFrame(2))
	readJSON(t, ws, &state)
	if state.Score != 2 || state.Length != 3 {
		t.Fatalf("broadcast state = %+v", state)
	}
}

func TestHubServesPadPage(t *testing.T) {
	hub := NewHub("s", make(chan session.Command), log.New(io.Discard, "", 0))
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), WebSocketPath) {
		t.Fatalf("status %d, body %q", resp.StatusCode, body)
	}

	resp, err = http.Get(srv.URL + "/missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d for unknown path", resp.StatusCode)
	}
}

func bigFrame(n int) session.Frame {
	cells := make([]snake.Cell, n*n)
	for i := range cells {
		cells[i] = snake.Cell{Kind: snake.KindBody, Glyph: snake.GlyphBody, Icon: -1}
	}
	return session.Frame{Projection: snake.Projection{W: n, H: n, Cells: cells}, Length: n * n}
}

func TestPublishNeverWaitsOnSilentPad(t *testing.T) {
	defer func(d time.Duration) { writeWait = d }(writeWait)
	writeWait = 200 * time.Millisecond

	hub := NewHub("s", make(chan session.Command, 1), log.New(io.Discard, "", 0))
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	// Connect and never read.
	dial(t, srv)
	deadline := time.Now().Add(5 * time.Second)
	for hub.Count() != 1 {
		if time.Now().After(deadline) {
			t.Fatal("pad never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	frame := bigFrame(40)
	published := make(chan int)
	go func() {
		n := 0
		for ; n < 3000; n++ {
			hub.Publish(frame)
		}
		published <- n
	}()
	select {
	case n := <-published:
		if n != 3000 {
			t.Fatalf("published %d frames", n)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Publish blocked behind a pad that does not read")
	}

	// The stuck writer hits its deadline and the pad is dropped.
	deadline = time.Now().Add(5 * time.Second)
	for hub.Count() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("silent pad still connected (%d pads)", hub.Count())
		}
		hub.Publish(frame)
		time.Sleep(10 * time.Millisecond)
	}
}

func TestEnqueueKeepsNewestFrames(t *testing.T) {
	c := &Conn{send: make(chan []byte, sendBuffer), done: make(chan struct{})}
	for i := 0; i < sendBuffer+3; i++ {
		if !c.Enqueue([]byte{byte(i)}) {
			t.Fatalf("enqueue %d refused on an open conn", i)
		}
	}
	for want := 3; want < sendBuffer+3; want++ {
		if got := (<-c.send)[0]; int(got) != want {
			t.Fatalf("queued frame %d, expected %d", got, want)
		}
	}

	close(c.done)
	if c.Enqueue([]byte{9}) {
		t.Fatal("enqueue accepted after close")
	}
}
