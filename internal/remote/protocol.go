// Package remote serves a websocket control pad for a running session:
// clients receive state frames and send the four directional commands and
// restart.
package remote

// Protocol uses single-character JSON keys, like the state stream it feeds.
//
//	Client → Server:
//	  "d" = direction {"t":"d","d":"up"}
//	  "r" = restart   {"t":"r"}
//	Server → Client:
//	  "w" = welcome {"t":"w","i":"client-id","s":"session-id"}
//	  "s" = state   {"t":"s","g":["row",...],"p":score,"h":best,"l":length,"f":0,"c":"none"}

import (
	"encoding/json"
	"errors"
	"fmt"

	"gridsnake/internal/session"
	"gridsnake/pkg/core"
)

const (
	MsgDirection = "d"
	MsgRestart   = "r"
	MsgWelcome   = "w"
	MsgState     = "s"
)

// ErrBadMessage is returned for client messages that decode to no command.
var ErrBadMessage = errors.New("bad message")

// ClientMessage is an incoming message from a pad.
type ClientMessage struct {
	Type string `json:"t"`
	Dir  string `json:"d,omitempty"`
}

// WelcomeMsg is sent to a pad right after it connects.
type WelcomeMsg struct {
	Type    string `json:"t"`
	ID      string `json:"i"`
	Session string `json:"s"`
}

// StateMsg carries one frame. Rows are the projection's symbol rows.
type StateMsg struct {
	Type     string   `json:"t"`
	Rows     []string `json:"g"`
	Score    int      `json:"p"`
	High     int      `json:"h"`
	Length   int      `json:"l"`
	Finished int      `json:"f"`
	Cause    string   `json:"c"`
}

// Decode parses a client message into a session command.
func Decode(raw []byte) (session.Command, error) {
	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return session.Command{}, fmt.Errorf("%w: %v", ErrBadMessage, err)
	}
	switch msg.Type {
	case MsgDirection:
		d, ok := core.ParseDirection(msg.Dir)
		if !ok {
			return session.Command{}, fmt.Errorf("%w: unknown direction %q", ErrBadMessage, msg.Dir)
		}
		return session.Turn(d), nil
	case MsgRestart:
		return session.Restart(), nil
	}
	return session.Command{}, fmt.Errorf("%w: unknown type %q", ErrBadMessage, msg.Type)
}

// NewStateMsg converts a frame to its wire form.
func NewStateMsg(f session.Frame) StateMsg {
	finished := 0
	if f.Finished {
		finished = 1
	}
	return StateMsg{
		Type:     MsgState,
		Rows:     f.Projection.Rows(),
		Score:    f.Score,
		High:     f.HighScore,
		Length:   f.Length,
		Finished: finished,
		Cause:    f.Cause.String(),
	}
}
