package tui

import "github.com/PabloGalante/mindmesh/internal/app/conversation"

// SessionStartedMsg carries the new chat session and its welcome message.
// Prompt is the opening text picked during onboarding, sent right after.
// Gen is the chat generation the request was made in; leaving the chat
// bumps it, so late results from an abandoned chat are dropped.
type SessionStartedMsg struct {
	Gen    int
	Out    *conversation.StartSessionOutput
	Prompt string
	Err    error
}

// ReplyMsg carries one completed chat turn.
type ReplyMsg struct {
	Gen int
	Out *conversation.SendMessageOutput
	Err error
}

// BreathTickMsg advances the breathing controller by one second. Ticks from
// an older generation are dropped, so a stop and restart never doubles the
// pace.
type BreathTickMsg struct {
	Gen int
}

// MusicTickMsg refreshes the sounds screen progress and moves on to the
// next track when the current one ends.
type MusicTickMsg struct{}
