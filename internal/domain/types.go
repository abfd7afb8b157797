package domain

import "time"

type SessionID string
type UserID string
type MessageID string

type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// SupportStyle is the kind of support chosen on the landing flow.
type SupportStyle string

const (
	StyleGentle       SupportStyle = "gentle"       // Gentle Listener
	StyleMotivational SupportStyle = "motivational" // Motivational Boost
	StyleMindful      SupportStyle = "mindful"      // Calm + Mindfulness
	StyleReflective   SupportStyle = "reflective"   // Help Me Reflect
)

// Mood is the self-reported mood picked before a chat starts.
type Mood string

const (
	MoodNeutral  Mood = "neutral"
	MoodDown     Mood = "down"
	MoodAnxious  Mood = "anxious"
	MoodOkay     Mood = "okay"
	MoodGrateful Mood = "grateful"
)

type Timestamp = time.Time
