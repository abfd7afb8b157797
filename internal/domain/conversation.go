package domain

// SeedPrompt opens every chat session. Its reply is the first agent message.
const SeedPrompt = "You are MindMesh, a compassionate and emotionally intelligent mental health support assistant. " +
	"Your role is to listen without judgment, validate emotions, and gently help users reflect on their feelings. " +
	"You are not a therapist, but you offer support like a caring friend who understands mental wellness. " +
	"Speak calmly, use soft, warm language, and avoid clinical or diagnostic terms. " +
	"Suggest simple self-care practices like journaling, breathing exercises, or reaching out to loved ones. " +
	"If a user seems to be in crisis, gently suggest contacting a professional or using a helpline. " +
	"Always prioritize empathy, safety, and comfort. Let the user guide the conversation. " +
	"Your tone should be:- Supportive- Non-judgmental- Gentle- Reassuring. " +
	"Just give me one small message for the same. just give me one single message. " +
	"Also make sure that user asks relevant questions related to health and mental issues and other question should be responded with can't tell you about this."

// Message represents any message in a chat timeline (user or agent)
type Message struct {
	ID        MessageID
	SessionID SessionID
	Author    Role
	Text      string
	CreatedAt Timestamp

	Style SupportStyle
	// Fallback is set when the agent text is the apology used after a model failure.
	Fallback bool
}

// Session is one chat opened from the landing flow. It only lives as long as the process.
type Session struct {
	ID        SessionID
	UserID    UserID
	CreatedAt Timestamp
	UpdatedAt Timestamp

	Style SupportStyle
	Mood  Mood
	Title string
}
