package domain

// Track is one ambient sound in the player's playlist.
type Track struct {
	Title string
	// Source is a file path or URL handed to the AudioPlayer as-is.
	Source string
}
