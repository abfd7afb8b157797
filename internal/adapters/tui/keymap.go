package tui

// Key binding constants used in handleKey.
const (
	KeyQuit     = "q"
	KeyCtrlC    = "ctrl+c"
	KeyEsc      = "esc"
	KeyEnter    = "enter"
	KeySpace    = " "
	KeyTab      = "tab"
	KeyUp       = "up"
	KeyDown     = "down"
	KeyLeft     = "left"
	KeyRight    = "right"
	KeyJ        = "j"
	KeyK        = "k"
	KeyNext     = "n"
	KeyPrev     = "p"
	KeyRestart  = "r"
	KeyPageUp   = "pgup"
	KeyPageDown = "pgdown"
)
