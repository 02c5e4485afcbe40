package config

import "github.com/automoto/menukit/gui"

// Button IDs shared between the menu definitions under assets/menus and the
// selection routing. Values at or below gui.ButtonCancel are reserved by the
// gui package.
const (
	// Main menu
	ButtonPlay gui.ButtonID = 16 + iota
	ButtonContinue
	ButtonOptions
	ButtonQuit

	// Options menu
	ButtonMusic
	ButtonSound
	ButtonWindow
	ButtonBack

	// Pause menu
	ButtonResume
	ButtonExitToMenu
)

// Image IDs for the decorative menu images.
const (
	ImageTitle gui.ButtonID = 64 + iota
	ImageOptionsTitle
	ImageSpark
)

// Menu definition names as loaded from assets/menus.
const (
	MenuMain    = "main"
	MenuOptions = "options"
	MenuPause   = "pause"
)
