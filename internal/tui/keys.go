package tui

// ViewState is the screen the browser is showing.
type ViewState int

// View states.
const (
	ViewStateLoading ViewState = iota
	ViewStateList
	ViewStateError
	ViewStateQuitting
)

// Key bindings.
const (
	keyQuit        = "q"
	keyCtrlC       = "ctrl+c"
	keyEnter       = "enter"
	keyEsc         = "esc"
	keySlash       = "/"
	keySort        = "s"
	keySortBack    = "S"
	keyGenre       = "g"
	keyGenreBack   = "G"
	keyAge         = "a"
	keyAgeBack     = "A"
	keyAvailable   = "v"
	keyReset       = "r"
	keyLeft        = "left"
	keyPrevVim     = "h"
	keyRight       = "right"
	keyNextVim     = "l"
	keyHome        = "home"
	keyEnd         = "end"
	keyMinPageJump = '1'
	keyMaxPageJump = '9'
)

const helpText = "/ search  g/G genre  a/A age  v available  s/S sort  " +
	"←/→ page  1-9 go to  ↑/↓ move  enter details  r reset  q quit"
