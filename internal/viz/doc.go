// Package viz draws the solar system in the terminal.
//
// The package implements the live view using the Bubble Tea framework:
//
//   - [Model]: playback of the orbit animation with a side panel
//   - [Canvas]: Braille-based pixel canvas with per-cell colour and labels
//   - [Camera]: azimuth/elevation orthographic projection
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	Tab   - Select the body whose z bobbing is plotted
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//	Q     - Quit
//
// # Recording
//
// Pressing G records the canvas as a GIF animation, saved to solarsim.gif
// in the current directory when recording stops.
package viz
