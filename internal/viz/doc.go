// Package viz provides terminal-based visualization for radial
// wavefunctions.
//
//   - [Canvas]: braille pixel canvas for high-resolution curve rendering
//   - [WavefunctionChart], [TailChart]: asciigraph charts for CLI output
//   - [Explorer]: interactive Bubble Tea energy tuner
//
// # Key Bindings
//
//	Left/H  - Lower trial energy
//	Right/L - Raise trial energy
//	+/-     - Double/halve the energy step
//	Tab     - Cycle potential parameters
//	Up/Down - Adjust selected parameter
//	R       - Reset to initial energy and parameters
//	?       - Show help overlay
package viz
