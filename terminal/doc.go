// Package terminal owns the tcell screen for the application.
//
// Features:
//   - Screen lifecycle as a service: init, event polling, finalization
//   - Color mode selection (auto, 24-bit, 256-color) before the screen is built
//   - Mouse reporting for button clicks
//   - Clean terminal restoration from panic handlers, independent of tcell
//
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
