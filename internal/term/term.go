// Package term reports whether a file descriptor is an interactive
// terminal. The prompt loop uses it to stay quiet when input is piped.
//
// Detection asks the kernel for the descriptor's termios state; per-OS
// files supply the right ioctl request, and unsupported platforms
// conservatively report false.
package term
