// Package player sends a rendering session to the system audio device.
//
// Stream adapts any block source to the interleaved float32 byte stream
// the device pulls from; Player owns the device context.
package player
