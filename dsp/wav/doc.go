// Package wav encodes stereo float buffers as 16-bit PCM RIFF/WAVE data.
//
// The output is always the canonical 44-byte header followed by
// interleaved little-endian samples, which every common decoder accepts.
package wav
