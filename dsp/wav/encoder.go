package wav

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-noise/dsp/buffer"
	"github.com/cwbudde/algo-noise/dsp/core"
)

const (
	// HeaderSize is the length of the RIFF, fmt and data chunk headers.
	HeaderSize = 44

	channels      = 2
	bitsPerSample = 16
	blockAlign    = channels * bitsPerSample / 8
	formatPCM     = 1

	maxDataBytes = math.MaxUint32 - (HeaderSize - 8)
)

type header struct {
	RIFF          [4]byte
	ChunkSize     uint32
	WAVE          [4]byte
	Fmt           [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Data          [4]byte
	DataSize      uint32
}

func newHeader(frames, sampleRate int) header {
	dataSize := uint32(frames * blockAlign)
	return header{
		RIFF:          [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     HeaderSize - 8 + dataSize,
		WAVE:          [4]byte{'W', 'A', 'V', 'E'},
		Fmt:           [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		AudioFormat:   formatPCM,
		NumChannels:   channels,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * blockAlign),
		BlockAlign:    blockAlign,
		BitsPerSample: bitsPerSample,
		Data:          [4]byte{'d', 'a', 't', 'a'},
		DataSize:      dataSize,
	}
}

// PCM16 converts a float sample to a signed 16-bit value. The input is
// clamped to [-1, 1]; negative values scale by 32768 and non-negative
// values by 32767, rounding to nearest. NaN encodes as 0.
func PCM16(v float64) int16 {
	if v != v {
		return 0
	}
	v = core.Clamp(v, -1, 1)
	if v < 0 {
		return int16(math.Round(v * 32768))
	}
	return int16(math.Round(v * 32767))
}

// Size returns the encoded size in bytes of frames stereo frames.
func Size(frames int) int {
	return HeaderSize + frames*blockAlign
}

// Encode writes buf as a 16-bit stereo WAV stream at sampleRate.
func Encode(w io.Writer, buf *buffer.Stereo, sampleRate int) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	if sampleRate <= 0 || sampleRate > math.MaxUint32/blockAlign {
		return fmt.Errorf("wav sample rate out of range: %d: %w", sampleRate, core.ErrInvalidParameter)
	}
	frames := buf.Frames()
	if uint64(frames)*blockAlign > maxDataBytes {
		return fmt.Errorf("wav data of %d frames exceeds the RIFF size limit: %w", frames, core.ErrInvalidBuffer)
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, newHeader(frames, sampleRate)); err != nil {
		return fmt.Errorf("wav header: %w", err)
	}

	var frame [blockAlign]byte
	for i := 0; i < frames; i++ {
		binary.LittleEndian.PutUint16(frame[0:], uint16(PCM16(buf.Left[i])))
		binary.LittleEndian.PutUint16(frame[2:], uint16(PCM16(buf.Right[i])))
		if _, err := bw.Write(frame[:]); err != nil {
			return fmt.Errorf("wav data: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("wav flush: %w", err)
	}
	return nil
}

// EncodeBytes returns buf encoded as a complete WAV file.
func EncodeBytes(buf *buffer.Stereo, sampleRate int) ([]byte, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	out.Grow(Size(buf.Frames()))
	if err := Encode(&out, buf, sampleRate); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
