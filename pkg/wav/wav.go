package wav

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// The speech API returns inline data as raw little-endian PCM
// ("audio/L16;codec=pcm;rate=24000"), mono 16-bit.
const (
	DefaultSampleRate = 24000
	DefaultChannels   = 1
	DefaultBitDepth   = 16
)

const headerSize = 44

// IsPCM reports whether a mime type carries raw L16 PCM that still needs a
// container before a browser can play it.
func IsPCM(mime string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mime)), "audio/l16")
}

// RateFromMime extracts the rate parameter from a mime type such as
// "audio/L16;codec=pcm;rate=24000". Missing or malformed parameters fall
// back to DefaultSampleRate.
func RateFromMime(mime string) int {
	for _, param := range strings.Split(mime, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || !strings.EqualFold(k, "rate") {
			continue
		}
		rate, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || rate <= 0 {
			break
		}
		return rate
	}
	return DefaultSampleRate
}

// Encode prepends a 44-byte RIFF/WAVE header to raw PCM samples.
func Encode(pcm []byte, sampleRate, channels, bitDepth int) []byte {
	out := make([]byte, headerSize, headerSize+len(pcm))
	copy(out[0:], "RIFF")
	binary.LittleEndian.PutUint32(out[4:], uint32(36+len(pcm)))
	copy(out[8:], "WAVE")
	copy(out[12:], "fmt ")
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], 1)
	binary.LittleEndian.PutUint16(out[22:], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(sampleRate*channels*bitDepth/8))
	binary.LittleEndian.PutUint16(out[32:], uint16(channels*bitDepth/8))
	binary.LittleEndian.PutUint16(out[34:], uint16(bitDepth))
	copy(out[36:], "data")
	binary.LittleEndian.PutUint32(out[40:], uint32(len(pcm)))
	return append(out, pcm...)
}
