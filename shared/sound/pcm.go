package sound

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/transforms"
	"github.com/go-audio/wav"
)

const bitDepth = 16

// ToStereo duplica um buffer mono em dois canais intercalados.
func ToStereo(buf *audio.FloatBuffer) *audio.FloatBuffer {
	out := make([]float64, 0, len(buf.Data)*2)
	for _, v := range buf.Data {
		out = append(out, v, v)
	}
	return &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 2, SampleRate: buf.Format.SampleRate},
		Data:   out,
	}
}

// Pan aplica balanço estéreo (0 = esquerda, 0.5 = centro, 1 = direita).
func Pan(buf *audio.FloatBuffer, pan float64) error {
	return transforms.StereoPan(buf, pan)
}

// Crush reduz a resolução das amostras (efeito lo-fi). Fatores abaixo do mínimo são ignorados.
func Crush(buf *audio.FloatBuffer, factor float64) {
	if factor < transforms.CrusherMinFactor {
		return
	}
	if factor > transforms.CrusherMaxFactor {
		factor = transforms.CrusherMaxFactor
	}
	transforms.BitCrush(buf, factor)
}

func toInt16(v float64) int {
	v = math.Max(-1, math.Min(1, v))
	return int(math.Round(v * math.MaxInt16))
}

// ToIntBuffer converte amostras [-1,1] para inteiros de 16 bits.
func ToIntBuffer(buf *audio.FloatBuffer) *audio.IntBuffer {
	data := make([]int, len(buf.Data))
	for i, v := range buf.Data {
		data[i] = toInt16(v)
	}
	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: buf.Format.NumChannels, SampleRate: buf.Format.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
}

// PCM16 serializa as amostras em little-endian de 16 bits.
func PCM16(buf *audio.FloatBuffer) []byte {
	out := make([]byte, len(buf.Data)*2)
	for i, v := range buf.Data {
		s := uint16(int16(toInt16(v)))
		out[i*2] = byte(s)
		out[i*2+1] = byte(s >> 8)
	}
	return out
}

// EncodeWAV grava o buffer como WAV PCM de 16 bits.
func EncodeWAV(w io.WriteSeeker, buf *audio.FloatBuffer) error {
	if buf == nil || buf.Format == nil {
		return audio.ErrInvalidBuffer
	}
	enc := wav.NewEncoder(w, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, 1)
	if err := enc.Write(ToIntBuffer(buf)); err != nil {
		return fmt.Errorf("falha ao escrever amostras WAV: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("falha ao finalizar WAV: %w", err)
	}
	return nil
}
