package sound

import (
	"math"
	"time"

	"github.com/go-audio/audio"
)

// SampleRate é a taxa de amostragem padrão do sintetizador.
const SampleRate = 44100

// Waveform é a forma de onda do oscilador.
type Waveform int

// WaveSquare é a onda quadrada usada pelo pop.
const WaveSquare Waveform = iota

// Tone descreve um bipe curto com rampas exponenciais de frequência e ganho.
type Tone struct {
	Wave      Waveform
	StartFreq float64
	EndFreq   float64
	StartGain float64
	EndGain   float64
	Duration  time.Duration
}

// Pop é o "pop" 8-bit tocado ao criar um diamante pelo botão.
func Pop() Tone {
	return Tone{
		Wave:      WaveSquare,
		StartFreq: 400,
		EndFreq:   800,
		StartGain: 0.1,
		EndGain:   0.01,
		Duration:  100 * time.Millisecond,
	}
}

// expRamp interpola exponencialmente de a até b com progresso p em [0,1].
func expRamp(a, b, p float64) float64 {
	if p <= 0 {
		return a
	}
	if p >= 1 {
		return b
	}
	return a * math.Pow(b/a, p)
}

func (t Tone) progress(sec float64) float64 {
	d := t.Duration.Seconds()
	if d <= 0 {
		return 1
	}
	return sec / d
}

// FrequencyAt retorna a frequência instantânea em Hz.
func (t Tone) FrequencyAt(sec float64) float64 {
	return expRamp(t.StartFreq, t.EndFreq, t.progress(sec))
}

// GainAt retorna o ganho do envelope.
func (t Tone) GainAt(sec float64) float64 {
	return expRamp(t.StartGain, t.EndGain, t.progress(sec))
}

// Synthesize gera o tom em mono. O oscilador acumula fase, então a varredura é contínua.
func (t Tone) Synthesize(sampleRate int) *audio.FloatBuffer {
	frames := int(t.Duration.Seconds() * float64(sampleRate))
	data := make([]float64, frames)

	phase := 0.0
	for i := range data {
		sec := float64(i) / float64(sampleRate)

		v := 1.0
		if phase >= 0.5 {
			v = -1
		}
		data[i] = v * t.GainAt(sec)

		phase += t.FrequencyAt(sec) / float64(sampleRate)
		phase -= math.Floor(phase)
	}

	return &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:   data,
	}
}
