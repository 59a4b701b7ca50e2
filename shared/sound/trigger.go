package sound

import (
	"log"
	"math"

	"github.com/go-audio/audio"
)

// Player é o dispositivo de saída de áudio fornecido pelo host.
type Player interface {
	// Suspended informa se o contexto de áudio ainda não está ativo.
	Suspended() bool
	// Resume (re)ativa o contexto de áudio.
	Resume() error
	// Play toca amostras PCM 16 bits intercaladas.
	Play(pcm []byte, sampleRate, channels int) error
}

// Options ajusta o disparo do som.
type Options struct {
	Muted    bool
	Volume   float64 // multiplicador em [0,1] sobre o ganho do tom; 0 silencia
	Stereo   bool    // posiciona o som conforme a posição do diamante
	BitCrush float64 // 0 desativa
}

// Trigger sintetiza e toca um tom sob demanda, independente do loop de render.
type Trigger struct {
	player Player
	opts   Options
	mono   *audio.FloatBuffer
}

// NewTrigger pré-sintetiza o tom. player pode ser nil (sem saída de áudio).
func NewTrigger(player Player, tone Tone, opts Options) *Trigger {
	opts.Volume = math.Max(0, math.Min(1, opts.Volume))
	return &Trigger{
		player: player,
		opts:   opts,
		mono:   tone.Synthesize(SampleRate),
	}
}

// Render gera o buffer final para um balanço estéreo em [0,1].
func (t *Trigger) Render(pan float64) *audio.FloatBuffer {
	buf := &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: t.mono.Format.SampleRate},
		Data:   make([]float64, len(t.mono.Data)),
	}
	for i, v := range t.mono.Data {
		buf.Data[i] = v * t.opts.Volume
	}

	if t.opts.Stereo {
		buf = ToStereo(buf)
		if pan < 0 {
			pan = 0
		}
		if pan > 1 {
			pan = 1
		}
		if err := Pan(buf, pan); err != nil {
			log.Printf("[Audio] Falha ao aplicar balanço estéreo: %v", err)
		}
	}
	Crush(buf, t.opts.BitCrush)
	return buf
}

// Fire toca o tom uma vez. Falhas do dispositivo são registradas e ignoradas.
func (t *Trigger) Fire(pan float64) {
	if t.opts.Muted || t.player == nil {
		return
	}

	if t.player.Suspended() {
		if err := t.player.Resume(); err != nil {
			log.Printf("[Audio] Não foi possível ativar o áudio: %v", err)
		}
		if t.player.Suspended() {
			return
		}
	}

	buf := t.Render(pan)
	if err := t.player.Play(PCM16(buf), buf.Format.SampleRate, buf.Format.NumChannels); err != nil {
		log.Printf("[Audio] Falha ao tocar som: %v", err)
	}
}
