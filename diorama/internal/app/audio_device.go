package app

import (
	"errors"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var errAudioUnavailable = errors.New("dispositivo de áudio indisponível")

// AudioDevice implementa sound.Player sobre o áudio do Raylib.
// O dispositivo só é aberto no primeiro som, como um contexto de áudio suspenso.
type AudioDevice struct {
	playing []rl.Sound
}

// NewAudioDevice cria o dispositivo ainda suspenso.
func NewAudioDevice() *AudioDevice {
	return &AudioDevice{}
}

// Suspended informa se o dispositivo ainda não foi aberto.
func (d *AudioDevice) Suspended() bool {
	return !rl.IsAudioDeviceReady()
}

// Resume abre o dispositivo de áudio.
func (d *AudioDevice) Resume() error {
	if rl.IsAudioDeviceReady() {
		return nil
	}
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		return errAudioUnavailable
	}
	log.Println("[Audio] Dispositivo de áudio ativado")
	return nil
}

// Play carrega as amostras num Sound e toca imediatamente.
func (d *AudioDevice) Play(pcm []byte, sampleRate, channels int) error {
	if !rl.IsAudioDeviceReady() {
		return errAudioUnavailable
	}
	if channels <= 0 || len(pcm) == 0 {
		return nil
	}

	frames := len(pcm) / 2 / channels
	wave := rl.NewWave(uint32(frames), uint32(sampleRate), 16, uint32(channels), pcm)
	snd := rl.LoadSoundFromWave(wave)
	rl.PlaySound(snd)
	d.playing = append(d.playing, snd)
	return nil
}

// Reap libera os sons que já terminaram.
func (d *AudioDevice) Reap() {
	kept := d.playing[:0]
	for _, snd := range d.playing {
		if rl.IsSoundPlaying(snd) {
			kept = append(kept, snd)
			continue
		}
		rl.UnloadSound(snd)
	}
	d.playing = kept
}

// Close libera os sons e fecha o dispositivo, se aberto.
func (d *AudioDevice) Close() {
	for _, snd := range d.playing {
		rl.UnloadSound(snd)
	}
	d.playing = nil
	if rl.IsAudioDeviceReady() {
		rl.CloseAudioDevice()
	}
}
