package sound

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestPopEnvelope(t *testing.T) {
	p := Pop()
	if !approx(p.GainAt(0), 0.1, 1e-12) || !approx(p.GainAt(0.1), 0.01, 1e-12) {
		t.Fatalf("ganho inesperado: %v -> %v", p.GainAt(0), p.GainAt(0.1))
	}
	if !approx(p.FrequencyAt(0), 400, 1e-9) || !approx(p.FrequencyAt(0.1), 800, 1e-9) {
		t.Fatalf("frequência inesperada: %v -> %v", p.FrequencyAt(0), p.FrequencyAt(0.1))
	}
	// rampa exponencial: no meio a frequência é a média geométrica
	if !approx(p.FrequencyAt(0.05), 400*math.Sqrt2, 1e-6) {
		t.Errorf("meio da rampa = %v", p.FrequencyAt(0.05))
	}
	if p.GainAt(1) != 0.01 {
		t.Errorf("ganho após o fim deve ficar no valor final, got %v", p.GainAt(1))
	}
}

func TestSynthesizeLength(t *testing.T) {
	buf := Pop().Synthesize(SampleRate)
	if len(buf.Data) != 4410 {
		t.Fatalf("esperado 4410 amostras, got %d", len(buf.Data))
	}
	if buf.Format.NumChannels != 1 || buf.Format.SampleRate != SampleRate {
		t.Fatalf("formato inesperado: %+v", buf.Format)
	}
	if !approx(buf.Data[0], 0.1, 1e-12) {
		t.Errorf("primeira amostra = %v", buf.Data[0])
	}
	for i, v := range buf.Data {
		if math.Abs(v) > 0.1+1e-12 {
			t.Fatalf("amostra %d fora do envelope: %v", i, v)
		}
	}
	last := buf.Data[len(buf.Data)-1]
	if math.Abs(last) > 0.0101 {
		t.Errorf("última amostra deveria estar perto de 0.01, got %v", last)
	}
}

func TestSquareCrossings(t *testing.T) {
	tone := Tone{Wave: WaveSquare, StartFreq: 1000, EndFreq: 1000, StartGain: 1, EndGain: 1, Duration: Pop().Duration}
	buf := tone.Synthesize(SampleRate)
	flips := 0
	for i := 1; i < len(buf.Data); i++ {
		if buf.Data[i] != buf.Data[i-1] {
			flips++
		}
	}
	// 100 ciclos em 100ms, duas transições por ciclo
	if flips < 195 || flips > 200 {
		t.Errorf("transições = %d", flips)
	}
}

func TestStereoPan(t *testing.T) {
	mono := Pop().Synthesize(SampleRate)
	st := ToStereo(mono)
	if st.Format.NumChannels != 2 || len(st.Data) != 2*len(mono.Data) {
		t.Fatalf("estéreo inválido: %d canais, %d amostras", st.Format.NumChannels, len(st.Data))
	}
	if err := Pan(st, 0); err != nil {
		t.Fatal(err)
	}
	if st.Data[0] != mono.Data[0] || st.Data[1] != 0 {
		t.Errorf("pan total à esquerda: L=%v R=%v", st.Data[0], st.Data[1])
	}
	if err := Pan(mono, 0.5); err == nil {
		t.Error("pan em buffer mono deveria falhar")
	}
}

func TestPCM16(t *testing.T) {
	buf := ToStereo(Pop().Synthesize(SampleRate))
	buf.Data[0], buf.Data[1], buf.Data[2] = 2, -2, 0
	pcm := PCM16(buf)
	if len(pcm) != len(buf.Data)*2 {
		t.Fatalf("tamanho PCM = %d", len(pcm))
	}
	if pcm[0] != 0xff || pcm[1] != 0x7f {
		t.Errorf("saturação positiva: %x %x", pcm[0], pcm[1])
	}
	if pcm[2] != 0x01 || pcm[3] != 0x80 {
		t.Errorf("saturação negativa: %x %x", pcm[2], pcm[3])
	}
	if pcm[4] != 0 || pcm[5] != 0 {
		t.Errorf("zero: %x %x", pcm[4], pcm[5])
	}
}

func TestEncodeWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pop.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	buf := Pop().Synthesize(SampleRate)
	if err := EncodeWAV(f, buf); err != nil {
		t.Fatal(err)
	}
	f.Close()

	r, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		t.Fatal("arquivo WAV inválido")
	}
	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatal(err)
	}
	if dec.SampleRate != SampleRate || dec.NumChans != 1 || dec.BitDepth != 16 {
		t.Fatalf("cabeçalho: %d Hz, %d canais, %d bits", dec.SampleRate, dec.NumChans, dec.BitDepth)
	}
	if len(pcm.Data) != len(buf.Data) {
		t.Fatalf("amostras = %d, esperado %d", len(pcm.Data), len(buf.Data))
	}
	if want := toInt16(buf.Data[0]); pcm.Data[0] != want {
		t.Errorf("primeira amostra %d, esperado %d", pcm.Data[0], want)
	}
}

type fakePlayer struct {
	suspended bool
	resumeErr error
	playErr   error
	resumes   int
	plays     int
	channels  int
	frames    int
}

func (p *fakePlayer) Suspended() bool { return p.suspended }

func (p *fakePlayer) Resume() error {
	p.resumes++
	if p.resumeErr != nil {
		return p.resumeErr
	}
	p.suspended = false
	return nil
}

func (p *fakePlayer) Play(pcm []byte, sampleRate, channels int) error {
	p.plays++
	p.channels = channels
	p.frames = len(pcm) / 2 / channels
	return p.playErr
}

func TestTriggerResumesSuspended(t *testing.T) {
	p := &fakePlayer{suspended: true}
	tr := NewTrigger(p, Pop(), Options{Volume: 1})
	tr.Fire(0.5)
	if p.resumes != 1 || p.plays != 1 {
		t.Fatalf("resumes=%d plays=%d", p.resumes, p.plays)
	}
	if p.channels != 1 || p.frames != 4410 {
		t.Errorf("canais=%d quadros=%d", p.channels, p.frames)
	}
	tr.Fire(0.5)
	if p.resumes != 1 || p.plays != 2 {
		t.Errorf("segundo disparo: resumes=%d plays=%d", p.resumes, p.plays)
	}
}

func TestTriggerSwallowsErrors(t *testing.T) {
	p := &fakePlayer{suspended: true, resumeErr: errors.New("sem dispositivo")}
	tr := NewTrigger(p, Pop(), Options{Volume: 1})
	tr.Fire(0.5)
	if p.plays != 0 {
		t.Errorf("não deveria tocar com áudio suspenso")
	}

	p = &fakePlayer{playErr: errors.New("falhou")}
	NewTrigger(p, Pop(), Options{Volume: 1}).Fire(0.5)
	if p.plays != 1 {
		t.Errorf("plays=%d", p.plays)
	}

	NewTrigger(nil, Pop(), Options{Volume: 1}).Fire(0.5)
}

func TestTriggerMutedAndStereo(t *testing.T) {
	p := &fakePlayer{}
	NewTrigger(p, Pop(), Options{Muted: true, Volume: 1}).Fire(0.5)
	if p.plays != 0 {
		t.Fatal("mudo não deveria tocar")
	}

	tr := NewTrigger(p, Pop(), Options{Stereo: true, Volume: 0.5})
	buf := tr.Render(1)
	if buf.Format.NumChannels != 2 {
		t.Fatalf("canais = %d", buf.Format.NumChannels)
	}
	if buf.Data[0] != 0 || !approx(buf.Data[1], 0.05, 1e-12) {
		t.Errorf("pan à direita com volume 0.5: L=%v R=%v", buf.Data[0], buf.Data[1])
	}
	tr.Fire(3)
	if p.plays != 1 || p.channels != 2 {
		t.Errorf("plays=%d canais=%d", p.plays, p.channels)
	}
}

func TestTriggerVolume(t *testing.T) {
	tests := []struct {
		volume float64
		want   float64
	}{
		{0, 0},
		{-2, 0},
		{0.5, 0.05},
		{1, 0.1},
		{3, 0.1},
	}

	for _, tt := range tests {
		buf := NewTrigger(nil, Pop(), Options{Volume: tt.volume}).Render(0.5)
		if !approx(buf.Data[0], tt.want, 1e-12) {
			t.Errorf("volume %v: primeira amostra = %v, esperado %v", tt.volume, buf.Data[0], tt.want)
		}
	}

	silent := NewTrigger(nil, Pop(), Options{Volume: 0, Stereo: true}).Render(0.5)
	for i, v := range silent.Data {
		if v != 0 {
			t.Fatalf("volume 0 deveria silenciar, amostra %d = %v", i, v)
		}
	}
}

func TestCrush(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		want   float64
	}{
		{"desligado", 0, 0.1},
		{"abaixo do mínimo", 0.5, 0.1},
		{"passo de 0.25", 250000, 0.09375},
		{"acima do máximo", 1e9, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Pop().Synthesize(SampleRate)
			Crush(buf, tt.factor)
			if !approx(buf.Data[0], tt.want, 1e-9) {
				t.Errorf("Crush(%v): amostra = %v, esperado %v", tt.factor, buf.Data[0], tt.want)
			}
		})
	}
}
