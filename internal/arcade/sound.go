package arcade

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies different sound effects.
type SoundKind int

const (
	SoundLaunch SoundKind = iota
	SoundPaddle
	SoundBrick
	SoundBreak
	SoundMerge
)

// Sound owns the audio device. A nil *Sound is a valid silent sink, so the
// game keeps running when the device fails to open.
type Sound struct {
	ctx   *oto.Context
	ready chan struct{}
}

func NewSound() (*Sound, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return nil, err
	}
	return &Sound{ctx: ctx, ready: ready}, nil
}

// Play fires a procedurally generated effect and returns immediately.
func (s *Sound) Play(kind SoundKind) {
	if s == nil {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := s.ctx.NewPlayer(reader)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundLaunch:
		return genLaunch()
	case SoundPaddle:
		return genPaddle()
	case SoundBrick:
		return genBrick()
	case SoundBreak:
		return genBreak()
	case SoundMerge:
		return genMerge()
	}
	return nil
}

// genLaunch: rising chirp.
func genLaunch() []byte {
	n := int(0.12 * sampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.4, 0.1, 0.2)
		freq := 300 + 900*p
		s := fm(t, freq, 2.0, 2.0*env) * env * 0.4
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genPaddle: short rubbery thwack.
func genPaddle() []byte {
	n := int(0.07 * sampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 9)
		s := fm(t, 220, 0.5, 1.5) * env * 0.5
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genBrick: bright clink.
func genBrick() []byte {
	n := int(0.06 * sampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.005, 0.5, 0.0, 0.15)
		s := fm(t, 880, 3.0, 1.2*env) * env * 0.35
		s += math.Sin(2*math.Pi*880*2*t) * env * 0.08
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genBreak: crunchy noise burst over a falling tone.
func genBreak() []byte {
	n := int(0.18 * sampleRate)
	buf := makeBuf(n)
	seed := uint64(77777)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 6)
		lp = lp*0.8 + lcg(&seed)*0.2
		tone := fm(t, 320-200*p, 1.0, 1.0) * 0.4
		s := (lp*0.5 + tone) * env
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genMerge: two-note upward blip.
func genMerge() []byte {
	freqs := []float64{523.25, 783.99} // C5 G5
	noteLen := sampleRate * 60 / 1000
	tail := int(0.1 * sampleRate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)
	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / sampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.005, 0.5, 0.05, 0.3)
			mix[start+j] += fm(t, freq, 2.0, 3.0*env) * env * 0.35
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
