package game

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/phanxgames/pong"
)

const sampleRate = 44100

// tone renders a sine blip with a linear decay as 16-bit little-endian
// stereo PCM, the format audio.Context.NewPlayerFromBytes expects.
func tone(freq, seconds, volume float64) []byte {
	n := int(seconds * sampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * volume * env
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[4*i:], s)
		binary.LittleEndian.PutUint16(buf[4*i+2:], s)
	}
	return buf
}

// sounds plays short synthesized blips for gameplay events.
type sounds struct {
	ctx    *audio.Context
	bounce []byte
	hit    []byte
	goal   []byte
}

func newSounds() *sounds {
	return &sounds{
		ctx:    audio.NewContext(sampleRate),
		bounce: tone(330, 0.05, 0.25),
		hit:    tone(660, 0.07, 0.3),
		goal:   tone(196, 0.35, 0.35),
	}
}

// pcmFor returns the clip for an event kind.
func (s *sounds) pcmFor(kind pong.EventKind) []byte {
	switch kind {
	case pong.EventWallBounce:
		return s.bounce
	case pong.EventPaddleHit:
		return s.hit
	case pong.EventGoal:
		return s.goal
	}
	return nil
}

func (s *sounds) play(kind pong.EventKind) {
	pcm := s.pcmFor(kind)
	if pcm == nil {
		return
	}
	s.ctx.NewPlayerFromBytes(pcm).Play()
}
