package notify

import (
	"bytes"
	"context"
	"encoding/binary"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/saltandflour/doughlab/internal/domain"
	"github.com/saltandflour/doughlab/internal/logger"
)

// Audio format for the generated chime.
const (
	sampleRate   = 44100
	channelCount = 1
)

var _ domain.Notifier = (*ChimeNotifier)(nil)

// ChimeNotifier decorates another notifier with an audible chime on urgent
// notifications. Normal notifications pass through silently.
type ChimeNotifier struct {
	inner domain.Notifier
	ctx   *oto.Context
	pcm   []byte
	log   *logger.Logger
}

// NewChimeNotifier creates a chime decorator around inner. Initializes the
// system audio context; returns an error if the audio device is unavailable,
// in which case callers should fall back to inner alone.
func NewChimeNotifier(inner domain.Notifier, log *logger.Logger) (*ChimeNotifier, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	log.Debug("chime audio initialized (rate=%d, channels=%d)", sampleRate, channelCount)
	return &ChimeNotifier{
		inner: inner,
		ctx:   ctx,
		pcm:   chimePCM(),
		log:   log,
	}, nil
}

// Notify delegates to the inner notifier without sound.
func (n *ChimeNotifier) Notify(ctx context.Context, message string) error {
	return n.inner.Notify(ctx, message)
}

// NotifyUrgent plays the chime and delegates. Playback runs in the
// background so the caller is never blocked on the audio device.
func (n *ChimeNotifier) NotifyUrgent(ctx context.Context, message string) error {
	go n.play()
	return n.inner.NotifyUrgent(ctx, message)
}

// play renders the chime synchronously.
func (n *ChimeNotifier) play() {
	player := n.ctx.NewPlayer(bytes.NewReader(n.pcm))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	if err := player.Close(); err != nil {
		n.log.Error("chime: closing player: %v", err)
	}
}

// chimePCM generates the alert sound: two short 880 Hz beeps with a gap,
// signed 16-bit little-endian mono PCM.
func chimePCM() []byte {
	const (
		freq      = 880.0
		beepLen   = 250 * time.Millisecond
		gapLen    = 120 * time.Millisecond
		amplitude = 0.35
	)

	beepSamples := int(beepLen.Milliseconds()) * sampleRate / 1000
	gapSamples := int(gapLen.Milliseconds()) * sampleRate / 1000

	buf := make([]byte, 0, (2*beepSamples+gapSamples)*2)
	appendSample := func(v float64) {
		s := int16(v * math.MaxInt16)
		buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
	}

	for beep := 0; beep < 2; beep++ {
		for i := 0; i < beepSamples; i++ {
			// Short linear fade at both ends avoids clicks.
			env := 1.0
			const fade = 800
			if i < fade {
				env = float64(i) / fade
			} else if beepSamples-i < fade {
				env = float64(beepSamples-i) / fade
			}
			appendSample(amplitude * env * math.Sin(2*math.Pi*freq*float64(i)/sampleRate))
		}
		if beep == 0 {
			for i := 0; i < gapSamples; i++ {
				appendSample(0)
			}
		}
	}
	return buf
}
