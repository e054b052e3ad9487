package sound

import (
	"bytes"
	"encoding/binary"
	"testing"
	"testing/fstest"
	"time"
)

type recorder struct {
	played []string
}

func (r *recorder) Play(cue string) { r.played = append(r.played, cue) }

func TestSwitchboard(t *testing.T) {
	out := &recorder{}
	s := NewSwitchboard(out)

	s.Play("data/jet-start.wav")
	s.SetMuted(true)
	s.Play("data/jet-cabin.wav")
	s.Play("data/jet-cabin.wav")
	s.SetMuted(false)
	s.Play("data/jet-stop.wav")

	if len(out.played) != 2 || out.played[0] != "data/jet-start.wav" || out.played[1] != "data/jet-stop.wav" {
		t.Fatalf("forwarded = %v, want start and stop only", out.played)
	}
	if got := s.Count("data/jet-cabin.wav"); got != 2 {
		t.Fatalf("Count(cabin) = %d, want 2", got)
	}
	if s.Total() != 4 {
		t.Fatalf("Total() = %d, want 4", s.Total())
	}
	if s.Muted() {
		t.Fatal("Muted() = true after unmuting")
	}
}

func TestAtlasWithoutContext(t *testing.T) {
	a := NewAtlas(nil, fstest.MapFS{}, 1, "data/jet-start.wav")
	a.Play("data/jet-start.wav")
	a.Play("data/explosion.wav")

	if len(a.players) != 0 || len(a.next) != 0 {
		t.Fatalf("atlas without context loaded %d cues", len(a.players))
	}
}

func TestReadCue(t *testing.T) {
	stored := synthWAV(SampleRate, 50, 440)
	fsys := fstest.MapFS{"data/jet-start.wav": {Data: stored}}

	tests := []struct {
		name string
		cue  string
		want []byte
	}{
		{name: "present", cue: "data/jet-start.wav", want: stored},
		{name: "missing", cue: "data/jet-stop.wav", want: synthWAV(SampleRate, fallbackMillis, fallbackTone("data/jet-stop.wav"))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := readCue(fsys, tc.cue)
			if !bytes.Equal(got, tc.want) {
				t.Fatalf("readCue(%s) returned %d bytes, want %d", tc.cue, len(got), len(tc.want))
			}
		})
	}
}

func TestDecodeCue(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantMin int
		wantMax int
	}{
		{name: "native rate", data: synthWAV(SampleRate, 100, 440), wantMin: SampleRate / 10, wantMax: SampleRate / 10},
		{name: "resampled", data: synthWAV(SampleRate/2, 100, 440), wantMin: SampleRate/10 - 50, wantMax: SampleRate/10 + 50},
		{name: "missing cue", data: readCue(fstest.MapFS{}, "data/explosion.wav"), wantMin: SampleRate * fallbackMillis / 1000, wantMax: SampleRate * fallbackMillis / 1000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := decodeCue(tc.data)
			if err != nil {
				t.Fatalf("decodeCue() error = %v", err)
			}
			if b.Len() < tc.wantMin || b.Len() > tc.wantMax {
				t.Fatalf("decodeCue().Len() = %d, want within [%d, %d]", b.Len(), tc.wantMin, tc.wantMax)
			}
		})
	}

	if _, err := decodeCue([]byte("not a wav file")); err == nil {
		t.Fatal("decodeCue(garbage) error = nil")
	}
}

func TestToneBuffer(t *testing.T) {
	b := toneBuffer(fallbackTone("data/jet-cabin.wav"))
	if want := speakerRate.N(fallbackMillis * time.Millisecond); b.Len() != want {
		t.Fatalf("toneBuffer().Len() = %d, want %d", b.Len(), want)
	}
}

func TestSynthWAV(t *testing.T) {
	b := synthWAV(SampleRate, 100, 440)

	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" || string(b[36:40]) != "data" {
		t.Fatalf("bad header %q", b[:44])
	}
	if got := binary.LittleEndian.Uint32(b[24:28]); got != SampleRate {
		t.Fatalf("sample rate = %d, want %d", got, SampleRate)
	}
	wantData := SampleRate / 10 * 2
	if got := binary.LittleEndian.Uint32(b[40:44]); int(got) != wantData || len(b) != 44+wantData {
		t.Fatalf("data size = %d (len %d), want %d", got, len(b), wantData)
	}
}

func TestFallbackTone(t *testing.T) {
	for _, cue := range []string{"data/jet-start.wav", "data/jet-stop.wav", "data/explosion.wav"} {
		f := fallbackTone(cue)
		if f < 220 || f > 990 {
			t.Errorf("fallbackTone(%s) = %v, want within [220, 990]", cue, f)
		}
		if f != fallbackTone(cue) {
			t.Errorf("fallbackTone(%s) not stable", cue)
		}
	}
}
