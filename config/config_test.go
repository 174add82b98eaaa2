package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/spiral-carousel/carousel"
	"github.com/lixenwraith/spiral-carousel/gesture"
)

func TestDefaultIsValid(t *testing.T) {
	f := Default()
	require.NoError(t, f.Validate())

	assert.Equal(t, carousel.DefaultConfig(), f.Carousel())

	s, err := f.Settings()
	require.NoError(t, err)
	assert.Equal(t, gesture.DefaultSettings(), s)
}

func TestLoadEmptyPath(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), f)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spiral.toml")
	content := `
[spiral]
item_count = 12
item_spacing = 10.0

[gesture]
mode = "angular"
release = "momentum"
pinch = "live"

[momentum]
decay_rate = 4.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	f, err := Load(path)
	require.NoError(t, err)

	cc := f.Carousel()
	assert.Equal(t, 12, cc.ItemCount)
	assert.Equal(t, 10.0, cc.ItemSpacing)
	assert.Equal(t, Default().Spiral.InnerRadius, cc.InnerRadius, "untouched keys keep defaults")

	s, err := f.Settings()
	require.NoError(t, err)
	assert.Equal(t, gesture.DragAngular, s.Mode)
	assert.Equal(t, gesture.ReleaseMomentum, s.Release)
	assert.Equal(t, gesture.PinchLive, s.Pinch)
	assert.Equal(t, gesture.TopToBottom, s.Direction)
	assert.Equal(t, 4.5, s.DecayRate)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"syntax", "[spiral\nitem_count = 1"},
		{"unknown key", "[spiral]\nitem_cont = 5"},
		{"negative count", "[spiral]\nitem_count = -1"},
		{"zero spacing", "[spiral]\nitem_spacing = 0.0"},
		{"zoom bounds inverted", "[zoom]\nmin = 2\nmax = -2"},
		{"bad mode", "[gesture]\nmode = \"diagonal\""},
		{"bad pinch policy", "[gesture]\npinch = \"sometimes\""},
		{"pinch in above one", "[gesture]\npinch_in = 1.2"},
		{"live out below one", "[gesture]\npinch_live_out = 0.9"},
		{"zero horizon", "[gesture]\nflick_horizon = 0.0"},
		{"zero decay", "[momentum]\ndecay_rate = 0.0"},
		{"zero scale", "[view]\nscale_x = 0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Default()
			err := Parse(tt.text, &f)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestCarouselErrorsAreWrapped(t *testing.T) {
	f := Default()
	err := Parse("[spiral]\ninner_radius = -1.0", &f)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, carousel.ErrInvalidConfig)
}

func TestEncodeRoundTrip(t *testing.T) {
	text, err := Default().Encode()
	require.NoError(t, err)
	assert.Contains(t, text, "[spiral]")
	assert.Contains(t, text, "item_count = 100")

	var f File
	require.NoError(t, Parse(text, &f))
	assert.Equal(t, Default(), f)
}
