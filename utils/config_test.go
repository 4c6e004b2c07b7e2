package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArchitecture(t *testing.T) {
	arch, err := ParseArchitecture(" 2  3 2 ")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 2}, arch)

	arch, err = ParseArchitecture("")
	require.NoError(t, err)
	assert.Empty(t, arch)

	_, err = ParseArchitecture("2 x 2")
	assert.Error(t, err)
}

func TestFormatArchitecture(t *testing.T) {
	assert.Equal(t, "4 8 1", FormatArchitecture([]int{4, 8, 1}))
	assert.Equal(t, "", FormatArchitecture(nil))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Architecture: []int{2, 3, 2}, Width: 6, Height: 4}, false},
		{"single layer", Config{Architecture: []int{4}, Width: 6, Height: 4}, false},
		{"no layers", Config{Width: 6, Height: 4}, true},
		{"zero width", Config{Architecture: []int{1}, Height: 4}, true},
		{"negative height", Config{Architecture: []int{1}, Width: 6, Height: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DNNKIT_LAYERS", "2 3 2")
	t.Setenv("DNNKIT_SEED", "7")
	t.Setenv("DNNKIT_SHOW", "false")
	t.Setenv("DNNKIT_SAVE_ARCH", "arch.json")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 2}, cfg.Architecture)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.False(t, cfg.Show)
	assert.Equal(t, 6.4, cfg.Width)
	assert.Equal(t, 4.8, cfg.Height)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "arch.json", cfg.SaveArch)
}

func TestLoadConfigFromEnvBadSeed(t *testing.T) {
	t.Setenv("DNNKIT_SEED", "forty-two")

	_, err := LoadConfigFromEnv()
	assert.Error(t, err)
}
