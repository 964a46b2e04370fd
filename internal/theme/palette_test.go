package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForSelectsPalette(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Light(), For(false))
	assert.Equal(t, Dark(), For(true))
	assert.NotEqual(t, For(false), For(true))
}

func TestPalettesAreComplete(t *testing.T) {
	t.Parallel()

	for _, p := range []Palette{Light(), Dark()} {
		require.NotEmpty(t, p.Name)
		for name, c := range map[string]string{
			"primary":        string(p.Primary),
			"background":     string(p.Background),
			"card":           string(p.Card),
			"text":           string(p.Text),
			"text_secondary": string(p.TextSecondary),
			"border":         string(p.Border),
			"success":        string(p.Success),
			"error":          string(p.Error),
			"warning":        string(p.Warning),
			"info":           string(p.Info),
		} {
			assert.NotEmpty(t, c, "%s palette missing %s", p.Name, name)
		}
	}
}

func TestToastStyleUsesSeverityColour(t *testing.T) {
	t.Parallel()

	styles := NewStyles(Light())

	assert.Equal(t, Light().Success, styles.Toast("success").GetBackground())
	assert.Equal(t, Light().Error, styles.Toast("error").GetBackground())
	assert.Equal(t, Light().Warning, styles.Toast("warning").GetBackground())
	assert.Equal(t, Light().Text, styles.Toast("info").GetBackground())
}
