package branding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedValues(t *testing.T) {
	assert.Equal(t, "zygokit", CLIName())
	assert.Equal(t, "ZygoKit", DisplayName())
	assert.Equal(t, ".zygokit", HomeDir())
	assert.Equal(t, "ZYGOKIT_RUNNER", EnvVar("runner"))
	assert.Equal(t, "github.com/nogeniuss/ZygoKit", GoModule())
	assert.Equal(t, "https://github.com/nogeniuss/ZygoKit", RepoURL())
}

func TestBanner(t *testing.T) {
	b := Banner()
	lines := strings.Split(strings.TrimSuffix(b, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[1], "ZYGOKIT")
	assert.Contains(t, lines[2], Description())
	assert.True(t, strings.HasPrefix(lines[0], "╔"))
}
