package wizard

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDetector struct {
	binaries map[string]bool
	globs    map[string][]string
}

func (f fakeDetector) LookPath(name string) (string, error) {
	if f.binaries[name] {
		return "/usr/bin/" + name, nil
	}
	return "", errors.New("not found")
}

func (f fakeDetector) Stat(path string) (os.FileInfo, error) {
	return nil, os.ErrNotExist
}

func (f fakeDetector) Glob(pattern string) ([]string, error) {
	return f.globs[pattern], nil
}

func TestDetectFindsLogsAndD2(t *testing.T) {
	d := fakeDetector{
		binaries: map[string]bool{"d2": true},
		globs: map[string][]string{
			"inputfile/lssea*log": {"inputfile/lssea_vios1a.log", "inputfile/lssea_vios1b.log"},
		},
	}

	result := Detect(d)

	assert.True(t, result.D2Available)
	assert.Equal(t, "inputfile", result.LogDir)
	assert.Len(t, result.LogFiles, 2)
}

func TestDetectPrefersCurrentDir(t *testing.T) {
	d := fakeDetector{
		globs: map[string][]string{
			"lssea*log":           {"lssea_vios1a.log"},
			"inputfile/lssea*log": {"inputfile/lssea_vios1b.log"},
		},
	}

	result := Detect(d)

	assert.Equal(t, ".", result.LogDir)
	assert.Equal(t, []string{"lssea_vios1a.log"}, result.LogFiles)
}

func TestDetectNothingFound(t *testing.T) {
	result := Detect(fakeDetector{})

	assert.False(t, result.D2Available)
	assert.Empty(t, result.LogDir)
	assert.Empty(t, result.LogFiles)
}
