package wizard

import (
	"os"
	"os/exec"
	"path/filepath"
)

// DetectionResult holds what was auto-detected on the system.
type DetectionResult struct {
	D2Available bool
	LogDir      string   // first directory containing lssea logs, empty otherwise
	LogFiles    []string // matching files found in LogDir
}

// Detector abstracts filesystem and path lookups for testing.
type Detector interface {
	LookPath(name string) (string, error)
	Stat(path string) (os.FileInfo, error)
	Glob(pattern string) ([]string, error)
}

// OSDetector uses the real OS for detection.
type OSDetector struct{}

func (OSDetector) LookPath(name string) (string, error)  { return exec.LookPath(name) }
func (OSDetector) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }
func (OSDetector) Glob(pattern string) ([]string, error) { return filepath.Glob(pattern) }

// Detect scans the environment for lssea logs and the d2 renderer.
func Detect(d Detector) DetectionResult {
	if d == nil {
		d = OSDetector{}
	}

	result := DetectionResult{}

	// Check for the d2 binary
	if _, err := d.LookPath("d2"); err == nil {
		result.D2Available = true
	}

	// Look for lssea logs in the usual capture directories
	candidateDirs := []string{
		".",
		"inputfile",
		"logs",
		"lssea",
	}
	for _, dir := range candidateDirs {
		files, err := d.Glob(filepath.Join(dir, "lssea*log"))
		if err != nil || len(files) == 0 {
			continue
		}
		result.LogDir = dir
		result.LogFiles = files
		break
	}

	return result
}
