package bundle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/bfkit/bfrt/program"
	"github.com/blang/semver"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ManifestName is the file a bundle directory must contain.
const ManifestName = "program.json"

// VersionMajor is the manifest schema version this loader handles.
const VersionMajor = 1

type Manifest struct {
	Version        string `json:"version"`
	Program        string `json:"program"`
	TapeSize       int    `json:"tapeSize,omitempty"`
	MemoryOverflow string `json:"memoryOverflow,omitempty"`
	Optimize       *bool  `json:"optimize,omitempty"`
}

// Defaults fill in whatever a manifest leaves unset. A bare source file
// is loaded with the defaults as-is.
type Defaults struct {
	TapeSize int
	Overflow program.OverflowMode
	Optimize bool
}

type Program struct {
	Source   []byte
	TapeSize int
	Overflow program.OverflowMode
	Optimize bool
}

type Loader struct{}

// Load reads a program from path. A directory is treated as a bundle
// with a program.json manifest; anything else is read as Brainfuck
// source directly.
func (Loader) Load(logger *logrus.Entry, path string, defaults Defaults) (*Program, error) {
	logger.Debug("loading program")

	info, err := os.Stat(path)
	if err != nil {
		return nil, &MissingBundleError{BundlePath: path}
	}

	if !info.IsDir() {
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading program %s", path)
		}
		return &Program{
			Source:   source,
			TapeSize: defaults.TapeSize,
			Overflow: defaults.Overflow,
			Optimize: defaults.Optimize,
		}, nil
	}

	return loadBundle(logger, path, defaults)
}

func loadBundle(logger *logrus.Entry, bundlePath string, defaults Defaults) (*Program, error) {
	logger.Debug("validating program manifest")

	content, err := os.ReadFile(filepath.Join(bundlePath, ManifestName))
	if err != nil {
		return nil, &MissingManifestError{BundlePath: bundlePath}
	}
	if !utf8.Valid(content) {
		return nil, &ManifestInvalidEncodingError{BundlePath: bundlePath}
	}
	var manifest Manifest
	if err := json.Unmarshal(content, &manifest); err != nil {
		return nil, &ManifestInvalidJSONError{BundlePath: bundlePath, InternalError: err}
	}

	prog := &Program{
		TapeSize: defaults.TapeSize,
		Overflow: defaults.Overflow,
		Optimize: defaults.Optimize,
	}

	msgs := []string{}
	msgs = append(msgs, checkSemVer(manifest.Version)...)

	if manifest.Program == "" {
		msgs = append(msgs, "program must not be empty")
	}

	if manifest.TapeSize != 0 {
		if manifest.TapeSize < 0 {
			msgs = append(msgs, fmt.Sprintf("tapeSize %d must be positive", manifest.TapeSize))
		} else {
			prog.TapeSize = manifest.TapeSize
		}
	}

	if manifest.MemoryOverflow != "" {
		mode, err := program.ParseOverflowMode(manifest.MemoryOverflow)
		if err != nil {
			msgs = append(msgs, err.Error())
		} else {
			prog.Overflow = mode
		}
	}

	if manifest.Optimize != nil {
		prog.Optimize = *manifest.Optimize
	}

	if len(msgs) > 0 {
		for _, m := range msgs {
			logger.WithField("manifestError", m).Error(fmt.Sprintf("error in bundle %s", ManifestName))
		}
		return nil, &ManifestValidationError{BundlePath: bundlePath, ErrorMessages: msgs}
	}

	source, err := os.ReadFile(filepath.Join(bundlePath, manifest.Program))
	if err != nil {
		return nil, &MissingProgramError{BundlePath: bundlePath, Program: manifest.Program}
	}
	prog.Source = source

	return prog, nil
}

func checkSemVer(version string) []string {
	parsedVersion, err := semver.Parse(version)
	if err != nil {
		return []string{fmt.Sprintf("%q is not a valid SemVer: %s", version, err.Error())}
	}
	if parsedVersion.Major != VersionMajor {
		return []string{fmt.Sprintf("validate currently only handles version %d.*, but the supplied manifest targets %s", VersionMajor, version)}
	}

	return []string{}
}
