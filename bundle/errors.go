package bundle

import (
	"fmt"
	"strings"
)

type MissingBundleError struct {
	BundlePath string
}

func (e *MissingBundleError) Error() string {
	return fmt.Sprintf("program does not exist: %s", e.BundlePath)
}

type MissingManifestError struct {
	BundlePath string
}

func (e *MissingManifestError) Error() string {
	return fmt.Sprintf("bundle %s does not exist: %s", ManifestName, e.BundlePath)
}

type ManifestInvalidEncodingError struct {
	BundlePath string
}

func (e *ManifestInvalidEncodingError) Error() string {
	return fmt.Sprintf("bundle %s not encoded in UTF-8: %s", ManifestName, e.BundlePath)
}

type ManifestInvalidJSONError struct {
	BundlePath    string
	InternalError error
}

func (e *ManifestInvalidJSONError) Error() string {
	return fmt.Sprintf("bundle %s contains invalid JSON: %s: %s", ManifestName, e.BundlePath, e.InternalError)
}

type ManifestValidationError struct {
	BundlePath    string
	ErrorMessages []string
}

func (e *ManifestValidationError) Error() string {
	return fmt.Sprintf("bundle %s is invalid: %s: %s", ManifestName, e.BundlePath, strings.Join(e.ErrorMessages, ", "))
}

type MissingProgramError struct {
	BundlePath string
	Program    string
}

func (e *MissingProgramError) Error() string {
	return fmt.Sprintf("bundle program does not exist: %s", e.Program)
}
