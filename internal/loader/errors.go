package loader

import "fmt"

// MissingFileError is returned when a variant's credential file is absent.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("missing required file %q, it must exist before the firmware can be built", e.Path)
}

// MissingConfigError is returned when a mandatory key resolves to nothing
// after the settings file and the environment have been merged.
type MissingConfigError struct {
	Key string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("unable to find %q in environment or settings file", e.Key)
}
