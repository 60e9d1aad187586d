// Package fs provides file-based storage for session attributes.
package fs

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/cookalong"
)

// AttributesFile keeps session attributes in a JSON file so separate
// processes can continue one session. Saves are atomic: the file is written
// next to the target and renamed over it.
type AttributesFile struct {
	path string
}

// NewAttributesFile creates an AttributesFile at path.
func NewAttributesFile(path string) *AttributesFile {
	return &AttributesFile{path: path}
}

// Path returns the file path.
func (f *AttributesFile) Path() string {
	return f.path
}

func (f *AttributesFile) tempPath() string {
	return f.path + ".tmp"
}

// Load reads the attributes. found is false when the file does not exist.
// Returns EINVALID if the file is not valid JSON.
func (f *AttributesFile) Load() (attrs cookalong.SessionAttributes, found bool, err error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return attrs, false, nil
	} else if err != nil {
		return attrs, false, err
	}

	if err := json.Unmarshal(data, &attrs); err != nil {
		return attrs, false, cookalong.Errorf(cookalong.EINVALID, "invalid attributes file %s: %v", f.path, err)
	}
	return attrs, true, nil
}

// Save replaces the file with attrs.
func (f *AttributesFile) Save(attrs cookalong.SessionAttributes) error {
	data, err := json.MarshalIndent(attrs, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := os.WriteFile(f.tempPath(), data, 0644); err != nil {
		return err
	}
	if err := os.Rename(f.tempPath(), f.path); err != nil {
		_ = os.Remove(f.tempPath())
		return err
	}
	return nil
}

// Remove deletes the file. A missing file is not an error.
func (f *AttributesFile) Remove() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
