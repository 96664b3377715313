// Package document loads plain-text documents from a filesystem.
package document

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/baditaflorin/go_text_frequency/internal/adapters/normalizer"
	"github.com/baditaflorin/go_text_frequency/internal/core/domain"
	"github.com/baditaflorin/go_text_frequency/internal/ports"
)

// Extension is the substring a document path must contain.
const Extension = ".txt"

const opLoad = "load document"

// Loader reads documents through an afero filesystem.
type Loader struct {
	fs         afero.Fs
	normalizer ports.Normalizer
}

// NewLoader creates a loader over fs. A nil fs means the OS filesystem.
func NewLoader(fs afero.Fs) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{fs: fs, normalizer: normalizer.NewDefaultNormalizer()}
}

// Load returns the normalized text of the document at path with any UTF-8
// byte order mark removed. Paths without ".txt" are usage errors; unreadable files are
// input errors.
func (l *Loader) Load(path string) (string, error) {
	if !strings.Contains(path, Extension) {
		return "", domain.UsageError(opLoad, errors.Errorf("%q is not a %s document", path, Extension))
	}

	info, err := l.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.InputError(opLoad, errors.Errorf("file not found: %s", path))
		}
		return "", domain.InputError(opLoad, errors.Wrap(err, "stat"))
	}
	if info.IsDir() {
		return "", domain.InputError(opLoad, errors.Errorf("%s is a directory", path))
	}

	raw, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return "", domain.InputError(opLoad, errors.Wrapf(err, "read %s", path))
	}

	text, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", domain.InputError(opLoad, errors.Wrapf(err, "decode %s", path))
	}
	return l.normalizer.Normalize(string(text)), nil
}
