package install

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/Pascal736/karamapper/internal/karabiner"
	"github.com/Pascal736/karamapper/internal/logger"
)

// ErrNoTarget is returned when a file method has no target path.
var ErrNoTarget = errors.New("no target file")

// Installer writes compiled documents using one method.
type Installer struct {
	// Method selects the destination.
	Method Method

	// Target is the karabiner.json path for replace and extend.
	Target string

	// Stdout receives the document for MethodStdout.
	Stdout io.Writer
}

// New returns an installer printing to os.Stdout for MethodStdout.
func New(method Method, target string) *Installer {
	return &Installer{
		Method: method,
		Target: target,
		Stdout: os.Stdout,
	}
}

// Install writes doc according to the installer's method.
func (i *Installer) Install(doc *karabiner.Document) error {
	switch i.Method {
	case MethodStdout:
		return doc.Encode(i.Stdout)
	case MethodReplace:
		return i.replace(doc)
	case MethodExtend:
		return i.extend(doc)
	}
	return errors.Wrapf(ErrUnknownMethod, "%q", string(i.Method))
}

func (i *Installer) replace(doc *karabiner.Document) error {
	if i.Target == "" {
		return ErrNoTarget
	}
	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	logger.Logger.Infow("replacing karabiner configuration", "target", i.Target)
	return writeFile(i.Target, data)
}

func (i *Installer) extend(doc *karabiner.Document) error {
	if i.Target == "" {
		return ErrNoTarget
	}

	existing, err := os.ReadFile(i.Target)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Logger.Infow("target missing, writing new configuration", "target", i.Target)
		return i.replace(doc)
	}
	if err != nil {
		return errors.Wrapf(err, "reading %s", i.Target)
	}

	merged, err := Extend(existing, doc)
	if err != nil {
		return errors.Wrapf(err, "extending %s", i.Target)
	}
	logger.Logger.Infow("extending karabiner configuration", "target", i.Target)
	return writeFile(i.Target, merged)
}

// writeFile replaces path through a temporary file in the same directory.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".karamapper-*.json")
	if err != nil {
		return errors.Wrapf(err, "creating temporary file in %s", dir)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "writing %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", tmp.Name())
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrapf(err, "setting mode on %s", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "replacing %s", path)
	}
	return nil
}
