package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	textFile     = "current.txt"
	nameFile     = "current.name"
	databaseFile = "liftscript.db"
	configFile   = "config.yaml"
	logFile      = "liftscript.log"
)

// Manager centralizes where liftscript files live on disk. It owns the raw
// workout text, which is read and written verbatim.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ResolveBasePath.
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory.
func (m *Manager) BasePath() string {
	return m.basePath
}

func (m *Manager) TextPath() string     { return filepath.Join(m.basePath, textFile) }
func (m *Manager) NamePath() string     { return filepath.Join(m.basePath, nameFile) }
func (m *Manager) DatabasePath() string { return filepath.Join(m.basePath, databaseFile) }
func (m *Manager) ConfigPath() string   { return filepath.Join(m.basePath, configFile) }
func (m *Manager) LogPath() string      { return filepath.Join(m.basePath, logFile) }

// EnsureBase creates the base directory if needed.
func (m *Manager) EnsureBase() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	return nil
}

// HasText reports whether a current workout text has been stored.
func (m *Manager) HasText() bool {
	_, err := os.Stat(m.TextPath())
	return err == nil
}

// LoadText returns the current workout text, or "" when none is stored.
func (m *Manager) LoadText() (string, error) {
	data, err := os.ReadFile(m.TextPath())
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read workout text: %w", err)
	}
	return string(data), nil
}

// SaveText replaces the current workout text atomically.
func (m *Manager) SaveText(text string) error {
	if err := m.EnsureBase(); err != nil {
		return err
	}
	if err := writeFile(m.TextPath(), text); err != nil {
		return fmt.Errorf("write workout text: %w", err)
	}
	return nil
}

// CurrentName returns the name of the loaded saved workout, or "" if the
// current text has not been saved or loaded by name.
func (m *Manager) CurrentName() (string, error) {
	data, err := os.ReadFile(m.NamePath())
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read current name: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SetCurrentName records name as the loaded saved workout. An empty name clears it.
func (m *Manager) SetCurrentName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		err := os.Remove(m.NamePath())
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("clear current name: %w", err)
		}
		return nil
	}
	if err := m.EnsureBase(); err != nil {
		return err
	}
	if err := writeFile(m.NamePath(), name+"\n"); err != nil {
		return fmt.Errorf("write current name: %w", err)
	}
	return nil
}

// writeFile writes content to a temp file beside path and renames it into
// place, keeping the existing file mode.
func writeFile(path, content string) error {
	temp, err := os.CreateTemp(filepath.Dir(path), "liftscript-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.WriteString(content); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(temp.Name(), path)
}
