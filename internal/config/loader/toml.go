package loader

import (
	"fmt"
	"io"
	"io/fs"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

// IncludeKey is the top-level key listing files to merge below this one.
const IncludeKey = "@include"

// DefaultIncludeDepth bounds nested @include directives.
const DefaultIncludeDepth = 8

var (
	// ErrFileNotFound indicates the configuration file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrIncludeDepthExceeded indicates too many nested @include directives.
	ErrIncludeDepthExceeded = errors.New("include depth exceeded")

	// ErrInvalidInclude indicates a malformed @include directive.
	ErrInvalidInclude = errors.New("invalid @include")

	// ErrDuplicateKey indicates a key defined in more than one file.
	ErrDuplicateKey = errors.New("key defined in more than one file")
)

// TOMLLoader loads configuration from TOML files.
type TOMLLoader struct {
	fs   FileSystem
	path string
}

// NewTOMLLoader creates a new TOML loader for the given path.
func NewTOMLLoader(path string) *TOMLLoader {
	return &TOMLLoader{
		fs:   DefaultFS(),
		path: path,
	}
}

// NewTOMLLoaderWithFS creates a TOML loader with a custom file system.
func NewTOMLLoaderWithFS(fsys FileSystem, path string) *TOMLLoader {
	return &TOMLLoader{
		fs:   fsys,
		path: path,
	}
}

// Load reads the configured path, following @include directives.
func (l *TOMLLoader) Load() (map[string]any, error) {
	return l.LoadWithIncludes(l.path, DefaultIncludeDepth)
}

// LoadFrom reads configuration from a specific path without following
// @include directives.
func (l *TOMLLoader) LoadFrom(path string) (map[string]any, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrFileNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}

	return l.parse(path, data)
}

// LoadFromReader reads configuration from an io.Reader.
func (l *TOMLLoader) LoadFromReader(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}

	return l.parse("<reader>", data)
}

// parse parses TOML data into a map.
func (l *TOMLLoader) parse(source string, data []byte) (map[string]any, error) {
	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		perr := &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return nil, perr
	}
	if tree == nil {
		tree = make(map[string]any)
	}

	return tree, nil
}

// LoadWithIncludes loads a TOML file and processes @include directives.
// Top-level tables from all files are combined key by key; a key defined
// in two files is a *DuplicateKeyError. The maxDepth parameter limits
// nested includes to prevent loops.
func (l *TOMLLoader) LoadWithIncludes(path string, maxDepth int) (map[string]any, error) {
	tree, _, err := l.loadIncludes(path, maxDepth)
	return tree, err
}

// origins records the file each key came from: table name, then key
// within the table. Top-level values that are not tables use "".
type origins map[string]map[string]string

func (o origins) set(table, key, path string) {
	if o[table] == nil {
		o[table] = make(map[string]string)
	}
	o[table][key] = path
}

func originsOf(tree map[string]any, path string) origins {
	o := make(origins, len(tree))
	for name, value := range tree {
		table, ok := value.(map[string]any)
		if !ok {
			o.set(name, "", path)
			continue
		}
		o[name] = make(map[string]string, len(table))
		for key := range table {
			o.set(name, key, path)
		}
	}
	return o
}

func (l *TOMLLoader) loadIncludes(path string, maxDepth int) (map[string]any, origins, error) {
	if maxDepth <= 0 {
		return nil, nil, errors.Wrapf(ErrIncludeDepthExceeded, "at %s", path)
	}

	tree, err := l.LoadFrom(path)
	if err != nil {
		return nil, nil, err
	}

	includes, hasIncludes := tree[IncludeKey]
	delete(tree, IncludeKey)
	own := originsOf(tree, path)
	if !hasIncludes {
		return tree, own, nil
	}

	var includeList []string
	switch v := includes.(type) {
	case string:
		includeList = []string{v}
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, nil, errors.Wrapf(ErrInvalidInclude, "%s: entries must be strings", path)
			}
			includeList = append(includeList, s)
		}
	default:
		return nil, nil, errors.Wrapf(ErrInvalidInclude, "%s: must be string or array of strings, got %T", path, includes)
	}

	baseDir := filepath.Dir(path)
	for _, inc := range includeList {
		incPath := inc
		if !filepath.IsAbs(inc) {
			incPath = filepath.Join(baseDir, inc)
		}

		incTree, incOrigins, err := l.loadIncludes(incPath, maxDepth-1)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "loading include %s", incPath)
		}

		if err := mergeTree(tree, own, incTree, incOrigins); err != nil {
			return nil, nil, err
		}
	}

	return tree, own, nil
}

// mergeTree adds src to dst. Tables present in both are combined key by
// key; any key present in both is an error naming both files.
func mergeTree(dst map[string]any, dstOrigins origins, src map[string]any, srcOrigins origins) error {
	for _, name := range slices.Sorted(maps.Keys(src)) {
		value := src[name]
		existing, exists := dst[name]
		if !exists {
			dst[name] = value
			dstOrigins[name] = srcOrigins[name]
			continue
		}

		dstTable, dstIsTable := existing.(map[string]any)
		srcTable, srcIsTable := value.(map[string]any)
		if !dstIsTable || !srcIsTable {
			return &DuplicateKeyError{
				Key:   name,
				Files: [2]string{firstOrigin(dstOrigins[name]), firstOrigin(srcOrigins[name])},
			}
		}

		for _, key := range slices.Sorted(maps.Keys(srcTable)) {
			if _, dup := dstTable[key]; dup {
				return &DuplicateKeyError{
					Table: name,
					Key:   key,
					Files: [2]string{dstOrigins[name][key], srcOrigins[name][key]},
				}
			}
			dstTable[key] = srcTable[key]
			dstOrigins.set(name, key, srcOrigins[name][key])
		}
	}
	return nil
}

// firstOrigin returns a file that defined some part of a top-level value.
func firstOrigin(keys map[string]string) string {
	sorted := slices.Sorted(maps.Keys(keys))
	if len(sorted) == 0 {
		return ""
	}
	return keys[sorted[0]]
}

// DuplicateKeyError reports a key defined both in a file and in one of
// the files it includes.
type DuplicateKeyError struct {
	Table string
	Key   string
	Files [2]string
}

func (e *DuplicateKeyError) Error() string {
	name := e.Key
	if e.Table != "" {
		name = fmt.Sprintf("[%s] %s", e.Table, e.Key)
	}
	return fmt.Sprintf("%s defined in both %s and %s", name, e.Files[0], e.Files[1])
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// ParseError reports a TOML syntax or decode error in one file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Path)
	switch {
	case e.Line > 0 && e.Column > 0:
		fmt.Fprintf(&b, ":%d:%d", e.Line, e.Column)
	case e.Line > 0:
		fmt.Fprintf(&b, ":%d", e.Line)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
