// Package app runs the karamapper pipeline: read a layer file, build the
// configuration, compile it into a Karabiner document and install it.
package app

import (
	"io"
	"os"
	"time"

	"github.com/Pascal736/karamapper/internal/compiler"
	"github.com/Pascal736/karamapper/internal/config"
	"github.com/Pascal736/karamapper/internal/config/loader"
	"github.com/Pascal736/karamapper/internal/install"
	"github.com/Pascal736/karamapper/internal/karabiner"
	"github.com/Pascal736/karamapper/internal/logger"
)

// Options configures one pipeline run.
type Options struct {
	// InputPath is the layer configuration file.
	InputPath string

	// Compile controls the generated profile.
	Compile compiler.Options

	// Method selects where the document goes.
	Method install.Method

	// Target is the karabiner.json path for file methods.
	Target string

	// Stdout receives the document for install.MethodStdout.
	// Defaults to os.Stdout.
	Stdout io.Writer

	// FS reads the input. Defaults to the OS file system.
	FS loader.FileSystem
}

// Result is the outcome of a successful run.
type Result struct {
	Config   *config.Configuration
	Document *karabiner.Document
	Elapsed  time.Duration
}

// Load reads path, follows its includes and builds the configuration.
func Load(fsys loader.FileSystem, path string) (*config.Configuration, error) {
	if fsys == nil {
		fsys = loader.DefaultFS()
	}

	tree, err := loader.NewTOMLLoaderWithFS(fsys, path).Load()
	if err != nil {
		return nil, NewStageError(StageLoad, path, err)
	}

	cfg, err := config.FromTree(tree)
	if err != nil {
		return nil, NewStageError(StageBuild, path, err)
	}

	logger.Logger.Debugw("configuration built",
		"path", path,
		"layers", len(cfg.Layers),
		"assignments", len(cfg.Assignments),
		"simple_remaps", len(cfg.SimpleRemaps))
	return cfg, nil
}

// Create runs the full pipeline. Nothing is written unless every earlier
// stage succeeded.
func Create(opts Options) (*Result, error) {
	start := time.Now()

	cfg, err := Load(opts.FS, opts.InputPath)
	if err != nil {
		return nil, err
	}

	doc := compiler.Compile(cfg, opts.Compile)
	logger.Logger.Debugw("compiled",
		"profile", doc.Profiles[0].Name,
		"rules", len(doc.Profiles[0].ComplexModifications.Rules))

	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	inst := &install.Installer{
		Method: opts.Method,
		Target: opts.Target,
		Stdout: out,
	}
	if err := inst.Install(doc); err != nil {
		target := opts.Target
		if !opts.Method.WritesFile() {
			target = ""
		}
		return nil, NewStageError(StageInstall, target, err)
	}

	res := &Result{Config: cfg, Document: doc, Elapsed: time.Since(start)}
	logger.Logger.Infow("karabiner configuration created",
		"input", opts.InputPath,
		"method", opts.Method.String(),
		"elapsed", res.Elapsed)
	return res, nil
}
