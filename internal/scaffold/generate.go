package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/resproj/resproj/internal/condaenv"
	"github.com/resproj/resproj/internal/layout"
	"github.com/resproj/resproj/internal/project"
	"github.com/resproj/resproj/internal/vcs"
	"github.com/spf13/afero"
)

// FilePerm is the permission used for every written file.
const FilePerm os.FileMode = 0644

// Generated file names relative to the project root.
const (
	GitignoreFile    = ".gitignore"
	ReadmeFile       = "README.md"
	JuliaProjectFile = "Project.toml"
	EnvironmentFile  = "environment.yml"
	PythonMainFile   = "main.py"
)

// Options configures Generate. Zero values select the production behavior.
type Options struct {
	// MasterDoc is the document whose directory structure section is
	// copied into the generated README.
	MasterDoc string

	// Conda creates the environment of Python projects. Nil uses the
	// "conda" executable.
	Conda *condaenv.Provisioner

	// ProjectVersion is written to Project.toml. Empty selects
	// DefaultProjectVersion.
	ProjectVersion string

	// Fs receives the directory layout and generated files. Nil uses the
	// OS filesystem. Git initialization always works on disk.
	Fs afero.Fs

	Now          func() time.Time
	NewUUID      func() string
	LookupAuthor func() (vcs.Author, bool)
	LookupPrefix func() (string, bool)

	// Stdout and Stderr receive progress and warning messages; default to
	// os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Conda == nil {
		o.Conda = condaenv.New("conda")
	}
	if o.ProjectVersion == "" {
		o.ProjectVersion = DefaultProjectVersion
	}
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewUUID == nil {
		o.NewUUID = func() string { return uuid.New().String() }
	}
	if o.LookupAuthor == nil {
		o.LookupAuthor = vcs.LookupAuthor
	}
	if o.LookupPrefix == nil {
		o.LookupPrefix = condaenv.LookupPrefix
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Result holds the outcome of a scaffold run.
type Result struct {
	Root     string
	Files    []string // Written files, relative to Root, in write order
	Warnings []string
}

// generator carries the state of one Generate call.
type generator struct {
	spec   *project.Spec
	opts   Options
	author *vcs.Author
	result *Result
}

// Generate scaffolds spec on disk. Directory creation, git initialization
// and file writes are fatal: the first failure is returned and whatever was
// created so far stays on disk. Author lookup, conda and the CONDA_PREFIX
// lookup only produce warnings, which are printed to Stderr as they occur
// and collected in Result.Warnings.
func Generate(ctx context.Context, spec *project.Spec, opts Options) (*Result, error) {
	g := &generator{
		spec:   spec,
		opts:   opts.withDefaults(),
		result: &Result{Root: spec.Root},
	}
	log := g.opts.Logger.With("root", spec.Root, "name", spec.Name)

	log.Debug("creating directory layout")
	if err := layout.Build(g.opts.Fs, spec.Root); err != nil {
		return nil, err
	}

	log.Debug("initializing git repository")
	if err := vcs.Init(spec.Root); err != nil {
		return nil, err
	}

	if author, ok := g.opts.LookupAuthor(); ok {
		g.author = &author
		log.Debug("resolved author", "author", author.String())
	} else {
		g.warn(vcs.MissingAuthorHint)
	}

	if err := g.writeGitignore(); err != nil {
		return nil, err
	}
	if err := g.writeReadme(); err != nil {
		return nil, err
	}

	switch spec.Language {
	case project.Julia:
		log.Debug("writing julia files", "module", spec.ModuleName())
		if err := g.writeJulia(); err != nil {
			return nil, err
		}
	case project.Python:
		log.Debug("writing python files")
		if err := g.writePython(ctx); err != nil {
			return nil, err
		}
	}

	return g.result, nil
}

func (g *generator) writeGitignore() error {
	content, err := RenderGitignore(NewGitignoreData(g.spec.Language))
	if err != nil {
		return err
	}
	return g.write(GitignoreFile, content)
}

func (g *generator) writeReadme() error {
	data := NewReadmeData(g.spec.DisplayName(), g.author, g.opts.Now())
	content, err := RenderReadme(data, g.opts.MasterDoc)
	if err != nil {
		return err
	}
	return g.write(ReadmeFile, content)
}

func (g *generator) writeJulia() error {
	moduleName := g.spec.ModuleName()

	main, err := RenderMain(project.Julia)
	if err != nil {
		return err
	}
	if err := g.write(filepath.Join("src", moduleName+".jl"), main); err != nil {
		return err
	}

	data := NewJuliaProjectData(moduleName, g.opts.NewUUID(), g.author)
	data.Version = g.opts.ProjectVersion
	content, err := RenderJuliaProject(data)
	if err != nil {
		return err
	}
	if err := g.write(JuliaProjectFile, content); err != nil {
		return err
	}
	g.validate(JuliaProjectFile, content, ValidateJuliaProject)
	return nil
}

func (g *generator) writePython(ctx context.Context) error {
	main, err := RenderMain(project.Python)
	if err != nil {
		return err
	}
	if err := g.write(filepath.Join("src", PythonMainFile), main); err != nil {
		return err
	}

	name := g.spec.Name
	if err := g.opts.Conda.Create(ctx, name); err != nil {
		g.opts.Logger.Debug("conda create failed", "error", err)
		g.warn(fmt.Sprintf("Warning: Could not create Conda environment %q", name))
	} else {
		fmt.Fprintf(g.opts.Stdout, "Created Conda environment %q\n", name)
	}

	prefix, ok := g.opts.LookupPrefix()
	if !ok {
		g.warn(fmt.Sprintf("Warning: Could not get env variable $%s. Not writing %q file.", condaenv.PrefixEnvVar, EnvironmentFile))
		return nil
	}

	content, err := RenderEnvironment(EnvironmentData{
		Name:       name,
		PrefixPath: condaenv.EnvironmentPath(prefix, name),
	})
	if err != nil {
		return err
	}
	if err := g.write(EnvironmentFile, content); err != nil {
		return err
	}
	g.validate(EnvironmentFile, content, ValidateEnvironment)
	return nil
}

// write stores content at rel under the project root.
func (g *generator) write(rel, content string) error {
	path := filepath.Join(g.spec.Root, rel)
	if err := afero.WriteFile(g.opts.Fs, path, []byte(content), FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	g.result.Files = append(g.result.Files, filepath.ToSlash(rel))
	return nil
}

// validate reports schema problems of a generated file as warnings.
func (g *generator) validate(rel, content string, check func([]byte) (*ValidationResult, error)) {
	res, err := check([]byte(content))
	if err != nil {
		g.warn(fmt.Sprintf("Warning: Could not validate %s: %v", rel, err))
		return
	}
	for _, issue := range res.Issues {
		g.warn(fmt.Sprintf("Warning: %s: %s", rel, issue))
	}
}

func (g *generator) warn(msg string) {
	g.result.Warnings = append(g.result.Warnings, msg)
	fmt.Fprintln(g.opts.Stderr, msg)
}
