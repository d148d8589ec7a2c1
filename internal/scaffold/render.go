package scaffold

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/resproj/resproj/internal/project"
	"github.com/resproj/resproj/internal/vcs"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Parsed once at init so a malformed template fails at startup.
var templates = template.Must(
	template.New("").Option("missingkey=error").ParseFS(templateFS, "templates/*.tmpl"),
)

// Template names.
const (
	tmplGitignore    = "gitignore.tmpl"
	tmplReadme       = "readme.tmpl"
	tmplJuliaProject = "project.toml.tmpl"
	tmplEnvironment  = "environment.yml.tmpl"
	tmplPythonMain   = "main.py.tmpl"
	tmplJuliaMain    = "main.jl.tmpl"
)

// DirectoryStructureHeading marks the README section copied from the master
// document into every generated README.
const DirectoryStructureHeading = "## Directory structure"

// DateLayout formats the creation date in the README.
const DateLayout = "2006-01-02"

// UnknownAuthor fills the Julia authors field when no git identity exists.
const UnknownAuthor = "Unknown author"

// DefaultProjectVersion is the Project.toml version of a new Julia project.
const DefaultProjectVersion = "0.1.0"

// PythonGitignoreEntry is added to .gitignore for Python projects.
const PythonGitignoreEntry = "__pycache__"

// GitignoreData holds the .gitignore template variables.
type GitignoreData struct {
	PythonGitignore string
}

// ReadmeData holds the README template variables.
type ReadmeData struct {
	ProjectName string // Capitalized display name
	Author      string // "Author: <name>\n" or empty
	Date        string // YYYY-MM-DD
}

// JuliaProjectData holds the Project.toml template variables.
type JuliaProjectData struct {
	ModuleName string
	UUID       string
	Author     string // "<name> <<email>>" or UnknownAuthor
	Version    string
}

// EnvironmentData holds the environment.yml template variables.
type EnvironmentData struct {
	Name       string
	PrefixPath string // <CONDA_PREFIX>/envs/<name>
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// NewGitignoreData returns the .gitignore context for lang.
func NewGitignoreData(lang project.Language) GitignoreData {
	if lang == project.Python {
		return GitignoreData{PythonGitignore: PythonGitignoreEntry}
	}
	return GitignoreData{}
}

// RenderGitignore renders the .gitignore file.
func RenderGitignore(data GitignoreData) (string, error) {
	return execute(tmplGitignore, data)
}

// NewReadmeData builds the README context. author may be nil.
func NewReadmeData(displayName string, author *vcs.Author, date time.Time) ReadmeData {
	d := ReadmeData{
		ProjectName: displayName,
		Date:        date.Format(DateLayout),
	}
	if author != nil {
		d.Author = "Author: " + author.Name + "\n"
	}
	return d
}

// RenderReadme renders the README header followed by the directory structure
// section of masterDoc.
func RenderReadme(data ReadmeData, masterDoc string) (string, error) {
	head, err := execute(tmplReadme, data)
	if err != nil {
		return "", err
	}
	return head + ExtractSection(masterDoc, DirectoryStructureHeading), nil
}

// ExtractSection copies the lines of doc from the first line equal to heading
// (surrounding whitespace ignored) up to, but excluding, the next line that
// starts with "## ". Without a following header the section runs to the end
// of doc. Each copied line ends with "\n". A missing heading yields "".
func ExtractSection(doc, heading string) string {
	var b strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(doc))

	found := false
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == heading {
			b.WriteString(scanner.Text())
			b.WriteByte('\n')
			found = true
			break
		}
	}
	if !found {
		return ""
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "## ") {
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// NewJuliaProjectData builds the Project.toml context. author may be nil.
func NewJuliaProjectData(moduleName, uuid string, author *vcs.Author) JuliaProjectData {
	d := JuliaProjectData{
		ModuleName: moduleName,
		UUID:       uuid,
		Author:     UnknownAuthor,
		Version:    DefaultProjectVersion,
	}
	if author != nil {
		d.Author = author.String()
	}
	return d
}

// RenderJuliaProject renders Project.toml.
func RenderJuliaProject(data JuliaProjectData) (string, error) {
	return execute(tmplJuliaProject, data)
}

// RenderEnvironment renders environment.yml.
func RenderEnvironment(data EnvironmentData) (string, error) {
	return execute(tmplEnvironment, data)
}

// RenderMain returns the static starter source file for lang.
func RenderMain(lang project.Language) (string, error) {
	switch lang {
	case project.Python:
		return execute(tmplPythonMain, nil)
	case project.Julia:
		return execute(tmplJuliaMain, nil)
	default:
		return "", fmt.Errorf("no main file for language %q", lang)
	}
}
