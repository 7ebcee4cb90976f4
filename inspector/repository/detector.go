package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

// Detector identifies project root folders and provides project-related information
type Detector struct {
	fs afs.Service
	// project marker file suffixes with their project type
	markers []marker
}

type marker struct {
	suffix      string
	projectType string
}

// New creates a new project detector instance
func New() *Detector {
	return &Detector{
		fs: afs.New(),
		markers: []marker{
			{suffix: ".csproj", projectType: TypeCSharp}, // C# projects
			{suffix: "go.mod", projectType: TypeGo},      // Go modules
		},
	}
}

// DetectProject identifies the project root for the given file path and returns project info
func (d *Detector) DetectProject(ctx context.Context, filePath string) (*Project, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}

	// If it's a file, start from its parent directory
	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	rootPath, projectFile, projectType := d.findProjectRoot(startDir)
	project := &Project{
		Type:     TypeUnknown,
		RootPath: startDir,
		Name:     filepath.Base(startDir),
	}
	if rootPath != "" {
		project.RootPath = rootPath
		project.Type = projectType
		project.ProjectFile = filepath.Join(rootPath, projectFile)
	}

	relPath, err := filepath.Rel(project.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	project.RelativePath = filepath.ToSlash(relPath)

	switch project.Type {
	case TypeGo:
		err = d.loadGoModule(ctx, project)
	case TypeCSharp:
		err = d.loadCSharpProject(ctx, project)
	}
	if err != nil {
		return nil, err
	}
	return project, nil
}

// findProjectRoot searches up from the current directory for project markers
func (d *Detector) findProjectRoot(startDir string) (string, string, string) {
	dir := startDir
	for {
		for _, candidate := range d.markers {
			if name, _ := FindFileWithSuffixes(dir, []string{candidate.suffix}, nil); name != "" {
				return dir, name, candidate.projectType
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// We've reached the filesystem root with no match
			break
		}
		dir = parent
	}
	return "", "", ""
}

func (d *Detector) loadGoModule(ctx context.Context, project *Project) error {
	content, err := d.fs.DownloadWithURL(ctx, project.ProjectFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", project.ProjectFile, err)
	}
	mod, err := modfile.ParseLax(project.ProjectFile, content, nil)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", project.ProjectFile, err)
	}
	if mod.Module != nil {
		project.GoModule = mod.Module
		project.Name = mod.Module.Mod.Path
	}
	return nil
}

func (d *Detector) loadCSharpProject(ctx context.Context, project *Project) error {
	content, err := d.fs.DownloadWithURL(ctx, project.ProjectFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", project.ProjectFile, err)
	}
	if project.Properties, err = ParseProperties(content); err != nil {
		return fmt.Errorf("%s: %w", project.ProjectFile, err)
	}
	// compiler uses the project file name unless AssemblyName is set
	project.Name = strings.TrimSuffix(filepath.Base(project.ProjectFile), filepath.Ext(project.ProjectFile))
	return nil
}
