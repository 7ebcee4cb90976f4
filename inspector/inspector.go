package inspector

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/thisassembly/inspector/csharp"
	"github.com/viant/thisassembly/inspector/golang"
	"github.com/viant/thisassembly/inspector/info"
	"github.com/viant/thisassembly/inspector/manifest"
	"github.com/viant/thisassembly/inspector/repository"
)

// Inspector provides an interface for discovering module declarations
type Inspector interface {
	// InspectSource parses source code from a byte slice and extracts declarations
	InspectSource(src []byte) (*info.Source, error)

	// InspectFile parses a source file and extracts declarations
	InspectFile(filename string) (*info.Source, error)
}

// PackageInspector inspects whole packages or projects
type PackageInspector interface {
	Inspector

	// InspectPackage inspects a package directory and extracts declarations of all files
	InspectPackage(packagePath string) (*info.Package, error)
}

// Factory creates appropriate inspectors based on language
type Factory struct {
	config *info.Config
}

// NewFactory creates a new inspector factory with the given config
func NewFactory(config *info.Config) *Factory {
	if config == nil {
		config = info.DefaultConfig()
	}
	return &Factory{
		config: config,
	}
}

// GetInspector returns an appropriate inspector based on file extension
func (f *Factory) GetInspector(filename string) (Inspector, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".cs":
		return csharp.NewInspector(f.config), nil
	case ".go":
		return golang.NewInspector(f.config), nil
	case ".yaml", ".yml":
		return manifest.NewInspector(), nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
}

// GetPackageInspector returns an appropriate inspector based on project type
func (f *Factory) GetPackageInspector(projectType string) (PackageInspector, error) {
	switch projectType {
	case repository.TypeCSharp:
		return csharp.NewInspector(f.config), nil
	case repository.TypeGo:
		return golang.NewInspector(f.config), nil
	default:
		return nil, fmt.Errorf("unsupported project type: %s", projectType)
	}
}

// InspectFile is a convenience method that gets the appropriate inspector and inspects the file
func (f *Factory) InspectFile(filename string) (*info.Source, error) {
	inspector, err := f.GetInspector(filename)
	if err != nil {
		return nil, err
	}
	return inspector.InspectFile(filename)
}

// InspectProject inspects project sources; manifest declarations, if present, follow source declarations
func (f *Factory) InspectProject(project *repository.Project, manifestPath string) (*info.Package, error) {
	var pkg *info.Package
	if project.Type == repository.TypeUnknown {
		pkg = &info.Package{Name: project.Name, Path: project.RootPath}
	} else {
		inspector, err := f.GetPackageInspector(project.Type)
		if err != nil {
			return nil, err
		}
		if pkg, err = inspector.InspectPackage(project.RootPath); err != nil {
			return nil, err
		}
	}

	if manifestPath == "" {
		candidate := filepath.Join(project.RootPath, manifest.DefaultFilename)
		if _, err := os.Stat(candidate); err != nil {
			return pkg, nil
		}
		manifestPath = candidate
	}
	source, err := manifest.NewInspector().InspectFile(manifestPath)
	if err != nil {
		return nil, err
	}
	pkg.AddFile(source)
	return pkg, nil
}
