package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/viant/afs"

	"github.com/viant/thisassembly/generator"
	"github.com/viant/thisassembly/inspector"
	"github.com/viant/thisassembly/inspector/info"
	"github.com/viant/thisassembly/inspector/repository"
	"github.com/viant/thisassembly/internal/config"
	"github.com/viant/thisassembly/internal/output"
)

// generateFlags maps generate flags to config keys.
var generateFlags = map[string]string{
	"language":         "language",
	"output":           "output",
	"manifest":         "manifest",
	"dry-run":          "dryRun",
	"concurrency":      "concurrency",
	"assembly-name":    "assemblyName",
	"define-constants": "defineConstants",
	"root-namespace":   "rootNamespace",
	"namespace":        "namespace",
}

// NewGenerateCmd creates the generate command.
func NewGenerateCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [path...]",
		Short: "Generate metadata constants for projects",
		Long: `Generate a source file exposing project metadata declarations as constants.

Arguments:
  path    Project directory or file (default: current directory)

Examples:
  # Generate AssemblyMetadata.g.cs for the C# project in the current directory
  thisassembly generate

  # Generate Go constants into package meta
  thisassembly generate ./service --language go --namespace meta

  # Print the artifact without writing it
  thisassembly generate --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, resolveConfigFile(*configFile))
		},
	}

	flags := cmd.Flags()
	flags.String("language", config.LanguageAuto, "artifact language: auto, csharp, go")
	flags.StringP("output", "o", "", "artifact directory (default: project root)")
	flags.String("manifest", "", "declaration manifest (default: <project>/thisassembly.yaml when present)")
	flags.Bool("dry-run", false, "print the artifact instead of writing it")
	flags.Int("concurrency", 4, "projects generated in parallel")
	flags.String("assembly-name", "", "module identity name (env: THISASSEMBLY_ASSEMBLY_NAME)")
	flags.String("define-constants", "", "build define string (env: THISASSEMBLY_DEFINE_CONSTANTS)")
	flags.String("root-namespace", "", "root namespace (env: THISASSEMBLY_ROOT_NAMESPACE)")
	flags.String("namespace", "", "namespace or package wrapping generated output (env: THISASSEMBLY_NAMESPACE)")
	return cmd
}

func resolveConfigFile(configFile string) string {
	if configFile != "" {
		return configFile
	}
	return os.Getenv("THISASSEMBLY_CONFIG")
}

// target represents a module with its artifact destination.
type target struct {
	module    *generator.Module
	directory string
}

func runGenerate(cmd *cobra.Command, args []string, configFile string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	loader := config.NewLoader()
	if err := loader.BindFlags(cmd.Flags(), generateFlags); err != nil {
		return err
	}
	cfg, err := loader.Load(configFile)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	groups := map[string][]*target{}
	var languages []string
	detector := repository.New()
	factory := inspector.NewFactory(info.DefaultConfig())
	for _, path := range paths {
		project, err := detector.DetectProject(ctx, path)
		if err != nil {
			return fmt.Errorf("failed to detect project %s: %w", path, err)
		}
		pkg, err := factory.InspectProject(project, cfg.Manifest)
		if err != nil {
			return fmt.Errorf("failed to inspect project %s: %w", project.RootPath, err)
		}
		output.Debug("inspected project", "name", project.Name, "type", project.Type, "files", len(pkg.FileSet))

		language := resolveLanguage(cfg.Language, project.Type)
		if _, ok := groups[language]; !ok {
			languages = append(languages, language)
		}
		directory := cfg.Output
		if directory == "" {
			directory = project.RootPath
		}
		groups[language] = append(groups[language], &target{
			directory: directory,
			module: &generator.Module{
				Name:         project.Name,
				Declarations: pkg.Declarations(),
				Options:      cfg.Options().Merge(pkg.Options()).Merge(project.Options()),
				Diagnostics:  pkg.Diagnostics(),
			},
		})
	}

	fs := afs.New()
	cache := generator.NewCache()
	for _, language := range languages {
		targets := groups[language]
		modules := make([]*generator.Module, len(targets))
		for i, item := range targets {
			modules[i] = item.module
		}
		gen := generator.New(
			generator.WithEmitter(newEmitter(language)),
			generator.WithCache(cache),
			generator.WithConcurrency(cfg.Concurrency),
		)
		outputs, err := gen.GenerateAll(ctx, modules)
		if err != nil {
			return err
		}
		for i, result := range outputs {
			if err := emit(ctx, cmd, fs, targets[i].directory, result, cfg.DryRun); err != nil {
				return err
			}
		}
	}
	return nil
}

func resolveLanguage(language, projectType string) string {
	if language != config.LanguageAuto && language != "" {
		return language
	}
	if projectType == repository.TypeGo {
		return config.LanguageGo
	}
	return config.LanguageCSharp
}

func newEmitter(language string) generator.Emitter {
	if language == config.LanguageGo {
		return &generator.GoEmitter{}
	}
	return &generator.CSharpEmitter{}
}

// emit reports diagnostics and writes the artifact unless its content is unchanged.
func emit(ctx context.Context, cmd *cobra.Command, fs afs.Service, directory string, result *generator.Output, dryRun bool) error {
	for _, diagnostic := range result.Diagnostics {
		logDiagnostic(result.Module, diagnostic)
	}
	if !result.HasSource() {
		output.Info("no declarations found", "module", result.Module)
		return nil
	}
	if dryRun {
		_, err := cmd.OutOrStdout().Write(result.Source)
		return err
	}

	location, err := filepath.Abs(filepath.Join(directory, result.Name))
	if err != nil {
		return err
	}
	if exists, _ := fs.Exists(ctx, location); exists {
		if current, err := fs.DownloadWithURL(ctx, location); err == nil && generator.Hash(current) == result.Hash {
			output.Debug("artifact unchanged", "module", result.Module, "path", location)
			return nil
		}
	}
	if err := fs.Upload(ctx, location, 0o644, bytes.NewReader(result.Source)); err != nil {
		return fmt.Errorf("failed to write %s: %w", location, err)
	}
	output.Info("generated", "module", result.Module, "path", location, "constants", result.Constants.Len())
	return nil
}

func logDiagnostic(module string, diagnostic generator.Diagnostic) {
	keyvals := []interface{}{"code", diagnostic.Code, "location", diagnostic.Location, "module", module}
	switch diagnostic.Severity {
	case generator.SeverityError:
		output.Error(diagnostic.Message, keyvals...)
	case generator.SeverityInfo:
		output.Info(diagnostic.Message, keyvals...)
	default:
		output.Warn(diagnostic.Message, keyvals...)
	}
}
