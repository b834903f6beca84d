// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/temirov/lstree/internal/config"
	"github.com/temirov/lstree/internal/services/clipboard"
	"github.com/temirov/lstree/internal/tree"
	"github.com/temirov/lstree/internal/types"
	"github.com/temirov/lstree/internal/utils"
)

const (
	maxDepthFlagName             = "max-depth"
	maxDepthFlagShorthand        = "L"
	directoriesOnlyFlagName      = "directories-only"
	directoriesOnlyFlagShorthand = "d"
	excludeFlagName              = "exclude"
	excludeFlagShorthand         = "I"
	copyFlagName                 = "copy"
	versionFlagName              = "version"
	versionTemplate              = "lstree version: %s\n"

	defaultStartPath = "."

	rootUse              = "lstree [directory]"
	rootShortDescription = "print a directory tree"
	rootLongDescription  = `lstree walks a directory and prints an indented tree of directories
and files with box-drawing connectors, followed by a summary count.
Exclude patterns are regular expressions matched anywhere in an entry
name; a matching entry and everything beneath it is pruned.`
	// rootUsageExample demonstrates common invocations.
	rootUsageExample = `  # Two levels of the current directory, directories only
  lstree -d -L 2

  # Exclude build artifacts and dependency directories
  lstree -I node_modules -I dist ./project`

	maxDepthFlagDescription        = "descend only this many directory levels"
	directoriesOnlyFlagDescription = "list directories only"
	excludeFlagDescription         = "exclude entries matching pattern (repeatable)"
	copyFlagDescription            = "also copy the rendered tree to the clipboard"
	versionFlagDescription         = "display application version"

	// errorPathMissingFormat reports a start path that does not exist.
	errorPathMissingFormat = "directory '%s' does not exist"
	// errorNotDirectoryFormat reports a start path that is not a directory.
	errorNotDirectoryFormat = "'%s' is not a directory"
	// errorStatFormat reports failure to retrieve file statistics for the start path.
	errorStatFormat = "stat failed for '%s': %w"
	// errorNegativeDepthFormat reports a negative max-depth value.
	errorNegativeDepthFormat = "max-depth must be non-negative, got %d"
	// warningClipboardFormat reports a failed clipboard copy; the listing itself already succeeded.
	warningClipboardFormat = "Warning: failed to copy output to clipboard: %v\n"
)

// Execute runs the lstree application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// treeOptions stores the flag values of the root command.
type treeOptions struct {
	maxDepth        int
	directoriesOnly bool
	excludePatterns []string
	copyToClipboard bool
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool
	var options treeOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return runTreeCommand(command, arguments, options, clipboard.NewService())
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.Flags().IntVarP(&options.maxDepth, maxDepthFlagName, maxDepthFlagShorthand, types.UnlimitedDepth, maxDepthFlagDescription)
	rootCommand.Flags().BoolVarP(&options.directoriesOnly, directoriesOnlyFlagName, directoriesOnlyFlagShorthand, false, directoriesOnlyFlagDescription)
	rootCommand.Flags().StringArrayVarP(&options.excludePatterns, excludeFlagName, excludeFlagShorthand, nil, excludeFlagDescription)
	rootCommand.Flags().BoolVar(&options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	rootCommand.AddCommand(createInitCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// runTreeCommand validates the start path, applies configuration
// defaults, builds the tree, renders it, and reports statistics.
func runTreeCommand(command *cobra.Command, arguments []string, options treeOptions, clipboardCopier clipboard.Copier) error {
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{})
	if configurationError != nil {
		return configurationError
	}
	resolvedOptions := resolveTreeOptions(command.Flags(), options, applicationConfiguration.Tree)
	if resolvedOptions.maxDepth != types.UnlimitedDepth && resolvedOptions.maxDepth < 0 {
		return fmt.Errorf(errorNegativeDepthFormat, resolvedOptions.maxDepth)
	}

	startPath := defaultStartPath
	if len(arguments) == 1 {
		startPath = arguments[0]
	}
	if validationError := validateStartPath(startPath); validationError != nil {
		return validationError
	}

	compiledPatterns := tree.CompilePatterns(resolvedOptions.excludePatterns, command.ErrOrStderr())
	walkConfiguration := types.WalkConfiguration{
		StartPath:       startPath,
		MaximumDepth:    resolvedOptions.maxDepth,
		DirectoriesOnly: resolvedOptions.directoriesOnly,
		ExcludePatterns: compiledPatterns,
	}

	treeBuilder := tree.NewTreeBuilder(walkConfiguration, tree.NewPatternMatcher(compiledPatterns), tree.NewExclusionTracker())
	rootNode := treeBuilder.Build(startPath, 0)
	if rootNode == nil {
		return nil
	}

	outputWriter := command.OutOrStdout()
	var clipboardBuffer bytes.Buffer
	if resolvedOptions.copyToClipboard {
		outputWriter = io.MultiWriter(outputWriter, &clipboardBuffer)
	}

	showFiles := !resolvedOptions.directoriesOnly
	treeRenderer := tree.NewTreeRenderer(outputWriter, showFiles)
	directoryCount, fileCount := treeRenderer.Render(rootNode)
	tree.ReportStatistics(outputWriter, directoryCount, fileCount, resolvedOptions.directoriesOnly)

	if resolvedOptions.copyToClipboard {
		if copyError := clipboardCopier.Copy(clipboardBuffer.String()); copyError != nil {
			fmt.Fprintf(command.ErrOrStderr(), warningClipboardFormat, copyError)
		}
	}
	return nil
}

// resolveTreeOptions overlays configuration defaults onto flag values.
// An explicitly set flag wins over the configuration file; exclude
// patterns are additive across both sources.
func resolveTreeOptions(flagSet *pflag.FlagSet, options treeOptions, configurationDefaults config.TreeCommandConfiguration) treeOptions {
	resolved := options
	if !flagSet.Changed(maxDepthFlagName) && configurationDefaults.MaxDepth != nil {
		resolved.maxDepth = *configurationDefaults.MaxDepth
	}
	if !flagSet.Changed(directoriesOnlyFlagName) && configurationDefaults.DirectoriesOnly != nil {
		resolved.directoriesOnly = *configurationDefaults.DirectoriesOnly
	}
	if !flagSet.Changed(copyFlagName) && configurationDefaults.Copy != nil {
		resolved.copyToClipboard = *configurationDefaults.Copy
	}
	if len(configurationDefaults.Exclude) > 0 {
		combinedPatterns := append([]string{}, configurationDefaults.Exclude...)
		combinedPatterns = append(combinedPatterns, options.excludePatterns...)
		resolved.excludePatterns = deduplicatePatterns(combinedPatterns)
	}
	return resolved
}

// validateStartPath rejects a start path that does not exist or is not
// a directory. Both conditions are fatal before any traversal begins.
func validateStartPath(startPath string) error {
	fileInformation, statError := os.Stat(startPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return fmt.Errorf(errorPathMissingFormat, startPath)
		}
		return fmt.Errorf(errorStatFormat, startPath, statError)
	}
	if !fileInformation.IsDir() {
		return fmt.Errorf(errorNotDirectoryFormat, startPath)
	}
	return nil
}

// deduplicatePatterns removes duplicate patterns while preserving the
// first occurrence of each.
func deduplicatePatterns(rawPatterns []string) []string {
	encounteredPatterns := make(map[string]struct{}, len(rawPatterns))
	result := make([]string, 0, len(rawPatterns))
	for _, rawPattern := range rawPatterns {
		if _, exists := encounteredPatterns[rawPattern]; exists {
			continue
		}
		encounteredPatterns[rawPattern] = struct{}{}
		result = append(result, rawPattern)
	}
	return result
}
