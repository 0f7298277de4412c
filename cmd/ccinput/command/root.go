package command

import (
	"errors"
	"fmt"

	"github.com/shini4i/ccinput/internal/app"
	"github.com/shini4i/ccinput/internal/models"
	"github.com/spf13/cobra"
)

// Service is the set of buffer operations exposed on the command line.
type Service interface {
	NewBuffer() (models.Buffer, error)
	Edit() (models.Buffer, string, error)
	List() ([]models.Buffer, error)
}

// Options describes the collaborators and defaults required to build the CLI.
type Options struct {
	Version     string
	TempDirBase string
	NewService  func(app.Config) (Service, error)
	InitLogging func(debug bool)
}

type globalFlags struct {
	debug   bool
	tempDir string
}

// Execute builds and runs the Cobra command tree using the supplied options.
func Execute(opts Options, args []string) error {
	root := newRootCommand(opts)

	if args != nil {
		root.SetArgs(args)
	}

	return root.Execute()
}

// newRootCommand builds the root Cobra command with global flags and hooks.
func newRootCommand(opts Options) *cobra.Command {
	globals := &globalFlags{}

	root := &cobra.Command{
		Use:          "ccinput",
		Short:        "Create scratch markdown buffers for composing input",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.InitLogging != nil {
				opts.InitLogging(globals.debug)
			}
			return nil
		},
	}

	root.Version = opts.Version
	root.PersistentFlags().BoolVarP(&globals.debug, "debug", "d", false, "Enable debug mode")
	root.PersistentFlags().StringVar(&globals.tempDir, "tmp-dir", opts.TempDirBase, "Directory under which buffers are created (env CCINPUT_TMPDIR)")

	root.AddCommand(
		newNewCommand(opts, globals),
		newEditCommand(opts, globals),
		newListCommand(opts, globals),
	)

	return root
}

// newNewCommand constructs the subcommand that creates an empty buffer and prints it.
func newNewCommand(opts Options, globals *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create an empty buffer and print its path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := buildService(opts, globals, app.WithOutput(output))
			if err != nil {
				return err
			}

			buffer, err := svc.NewBuffer()
			if err != nil {
				return err
			}

			rendered, err := buffer.Render(cfg.Output)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", models.OutputPath, "Output format (path, yaml, json)")

	return cmd
}

// newEditCommand constructs the subcommand that opens a fresh buffer in an editor and prints the result.
func newEditCommand(opts Options, globals *globalFlags) *cobra.Command {
	var editorCmd string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open a new buffer in your editor and print what you wrote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := buildService(opts, globals, app.WithEditor(editorCmd))
			if err != nil {
				return err
			}

			buffer, content, err := svc.Edit()
			if err != nil {
				if errors.Is(err, app.ErrBufferUnchanged) {
					return fmt.Errorf("%w (%s)", err, buffer.Path)
				}
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}

	cmd.Flags().StringVarP(&editorCmd, "editor", "e", "", "Editor command (defaults to CCINPUT_EDITOR, VISUAL, EDITOR)")

	return cmd
}

// newListCommand constructs the subcommand that prints existing buffers.
func newListCommand(opts Options, globals *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List buffers under the temp root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := buildService(opts, globals, app.WithOutput(output))
			if err != nil {
				return err
			}

			buffers, err := svc.List()
			if err != nil {
				return err
			}

			rendered, err := models.RenderList(cfg.Output, buffers)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", models.OutputPath, "Output format (path, yaml, json)")

	return cmd
}

func buildService(opts Options, globals *globalFlags, extra ...app.ConfigOption) (Service, app.Config, error) {
	options := append([]app.ConfigOption{
		app.WithTempDirBase(globals.tempDir),
		app.WithDebug(globals.debug),
		app.WithVersion(opts.Version),
	}, extra...)

	cfg, err := app.NewConfig(options...)
	if err != nil {
		return nil, app.Config{}, err
	}

	if opts.NewService == nil {
		return nil, app.Config{}, errors.New("no service factory provided")
	}

	svc, err := opts.NewService(cfg)
	if err != nil {
		return nil, app.Config{}, err
	}

	return svc, cfg, nil
}
