package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ytget/lsky-paste/internal/config"
	"github.com/ytget/lsky-paste/internal/markdown"
	"github.com/ytget/lsky-paste/internal/paste"
	"github.com/ytget/lsky-paste/internal/platform"
	"github.com/ytget/lsky-paste/internal/plugin"
	"github.com/ytget/lsky-paste/internal/upload"
)

// Dependencies are the services the commands run against. Plugin and Data are
// created on first use when left nil.
type Dependencies struct {
	Uploader upload.Uploader
	Data     config.DataStore
	Plugin   *plugin.Plugin
}

// cliHost loads the plugin without an editor; notifications go to stderr
type cliHost struct {
	data config.DataStore
	out  io.Writer
}

func (h *cliHost) Notify(message string) { _, _ = fmt.Fprintln(h.out, message) }

func (h *cliHost) PluginData() config.DataStore { return h.data }

func (h *cliHost) AddCommand(plugin.Command) {}

func (h *cliHost) OnEditorPaste(func(event *paste.Event, editor paste.Editor)) {}

func (h *cliHost) ActiveEditor() paste.Editor { return nil }

func main() {
	config.LoadEnv()

	dependencies := &Dependencies{
		Uploader: upload.NewClient(),
	}

	ctx := context.Background()
	if err := newRootCmd(dependencies).ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd(dependencies *Dependencies) *cobra.Command {
	var token string
	var urlOnly bool
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "lsky-upload [files...]",
		Short: "Upload images to the Lsky Pro image host and print their Markdown links.",
		Args:  cobra.MinimumNArgs(1),
		// main logs the returned error once
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if dependencies.Plugin != nil {
				return nil
			}
			if dependencies.Data == nil {
				path, err := config.DefaultDataPath()
				if err != nil {
					return err
				}
				dependencies.Data = config.NewFileData(path)
			}
			dependencies.Plugin = plugin.New(dependencies.Uploader)
			dependencies.Plugin.Load(&cliHost{data: dependencies.Data, out: cmd.ErrOrStderr()})
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := readImages(args)
			if err != nil {
				return err
			}

			settings := dependencies.Plugin.Settings()
			settings.Token = resolveToken(token, settings.Token)

			failed := 0
			for _, file := range files {
				link, err := dependencies.Plugin.UploadImageWith(cmd.Context(), file, settings)
				if err != nil {
					failed++
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", file.Name, err)
					continue
				}

				if urlOnly {
					if link, err = markdown.ImageURL(link); err != nil {
						failed++
						_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", file.Name, err)
						continue
					}
				}
				if verbose {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "uploaded %s (%s)\n", file.Name, humanize.Bytes(uint64(len(file.Data))))
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), link)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d uploads failed", failed, len(files))
			}
			return nil
		},
	}

	rootCmd.Flags().StringVar(&token, "token", "", "API token (overrides "+config.EnvToken+" and the saved token)")
	rootCmd.Flags().BoolVar(&urlOnly, "url", false, "Print the bare image URL instead of Markdown")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Report each uploaded file on stderr")

	rootCmd.AddCommand(cmdToken(dependencies))

	return rootCmd
}

func cmdToken(dependencies *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the saved API token",
	}

	cmdSet := &cobra.Command{
		Use:   "set <token>",
		Short: "Save the API token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dependencies.Plugin.SetToken(args[0])
		},
	}

	cmdShow := &cobra.Command{
		Use:   "show",
		Short: "Print the saved API token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token := dependencies.Plugin.Settings().Token
			if token == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "(not set)")
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmdClear := &cobra.Command{
		Use:   "clear",
		Short: "Remove the saved API token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dependencies.Plugin.SetToken("")
		},
	}

	cmd.AddCommand(cmdSet, cmdShow, cmdClear)
	return cmd
}

// resolveToken picks the flag, then the environment, then the saved token
func resolveToken(flagToken, savedToken string) string {
	if flagToken != "" {
		return flagToken
	}
	if envToken := config.TokenFromEnv(); envToken != "" {
		return envToken
	}
	return savedToken
}

// readImages loads every path and rejects the whole run if any is not an image
func readImages(paths []string) ([]*plugin.File, error) {
	files := make([]*plugin.File, 0, len(paths))
	for _, path := range paths {
		data, err := platform.ReadLocalFile(path)
		if err != nil {
			return nil, err
		}
		if ft := platform.DetectType(data); !platform.IsImageMIME(ft.MIME) {
			return nil, fmt.Errorf("not an image: %s", path)
		}
		files = append(files, &plugin.File{Name: filepath.Base(path), Data: data})
	}
	return files, nil
}
