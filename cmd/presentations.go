package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Cenagaurav77/Present-App/internal/adapters/httpapi"
	listingadapter "github.com/Cenagaurav77/Present-App/internal/adapters/render/listing"
	"github.com/Cenagaurav77/Present-App/internal/adapters/tui/names"
	"github.com/Cenagaurav77/Present-App/internal/application"
	"github.com/Cenagaurav77/Present-App/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *app) *cobra.Command {
	var ownerFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List an owner's presentations",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			owner, err := app.owner(ownerFlag)
			if err != nil {
				return err
			}

			if asJSON {
				presentations, err := app.api.List(cmd.Context(), owner)
				if err != nil {
					return err
				}
				body := make([]httpapi.PresentationJSON, 0, len(presentations))
				for _, presentation := range presentations {
					body = append(body, httpapi.ToJSON(presentation))
				}
				return writeJSON(cmd.OutOrStdout(), body)
			}

			presentations, err := fetchPresentations(cmd.Context(), cmd.ErrOrStderr(), app.api, owner)
			if err != nil {
				return err
			}

			rendered, err := app.listRenderer(presentations, listingadapter.RenderOptions{
				Now:   app.now(),
				Owner: owner,
			})
			if err != nil {
				return fmt.Errorf("render presentations: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&ownerFlag, "owner", "", "Owner ID (default: user.id)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one presentation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presentation, err := app.api.Get(cmd.Context(), domain.PresentationID(args[0]))
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), httpapi.ToJSON(presentation))
			}

			rendered, err := app.listRenderer([]domain.Presentation{presentation}, listingadapter.RenderOptions{
				Now:   app.now(),
				Owner: presentation.OwnerID,
			})
			if err != nil {
				return fmt.Errorf("render presentation: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newCreateCmd(app *app) *cobra.Command {
	var ownerFlag string

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a presentation (empty name gets an Untitled placeholder)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := app.owner(ownerFlag)
			if err != nil {
				return err
			}

			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			created, err := app.api.Create(cmd.Context(), owner, name, nil)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", created.ID, created.Name)
			return err
		},
	}

	cmd.Flags().StringVar(&ownerFlag, "owner", "", "Owner ID (default: user.id)")

	return cmd
}

func newRenameCmd(app *app) *cobra.Command {
	var ownerFlag string

	cmd := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a presentation you own",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := app.owner(ownerFlag)
			if err != nil {
				return err
			}

			renamed, err := app.api.Rename(cmd.Context(), domain.PresentationID(args[0]), owner, args[1])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", renamed.ID, renamed.Name)
			return err
		},
	}

	cmd.Flags().StringVar(&ownerFlag, "owner", "", "Owner ID (default: user.id)")

	return cmd
}

func newRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a presentation",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.PresentationID(args[0])
			if err := app.api.Remove(cmd.Context(), id); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", id)
			return err
		},
	}
}

func newSavePagesCmd(app *app) *cobra.Command {
	var ownerFlag string

	cmd := &cobra.Command{
		Use:   "save-pages <id> <file|->",
		Short: "Replace a presentation's pages with a JSON array read from a file or stdin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := app.owner(ownerFlag)
			if err != nil {
				return err
			}

			pages, err := readPages(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}

			saved, err := app.api.SavePages(cmd.Context(), domain.PresentationID(args[0]), owner, pages)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d pages\n", saved.ID, saved.PageCount())
			return err
		},
	}

	cmd.Flags().StringVar(&ownerFlag, "owner", "", "Owner ID (default: user.id)")

	return cmd
}

func newNamesCmd(app *app) *cobra.Command {
	var ownerFlag string

	cmd := &cobra.Command{
		Use:   "names",
		Short: "Edit presentation names interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			owner, err := app.owner(ownerFlag)
			if err != nil {
				return err
			}

			reconciler := application.NewListReconciler(app.api, owner)
			return names.Run(cmd.Context(), reconciler, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&ownerFlag, "owner", "", "Owner ID (default: user.id)")

	return cmd
}

func readPages(stdin io.Reader, source string) ([]domain.Page, error) {
	var data []byte
	var err error
	if strings.TrimSpace(source) == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("read pages: %w", err)
	}

	var pages []domain.Page
	if err := json.Unmarshal(data, &pages); err != nil {
		return nil, fmt.Errorf("decode pages (want a JSON array of objects): %w", err)
	}
	if err := domain.ValidatePages(pages); err != nil {
		return nil, err
	}

	return pages, nil
}

func writeJSON(out io.Writer, payload any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
