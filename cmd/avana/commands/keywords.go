package commands

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mikey/avana-extractor/internal/adapters/keywords"
	"github.com/mikey/avana-extractor/internal/core"
	"github.com/mikey/avana-extractor/internal/di"
)

// keywords: manage named keyword profiles in the configured store.
func keywordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Manage named keyword profiles",
	}
	cmd.AddCommand(keywordsListCmd(), keywordsShowCmd(), keywordsSetCmd(), keywordsDeleteCmd())
	return cmd
}

// withRepository runs fn against the configured keyword store and closes it afterwards
func withRepository(cmd *cobra.Command, fn func(repo core.KeywordRepository) error) error {
	logger, err := consoleLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	container, err := di.BuildCLIContainer(cfg, logger, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("failed to build dependency container: %w", err)
	}

	return container.Invoke(func(repo core.KeywordRepository) error {
		defer stopRepository(repo)
		return fn(repo)
	})
}

func keywordsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, func(repo core.KeywordRepository) error {
				names, err := repo.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(names) == 0 {
					fmt.Fprintln(out, "No keyword profiles stored.")
					return nil
				}
				for _, name := range names {
					fmt.Fprintln(out, name)
				}
				return nil
			})
		},
	}
}

func keywordsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the keywords of a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, func(repo core.KeywordRepository) error {
				profile, err := repo.Get(cmd.Context(), args[0])
				if errors.Is(err, keywords.ErrNotFound) {
					return fmt.Errorf("no keyword profile named %q", args[0])
				}
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintf(tw, "Name:\t%s\n", profile.Name)
				fmt.Fprintf(tw, "Keywords:\t%s\n", strings.Join(profile.Keywords, ", "))
				fmt.Fprintf(tw, "Updated:\t%s\n", profile.UpdatedAt.Format("2006-01-02 15:04:05 MST"))
				return tw.Flush()
			})
		},
	}
}

func keywordsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <keyword,keyword,...>",
		Short: "Create or replace a profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, func(repo core.KeywordRepository) error {
				profile := &core.RoleConfig{
					Name:     args[0],
					Keywords: strings.Split(args[1], ","),
				}
				if err := repo.Save(cmd.Context(), profile); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", strings.TrimSpace(args[0]))
				return nil
			})
		},
	}
}

func keywordsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, func(repo core.KeywordRepository) error {
				err := repo.Delete(cmd.Context(), args[0])
				if errors.Is(err, keywords.ErrNotFound) {
					return fmt.Errorf("no keyword profile named %q", args[0])
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}
}

// stopRepository closes the keyword store if it holds resources
func stopRepository(repo core.KeywordRepository) {
	if stopper, ok := repo.(interface{ Stop() }); ok {
		stopper.Stop()
	}
}
