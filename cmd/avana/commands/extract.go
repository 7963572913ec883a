package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikey/avana-extractor/internal/adapters/intake"
	"github.com/mikey/avana-extractor/internal/core"
	"github.com/mikey/avana-extractor/internal/di"
	"github.com/mikey/avana-extractor/internal/profiles"
)

// extract [file]: read text from file or stdin and render the grouped result.
func extractCmd() *cobra.Command {
	var (
		keywords    []string
		profile     string
		format      string
		exclude     []string
		charset     string
		matchMode   string
		matchDomain bool
		groupBy     string
		shortlist   int
		maxInput    int
	)

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract and classify email addresses from text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			bindings := []struct {
				flag  string
				key   string
				value interface{}
			}{
				{"profile", "extraction.profile", profile},
				{"format", "output.format", format},
				{"exclude", "extraction.excluded_domains", exclude},
				{"charset", "extraction.charset", charset},
				{"match-mode", "classifier.match_mode", matchMode},
				{"match-domain", "classifier.match_domain", matchDomain},
				{"group-by", "classifier.group_by", groupBy},
				{"shortlist", "output.shortlist_size", shortlist},
				{"max-input-size", "extraction.max_input_size", maxInput},
			}
			for _, b := range bindings {
				if flags.Changed(b.flag) {
					cfg.Set(b.key, b.value)
				}
			}

			// nil means no override; an explicit empty list selects nothing
			var override []string
			if flags.Changed("keywords") {
				override = append([]string{}, keywords...)
			}

			raw, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			logger, err := consoleLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			container, err := di.BuildCLIContainer(cfg, logger, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("failed to build dependency container: %w", err)
			}

			return container.Invoke(func(cli *intake.CLIIntake, resolver *profiles.Resolver, repo core.KeywordRepository) error {
				defer stopRepository(repo)

				kw, err := resolver.Resolve(cmd.Context(), override, cfg.GetExtraction().Profile)
				if err != nil {
					return err
				}
				if _, err := cli.Process(cmd.Context(), raw, kw); err != nil {
					logger.Error("Extraction failed", zap.Error(err))
					return err
				}
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&keywords, "keywords", "k", nil, "comma-separated role keywords (overrides profile and config)")
	f.StringVarP(&profile, "profile", "p", "", "named keyword profile from the store")
	f.StringVarP(&format, "format", "f", "text", "output format (text, json, csv)")
	f.StringSliceVar(&exclude, "exclude", nil, "comma-separated domains to drop")
	f.StringVar(&charset, "charset", "utf-8", "input charset")
	f.StringVar(&matchMode, "match-mode", "substring", "keyword match mode (substring, token)")
	f.BoolVar(&matchDomain, "match-domain", false, "also match keywords against the domain")
	f.StringVar(&groupBy, "group-by", "host", "grouping key (host, registrable)")
	f.IntVar(&shortlist, "shortlist", 5, "addresses per domain in the shortlist (0 for all)")
	f.IntVar(&maxInput, "max-input-size", 0, "truncate input to this many bytes (0 for no limit)")
	return cmd
}

func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}
