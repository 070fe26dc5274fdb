package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"getwise/internal/config"
	"getwise/internal/dto"
	"getwise/internal/models"
	"getwise/internal/server"
	"getwise/internal/services"
	"getwise/internal/validation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// adviceFlags are shared by the commands that render advice locally
type adviceFlags struct {
	snapshotPath string
	seed         int64
	locale       string
}

func (f *adviceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.snapshotPath, "snapshot", "s", "", `snapshot JSON file ("-" for stdin)`)
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "fix savings tip sampling (0 uses ADVICE_TIP_SEED or a random seed)")
	cmd.Flags().StringVar(&f.locale, "locale", "", "digit grouping locale, e.g. en-IN or en-US (default ADVICE_LOCALE)")
	_ = cmd.MarkFlagRequired("snapshot")
}

func adviseCmd() *cobra.Command {
	var flags adviceFlags

	cmd := &cobra.Command{
		Use:   "advise <kind>",
		Short: "Render one kind of advice for a snapshot",
		Long: fmt.Sprintf(`Render Markdown advice for a snapshot file.

Kinds: %s`, strings.Join(adviceKindNames(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.GetValidator().GetValidate().Var(args[0], "advice_kind"); err != nil {
				return fmt.Errorf("unknown advice kind %q: must be one of %s", args[0], strings.Join(adviceKindNames(), ", "))
			}

			service, snapshot, err := flags.prepare(cmd)
			if err != nil {
				return err
			}

			result, err := service.GenerateAdvice(cmd.Context(), models.AdviceKind(args[0]), snapshot)
			if err != nil {
				return err
			}
			return writeMarkdown(cmd.OutOrStdout(), result.Advice)
		},
	}
	flags.register(cmd)
	return cmd
}

func askCmd() *cobra.Command {
	var flags adviceFlags
	var showTopic bool

	cmd := &cobra.Command{
		Use:   "ask <query>",
		Short: "Answer a free-text question about a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, snapshot, err := flags.prepare(cmd)
			if err != nil {
				return err
			}

			answer, err := service.AnswerQuery(cmd.Context(), args[0], snapshot)
			if err != nil {
				return err
			}
			if showTopic {
				fmt.Fprintf(cmd.ErrOrStderr(), "topic: %s\n", answer.Topic)
			}
			return writeMarkdown(cmd.OutOrStdout(), answer.Advice)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&showTopic, "show-topic", false, "print the routed topic to stderr")
	return cmd
}

func categoryCmd() *cobra.Command {
	var flags adviceFlags

	cmd := &cobra.Command{
		Use:   "category <name>",
		Short: "Analyze one category of a snapshot against its guideline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, snapshot, err := flags.prepare(cmd)
			if err != nil {
				return err
			}

			result, err := service.AnalyzeCategory(cmd.Context(), args[0], snapshot)
			if errors.Is(err, services.ErrCategoryNotFound) {
				return fmt.Errorf("category %q is not in the snapshot", args[0])
			}
			if err != nil {
				return err
			}
			return writeMarkdown(cmd.OutOrStdout(), result.Advice)
		},
	}
	flags.register(cmd)
	return cmd
}

// prepare builds an advisory service from the environment overridden by flags and loads the snapshot
func (f *adviceFlags) prepare(cmd *cobra.Command) (services.AdvisoryServiceInterface, *models.FinancialSnapshot, error) {
	cfg := config.Load()
	if f.locale != "" {
		cfg.Advisory.Locale = f.locale
	}
	if f.seed != 0 {
		cfg.Advisory.TipSeed = f.seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	engine, err := server.BuildEngine(cfg.Advisory)
	if err != nil {
		return nil, nil, err
	}

	snapshot, err := readSnapshot(cmd.InOrStdin(), f.snapshotPath)
	if err != nil {
		return nil, nil, err
	}

	logger := services.NewAdviceLogger(slog.Default())
	service := services.NewAdvisoryService(engine, services.NewPrometheusMetrics(prometheus.NewRegistry()), logger)
	return service, snapshot, nil
}

// readSnapshot decodes and validates a snapshot file in the same shape the API accepts
func readSnapshot(stdin io.Reader, path string) (*models.FinancialSnapshot, error) {
	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot: %w", err)
		}
		defer file.Close()
		r = file
	}

	var req dto.SnapshotRequest
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}

	if err := validation.GetValidator().Struct(req); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	return req.ToSnapshot(), nil
}

func writeMarkdown(w io.Writer, markdown string) error {
	if _, err := io.WriteString(w, strings.TrimRight(markdown, "\n")+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func adviceKindNames() []string {
	kinds := models.AllAdviceKinds()
	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, string(kind))
	}
	return names
}
