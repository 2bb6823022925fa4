package quotectl

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/benbjohnson/clock"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"rating-service/internal/application"
	"rating-service/internal/config"
	"rating-service/internal/domain"
	"rating-service/internal/infrastructure/ratingclient"
	"rating-service/pkg/contextx"
	"rating-service/pkg/httpx/req"
	"rating-service/pkg/logx"
	"rating-service/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	flagFile     = "file"
	flagServer   = "server"
	flagLogLevel = "log-level"
	stdinFile    = "-"
)

var errRejected = errors.New("quote request rejected")

// NewRootCmd builds the quotectl command tree. Requests are priced in process
// unless --server points at a running rating service.
func NewRootCmd(clk clock.Clock) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quotectl",
		Short: "Price insurance quote requests",
		Long: `Reads quote requests from a YAML or JSON file and prints the resulting quotes as JSON.

Example:
  quotectl quote -f request.yaml
  quotectl bulk -f requests.json --server http://localhost:8080`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP(flagFile, "f", stdinFile, "Request file (YAML or JSON), - for stdin")
	rootCmd.PersistentFlags().StringP(flagServer, "s", "", "Rating service base URL; priced locally when empty")
	rootCmd.PersistentFlags().StringP(flagLogLevel, "l", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newQuoteCmd(clk),
		newBulkCmd(clk),
	)

	return rootCmd
}

func newQuoteCmd(clk clock.Clock) *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Price a single quote request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newQuoter(cmd, clk)
			if err != nil {
				return err
			}

			var request rest.QuoteRequest

			if err := readFile(cmd, &request); err != nil {
				return err
			}

			if err := req.Validate(cmd.Context(), &request); err != nil {
				return fmt.Errorf("req.Validate: %w", err)
			}

			response, err := q.Quote(cmd.Context(), request)
			if err != nil {
				return reportRejection(cmd.ErrOrStderr(), err)
			}

			return writeJSON(cmd.OutOrStdout(), response)
		},
	}
}

func newBulkCmd(clk clock.Clock) *cobra.Command {
	return &cobra.Command{
		Use:   "bulk",
		Short: "Price a list of quote requests independently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newQuoter(cmd, clk)
			if err != nil {
				return err
			}

			var requests []rest.QuoteRequest

			if err := readFile(cmd, &requests); err != nil {
				return err
			}

			for i := range requests {
				if err := req.Validate(cmd.Context(), &requests[i]); err != nil {
					return fmt.Errorf("item %d: req.Validate: %w", i, err)
				}
			}

			items, err := q.BulkQuote(cmd.Context(), requests)
			if err != nil {
				return reportRejection(cmd.ErrOrStderr(), err)
			}

			return writeJSON(cmd.OutOrStdout(), items)
		},
	}
}

func newQuoter(cmd *cobra.Command, clk clock.Clock) (quoter, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	logLevel, err := cmd.Flags().GetString(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("flags.GetString: %w", err)
	}

	log, err := logx.New(cmd.ErrOrStderr(), logLevel, logx.FormatText)
	if err != nil {
		return nil, fmt.Errorf("logx.New: %w", err)
	}

	cmd.SetContext(contextx.WithLogger(cmd.Context(), log))

	serverURL, err := cmd.Flags().GetString(flagServer)
	if err != nil {
		return nil, fmt.Errorf("flags.GetString: %w", err)
	}

	if serverURL != "" {
		return ratingclient.New(serverURL), nil
	}

	return localQuoter{quoteService: application.NewQuoteService(clk, cfg.Quote, nil)}, nil
}

// readFile decodes the --file argument. JSON is a subset of YAML, so one
// decoder covers both formats.
func readFile(cmd *cobra.Command, dest any) error {
	path, err := cmd.Flags().GetString(flagFile)
	if err != nil {
		return fmt.Errorf("flags.GetString: %w", err)
	}

	var data []byte

	if path == stdinFile {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	return nil
}

// reportRejection prints underwriting messages one per line before returning
// errRejected. Other errors are returned unchanged.
func reportRejection(w io.Writer, err error) error {
	messages, ok := domain.ValidationMessages(err)

	var apiErr *ratingclient.APIError
	if !ok && errors.As(err, &apiErr) && len(apiErr.Body.Details) > 0 {
		messages, ok = apiErr.Body.Details, true
	}

	if !ok {
		return err
	}

	for _, m := range messages {
		fmt.Fprintln(w, "- "+m) //nolint:errcheck
	}

	return errRejected
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(b)); err != nil {
		return fmt.Errorf("fmt.Fprintln: %w", err)
	}

	return nil
}
