package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/viglianco/go-sales-ledger/cmd/setup"
	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/common/metrics"
	"github.com/viglianco/go-sales-ledger/internal/common/salesapi"
	"github.com/viglianco/go-sales-ledger/internal/config"
	"github.com/viglianco/go-sales-ledger/internal/models"
	"github.com/viglianco/go-sales-ledger/internal/salesboard"
)

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "salesboard",
	Short: "Daily sales board with manual balances",
	Long:  `Shows the projected daily ledger and edits manual values through the sales API.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

const (
	flagYear     = "year"
	flagMonth    = "month"
	flagBatch    = "batch"
	flagDateFrom = "date-from"
	flagDateTo   = "date-to"
	flagDate     = "date"
	flagField    = "field"
	flagValue    = "value"
	flagOutbox   = "outbox"
)

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(syncCmd)

	rootCmd.PersistentFlags().IntP(flagYear, "y", 0, "year, defaults to the latest year with sales")
	rootCmd.PersistentFlags().IntP(flagMonth, "m", 0, "month 1-12")
	rootCmd.PersistentFlags().Int64P(flagBatch, "b", 0, "upload batch id")
	rootCmd.PersistentFlags().String(flagDateFrom, "", "first day, YYYY-MM-DD")
	rootCmd.PersistentFlags().String(flagDateTo, "", "last day, YYYY-MM-DD")
	rootCmd.PersistentFlags().String(flagOutbox, "", "directory of unsent edits, defaults to the user cache dir")

	editCmd.Flags().StringP(flagDate, "d", "", "day to edit, YYYY-MM-DD")
	_ = editCmd.MarkFlagRequired(flagDate)
	editCmd.Flags().StringP(flagField, "f", "", "manual field, e.g. closingBalance")
	editCmd.Flags().StringP(flagValue, "v", "", `typed amount, e.g. "1.234,50"`)
}

var (
	showCmd = &cobra.Command{
		Use:     "show",
		Short:   "Print the projected window",
		Example: "salesboard show --year 2024 --month 1",
		RunE:    show,
	}

	editCmd = &cobra.Command{
		Use:     "edit",
		Short:   "Edit one manual value and store the row",
		Example: `salesboard edit --date 2024-01-02 --field closingBalance --value "1.234,50"`,
		RunE:    edit,
	}

	syncCmd = &cobra.Command{
		Use:     "sync",
		Short:   "Send the edits kept in the outbox",
		Example: "salesboard sync",
		RunE:    syncOutbox,
	}
)

func windowFilter(ccmd *cobra.Command) (models.WindowFilter, error) {
	flags := ccmd.Flags()
	req := models.DailySalesRequest{}
	req.Year, _ = flags.GetInt(flagYear)
	req.Month, _ = flags.GetInt(flagMonth)
	req.DateFrom, _ = flags.GetString(flagDateFrom)
	req.DateTo, _ = flags.GetString(flagDateTo)
	if batchID, _ := flags.GetInt64(flagBatch); batchID > 0 {
		req.BatchID = &batchID
	}
	return req.ToWindowFilter()
}

func openOutbox(ccmd *cobra.Command) (*salesboard.Outbox, error) {
	dir, _ := ccmd.Flags().GetString(flagOutbox)
	if dir == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("no --outbox given and no user cache dir: %w", err)
		}
		dir = filepath.Join(cacheDir, "salesboard", "outbox")
	}
	return salesboard.OpenOutbox(dir)
}

func newClient() (salesapi.Client, metrics.Metrics, config.Config, error) {
	cfg, err := setup.InitLogger()
	if err != nil {
		return nil, nil, cfg, fmt.Errorf("failed to load config: %w", err)
	}
	mtc := metrics.New()
	return salesapi.New(cfg.SalesAPI, mtc), mtc, cfg, nil
}

func newSession(ctx context.Context, ccmd *cobra.Command, outbox *salesboard.Outbox) (*salesboard.Session, error) {
	client, mtc, cfg, err := newClient()
	if err != nil {
		return nil, err
	}

	filter, err := windowFilter(ccmd)
	if err != nil {
		return nil, err
	}

	session := salesboard.NewSession(client,
		salesboard.WithPersistTimeout(cfg.Ledger.PersistTimeout),
		salesboard.WithOutbox(outbox),
		salesboard.WithMetrics(mtc),
	)
	if err := session.Load(ctx, filter); err != nil {
		return nil, err
	}
	return session, nil
}

func show(ccmd *cobra.Command, args []string) error {
	ctx := log.EnsureCorrelationID(ccmd.Context())

	outbox, err := openOutbox(ccmd)
	if err != nil {
		return err
	}
	defer outbox.Close()

	session, err := newSession(ctx, ccmd, outbox)
	if err != nil {
		return err
	}

	pending, err := outbox.PendingKeys()
	if err != nil {
		return err
	}
	fmt.Fprintln(ccmd.OutOrStdout(), salesboard.Render(session.Projection(), pending))
	return nil
}

func edit(ccmd *cobra.Command, args []string) error {
	ctx := log.EnsureCorrelationID(ccmd.Context())

	rawDate, _ := ccmd.Flags().GetString(flagDate)
	date, err := civil.ParseDate(rawDate)
	if err != nil {
		return fmt.Errorf("invalid --date %q: %w", rawDate, err)
	}
	field, _ := ccmd.Flags().GetString(flagField)
	value, _ := ccmd.Flags().GetString(flagValue)
	if !ccmd.Flags().Changed(flagField) || !ccmd.Flags().Changed(flagValue) {
		if field, value, err = promptEdit(field, value); err != nil {
			return err
		}
	}

	outbox, err := openOutbox(ccmd)
	if err != nil {
		return err
	}
	defer outbox.Close()

	session, err := newSession(ctx, ccmd, outbox)
	if err != nil {
		return err
	}

	row, ok := session.Projection().Row(date)
	if !ok {
		return fmt.Errorf("no sales on %s in the selected window", date)
	}

	res, err := session.ApplyEdit(ctx, salesboard.Edit{
		BatchID: row.Record.BatchID,
		Date:    date,
		Field:   models.ManualField(field),
		Value:   value,
	})
	if err != nil {
		return err
	}

	out := ccmd.OutOrStdout()
	fmt.Fprintln(out, salesboard.Render(res.Projection, session.Unsynced()))

	// a failed write keeps the local value; report it without failing the command
	if err := <-res.Persisted; err != nil {
		fmt.Fprintln(out, warnStyle.Render(fmt.Sprintf("warning: %s was not stored, kept in the outbox: %v", date, err)))
		return nil
	}
	fmt.Fprintf(out, "stored %s of %s\n", field, date)
	return nil
}

func syncOutbox(ccmd *cobra.Command, args []string) error {
	ctx := log.EnsureCorrelationID(ccmd.Context())

	outbox, err := openOutbox(ccmd)
	if err != nil {
		return err
	}
	defer outbox.Close()

	client, _, _, err := newClient()
	if err != nil {
		return err
	}

	res, err := outbox.Sync(ctx, client)
	if err != nil {
		return err
	}

	out := ccmd.OutOrStdout()
	fmt.Fprintf(out, "sent %d edits\n", res.Sent)
	for key, err := range res.Failed {
		fmt.Fprintln(out, warnStyle.Render(fmt.Sprintf("warning: batch %d on %s is still pending: %v", key.BatchID, key.Date, err)))
	}
	return nil
}

// promptEdit asks for whatever the flags left out.
func promptEdit(field, value string) (string, string, error) {
	options := make([]huh.Option[string], 0, len(models.AllManualFields))
	for _, f := range models.AllManualFields {
		options = append(options, huh.NewOption(f.String(), string(f)))
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Field").
				Options(options...).
				Value(&field),
			huh.NewInput().
				Title("Amount").
				Description(`es-AR notation, e.g. 1.234,50`).
				Value(&value),
		),
	).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return "", "", errors.New("edit cancelled")
	}
	return field, value, err
}
