package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/viglianco/go-sales-ledger/cmd/setup"
	"github.com/viglianco/go-sales-ledger/internal/common/graceful"
	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/deliveries/job"
	"github.com/viglianco/go-sales-ledger/internal/models"
	"github.com/viglianco/go-sales-ledger/internal/services"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Worker application to configuring and running a job",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runJobCmd)

	runJobCmd.Flags().StringP(runJobCmdName, "n", "", "job name")
	_ = runJobCmd.MarkFlagRequired(runJobCmdName)
	runJobCmd.Flags().StringP(runJobCmdVersion, "v", "", "job version")
	_ = runJobCmd.MarkFlagRequired(runJobCmdVersion)
	runJobCmd.Flags().StringP(runJobCmdDate, "d", "", "job running date, YYYY-MM-DD")
	runJobCmd.Flags().IntP(runJobCmdMonth, "m", 0, "month of the running date's year, 0 for the whole year")
	runJobCmd.Flags().Int64P(runJobCmdBatch, "b", 0, "upload batch id")
}

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List job name and version",
		Long:  ``,
		Run:   list,
	}
)

func list(ccmd *cobra.Command, args []string) {
	// the routes only need the service to exist
	j := job.New(&services.Services{})
	for _, name := range j.List() {
		fmt.Fprintln(ccmd.OutOrStdout(), name)
	}
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run execution job",
		Long:    ``,
		Example: "worker run -n=reconcile-totals -v=v1 -d=2024-01-01 -m=3",
		RunE:    runJob,
	}
	runJobCmdName    = "name"
	runJobCmdVersion = "version"
	runJobCmdDate    = "date"
	runJobCmdMonth   = "month"
	runJobCmdBatch   = "batch"
)

func runJob(ccmd *cobra.Command, args []string) error {
	var (
		ctx = context.Background()
	)

	name, _ := ccmd.Flags().GetString(runJobCmdName)
	version, _ := ccmd.Flags().GetString(runJobCmdVersion)
	date, _ := ccmd.Flags().GetString(runJobCmdDate)
	month, _ := ccmd.Flags().GetInt(runJobCmdMonth)
	batchID, _ := ccmd.Flags().GetInt64(runJobCmdBatch)

	s, stoppers, err := setup.Init("job")
	if err != nil {
		_ = graceful.StopProcess(5*time.Second, stoppers...)
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}
	defer func() {
		_ = graceful.StopProcess(s.Config.App.GracefulTimeout, stoppers...)
	}()

	j := job.New(s.Service)
	err = j.Start(ctx, models.JobFlag{
		JobName: name,
		Version: version,
		Date:    date,
		Month:   month,
		BatchID: batchID,
	})
	log.Info(ctx, "job server stopped!")

	return err
}
