package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/viglianco/go-sales-ledger/cmd/setup"
	"github.com/viglianco/go-sales-ledger/internal/common/graceful"
	"github.com/viglianco/go-sales-ledger/internal/common/log"
	"github.com/viglianco/go-sales-ledger/internal/deliveries/consumer"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "consumer",
	Short: "Consumer is a consumer application for handling ledger events",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runConsumerCmd)

	runConsumerCmd.Flags().StringP(runConsumerCmdName, "n", consumer.LedgerReconciler, "consumer name")
}

var (
	runConsumerCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run consumer",
		Long:    fmt.Sprintf("Run a kafka consumer, available consumer type: %s", strings.Join(consumer.Names(), ", ")),
		Example: "consumer run -n=ledger_reconciler",
		Run:     runConsumer,
	}
	runConsumerCmdName = "name"
)

func runConsumer(ccmd *cobra.Command, args []string) {
	var (
		ctx, cancel = context.WithCancel(context.Background())
		starters    []graceful.ProcessStarter
		stoppers    []graceful.ProcessStopper
	)
	defer cancel()

	consumerName, _ := ccmd.Flags().GetString(runConsumerCmdName)
	log.Infof(ctx, "initializing consumer: %s", consumerName)

	s, stopperContract, err := setup.Init("consumer-" + consumerName)
	if err != nil {
		_ = graceful.StopProcess(5*time.Second, stopperContract...)
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}

	consumerProcess, err := consumer.NewKafkaConsumer(ctx, consumerName, s.Config, s.Service, s.Metrics)
	if err != nil {
		_ = graceful.StopProcess(s.Config.App.GracefulTimeout, stopperContract...)
		log.Fatalf(ctx, "failed to setup consumer: %v", err)
	}

	healthCheckProcess := consumer.NewHTTPServer(s.Config)

	starters = append(starters, consumerProcess.Start(), healthCheckProcess.Start())
	// stoppers run in reverse: health check first, setup resources last
	stoppers = append(stoppers, stopperContract...)
	stoppers = append(stoppers, func(context.Context) error {
		cancel()
		return nil
	})
	stoppers = append(stoppers, consumerProcess.Stop())
	stoppers = append(stoppers, healthCheckProcess.Stop())

	graceful.StartProcessAtBackground(starters...)
	log.Infof(ctx, "consumer %s started, waiting for shutdown signal...", consumerName)

	graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)
	log.Infof(ctx, "consumer %s stopped successfully!", consumerName)
}
