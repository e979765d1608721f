package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/shopmesh/internal/config"
	"github.com/GlebRadaev/shopmesh/internal/smoke"
	"github.com/GlebRadaev/shopmesh/pkg/clients"
	"github.com/GlebRadaev/shopmesh/pkg/logger"
)

func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		cfg    smoke.Config
		logLvl string
	)

	cmd := &cobra.Command{
		Use:          "smoke",
		Short:        "Run the register, order and payment flow against the three services",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.InitLogger(&config.Config{LogLvl: logLvl}); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			report, err := smoke.New(cfg, clients.NewHTTPClient()).Run(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "user:         %s (id %d)\n", cfg.Username, report.UserID)
			fmt.Fprintf(out, "order:        %s (%d listed)\n", report.OrderID, report.Orders)
			fmt.Fprintf(out, "transactions: %d distinct\n", len(report.Transactions))
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.IdentityURL, "identity", "http://localhost:5001", "identity service base URL")
	cmd.Flags().StringVar(&cfg.OrdersURL, "orders", "http://localhost:5002", "orders service base URL")
	cmd.Flags().StringVar(&cfg.PaymentURL, "payment", "http://localhost:5003", "payment service base URL")
	cmd.Flags().StringVarP(&cfg.Username, "username", "u", "alice", "user to register and log in as")
	cmd.Flags().StringVarP(&cfg.Password, "password", "p", "pw1", "password of the user")
	cmd.Flags().StringVar(&cfg.Item, "item", "book", "item of the created order")
	cmd.Flags().Float64Var(&cfg.Price, "price", 10, "price of the order and amount of each payment")
	cmd.Flags().IntVarP(&cfg.Parallel, "parallel", "n", 8, "number of concurrent payments")
	cmd.Flags().StringVarP(&logLvl, "log-level", "l", "info", "log level (debug, info, error)")

	return cmd
}
