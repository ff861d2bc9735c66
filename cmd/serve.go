package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/carbon-cli/internal/server"
)

var serveFlags struct {
	port        int
	factorsFile string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Serves the calculation engine, factor search, GWP lookup, and run store over HTTP.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		reg, err := initRegistry(serveFlags.factorsFile)
		if err != nil {
			return err
		}
		calc, err := initCalculator(reg, "")
		if err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		port := serveFlags.port
		if port == 0 {
			port = cfg.Server.Port
		}

		zap.L().Info("factor registry loaded", zap.Int("factors", reg.Count()))
		return server.New(calc, reg, st, port).Start(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVar(&serveFlags.port, "port", 0, "server port (default from config)")
	serveCmd.Flags().StringVar(&serveFlags.factorsFile, "factors-file", "", "custom factors YAML file")
	rootCmd.AddCommand(serveCmd)
}
