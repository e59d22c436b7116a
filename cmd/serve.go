package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/luminghao/godcps/internal/logger"
	"github.com/luminghao/godcps/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the sizing calculators over HTTP",
	Long: `Start an HTTP API exposing the capacity, battery and rectifier
calculators. Each client session owns an isolated load collection,
created via POST /api/sessions.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8080", "Listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(logger.New("server"))
	return srv.Run(ctx, serveAddr)
}
