package cmd

import (
	"fmt"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"techpulse/internal/apihandlers"
)

var serveAddr string

// serveCmd runs the HTTP API server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the TechPulse HTTP API server",
	Long: `Starts an HTTP server exposing the content listing, discovery,
generation and engagement endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		defer appInstance.Close()

		router := gin.Default()
		apihandlers.RegisterRoutes(router, &apihandlers.APIHandler{App: appInstance})

		addr := serveAddr
		if addr == "" {
			addr = appInstance.Config.Server.Address
		}
		log.Infof("starting TechPulse API server on %s", addr)
		if err := router.Run(addr); err != nil {
			return fmt.Errorf("failed to run API server: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
