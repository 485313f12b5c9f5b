/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/valpere/voicemsg/internal/config"
	"github.com/valpere/voicemsg/internal/log"
	"github.com/valpere/voicemsg/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	Long: `Run the HTTP service.

Routes:
  GET /processed_voice_message?transcription=...&language=...
  GET /
  GET /healthz

The LLM endpoint is read from OPENWEBUI_BASE_URL / OPENWEBUI_API_KEY
(or VOICEMSG_LLM_BASE_URL / VOICEMSG_LLM_API_KEY).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}

		p, err := buildPolisher(cfg)
		if err != nil {
			return err
		}

		srv := server.New(cfg.Server, p)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		log.Info().Msg("received shutdown signal")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "0.0.0.0:8000", "Listen address")
	serveCmd.Flags().Duration("shutdown-timeout", 10*time.Second, "Grace period for in-flight requests on shutdown")
	serveCmd.Flags().Bool("gzip", true, "Compress responses for clients that accept gzip")

	v.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	v.BindPFlag("server.shutdown_timeout", serveCmd.Flags().Lookup("shutdown-timeout"))
	v.BindPFlag("server.gzip", serveCmd.Flags().Lookup("gzip"))
}
