// Command radarctl holds operator tasks: the scheduled hard purge, key
// generation and organizer token minting.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"radar/internal/answercrypt"
	"radar/internal/app"
	"radar/internal/datarights/service"
	jwttoken "radar/internal/jwt_token"
	"radar/internal/platform/config"
	"radar/internal/platform/logger"
	"radar/pkg/requestcontext"
)

type cli struct {
	loadConfig func() (*config.Config, error)
	newLogger  func(config.LogConfig) *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := &cli{loadConfig: config.Load, newLogger: logger.New}
	if err := c.rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "radarctl",
		Short:         "Operator tasks for the radar service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(c.purgeCmd(), c.keygenCmd(), c.tokenCmd())
	return root
}

func (c *cli) purgeCmd() *cobra.Command {
	var window time.Duration
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Hard-erase participants whose deletion request is older than the window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("window") {
				window = cfg.ErasureWindow
			}
			if window <= 0 || window > service.MaxErasureWindow {
				return fmt.Errorf("--window must be in (0, %s]", service.MaxErasureWindow)
			}
			log := c.newLogger(cfg.Log)
			defer func() { _ = log.Sync() }()

			a, err := app.Build(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			ctx := requestcontext.WithTime(cmd.Context(), time.Now().UTC())
			report, err := a.DataRights.PurgeExpired(ctx, window)
			if err != nil {
				return err
			}
			if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if report.Failed > 0 || report.Incomplete > 0 {
				return fmt.Errorf("purge left %d failed and %d incomplete erasures", report.Failed, report.Incomplete)
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&window, "window", config.DefaultErasureWindow, "erase deletions requested longer ago than this (defaults to ERASURE_WINDOW)")
	return cmd
}

func (c *cli) keygenCmd() *cobra.Command {
	var urlSafe bool
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Print a new ANSWER_ENCRYPTION_KEY",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := answercrypt.GenerateKey()
			if err != nil {
				return err
			}
			if urlSafe {
				raw, err := base64.StdEncoding.DecodeString(key)
				if err != nil {
					return err
				}
				key = base64.RawURLEncoding.EncodeToString(raw)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), key)
			return err
		},
	}
	cmd.Flags().BoolVar(&urlSafe, "url", false, "emit unpadded URL-safe base64")
	return cmd
}

func (c *cli) tokenCmd() *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token, organizer by default",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if subject == "" {
				return fmt.Errorf("--subject is required")
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			jwt := jwttoken.NewJWTService(cfg.Server.JWTSigningKey, cfg.Server.JWTIssuer, cfg.Server.JWTAudience)
			token, expiresAt, err := jwt.GenerateAccessToken(subject, requestcontext.Role(role), ttl)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"access_token": token,
				"expires_at":   expiresAt,
				"role":         role,
			})
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "organizer identifier or participant ID")
	cmd.Flags().StringVar(&role, "role", string(requestcontext.RoleOrganizer), "organizer or participant")
	cmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "token lifetime")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
