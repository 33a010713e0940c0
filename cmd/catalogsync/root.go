package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"catalog-sync/internal/catalog"
	"catalog-sync/internal/config"
	"catalog-sync/internal/logging"
	"catalog-sync/internal/sftpclient"
)

// app is the state shared by subcommands once the root pre-run has loaded it.
type app struct {
	cfg config.Config
	log *logrus.Logger
}

func (a *app) catalogClient() *catalog.Client {
	c := catalog.New(a.cfg.Catalog.BaseURL)
	c.BearerToken = a.cfg.Catalog.BearerToken
	c.HTTP.Timeout = a.cfg.Catalog.HTTPTimeout
	return c
}

// upload pushes each artifact to the SFTP drop box under its base name.
func (a *app) upload(ctx context.Context, paths ...string) error {
	for _, p := range paths {
		if err := sftpclient.UploadFile(ctx, a.cfg.SFTPConfig(), p, filepath.Base(p)); err != nil {
			return err
		}
		a.log.WithFields(logrus.Fields{"file": p, "dir": a.cfg.SFTP.Dir}).Info("artifact uploaded")
	}
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		logLevel string
		envFiles []string
	)

	cmd := &cobra.Command{
		Use:           "catalogsync",
		Short:         "Push university and course spreadsheets into the marketplace catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFiles...)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = log
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")
	cmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "Env files to load (default .env,.env.local)")
	cmd.AddCommand(newSyncCmd(a), newLinkCommissionCmd(a))
	return cmd
}

func execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "ERR:", err)
		return 1
	}
	return 0
}
