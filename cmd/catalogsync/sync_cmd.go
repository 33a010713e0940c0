package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"catalog-sync/internal/domain"
	"catalog-sync/internal/export"
	"catalog-sync/internal/mappers"
	"catalog-sync/internal/spreadsheet"
	"catalog-sync/internal/sync"
)

func newSyncCmd(a *app) *cobra.Command {
	var (
		file         string
		sheet        string
		profile      string
		profilesFile string
		start        int
		failedLog    string
		reportCSV    string
		verbose      bool
		upload       bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Create or update universities and courses from a spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if profile == "" {
				profile = a.cfg.Sync.Profile
			}
			if profilesFile == "" {
				profilesFile = a.cfg.Sync.ProfilesFile
			}
			if failedLog == "" {
				failedLog = a.cfg.Sync.FailedLog
			}

			profiles, err := mappers.LoadProfiles(profilesFile)
			if err != nil {
				return err
			}
			p, err := mappers.Lookup(profiles, profile)
			if err != nil {
				return err
			}

			s, err := spreadsheet.ReadFile(file, sheet, domain.ColUniversity)
			if err != nil {
				return err
			}

			reporter := export.NewReporter(verbose)
			syncer := sync.New(a.catalogClient(), p, reporter, a.log)
			a.log.WithField("run_id", syncer.RunID).Infof("syncing %s (%d rows)", file, len(s.Rows))

			_, runErr := syncer.Run(ctx, s.Rows, start)

			if err := reporter.WriteFailureLog(failedLog); err != nil {
				return err
			}
			artifacts := []string{failedLog}
			if reportCSV != "" {
				if err := writeReport(reportCSV, reporter); err != nil {
					return err
				}
				artifacts = append(artifacts, reportCSV)
			}
			a.log.Infof("failure log written to %s (%d entries)", failedLog, len(reporter.Failures()))

			if runErr != nil {
				return runErr
			}
			if upload {
				return a.upload(ctx, artifacts...)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Input xlsx workbook (required)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet name (default first sheet)")
	cmd.Flags().StringVar(&profile, "profile", "", "Field-mapping profile (default SYNC_PROFILE)")
	cmd.Flags().StringVar(&profilesFile, "profiles-file", "", "YAML file with extra profiles (default SYNC_PROFILES_FILE)")
	cmd.Flags().IntVar(&start, "start", 0, "Skip this many data rows (resume a partial run)")
	cmd.Flags().StringVar(&failedLog, "failed-log", "", "Failure log path (default SYNC_FAILED_LOG)")
	cmd.Flags().StringVar(&reportCSV, "report", "", "Also write every row outcome to this CSV")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Append the full outcome to failure lines")
	cmd.Flags().BoolVar(&upload, "sftp", false, "Upload the produced artifacts over SFTP")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func writeReport(path string, r *export.Reporter) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create report")
	}
	if err := export.WriteOutcomesCSV(f, r.Outcomes()); err != nil {
		f.Close()
		return errors.Wrap(err, "write report")
	}
	return errors.Wrap(f.Close(), "close report")
}
