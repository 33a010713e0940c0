package main

import (
	"github.com/spf13/cobra"

	"catalog-sync/internal/commission"
	"catalog-sync/internal/domain"
	"catalog-sync/internal/export"
	"catalog-sync/internal/spreadsheet"
)

func newLinkCommissionCmd(a *app) *cobra.Command {
	var (
		file      string
		sheet     string
		company   string
		companyID string
		out       string
		upload    bool
	)

	cmd := &cobra.Command{
		Use:   "link-commission",
		Short: "Link every university of a spreadsheet to a partner company",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := spreadsheet.ReadFile(file, sheet, domain.ColUniversity)
			if err != nil {
				return err
			}
			label := company
			if companyID == "" {
				if companyID, err = commission.CompanyID(company); err != nil {
					return err
				}
			} else if !cmd.Flags().Changed("company") {
				label = companyID
			}
			if out == "" {
				out = export.MappingLogPath(file, label)
			}

			linker := commission.NewLinker(a.catalogClient(), companyID, a.log)
			rows, runErr := linker.Run(ctx, s.Rows)

			if err := export.WriteMappingLog(out, rows); err != nil {
				return err
			}
			a.log.Infof("mapping log saved to %s (%d rows)", out, len(rows))

			if runErr != nil {
				return runErr
			}
			if upload {
				return a.upload(ctx, out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Input xlsx workbook (required)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet name (default first sheet)")
	cmd.Flags().StringVar(&company, "company", "KC Overseas", "Partner company name")
	cmd.Flags().StringVar(&companyID, "company-id", "", "Company id (skips the built-in name lookup)")
	cmd.Flags().StringVar(&out, "out", "", "Mapping log path (default <file>_mapping_log_<Company or id>_.xlsx)")
	cmd.Flags().BoolVar(&upload, "sftp", false, "Upload the mapping log over SFTP")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
