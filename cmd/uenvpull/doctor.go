package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/uenv-tools/uenvpull/internal/config"
	"github.com/uenv-tools/uenvpull/internal/doctor"
	"github.com/uenv-tools/uenvpull/internal/messages"
	"github.com/uenv-tools/uenvpull/internal/oras"
)

func newDoctorCmd() *cobra.Command {
	var (
		imagePath  string
		configPath string
		orasPath   string
	)

	cmd := &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if configPath == "" {
				defaultPath, err := config.DefaultPath()
				if err != nil {
					return err
				}
				configPath = defaultPath
			}
			path := orasPath
			if path == "" {
				// Best effort: a broken config is reported by CheckConfig.
				if cfg, err := config.Load(configPath); err == nil {
					path = cfg.Oras.Path
				}
			}

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, imagePath)

			results := []doctor.Result{
				doctor.CheckOras(&oras.Client{Path: path}),
				doctor.CheckImagePath(imagePath),
				doctor.CheckConfig(configPath),
			}

			hasFail := false
			for _, r := range results {
				printResult(out, r)
				if r.Status == doctor.StatusFail {
					hasFail = true
				}
			}
			_, _ = fmt.Fprintln(out)

			if hasFail {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return errors.New(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}

	cmd.Flags().StringVar(&imagePath, "image-path", ".", messages.FlagImagePath)
	cmd.Flags().StringVar(&configPath, "config", "", messages.FlagConfig)
	cmd.Flags().StringVar(&orasPath, "oras", "", messages.FlagOrasPath)
	return cmd
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		_, _ = fmt.Fprintf(out, messages.DoctorRecommendationFmt, r.Recommendation)
	}
}
