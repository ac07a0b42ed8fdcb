package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/uenv-tools/uenvpull/internal/config"
	"github.com/uenv-tools/uenvpull/internal/messages"
	"github.com/uenv-tools/uenvpull/internal/oras"
	"github.com/uenv-tools/uenvpull/internal/pull"
)

func newRootCmd() *cobra.Command {
	var (
		imagePath    string
		size         int64
		noMeta       bool
		noSqfs       bool
		force        bool
		verbose      bool
		configPath   string
		orasPath     string
		pollInterval time.Duration
	)

	cmd := &cobra.Command{
		Use:   messages.RootUse,
		Short: messages.RootShort,
		Long:  messages.RootLong,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New(messages.RootMissingAddress)
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noMeta && noSqfs {
				return errors.New(messages.RootNothingToPull)
			}
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			path := orasPath
			if path == "" {
				path = cfg.Oras.Path
			}
			client := &oras.Client{Path: path, Verbose: verbose, Log: cmd.ErrOrStderr()}
			interval := pollInterval
			if interval == 0 {
				interval = cfg.PollInterval()
			}
			return pull.Run(cmd.Context(), client, pull.Options{
				Address:      pull.QualifyAddress(args[0], cfg.Registry.Prefix),
				ImagePath:    imagePath,
				Size:         size,
				Meta:         !noMeta,
				Sqfs:         !noSqfs,
				Force:        force,
				PollInterval: interval,
			})
		},
	}

	cmd.Flags().StringVar(&imagePath, "image-path", ".", messages.FlagImagePath)
	cmd.Flags().Int64Var(&size, "size", 0, messages.FlagSize)
	cmd.Flags().BoolVar(&noMeta, "no-meta", false, messages.FlagNoMeta)
	cmd.Flags().BoolVar(&noSqfs, "no-sqfs", false, messages.FlagNoSqfs)
	cmd.Flags().BoolVar(&force, "force", false, messages.FlagForce)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, messages.FlagVerbose)
	cmd.Flags().StringVar(&configPath, "config", "", messages.FlagConfig)
	cmd.Flags().StringVar(&orasPath, "oras", "", messages.FlagOrasPath)
	cmd.Flags().DurationVar(&pollInterval, "poll-interval", 0, messages.FlagPollInterval)

	cmd.AddCommand(newDoctorCmd())
	return cmd
}

// loadConfig reads the config file, falling back to the default user path
// when no explicit path is given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	return config.Load(path)
}
