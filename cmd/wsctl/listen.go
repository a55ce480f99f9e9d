package main

import (
	"github.com/felixgruenbauer/wsctrl/internal/metrics"
	"github.com/spf13/cobra"
)

func newListenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "listen",
		Hidden: true,
		Short:  "block forever, applying every incoming event",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := metrics.New()
			if flagMetricsAddr != "" {
				go func() {
					if err := m.Serve(flagMetricsAddr); err != nil {
						log.Error().Err(err).Msg("metrics server stopped")
					}
				}()
			}

			s, err := connect(m)
			if err != nil {
				return err
			}
			if err := s.roundtrip(); err != nil {
				return err
			}

			for {
				if err := s.state.BlockingDispatch(); err != nil {
					return err
				}
			}
		},
	}
	cmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	return cmd
}
