package cmd

import (
	"strings"

	"github.com/helmcode/troubleshooter/pkg/formatter"
	"github.com/helmcode/troubleshooter/pkg/router"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewRouteCmd(o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "route DESCRIPTION",
		Short: "Show which category a problem description is routed to",
		Long: `Run the keyword router on a description without starting a session.

Examples:
  # Prints INTERNET
  troubleshooter route "wifi is down"

  # Machine-readable
  troubleshooter route my screen flickers -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			category := router.Route(text)
			o.logger().Debug("routed description",
				zap.String("text", text),
				zap.String("category", category.String()))
			return formatter.DisplayRoute(o.stdout(), text, category, o.Output)
		},
	}
}
