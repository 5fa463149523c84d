package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gosulliv/sorted-collections/lib/xlog"
)

// NewRootCommand wires the sortbench command tree. Every flag is also
// reachable through the environment as SORTBENCH_<FLAG>.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sortbench",
		Short: "Benchmark and verify the segmented sorted list",
		Long: `sortbench drives the segmented sorted list through its public
contract: measured workloads (bench) and property verification (verify).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug|info|warn|error")
	rootCmd.PersistentFlags().Int("n", 100000, "element count per workload")
	rootCmd.PersistentFlags().Int("load-factor", 1000, "minimum segment length of the list under test")
	rootCmd.PersistentFlags().Int64("seed", 1, "PRNG seed, for reproducible runs")

	viper.SetEnvPrefix("SORTBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(NewBenchCommand())
	rootCmd.AddCommand(NewVerifyCommand())
	return rootCmd
}

func bindFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	return viper.BindPFlags(cmd.Root().PersistentFlags())
}

func newLogger() xlog.XLogger {
	return xlog.NewXLogger(
		xlog.WithLogLevel(xlog.ParseLogLevel(viper.GetString("log-level"))),
	)
}
