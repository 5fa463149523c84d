package commands

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/gosulliv/sorted-collections/bench"
	"github.com/gosulliv/sorted-collections/lib/xlog"
	"github.com/gosulliv/sorted-collections/observability"
)

func NewBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure workload latency and throughput",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd)
		},
		RunE: runBench,
	}
	cmd.Flags().Int("readers", runtime.GOMAXPROCS(0), "reader pool size for the parallel-search workload")
	cmd.Flags().StringSlice("workloads", nil, "workloads to run (default: all)")
	cmd.Flags().String("metrics-listen", "", "serve prometheus metrics on this address while the run lasts")
	cmd.Flags().Bool("metrics-stdout", false, "dump OTel metrics to stdout periodically")
	return cmd
}

func runBench(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	defer func() {
		_ = logger.Sync()
	}()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runnerOpts := []bench.RunnerOption{bench.WithRunnerLogger(logger.Named("Bench"))}
	if addr := viper.GetString("metrics-listen"); addr != "" {
		shutdown, handler, err := observability.NewPrometheusMetricsExporter()
		if err != nil {
			return err
		}
		defer func() {
			_ = shutdown(context.Background())
		}()
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		go func() {
			if serveErr := http.ListenAndServe(addr, mux); serveErr != nil {
				logger.Error(serveErr, "metrics listener stopped")
			}
		}()
		observability.InitAppStats(ctx, "sortbench")
		runnerOpts = append(runnerOpts, bench.WithRunnerMeter(otel.Meter("sortbench")))
		logger.Info("serving prometheus metrics", zap.String("addr", addr))
	} else if viper.GetBool("metrics-stdout") {
		shutdown, err := observability.NewConsoleMetricsExporter(10*time.Second, 3*time.Second)
		if err != nil {
			return err
		}
		defer func() {
			_ = shutdown(context.Background())
		}()
		observability.InitAppStats(ctx, "sortbench")
		runnerOpts = append(runnerOpts, bench.WithRunnerMeter(otel.Meter("sortbench")))
	}

	cfg := bench.Config{
		N:          viper.GetInt("n"),
		LoadFactor: viper.GetInt("load-factor"),
		Seed:       viper.GetInt64("seed"),
		Readers:    viper.GetInt("readers"),
	}
	for _, w := range viper.GetStringSlice("workloads") {
		cfg.Workloads = append(cfg.Workloads, bench.Workload(w))
	}

	runner, err := bench.NewRunner(cfg, runnerOpts...)
	if err != nil {
		return err
	}
	results, runErr := runner.Run(ctx)

	out := cmd.OutOrStdout()
	printHostInfo(out, logger)
	fmt.Fprintf(out, "n=%s load-factor=%d seed=%d\n",
		humanize.Comma(int64(cfg.N)), cfg.LoadFactor, cfg.Seed)
	renderResults(out, results)
	return runErr
}

func printHostInfo(w io.Writer, logger xlog.XLogger) {
	fmt.Fprintf(w, "gomaxprocs: %d\n", runtime.GOMAXPROCS(0))
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		fmt.Fprintf(w, "cpu: %s x%d\n", infos[0].ModelName, len(infos))
	} else if err != nil {
		logger.Warn("cpu info unavailable", zap.Error(err))
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		fmt.Fprintf(w, "mem: %s total, %s available\n",
			humanize.IBytes(vm.Total), humanize.IBytes(vm.Available))
	} else {
		logger.Warn("memory info unavailable", zap.Error(err))
	}
}

func renderResults(w io.Writer, results []bench.Result) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"workload", "ops", "elapsed", "ns/op", "ops/s", "final len", "segments"})
	var totalOps int64
	for _, res := range results {
		tbl.AppendRow(table.Row{
			string(res.Workload),
			humanize.Comma(res.Ops),
			res.Elapsed.Round(time.Microsecond).String(),
			fmt.Sprintf("%.1f", res.NsPerOp()),
			humanize.CommafWithDigits(res.OpsPerSec(), 0),
			humanize.Comma(res.FinalLen),
			res.Segments,
		})
		totalOps += res.Ops
	}
	tbl.AppendFooter(table.Row{"total", humanize.Comma(totalOps)})
	tbl.Render()
}
