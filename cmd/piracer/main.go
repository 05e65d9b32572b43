// Command piracer computes π to an arbitrary number of digits using the
// Chudnovsky series evaluated via binary splitting.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/vmaritato/piracer/internal/bsplit"
	"github.com/vmaritato/piracer/internal/clierr"
	"github.com/vmaritato/piracer/internal/config"
	"github.com/vmaritato/piracer/internal/engine"
	"github.com/vmaritato/piracer/internal/formatter"
	"github.com/vmaritato/piracer/internal/precision"
	"github.com/vmaritato/piracer/internal/progress"
)

// version is set at build time via -ldflags; a fixed fallback keeps
// --version usable from a plain `go build`.
var version = "dev"

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(clierr.ExitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	var (
		digitsFlag string
		outPath    string
		baseFlag   string
		threads    int
		quiet      bool
		showBar    bool
		selfTest   bool
		showVer    bool
	)

	cmd := &cobra.Command{
		Use:           "piracer",
		Short:         "Compute π to arbitrary precision via the Chudnovsky series",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVer {
				fmt.Println("piracer", version)
				return nil
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigCh
				logger.Info("received interrupt, cancelling computation")
				cancel()
			}()

			cfg := config.Default()
			e := engine.New(cfg)

			if selfTest {
				n := int64(1000)
				if digitsFlag != "" {
					parsed, err := parseDigits(digitsFlag)
					if err != nil {
						return clierr.Argument("invalid digits value: %v", err)
					}
					n = parsed
				}
				if _, err := e.SelfTest(ctx, n); err != nil {
					return err
				}
				if !quiet {
					color.Green("self-test passed at %d digits", n)
				}
				return nil
			}

			if digitsFlag == "" {
				return clierr.Argument("--digits is required unless --self-test is given")
			}
			digits, err := parseDigits(digitsFlag)
			if err != nil {
				return clierr.Argument("invalid digits value: %v", err)
			}

			base := precision.Decimal
			switch strings.ToLower(baseFlag) {
			case "dec", "decimal", "10":
				base = precision.Decimal
			case "hex", "16":
				base = precision.Hex
			default:
				return clierr.Argument("invalid --base %q: must be dec or hex", baseFlag)
			}

			plan := precision.New(digits, base)
			if !quiet {
				logger.Info("starting computation", "digits", digits, "terms", plan.Terms, "bits", plan.Bits)
			}

			var bar *progressbar.ProgressBar
			var sink bsplit.ProgressSink = bsplit.NoopProgress
			if showBar && !quiet && cfg.ProgressBarEnabled {
				bar = progressbar.NewOptions64(plan.Terms,
					progressbar.OptionSetDescription("computing terms"),
					progressbar.OptionSetWidth(50),
					progressbar.OptionSetWriter(os.Stderr),
				)
				sink = progress.NewAtomicCounter(func(current int64) {
					_ = bar.Set64(current)
				})
			}

			workers := threads
			if workers <= 0 {
				workers = cfg.WorkerPoolSize
			}
			if workers <= 0 {
				workers = runtime.NumCPU()
			}
			if workers < 1 {
				workers = 1
			}

			start := time.Now()
			var piStr string
			if plan.Terms > cfg.MinRangeForWorkerPool && workers > 1 {
				if !quiet {
					logger.Info("using parallel evaluator", "workers", workers)
				}
				piStr, err = e.ComputePiParallel(ctx, digits, base, workers, sink)
			} else {
				piStr, err = e.ComputePiWithProgress(ctx, digits, base, sink)
			}
			if bar != nil {
				_ = bar.Finish()
			}
			if err != nil {
				return err
			}
			elapsed := time.Since(start)
			if !quiet {
				logger.Info("computation complete", "duration", elapsed, "digits_per_second", float64(digits)/elapsed.Seconds())
			}

			if outPath != "" {
				sanitized, err := sanitizeOutputPath(outPath)
				if err != nil {
					return err
				}
				if dir := filepath.Dir(sanitized); dir != "." && dir != "" {
					if err := os.MkdirAll(dir, 0o755); err != nil {
						return clierr.Resource(fmt.Errorf("creating output directory: %w", err))
					}
				}
				if err := os.WriteFile(sanitized, []byte(piStr+"\n"), 0o644); err != nil {
					return clierr.Resource(fmt.Errorf("writing output file: %w", err))
				}
				if !quiet {
					fmt.Fprintln(os.Stderr, formatter.Report(int(digits), piStr))
					logger.Info("pi saved", "path", sanitized)
				}
			} else {
				fmt.Println(piStr)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&digitsFlag, "digits", "n", "", "number of fractional digits to compute (accepts scientific notation, e.g. 1e6)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file path (default: print to stdout)")
	cmd.Flags().StringVarP(&baseFlag, "base", "b", "dec", "output base: dec or hex")
	cmd.Flags().IntVarP(&threads, "threads", "t", 1, "worker count for the parallel evaluator (<=1 disables it)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress log output and banners")
	cmd.Flags().BoolVarP(&showBar, "progress", "p", false, "show a progress bar while computing terms")
	cmd.Flags().BoolVarP(&selfTest, "self-test", "T", false, "run the correctness self-test instead of computing")
	cmd.Flags().BoolVarP(&showVer, "version", "V", false, "print the version and exit")

	return cmd
}

func parseDigits(s string) (int64, error) {
	if strings.ContainsAny(s, "eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}
		return int64(f), nil
	}
	return strconv.ParseInt(s, 10, 64)
}

// sanitizeOutputPath rejects a --out value that attempts directory
// traversal or resolves outside the current working directory, guarding
// against writing the computed digits somewhere the caller didn't intend
// (e.g. /etc or a sibling project via "../"). A bad path is the caller's
// mistake, so it is classified as an argument error rather than a
// resource error.
func sanitizeOutputPath(path string) (string, error) {
	cleaned := filepath.Clean(path)
	if strings.Contains(cleaned, "..") {
		return "", clierr.Argument("output path contains directory traversal: %s", path)
	}

	absPath, err := filepath.Abs(cleaned)
	if err != nil {
		return "", clierr.Argument("invalid output path: %v", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return cleaned, nil
	}

	relPath, err := filepath.Rel(cwd, absPath)
	if err != nil {
		if !strings.HasPrefix(absPath, cwd) {
			return "", clierr.Argument("output path outside working directory: %s", path)
		}
		return cleaned, nil
	}
	if strings.HasPrefix(relPath, "..") {
		return "", clierr.Argument("output path outside working directory: %s", path)
	}

	return cleaned, nil
}
