package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jbertovic/us-treasury-yield/internal/app/treasury"
	"github.com/jbertovic/us-treasury-yield/internal/pkg/model"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	noErr(err)
	defer func() { _ = logger.Sync() }()

	fetcher := treasury.NewHTTPFetcher(os.Getenv("TREASURY_BASE_URL"), httpTimeout(), logger.Named("HTTP Fetcher"))
	svc := treasury.NewService(fetcher, logger.Named("Treasury Svc"))

	root := &cobra.Command{
		Use:           "treasury",
		Short:         "Query daily US Treasury par yield curves",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(latestCmd(svc), asofCmd(svc), yearCmd(svc))

	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func latestCmd(svc *treasury.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Print the most recently published curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, curve, err := svc.FetchLatest(cmd.Context())
			if err != nil {
				return err
			}
			printCurve(date, curve)
			return nil
		},
	}
}

func asofCmd(svc *treasury.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "asof <yyyy-mm-dd>",
		Short: "Print the curve for a date, falling back to the prior trading day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requested, err := civil.ParseDate(args[0])
			if err != nil {
				return err
			}
			date, curve, err := svc.FetchDate(cmd.Context(), requested)
			if err != nil {
				return err
			}
			printCurve(date, curve)
			return nil
		},
	}
}

func yearCmd(svc *treasury.Service) *cobra.Command {
	var tenor string
	cmd := &cobra.Command{
		Use:   "year <year>",
		Short: "Print every curve published in a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			history, err := svc.FetchYear(cmd.Context(), year)
			if err != nil {
				return err
			}
			if tenor != "" {
				return printTenorColumn(history, tenor)
			}
			for i := 0; i < history.Len(); i++ {
				date, curve := history.At(i)
				printCurve(date, curve)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&tenor, "tenor", "", `print a single maturity, e.g. "10 Yr"`)
	return cmd
}

func printTenorColumn(history model.History, label string) error {
	for i := 0; i < history.Len(); i++ {
		date, curve := history.At(i)
		y, err := curve.Get(label)
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s\n", date, formatYield(y))
	}
	return nil
}

func printCurve(date civil.Date, curve model.Curve) {
	fmt.Println(date)
	for _, t := range model.Tenors {
		fmt.Printf("  %-5s %s\n", t, formatYield(curve.Yield(t)))
	}
}

func formatYield(y model.Yield) string {
	if !y.Valid {
		return "-"
	}
	return strconv.FormatFloat(y.Value, 'f', 2, 64)
}

func httpTimeout() time.Duration {
	if v := os.Getenv("TREASURY_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return 30 * time.Second
}

func noErr(err error) {
	if err != nil {
		panic("failed to initialize something important: " + err.Error())
	}
}
