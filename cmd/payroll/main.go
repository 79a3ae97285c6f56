/*
main.go - Command-line payroll runner

PURPOSE:
  Reads an ACME time clock export and prints the amount owed to each
  employee, one line per employee in file order:

    The amount to pay RENE is: 215 USD

COMMAND-LINE FLAGS:
  -config     Path to YAML config (rates path, minimum lines, log level)
  -rates      Rate table file (.json/.yaml), overrides config
  -min-lines  Minimum number of employees in the export, overrides config
  -xlsx       Also write the payroll to this XLSX workbook

EXAMPLES:
  ./payroll schedules.txt
  ./payroll -rates=rates.yaml -xlsx=payroll.xlsx schedules.txt
  cat schedules.txt | ./payroll -
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/warp/payroll-engine/acme"
	"github.com/warp/payroll-engine/config"
	"github.com/warp/payroll-engine/export"
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payroll"
)

func main() {
	configPath := flag.String("config", "", "YAML config path")
	ratesPath := flag.String("rates", "", "rate table file (.json, .yaml)")
	minLines := flag.Int("min-lines", 0, "minimum number of schedule lines")
	xlsxPath := flag.String("xlsx", "", "write the payroll to this XLSX file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <schedule file | ->\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *ratesPath != "" {
		cfg.Payroll.RatesPath = *ratesPath
	}
	if *minLines > 0 {
		cfg.Payroll.MinScheduleLines = *minLines
	}

	logger := config.NewLogger(cfg, os.Stderr)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg, logger, flag.Arg(0), *xlsxPath, os.Stdout); err != nil {
		logger.Error().Err(err).Msg("payroll failed")
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger zerolog.Logger, schedulePath, xlsxPath string, out io.Writer) error {
	rates := acme.StandardRates()
	if cfg.Payroll.RatesPath != "" {
		var err error
		rates, err = factory.NewRateFactory().LoadRatesFile(cfg.Payroll.RatesPath)
		if err != nil {
			return err
		}
	}

	in, closeIn, err := openInput(schedulePath)
	if err != nil {
		return err
	}
	defer closeIn()

	schedules, err := acme.ParseSchedules(in, cfg.Payroll.MinScheduleLines)
	if err != nil {
		return err
	}

	ledger, err := rates.NewLedger()
	if err != nil {
		return err
	}
	for _, s := range schedules {
		if err := ledger.AddEmployee(s); err != nil {
			return err
		}
	}

	slips := ledger.ComputePayslips()
	logger.Debug().Int("employees", len(slips)).Str("rates", cfg.Payroll.RatesPath).Msg("payroll computed")
	if _, err := io.WriteString(out, acme.FormatPayroll(entries(slips), rates.Currency)); err != nil {
		return err
	}

	if xlsxPath == "" {
		return nil
	}
	wb, err := export.NewPayrollWorkbook(slips, rates.Currency)
	if err != nil {
		return err
	}
	defer wb.Close()
	if err := wb.SaveAs(xlsxPath); err != nil {
		return err
	}
	logger.Info().Str("path", xlsxPath).Msg("workbook written")
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open schedules: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func entries(slips []payroll.Payslip) []payroll.PayrollEntry {
	out := make([]payroll.PayrollEntry, len(slips))
	for i, s := range slips {
		out[i] = payroll.PayrollEntry{Employee: s.Employee, Amount: s.Total}
	}
	return out
}
