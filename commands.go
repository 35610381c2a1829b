package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/orayew2002/rast-columns/domain"
	"github.com/orayew2002/rast-columns/excel"
	"github.com/orayew2002/rast-columns/processor"
	"github.com/orayew2002/rast-columns/template"
	"github.com/orayew2002/rast-columns/text"
	"github.com/orayew2002/rast-columns/workbook"
)

var encodeCmd = &cobra.Command{
	Use:   "encode INDEX...",
	Short: "Print the column name of each index",
	Example: `  colname encode 0 25 26 -1
  colname encode -- -27`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode NAME...",
	Short: "Print the index of each column name",
	Long:  `Prints one index per name. Fails on the first malformed or out-of-range name.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDecode,
}

var joinCmd = &cobra.Command{
	Use:   "join ITEM...",
	Short: `Join items into a phrase ("a, b, and c")`,
	RunE:  runJoin,
}

var headersCmd = &cobra.Command{
	Use:   "headers",
	Short: "Write a workbook whose first row holds column names",
	Long: `Writes COUNT consecutive column names starting at START into row 1 of a new
workbook. START may be an index or a name. Unless --origin is given, the first
column lands in sheet column A.`,
	RunE: runHeaders,
}

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Expand column placeholders in an xlsx template",
	Long: `Rewrites every cell of the input workbook that contains a placeholder:

  {{column}}              the name of the cell's column (shifted by --origin)
  {{index:NAME}}          the index NAME decodes to
  {{headers:START:COUNT}} COUNT names from START, written rightwards
  KEY (from --set KEY=VALUE) replaced by VALUE`,
	RunE: runFill,
}

var (
	conjunction string

	headersStart  string
	headersCount  int
	headersOut    string
	headersSample bool
	origin        int

	fillIn  string
	fillOut string
	fillSet []string
)

func init() {
	joinCmd.Flags().StringVarP(&conjunction, "conjunction", "c", "", "word before the last item (default from config)")

	headersCmd.Flags().StringVar(&headersStart, "start", "", "first column, index or name (default from config)")
	headersCmd.Flags().IntVar(&headersCount, "count", 0, "number of columns (default from config)")
	headersCmd.Flags().StringVarP(&headersOut, "out", "o", "headers.xlsx", "output workbook")
	headersCmd.Flags().BoolVar(&headersSample, "sample", false, "fill row 2 with random titles")
	headersCmd.Flags().IntVar(&origin, "origin", 0, "sheet column (0-based) holding index 0")

	fillCmd.Flags().StringVarP(&fillIn, "in", "i", "template.xlsx", "input template")
	fillCmd.Flags().StringVarP(&fillOut, "out", "o", "result.xlsx", "output workbook")
	fillCmd.Flags().StringArrayVar(&fillSet, "set", nil, "KEY=VALUE replacement, repeatable")
	fillCmd.Flags().IntVar(&origin, "origin", 0, "sheet column (0-based) holding index 0")
}

func runEncode(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("encode %q: not a 64-bit integer", arg)
		}
		fmt.Fprintln(out, excel.ColumnName(n))
	}
	return nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, arg := range args {
		n, err := excel.ParseColumnName(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, n)
	}
	return nil
}

func runJoin(cmd *cobra.Command, args []string) error {
	conj := conjunction
	if conj == "" {
		conj = cfg.Conjunction
	}
	fmt.Fprintln(cmd.OutOrStdout(), text.JoinWithConjunction(conj, args))
	return nil
}

func runHeaders(cmd *cobra.Command, args []string) error {
	start := cfg.Headers.Start
	if headersStart != "" {
		var err error
		if start, err = parseIndex(headersStart); err != nil {
			return err
		}
	}
	count := cfg.Headers.Count
	if cmd.Flags().Changed("count") {
		count = headersCount
	}
	if count < 0 || count > excel.MaxSheetColumns {
		return fmt.Errorf("--count %d: want 0..%d", count, excel.MaxSheetColumns)
	}

	// Without --origin the first column lands in sheet column A.
	var grid excel.Grid
	if cmd.Flags().Changed("origin") {
		if err := checkOrigin(origin); err != nil {
			return err
		}
		grid.Origin = origin
	} else {
		if start == math.MinInt64 {
			return fmt.Errorf("start %s cannot be placed on a sheet", excel.ColumnName(start))
		}
		grid.Origin = int(-start)
	}

	var cols []domain.Column
	if headersSample {
		cols = domain.GenerateColumns(start, count)
	} else {
		cols = domain.Columns(start, count)
	}

	if err := workbook.WriteToFile(cols, workbook.Options{Grid: grid, Sheet: cfg.Sheet}, headersOut); err != nil {
		return err
	}

	logger.Info("headers written",
		zap.String("out", headersOut),
		zap.Int("columns", len(cols)),
		zap.Strings("range", firstLast(domain.Labels(cols))))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s to %s\n", text.JoinWithConjunction(cfg.Conjunction, firstLast(domain.Labels(cols))), headersOut)
	return nil
}

func runFill(cmd *cobra.Command, args []string) error {
	grid := excel.Grid{Origin: cfg.Origin}
	if cmd.Flags().Changed("origin") {
		if err := checkOrigin(origin); err != nil {
			return err
		}
		grid.Origin = origin
	}

	r := template.New()
	rh := template.NewReplaceHandler()
	for _, kv := range fillSet {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return fmt.Errorf("--set %q: want KEY=VALUE", kv)
		}
		rh.Add(key, val)
	}
	if rh.Len() > 0 {
		rh.Register(r)
	}
	template.RegisterDefaults(r, grid)

	logger.Debug("filling template",
		zap.String("in", fillIn),
		zap.Int("origin", grid.Origin),
		zap.Int("patterns", r.Len()))

	if err := processor.New(r, logger).ProcessFile(fillIn, fillOut); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "done: %s\n", fillOut)
	return nil
}

// checkOrigin applies the config rule for origin to the --origin flag.
func checkOrigin(origin int) error {
	if origin < 0 {
		return fmt.Errorf("--origin %d is negative", origin)
	}
	return nil
}

// parseIndex accepts a signed integer or a column name.
func parseIndex(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	return excel.ParseColumnName(s)
}

func firstLast(labels []string) []string {
	if len(labels) <= 2 {
		return labels
	}
	return []string{labels[0], labels[len(labels)-1]}
}
