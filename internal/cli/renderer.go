package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"travel-calc/internal/allocation"
	"travel-calc/internal/api"
	"travel-calc/internal/domain"
	"travel-calc/internal/errors"
)

// tableWidth is the width of the table separator lines
const tableWidth = 60

// Renderer writes calculations and form defaults in one output format
type Renderer interface {
	RenderCalculation(w io.Writer, calc *api.Calculation) error
	RenderDefaults(w io.Writer, defaults api.CalculationRequest) error
}

// NewRenderer returns the renderer for format. Verbose only affects the
// table format, which then also lists the intermediate quantities.
func NewRenderer(format string, verbose bool) (Renderer, error) {
	switch strings.ToLower(format) {
	case "table", "":
		return &tableRenderer{verbose: verbose}, nil
	case "json":
		return jsonRenderer{}, nil
	case "yaml":
		return yamlRenderer{}, nil
	case "csv":
		return csvRenderer{}, nil
	default:
		return nil, errors.NewInvalidInputError("format", format, "unsupported format")
	}
}

// tableRenderer prints a human readable summary
type tableRenderer struct {
	verbose bool
}

func (r *tableRenderer) RenderCalculation(w io.Writer, calc *api.Calculation) error {
	in := calc.Input

	fmt.Fprintln(w, "Travel day")
	fmt.Fprintf(w, "  %-12s %s - %s\n", "Outbound:", in.StartTime, in.ArrivalTime)
	fmt.Fprintf(w, "  %-12s %s - %s\n", "Return:", in.ReturnStartTime, in.ReturnArrivalTime)
	fmt.Fprintf(w, "  %-12s %d min\n", "Lunch:", domain.MinutesValue(in.LunchMinutes))
	fmt.Fprintf(w, "  %-12s %d min\n", "Extra work:", domain.MinutesValue(in.ExtraWorkMinutes))
	fmt.Fprintf(w, "  %-12s %s\n", "Rounding:", roundingLabel(calc.Result.RoundToQuarter))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%-6s %-8s %s\n", "Code", "Hours", "Basis")
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))
	for _, b := range calc.Breakdowns() {
		basis := make([]string, 0, len(b.Lines)+len(b.Notes))
		for _, line := range b.Lines {
			basis = append(basis, line.Formatted)
		}
		basis = append(basis, b.Notes...)
		if len(basis) == 0 {
			basis = append(basis, "")
		}

		fmt.Fprintf(w, "%-6s %-8s %s\n", b.Code, b.Formatted, basis[0])
		for _, line := range basis[1:] {
			fmt.Fprintf(w, "%-6s %-8s %s\n", "", "", line)
		}
	}
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))

	if r.verbose {
		r.renderDetails(w, calc.Result)
	}

	if len(calc.Notes) > 0 {
		fmt.Fprintln(w, "\nNotes:")
		for _, note := range calc.Notes {
			fmt.Fprintf(w, "  - %s\n", note)
		}
	}
	if len(calc.Adjustments) > 0 {
		fmt.Fprintln(w, "\nAdjusted input:")
		for _, adj := range calc.Adjustments {
			fmt.Fprintf(w, "  - %s\n", adj.String())
		}
	}

	return nil
}

func (r *tableRenderer) renderDetails(w io.Writer, res allocation.Result) {
	rows := []struct {
		label string
		hours float64
	}{
		{"Outbound travel", res.OutboundHours},
		{"Return travel", res.ReturnHours},
		{"Total travel", res.TotalTravelHours},
		{"Away from home", res.FullDayHours},
		{"Ordinary commute", res.OrdinaryCommuteHours},
		{"Excess travel", res.ExcessTravelHours},
		{"On site", res.OnSiteHours},
		{"On site net", res.OnSiteNetHours},
		{"Extra work from INT", res.AbsorbedByINT},
		{"Extra work from commute", res.ConvertedOrdinary},
		{"Extra work dropped", res.DroppedExtraWork},
		{"Billable ceiling", res.MaxBillableHours},
		{"Cap reduction", res.CapReduction},
		{"KRT before rounding", res.KRTRaw},
		{"INT before rounding", res.INTRaw},
		{"Billable total", res.BillableHours()},
	}

	fmt.Fprintln(w, "\nDetails:")
	for _, row := range rows {
		fmt.Fprintf(w, "  %-24s %s\n", row.label+":", allocation.FormatHours(row.hours))
	}
}

func (r *tableRenderer) RenderDefaults(w io.Writer, d api.CalculationRequest) error {
	fmt.Fprintln(w, "Form defaults")
	for _, row := range defaultsRows(d) {
		fmt.Fprintf(w, "  %-20s %s\n", row[0]+":", row[1])
	}
	return nil
}

type jsonRenderer struct{}

func (jsonRenderer) RenderCalculation(w io.Writer, calc *api.Calculation) error {
	return writeJSON(w, calc)
}

func (jsonRenderer) RenderDefaults(w io.Writer, d api.CalculationRequest) error {
	return writeJSON(w, d)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

type yamlRenderer struct{}

func (yamlRenderer) RenderCalculation(w io.Writer, calc *api.Calculation) error {
	return writeYAML(w, calc)
}

func (yamlRenderer) RenderDefaults(w io.Writer, d api.CalculationRequest) error {
	return writeYAML(w, d)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}
	return nil
}

// csvRenderer writes one row per code
type csvRenderer struct{}

func (csvRenderer) RenderCalculation(w io.Writer, calc *api.Calculation) error {
	writer := csv.NewWriter(w)

	header := []string{"Code", "Hours", "Formatted", "Basis", "Notes"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, b := range calc.Breakdowns() {
		basis := make([]string, 0, len(b.Lines))
		for _, line := range b.Lines {
			basis = append(basis, line.Formatted)
		}
		notes := append(append([]string{}, b.Notes...), calc.Notes...)

		row := []string{
			b.Code,
			fmt.Sprintf("%.2f", b.Hours),
			b.Formatted,
			strings.Join(basis, "; "),
			strings.Join(notes, "; "),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (csvRenderer) RenderDefaults(w io.Writer, d api.CalculationRequest) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Field", "Value"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range defaultsRows(d) {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func defaultsRows(d api.CalculationRequest) [][]string {
	round := true
	if d.RoundToQuarter != nil {
		round = *d.RoundToQuarter
	}

	return [][]string{
		{"start_time", d.StartTime},
		{"arrival_time", d.ArrivalTime},
		{"return_start_time", d.ReturnStartTime},
		{"return_arrival_time", d.ReturnArrivalTime},
		{"lunch_minutes", strconv.Itoa(domain.MinutesValue(d.LunchMinutes))},
		{"extra_work_minutes", strconv.Itoa(domain.MinutesValue(d.ExtraWorkMinutes))},
		{"round_to_quarter", strconv.FormatBool(round)},
	}
}

func roundingLabel(round bool) string {
	if round {
		return "nearest quarter hour"
	}
	return "off"
}
