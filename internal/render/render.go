package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpusched/internal/core"
	"cpusched/internal/schedulers"
)

const idleLabel = "idle"

type ganttCell struct {
	label      string
	start, end int
}

// Title prints the heading of a single run.
func Title(w io.Writer, result schedulers.RunResult) {
	_, _ = fmt.Fprintf(w, "\n=== %s ===\n", runName(result))
}

// Gantt draws the ledger as a bar chart with time markers under each cell
// boundary. Gaps where the cpu was idle get their own cell.
func Gantt(w io.Writer, ledger *core.Ledger) {
	cells := make([]ganttCell, 0, ledger.Len())
	last := 0
	for _, s := range ledger.Slices() {
		if s.Start > last {
			cells = append(cells, ganttCell{label: idleLabel, start: last, end: s.Start})
		}
		cells = append(cells, ganttCell{label: "P" + strconv.Itoa(s.ProcessID), start: s.Start, end: s.End})
		last = s.End
	}
	if len(cells) == 0 {
		return
	}

	var bar, row, marks strings.Builder
	for _, c := range cells {
		width := c.end - c.start
		if minWidth := len(c.label) + 2; width < minWidth {
			width = minWidth
		}
		bar.WriteString("+" + strings.Repeat("-", width))
		row.WriteString("|" + padRight(" "+c.label, width))
		mark := strconv.Itoa(c.start)
		marks.WriteString(padRight(mark, width+1))
	}
	bar.WriteString("+")
	row.WriteString("|")
	marks.WriteString(strconv.Itoa(cells[len(cells)-1].end))

	_, _ = fmt.Fprintln(w, "Gantt Chart:")
	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintln(w, row.String())
	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintln(w, marks.String())
}

// ResultTable prints one row per process plus the averages.
func ResultTable(w io.Writer, result schedulers.RunResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "AT", "BT", "PR", "ST", "CT", "TAT", "WT", "RT"})
	for _, p := range result.Processes {
		table.Append([]string{
			"P" + strconv.Itoa(p.ID),
			strconv.Itoa(p.Arrival),
			strconv.Itoa(p.Burst),
			strconv.Itoa(p.Priority),
			strconv.Itoa(p.Start),
			strconv.Itoa(p.Completion),
			strconv.Itoa(p.TurnaroundTime),
			strconv.Itoa(p.WaitingTime),
			strconv.Itoa(p.ResponseTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "Average",
		fmt.Sprintf("%.2f", result.AverageTurnaroundTime),
		fmt.Sprintf("%.2f", result.AverageWaitingTime),
		fmt.Sprintf("%.2f", result.AverageResponseTime),
	})
	table.Render()

	_, _ = fmt.Fprintf(w, "\nAverage Waiting Time   : %.2f\n", result.AverageWaitingTime)
	_, _ = fmt.Fprintf(w, "Average Turnaround Time: %.2f\n", result.AverageTurnaroundTime)
	_, _ = fmt.Fprintf(w, "CPU Utilization        : %.2f%%\n", result.Cpu.Utilization*100)
}

// Report prints title, Gantt chart and result table of one run.
func Report(w io.Writer, result schedulers.RunResult) {
	Title(w, result)
	Gantt(w, &result.Ledger)
	_, _ = fmt.Fprintln(w)
	ResultTable(w, result)
}

// ComparisonTable prints the averages of every policy and the winner.
func ComparisonTable(w io.Writer, comparison schedulers.Comparison) {
	_, _ = fmt.Fprintln(w, "\n=== Comparison Result ===")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg WT", "Avg TAT", "Avg RT"})
	for _, result := range comparison.Results {
		table.Append([]string{
			runName(result),
			fmt.Sprintf("%.2f", result.AverageWaitingTime),
			fmt.Sprintf("%.2f", result.AverageTurnaroundTime),
			fmt.Sprintf("%.2f", result.AverageResponseTime),
		})
	}
	table.Render()
	_, _ = fmt.Fprintf(w, "\nBest (lowest Avg Waiting Time): %s\n", comparison.Best().Algorithm.DisplayName())
}

func runName(result schedulers.RunResult) string {
	name := result.Algorithm.DisplayName()
	if result.Algorithm == schedulers.AlgorithmRR {
		name = fmt.Sprintf("%s (q=%d)", name, result.Quantum)
	}
	return name
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
