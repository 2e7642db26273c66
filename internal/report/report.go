// Package report renders scheduling results as a Gantt line and a table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/TigerCipher/cpusched/scheduler"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	BorderStyle(lipgloss.NormalBorder()).
	Padding(0, 2)

// Write outputs the title, the Gantt schedule and the timing table of r.
func Write(w io.Writer, title string, r scheduler.Result) {
	Title(w, title)
	Gantt(w, r.Gantt)
	Table(w, r)
}

// WriteAll writes every result under its algorithm's title.
func WriteAll(w io.Writer, results []scheduler.Result) {
	for i, r := range results {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		Write(w, r.Algorithm.Title(), r)
	}
}

// Title writes title inside a bordered box.
func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, titleStyle.Render(title))
}

// Gantt writes one cell per dispatch followed by the start time of each
// dispatch and the stop time of the last.
func Gantt(w io.Writer, gantt []scheduler.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		name := gantt[i].Name
		padding := strings.Repeat(" ", max(0, (8-len(name))/2))
		_, _ = fmt.Fprint(w, padding, name, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

// Table renders one row per process in input order. Averages are rounded to
// two decimals for display only.
func Table(w io.Writer, r scheduler.Result) {
	rows := make([][]string, len(r.Processes))
	for i, p := range r.Processes {
		rows[i] = []string{
			p.Name,
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(r.Completion[i]),
			fmt.Sprint(r.Waiting[i]),
			fmt.Sprint(r.Turnaround[i]),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Priority", "Burst", "Arrival", "Completion", "Wait", "Turnaround"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Throughput\n%.2f/t", r.Throughput()),
		fmt.Sprintf("Average\n%.2f", r.AverageWaiting),
		fmt.Sprintf("Average\n%.2f", r.AverageTurnaround)})
	table.Render()
}
