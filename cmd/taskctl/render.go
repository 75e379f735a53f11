package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"task-manager/backend/models"
)

func newTable(out io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func row(tw *tabwriter.Writer, cells ...string) {
	fmt.Fprintln(tw, strings.Join(cells, "\t"))
}

func pageFooter(out io.Writer, page, pages int) {
	fmt.Fprintf(out, "page %d of %d\n", page, pages)
}

func memberNames(members []models.Team) string {
	if len(members) == 0 {
		return "-"
	}
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	return strings.Join(names, ", ")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02")
}
