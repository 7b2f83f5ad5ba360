package tui

import (
	"fmt"
	"strings"

	"github.com/cresas/fiziksim2/internal/history"
	"github.com/cresas/fiziksim2/internal/viz"
)

// renderTable draws one page of the history for the cursor that owns this
// view. The cursor is clamped first so a shrunken store cannot leave it past
// the end.
func renderTable(store *history.Store, cur *history.Cursor, pageSize int, title string) string {
	total := store.TotalPages(pageSize)
	cur.Clamp(total)

	var b strings.Builder
	b.WriteString(viz.TableHeaderStyle.Render(title) + "\n")
	b.WriteString(viz.TableHeaderStyle.Render(fmt.Sprintf(
		"%8s  %11s  %11s  %11s  %11s  %9s",
		"time(s)", "height(m)", "vel(m/s)", "acc(m/s²)", "dist(m)", "mass(kg)",
	)) + "\n")

	page := store.Page(cur.Page(), pageSize)
	if len(page) == 0 {
		b.WriteString(viz.PagerStyle.Render("  no records yet - start a run") + "\n")
	}
	for _, r := range page {
		b.WriteString(viz.TableRowStyle.Render(fmt.Sprintf(
			"%8.2f  %11.2f  %11.2f  %11.2f  %11.2f  %9.2f",
			r.Time, r.Height, r.Velocity, r.Acceleration, r.Displacement, r.Mass,
		)) + "\n")
	}

	shownTotal := total
	if shownTotal < 1 {
		shownTotal = 1
	}
	b.WriteString(viz.PagerStyle.Render(fmt.Sprintf("page %d/%d  (%d records)", cur.Page(), shownTotal, store.Len())))
	return b.String()
}
