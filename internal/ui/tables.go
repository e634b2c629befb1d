package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/tuaninbox/netdash/internal/api"
)

// RenderDeviceTable renders a compact device table for one-shot output.
func RenderDeviceTable(devices []api.Device, width int) string {
	if len(devices) == 0 {
		return TableMutedStyle.Render("No devices found.")
	}

	t := newTable(width, "#", "Hostname", "Mgmt Address", "Model", "Serial", "Ifaces", "Modules")
	for i, d := range devices {
		t.Row(
			fmt.Sprintf("%d", i+1),
			d.Hostname,
			d.MgmtAddress,
			d.Model,
			d.SerialNumber,
			fmt.Sprintf("%d", len(d.Interfaces)),
			fmt.Sprintf("%d", len(d.Modules)),
		)
	}
	return t.Render()
}

// RenderDeviceDetail renders one device with its interface and module
// inventories, for the detailed listing format.
func RenderDeviceDetail(d *api.Device, width int) string {
	var b strings.Builder

	b.WriteString(TableHeaderStyle.Render(d.Hostname))
	b.WriteString(TableMutedStyle.Render(fmt.Sprintf("  %s  %s  %s", d.MgmtAddress, d.Model, d.SerialNumber)))
	b.WriteString("\n")

	if len(d.Interfaces) > 0 {
		t := newTable(width, "Interface", "Status", "Speed", "Description", "SFP")
		for i := range d.Interfaces {
			iface := &d.Interfaces[i]
			t.Row(iface.Name, iface.StatusText(), iface.Speed, iface.Description, d.InterfaceSFPText(iface))
		}
		b.WriteString(t.Render())
		b.WriteString("\n")
	}

	if len(d.Modules) > 0 {
		t := newTable(width, "Module", "Part", "Serial", "Warranty", "Expires", "SFP Slot")
		for _, mod := range d.Modules {
			expiry := mod.ExpiryText()
			if expiry == "" {
				expiry = "-"
			}
			slot := mod.SFPText()
			if slot == "" {
				slot = "None"
			}
			t.Row(mod.Name, mod.PartNumber, mod.SerialNumber, mod.WarrantyText(), expiry, slot)
		}
		b.WriteString(t.Render())
		b.WriteString("\n")
	}

	return b.String()
}

// RenderJobTable renders the background-job listing with timestamps in the
// given display timezone.
func RenderJobTable(jobs []api.Job, loc *time.Location, width int) string {
	if len(jobs) == 0 {
		return TableMutedStyle.Render("No jobs recorded.")
	}
	if loc == nil {
		loc = time.Local
	}

	t := newTable(width, "ID", "Category", "Description", "Status", "Started", "Finished")
	for _, job := range jobs {
		t.Row(
			fmt.Sprintf("%d", job.ID),
			job.Category,
			job.Description,
			job.Status,
			formatJobTime(job.StartedAt, loc),
			formatJobTime(job.FinishedAt, loc),
		)
	}
	return t.Render()
}

func formatJobTime(ts *time.Time, loc *time.Location) string {
	if ts == nil {
		return "-"
	}
	return ts.In(loc).Format("2006-01-02 15:04:05")
}

func newTable(width int, headers ...string) *table.Table {
	return table.New().
		Width(width).
		Border(lipgloss.NormalBorder()).
		BorderStyle(TableMutedStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle.Padding(0, 1)
			}
			return TableCellStyle.Padding(0, 1)
		})
}
