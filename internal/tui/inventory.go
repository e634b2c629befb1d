package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/tuaninbox/netdash/internal/action"
	"github.com/tuaninbox/netdash/internal/api"
	"github.com/tuaninbox/netdash/internal/config"
	"github.com/tuaninbox/netdash/internal/inventory"
)

// Message types for async operations
type devicesFetchedMsg struct {
	seq  int
	list *api.DeviceList
	err  error
}

type syncFinishedMsg struct {
	resp *api.SyncResponse
	err  error
}

// FilterLevel identifies which grid level's filter inputs are being edited.
type FilterLevel int

const (
	FilterNone FilterLevel = iota
	FilterDeviceLevel
	FilterInterfaceLevel
	FilterModuleLevel
)

// rowKind classifies an entry in the flattened navigable row list.
type rowKind int

const (
	rowDevice rowKind = iota
	rowInterfacesHeader
	rowModulesHeader
	rowModule
)

// gridRow is one navigable row of the rendered grid. Interface sub-rows
// are display-only and are not part of the navigable list.
type gridRow struct {
	kind   rowKind
	device *api.Device
	module *api.Module
}

// InventoryModel is the hierarchical device grid screen: paginated device
// rows with per-column filters, single-key sorting, cascading selection,
// expandable interface/module sub-tables, and the confirm-then-submit sync
// actions.
type InventoryModel struct {
	Client   *api.Client
	Settings *config.Settings

	// UI state
	Width  int
	Height int

	// Grid state stores, all owned by this model (single UI goroutine)
	Pagination *inventory.Pagination
	Selection  *inventory.Selection
	Expansion  *inventory.Expansion
	Sort       inventory.SortState

	DeviceFilters    inventory.DeviceFilters
	InterfaceFilters inventory.InterfaceFilters
	ModuleFilters    inventory.ModuleFilters

	// Current page of devices, replaced wholesale on every fetch
	devices []api.Device

	// fetchSeq tags each list fetch; a response carrying an older tag is
	// discarded so a slow early response can never overwrite a later one.
	fetchSeq int
	loading  bool
	fetchErr error

	// selectedIDs mirrors the selection store via its change callback and
	// feeds the toolbar labels. Heap-allocated so the callback reaches it
	// through every value copy of the model.
	selectedIDs *[]int64

	// Navigation
	cursor        int
	JobsRequested bool // set when the operator asks for the job screen

	// Filter editing
	filterLevel  FilterLevel
	filterIndex  int
	deviceInputs []textinput.Model
	ifaceInputs  []textinput.Model
	moduleInputs []textinput.Model

	// Action flow
	Orchestrator *action.Orchestrator
	Confirm      ConfirmModel
	showDetails  bool

	// validationErr is a client-side precondition failure from an action
	// that never reached the backend. Kept apart from fetchErr so it is
	// not mislabeled as a load failure.
	validationErr error

	Spinner spinner.Model
}

// NewInventoryModel creates the grid screen against the given backend.
func NewInventoryModel(client *api.Client, settings *config.Settings) InventoryModel {
	selected := &[]int64{}
	pagination := inventory.NewPagination(settings.Display.PageSize)
	m := InventoryModel{
		Client:       client,
		Settings:     settings,
		Pagination:   &pagination,
		Expansion:    inventory.NewExpansion(),
		Orchestrator: action.New(),
		selectedIDs:  selected,
		fetchSeq:     1,
		loading:      true,
	}
	m.Selection = inventory.NewSelection(func(ids []int64) {
		*selected = ids
	})

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle
	m.Spinner = s

	m.deviceInputs = newFilterInputs("hostname", "mgmt address", "model", "serial")
	m.ifaceInputs = newFilterInputs("name", "status", "speed", "description", "sfp")
	m.moduleInputs = newFilterInputs("name", "part", "serial", "description", "warranty", "expiry", "sfp")

	return m
}

func newFilterInputs(placeholders ...string) []textinput.Model {
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.Width = 16
		inputs[i] = ti
	}
	return inputs
}

// Init issues the first page fetch. The constructor pre-tags it with
// sequence 1 because Init cannot mutate the model.
func (m InventoryModel) Init() tea.Cmd {
	return tea.Batch(fetchDevicesCmd(m.Client, m.fetchSeq, m.Pagination.Page, m.Pagination.PageSize), m.Spinner.Tick)
}

// fetchCmd starts a fresh tagged list fetch for the current page
// parameters, superseding any fetch still in flight.
func (m *InventoryModel) fetchCmd() tea.Cmd {
	m.fetchSeq++
	m.loading = true
	return fetchDevicesCmd(m.Client, m.fetchSeq, m.Pagination.Page, m.Pagination.PageSize)
}

func fetchDevicesCmd(client *api.Client, seq, page, pageSize int) tea.Cmd {
	return func() tea.Msg {
		list, err := client.ListDevices(page, pageSize)
		return devicesFetchedMsg{seq: seq, list: list, err: err}
	}
}

func submitCmd(client *api.Client, sub action.Submission) tea.Cmd {
	return func() tea.Msg {
		var resp *api.SyncResponse
		var err error
		switch sub.Kind {
		case action.KindSyncModulesEox:
			resp, err = client.SyncModulesEox(sub.Eox)
		default:
			resp, err = client.SyncDevices(sub.Hostnames)
		}
		return syncFinishedMsg{resp: resp, err: err}
	}
}

// Update handles messages and updates the model
func (m InventoryModel) Update(msg tea.Msg) (InventoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.Orchestrator.Submitting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case devicesFetchedMsg:
		if msg.seq != m.fetchSeq {
			// Stale response from a superseded fetch; the most recently
			// requested page wins.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.fetchErr = msg.err
			return m, nil
		}
		m.fetchErr = nil
		m.devices = msg.list.Items
		m.Pagination.SetTotal(msg.list.Total)
		m.clampCursor()
		return m, nil

	case syncFinishedMsg:
		m.Orchestrator.Finish(msg.resp, msg.err)
		m.showDetails = false
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m InventoryModel) updateKeys(msg tea.KeyMsg) (InventoryModel, tea.Cmd) {
	// The blocking confirmation modal swallows all input while active.
	if m.Confirm.Active {
		decided, accepted := m.Confirm.Update(msg)
		if !decided {
			return m, nil
		}
		if !accepted {
			m.Orchestrator.Decline()
			return m, nil
		}
		sub, err := m.Orchestrator.Accept()
		if err != nil {
			return m, nil
		}
		return m, tea.Batch(submitCmd(m.Client, sub), m.Spinner.Tick)
	}

	if m.filterLevel != FilterNone {
		return m.updateFilterEditing(msg)
	}

	return m.updateNormalMode(msg)
}

// updateNormalMode handles input in normal grid navigation mode.
func (m InventoryModel) updateNormalMode(msg tea.KeyMsg) (InventoryModel, tea.Cmd) {
	rows := m.buildRows()

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}

	case "enter":
		if m.cursor < len(rows) {
			switch row := rows[m.cursor]; row.kind {
			case rowDevice:
				m.Expansion.ToggleRow(row.device.ID)
			case rowInterfacesHeader:
				m.Expansion.ToggleSection(row.device.ID, inventory.SectionInterfaces)
			case rowModulesHeader:
				m.Expansion.ToggleSection(row.device.ID, inventory.SectionModules)
			}
		}

	case " ", "x":
		if m.cursor < len(rows) {
			switch row := rows[m.cursor]; row.kind {
			case rowDevice:
				m.Selection.ToggleDevice(row.device.ID)
			case rowModule:
				m.Selection.ToggleModule(row.device.ID, row.module.ID)
			case rowModulesHeader:
				ids := moduleIDs(inventory.FilterModules(row.device, m.ModuleFilters))
				checked := !m.Selection.AllModulesSelected(row.device.ID, ids)
				m.Selection.ToggleAllModules(row.device.ID, ids, checked)
			}
		}

	case "a":
		visible := m.visibleDeviceIDs()
		m.Selection.ToggleAllVisible(visible, !m.Selection.AllVisibleSelected(visible))

	case "1":
		m.Sort.Request(inventory.SortHostname)
	case "2":
		m.Sort.Request(inventory.SortMgmt)
	case "3":
		m.Sort.Request(inventory.SortModel)
	case "4":
		m.Sort.Request(inventory.SortSerial)

	case "left", "p":
		if m.Pagination.Prev() {
			return m, tea.Batch(m.fetchCmd(), m.Spinner.Tick)
		}

	case "right", "n":
		if m.Pagination.Next() {
			return m, tea.Batch(m.fetchCmd(), m.Spinner.Tick)
		}

	case "z":
		if m.Pagination.SetPageSize(nextPageSize(m.Pagination.PageSize)) {
			return m, tea.Batch(m.fetchCmd(), m.Spinner.Tick)
		}

	case "r":
		return m, tea.Batch(m.fetchCmd(), m.Spinner.Tick)

	case "f":
		return m.enterFilterMode(rows), nil

	case "s":
		return m.beginDeviceSync()

	case "w":
		if m.cursor < len(rows) {
			if row := rows[m.cursor]; row.device != nil {
				return m.beginModuleSync(row.device)
			}
		}

	case "g":
		m.JobsRequested = true

	case "d", "esc":
		m.Orchestrator.ClearOutcome()
		m.validationErr = nil
		m.showDetails = false

	case "t":
		m.showDetails = !m.showDetails
	}

	return m, nil
}

// beginDeviceSync starts the confirm-then-submit flow for a configuration
// sync. Empty selection means all devices. Hostnames are resolved against
// the full loaded page, not the filtered view: a device selected and then
// hidden by a filter is still part of the selection.
func (m InventoryModel) beginDeviceSync() (InventoryModel, tea.Cmd) {
	m.validationErr = nil
	req, err := m.Orchestrator.BeginDeviceSync(m.devices, m.Selection.SelectedDeviceIDs())
	if err != nil {
		m.validationErr = err
		return m, nil
	}
	if err := m.Confirm.Request(req); err != nil {
		// A confirmation is already pending; reject the second request.
		m.Orchestrator.Decline()
	}
	return m, nil
}

// beginModuleSync starts the warranty/EOX flow scoped to one device.
func (m InventoryModel) beginModuleSync(dev *api.Device) (InventoryModel, tea.Cmd) {
	m.validationErr = nil
	req, err := m.Orchestrator.BeginModuleSync(dev, m.Selection.SelectedModuleIDs(dev.ID))
	if err != nil {
		m.validationErr = err
		return m, nil
	}
	if err := m.Confirm.Request(req); err != nil {
		m.Orchestrator.Decline()
	}
	return m, nil
}

// enterFilterMode opens the filter inputs for the level of the row under
// the cursor (device level when the grid is empty).
func (m InventoryModel) enterFilterMode(rows []gridRow) InventoryModel {
	m.filterLevel = FilterDeviceLevel
	if m.cursor < len(rows) {
		switch rows[m.cursor].kind {
		case rowInterfacesHeader:
			m.filterLevel = FilterInterfaceLevel
		case rowModulesHeader, rowModule:
			m.filterLevel = FilterModuleLevel
		}
	}
	m.filterIndex = 0
	m.focusFilterInput()
	return m
}

func (m *InventoryModel) activeInputs() []textinput.Model {
	switch m.filterLevel {
	case FilterInterfaceLevel:
		return m.ifaceInputs
	case FilterModuleLevel:
		return m.moduleInputs
	default:
		return m.deviceInputs
	}
}

func (m *InventoryModel) focusFilterInput() {
	inputs := m.activeInputs()
	for i := range inputs {
		if i == m.filterIndex {
			inputs[i].Focus()
		} else {
			inputs[i].Blur()
		}
	}
}

func (m InventoryModel) updateFilterEditing(msg tea.KeyMsg) (InventoryModel, tea.Cmd) {
	inputs := m.activeInputs()

	switch msg.String() {
	case "esc", "enter":
		for i := range inputs {
			inputs[i].Blur()
		}
		m.filterLevel = FilterNone
		m.clampCursor()
		return m, nil

	case "tab":
		m.filterIndex = (m.filterIndex + 1) % len(inputs)
		m.focusFilterInput()
		return m, nil

	case "shift+tab":
		m.filterIndex = (m.filterIndex - 1 + len(inputs)) % len(inputs)
		m.focusFilterInput()
		return m, nil

	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	inputs[m.filterIndex], cmd = inputs[m.filterIndex].Update(msg)
	m.applyFilterInputs()
	m.clampCursor()
	return m, cmd
}

// applyFilterInputs copies the input values into the filter structs so
// filtering stays live while typing.
func (m *InventoryModel) applyFilterInputs() {
	d := m.deviceInputs
	m.DeviceFilters = inventory.DeviceFilters{
		Hostname: d[0].Value(), Mgmt: d[1].Value(), Model: d[2].Value(), Serial: d[3].Value(),
	}
	i := m.ifaceInputs
	m.InterfaceFilters = inventory.InterfaceFilters{
		Name: i[0].Value(), Status: i[1].Value(), Speed: i[2].Value(),
		Description: i[3].Value(), SFP: i[4].Value(),
	}
	mo := m.moduleInputs
	m.ModuleFilters = inventory.ModuleFilters{
		Name: mo[0].Value(), PartNumber: mo[1].Value(), Serial: mo[2].Value(),
		Description: mo[3].Value(), Warranty: mo[4].Value(), Expiry: mo[5].Value(), SFP: mo[6].Value(),
	}
}

// visibleDevices is the filtered, sorted device set for the current page.
// Re-derived on demand; filtering and sorting are pure.
func (m *InventoryModel) visibleDevices() []api.Device {
	return inventory.SortDevices(inventory.FilterDevices(m.devices, m.DeviceFilters), m.Sort)
}

func (m *InventoryModel) visibleDeviceIDs() []int64 {
	visible := m.visibleDevices()
	ids := make([]int64, len(visible))
	for i := range visible {
		ids[i] = visible[i].ID
	}
	return ids
}

// buildRows flattens the visible devices and their expanded module rows
// into the navigable row list. Interface sub-rows are display-only.
func (m *InventoryModel) buildRows() []gridRow {
	visible := m.visibleDevices()
	var rows []gridRow
	for i := range visible {
		dev := &visible[i]
		rows = append(rows, gridRow{kind: rowDevice, device: dev})
		if !m.Expansion.RowExpanded(dev.ID) {
			continue
		}
		rows = append(rows, gridRow{kind: rowInterfacesHeader, device: dev})
		rows = append(rows, gridRow{kind: rowModulesHeader, device: dev})
		if m.Expansion.SectionExpanded(dev.ID, inventory.SectionModules) {
			mods := inventory.FilterModules(dev, m.ModuleFilters)
			for j := range mods {
				rows = append(rows, gridRow{kind: rowModule, device: dev, module: &mods[j]})
			}
		}
	}
	return rows
}

func (m *InventoryModel) clampCursor() {
	if n := len(m.buildRows()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func moduleIDs(mods []api.Module) []int64 {
	ids := make([]int64, len(mods))
	for i := range mods {
		ids[i] = mods[i].ID
	}
	return ids
}

func nextPageSize(current int) int {
	for i, size := range config.PageSizeOptions {
		if size == current {
			return config.PageSizeOptions[(i+1)%len(config.PageSizeOptions)]
		}
	}
	return config.PageSizeOptions[0]
}

// View renders the grid screen
func (m InventoryModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderToolbar())
	b.WriteString("\n")
	if m.filterLevel != FilterNone {
		b.WriteString(m.renderFilterRow())
		b.WriteString("\n")
	}
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderPaginationBar())

	if panel := m.renderOutcomePanel(); panel != "" {
		b.WriteString("\n")
		b.WriteString(panel)
	}

	view := RenderAppContainer(b.String(), m.helpText(), m.Client.BaseURL, m.Width, m.Height)

	if m.Confirm.Active {
		return RenderModalOverlay(m.Confirm.View(m.Width), m.Width, m.Height)
	}
	return view
}

func (m InventoryModel) helpText() string {
	if m.filterLevel != FilterNone {
		return "type to filter • tab next column • enter/esc done"
	}
	return "↑/↓ move • enter expand • space select • a all • 1-4 sort • f filter • s sync • w warranty • ←/→ page • z size • g jobs • q quit"
}

func (m InventoryModel) renderToolbar() string {
	label := "Sync Devices (All)"
	if n := len(*m.selectedIDs); n > 0 {
		label = fmt.Sprintf("Sync (%d) Selected Devices", n)
	}
	toolbar := ToolbarStyle.Render("[s] " + label)

	if m.loading || m.Orchestrator.Submitting() {
		verb := "loading"
		if m.Orchestrator.Submitting() {
			verb = "submitting"
		}
		toolbar += "  " + m.Spinner.View() + SubtleStyle.Render(" "+verb+"...")
	}
	return toolbar
}

func (m InventoryModel) renderFilterRow() string {
	var caption string
	switch m.filterLevel {
	case FilterInterfaceLevel:
		caption = "Interface filters"
	case FilterModuleLevel:
		caption = "Module filters"
	default:
		caption = "Device filters"
	}

	inputs := m.activeInputs()
	parts := make([]string, 0, len(inputs))
	for i := range inputs {
		parts = append(parts, FilterLabelStyle.Render(inputs[i].Placeholder+":")+" "+inputs[i].View())
	}
	return SectionTitleStyle.Render(caption) + "  " + strings.Join(parts, "  ")
}

func (m InventoryModel) renderGrid() string {
	visible := m.visibleDevices()
	if len(visible) == 0 {
		if m.fetchErr != nil {
			return ErrorPanelStyle.Render("Failed to load devices: " + m.fetchErr.Error())
		}
		if m.loading {
			return SubtleStyle.Render("Loading devices...")
		}
		return SubtleStyle.Render("No devices found.")
	}

	rows := m.buildRows()
	var b strings.Builder
	b.WriteString(m.renderDeviceHeader())
	b.WriteString("\n")

	for i, row := range rows {
		line := m.renderRow(row, i == m.cursor)
		b.WriteString(line)
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
		// Interface sub-table renders beneath its header row.
		if row.kind == rowInterfacesHeader &&
			m.Expansion.SectionExpanded(row.device.ID, inventory.SectionInterfaces) {
			b.WriteString(m.renderInterfaceTable(row.device))
			b.WriteString("\n")
		}
	}

	if m.fetchErr != nil {
		b.WriteString("\n")
		b.WriteString(ErrorPanelStyle.Render("Fetch error: " + m.fetchErr.Error()))
	}
	return b.String()
}

func (m InventoryModel) renderDeviceHeader() string {
	all := " "
	if m.Selection.AllVisibleSelected(m.visibleDeviceIDs()) {
		all = "x"
	}
	header := fmt.Sprintf("  [%s] %4s  %-24s %-16s %-20s %-16s",
		all, "#",
		"Hostname "+m.Sort.Indicator(inventory.SortHostname),
		"Mgmt "+m.Sort.Indicator(inventory.SortMgmt),
		"Model "+m.Sort.Indicator(inventory.SortModel),
		"Serial "+m.Sort.Indicator(inventory.SortSerial),
	)
	return TableHeaderStyle.Render(header)
}

func (m InventoryModel) renderRow(row gridRow, focused bool) string {
	var line string

	switch row.kind {
	case rowDevice:
		marker := "▶"
		if m.Expansion.RowExpanded(row.device.ID) {
			marker = "▼"
		}
		check := " "
		if m.Selection.DeviceSelected(row.device.ID) {
			check = SelectedMarkStyle.Render("x")
		}
		num := m.Pagination.RowNumber(m.visibleIndexOf(row.device.ID))
		line = fmt.Sprintf("%s [%s] %4d  %-24s %-16s %-20s %-16s",
			marker, check, num,
			truncate(row.device.Hostname, 24),
			truncate(row.device.MgmtAddress, 16),
			truncate(row.device.Model, 20),
			truncate(row.device.SerialNumber, 16),
		)

	case rowInterfacesHeader:
		marker := "▸"
		if m.Expansion.SectionExpanded(row.device.ID, inventory.SectionInterfaces) {
			marker = "▾"
		}
		count := len(inventory.FilterInterfaces(row.device, m.InterfaceFilters))
		line = "    " + SectionTitleStyle.Render(fmt.Sprintf("%s Interfaces (%d)", marker, count))

	case rowModulesHeader:
		marker := "▸"
		if m.Expansion.SectionExpanded(row.device.ID, inventory.SectionModules) {
			marker = "▾"
		}
		mods := inventory.FilterModules(row.device, m.ModuleFilters)
		label := fmt.Sprintf("%s Modules (%d)", marker, len(mods))
		if n := m.Selection.ModuleCount(row.device.ID); n > 0 {
			label += fmt.Sprintf(" • [w] Sync Warranty (%d Selected)", n)
		} else {
			label += " • [w] Sync Warranty (All)"
		}
		line = "    " + SectionTitleStyle.Render(label)

	case rowModule:
		check := " "
		if m.Selection.ModuleSelected(row.device.ID, row.module.ID) {
			check = SelectedMarkStyle.Render("x")
		}
		expiry := row.module.ExpiryText()
		if expiry == "" {
			expiry = "-"
		}
		sfp := row.module.SFPText()
		if sfp == "" {
			sfp = "None"
		}
		line = fmt.Sprintf("      [%s] %-20s %-16s %-14s  warranty: %-3s  expires: %-10s  sfp: %s",
			check,
			truncate(row.module.Name, 20),
			truncate(row.module.PartNumber, 16),
			truncate(row.module.SerialNumber, 14),
			row.module.WarrantyText(),
			expiry,
			truncate(sfp, 24),
		)
	}

	if focused {
		return CursorRowStyle.Render("› ") + line
	}
	return "  " + line
}

// visibleIndexOf returns a device's index within the visible set, for
// continuous row numbering across pages.
func (m InventoryModel) visibleIndexOf(id int64) int {
	for i, d := range m.visibleDevices() {
		if d.ID == id {
			return i
		}
	}
	return 0
}

// renderInterfaceTable renders the read-only interface sub-table.
func (m InventoryModel) renderInterfaceTable(dev *api.Device) string {
	ifaces := inventory.FilterInterfaces(dev, m.InterfaceFilters)
	if len(ifaces) == 0 {
		return SubtleStyle.Render("        no interfaces match")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtleStyle).
		Headers("Name", "Status", "Speed", "Description", "SFP").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for i := range ifaces {
		iface := &ifaces[i]
		t.Row(
			iface.Name,
			iface.StatusText(),
			iface.Speed,
			truncate(iface.Description, 32),
			truncate(dev.InterfaceSFPText(iface), 36),
		)
	}

	return lipgloss.NewStyle().PaddingLeft(6).Render(t.Render())
}

func (m InventoryModel) renderPaginationBar() string {
	p := m.Pagination

	prev := SubtleStyle.Render("◀")
	if p.CanPrev() {
		prev = ToolbarStyle.Render("◀")
	}
	next := SubtleStyle.Render("▶")
	if p.CanNext() {
		next = ToolbarStyle.Render("▶")
	}

	size := fmt.Sprintf("%d/page", p.PageSize)
	if p.PageSize == config.PageSizeAll {
		size = "all"
	}
	return fmt.Sprintf("%s Page %d/%d %s  •  %s  •  %d devices",
		prev, p.Page, p.TotalPages(), next, size, p.Total)
}

// renderOutcomePanel renders the sync result or error panel, if any.
func (m InventoryModel) renderOutcomePanel() string {
	if m.validationErr != nil {
		text := "✗ Nothing Submitted\n" + m.validationErr.Error()
		text += "\n" + HelpStyle.Render("d dismiss")
		return ErrorPanelStyle.Render(text)
	}

	if result := m.Orchestrator.Result(); result != nil {
		text := "✓ " + result.Summary
		if result.JobID != "" {
			text += "  (job " + result.JobID + ")"
		}
		if result.NavigateToJobs {
			text += "\n" + HelpStyle.Render("press g to watch the job, d to dismiss")
		}
		return SuccessPanelStyle.Render(text)
	}

	if failure := m.Orchestrator.Failure(); failure != nil {
		text := "✗ " + failure.Title + "\n" + failure.Message
		if len(failure.Details) > 0 {
			if m.showDetails {
				text += "\n" + DetailsStyle.Render(string(failure.Details))
				text += "\n" + HelpStyle.Render("t hide details • d dismiss")
			} else {
				text += "\n" + HelpStyle.Render("t show details • d dismiss")
			}
		} else {
			text += "\n" + HelpStyle.Render("d dismiss")
		}
		return ErrorPanelStyle.Render(text)
	}

	return ""
}
