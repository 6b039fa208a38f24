package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"

	"github.com/mkyte/paddock/internal/agent"
	"github.com/mkyte/paddock/internal/catalog"
	"github.com/mkyte/paddock/internal/event"
	"github.com/mkyte/paddock/internal/preset"
	"github.com/mkyte/paddock/internal/setup"
	"github.com/mkyte/paddock/internal/util"
)

const (
	viewPresets = "presets"
	viewDeck    = "deck"
	viewPicker  = "picker"
	viewEvents  = "events"
	viewHelp    = "help"
)

// deck rows 0..5 are support slots; rows 6 and 7 are scenario and trainee.
const (
	rowScenario = setup.SupportSlots
	rowTrainee  = setup.SupportSlots + 1
	deckRows    = setup.SupportSlots + 2
)

type model struct {
	ctx     context.Context
	repo    *preset.Repo
	store   *setup.Store
	index   *catalog.Index
	client  *agent.Client
	syncer  *preset.Syncer
	cfg     util.Config
	version string

	view      string
	themeName string
	styles    styleSet
	status    string
	width     int
	height    int

	presets      []preset.Preset
	presetCursor int
	active       uuid.UUID
	activeName   string

	deckCursor int

	pickerRow    int
	pickerAttrs  []event.Attribute
	pickerAttr   int
	pickerCursor int

	eventsKind   event.Kind
	eventsName   string
	eventsAttr   event.Attribute
	eventsRarity event.Rarity
	eventsList   []event.ChoiceEvent
	eventsCursor int

	helpRendered string
}

func initialModel(ctx context.Context, repo *preset.Repo, store *setup.Store, index *catalog.Index, client *agent.Client, cfg util.Config, version string) model {
	m := model{
		ctx:       ctx,
		repo:      repo,
		store:     store,
		index:     index,
		client:    client,
		cfg:       cfg,
		version:   version,
		view:      viewPresets,
		themeName: cfg.Theme,
	}
	m.styles = stylesFor(paletteFor(m.themeName))
	m.helpRendered = renderMarkdown(helpMarkdown)
	if repo != nil {
		m.syncer = preset.NewSyncer(store, repo)
		m.reloadPresets()
	}
	return m
}

func (m *model) reloadPresets() {
	if m.repo == nil {
		return
	}
	presets, err := m.repo.List(m.ctx)
	if err != nil {
		m.status = "load presets: " + err.Error()
		return
	}
	m.presets = presets
	if m.presetCursor >= len(presets) {
		m.presetCursor = 0
	}
}

func (m *model) activatePreset(p preset.Preset) {
	if m.repo == nil {
		return
	}
	if issues, err := m.repo.Hydrate(m.ctx, p.ID, m.store); err != nil {
		m.status = "hydrate: " + err.Error()
		return
	} else if len(issues) > 0 {
		m.status = fmt.Sprintf("loaded with %d repaired field(s)", len(issues))
	} else {
		m.status = "loaded " + p.Name
	}
	m.active = p.ID
	m.activeName = p.Name
	m.syncer.Track(p.ID)
	m.view = viewDeck
	m.deckCursor = 0
}

func (m *model) syncNow() {
	if m.syncer == nil {
		return
	}
	switch err := m.syncer.Sync(m.ctx); err {
	case nil:
		m.status = "saved"
	case preset.ErrNoChange:
	default:
		m.status = "save failed: " + err.Error()
	}
}

func (m *model) pushToAgent() {
	if m.client == nil {
		m.status = "no agent configured"
		return
	}
	if err := m.client.PushSetup(m.ctx, m.store.Snapshot()); err != nil {
		m.status = "push failed: " + err.Error()
		return
	}
	m.status = "setup pushed to agent"
}

func (m *model) openPicker(row int) {
	m.pickerRow = row
	m.pickerCursor = 0
	if row < setup.SupportSlots {
		m.pickerAttrs = m.index.Attributes()
		m.pickerAttr = 0
	}
	m.view = viewPicker
}

func (m *model) pickerChoices() []event.RawSet {
	switch m.pickerRow {
	case rowScenario:
		return m.index.Scenarios()
	case rowTrainee:
		names := m.index.TraineeNames()
		out := make([]event.RawSet, len(names))
		for i, name := range names {
			out[i] = event.RawSet{Kind: event.KindTrainee, Name: name}
		}
		return out
	default:
		if len(m.pickerAttrs) == 0 {
			return nil
		}
		return m.index.SupportsByAttribute(m.pickerAttrs[m.pickerAttr])
	}
}

func (m *model) applyPick(set event.RawSet) {
	switch m.pickerRow {
	case rowScenario:
		m.store.SetScenario(&setup.EntityRef{Name: set.Name})
	case rowTrainee:
		m.store.SetTrainee(&setup.EntityRef{Name: set.Name})
	default:
		m.store.SetSupport(m.pickerRow, &setup.SupportRef{
			Name:      set.Name,
			Rarity:    set.Rarity,
			Attribute: set.Attribute,
		})
	}
	m.syncNow()
	m.view = viewDeck
}

func (m *model) openEvents(row int) {
	snap := m.store.Snapshot()
	switch row {
	case rowScenario:
		if snap.Scenario == nil {
			m.status = "no scenario chosen"
			return
		}
		m.eventsKind = event.KindScenario
		m.eventsName = snap.Scenario.Name
		m.eventsAttr, m.eventsRarity = event.AttrNone, event.RarityNone
		m.eventsList = nil
		for _, set := range m.index.Scenarios() {
			if set.Name == snap.Scenario.Name {
				m.eventsList = set.Events
				break
			}
		}
	case rowTrainee:
		if snap.Trainee == nil {
			m.status = "no trainee chosen"
			return
		}
		m.eventsKind = event.KindTrainee
		m.eventsName = snap.Trainee.Name
		m.eventsAttr, m.eventsRarity = event.AttrNone, event.RarityNone
		m.eventsList = m.index.TraineeEvents(snap.Trainee.Name)
	default:
		slot := snap.Supports[row]
		if slot == nil {
			m.status = "slot is empty"
			return
		}
		m.eventsKind = event.KindSupport
		m.eventsName = slot.Name
		m.eventsAttr, m.eventsRarity = slot.Attribute, slot.Rarity
		set, ok := m.index.FindSupport(slot.Name, slot.Attribute, slot.Rarity)
		if !ok {
			m.status = "card missing from catalog"
			return
		}
		m.eventsList = set.Events
	}
	m.eventsCursor = 0
	m.view = viewEvents
}

func (m *model) eventKeys(ev event.ChoiceEvent) (string, string) {
	key := event.BuildKey(m.eventsKind, m.eventsName, m.eventsAttr, m.eventsRarity, ev.Name, ev.Step())
	legacy := event.LegacyKey(m.eventsKind, m.eventsName, m.eventsAttr, m.eventsRarity, ev.Name)
	return key, legacy
}

func (m *model) setOverrideForCursor(pick int) {
	if m.eventsCursor >= len(m.eventsList) {
		return
	}
	ev := m.eventsList[m.eventsCursor]
	if _, ok := ev.Options[strconv.Itoa(pick)]; !ok {
		m.status = fmt.Sprintf("event has no option %d", pick)
		return
	}
	key, _ := m.eventKeys(ev)
	m.store.SetOverride(key, pick)
	m.syncNow()
}

func (m *model) clearOverrideForCursor() {
	if m.eventsCursor >= len(m.eventsList) {
		return
	}
	key, _ := m.eventKeys(m.eventsList[m.eventsCursor])
	m.store.ClearOverride(key)
	m.syncNow()
}

// tea.Model implementation ---------------------------------------------------

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m model) handleKey(k string) (tea.Model, tea.Cmd) {
	if k == "ctrl+c" {
		m.syncNow()
		return m, tea.Quit
	}
	switch m.view {
	case viewPresets:
		return m.handlePresetsKey(k)
	case viewDeck:
		return m.handleDeckKey(k)
	case viewPicker:
		return m.handlePickerKey(k)
	case viewEvents:
		return m.handleEventsKey(k)
	case viewHelp:
		if k == "esc" || k == "q" {
			m.view = viewDeck
		}
		return m, nil
	}
	return m, nil
}

func (m model) handlePresetsKey(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "up", "k":
		if m.presetCursor > 0 {
			m.presetCursor--
		}
	case "down", "j":
		if m.presetCursor < len(m.presets)-1 {
			m.presetCursor++
		}
	case "enter":
		if m.presetCursor < len(m.presets) {
			m.activatePreset(m.presets[m.presetCursor])
		}
	case "n":
		if m.repo != nil {
			p, err := m.repo.Create(m.ctx, fmt.Sprintf("Preset %d", len(m.presets)+1))
			if err != nil {
				m.status = "create preset: " + err.Error()
				break
			}
			m.reloadPresets()
			m.activatePreset(p)
		}
	case "r":
		m.reloadPresets()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) handleDeckKey(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "up", "k":
		if m.deckCursor > 0 {
			m.deckCursor--
		}
	case "down", "j":
		if m.deckCursor < deckRows-1 {
			m.deckCursor++
		}
	case "enter":
		m.openPicker(m.deckCursor)
	case "x":
		switch m.deckCursor {
		case rowScenario:
			m.store.SetScenario(nil)
		case rowTrainee:
			m.store.SetTrainee(nil)
		default:
			m.store.SetSupport(m.deckCursor, nil)
		}
		m.syncNow()
	case "e":
		m.openEvents(m.deckCursor)
	case "p":
		m.pushToAgent()
	case "s":
		m.syncNow()
	case "t":
		m.themeName = nextThemeName(m.themeName, 1)
		m.styles = stylesFor(paletteFor(m.themeName))
	case "?":
		m.view = viewHelp
	case "esc", "q":
		m.syncNow()
		m.view = viewPresets
		m.reloadPresets()
	}
	return m, nil
}

func (m model) handlePickerKey(k string) (tea.Model, tea.Cmd) {
	choices := m.pickerChoices()
	switch k {
	case "up", "k":
		if m.pickerCursor > 0 {
			m.pickerCursor--
		}
	case "down", "j":
		if m.pickerCursor < len(choices)-1 {
			m.pickerCursor++
		}
	case "tab":
		if m.pickerRow < setup.SupportSlots && len(m.pickerAttrs) > 0 {
			m.pickerAttr = (m.pickerAttr + 1) % len(m.pickerAttrs)
			m.pickerCursor = 0
		}
	case "enter":
		if m.pickerCursor < len(choices) {
			m.applyPick(choices[m.pickerCursor])
		}
	case "esc", "q":
		m.view = viewDeck
	}
	return m, nil
}

func (m model) handleEventsKey(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "up", "k":
		if m.eventsCursor > 0 {
			m.eventsCursor--
		}
	case "down", "j":
		if m.eventsCursor < len(m.eventsList)-1 {
			m.eventsCursor++
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		pick, _ := strconv.Atoi(k)
		m.setOverrideForCursor(pick)
	case "c":
		m.clearOverrideForCursor()
	case "esc", "q":
		m.view = viewDeck
	}
	return m, nil
}

func (m model) View() string {
	switch m.view {
	case viewPresets:
		return m.renderPresets()
	case viewDeck:
		return m.renderDeck()
	case viewPicker:
		return m.renderPicker()
	case viewEvents:
		return m.renderEvents()
	case viewHelp:
		return m.renderHelp()
	}
	return ""
}

func (m model) header(title string) string {
	return m.styles.title.Render(fmt.Sprintf("paddock %s — %s", m.version, title)) + "\n\n"
}

func (m model) footer(hint string) string {
	out := "\n" + m.styles.muted.Render(hint)
	if m.status != "" {
		out += "\n" + m.styles.warn.Render(m.status)
	}
	return out + "\n"
}

func (m model) renderPresets() string {
	var b strings.Builder
	b.WriteString(m.header("presets"))
	if len(m.presets) == 0 {
		b.WriteString(m.styles.muted.Render("(no presets — press n to create one)") + "\n")
	}
	for i, p := range m.presets {
		line := p.Name
		if p.ID == m.active {
			line += " (active)"
		}
		if i == m.presetCursor {
			b.WriteString(m.styles.selected.Render("> "+line) + "\n")
		} else {
			b.WriteString(m.styles.label.Render("  "+line) + "\n")
		}
	}
	b.WriteString(m.footer("enter load · n new · r refresh · q quit"))
	return b.String()
}

func (m model) renderDeck() string {
	snap := m.store.Snapshot()
	var b strings.Builder
	b.WriteString(m.header("deck — " + m.activeName))
	for i := 0; i < setup.SupportSlots; i++ {
		label := fmt.Sprintf("slot %d: %s", i+1, describeSlot(snap.Supports[i]))
		b.WriteString(m.deckLine(i, label))
	}
	b.WriteString(m.deckLine(rowScenario, "scenario: "+describePick(snap.Scenario)))
	b.WriteString(m.deckLine(rowTrainee, "trainee:  "+describePick(snap.Trainee)))
	b.WriteString("\n" + m.styles.muted.Render(fmt.Sprintf("reward priority: %v", snap.Prefs.RewardPriority)) + "\n")
	b.WriteString(m.footer("enter pick · x clear · e events · p push · s save · t theme · ? help · esc presets"))
	return b.String()
}

func (m model) deckLine(row int, label string) string {
	if row == m.deckCursor {
		return m.styles.selected.Render("> "+label) + "\n"
	}
	return m.styles.label.Render("  "+label) + "\n"
}

func describeSlot(slot *setup.SupportSlot) string {
	if slot == nil {
		return "(empty)"
	}
	return fmt.Sprintf("%s [%s %s]", slot.Name, slot.Attribute, slot.Rarity)
}

func describePick(pick *setup.EntityPick) string {
	if pick == nil {
		return "(none)"
	}
	return pick.Name
}

func (m model) renderPicker() string {
	var b strings.Builder
	title := "pick scenario"
	switch {
	case m.pickerRow == rowTrainee:
		title = "pick trainee"
	case m.pickerRow < setup.SupportSlots:
		attr := "-"
		if len(m.pickerAttrs) > 0 {
			attr = string(m.pickerAttrs[m.pickerAttr])
		}
		title = fmt.Sprintf("pick support for slot %d — %s", m.pickerRow+1, attr)
	}
	b.WriteString(m.header(title))
	choices := m.pickerChoices()
	if len(choices) == 0 {
		b.WriteString(m.styles.muted.Render("(catalog has no entries here)") + "\n")
	}
	for i, set := range choices {
		label := set.Name
		if set.Kind == event.KindSupport {
			label = fmt.Sprintf("%-4s %s", set.Rarity, set.Name)
		}
		if i == m.pickerCursor {
			b.WriteString(m.styles.selected.Render("> "+label) + "\n")
		} else {
			b.WriteString(m.styles.label.Render("  "+label) + "\n")
		}
	}
	b.WriteString(m.footer("enter select · tab attribute · esc back"))
	return b.String()
}

func (m model) renderEvents() string {
	prefs := m.store.Snapshot().Prefs
	var b strings.Builder
	b.WriteString(m.header(fmt.Sprintf("events — %s (%s)", m.eventsName, m.eventsKind)))
	if len(m.eventsList) == 0 {
		b.WriteString(m.styles.muted.Render("(no events)") + "\n")
	}
	for i, ev := range m.eventsList {
		key, legacy := m.eventKeys(ev)
		pick := event.Resolve(prefs, key, legacy, ev.DefaultPreference, m.eventsKind)
		_, overridden := prefs.Overrides[key]
		line := fmt.Sprintf("%s (step %d) -> option %d", ev.Name, ev.Step(), pick)
		switch {
		case i == m.eventsCursor:
			b.WriteString(m.styles.selected.Render("> "+line) + "\n")
		case overridden:
			b.WriteString(m.styles.ok.Render("  "+line) + "\n")
		default:
			b.WriteString(m.styles.label.Render("  "+line) + "\n")
		}
	}
	b.WriteString(m.footer("1-9 force option · c clear override · esc back"))
	return b.String()
}

const helpMarkdown = `# paddock

Preset editor for the trainer bot.

## Views

- **presets**: pick the active preset; loading one replaces the whole
  working setup.
- **deck**: the six support slots plus scenario and trainee.
- **events**: every choice event of the highlighted entity with the
  option the bot will currently take. Forced options are stored per
  event occurrence; wildcard patterns and per-kind defaults fill the
  gaps.

## Persistence

Changes save back to the active preset whenever the revision counter
has moved. Push sends the setup to the running agent.
`

func renderMarkdown(src string) string {
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return src
	}
	out, err := renderer.Render(src)
	if err != nil {
		return src
	}
	return out
}

func (m model) renderHelp() string {
	return m.helpRendered + m.footer("esc back")
}
