package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"buttongroup/internal/config"
	"buttongroup/internal/eventbus"
	"buttongroup/internal/ui/commands"
	"buttongroup/internal/ui/coordinator"
	"buttongroup/internal/ui/handlers"
	"buttongroup/internal/ui/input"
	inputtypes "buttongroup/internal/ui/input/types"
	"buttongroup/internal/ui/services/events"
	"buttongroup/internal/ui/state"
	"buttongroup/internal/ui/viewmodels"
	"buttongroup/internal/ui/views"
	"buttongroup/internal/widgetmgr"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	width       int
	height      int
	help        help.Model
	inPagerMode bool

	coordinator  *coordinator.Coordinator
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel mounts every configured button group against mgr.
// bus may be nil, in which case domain events are applied in place.
func NewModel(bus eventbus.EventBus, cfg *config.Config, mgr widgetmgr.Controllable) (*Model, error) {
	elements, err := cfg.Elements()
	if err != nil {
		return nil, err
	}

	appState := state.NewAppState(cfg.UISettings.HistorySize)
	appState.Online = mgr.Online()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		help:         help.New(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        NewPagerOps(nil),
	}
	m.helpRenderer = NewHelpRenderer(m.inputHandler.Keys())

	// Subscribe before mounting so the initial selections land in the history
	serviceBus := events.NewBus()
	m.eventHandler = handlers.NewEventHandler(appState)
	m.eventHandler.Subscribe(serviceBus)

	m.coordinator, err = coordinator.NewCoordinator(elements, mgr, cfg.FragmentID, serviceBus)
	if err != nil {
		return nil, err
	}
	m.eventHandler.SetCoordinator(m.coordinator)

	m.cmdExecutor = commands.NewExecutor(appState, bus, mgr, m.eventHandler.HandleEvent)

	m.viewModel = viewmodels.NewViewModel(appState, cfg, m.coordinator, textinput.New())
	m.viewModel.SetHelp(m.help, m.inputHandler.Keys())

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// Coordinator returns the widgets mounted by the model
func (m *Model) Coordinator() *coordinator.Coordinator {
	return m.coordinator
}

// State returns the host UI state
func (m *Model) State() *state.AppState {
	return m.state
}

// Close releases the form subscriptions of every widget
func (m *Model) Close() {
	m.coordinator.Close()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help, m.inputHandler.Keys())

	case tea.KeyMsg:
		ctx := &input.ModelContext{Coordinator: m.coordinator}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		if ti := m.inputHandler.TextInput(); ti != nil {
			m.viewModel.UpdateTextInput(*ti)
		}

		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			if ti := m.inputHandler.TextInput(); ti != nil {
				m.viewModel.UpdateTextInput(*ti)
			}
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)

	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModePush:
		m.viewModel.SetInputMode(viewmodels.InputModePush, m.inputHandler.Target())
		if ti := m.inputHandler.TextInput(); ti != nil {
			m.viewModel.UpdateTextInput(*ti)
		}
	default:
		m.viewModel.SetInputMode(viewmodels.InputModeNormal, "")
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)
	nav := m.coordinator.Navigation

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			nav.MoveFocus(-1)
		case "down":
			nav.MoveFocus(1)
		case "left":
			nav.MoveCursor(-1)
		case "right":
			nav.MoveCursor(1)
		case "home":
			nav.Home()
		case "end":
			nav.End()
		}

	case inputtypes.ClickAction:
		if err := m.coordinator.Click(a.WidgetID, a.Index); err != nil {
			log.Printf("Click on %s[%d] failed: %v", a.WidgetID, a.Index, err)
			m.state.SetError(err)
		}

	case inputtypes.ResetFormAction:
		return m.cmdExecutor.ExecuteClearForm(a.FormID)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModePush && a.Target != "" {
			return m.cmdExecutor.ExecutePushValue(a.Target, a.Text)
		}

	case inputtypes.CancelTextAction:
		m.state.SetStatus("")

	case inputtypes.ToggleOnlineAction:
		return m.cmdExecutor.ExecuteToggleOnline()

	case inputtypes.ShowHistoryAction:
		return m.showHistory()

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		m.coordinator.Close()
		return tea.Quit
	}

	return nil
}

// showHistory opens the sync history in the pager, newest first
func (m *Model) showHistory() tea.Cmd {
	if m.program == nil {
		m.state.SetStatus("History pager unavailable")
		return nil
	}
	content := m.helpRenderer.RenderHelpContent() + "\nSync history\n\n" + m.state.HistoryText()
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.ShowInPager(strings.NewReader(content))
		m.program.Send(resumeRenderingMsg{})
		return pagerMsg{err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			m.state.SetError(msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	return m, nil
}
