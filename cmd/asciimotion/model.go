package main

import (
	"time"

	tea "charm.land/bubbletea/v2"
	charmlog "charm.land/log/v2"

	"go.jacobcolvin.com/asciimotion/framebuf"
	"go.jacobcolvin.com/asciimotion/log"
	"go.jacobcolvin.com/asciimotion/params"
	"go.jacobcolvin.com/asciimotion/pipeline"
	"go.jacobcolvin.com/asciimotion/playback"
	"go.jacobcolvin.com/asciimotion/viewport"
)

// tickInterval approximates a display refresh; the actual frame cadence is
// enforced by the playback scheduler, not this timer.
const tickInterval = time.Second / 60

// statusRows is the number of terminal rows reserved below the frame area.
const statusRows = 2

// converter is the conversion service surface the UI depends on.
type converter interface {
	LoadSource(path string) (int, error)
	Convert(width, brightness int, contrast float64, onlyFrame int) (int, []byte, error)
	PreviewAdjust(brightness int, contrast float64, frameIndex int) (string, error)
	ExportFrames(path string, frames []string) error
}

// tickMsg drives the playback clock.
type tickMsg time.Time

// debounceMsg is the trailing-edge debounce timer, stamped with its
// generation.
type debounceMsg struct {
	seq int
}

// sourceLoadedMsg carries the result of decoding the source.
type sourceLoadedMsg struct {
	frameCount int
	err        error
}

// convertedMsg carries a conversion response for the bulk channel.
// scope echoes the request: [pipeline.ScopeAll] or a single frame index.
type convertedMsg struct {
	scope      int
	frameCount int
	payload    []byte
	err        error
}

// previewMsg carries a preview response tagged with the snapshot it was
// issued against.
type previewMsg struct {
	tag params.Snapshot
	uri string
	err error
}

// exportedMsg carries the result of an export.
type exportedMsg struct {
	path string
	err  error
}

// model wires the pipeline components into the bubbletea event loop. All
// fields are owned by the loop; service calls run as commands and re-enter
// through messages.
type model struct {
	svc    converter
	logger *charmlog.Logger
	tail   *log.Tail

	store    *params.Store
	coord    pipeline.Coordinator
	debounce *pipeline.Debounce
	sched    playback.Scheduler

	buf   *framebuf.Buffer
	grid  framebuf.Grid
	xform viewport.Transform

	source     string
	exportPath string
	loading    bool

	viewportW int
	viewportH int

	previewPane string
	exportedTo  string
}

func newModel(svc converter, logger *charmlog.Logger, tail *log.Tail, snap params.Snapshot, source, exportPath string) *model {
	return &model{
		svc:        svc,
		logger:     logger,
		tail:       tail,
		store:      params.NewStore(snap),
		debounce:   pipeline.NewDebounce(pipeline.DefaultDebounce),
		buf:        &framebuf.Buffer{},
		source:     source,
		exportPath: exportPath,
		loading:    true,
	}
}

// Init starts the source load and the playback clock.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.tick())
}

func (m *model) tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		count, err := m.svc.LoadSource(m.source)
		return sourceLoadedMsg{frameCount: count, err: err}
	}
}

// Update handles ticks, keys, resizes, and service completions.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m, m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.viewportW = msg.Width
		m.viewportH = msg.Height
		m.refit()

	case tickMsg:
		m.sched.Tick(time.Time(msg), m.buf.FrameCount())
		return m, m.tick()

	case sourceLoadedMsg:
		return m, m.updateSourceLoaded(msg)

	case convertedMsg:
		return m, m.updateConverted(msg)

	case previewMsg:
		m.updatePreview(msg)

	case debounceMsg:
		return m, m.updateDebounce(msg)

	case exportedMsg:
		if msg.err != nil {
			m.coord.RecordFailure(msg.err)
			m.logger.Error("export failed", "path", msg.path, "err", msg.err)

			return m, nil
		}

		m.exportedTo = msg.path
		m.logger.Info("exported", "path", msg.path)
	}

	return m, nil
}

func (m *model) updateKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return tea.Quit

	case " ", "space":
		m.sched.TogglePause()

	case "right":
		m.sched.SetIndex(m.sched.Index() + 1)

	case "left":
		m.sched.SetIndex(m.sched.Index() - 1)

	case "e":
		return m.exportCmd()

	case "+", "=":
		return m.editParams(func() { m.store.AdjustWidth(5) })

	case "-", "_":
		return m.editParams(func() { m.store.AdjustWidth(-5) })

	case "]":
		return m.editParams(func() { m.store.AdjustBrightness(5) })

	case "[":
		return m.editParams(func() { m.store.AdjustBrightness(-5) })

	case "}":
		return m.editParams(func() { m.store.AdjustContrast(0.1) })

	case "{":
		return m.editParams(func() { m.store.AdjustContrast(-0.1) })
	}

	return nil
}

// editParams applies one interactive edit: enter Interactive so autoplay
// yields, refresh the displayed frame immediately, fire a preview, and
// re-arm the trailing-edge debounce that will materialize every frame at
// the final values.
func (m *model) editParams(apply func()) tea.Cmd {
	apply()
	m.sched.SetInteractive(true)

	seq := m.debounce.Arm()

	return tea.Batch(
		m.requestConversion(m.sched.Index()),
		m.requestPreview(),
		tea.Tick(m.debounce.Delay(), func(time.Time) tea.Msg {
			return debounceMsg{seq: seq}
		}),
	)
}

// requestConversion asks the coordinator for a bulk-channel slot and issues
// the call when granted. A denied request leaves a replay owed; nothing else
// to do now.
func (m *model) requestConversion(scope int) tea.Cmd {
	if !m.coord.RequestBulk(scope) {
		return nil
	}

	return m.convertCmd(m.store.Snapshot(), scope)
}

func (m *model) convertCmd(snap params.Snapshot, scope int) tea.Cmd {
	return func() tea.Msg {
		count, payload, err := m.svc.Convert(snap.Width, snap.Brightness, snap.Contrast, scope)
		return convertedMsg{scope: scope, frameCount: count, payload: payload, err: err}
	}
}

func (m *model) requestPreview() tea.Cmd {
	if !m.coord.RequestPreview() {
		return nil
	}

	tag := m.store.Snapshot()
	idx := m.sched.Index()

	return func() tea.Msg {
		uri, err := m.svc.PreviewAdjust(tag.Brightness, tag.Contrast, idx)
		return previewMsg{tag: tag, uri: uri, err: err}
	}
}

func (m *model) updateSourceLoaded(msg sourceLoadedMsg) tea.Cmd {
	m.loading = false

	if msg.err != nil {
		m.coord.RecordFailure(msg.err)
		m.logger.Error("load failed", "source", m.source, "err", msg.err)

		return nil
	}

	m.logger.Info("source loaded", "source", m.source, "frames", msg.frameCount)
	m.sched.Reset(time.Now())
	m.buf = &framebuf.Buffer{}
	m.refit()

	return m.requestConversion(pipeline.ScopeAll)
}

// updateConverted releases the bulk slot, issues any owed replay with the
// latest snapshot, and applies the response. A failed response leaves the
// previous buffer and playback state displayable.
func (m *model) updateConverted(msg convertedMsg) tea.Cmd {
	var next tea.Cmd

	replay, scope := m.coord.FinishBulk()
	if replay {
		next = m.convertCmd(m.store.Snapshot(), scope)
	}

	if msg.err != nil {
		m.coord.RecordFailure(msg.err)
		m.logger.Error("conversion failed", "scope", msg.scope, "err", msg.err)

		return next
	}

	if msg.scope >= 0 {
		m.buf = framebuf.InstallSingle(msg.payload, msg.scope, msg.frameCount)
	} else {
		buf, err := framebuf.Install(msg.payload, msg.frameCount)
		if err != nil {
			// Contract violation by the service, not a transient failure.
			m.coord.RecordFailure(err)
			m.logger.Error("conversion protocol mismatch",
				"len", len(msg.payload), "frames", msg.frameCount, "err", err)

			return next
		}

		m.buf = buf
	}

	m.coord.ClearFailure()
	m.refit()

	return next
}

func (m *model) updatePreview(msg previewMsg) {
	accepted := m.coord.AcceptPreview(msg.tag, m.store.Snapshot())

	if msg.err != nil {
		m.coord.RecordFailure(msg.err)
		m.logger.Error("preview failed", "err", msg.err)

		return
	}

	if !accepted {
		m.logger.Debug("discarding stale preview", "tag", msg.tag)
		return
	}

	m.previewPane = renderPreviewPane(msg.uri, previewPaneCols)
}

// updateDebounce fires the trailing edge: only the latest generation ends
// the interactive phase and materializes every frame at the final values.
func (m *model) updateDebounce(msg debounceMsg) tea.Cmd {
	if !m.debounce.Fire(msg.seq) {
		return nil
	}

	m.sched.SetInteractive(false)
	m.previewPane = ""

	return m.requestConversion(pipeline.ScopeAll)
}

// exportCmd snapshots the decoded frames and writes them off the loop. The
// snapshot stays valid even if a conversion lands mid-export because buffers
// are replaced, never mutated.
func (m *model) exportCmd() tea.Cmd {
	if m.buf.Empty() {
		m.logger.Warn("nothing to export")
		return nil
	}

	if _, single := m.buf.SingleIndex(); single {
		m.logger.Warn("export skipped during adjustment")
		return nil
	}

	frames := make([]string, m.buf.FrameCount())
	for i := range frames {
		frames[i] = string(m.buf.SliceFor(i))
	}

	path := m.exportPath

	return func() tea.Msg {
		return exportedMsg{path: path, err: m.svc.ExportFrames(path, frames)}
	}
}

// refit remeasures the glyph grid and recomputes the render transform.
// Called whenever the buffer or the viewport changes.
func (m *model) refit() {
	m.grid = framebuf.MeasureGrid(m.buf.SliceFor(m.sched.Index()))
	m.xform = viewport.Fit(m.viewportW, m.viewportH-statusRows, m.grid.Cols, m.grid.Rows)
}
