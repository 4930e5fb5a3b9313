package components

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/ecosmart/internal/classifier"
	"github.com/Veraticus/ecosmart/internal/common"
	"github.com/Veraticus/ecosmart/internal/dashboard"
	"github.com/Veraticus/ecosmart/internal/imaging"
	"github.com/Veraticus/ecosmart/internal/model"
	"github.com/Veraticus/ecosmart/internal/tui/themes"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var errNoClassifier = errors.New("no classifier configured")

var dropzoneBorder = lipgloss.Border{
	Top:         "╌",
	Bottom:      "╌",
	Left:        "╎",
	Right:       "╎",
	TopLeft:     "┌",
	TopRight:    "┐",
	BottomLeft:  "└",
	BottomRight: "┘",
}

// UploadConfig wires an UploadModel to its collaborators.
type UploadConfig struct {
	Context           context.Context
	Classifier        classifier.Classifier
	Logger            *slog.Logger
	Now               func() time.Time
	StartDir          string
	Theme             themes.Theme
	HardwareConnected bool
}

// UploadModel is the upload → classify card.
type UploadModel struct {
	ctx        context.Context
	classifier classifier.Classifier
	flow       *dashboard.UploadFlow
	logger     *slog.Logger
	now        func() time.Time
	theme      themes.Theme
	notice     string
	keys       UploadKeyMap
	picker     filepicker.Model
	confidence progress.Model
	spinner    spinner.Model
	width      int
	picking    bool
}

// NewUploadModel creates the card with an empty flow.
func NewUploadModel(cfg UploadConfig) UploadModel {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	flow := dashboard.NewUploadFlow()
	flow.SetHardwareConnected(cfg.HardwareConnected)

	picker := filepicker.New()
	picker.AllowedTypes = imaging.AllowedExtensions
	if cfg.StartDir != "" {
		picker.CurrentDirectory = cfg.StartDir
	}

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(cfg.Theme.Primary)),
	)

	return UploadModel{
		ctx:        cfg.Context,
		classifier: cfg.Classifier,
		flow:       flow,
		logger:     cfg.Logger.With("component", "upload"),
		now:        cfg.Now,
		theme:      cfg.Theme,
		keys:       DefaultUploadKeyMap(),
		picker:     picker,
		confidence: progress.New(progress.WithSolidFill(string(cfg.Theme.Primary)), progress.WithoutPercentage()),
		spinner:    spin,
		width:      56,
	}
}

// Flow exposes the underlying state machine.
func (m UploadModel) Flow() *dashboard.UploadFlow {
	return m.flow
}

// Picking reports whether the file picker has focus. The shell suspends its
// own shortcuts while it does.
func (m UploadModel) Picking() bool {
	return m.picking
}

// Notice returns the last transient message shown under the card.
func (m UploadModel) Notice() string {
	return m.notice
}

// Keys returns the card's bindings.
func (m UploadModel) Keys() UploadKeyMap {
	return m.keys
}

// SetWidth sets the rendered card width.
func (m *UploadModel) SetWidth(width int) {
	m.width = max(width, 24)
	m.confidence.Width = max(m.width-12, 10)
}

// Update handles messages.
func (m UploadModel) Update(msg tea.Msg) (UploadModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case DropMsg:
		return m.handleDrop(msg)

	case imageLoadedMsg:
		m.handleLoaded(msg)
		return m, nil

	case classifyDoneMsg:
		return m.handleDone(msg)

	case spinner.TickMsg:
		if !m.flow.InFlight() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Directory listings and resizes belong to the picker.
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m UploadModel) handleKey(msg tea.KeyMsg) (UploadModel, tea.Cmd) {
	if m.picking {
		return m.handlePickerKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Browse):
		if m.flow.State() == dashboard.StateClassifying {
			m.notice = common.UserMessage(common.ErrFlowBusy)
			return m, nil
		}
		m.picking = true
		m.notice = ""
		return m, m.picker.Init()

	case key.Matches(msg, m.keys.Classify):
		return m.startClassify()

	case key.Matches(msg, m.keys.Reset):
		if !m.flow.Reset() {
			m.notice = common.UserMessage(common.ErrFlowBusy)
			return m, nil
		}
		m.notice = ""
		m.logger.Debug("upload reset")

	case key.Matches(msg, m.keys.Hardware):
		connected := m.flow.ToggleHardware()
		m.logger.Info("camera toggled", "connected", connected)

	case key.Matches(msg, m.keys.Capture):
		if !m.flow.HardwareConnected() {
			m.notice = "Connect the camera first (h)"
			return m, nil
		}
		frame, err := imaging.Capture(m.now())
		if err != nil {
			m.notice = common.UserMessage(common.NewClassificationError("capture", "", fmt.Errorf("%w: %w", common.ErrClassificationServiceUnavailable, err)))
			m.logger.Error("capture failed", "error", err)
			return m, nil
		}
		id, ok := m.flow.Capture(frame)
		if !ok {
			m.notice = common.UserMessage(common.ErrFlowBusy)
			return m, nil
		}
		m.notice = ""
		img, _ := m.flow.Image()
		m.logger.Info("captured image", "image", img.Name, "request", id)
		return m, tea.Batch(m.spinner.Tick, m.classifyCmd(id, img))
	}

	return m, nil
}

func (m UploadModel) handlePickerKey(msg tea.KeyMsg) (UploadModel, tea.Cmd) {
	if key.Matches(msg, m.keys.Cancel) {
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.picking = false
		return m, tea.Batch(cmd, loadCmd(path, model.OriginPicker))
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.notice = common.UserMessage(fmt.Errorf("%w: %s", common.ErrInvalidImageFormat, path))
	}

	return m, cmd
}

func (m UploadModel) handleDrop(msg DropMsg) (UploadModel, tea.Cmd) {
	if len(msg.Paths) == 0 {
		return m, nil
	}
	if m.flow.State() == dashboard.StateClassifying {
		m.notice = common.UserMessage(common.ErrFlowBusy)
		return m, nil
	}

	m.notice = ""
	if len(msg.Paths) > 1 {
		m.notice = fmt.Sprintf("Using the first of %d files", len(msg.Paths))
		m.logger.Info("multiple files dropped", "count", len(msg.Paths), "origin", msg.Origin)
	}
	return m, loadCmd(msg.Paths[0], msg.Origin)
}

func (m *UploadModel) handleLoaded(msg imageLoadedMsg) {
	if msg.err != nil {
		m.notice = common.UserMessage(msg.err)
		m.logger.Warn("image rejected", "path", msg.path, "error", msg.err)
		return
	}

	if err := m.flow.Stage(msg.image); err != nil {
		m.notice = common.UserMessage(err)
		m.logger.Warn("image not staged", "path", msg.path, "error", err)
		return
	}

	m.logger.Info("image staged",
		"image", msg.image.Name,
		"origin", msg.image.Origin,
		"mime", msg.image.MIMEType,
		"size", msg.image.Size)
}

func (m UploadModel) startClassify() (UploadModel, tea.Cmd) {
	id, ok := m.flow.BeginClassify()
	if !ok {
		if m.flow.State() == dashboard.StateEmpty {
			m.notice = common.UserMessage(common.ErrNothingStaged)
		}
		return m, nil
	}

	m.notice = ""
	img, _ := m.flow.Image()
	m.logger.Debug("classification started", "image", img.Name, "request", id)
	return m, tea.Batch(m.spinner.Tick, m.classifyCmd(id, img))
}

func (m UploadModel) handleDone(msg classifyDoneMsg) (UploadModel, tea.Cmd) {
	if msg.err != nil {
		if m.flow.Fail(msg.id, msg.err) {
			m.logger.Error("classification failed", "request", msg.id, "error", msg.err)
		}
		return m, nil
	}

	ev, ok := m.flow.Complete(msg.id, msg.result, msg.at)
	if !ok {
		m.logger.Debug("stale classification dropped", "request", msg.id)
		return m, nil
	}

	m.logger.Info("classification complete",
		"event", ev.ID.String(),
		"source", ev.Source,
		"item", ev.Result.ItemLabel,
		"category", ev.Result.Category.String(),
		"confidence", ev.Result.Confidence)

	return m, func() tea.Msg {
		return ClassificationCompleteMsg{Event: ev}
	}
}

func (m UploadModel) classifyCmd(id uint64, img model.StagedImage) tea.Cmd {
	ctx, cls, now := m.ctx, m.classifier, m.now
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = classifyDoneMsg{
					id:  id,
					at:  now(),
					err: common.NewClassificationError("classify", img.Name, fmt.Errorf("%w: panic: %v", common.ErrClassificationServiceUnavailable, r)),
				}
			}
		}()

		if cls == nil {
			return classifyDoneMsg{id: id, at: now(), err: fmt.Errorf("%w: %w", common.ErrClassificationServiceUnavailable, errNoClassifier)}
		}

		result, err := cls.Classify(ctx, img)
		return classifyDoneMsg{id: id, at: now(), result: result, err: err}
	}
}

func loadCmd(path string, origin model.ImageOrigin) tea.Cmd {
	return func() tea.Msg {
		img, err := imaging.Load(path, origin)
		return imageLoadedMsg{path: path, image: img, err: err}
	}
}

// View renders the card.
func (m UploadModel) View() string {
	sections := []string{m.theme.Title.Render("⇪ Waste Classification"), ""}

	if m.picking {
		sections = append(sections,
			m.theme.Subtitle.Render("Choose Image"),
			m.picker.View(),
			m.theme.StatusPending.Render("Esc close picker"),
		)
		return m.theme.Card.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	}

	switch m.flow.State() {
	case dashboard.StateEmpty:
		sections = append(sections, m.renderDropzone())
	case dashboard.StateImageStaged:
		sections = append(sections, m.renderImage(), "", m.renderAction("Enter", "Classify Waste"))
	case dashboard.StateClassifying:
		sections = append(sections, m.renderImage(), "", m.spinner.View()+" Classifying...")
	case dashboard.StateClassified:
		sections = append(sections, m.renderImage(), "", m.renderResult())
	}

	if err := m.flow.Err(); err != nil {
		sections = append(sections, "", m.theme.StatusError.Render("✗ "+common.UserMessage(err)))
	}
	if m.notice != "" {
		sections = append(sections, "", m.theme.StatusWarning.Render(m.notice))
	}

	sections = append(sections, "", m.renderHardware())

	return m.theme.Card.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m UploadModel) renderDropzone() string {
	inner := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(m.theme.Accent).Render("🖼"),
		m.theme.Bold.Render("Drop waste image here"),
		m.theme.StatusPending.Render("or press o to browse"),
		m.theme.StatusPending.Render("Supports "+supportedFormats()),
	)

	return lipgloss.NewStyle().
		Border(dropzoneBorder).
		BorderForeground(m.theme.Border).
		Width(max(m.width-6, 20)).
		Align(lipgloss.Center).
		Padding(1, 0).
		Render(inner)
}

func (m UploadModel) renderImage() string {
	img, ok := m.flow.Image()
	if !ok {
		return ""
	}

	details := []string{img.MIMEType}
	if w, h, ok := img.Dimensions(); ok {
		details = append(details, fmt.Sprintf("%d×%d", w, h))
	}
	details = append(details, humanize.IBytes(uint64(max(img.Size, 0))))

	icon := "🖼"
	if img.Synthetic() {
		icon = "📷"
	}

	lines := []string{
		m.theme.Bold.Render(icon + " " + img.Name),
		m.theme.StatusPending.Render(strings.Join(details, " · ")),
	}
	if m.flow.State() != dashboard.StateClassifying {
		lines = append(lines, m.renderAction("u", "Upload Different Image"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m UploadModel) renderResult() string {
	res, ok := m.flow.Result()
	if !ok {
		return ""
	}
	style := m.theme.StyleFor(res.Category)

	head := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Foreground(m.theme.Success).Render("✓ "),
		m.theme.Bold.Render(res.ItemLabel),
		"  ",
		lipgloss.NewStyle().Foreground(style.Color).Render(style.Icon+" "+style.Label),
	)
	bar := m.confidence.ViewAs(float64(res.Confidence)/100) +
		lipgloss.NewStyle().Foreground(m.theme.Accent).Render(fmt.Sprintf(" %d%%", res.Confidence))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Accent).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, head, bar, m.renderAction("u", "Classify Another Image")))
}

func (m UploadModel) renderHardware() string {
	if !m.flow.HardwareConnected() {
		return m.theme.StatusPending.Render("○ Camera disconnected") + "  " + m.renderAction("h", "connect")
	}
	return m.theme.StatusSuccess.Render("● Camera connected") + "  " +
		m.renderAction("c", "capture") + "  " + m.renderAction("h", "disconnect")
}

func (m UploadModel) renderAction(keyLabel, action string) string {
	return m.theme.Badge.Render(keyLabel) + " " + m.theme.Normal.Render(action)
}

func supportedFormats() string {
	names := make([]string, 0, len(imaging.AllowedExtensions))
	for _, ext := range imaging.AllowedExtensions {
		if ext == ".jpeg" {
			continue
		}
		names = append(names, strings.ToUpper(strings.TrimPrefix(ext, ".")))
	}
	return strings.Join(names, ", ")
}
