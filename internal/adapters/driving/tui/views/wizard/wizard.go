// Package wizard provides the step-by-step quote calculator view.
package wizard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/anim"
	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/keymap"
	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/messages"
	"github.com/cambridgestyling/stylequote/internal/adapters/driving/tui/styles"
	"github.com/cambridgestyling/stylequote/internal/core/domain"
	"github.com/cambridgestyling/stylequote/internal/core/ports/driving"
	"github.com/cambridgestyling/stylequote/internal/logger"
)

const (
	progressWidth = 40
	basePadding   = 2
	labelWidth    = 34
)

// Options configures a wizard view.
type Options struct {
	// QuoteDuration is the reveal time for the quote total.
	QuoteDuration time.Duration

	// OutputDir is where exported documents are written.
	OutputDir string
}

// View represents the quote wizard view.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	quotes  driving.QuoteService
	exports driving.ExportService

	wizard driving.Wizard
	sheet  domain.PriceSheet
	cursor int

	progress progress.Model
	reveal   *anim.Reveal
	shake    *anim.Shake

	// notice is a one-line outcome such as a saved file path.
	notice string
	err    error

	showEnquiry bool
	enquiry     string
	mailto      string

	outDir string
	width  int
	height int
	ready  bool
}

// NewView creates a new wizard view.
func NewView(s *styles.Styles, quotes driving.QuoteService, exports driving.ExportService, opts Options) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	bar := progress.New(
		progress.WithSolidFill(string(s.Theme().Primary)),
		progress.WithoutPercentage(),
		progress.WithWidth(progressWidth),
	)
	bar.EmptyColor = string(s.Theme().Track)

	v := &View{
		styles:   s,
		keymap:   keymap.DefaultKeyMap(),
		quotes:   quotes,
		exports:  exports,
		progress: bar,
		reveal:   anim.NewReveal(opts.QuoteDuration),
		shake:    anim.NewShake(),
		outDir:   opts.OutputDir,
		width:    80,
		height:   24,
	}
	if quotes != nil {
		v.sheet = quotes.PriceSheet()
	}
	v.Reset()
	return v
}

// Init initialises the wizard view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Reset starts a fresh quote session.
func (v *View) Reset() {
	if v.quotes != nil {
		v.wizard = v.quotes.NewWizard()
	}
	v.reveal.Stop()
	v.cursor = 0
	v.clearResult()
}

// Update handles messages for the wizard view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case anim.FrameMsg:
		var revealCmd, shakeCmd tea.Cmd
		v.reveal, revealCmd = v.reveal.Update(msg)
		v.shake, shakeCmd = v.shake.Update(msg)
		return v, tea.Batch(revealCmd, shakeCmd)

	case messages.ExportCompleted:
		if msg.Err != nil {
			v.err = msg.Err
			v.notice = ""
			return v, nil
		}
		v.err = nil
		v.notice = "Saved " + msg.Path
		return v, nil

	case tea.KeyMsg:
		if v.wizard == nil {
			return v, nil
		}
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()

	switch {
	case keymap.Matches(k, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(k, v.keymap.Quit):
		return v, tea.Quit
	case v.wizard.InResult():
		return v.handleResultKey(k)
	case keymap.Matches(k, v.keymap.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case keymap.Matches(k, v.keymap.Down):
		if v.cursor < len(v.options())-1 {
			v.cursor++
		}
	case keymap.Matches(k, v.keymap.Select):
		v.choose()
	case keymap.Matches(k, v.keymap.Next):
		return v, v.next()
	case keymap.Matches(k, v.keymap.Prev):
		v.prev()
	}
	return v, nil
}

func (v *View) handleResultKey(k string) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(k, v.keymap.Prev):
		v.prev()
	case keymap.Matches(k, v.keymap.Reset):
		v.wizard.Reset()
		v.reveal.Stop()
		v.cursor = 0
		v.clearResult()
	case keymap.Matches(k, v.keymap.Enquiry):
		v.toggleEnquiry()
	case keymap.Matches(k, v.keymap.ExportXLSX):
		return v, v.export(domain.ExportXLSX)
	case keymap.Matches(k, v.keymap.ExportPDF):
		return v, v.export(domain.ExportPDF)
	}
	return v, nil
}

// choose applies the highlighted option. Extras toggle.
func (v *View) choose() {
	opts := v.options()
	if v.cursor >= len(opts) {
		return
	}
	value := opts[v.cursor].value

	var err error
	switch v.wizard.Step() {
	case domain.StepService:
		err = v.wizard.SelectService(domain.ServiceType(value))
	case domain.StepSize:
		err = v.wizard.SelectSize(domain.PropertySize(value))
	case domain.StepPackage:
		err = v.wizard.SelectPackage(domain.PackageLevel(value))
	case domain.StepExtras:
		kind := domain.ExtraKind(value)
		err = v.wizard.SetExtra(kind, !v.wizard.Selection().HasExtra(kind))
	}
	v.err = err
}

// next advances, shaking the navigation when the step is incomplete.
// Submitting from the last step starts the total reveal.
func (v *View) next() tea.Cmd {
	err := v.wizard.Advance()

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		v.err = verr
		return v.shake.Start()
	}

	v.err = err
	if !v.wizard.InResult() {
		v.cursor = v.chosenIndex()
		return nil
	}

	quote, qerr := v.wizard.Quote()
	if qerr != nil {
		v.err = qerr
		return nil
	}
	submitted := func() tea.Msg {
		return messages.QuoteSubmitted{Quote: quote, Err: err}
	}
	return tea.Batch(v.reveal.Start(quote.Total), submitted)
}

func (v *View) prev() {
	if v.wizard.InResult() {
		v.reveal.Stop()
		v.clearResult()
	}
	v.wizard.Retreat()
	v.err = nil
	v.cursor = v.chosenIndex()
}

func (v *View) toggleEnquiry() {
	if v.showEnquiry {
		v.showEnquiry = false
		return
	}
	sel := v.wizard.Selection()
	text, err := v.quotes.EnquiryText(sel)
	if err != nil {
		v.err = err
		return
	}
	mailto, err := v.quotes.EnquiryMailto(sel)
	if err != nil {
		v.err = err
		return
	}
	v.enquiry = text
	v.mailto = mailto
	v.showEnquiry = true
}

// export renders the submitted quote off the update loop and writes it
// to the output directory.
func (v *View) export(format domain.ExportFormat) tea.Cmd {
	quote, err := v.wizard.Quote()
	if err != nil {
		v.err = err
		return nil
	}
	exports := v.exports
	path := filepath.Join(v.outDir, quote.FileName(format))

	return func() tea.Msg {
		if exports == nil {
			return messages.ExportCompleted{Format: format, Err: errors.New("exports are not available")}
		}
		data, err := exports.Export(quote, format)
		if err != nil {
			return messages.ExportCompleted{Format: format, Err: err}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return messages.ExportCompleted{Format: format, Err: fmt.Errorf("write %s: %w", path, err)}
		}
		logger.Info("saved %s quote to %s", format, path)
		return messages.ExportCompleted{Format: format, Path: path}
	}
}

func (v *View) clearResult() {
	v.notice = ""
	v.err = nil
	v.showEnquiry = false
	v.enquiry = ""
	v.mailto = ""
}

func (v *View) options() []option {
	if v.wizard == nil {
		return nil
	}
	return optionsFor(v.wizard.Step(), v.wizard.Selection(), v.sheet)
}

// chosenIndex returns the row of the current step's selection, or 0.
func (v *View) chosenIndex() int {
	step := v.wizard.Step()
	if step == domain.StepExtras {
		return 0
	}
	sel := v.wizard.Selection()
	for i, o := range v.options() {
		if isChosen(step, sel, o.value) {
			return i
		}
	}
	return 0
}

// View renders the wizard.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.wizard == nil {
		return v.styles.Error.Render("Quotes are not available.")
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Quote Calculator"))
	b.WriteString("\n\n")

	if v.wizard.InResult() {
		v.renderResult(&b)
	} else {
		v.renderStep(&b)
	}
	return b.String()
}

func (v *View) renderStep(b *strings.Builder) {
	step := v.wizard.Step()
	b.WriteString(v.progress.ViewAs(v.wizard.Progress()))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Step %d of %d", int(step), domain.TotalSteps)))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Subtitle.Render(step.Title()))
	b.WriteString("\n\n")

	sel := v.wizard.Selection()
	for i, o := range v.options() {
		b.WriteString(v.renderOption(i, o, isChosen(step, sel, o.value), step == domain.StepExtras))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	pad := strings.Repeat(" ", max(0, basePadding+v.shake.Offset()))
	if v.err != nil {
		b.WriteString(pad)
		b.WriteString(v.styles.Error.Render(errorText(v.err)))
		b.WriteString("\n")
	}
	b.WriteString(pad)
	b.WriteString(v.renderNav(step))
	b.WriteString("\n\n")
	b.WriteString(v.renderHelp(v.keymap.WizardHelp()))
}

func (v *View) renderOption(i int, o option, chosen, multi bool) string {
	cursor := "  "
	if i == v.cursor {
		cursor = v.styles.Cursor.Render("› ")
	}

	mark := "○ "
	if multi {
		mark = "[ ] "
	}
	style := v.styles.Normal
	if chosen {
		mark = "● "
		if multi {
			mark = "[x] "
		}
		style = v.styles.Chosen
	}

	label := style.Render(mark + o.label)
	if o.hint == "" {
		return cursor + label
	}
	gap := max(1, labelWidth-lipgloss.Width(mark+o.label))
	return cursor + label + strings.Repeat(" ", gap) + v.styles.Price.Render(o.hint)
}

func (v *View) renderNav(step domain.Step) string {
	prev := v.styles.Button.Render("‹ Prev")
	if step == domain.StepService {
		prev = v.styles.ButtonDisabled.Render("‹ Prev")
	}
	label := "Next ›"
	if step == domain.StepExtras {
		label = "Get Quote"
	}
	next := v.styles.Button.Render(label)
	if !v.wizard.CanAdvance() {
		next = v.styles.ButtonDisabled.Render(label)
	}
	return prev + "  " + next
}

func (v *View) renderResult(b *strings.Builder) {
	quote, err := v.wizard.Quote()
	if err != nil {
		b.WriteString(v.styles.Error.Render(errorText(err)))
		return
	}

	b.WriteString(v.styles.Subtitle.Render("Your Estimated Quote"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Amount.Render(domain.FormatGBP(v.reveal.Value())))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Reference " + quote.Reference))
	b.WriteString("\n\n")

	for _, line := range quote.Lines {
		label := line.Label
		if line.Kind == domain.LineTotal {
			b.WriteString(strings.Repeat("─", labelWidth+10))
			b.WriteString("\n")
			label = v.styles.Subtitle.Render(label)
		} else {
			label = v.styles.Normal.Render(label)
		}
		gap := max(1, labelWidth-lipgloss.Width(line.Label))
		b.WriteString("  " + label + strings.Repeat(" ", gap) + v.styles.Price.Render(line.Value()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Estimate only. Final pricing is confirmed after a property visit."))
	b.WriteString("\n")

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(errorText(v.err)))
		b.WriteString("\n")
	}
	if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Success.Render(v.notice))
		b.WriteString("\n")
	}
	if v.showEnquiry {
		b.WriteString("\n")
		b.WriteString(v.styles.Card.Render(v.enquiry))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(v.mailto))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp(v.keymap.ResultHelp()))
}

func (v *View) renderHelp(bindings []key.Binding) string {
	hints := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		hints = append(hints, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return v.styles.Help.Render(strings.Join(hints, "  "))
}

// errorText turns wizard errors into a customer-facing line.
func errorText(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return "Please choose a " + verr.Field + " to continue."
	case errors.Is(err, domain.ErrConfiguration):
		return "Pricing is unavailable for this combination. Please get in touch."
	default:
		return err.Error()
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.progress.Width = min(progressWidth, max(10, width-20))
}

// SetOutputDir sets where exported documents are written.
func (v *View) SetOutputDir(dir string) {
	v.outDir = dir
}

// Wizard returns the session being driven.
func (v *View) Wizard() driving.Wizard {
	return v.wizard
}

// Cursor returns the highlighted option index.
func (v *View) Cursor() int {
	return v.cursor
}

// Err returns the error currently displayed.
func (v *View) Err() error {
	return v.err
}

// Shaking reports whether the validation cue is running.
func (v *View) Shaking() bool {
	return v.shake.Active()
}

// DisplayedTotal returns the amount currently shown on the result.
func (v *View) DisplayedTotal() int64 {
	return v.reveal.Value()
}
