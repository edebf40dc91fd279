package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/formkeeper/formkeeper/internal/adapter"
	"github.com/formkeeper/formkeeper/internal/builder"
	"github.com/formkeeper/formkeeper/internal/catalog"
	"github.com/formkeeper/formkeeper/models"
)

// canvasModel is the form editing screen: the fixed component palette on the
// left, the placed-component list on the right. A drag is a grab/drop pair:
// enter grabs the component under the cursor, the cursor then picks the
// destination (tab switches lists), enter again drops. The completed gesture
// is handed to [builder.Session.ApplyDrag]; the canvas itself never reorders
// anything.
//
// Nothing reaches the server until an explicit save, which replaces the
// form's stored components wholesale.
type canvasModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	formID  string
	title   string
	session *builder.Session
	palette []catalog.Entry

	activeList builder.ListID
	paletteIdx int
	formIdx    int
	grabbed    *builder.DragPoint

	editingID  string
	valueInput textinput.Model
	spin       spinner.Model

	loading    bool
	saving     bool
	dirty      bool
	closeArmed bool
	status     string
	errMsg     string
}

type formLoadedMsg struct {
	form models.FormWithComponents
	err  error
}

type formSavedMsg struct {
	err error
}

func newCanvasModel(ctx context.Context, server adapter.ServerAdapter, form models.Form) canvasModel {
	return canvasModel{
		ctx:        ctx,
		server:     server,
		formID:     form.ID,
		title:      form.Title,
		session:    builder.NewSession(),
		palette:    catalog.Palette(),
		activeList: builder.ListPalette,
		spin:       newSpinner(),
		loading:    true,
	}
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return s
}

func (c canvasModel) update(msg tea.Msg) (canvasModel, tea.Cmd) {
	switch msg := msg.(type) {
	case formLoadedMsg:
		c.loading = false
		if msg.err != nil {
			c.errMsg = humanizeServerError(msg.err)
			return c, nil
		}
		c.errMsg = ""
		c.title = msg.form.Form.Title
		c.session.SetComponents(builder.FromPersisted(msg.form.Components))
		c.formIdx = c.clampFormIdx(c.formIdx)
		return c, nil

	case formSavedMsg:
		c.saving = false
		if msg.err != nil {
			c.errMsg = humanizeServerError(msg.err)
			return c, nil
		}
		c.errMsg = ""
		c.dirty = false
		c.closeArmed = false
		c.status = "Form saved"
		if title, ok := lastHeadingValue(c.session.Components()); ok {
			c.title = title
		}
		return c, nil

	case spinner.TickMsg:
		if !c.loading && !c.saving {
			return c, nil
		}
		var cmd tea.Cmd
		c.spin, cmd = c.spin.Update(msg)
		return c, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return c, tea.Quit
	}

	if c.editingID != "" {
		return c.updateEditing(keyMsg)
	}

	c.status = ""

	switch {
	case key.Matches(keyMsg, keys.esc):
		if c.grabbed != nil {
			// dropping nowhere cancels the gesture
			c.grabbed = nil
			c.formIdx = c.clampFormIdx(c.formIdx)
			return c, nil
		}
		if c.dirty && !c.closeArmed {
			c.closeArmed = true
			c.status = "Unsaved changes: s to save, esc again to discard"
			return c, nil
		}
		return c, func() tea.Msg { return canvasClosedMsg{} }

	case key.Matches(keyMsg, keys.tab):
		if c.activeList == builder.ListPalette {
			c.activeList = builder.ListForm
		} else {
			c.activeList = builder.ListPalette
		}

	case key.Matches(keyMsg, keys.up):
		if c.activeList == builder.ListPalette {
			if c.paletteIdx > 0 {
				c.paletteIdx--
			}
		} else if c.formIdx > 0 {
			c.formIdx--
		}

	case key.Matches(keyMsg, keys.down):
		if c.activeList == builder.ListPalette {
			if c.paletteIdx < len(c.palette)-1 {
				c.paletteIdx++
			}
		} else if c.formIdx < c.maxFormIdx() {
			c.formIdx++
		}

	case key.Matches(keyMsg, keys.enter):
		return c.grabOrDrop()

	case key.Matches(keyMsg, keys.edit):
		return c.startEditing()

	case key.Matches(keyMsg, keys.remove):
		if c.grabbed == nil && c.activeList == builder.ListForm && c.session.Len() > 0 {
			c.session.RemoveAt(c.formIdx)
			c.formIdx = c.clampFormIdx(c.formIdx)
			c.markDirty()
		}

	case key.Matches(keyMsg, keys.save):
		if !c.saving {
			c.saving = true
			return c, tea.Batch(c.cmdSave(), c.spin.Tick)
		}
	}

	return c, nil
}

func (c canvasModel) updateEditing(keyMsg tea.KeyMsg) (canvasModel, tea.Cmd) {
	switch keyMsg.String() {
	case "enter":
		c.session.SetValue(c.editingID, c.valueInput.Value())
		c.session.ToggleEditing(c.editingID)
		c.editingID = ""
		c.markDirty()
		return c, nil
	case "esc":
		c.session.ToggleEditing(c.editingID)
		c.editingID = ""
		return c, nil
	}

	var cmd tea.Cmd
	c.valueInput, cmd = c.valueInput.Update(keyMsg)
	return c, cmd
}

func (c canvasModel) grabOrDrop() (canvasModel, tea.Cmd) {
	if c.grabbed == nil {
		switch c.activeList {
		case builder.ListPalette:
			c.grabbed = &builder.DragPoint{List: builder.ListPalette, Index: c.paletteIdx}
		case builder.ListForm:
			if c.session.Len() == 0 {
				return c, nil
			}
			c.grabbed = &builder.DragPoint{List: builder.ListForm, Index: c.formIdx}
		}
		return c, nil
	}

	src := *c.grabbed
	dst := builder.DragPoint{List: c.activeList, Index: c.paletteIdx}
	if c.activeList == builder.ListForm {
		dst.Index = c.formIdx
	}

	c.session.ApplyDrag(builder.DragResult{Source: src, Destination: &dst})
	c.grabbed = nil
	c.formIdx = c.clampFormIdx(c.formIdx)
	if src.List != builder.ListPalette || dst.List != builder.ListPalette {
		c.markDirty()
	}
	return c, nil
}

func (c canvasModel) startEditing() (canvasModel, tea.Cmd) {
	if c.grabbed != nil || c.activeList != builder.ListForm {
		return c, nil
	}
	component, ok := c.session.At(c.formIdx)
	if !ok || !component.Type.HasValue() {
		return c, nil
	}

	c.session.ToggleEditing(component.ID)
	c.editingID = component.ID

	input := textinput.New()
	input.Placeholder = "text"
	input.Width = 40
	input.SetValue(component.Value)
	input.Focus()
	c.valueInput = input

	return c, textinput.Blink
}

func (c canvasModel) view() string {
	if c.loading {
		return renderPage("FORM: "+c.title, c.spin.View()+" Loading...", "")
	}

	left := c.viewPalette()
	right := c.viewForm()
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)

	var b strings.Builder
	b.WriteString(body)

	if c.editingID != "" {
		b.WriteString("\n\nValue: [")
		b.WriteString(c.valueInput.View())
		b.WriteString("]  enter: apply │ esc: cancel")
	}

	if c.saving {
		b.WriteString("\n\n" + c.spin.View() + " Saving...")
	}
	if c.status != "" {
		b.WriteString("\n\nOK: " + c.status)
	}
	if c.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + c.errMsg))
	}

	hotKeys := "enter: grab │ tab: switch list │ e: edit text │ d: remove │ s: save │ esc: back"
	if c.grabbed != nil {
		hotKeys = "enter: drop │ tab: switch list │ esc: cancel drag"
	}

	title := "FORM: " + c.title
	if c.dirty {
		title += " *"
	}
	return renderPage(title, b.String(), hotKeys)
}

func (c canvasModel) viewPalette() string {
	var b strings.Builder
	b.WriteString("PALETTE\n")
	b.WriteString("───────────────────\n")

	for i, entry := range c.palette {
		cursor := " "
		if c.activeList == builder.ListPalette && i == c.paletteIdx {
			cursor = ">"
		}
		marker := " "
		if c.grabbed != nil && c.grabbed.List == builder.ListPalette && c.grabbed.Index == i {
			marker = "⇕"
		}
		b.WriteString(fmt.Sprintf("%s%s %-2s %s\n", cursor, marker, entry.Icon, entry.Label))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (c canvasModel) viewForm() string {
	var b strings.Builder
	b.WriteString("FORM\n")
	b.WriteString("──────────────────────────────────\n")

	placed := c.session.Components()
	if len(placed) == 0 && !(c.grabbed != nil && c.activeList == builder.ListForm) {
		b.WriteString("(empty — grab a component and drop it here)")
		return b.String()
	}

	for i, component := range placed {
		if c.grabbed != nil && c.activeList == builder.ListForm && i == c.formIdx {
			b.WriteString(" ┄ drop here ┄\n")
		}

		cursor := " "
		if c.activeList == builder.ListForm && i == c.formIdx && c.grabbed == nil {
			cursor = ">"
		}
		marker := " "
		if c.grabbed != nil && c.grabbed.List == builder.ListForm && c.grabbed.Index == i {
			marker = "⇕"
		}

		icon, label := "?", string(component.Type)
		if entry, ok := catalog.Lookup(component.Type); ok {
			icon, label = entry.Icon, entry.Label
		}

		line := fmt.Sprintf("%s%s %-2s %-11s", cursor, marker, icon, label)
		if component.Type.HasValue() {
			line += " │ " + fitText(component.Value, 24)
		}
		if component.Editing {
			line += " (editing)"
		}
		b.WriteString(line + "\n")
	}

	if c.grabbed != nil && c.activeList == builder.ListForm && c.formIdx == len(placed) {
		b.WriteString(" ┄ drop here ┄\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (c canvasModel) cmdLoadForm() tea.Cmd {
	ctx := c.ctx
	server := c.server
	formID := c.formID

	return func() tea.Msg {
		form, err := server.GetForm(ctx, formID)
		return formLoadedMsg{form: form, err: err}
	}
}

func (c canvasModel) cmdSave() tea.Cmd {
	ctx := c.ctx
	server := c.server
	formID := c.formID
	components := builder.ToPersisted(c.session.Components())

	return func() tea.Msg {
		return formSavedMsg{err: server.SaveComponents(ctx, formID, components)}
	}
}

func (c *canvasModel) markDirty() {
	c.dirty = true
	c.closeArmed = false
}

// maxFormIdx returns the highest cursor position in the form list. With a
// grab in flight the cursor may sit one past the last element: that is the
// append insertion point.
func (c canvasModel) maxFormIdx() int {
	n := c.session.Len()
	if c.grabbed != nil {
		return n
	}
	if n == 0 {
		return 0
	}
	return n - 1
}

func (c canvasModel) clampFormIdx(idx int) int {
	if max := c.maxFormIdx(); idx > max {
		idx = max
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// lastHeadingValue mirrors the server's title sync rule so the canvas header
// matches what the form will be called after a save.
func lastHeadingValue(placed []models.FormComponent) (string, bool) {
	title, found := "", false
	for _, component := range placed {
		if component.Type == models.Heading {
			title, found = component.Value, true
		}
	}
	return title, found
}
