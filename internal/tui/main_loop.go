package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/formkeeper/formkeeper/internal/adapter"
	"github.com/formkeeper/formkeeper/models"
)

// mainLoopModel is the forms screen: the list of the user's forms plus the
// sub-screens reachable from it — the drag-and-drop canvas, the respondent
// preview and the prospects table. While a sub-screen is open all messages
// are delegated to it; the sub-screen closes itself by emitting its
// *ClosedMsg.
type mainLoopModel struct {
	ctx           context.Context
	server        adapter.ServerAdapter
	publicBaseURL string

	forms   []models.Form
	idx     int
	loading bool
	status  string
	errMsg  string

	confirmDelete bool

	canvas    *canvasModel
	preview   *previewModel
	prospects *prospectsModel

	logout bool
}

type formsLoadedMsg struct {
	forms []models.Form
	err   error
}

type formCreatedMsg struct {
	form models.Form
	err  error
}

type formDeletedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type canvasClosedMsg struct{}

type prospectsClosedMsg struct{}

func newMainLoopModel(ctx context.Context, server adapter.ServerAdapter, publicBaseURL string) mainLoopModel {
	return mainLoopModel{
		ctx:           ctx,
		server:        server,
		publicBaseURL: publicBaseURL,
		loading:       true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadForms()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.canvas != nil {
		if _, ok := msg.(canvasClosedMsg); ok {
			m.canvas = nil
			m.loading = true
			// reload: saving may have renamed the form
			return m, m.cmdLoadForms()
		}
		next, cmd := m.canvas.update(msg)
		*m.canvas = next
		return m, cmd
	}

	if m.preview != nil {
		if _, ok := msg.(previewClosedMsg); ok {
			m.preview = nil
			return m, nil
		}
		next, cmd := m.preview.update(msg)
		*m.preview = next
		return m, cmd
	}

	if m.prospects != nil {
		if _, ok := msg.(prospectsClosedMsg); ok {
			m.prospects = nil
			return m, nil
		}
		next, cmd := m.prospects.update(msg)
		*m.prospects = next
		return m, cmd
	}

	switch msg := msg.(type) {
	case formsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.forms = msg.forms
		if m.idx >= len(m.forms) {
			m.idx = len(m.forms) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case formCreatedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		// open the fresh form straight in the canvas
		cv := newCanvasModel(m.ctx, m.server, msg.form)
		m.canvas = &cv
		return m, tea.Batch(m.canvas.cmdLoadForm(), m.canvas.spin.Tick)

	case formDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerError(msg.err)
			return m, nil
		}
		m.status = "Form deleted"
		m.loading = true
		return m, m.cmdLoadForms()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "Share link copied to clipboard"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmDelete {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.confirmDelete = false
			return m, m.cmdDeleteForm(m.forms[m.idx].ID)
		case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
			m.confirmDelete = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit

	case key.Matches(keyMsg, keys.logout):
		clearSessionUserID()
		m.logout = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}

	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.forms)-1 {
			m.idx++
		}

	case key.Matches(keyMsg, keys.newForm):
		m.status = ""
		return m, m.cmdCreateForm()

	case key.Matches(keyMsg, keys.enter):
		if len(m.forms) == 0 {
			return m, nil
		}
		cv := newCanvasModel(m.ctx, m.server, m.forms[m.idx])
		m.canvas = &cv
		return m, tea.Batch(m.canvas.cmdLoadForm(), m.canvas.spin.Tick)

	case key.Matches(keyMsg, keys.remove):
		if len(m.forms) > 0 {
			m.confirmDelete = true
		}

	case key.Matches(keyMsg, keys.copyLink):
		if len(m.forms) > 0 {
			return m, m.cmdCopyShareLink(m.forms[m.idx].ID)
		}

	case key.Matches(keyMsg, keys.preview):
		if len(m.forms) == 0 {
			return m, nil
		}
		pv := newPreviewModel(m.ctx, m.server, m.forms[m.idx])
		m.preview = &pv
		return m, m.preview.cmdLoadPreview()

	case key.Matches(keyMsg, keys.prospects):
		if len(m.forms) == 0 {
			return m, nil
		}
		pv := newProspectsModel(m.ctx, m.server, m.forms[m.idx])
		m.prospects = &pv
		return m, m.prospects.cmdLoadProspects()

	case key.Matches(keyMsg, keys.reload):
		m.loading = true
		m.status = ""
		return m, m.cmdLoadForms()
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	if m.canvas != nil {
		return m.canvas.view()
	}
	if m.preview != nil {
		return m.preview.view()
	}
	if m.prospects != nil {
		return m.prospects.view()
	}

	if m.confirmDelete {
		form := m.forms[m.idx]
		box := overlayBoxStyle.Render(fmt.Sprintf(
			"Delete form %q?\nIts components and prospects go with it.\n\ny: delete │ n: keep", form.Title))
		return appStyle.Render(box)
	}

	var b strings.Builder

	if m.loading {
		b.WriteString("Loading...\n")
	} else if len(m.forms) == 0 {
		b.WriteString("No forms yet. Press n to create one.\n")
	} else {
		titleWidth := len("Title")
		for _, f := range m.forms {
			if w := len(f.Title); w > titleWidth {
				titleWidth = w
			}
		}

		b.WriteString(fmt.Sprintf("  %-*s │ %s\n", titleWidth, "Title", "Created"))
		b.WriteString("  " + strings.Repeat("─", titleWidth) + "─┼─────────────────\n")
		for i, f := range m.forms {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-*s │ %s\n",
				cursor, titleWidth, fitText(f.Title, 40), f.CreatedAt.Format("2006-01-02 15:04")))
		}
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	title := "MY FORMS"
	if userID := getSessionUserID(); userID != "" {
		title = "MY FORMS (" + fitText(userID, 8) + ")"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"enter: edit │ n: new │ d: delete │ c: copy link │ v: preview │ p: prospects │ r: reload │ l: logout │ q: quit")
}

func (m mainLoopModel) cmdLoadForms() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		forms, err := server.ListForms(ctx)
		return formsLoadedMsg{forms: forms, err: err}
	}
}

func (m mainLoopModel) cmdCreateForm() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		form, err := server.CreateForm(ctx)
		return formCreatedMsg{form: form, err: err}
	}
}

func (m mainLoopModel) cmdDeleteForm(formID string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		return formDeletedMsg{err: server.DeleteForm(ctx, formID)}
	}
}

func (m mainLoopModel) cmdCopyShareLink(formID string) tea.Cmd {
	link := shareLink(m.publicBaseURL, formID)

	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(link)}
	}
}

// shareLink composes the public respondent URL for a form. It is what form
// owners hand out; opening it requires no account.
func shareLink(publicBaseURL, formID string) string {
	return strings.TrimRight(publicBaseURL, "/") + "/api/preview/" + formID
}
