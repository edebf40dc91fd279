package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/formkeeper/formkeeper/internal/adapter"
	"github.com/formkeeper/formkeeper/internal/catalog"
	"github.com/formkeeper/formkeeper/models"
)

// previewModel renders a form the way a respondent sees it and submits a
// prospect through the public endpoints. It deliberately uses only the
// unauthenticated adapter calls: what works here works from a share link.
type previewModel struct {
	ctx    context.Context
	server adapter.ServerAdapter
	form   models.Form

	components []models.Component
	answerKeys []models.AnswerKey
	inputs     []textinput.Model
	focus      int

	loading    bool
	submitting bool
	status     string
	errMsg     string
}

type previewLoadedMsg struct {
	form models.FormWithComponents
	err  error
}

type prospectSubmittedMsg struct {
	err error
}

type previewClosedMsg struct{}

func newPreviewModel(ctx context.Context, server adapter.ServerAdapter, form models.Form) previewModel {
	return previewModel{
		ctx:     ctx,
		server:  server,
		form:    form,
		loading: true,
	}
}

func (p previewModel) update(msg tea.Msg) (previewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case previewLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.errMsg = humanizeServerError(msg.err)
			return p, nil
		}
		p.errMsg = ""
		p.form = msg.form.Form
		p.components = msg.form.Components
		p.answerKeys = requiredAnswerKeys(msg.form.Components)
		p.inputs = make([]textinput.Model, len(p.answerKeys))
		for i, answerKey := range p.answerKeys {
			input := textinput.New()
			input.Placeholder = string(answerKey)
			input.Width = 32
			p.inputs[i] = input
		}
		p.focus = 0
		if len(p.inputs) > 0 {
			p.inputs[0].Focus()
			return p, textinput.Blink
		}
		return p, nil

	case prospectSubmittedMsg:
		p.submitting = false
		if msg.err != nil {
			p.errMsg = humanizeServerError(msg.err)
			return p, nil
		}
		p.errMsg = ""
		p.status = "Thanks, your answers were submitted"
		for i := range p.inputs {
			p.inputs[i].SetValue("")
		}
		return p, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return p, tea.Quit
	case "esc":
		return p, func() tea.Msg { return previewClosedMsg{} }
	case "tab":
		p.focusNext()
		return p, nil
	case "shift+tab":
		p.focusPrev()
		return p, nil
	case "enter":
		if p.loading || p.submitting {
			return p, nil
		}
		p.status = ""
		p.errMsg = ""
		p.submitting = true
		return p, p.cmdSubmit()
	}

	if key.Matches(keyMsg, keys.reload) && len(p.inputs) == 0 {
		p.loading = true
		return p, p.cmdLoadPreview()
	}

	if len(p.inputs) == 0 {
		return p, nil
	}
	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(keyMsg)
	return p, cmd
}

func (p previewModel) view() string {
	var b strings.Builder

	if p.loading {
		b.WriteString("Loading...")
	} else {
		for _, component := range p.components {
			switch component.Type {
			case models.Heading:
				b.WriteString(titleStyle.Render(component.Value) + "\n")
			case models.Subheading:
				b.WriteString(component.Value + "\n")
			case models.Description:
				b.WriteString(helpStyle.Render(component.Value) + "\n")
			case models.Submit:
				// rendered as the enter hint below
			default:
				if entry, ok := catalog.Lookup(component.Type); ok {
					b.WriteString(entry.Icon + " " + entry.Label + "\n")
				}
			}
		}

		if len(p.inputs) > 0 {
			b.WriteString("\n")
			for i, input := range p.inputs {
				b.WriteString(string(p.answerKeys[i]))
				b.WriteString(": [")
				b.WriteString(input.View())
				b.WriteString("]\n")
			}
		} else {
			b.WriteString("\nThis form collects no answers.\n")
		}
	}

	if p.submitting {
		b.WriteString("\n[Submitting...]")
	}
	if p.status != "" {
		b.WriteString("\nOK: " + p.status)
	}
	if p.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + p.errMsg))
	}

	return renderPage("PREVIEW: "+p.form.Title, strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: submit │ esc: back")
}

func (p previewModel) cmdLoadPreview() tea.Cmd {
	ctx := p.ctx
	server := p.server
	formID := p.form.ID

	return func() tea.Msg {
		form, err := server.GetPreview(ctx, formID)
		return previewLoadedMsg{form: form, err: err}
	}
}

func (p previewModel) cmdSubmit() tea.Cmd {
	ctx := p.ctx
	server := p.server
	formID := p.form.ID

	answers := make(map[string]string, len(p.answerKeys))
	for i, answerKey := range p.answerKeys {
		if v := strings.TrimSpace(p.inputs[i].Value()); v != "" {
			answers[string(answerKey)] = v
		}
	}

	return func() tea.Msg {
		return prospectSubmittedMsg{err: server.SubmitProspect(ctx, formID, answers)}
	}
}

// requiredAnswerKeys derives the input fields the form asks for, first
// occurrence wins. The server re-derives the same set on submission, so
// anything extra would be dropped there anyway.
func requiredAnswerKeys(components []models.Component) []models.AnswerKey {
	seen := make(map[models.AnswerKey]struct{})
	var required []models.AnswerKey
	for _, component := range components {
		for _, answerKey := range component.Type.AnswerKeys() {
			if _, ok := seen[answerKey]; ok {
				continue
			}
			seen[answerKey] = struct{}{}
			required = append(required, answerKey)
		}
	}
	return required
}

func (p *previewModel) focusNext() {
	if len(p.inputs) == 0 {
		return
	}
	p.inputs[p.focus].Blur()
	p.focus = (p.focus + 1) % len(p.inputs)
	p.inputs[p.focus].Focus()
}

func (p *previewModel) focusPrev() {
	if len(p.inputs) == 0 {
		return
	}
	p.inputs[p.focus].Blur()
	p.focus = (p.focus - 1 + len(p.inputs)) % len(p.inputs)
	p.inputs[p.focus].Focus()
}
