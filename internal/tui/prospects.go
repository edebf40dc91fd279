package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/formkeeper/formkeeper/internal/adapter"
	"github.com/formkeeper/formkeeper/models"
)

// prospectsModel is the read-only submissions table for one form.
type prospectsModel struct {
	ctx    context.Context
	server adapter.ServerAdapter
	form   models.Form

	prospects []models.Prospect
	loading   bool
	errMsg    string
}

type prospectsLoadedMsg struct {
	prospects []models.Prospect
	err       error
}

func newProspectsModel(ctx context.Context, server adapter.ServerAdapter, form models.Form) prospectsModel {
	return prospectsModel{
		ctx:     ctx,
		server:  server,
		form:    form,
		loading: true,
	}
}

func (p prospectsModel) update(msg tea.Msg) (prospectsModel, tea.Cmd) {
	if loaded, ok := msg.(prospectsLoadedMsg); ok {
		p.loading = false
		if loaded.err != nil {
			p.errMsg = humanizeServerError(loaded.err)
			return p, nil
		}
		p.errMsg = ""
		p.prospects = loaded.prospects
		return p, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case keyMsg.String() == "ctrl+c":
		return p, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		return p, func() tea.Msg { return prospectsClosedMsg{} }
	case key.Matches(keyMsg, keys.reload):
		p.loading = true
		return p, p.cmdLoadProspects()
	}

	return p, nil
}

func (p prospectsModel) view() string {
	var b strings.Builder

	if p.loading {
		b.WriteString("Loading...")
	} else if len(p.prospects) == 0 {
		b.WriteString("No submissions yet.")
	} else {
		b.WriteString(fmt.Sprintf("%-12s │ %-12s │ %-24s │ %-14s │ %-8s │ %-10s │ %s\n",
			"Firstname", "Lastname", "Email", "Phone", "Gender", "Date", "Submitted"))
		b.WriteString(strings.Repeat("─", 110) + "\n")
		for _, prospect := range p.prospects {
			b.WriteString(fmt.Sprintf("%-12s │ %-12s │ %-24s │ %-14s │ %-8s │ %-10s │ %s\n",
				fitText(valueOrDash(prospect.Firstname), 12),
				fitText(valueOrDash(prospect.Lastname), 12),
				fitText(valueOrDash(prospect.Email), 24),
				fitText(valueOrDash(prospect.Phone), 14),
				fitText(valueOrDash(prospect.Gender), 8),
				fitText(valueOrDash(prospect.Date), 10),
				prospect.CreatedAt.Format("2006-01-02 15:04")))
		}
	}

	if p.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + p.errMsg))
	}

	return renderPage("PROSPECTS: "+p.form.Title, strings.TrimRight(b.String(), "\n"),
		"r: reload │ esc: back")
}

func (p prospectsModel) cmdLoadProspects() tea.Cmd {
	ctx := p.ctx
	server := p.server
	formID := p.form.ID

	return func() tea.Msg {
		prospects, err := server.ListProspects(ctx, formID)
		return prospectsLoadedMsg{prospects: prospects, err: err}
	}
}
