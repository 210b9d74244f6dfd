// Package inspect renders a parsed request for humans.
package inspect

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"httpintake/internal/http/form"
	"httpintake/internal/http/multipart"
	"httpintake/internal/http/request"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/crypto/blake2b"
)

type Options struct {
	// Plain disables colours and text attributes.
	Plain bool
}

type styles struct {
	section lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		label:   r.NewStyle().Foreground(lipgloss.Color("#888888")),
		value:   r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#666666")),
		warning: r.NewStyle().Foreground(lipgloss.Color("#FF5F87")),
	}
}

// Digest is the hex BLAKE2b-256 of b.
func Digest(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Render writes a report on req to w.
func Render(w io.Writer, req *request.Request, opts Options) error {
	r := lipgloss.NewRenderer(w)
	if opts.Plain {
		r.SetColorProfile(termenv.Ascii)
	}
	st := newStyles(r)

	var sb strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&sb, format, args...)
		sb.WriteByte('\n')
	}
	field := func(name, value string) {
		line("  %s %s", st.label.Render(fmt.Sprintf("%-8s", name)), st.value.Render(value))
	}

	line("%s", st.section.Render("REQUEST"))
	field("Method", req.Method())
	field("Target", req.Target())
	field("Path", req.Path())
	field("Version", req.Version())
	field("Body", fmt.Sprintf("%d bytes", req.ContentLength()))
	field("Alive", fmt.Sprintf("%t", req.KeepAlive()))

	headers := req.Headers()
	line("%s", st.section.Render(fmt.Sprintf("HEADERS (%d)", len(headers))))
	for _, h := range headers {
		line("  %s %s", st.label.Render(h.Name+":"), st.value.Render(h.Value))
	}

	if q := req.QueryValues(); q.Len() > 0 {
		writePairs(line, st, "QUERY", q)
	}

	switch req.ContentType() {
	case form.ContentType:
		writePairs(line, st, "FORM", req.FormValues())
	case multipart.ContentType:
		writeParts(line, st, req)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writePairs(line func(string, ...any), st styles, title string, values form.Values) {
	line("%s", st.section.Render(fmt.Sprintf("%s (%d)", title, values.Len())))
	for _, p := range values.Pairs() {
		line("  %s %s %s", st.label.Render(p.Key), st.muted.Render("="), st.value.Render(p.Value))
	}
}

func writeParts(line func(string, ...any), st styles, req *request.Request) {
	parts, err := req.Multipart()
	if err != nil {
		line("%s", st.section.Render("PARTS"))
		line("  %s", st.warning.Render(err.Error()))
		return
	}

	line("%s", st.section.Render(fmt.Sprintf("PARTS (%d)", parts.Len())))
	for i, p := range parts.All() {
		content, _ := req.BodyPart(p.Span)
		name := p.FieldName
		if p.IsFile() {
			name += " (" + p.FileName + ")"
		}
		line("  %s %s", st.label.Render(fmt.Sprintf("#%d", i)), st.value.Render(name))
		if p.ContentType != "" {
			line("     %s", st.muted.Render(p.ContentType))
		}
		line("     %s", st.muted.Render(fmt.Sprintf("%d bytes  blake2b-256:%s", len(content), Digest(content))))
	}
}
