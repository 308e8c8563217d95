package output

import (
	"fmt"
	"io"

	"github.com/monday-consulting/modres/internal/core/domain"
	"github.com/monday-consulting/modres/internal/ui/style"
	"github.com/muesli/termenv"
)

// Report renders the result of a module resolution.
type Report struct {
	out *termenv.Output
}

// NewReport creates a report renderer writing to w. colored selects ANSI
// colored output; otherwise the report is plain text.
func NewReport(w io.Writer, colored bool) *Report {
	if colored {
		return &Report{out: NewColored(w)}
	}
	return &Report{out: NewPlain(w)}
}

// Render writes one line per resolved project, mirroring the requested
// coordinate order: check mark, coordinate identity, origin tier and the
// bound artifact file.
func (r *Report) Render(m *domain.Module) {
	for i, project := range m.Projects {
		coord := m.Coordinates[i]

		check := r.out.String(style.Check).Foreground(termenv.RGBColor(string(style.Green)))
		origin := r.out.String("(" + string(project.Origin) + ")").Foreground(termenv.RGBColor(string(style.Slate)))

		line := fmt.Sprintf("%s %s %s  %s", check, coord.Key(), origin, project.ArtifactFile)
		_, _ = r.out.WriteString(line + "\n")
	}

	summary := r.out.String(fmt.Sprintf("resolved %d of %d modules", len(m.Projects), len(m.Coordinates))).
		Foreground(termenv.RGBColor(string(style.Slate)))
	_, _ = r.out.WriteString(summary.String() + "\n")
}
