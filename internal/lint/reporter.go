package lint

import (
	"fmt"
	"go/token"
	"sync"

	"github.com/sirkon/ioful/internal/iorules"
)

// Reporter collects and classifies findings discovered during a pass.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report represents a single diagnostic entry.
type Report struct {
	Phase    ReportPhase
	RuleCode iorules.Rule
	Pos      token.Pos
	Message  string
	Details  any
}

// ReportPhase marks the stage where a report was generated.
type ReportPhase int

const (
	_           ReportPhase = iota
	ReportLower             // source lowering phase
	ReportMatch             // shape matching and classification
)

func (p ReportPhase) String() string {
	switch p {
	case ReportLower:
		return "lower"
	case ReportMatch:
		return "match"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

// ReporterPhase binds a Reporter to a fixed phase.
// It is used during an entire analysis pass to record rule violations
// without specifying the phase repeatedly.
type ReporterPhase struct {
	parent *Reporter
	phase  ReportPhase
}

// Phase returns a pointer to a phase-bound reporter that automatically
// sets the given phase for all reports produced through it.
func (r *Reporter) Phase(p ReportPhase) *ReporterPhase {
	return &ReporterPhase{parent: r, phase: p}
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Report records a new rule violation under the bound phase.
// An empty message defaults to the rule's own description.
func (rp *ReporterPhase) Report(rule iorules.Rule, message string, pos token.Pos) {
	if message == "" {
		message = rule.Description()
	}
	rp.parent.Report(Report{
		Phase:    rp.phase,
		RuleCode: rule,
		Message:  message,
		Pos:      pos,
	})
}

// Reports returns a snapshot of all collected records.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// PrintSummary prints all collected reports in a compact, human-readable form.
func (r *Reporter) PrintSummary(fset *token.FileSet) {
	for _, rep := range r.Reports() {
		pos := fset.Position(rep.Pos)
		fmt.Printf("[%s] %s: %s (%s:%d)\n",
			rep.Phase,
			rep.RuleCode,
			rep.Message,
			pos.Filename,
			pos.Line,
		)
	}
}
