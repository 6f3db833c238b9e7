package main

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/analysis/singlechecker"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/ioful/internal/iorules"
	"github.com/sirkon/ioful/internal/lint"
	"github.com/sirkon/ioful/internal/lir"
)

const doc = `ioful is a linter that reports partial-transfer I/O calls whose transfer count is silently discarded`

// Analyzer is the main entry point for the linter.
var Analyzer = &analysis.Analyzer{
	Name:     "ioful",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var (
	flagConfig  string
	flagSummary bool
)

func init() {
	Analyzer.Flags.StringVar(&flagConfig, "config", "",
		"path to a YAML file with extra capabilities and force helpers")
	Analyzer.Flags.BoolVar(&flagSummary, "summary", false,
		"print a compact summary of collected reports")
}

func main() {
	singlechecker.Main(Analyzer)
}

func run(pass *analysis.Pass) (any, error) {
	cfg := &Config{}
	if flagConfig != "" {
		var err error
		cfg, err = loadConfig(flagConfig)
		if err != nil {
			return nil, err
		}
	}

	caps, err := newKnownCapabilities(cfg.Capabilities)
	if err != nil {
		return nil, err
	}

	customForces := make(map[packagedFunc]ForceKind, len(cfg.ForceHelpers))
	for _, h := range cfg.ForceHelpers {
		customForces[packagedFunc{pkgPath: h.Ref.Package, name: h.Ref.Name}] = h.Kind
	}
	forces := newKnownForceFuncs(customForces)

	var adapter lir.Reference
	if cfg.OutcomeAdapter != nil {
		adapter = cfg.OutcomeAdapter.LIR()
	}

	var reporter lint.Reporter
	ctx := lint.NewContext()
	low := newLowerEngine(pass, ctx, caps, forces, adapter, reporter.Phase(lint.ReportLower))

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.ExprStmt)(nil),
		(*ast.AssignStmt)(nil),
	}

	var stmts []lir.Stmt
	pector.Preorder(nodeFilter, func(node ast.Node) {
		if s, ok := low.lowerStmt(node); ok {
			stmts = append(stmts, s)
		}
	})

	// Directive resolution needs every span registered first.
	suppressed := low.collectIgnored()

	paths := lint.Paths{
		ReadTrait:      lir.Reference{Package: "io", Name: "Reader"},
		WriteTrait:     lir.Reference{Package: "io", Name: "Writer"},
		OutcomeAdapter: adapter,
	}

	engine := lint.NewEngine(
		paths,
		newTypesResolver(pass, caps, paths, low.calls),
		lint.SourceTryDetector{AllowStmtDiscard: true},
		&passSink{
			pass:       pass,
			ctx:        ctx,
			r:          reporter.Phase(lint.ReportMatch),
			suppressed: suppressed,
		},
	)

	for _, s := range stmts {
		engine.CheckStmt(s)
	}

	if flagSummary {
		reporter.PrintSummary(pass.Fset)
	}

	return nil, nil
}

// passSink delivers engine findings to the driver, skipping suppressed
// statements. Diagnostics anchor at the outer discarding expression, not
// the inner call.
type passSink struct {
	pass       *analysis.Pass
	ctx        *lint.Context
	r          *lint.ReporterPhase
	suppressed map[lir.Node]bool
}

func (s *passSink) Emit(outer lir.Node, rule iorules.Rule) {
	span, ok := s.ctx.Span(outer)
	if !ok {
		return
	}
	if s.suppressed[outer] {
		return
	}

	s.r.Report(rule, "", span.Start)
	s.pass.Report(analysis.Diagnostic{
		Pos:      span.Start,
		Category: "ioful",
		Message:  rule.Description(),
	})
}
