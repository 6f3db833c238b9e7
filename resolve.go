package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/sirkon/ioful/internal/lint"
	"github.com/sirkon/ioful/internal/lir"
)

// typesResolver answers capability dispatch questions with go/types facts:
// a call dispatches through a capability interface iff its callee is a
// method whose receiver type implements the interface and whose name and
// non-receiver signature match the interface's own method. Method-name
// matching alone never counts.
type typesResolver struct {
	pass  *analysis.Pass
	caps  *knownCapabilities
	read  lir.Reference
	write lir.Reference
	calls map[*lir.ExprMethodCall]*ast.CallExpr

	ifaces map[lir.Reference]*types.Interface
}

func newTypesResolver(
	pass *analysis.Pass,
	caps *knownCapabilities,
	paths lint.Paths,
	calls map[*lir.ExprMethodCall]*ast.CallExpr,
) *typesResolver {
	return &typesResolver{
		pass:   pass,
		caps:   caps,
		read:   paths.ReadTrait,
		write:  paths.WriteTrait,
		calls:  calls,
		ifaces: map[lir.Reference]*types.Interface{},
	}
}

// Dispatches implements lint.TraitResolver.
func (r *typesResolver) Dispatches(call *lir.ExprMethodCall, trait lir.Reference) bool {
	ce, ok := r.calls[call]
	if !ok {
		return false
	}

	fn, ok := typeutil.Callee(r.pass.TypesInfo, ce).(*types.Func)
	if !ok {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return false
	}

	for _, ref := range r.traitRefs(trait) {
		iface := r.lookupInterface(ref)
		if iface == nil {
			continue
		}
		if dispatchesThrough(fn, sig, iface) {
			return true
		}
	}

	return false
}

// traitRefs expands a canonical trait into every registered capability of
// the same kind; anything else is checked verbatim.
func (r *typesResolver) traitRefs(trait lir.Reference) []lir.Reference {
	switch trait {
	case r.read:
		return r.caps.ofKind(CapKindRead)
	case r.write:
		return r.caps.ofKind(CapKindWrite)
	default:
		return []lir.Reference{trait}
	}
}

// lookupInterface finds the named interface among the checked package and
// its transitive imports. Caches misses too: a package that never imports
// the capability's package cannot dispatch through it.
func (r *typesResolver) lookupInterface(ref lir.Reference) *types.Interface {
	if iface, ok := r.ifaces[ref]; ok {
		return iface
	}

	var pkg *types.Package
	if r.pass.Pkg.Path() == ref.Package {
		pkg = r.pass.Pkg
	} else {
		pkg = findImport(r.pass.Pkg, ref.Package, map[*types.Package]bool{})
	}

	var iface *types.Interface
	if pkg != nil {
		if tn, ok := pkg.Scope().Lookup(ref.Name).(*types.TypeName); ok {
			iface, _ = tn.Type().Underlying().(*types.Interface)
		}
	}

	r.ifaces[ref] = iface
	return iface
}

func findImport(pkg *types.Package, path string, seen map[*types.Package]bool) *types.Package {
	for _, imp := range pkg.Imports() {
		if seen[imp] {
			continue
		}
		seen[imp] = true

		if imp.Path() == path {
			return imp
		}
		if found := findImport(imp, path, seen); found != nil {
			return found
		}
	}

	return nil
}

func dispatchesThrough(fn *types.Func, sig *types.Signature, iface *types.Interface) bool {
	recv := sig.Recv().Type()
	if !types.Implements(recv, iface) && !types.Implements(types.NewPointer(recv), iface) {
		return false
	}

	// The interface must declare this very method: same name, identical
	// non-receiver signature. Implementing the interface while calling
	// some other same-named method of the type would be a false positive.
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		if m.Name() != fn.Name() {
			continue
		}
		msig, ok := m.Type().(*types.Signature)
		if !ok {
			continue
		}
		if identicalNoRecv(sig, msig) {
			return true
		}
	}

	return false
}

func identicalNoRecv(a, b *types.Signature) bool {
	return types.Identical(
		types.NewSignatureType(nil, nil, nil, a.Params(), a.Results(), a.Variadic()),
		types.NewSignatureType(nil, nil, nil, b.Params(), b.Results(), b.Variadic()),
	)
}
