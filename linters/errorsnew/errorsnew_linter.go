package errorsnew

import (
	"go/ast"
	"go/token"
	"go/types"
	"golang.org/x/tools/go/analysis"
)

// Package-level errors must come from shared/errors.NewSentinelError; errors.New and
// fmt.Errorf at that scope would capture a stack trace pointing at package init.
var Analyzer = &analysis.Analyzer{
	Name: "errorsnew",
	Doc:  "checks that package-level error variables are created with errors.NewSentinelError",
	Run:  run,
}

var forbidden = map[string][]string{
	"errors": {"New"},
	"fmt":    {"Errorf"},
	"github.com/omics-cicd/release-automation/shared/errors":  {"New", "Errorf", "Wrap"},
	"github.com/bugsnag/bugsnag-go/v2/errors":                {"New", "Errorf"},
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			if genDecl, ok := decl.(*ast.GenDecl); ok && genDecl.Tok == token.VAR {
				handleGenDecl(pass, genDecl)
			}
		}
	}
	return nil, nil
}

func handleGenDecl(pass *analysis.Pass, decl *ast.GenDecl) {
	for _, spec := range decl.Specs {
		valueSpec, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}
		for _, value := range valueSpec.Values {
			if call, ok := value.(*ast.CallExpr); ok {
				handleCallExpr(pass, call)
			}
		}
	}
}

func handleCallExpr(pass *analysis.Pass, call *ast.CallExpr) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return
	}
	pkgIdent, ok := sel.X.(*ast.Ident)
	if !ok {
		return
	}
	pkgName, ok := pass.TypesInfo.Uses[pkgIdent].(*types.PkgName)
	if !ok {
		return
	}

	path := pkgName.Imported().Path()
	for _, name := range forbidden[path] {
		if sel.Sel.Name == name {
			pass.Reportf(call.Pos(), "Found \"%s.%s\" in the global scope. Replace it with \"errors.NewSentinelError\"", pkgIdent.Name, name)
			return
		}
	}
}
