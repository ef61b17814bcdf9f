package audit

import (
	"cmp"
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"os"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/funvibe/deptypes/internal/config"
)

// Site is one reference to a trusted constructor.
type Site struct {
	Package string
	// Func is the enclosing function, with its receiver type for methods.
	Func    string
	// Callee is qualified by its package name, as in rel.AxiomEq.
	Callee  string
	Pos     token.Position
	Allowed bool
}

func (s Site) String() string {
	return fmt.Sprintf("%s: %s calls %s", s.Pos, s.Func, s.Callee)
}

// Scan loads the packages matching patterns in dir and returns every
// reference to a trusted constructor of package rel or term, sorted by
// position.
// Sites in packages matched by allow are marked Allowed.
func Scan(ctx context.Context, dir string, patterns, allow []string) ([]Site, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedTypes |
			packages.NeedTypesInfo |
			packages.NeedSyntax |
			packages.NeedImports |
			packages.NeedDeps,
		Context: ctx,
		Dir:     dir,
		Env:     append(os.Environ(), "GOWORK=off"),
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	var errs []string
	var sites []Site
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, fmt.Sprintf("%s: %s", pkg.PkgPath, e.Msg))
		}
		if pkg.TypesInfo == nil {
			continue
		}
		allowed := matchAllow(pkg.PkgPath, allow)
		for _, file := range pkg.Syntax {
			for _, s := range scanFile(pkg.Fset, pkg.TypesInfo, file) {
				s.Package = pkg.PkgPath
				s.Allowed = allowed
				sites = append(sites, s)
			}
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors:\n  %s", strings.Join(errs, "\n  "))
	}

	slices.SortFunc(sites, func(a, b Site) int {
		return cmp.Or(
			cmp.Compare(a.Pos.Filename, b.Pos.Filename),
			cmp.Compare(a.Pos.Line, b.Pos.Line),
			cmp.Compare(a.Pos.Column, b.Pos.Column),
		)
	})
	return sites, nil
}

// Unexpected returns the sites outside the allowed packages.
func Unexpected(sites []Site) []Site {
	var out []Site
	for _, s := range sites {
		if !s.Allowed {
			out = append(out, s)
		}
	}
	return out
}

func scanFile(fset *token.FileSet, info *types.Info, file *ast.File) []Site {
	var sites []Site
	for _, decl := range file.Decls {
		scope := "package scope"
		if fd, ok := decl.(*ast.FuncDecl); ok {
			scope = funcName(fd)
		}
		ast.Inspect(decl, func(n ast.Node) bool {
			id, ok := n.(*ast.Ident)
			if !ok {
				return true
			}
			if name, ok := trustedCallee(info.Uses[id]); ok {
				sites = append(sites, Site{Func: scope, Callee: name, Pos: fset.Position(id.Pos())})
			}
			return true
		})
	}
	return sites
}

func trustedCallee(obj types.Object) (string, bool) {
	fn, ok := obj.(*types.Func)
	if !ok || fn.Pkg() == nil {
		return "", false
	}
	names, ok := config.TrustedConstructors[fn.Pkg().Path()]
	if !ok || !slices.Contains(names, fn.Name()) {
		return "", false
	}
	return fn.Pkg().Name() + "." + fn.Name(), true
}

func funcName(fd *ast.FuncDecl) string {
	if fd.Recv == nil || len(fd.Recv.List) == 0 {
		return fd.Name.Name
	}
	return recvName(fd.Recv.List[0].Type) + "." + fd.Name.Name
}

func recvName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return recvName(t.X)
	case *ast.IndexExpr:
		return recvName(t.X)
	case *ast.IndexListExpr:
		return recvName(t.X)
	case *ast.Ident:
		return t.Name
	}
	return "?"
}

// matchAllow reports whether pkgPath is listed in allow. A pattern ending in
// /... matches the prefix and every package below it.
func matchAllow(pkgPath string, allow []string) bool {
	for _, pat := range allow {
		if prefix, ok := strings.CutSuffix(pat, "/..."); ok {
			if pkgPath == prefix || strings.HasPrefix(pkgPath, prefix+"/") {
				return true
			}
			continue
		}
		if pkgPath == pat {
			return true
		}
	}
	return false
}
