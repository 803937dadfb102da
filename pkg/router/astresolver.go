package router

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"net/http"
	"strconv"
)

// ASTResolver resolves handler sets by parsing route files with go/parser.
// It recognizes exported functions named after HTTP methods, a package-level
// Handler variable (the pre-built dispatcher shape), and a PathPrefix
// constant or variable with a string literal value.
//
// Handlers resolved this way are placeholders: they record the export shape
// of the file so the route table can be resolved and validated without
// executing any code (the CLI's check and routes commands). Binding real
// handlers is the job of a ManifestResolver supplied by the host.
type ASTResolver struct{}

// Load implements Resolver.
func (ASTResolver) Load(_ context.Context, file RouteFile) (*HandlerSet, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, file.AbsolutePath, nil, parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	hs := &HandlerSet{}
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Name == nil || !d.Name.IsExported() || d.Recv != nil {
				continue
			}
			name := d.Name.Name
			if MethodSupported(name) {
				if hs.Methods == nil {
					hs.Methods = make(map[string]HandlerFunc)
				}
				hs.Methods[name] = placeholderHandler(name)
			}

		case *ast.GenDecl:
			if d.Tok != token.VAR && d.Tok != token.CONST {
				continue
			}
			for _, spec := range d.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for i, ident := range vs.Names {
					switch ident.Name {
					case "Handler":
						hs.Dispatcher = placeholderDispatcher()
					case "PathPrefix":
						if v, ok := stringLiteral(vs, i); ok {
							hs.PathPrefix = v
						}
					}
				}
			}
		}
	}

	return hs, nil
}

// stringLiteral extracts the i-th value of a spec when it is a string
// literal.
func stringLiteral(vs *ast.ValueSpec, i int) (string, bool) {
	if i >= len(vs.Values) {
		return "", false
	}
	lit, ok := vs.Values[i].(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	v, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}
	return v, true
}

func placeholderHandler(method string) HandlerFunc {
	return func(c *Ctx) (any, error) {
		return nil, fmt.Errorf("%s handler is a placeholder; bind real handlers with a ManifestResolver", method)
	}
}

func placeholderDispatcher() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotImplemented)
	})
}
