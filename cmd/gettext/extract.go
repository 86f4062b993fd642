package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/slog"
)

// Message is an extracted translation call. ID is the catalog key, already
// context- and domain-qualified the way the engines look it up. Plural holds
// the plural source text for TN/TNX calls.
type Message struct {
	ID     string
	Plural string
}

var templCallPattern = regexp.MustCompile(`[\w.]+\.(?:T|TN|TX|TNX|Tr)\([^)]*\)`)

func extractFile(path string, content []byte) map[string]Message {
	switch filepath.Ext(path) {
	case ".go":
		return extractGoSource(path, content)
	case ".templ":
		return extractTemplSource(string(content))
	}
	return nil
}

func extractGoSource(path string, content []byte) map[string]Message {
	extracted := make(map[string]Message)
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, content, parser.SkipObjectResolution)
	if err != nil {
		slog.Warn("error parsing file, skipping", "path", path, "err", err)
		return nil
	}
	ast.Inspect(file, func(node ast.Node) bool {
		if call, ok := node.(*ast.CallExpr); ok {
			if message, ok := messageFromCall(call); ok {
				extracted[message.ID] = message
			}
		}
		return true
	})
	return extracted
}

func extractTemplSource(content string) map[string]Message {
	extracted := make(map[string]Message)
	for _, match := range templCallPattern.FindAllString(content, -1) {
		call, ok := parseCall(match)
		if !ok {
			continue
		}
		if message, ok := messageFromCall(call); ok {
			extracted[message.ID] = message
		}
	}
	return extracted
}

// parseCall wraps a matched call in a fake package so the standard parser can
// produce the call expression.
func parseCall(source string) (*ast.CallExpr, bool) {
	fakePackage := fmt.Sprintf("package main\nfunc main() {\n\t%s\n}", source)
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", fakePackage, 0)
	if err != nil {
		return nil, false
	}
	main, ok := file.Decls[0].(*ast.FuncDecl)
	if !ok || len(main.Body.List) == 0 {
		return nil, false
	}
	statement, ok := main.Body.List[0].(*ast.ExprStmt)
	if !ok {
		return nil, false
	}
	call, ok := statement.X.(*ast.CallExpr)
	return call, ok
}

func messageFromCall(call *ast.CallExpr) (Message, bool) {
	lit := func(index int) string {
		if index >= len(call.Args) {
			return ""
		}
		basic, ok := call.Args[index].(*ast.BasicLit)
		if !ok || basic.Kind != token.STRING {
			return ""
		}
		value, err := strconv.Unquote(basic.Value)
		if err != nil {
			slog.Warn("error unquoting message text", "text", basic.Value)
			return strings.Trim(basic.Value, `"`)
		}
		return value
	}

	var text, plural, context, domain string
	switch callName(call.Fun) {
	case "T":
		text, domain = lit(0), lit(1)
	case "TN":
		text, plural, domain = lit(0), lit(1), lit(3)
	case "TX":
		text, context, domain = lit(0), lit(1), lit(2)
	case "TNX":
		text, plural, context, domain = lit(0), lit(1), lit(3), lit(4)
	case "Tr":
		// templ component helper: Tr(ctx, text, domain...)
		text, domain = lit(1), lit(2)
	default:
		return Message{}, false
	}
	if text == "" {
		return Message{}, false
	}

	id := text
	if context != "" {
		id = context + "|" + text
	}
	if domain != "" {
		id = domain + ":" + id
	}
	return Message{ID: id, Plural: plural}, true
}

func callName(fun ast.Expr) string {
	switch fun := fun.(type) {
	case *ast.SelectorExpr:
		return fun.Sel.Name
	case *ast.Ident:
		return fun.Name
	}
	return ""
}
