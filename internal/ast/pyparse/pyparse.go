// Package pyparse adapts github.com/tree-sitter/go-tree-sitter and its
// Python grammar into the ast.Parser boundary contract. This package
// is deliberately thin: spec.md puts the surface-syntax parser out of
// scope for this repository, so pyparse only walks the handful of
// top-level shapes spec.md §6.2 lists (def, class, import,
// from...import, typed assignment) well enough to feed the Import
// Resolver and Typed Lowering. It does not attempt full Python syntax.
package pyparse

import (
	"fmt"
	"strconv"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"github.com/cla7aye15I4nd/Tython/internal/ast"
	"github.com/cla7aye15I4nd/Tython/internal/diag"
	"github.com/cla7aye15I4nd/Tython/internal/source"
)

// Parser parses Python source into ast.Module via tree-sitter-python.
// The zero value is not usable; construct with New.
type Parser struct {
	parser *sitter.Parser
	bag    *diag.Bag
}

// New constructs a Parser bound to the tree-sitter Python grammar.
func New(bag *diag.Bag) (*Parser, error) {
	lang := sitter.NewLanguage(tree_sitter_python.Language())
	p := sitter.NewParser()
	if err := p.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("pyparse: %w", err)
	}
	return &Parser{parser: p, bag: bag}, nil
}

// Close releases the underlying tree-sitter parser.
func (p *Parser) Close() {
	if p == nil || p.parser == nil {
		return
	}
	p.parser.Close()
}

// Parse implements ast.Parser.
func (p *Parser) Parse(file source.FileID, content []byte, fs *source.FileSet) (*ast.Module, bool) {
	tree := p.parser.Parse(content, nil)
	if tree == nil {
		return nil, false
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.HasError() {
		diag.Error(diag.BagReporter{Bag: p.bag}, diag.ResEntryUnreadable,
			source.Span{File: file}, "syntax error while parsing module")
		return nil, false
	}

	c := &converter{src: content, file: file}
	mod := &ast.Module{
		File: file,
		Span: c.span(root),
	}
	for i := uint(0); i < root.NamedChildCount(); i++ {
		child := root.NamedChild(i)
		if s := c.stmt(child); s != nil {
			mod.Body = append(mod.Body, s)
		}
	}
	return mod, true
}

type converter struct {
	src  []byte
	file source.FileID
}

func (c *converter) span(n *sitter.Node) source.Span {
	return source.Span{File: c.file, Start: uint32(n.StartByte()), End: uint32(n.EndByte())}
}

func (c *converter) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(c.src)
}

// stmt converts one top-level-or-block statement node. Unrecognized
// node kinds are passed through as a no-op ExprStmt on a NoneLit so
// that lowering, not the parser, is the layer that rejects them.
func (c *converter) stmt(n *sitter.Node) ast.Stmt {
	switch n.Kind() {
	case "function_definition":
		return c.funcDef(n, false, "")
	case "class_definition":
		return c.classDef(n)
	case "import_statement":
		return c.importStmt(n)
	case "import_from_statement":
		return c.importFromStmt(n)
	case "expression_statement":
		return c.exprStmt(n)
	case "return_statement":
		var val ast.Expr
		if n.NamedChildCount() > 0 {
			val = c.expr(n.NamedChild(0))
		}
		return &ast.ReturnStmt{Value: val, Span: c.span(n)}
	case "pass_statement":
		return &ast.PassStmt{Span: c.span(n)}
	case "break_statement":
		return &ast.BreakStmt{Span: c.span(n)}
	case "continue_statement":
		return &ast.ContinueStmt{Span: c.span(n)}
	case "if_statement":
		return c.ifStmt(n)
	case "while_statement":
		return c.whileStmt(n)
	case "for_statement":
		return c.forStmt(n)
	case "try_statement":
		return c.tryStmt(n)
	case "raise_statement":
		return c.raiseStmt(n)
	case "assert_statement":
		return c.assertStmt(n)
	default:
		return &ast.ExprStmt{Value: &ast.NoneLit{Span: c.span(n)}, Span: c.span(n)}
	}
}

func (c *converter) block(n *sitter.Node) []ast.Stmt {
	if n == nil {
		return nil
	}
	var out []ast.Stmt
	for i := uint(0); i < n.NamedChildCount(); i++ {
		if s := c.stmt(n.NamedChild(i)); s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (c *converter) funcDef(n *sitter.Node, isMethod bool, receiver string) *ast.FunctionDef {
	name := c.text(n.ChildByFieldName("name"))
	params := c.params(n.ChildByFieldName("parameters"))
	var returns *ast.TypeExpr
	if rt := n.ChildByFieldName("return_type"); rt != nil {
		te := c.typeExpr(rt)
		returns = &te
	}
	if isMethod && len(params) > 0 {
		receiver = params[0].Name
		params = params[1:]
	}
	return &ast.FunctionDef{
		Name:     name,
		Params:   params,
		Returns:  returns,
		Body:     c.block(n.ChildByFieldName("body")),
		IsMethod: isMethod,
		Receiver: receiver,
		Span:     c.span(n),
	}
}

func (c *converter) params(n *sitter.Node) []ast.Param {
	if n == nil {
		return nil
	}
	var out []ast.Param
	for i := uint(0); i < n.NamedChildCount(); i++ {
		p := n.NamedChild(i)
		switch p.Kind() {
		case "identifier":
			out = append(out, ast.Param{Name: c.text(p), Span: c.span(p)})
		case "typed_parameter":
			nameNode := p.NamedChild(0)
			var ann *ast.TypeExpr
			if t := p.ChildByFieldName("type"); t != nil {
				te := c.typeExpr(t)
				ann = &te
			}
			out = append(out, ast.Param{Name: c.text(nameNode), Ann: ann, Span: c.span(p)})
		case "typed_default_parameter", "default_parameter":
			nameNode := p.ChildByFieldName("name")
			var ann *ast.TypeExpr
			if t := p.ChildByFieldName("type"); t != nil {
				te := c.typeExpr(t)
				ann = &te
			}
			out = append(out, ast.Param{Name: c.text(nameNode), Ann: ann, Span: c.span(p)})
		case "list_splat_pattern", "dictionary_splat_pattern":
			out = append(out, ast.Param{Name: "*" + c.text(p), Span: c.span(p)})
		default:
			// keyword-only marker "*" or positional-only marker "/"
			out = append(out, ast.Param{Name: c.text(p), Span: c.span(p)})
		}
	}
	return out
}

func (c *converter) typeExpr(n *sitter.Node) ast.TypeExpr {
	switch n.Kind() {
	case "subscript":
		base := c.typeExpr(n.ChildByFieldName("value"))
		if sub := n.ChildByFieldName("subscript"); sub != nil {
			if sub.Kind() == "tuple" {
				for i := uint(0); i < sub.NamedChildCount(); i++ {
					base.Args = append(base.Args, c.typeExpr(sub.NamedChild(i)))
				}
			} else {
				base.Args = append(base.Args, c.typeExpr(sub))
			}
		}
		base.Span = c.span(n)
		return base
	case "none":
		return ast.TypeExpr{Name: "None", Span: c.span(n)}
	default:
		return ast.TypeExpr{Name: c.text(n), Span: c.span(n)}
	}
}

func (c *converter) classDef(n *sitter.Node) *ast.ClassDef {
	cd := &ast.ClassDef{Name: c.text(n.ChildByFieldName("name")), Span: c.span(n)}
	if sc := n.ChildByFieldName("superclasses"); sc != nil {
		for i := uint(0); i < sc.NamedChildCount(); i++ {
			cd.Bases = append(cd.Bases, c.text(sc.NamedChild(i)))
		}
	}
	body := n.ChildByFieldName("body")
	if body != nil {
		for i := uint(0); i < body.NamedChildCount(); i++ {
			item := body.NamedChild(i)
			if item.Kind() == "function_definition" {
				cd.Body = append(cd.Body, c.funcDef(item, true, ""))
			} else {
				cd.Body = append(cd.Body, c.stmt(item))
			}
		}
	}
	return cd
}

func (c *converter) importStmt(n *sitter.Node) *ast.Import {
	im := &ast.Import{Names: map[string]string{}, Span: c.span(n)}
	for i := uint(0); i < n.NamedChildCount(); i++ {
		item := n.NamedChild(i)
		var dotted, local string
		if item.Kind() == "aliased_import" {
			dotted = c.text(item.ChildByFieldName("name"))
			local = c.text(item.ChildByFieldName("alias"))
		} else {
			dotted = c.text(item)
			local = strings.SplitN(dotted, ".", 2)[0]
		}
		im.Names[local] = dotted
		im.Order = append(im.Order, local)
	}
	return im
}

func (c *converter) importFromStmt(n *sitter.Node) *ast.ImportFrom {
	from := &ast.ImportFrom{Names: map[string]string{}, Span: c.span(n)}
	from.Module = c.text(n.ChildByFieldName("module_name"))
	for i := uint(0); i < n.NamedChildCount(); i++ {
		item := n.NamedChild(i)
		if item.Kind() != "dotted_name" && item.Kind() != "aliased_import" && item.Kind() != "identifier" {
			continue
		}
		if c.text(item) == from.Module {
			continue
		}
		var sym, local string
		if item.Kind() == "aliased_import" {
			sym = c.text(item.ChildByFieldName("name"))
			local = c.text(item.ChildByFieldName("alias"))
		} else {
			sym = c.text(item)
			local = sym
		}
		from.Names[local] = sym
		from.Order = append(from.Order, local)
	}
	return from
}

func (c *converter) exprStmt(n *sitter.Node) ast.Stmt {
	inner := n.NamedChild(0)
	if inner == nil {
		return &ast.PassStmt{Span: c.span(n)}
	}
	switch inner.Kind() {
	case "assignment":
		return c.assignment(inner)
	case "augmented_assignment":
		return &ast.AugAssign{
			Target: c.expr(inner.ChildByFieldName("left")),
			Op:     c.text(inner.ChildByFieldName("operator")),
			Value:  c.expr(inner.ChildByFieldName("right")),
			Span:   c.span(inner),
		}
	default:
		return &ast.ExprStmt{Value: c.expr(inner), Span: c.span(n)}
	}
}

func (c *converter) assignment(n *sitter.Node) ast.Stmt {
	left := n.ChildByFieldName("left")
	right := n.ChildByFieldName("right")
	if t := n.ChildByFieldName("type"); t != nil {
		te := c.typeExpr(t)
		var val ast.Expr
		if right != nil {
			val = c.expr(right)
		}
		return &ast.AnnAssign{Target: c.expr(left), Ann: te, Value: val, Span: c.span(n)}
	}
	targets := []ast.Expr{c.expr(left)}
	return &ast.Assign{Targets: targets, Value: c.expr(right), Span: c.span(n)}
}

func (c *converter) ifStmt(n *sitter.Node) *ast.IfStmt {
	return &ast.IfStmt{
		Test:   c.expr(n.ChildByFieldName("condition")),
		Body:   c.block(n.ChildByFieldName("consequence")),
		Orelse: c.alternative(n.ChildByFieldName("alternative")),
		Span:   c.span(n),
	}
}

func (c *converter) alternative(n *sitter.Node) []ast.Stmt {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case "elif_clause":
		return []ast.Stmt{&ast.IfStmt{
			Test:   c.expr(n.ChildByFieldName("condition")),
			Body:   c.block(n.ChildByFieldName("consequence")),
			Orelse: c.alternative(n.ChildByFieldName("alternative")),
			Span:   c.span(n),
		}}
	case "else_clause":
		return c.block(n.NamedChild(0))
	default:
		return nil
	}
}

func (c *converter) whileStmt(n *sitter.Node) *ast.WhileStmt {
	w := &ast.WhileStmt{
		Test: c.expr(n.ChildByFieldName("condition")),
		Body: c.block(n.ChildByFieldName("body")),
		Span: c.span(n),
	}
	if e := n.ChildByFieldName("alternative"); e != nil {
		w.Orelse = c.block(e.NamedChild(0))
	}
	return w
}

func (c *converter) forStmt(n *sitter.Node) *ast.ForStmt {
	f := &ast.ForStmt{
		Target: c.expr(n.ChildByFieldName("left")),
		Iter:   c.expr(n.ChildByFieldName("right")),
		Body:   c.block(n.ChildByFieldName("body")),
		Span:   c.span(n),
	}
	if e := n.ChildByFieldName("alternative"); e != nil {
		f.Orelse = c.block(e.NamedChild(0))
	}
	return f
}

func (c *converter) tryStmt(n *sitter.Node) *ast.TryStmt {
	t := &ast.TryStmt{Body: c.block(n.ChildByFieldName("body")), Span: c.span(n)}
	for i := uint(0); i < n.NamedChildCount(); i++ {
		clause := n.NamedChild(i)
		switch clause.Kind() {
		case "except_clause":
			h := ast.ExceptHandler{Span: c.span(clause)}
			if ty := clause.ChildByFieldName("value"); ty != nil {
				e := c.expr(ty)
				h.Type = &e
			}
			if alias := clause.ChildByFieldName("alias"); alias != nil {
				h.Name = c.text(alias)
			}
			h.Body = c.block(clause.NamedChild(clause.NamedChildCount() - 1))
			t.Handlers = append(t.Handlers, h)
		case "else_clause":
			t.Orelse = c.block(clause.NamedChild(0))
		case "finally_clause":
			t.Finally = c.block(clause.NamedChild(0))
		}
	}
	return t
}

func (c *converter) raiseStmt(n *sitter.Node) *ast.RaiseStmt {
	r := &ast.RaiseStmt{Span: c.span(n)}
	if n.NamedChildCount() > 0 {
		r.Exc = c.expr(n.NamedChild(0))
	}
	if n.NamedChildCount() > 1 {
		r.Cause = c.expr(n.NamedChild(1))
	}
	return r
}

func (c *converter) assertStmt(n *sitter.Node) *ast.AssertStmt {
	a := &ast.AssertStmt{Span: c.span(n)}
	if n.NamedChildCount() > 0 {
		a.Test = c.expr(n.NamedChild(0))
	}
	if n.NamedChildCount() > 1 {
		a.Msg = c.expr(n.NamedChild(1))
	}
	return a
}

// expr converts an expression node. Shapes not in the supported subset
// fall through to NoneLit so that a later rejection diagnostic (not a
// parser panic) is what the user sees.
func (c *converter) expr(n *sitter.Node) ast.Expr {
	if n == nil {
		return &ast.NoneLit{}
	}
	switch n.Kind() {
	case "identifier":
		return &ast.NameExpr{Id: c.text(n), Span: c.span(n)}
	case "integer":
		v, _ := strconv.ParseInt(c.text(n), 0, 64)
		return &ast.NumExpr{Int: v, Span: c.span(n)}
	case "float":
		v, _ := strconv.ParseFloat(c.text(n), 64)
		return &ast.NumExpr{IsFloat: true, Float: v, Span: c.span(n)}
	case "true":
		return &ast.BoolLit{Value: true, Span: c.span(n)}
	case "false":
		return &ast.BoolLit{Value: false, Span: c.span(n)}
	case "none":
		return &ast.NoneLit{Span: c.span(n)}
	case "string":
		return &ast.StrLit{Value: stringLiteralValue(c.text(n)), Span: c.span(n)}
	case "list":
		l := &ast.ListExpr{Span: c.span(n)}
		for i := uint(0); i < n.NamedChildCount(); i++ {
			l.Elts = append(l.Elts, c.expr(n.NamedChild(i)))
		}
		return l
	case "tuple":
		t := &ast.TupleExpr{Span: c.span(n)}
		for i := uint(0); i < n.NamedChildCount(); i++ {
			t.Elts = append(t.Elts, c.expr(n.NamedChild(i)))
		}
		return t
	case "set":
		s := &ast.SetExpr{Span: c.span(n)}
		for i := uint(0); i < n.NamedChildCount(); i++ {
			s.Elts = append(s.Elts, c.expr(n.NamedChild(i)))
		}
		return s
	case "dictionary":
		d := &ast.DictExpr{Span: c.span(n)}
		for i := uint(0); i < n.NamedChildCount(); i++ {
			pair := n.NamedChild(i)
			if pair.Kind() != "pair" {
				continue
			}
			d.Keys = append(d.Keys, c.expr(pair.ChildByFieldName("key")))
			d.Values = append(d.Values, c.expr(pair.ChildByFieldName("value")))
		}
		return d
	case "binary_operator":
		return &ast.BinOp{
			Op:    c.text(n.ChildByFieldName("operator")),
			Left:  c.expr(n.ChildByFieldName("left")),
			Right: c.expr(n.ChildByFieldName("right")),
			Span:  c.span(n),
		}
	case "boolean_operator":
		return &ast.BoolOp{
			Op:   c.text(n.ChildByFieldName("operator")),
			Vals: []ast.Expr{c.expr(n.ChildByFieldName("left")), c.expr(n.ChildByFieldName("right"))},
			Span: c.span(n),
		}
	case "not_operator":
		return &ast.UnaryOp{Op: "not", Val: c.expr(n.NamedChild(0)), Span: c.span(n)}
	case "unary_operator":
		return &ast.UnaryOp{Op: c.text(n.ChildByFieldName("operator")), Val: c.expr(n.ChildByFieldName("argument")), Span: c.span(n)}
	case "comparison_operator":
		cmp := &ast.Compare{Left: c.expr(n.NamedChild(0)), Span: c.span(n)}
		for i := uint(1); i < n.NamedChildCount(); i++ {
			cmp.Comps = append(cmp.Comps, c.expr(n.NamedChild(i)))
		}
		return cmp
	case "call":
		call := &ast.CallExpr{Func: c.expr(n.ChildByFieldName("function")), Span: c.span(n)}
		args := n.ChildByFieldName("arguments")
		if args != nil {
			for i := uint(0); i < args.NamedChildCount(); i++ {
				a := args.NamedChild(i)
				if a.Kind() == "keyword_argument" {
					call.Kwargs = append(call.Kwargs, ast.CallKwarg{
						Name:  c.text(a.ChildByFieldName("name")),
						Value: c.expr(a.ChildByFieldName("value")),
					})
					continue
				}
				call.Args = append(call.Args, c.expr(a))
			}
		}
		return call
	case "attribute":
		return &ast.AttributeExpr{Value: c.expr(n.ChildByFieldName("object")), Attr: c.text(n.ChildByFieldName("attribute")), Span: c.span(n)}
	case "subscript":
		sub := n.ChildByFieldName("subscript")
		if sub != nil && sub.Kind() == "slice" {
			sl := &ast.SliceExpr{Span: c.span(sub)}
			if lo := sub.ChildByFieldName("start"); lo != nil {
				sl.Lower = c.expr(lo)
			}
			if hi := sub.ChildByFieldName("stop"); hi != nil {
				sl.Upper = c.expr(hi)
			}
			if st := sub.ChildByFieldName("step"); st != nil {
				sl.Step = c.expr(st)
			}
			return &ast.SubscriptExpr{Value: c.expr(n.ChildByFieldName("value")), Index: sl, Span: c.span(n)}
		}
		return &ast.SubscriptExpr{Value: c.expr(n.ChildByFieldName("value")), Index: c.expr(sub), Span: c.span(n)}
	case "conditional_expression":
		return &ast.IfExpr{
			Body:   c.expr(n.NamedChild(0)),
			Test:   c.expr(n.NamedChild(1)),
			Orelse: c.expr(n.NamedChild(2)),
			Span:   c.span(n),
		}
	case "list_comprehension", "set_comprehension":
		return c.comprehension(n)
	case "parenthesized_expression":
		return c.expr(n.NamedChild(0))
	default:
		return &ast.NoneLit{Span: c.span(n)}
	}
}

func (c *converter) comprehension(n *sitter.Node) *ast.ListCompExpr {
	lc := &ast.ListCompExpr{Elt: c.expr(n.NamedChild(0)), Span: c.span(n)}
	for i := uint(1); i < n.NamedChildCount(); i++ {
		clause := n.NamedChild(i)
		switch clause.Kind() {
		case "for_in_clause":
			gen := ast.Comprehension{
				Target: c.expr(clause.ChildByFieldName("left")),
				Iter:   c.expr(clause.ChildByFieldName("right")),
			}
			lc.Generators = append(lc.Generators, gen)
		case "if_clause":
			if len(lc.Generators) > 0 {
				last := &lc.Generators[len(lc.Generators)-1]
				last.Ifs = append(last.Ifs, c.expr(clause.NamedChild(0)))
			}
		}
	}
	return lc
}

// stringLiteralValue strips the quote characters and any string
// prefix (r/b/f) tree-sitter-python includes in the raw token text.
func stringLiteralValue(raw string) string {
	s := raw
	for len(s) > 0 && (s[0] == 'r' || s[0] == 'R' || s[0] == 'b' || s[0] == 'B' || s[0] == 'f' || s[0] == 'F') {
		s = s[1:]
	}
	if strings.HasPrefix(s, `"""`) || strings.HasPrefix(s, "'''") {
		return s[3 : len(s)-3]
	}
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}
