package lower

import (
	"testing"

	"github.com/cla7aye15I4nd/Tython/internal/ast"
	"github.com/cla7aye15I4nd/Tython/internal/diag"
	"github.com/cla7aye15I4nd/Tython/internal/types"
)

// name/num/ann are small builders so the AST fixtures below read close
// to the Python they stand in for, following the teacher's check_test.go
// practice of constructing nodes directly rather than parsing source.
func name(id string) *ast.NameExpr { return &ast.NameExpr{Id: id} }

func intType() *ast.TypeExpr { return &ast.TypeExpr{Name: "int"} }

func TestLowerSimpleFunction(t *testing.T) {
	fd := &ast.FunctionDef{
		Name: "add",
		Params: []ast.Param{
			{Name: "x", Ann: intType()},
			{Name: "y", Ann: intType()},
		},
		Returns: intType(),
		Body: []ast.Stmt{
			&ast.ReturnStmt{Value: &ast.BinOp{Op: "+", Left: name("x"), Right: name("y")}},
		},
	}
	mod := &ast.Module{Path: "m", Body: []ast.Stmt{fd}}

	in := types.NewInterner()
	bag := diag.NewBag(10)
	rep := diag.BagReporter{Bag: bag}
	lw := NewLowerer(in, rep, "m")

	out, clean := lw.Lower(mod)
	if !clean {
		t.Fatalf("expected clean lowering, got diagnostics: %+v", bag.Items())
	}

	fn, ok := out.Functions["add"]
	if !ok {
		t.Fatalf("expected function %q in lowered module", "add")
	}
	if fn.QualName != "__tython_m_add" {
		t.Errorf("QualName = %q, want %q", fn.QualName, "__tython_m_add")
	}
	if len(fn.Params) != 2 {
		t.Fatalf("want 2 params, got %d", len(fn.Params))
	}
	builtins := in.Builtins()
	if fn.Params[0].Type != builtins.Int || fn.Params[1].Type != builtins.Int {
		t.Errorf("expected both params typed int")
	}
	if fn.Returns != builtins.Int {
		t.Errorf("Returns = %v, want int", fn.Returns)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("want 1 body statement, got %d", len(fn.Body))
	}
}

func TestLowerReportsTypeMismatch(t *testing.T) {
	fd := &ast.FunctionDef{
		Name:    "f",
		Params:  []ast.Param{{Name: "x", Ann: intType()}},
		Returns: intType(),
		Body: []ast.Stmt{
			&ast.ReturnStmt{Value: &ast.StrLit{Value: "nope"}},
		},
	}
	mod := &ast.Module{Path: "m", Body: []ast.Stmt{fd}}

	in := types.NewInterner()
	bag := diag.NewBag(10)
	lw := NewLowerer(in, diag.BagReporter{Bag: bag}, "m")

	_, clean := lw.Lower(mod)
	if clean {
		t.Fatalf("expected lowering to report a type mismatch")
	}
	if bag.Len() == 0 {
		t.Fatalf("expected at least one diagnostic")
	}
}

// rejectionCase drives one row of spec.md's rejection matrix through a
// minimal fixture and asserts on the exact diag.Code it produces,
// per DESIGN.md's "one code per row" decision.
type rejectionCase struct {
	name string
	want diag.Code
	body func() []ast.Stmt // top-level module statements
}

func TestRejectionMatrix(t *testing.T) {
	cases := []rejectionCase{
		{
			name: "multi assign",
			want: diag.RejectMultiAssign,
			body: func() []ast.Stmt {
				return []ast.Stmt{&ast.FunctionDef{
					Name:    "f",
					Returns: intType(),
					Body: []ast.Stmt{
						&ast.Assign{Targets: []ast.Expr{name("a"), name("b")}, Value: &ast.NumExpr{Int: 1}},
						&ast.ReturnStmt{Value: &ast.NumExpr{Int: 1}},
					},
				}}
			},
		},
		{
			name: "nested func",
			want: diag.RejectNestedFunc,
			body: func() []ast.Stmt {
				return []ast.Stmt{&ast.FunctionDef{
					Name:    "f",
					Returns: intType(),
					Body: []ast.Stmt{
						&ast.FunctionDef{Name: "inner", Body: []ast.Stmt{&ast.PassStmt{}}},
						&ast.ReturnStmt{Value: &ast.NumExpr{Int: 1}},
					},
				}}
			},
		},
		{
			name: "keyword call",
			want: diag.RejectKeywordCall,
			body: func() []ast.Stmt {
				g := &ast.FunctionDef{
					Name:    "g",
					Params:  []ast.Param{{Name: "x", Ann: intType()}},
					Returns: intType(),
					Body:    []ast.Stmt{&ast.ReturnStmt{Value: name("x")}},
				}
				f := &ast.FunctionDef{
					Name:    "f",
					Returns: intType(),
					Body: []ast.Stmt{
						&ast.ExprStmt{Value: &ast.CallExpr{
							Func:   name("g"),
							Kwargs: []ast.CallKwarg{{Name: "x", Value: &ast.NumExpr{Int: 1}}},
						}},
						&ast.ReturnStmt{Value: &ast.NumExpr{Int: 1}},
					},
				}
				return []ast.Stmt{g, f}
			},
		},
		{
			name: "indirect call",
			want: diag.RejectIndirectCall,
			body: func() []ast.Stmt {
				g := &ast.FunctionDef{
					Name:    "g",
					Params:  []ast.Param{{Name: "x", Ann: intType()}},
					Returns: intType(),
					Body:    []ast.Stmt{&ast.ReturnStmt{Value: name("x")}},
				}
				f := &ast.FunctionDef{
					Name:    "f",
					Returns: intType(),
					Body: []ast.Stmt{
						&ast.ExprStmt{Value: name("g")},
						&ast.ReturnStmt{Value: &ast.NumExpr{Int: 1}},
					},
				}
				return []ast.Stmt{g, f}
			},
		},
		{
			name: "return in finally",
			want: diag.RejectReturnInFinally,
			body: func() []ast.Stmt {
				return []ast.Stmt{&ast.FunctionDef{
					Name:    "f",
					Returns: intType(),
					Body: []ast.Stmt{
						&ast.TryStmt{
							Body:    []ast.Stmt{&ast.PassStmt{}},
							Finally: []ast.Stmt{&ast.ReturnStmt{Value: &ast.NumExpr{Int: 1}}},
						},
						&ast.ReturnStmt{Value: &ast.NumExpr{Int: 1}},
					},
				}}
			},
		},
		{
			name: "variadic parameter",
			want: diag.RejectVariadic,
			body: func() []ast.Stmt {
				return []ast.Stmt{&ast.FunctionDef{
					Name:    "f",
					Params:  []ast.Param{{Name: "*args", Ann: intType()}},
					Returns: intType(),
					Body: []ast.Stmt{
						&ast.ReturnStmt{Value: &ast.NumExpr{Int: 1}},
					},
				}}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mod := &ast.Module{Path: "m", Body: tc.body()}

			in := types.NewInterner()
			bag := diag.NewBag(10)
			lw := NewLowerer(in, diag.BagReporter{Bag: bag}, "m")

			_, clean := lw.Lower(mod)
			if clean {
				t.Fatalf("expected lowering to fail for %s", tc.name)
			}

			found := false
			for _, d := range bag.Items() {
				if d.Code == tc.want {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected code %v among diagnostics, got %+v", tc.want, bag.Items())
			}
		})
	}
}

func TestRejectInheritance(t *testing.T) {
	cd := &ast.ClassDef{Name: "C", Bases: []string{"Base"}}
	mod := &ast.Module{Path: "m", Body: []ast.Stmt{cd}}

	in := types.NewInterner()
	bag := diag.NewBag(10)
	lw := NewLowerer(in, diag.BagReporter{Bag: bag}, "m")

	_, clean := lw.Lower(mod)
	if clean {
		t.Fatalf("expected inheritance to be rejected")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.RejectInheritance {
			found = true
		}
	}
	if !found {
		t.Errorf("expected RejectInheritance among diagnostics, got %+v", bag.Items())
	}
}

func TestRejectImportInsideFunction(t *testing.T) {
	// A bare "import pkg" naming a directory (no dotted submodule) is
	// rejected by the resolver, not by lowering; lowering itself only
	// needs to see that Import/ImportFrom nodes are skipped at module
	// scope and rejected inside a function body.
	fd := &ast.FunctionDef{
		Name:    "f",
		Returns: intType(),
		Body: []ast.Stmt{
			&ast.Import{Names: map[string]string{"x": "x"}, Order: []string{"x"}},
			&ast.ReturnStmt{Value: &ast.NumExpr{Int: 1}},
		},
	}
	mod := &ast.Module{Path: "m", Body: []ast.Stmt{fd}}

	in := types.NewInterner()
	bag := diag.NewBag(10)
	lw := NewLowerer(in, diag.BagReporter{Bag: bag}, "m")

	_, clean := lw.Lower(mod)
	if clean {
		t.Fatalf("expected import-inside-function to be rejected")
	}
}
