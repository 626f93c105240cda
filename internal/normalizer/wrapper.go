package normalizer

import "github.com/Hawkynt/Hawkynt.github.io-sub005/internal/sourceast"

// detectModuleWrapper implements spec §4.1 rewrite 1: it looks for the
// IIFE module-wrapper idiom `(function(){ ... })()`, including the
// two-argument universal-module-definition shape
// `(function(root, factory){ ... })(this, function(){ ... })`, among the
// program's top-level statements and splices the wrapper's lifted
// declarations into its place. Feature-detection branches and
// registration side effects inside the wrapper body are discarded, not
// lifted.
func detectModuleWrapper(body []sourceast.Statement) ([]sourceast.Statement, bool) {
	var out []sourceast.Statement
	changed := false
	for _, stmt := range body {
		if inner, ok := unwrapModuleCall(stmt); ok {
			out = append(out, liftDeclarations(inner)...)
			changed = true
			continue
		}
		out = append(out, stmt)
	}
	return out, changed
}

// unwrapModuleCall recognizes one top-level statement as a module
// wrapper call and returns the function body that should be lifted.
func unwrapModuleCall(stmt sourceast.Statement) ([]sourceast.Statement, bool) {
	es, ok := stmt.(*sourceast.ExpressionStmt)
	if !ok {
		return nil, false
	}
	call, ok := es.Expr.(*sourceast.CallExpr)
	if !ok {
		return nil, false
	}
	callee, ok := call.Callee.(*sourceast.LambdaExpr)
	if !ok || callee.BlockBody == nil {
		return nil, false
	}
	switch len(call.Args) {
	case 0:
		// Plain IIFE: `(function(){ ... })()`.
		return callee.BlockBody, true
	case 2:
		// UMD shape: the wrapper's own body only performs environment
		// detection and forwards to the second argument, the factory.
		if factory, ok := call.Args[1].(*sourceast.LambdaExpr); ok && factory.BlockBody != nil {
			return factory.BlockBody, true
		}
		return callee.BlockBody, true
	default:
		return callee.BlockBody, true
	}
}

// liftDeclarations keeps only the statement kinds spec §4.1 rewrite 1
// names as liftable (class, function, and variable declarations binding
// a fixed-literal constant or declared without an initializer); everything else — feature-detection `if`
// branches, registration calls — is dropped.
func liftDeclarations(body []sourceast.Statement) []sourceast.Statement {
	var out []sourceast.Statement
	for _, stmt := range body {
		switch s := stmt.(type) {
		case *sourceast.FunctionDecl, *sourceast.ClassDecl:
			out = append(out, s.(sourceast.Statement))
		case *sourceast.VarDecl:
			if s.Init == nil || isFixedLiteral(s.Init) {
				out = append(out, s)
			}
		}
	}
	return out
}

func isFixedLiteral(e sourceast.Expression) bool {
	_, ok := e.(*sourceast.Literal)
	return ok
}
