// This file implements JSON decoding of a Source-AST document into the
// closed Program/Statement/Expression node set above: the one place this
// package looks at a "kind" discriminator tag rather than a concrete Go
// type, since encoding/json cannot populate an interface-typed field on
// its own. internal/session/diagnostics.go already reaches for
// tidwall/gjson to read fields out of a JSON blob without a full decode;
// Decode reuses it the same way, just to sniff the kind tag before
// handing the raw bytes to encoding/json for the real unmarshal.
package sourceast

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Decode parses a Source-AST JSON document (an object with the shape of
// Program: `{"body": [...]}`, each node tagged `"kind"`) into a *Program.
func Decode(data []byte) (*Program, error) {
	var raw struct {
		Body []json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("sourceast: invalid document: %w", err)
	}
	body := make([]Statement, 0, len(raw.Body))
	for i, item := range raw.Body {
		stmt, err := decodeStatement(item)
		if err != nil {
			return nil, fmt.Errorf("sourceast: body[%d]: %w", i, err)
		}
		body = append(body, stmt)
	}
	return &Program{Body: body}, nil
}

func kindOf(raw json.RawMessage) string {
	return gjson.GetBytes(raw, "kind").String()
}

func decodeStatements(items []json.RawMessage) ([]Statement, error) {
	out := make([]Statement, 0, len(items))
	for i, item := range items {
		s, err := decodeStatement(item)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func decodeExpressions(items []json.RawMessage) ([]Expression, error) {
	out := make([]Expression, 0, len(items))
	for i, item := range items {
		e, err := decodeExpression(item)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// decodeOptStatement decodes a nullable statement field: an explicit
// JSON null (or an absent/empty field) decodes to a nil Statement
// rather than an error, matching the Go-side convention (e.g.
// IfStmt.Else, ForStmt.Init) of using nil for "not present".
func decodeOptStatement(raw json.RawMessage) (Statement, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	return decodeStatement(raw)
}

func decodeOptExpression(raw json.RawMessage) (Expression, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	return decodeExpression(raw)
}

func decodeStatement(raw json.RawMessage) (Statement, error) {
	switch kindOf(raw) {
	case "VarDecl":
		var w struct {
			BaseNode
			VarKind VarKind
			Target  json.RawMessage
			Type    *TypeAnnotation
			Init    json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		target, err := decodeExpression(w.Target)
		if err != nil {
			return nil, err
		}
		init, err := decodeOptExpression(w.Init)
		if err != nil {
			return nil, err
		}
		return &VarDecl{BaseNode: w.BaseNode, VarKind: w.VarKind, Target: target, Type: w.Type, Init: init}, nil

	case "ExpressionStmt":
		var w struct {
			BaseNode
			Expr json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		expr, err := decodeExpression(w.Expr)
		if err != nil {
			return nil, err
		}
		return &ExpressionStmt{BaseNode: w.BaseNode, Expr: expr}, nil

	case "ReturnStmt":
		var w struct {
			BaseNode
			Value json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		v, err := decodeOptExpression(w.Value)
		if err != nil {
			return nil, err
		}
		return &ReturnStmt{BaseNode: w.BaseNode, Value: v}, nil

	case "ThrowStmt":
		var w struct {
			BaseNode
			Value json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		v, err := decodeOptExpression(w.Value)
		if err != nil {
			return nil, err
		}
		return &ThrowStmt{BaseNode: w.BaseNode, Value: v}, nil

	case "BreakStmt":
		var w struct{ BaseNode }
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &BreakStmt{BaseNode: w.BaseNode}, nil

	case "ContinueStmt":
		var w struct{ BaseNode }
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &ContinueStmt{BaseNode: w.BaseNode}, nil

	case "Block":
		var w struct {
			BaseNode
			Body []json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		body, err := decodeStatements(w.Body)
		if err != nil {
			return nil, err
		}
		return &Block{BaseNode: w.BaseNode, Body: body}, nil

	case "IfStmt":
		var w struct {
			BaseNode
			Test json.RawMessage
			Then json.RawMessage
			Else json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		test, err := decodeExpression(w.Test)
		if err != nil {
			return nil, err
		}
		then, err := decodeStatement(w.Then)
		if err != nil {
			return nil, err
		}
		els, err := decodeOptStatement(w.Else)
		if err != nil {
			return nil, err
		}
		return &IfStmt{BaseNode: w.BaseNode, Test: test, Then: then, Else: els}, nil

	case "ForStmt":
		var w struct {
			BaseNode
			Init   json.RawMessage
			Test   json.RawMessage
			Update json.RawMessage
			Body   json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		initStmt, err := decodeOptStatement(w.Init)
		if err != nil {
			return nil, err
		}
		test, err := decodeOptExpression(w.Test)
		if err != nil {
			return nil, err
		}
		update, err := decodeOptExpression(w.Update)
		if err != nil {
			return nil, err
		}
		body, err := decodeStatement(w.Body)
		if err != nil {
			return nil, err
		}
		return &ForStmt{BaseNode: w.BaseNode, Init: initStmt, Test: test, Update: update, Body: body}, nil

	case "ForEachStmt":
		var w struct {
			BaseNode
			Var      *Identifier
			Iterable json.RawMessage
			IsKeysOf bool
			Body     json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		iter, err := decodeExpression(w.Iterable)
		if err != nil {
			return nil, err
		}
		body, err := decodeStatement(w.Body)
		if err != nil {
			return nil, err
		}
		return &ForEachStmt{BaseNode: w.BaseNode, Var: w.Var, Iterable: iter, IsKeysOf: w.IsKeysOf, Body: body}, nil

	case "WhileStmt":
		var w struct {
			BaseNode
			Test json.RawMessage
			Body json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		test, err := decodeExpression(w.Test)
		if err != nil {
			return nil, err
		}
		body, err := decodeStatement(w.Body)
		if err != nil {
			return nil, err
		}
		return &WhileStmt{BaseNode: w.BaseNode, Test: test, Body: body}, nil

	case "DoWhileStmt":
		var w struct {
			BaseNode
			Body json.RawMessage
			Test json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		body, err := decodeStatement(w.Body)
		if err != nil {
			return nil, err
		}
		test, err := decodeExpression(w.Test)
		if err != nil {
			return nil, err
		}
		return &DoWhileStmt{BaseNode: w.BaseNode, Body: body, Test: test}, nil

	case "SwitchStmt":
		var w struct {
			BaseNode
			Discriminant json.RawMessage
			Cases        []struct {
				Tests []json.RawMessage
				Body  []json.RawMessage
			}
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		disc, err := decodeExpression(w.Discriminant)
		if err != nil {
			return nil, err
		}
		cases := make([]SwitchCase, 0, len(w.Cases))
		for _, c := range w.Cases {
			tests, err := decodeExpressions(c.Tests)
			if err != nil {
				return nil, err
			}
			body, err := decodeStatements(c.Body)
			if err != nil {
				return nil, err
			}
			cases = append(cases, SwitchCase{Tests: tests, Body: body})
		}
		return &SwitchStmt{BaseNode: w.BaseNode, Discriminant: disc, Cases: cases}, nil

	case "TryStmt":
		var w struct {
			BaseNode
			Body  []json.RawMessage
			Catch *struct {
				Param *Identifier
				Body  []json.RawMessage
			}
			Finally []json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		body, err := decodeStatements(w.Body)
		if err != nil {
			return nil, err
		}
		var catch *CatchClause
		if w.Catch != nil {
			cbody, err := decodeStatements(w.Catch.Body)
			if err != nil {
				return nil, err
			}
			catch = &CatchClause{Param: w.Catch.Param, Body: cbody}
		}
		fin, err := decodeStatements(w.Finally)
		if err != nil {
			return nil, err
		}
		return &TryStmt{BaseNode: w.BaseNode, Body: body, Catch: catch, Finally: fin}, nil

	case "FunctionDecl":
		var w struct {
			BaseNode
			Name       string
			Params     []jsonParameter
			Body       []json.RawMessage
			Docstring  string
			ReturnType *TypeAnnotation
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		params, err := decodeParams(w.Params)
		if err != nil {
			return nil, err
		}
		body, err := decodeStatements(w.Body)
		if err != nil {
			return nil, err
		}
		return &FunctionDecl{BaseNode: w.BaseNode, Name: w.Name, Params: params, Body: body, Docstring: w.Docstring, ReturnType: w.ReturnType}, nil

	case "ClassDecl":
		var w struct {
			BaseNode
			Name    string
			Extends string
			Fields  []struct {
				Name    string
				Type    *TypeAnnotation
				Default json.RawMessage
			}
			Methods []struct {
				BaseNode
				Name      string
				Kind_     MethodKind `json:"kind_"`
				Params    []jsonParameter
				Body      []json.RawMessage
				Docstring string
			}
			Docstring string
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		fields := make([]FieldDecl, 0, len(w.Fields))
		for _, f := range w.Fields {
			def, err := decodeOptExpression(f.Default)
			if err != nil {
				return nil, err
			}
			fields = append(fields, FieldDecl{Name: f.Name, Type: f.Type, Default: def})
		}
		methods := make([]*MethodDecl, 0, len(w.Methods))
		for _, m := range w.Methods {
			params, err := decodeParams(m.Params)
			if err != nil {
				return nil, err
			}
			body, err := decodeStatements(m.Body)
			if err != nil {
				return nil, err
			}
			methods = append(methods, &MethodDecl{BaseNode: m.BaseNode, Name: m.Name, Kind_: m.Kind_, Params: params, Body: body, Docstring: m.Docstring})
		}
		return &ClassDecl{BaseNode: w.BaseNode, Name: w.Name, Extends: w.Extends, Fields: fields, Methods: methods, Docstring: w.Docstring}, nil

	default:
		return nil, fmt.Errorf("unrecognized statement kind %q", kindOf(raw))
	}
}

type jsonParameter struct {
	Name    string
	Type    *TypeAnnotation
	Default json.RawMessage
	Rest    bool
}

func decodeParams(items []jsonParameter) ([]Parameter, error) {
	out := make([]Parameter, 0, len(items))
	for _, p := range items {
		def, err := decodeOptExpression(p.Default)
		if err != nil {
			return nil, err
		}
		out = append(out, Parameter{Name: p.Name, Type: p.Type, Default: def, Rest: p.Rest})
	}
	return out, nil
}

func decodeExpression(raw json.RawMessage) (Expression, error) {
	switch kindOf(raw) {
	case "Identifier":
		var n Identifier
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		return &n, nil

	case "Literal":
		var n Literal
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		return &n, nil

	case "BinaryExpr":
		var w struct {
			BaseNode
			Op          BinaryOp
			Left, Right json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		left, err := decodeExpression(w.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpression(w.Right)
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{BaseNode: w.BaseNode, Op: w.Op, Left: left, Right: right}, nil

	case "UnaryExpr":
		var w struct {
			BaseNode
			Op      UnaryOp
			Operand json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		operand, err := decodeExpression(w.Operand)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{BaseNode: w.BaseNode, Op: w.Op, Operand: operand}, nil

	case "AssignExpr":
		var w struct {
			BaseNode
			Op     string
			Target json.RawMessage
			Value  json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		target, err := decodeExpression(w.Target)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpression(w.Value)
		if err != nil {
			return nil, err
		}
		return &AssignExpr{BaseNode: w.BaseNode, Op: w.Op, Target: target, Value: value}, nil

	case "ConditionalExpr":
		var w struct {
			BaseNode
			Test, Then, Else json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		test, err := decodeExpression(w.Test)
		if err != nil {
			return nil, err
		}
		then, err := decodeExpression(w.Then)
		if err != nil {
			return nil, err
		}
		els, err := decodeExpression(w.Else)
		if err != nil {
			return nil, err
		}
		return &ConditionalExpr{BaseNode: w.BaseNode, Test: test, Then: then, Else: els}, nil

	case "CallExpr":
		var w struct {
			BaseNode
			Callee json.RawMessage
			Args   []json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		callee, err := decodeExpression(w.Callee)
		if err != nil {
			return nil, err
		}
		args, err := decodeExpressions(w.Args)
		if err != nil {
			return nil, err
		}
		return &CallExpr{BaseNode: w.BaseNode, Callee: callee, Args: args}, nil

	case "NewExpr":
		var w struct {
			BaseNode
			Callee json.RawMessage
			Args   []json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		callee, err := decodeExpression(w.Callee)
		if err != nil {
			return nil, err
		}
		args, err := decodeExpressions(w.Args)
		if err != nil {
			return nil, err
		}
		return &NewExpr{BaseNode: w.BaseNode, Callee: callee, Args: args}, nil

	case "MemberExpr":
		var w struct {
			BaseNode
			Object   json.RawMessage
			Property string
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		obj, err := decodeExpression(w.Object)
		if err != nil {
			return nil, err
		}
		return &MemberExpr{BaseNode: w.BaseNode, Object: obj, Property: w.Property}, nil

	case "IndexExpr":
		var w struct {
			BaseNode
			Object json.RawMessage
			Index  json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		obj, err := decodeExpression(w.Object)
		if err != nil {
			return nil, err
		}
		idx, err := decodeExpression(w.Index)
		if err != nil {
			return nil, err
		}
		return &IndexExpr{BaseNode: w.BaseNode, Object: obj, Index: idx}, nil

	case "SliceExpr":
		var w struct {
			BaseNode
			Object     json.RawMessage
			Start, End json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		obj, err := decodeExpression(w.Object)
		if err != nil {
			return nil, err
		}
		start, err := decodeOptExpression(w.Start)
		if err != nil {
			return nil, err
		}
		end, err := decodeOptExpression(w.End)
		if err != nil {
			return nil, err
		}
		return &SliceExpr{BaseNode: w.BaseNode, Object: obj, Start: start, End: end}, nil

	case "LambdaExpr":
		var w struct {
			BaseNode
			Params    []*Identifier
			ExprBody  json.RawMessage
			BlockBody []json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		exprBody, err := decodeOptExpression(w.ExprBody)
		if err != nil {
			return nil, err
		}
		blockBody, err := decodeStatements(w.BlockBody)
		if err != nil {
			return nil, err
		}
		if len(blockBody) == 0 {
			blockBody = nil
		}
		return &LambdaExpr{BaseNode: w.BaseNode, Params: w.Params, ExprBody: exprBody, BlockBody: blockBody}, nil

	case "ListLit":
		var w struct {
			BaseNode
			Elements []json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		elems, err := decodeExpressions(w.Elements)
		if err != nil {
			return nil, err
		}
		return &ListLit{BaseNode: w.BaseNode, Elements: elems}, nil

	case "DictLit":
		var w struct {
			BaseNode
			Entries []struct {
				Key   json.RawMessage
				Value json.RawMessage
			}
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		entries := make([]DictEntry, 0, len(w.Entries))
		for _, en := range w.Entries {
			key, err := decodeExpression(en.Key)
			if err != nil {
				return nil, err
			}
			val, err := decodeExpression(en.Value)
			if err != nil {
				return nil, err
			}
			entries = append(entries, DictEntry{Key: key, Value: val})
		}
		return &DictLit{BaseNode: w.BaseNode, Entries: entries}, nil

	case "SpreadExpr":
		var w struct {
			BaseNode
			Argument json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		arg, err := decodeExpression(w.Argument)
		if err != nil {
			return nil, err
		}
		return &SpreadExpr{BaseNode: w.BaseNode, Argument: arg}, nil

	case "TemplateLiteral":
		var w struct {
			BaseNode
			Parts []struct {
				Text string
				Expr json.RawMessage
			}
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		parts := make([]TemplatePart, 0, len(w.Parts))
		for _, p := range w.Parts {
			e, err := decodeOptExpression(p.Expr)
			if err != nil {
				return nil, err
			}
			parts = append(parts, TemplatePart{Text: p.Text, Expr: e})
		}
		return &TemplateLiteral{BaseNode: w.BaseNode, Parts: parts}, nil

	case "ArrayPattern":
		var w struct {
			BaseNode
			Elements []json.RawMessage
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		elems, err := decodeExpressions(w.Elements)
		if err != nil {
			return nil, err
		}
		return &ArrayPattern{BaseNode: w.BaseNode, Elements: elems}, nil

	case "ObjectPattern":
		var w struct {
			BaseNode
			Props []struct {
				Key   string
				Value json.RawMessage
			}
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		props := make([]ObjectPatternProp, 0, len(w.Props))
		for _, p := range w.Props {
			v, err := decodeExpression(p.Value)
			if err != nil {
				return nil, err
			}
			props = append(props, ObjectPatternProp{Key: p.Key, Value: v})
		}
		return &ObjectPattern{BaseNode: w.BaseNode, Props: props}, nil

	default:
		return nil, fmt.Errorf("unrecognized expression kind %q", kindOf(raw))
	}
}
