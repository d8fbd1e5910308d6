// Package buildutil provides utilities for extracting attributes from
// buildtools AST nodes.
//
// The Starlark manifest decoder uses these helpers to read api(...) calls
// without caring about argument order.
package buildutil

import (
	"fmt"
	"strconv"

	"github.com/bazelbuild/buildtools/build"
)

// Attr returns the right-hand side of the keyword argument name.
func Attr(call *build.CallExpr, name string) (build.Expr, bool) {
	for _, arg := range call.List {
		assign, ok := arg.(*build.AssignExpr)
		if !ok {
			continue
		}
		lhs, ok := assign.LHS.(*build.Ident)
		if !ok || lhs.Name != name {
			continue
		}
		return assign.RHS, true
	}
	return nil, false
}

// Has reports whether the call sets the keyword argument name.
func Has(call *build.CallExpr, name string) bool {
	_, ok := Attr(call, name)
	return ok
}

// String extracts a string attribute from a function call by name.
// If name is empty and the call has positional arguments, returns the first
// positional string argument.
// Returns empty string if the attribute is not found or not a string.
func String(call *build.CallExpr, name string) string {
	if name == "" && len(call.List) > 0 {
		if str, ok := call.List[0].(*build.StringExpr); ok {
			return str.Value
		}
		return ""
	}

	rhs, ok := Attr(call, name)
	if !ok {
		return ""
	}
	if str, ok := rhs.(*build.StringExpr); ok {
		return str.Value
	}
	return ""
}

// Uint extracts a non-negative integer attribute from a function call by name.
// The boolean is false when the attribute is absent; an error is returned
// when it is present but not a non-negative integer literal.
func Uint(call *build.CallExpr, name string) (uint64, bool, error) {
	rhs, ok := Attr(call, name)
	if !ok {
		return 0, false, nil
	}
	lit, ok := rhs.(*build.LiteralExpr)
	if !ok {
		return 0, true, fmt.Errorf("attribute %q must be a non-negative integer literal", name)
	}
	val, err := strconv.ParseUint(lit.Token, 10, 64)
	if err != nil {
		return 0, true, fmt.Errorf("attribute %q: %q is not a non-negative integer", name, lit.Token)
	}
	return val, true, nil
}

// StringList extracts a list of strings attribute from a function call by name.
// Returns nil if the attribute is not found or not a list.
// Non-string elements in the list are silently skipped.
func StringList(call *build.CallExpr, name string) []string {
	rhs, ok := Attr(call, name)
	if !ok {
		return nil
	}
	list, ok := rhs.(*build.ListExpr)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(list.List))
	for _, elem := range list.List {
		if str, ok := elem.(*build.StringExpr); ok {
			result = append(result, str.Value)
		}
	}
	return result
}

// PositionalStrings returns all positional string arguments from a call,
// optionally skipping the first n arguments.
func PositionalStrings(call *build.CallExpr, skip int) []string {
	var result []string
	for i, arg := range call.List {
		if i < skip {
			continue
		}
		if _, ok := arg.(*build.AssignExpr); ok {
			continue
		}
		if str, ok := arg.(*build.StringExpr); ok {
			result = append(result, str.Value)
		}
	}
	return result
}

// FuncName returns the function name from a CallExpr.
// Returns empty string if the call is not a simple function call
// (e.g., method calls like foo.bar()).
func FuncName(call *build.CallExpr) string {
	if ident, ok := call.X.(*build.Ident); ok {
		return ident.Name
	}
	return ""
}

// Line returns the 1-based line on which the call starts.
func Line(call *build.CallExpr) int {
	start, _ := call.Span()
	return start.Line
}
