// Package ast holds the syntax tree produced by the parser.
//
// Expr and Stmt are closed sum types: every variant is declared in
// nodes.adt and carries an is_Expr or is_Stmt marker. Consumers switch on
// the concrete type and treat the default case as unreachable.
package ast

//go:generate sh -c "cd ../tool && go run . ../ast/nodes.adt ../ast/nodes.go ast"
