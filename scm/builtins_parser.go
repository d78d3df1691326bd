/*
Copyright (C) 2026  The goscm Authors

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import (
	"fmt"

	packrat "github.com/launix-de/go-packrat/v2"
)

// schemeParser wraps a compiled packrat grammar together with the
// generator expression that turns a parse into a Scmer.
type schemeParser struct {
	root      packrat.Parser
	generator Expr // nil when absent: the raw match is returned
}

func (p *schemeParser) Match(s *packrat.Scanner) *packrat.Node {
	m := p.root.Match(s)
	if m == nil {
		return nil
	}
	return &packrat.Node{Matched: m.Matched, Start: m.Start, Parser: p, Children: []*packrat.Node{m}}
}

// scmParserVariable captures a named subparse so the generator clause can
// read it back out of the environment it runs in.
type scmParserVariable struct {
	parser   packrat.Parser
	variable Symbol
}

func (v *scmParserVariable) Match(s *packrat.Scanner) *packrat.Node {
	m := v.parser.Match(s)
	if m == nil {
		return nil
	}
	return &packrat.Node{Matched: m.Matched, Start: m.Start, Parser: v, Children: []*packrat.Node{m}}
}

func bindParserVars(node *packrat.Node, env *Env) {
	if extractor, ok := node.Parser.(*scmParserVariable); ok {
		env.Define(extractor.variable, extractParsed(node.Children[0], env))
		return
	}
	if _, ok := node.Parser.(*schemeParser); ok {
		return // nested (parser ...) owns its own variable scope
	}
	for _, child := range node.Children {
		bindParserVars(child, env)
	}
}

// extractParsed turns a packrat.Node into a Scmer: a generator's result
// for a (parser ...) node, lists for repetition combinators, the inner
// value for transparent wrappers, and the matched text otherwise.
func extractParsed(n *packrat.Node, env *Env) Scmer {
	switch parser := n.Parser.(type) {
	case *schemeParser:
		if parser.generator == nil {
			return extractParsed(n.Children[0], env)
		}
		child := NewChildEnv(env)
		bindParserVars(n.Children[0], child)
		return Force(parser.generator(child))
	case *packrat.OrParser:
		return extractParsed(n.Children[0], env)
	case *packrat.KleeneParser, *packrat.ManyParser:
		items := make([]Scmer, 0, len(n.Children)/2+1)
		for i := 0; i < len(n.Children); i += 2 {
			items = append(items, extractParsed(n.Children[i], env))
		}
		return SliceToList(items)
	case *packrat.MaybeParser:
		if len(n.Children) > 0 {
			return extractParsed(n.Children[0], env)
		}
		return Nil
	}
	return NewString(n.Matched)
}

// parseSyntax compiles one syntax form into a packrat.Parser. syntax is a
// Scmer as read from source: a string literal, a symbol reference (to a
// parser bound in env, or the special $/empty forms), or a pair-headed
// combinator form matching the grammar (list ...)/(or ...)/(* ...)/(+
// ...)/(? ...)/(atom ...)/(regex ...)/(define ...).
func parseSyntax(ip *Interpreter, syntax Scmer, env *Env) packrat.Parser {
	switch {
	case syntax.IsString():
		return packrat.NewAtomParser(syntax.Str(), false, true)
	case syntax.IsSymbol():
		sym := syntax.Symbol()
		if sym == "$" {
			return packrat.NewEndParser(true)
		}
		if sym == "empty" {
			return packrat.NewEmptyParser()
		}
		v := env.Lookup(sym)
		if !v.IsParser() {
			panic(newEvalError("parser: variable is not a parser: " + string(sym)))
		}
		return v.Parser()
	case syntax.IsPair():
		items := ListToSlice(syntax)
		head, ok := HeadSymbol(syntax)
		if !ok {
			panic(newEvalError("invalid parser form"))
		}
		switch head {
		case "parser":
			generator := Nil
			if len(items) > 2 {
				generator = items[2]
			}
			return buildParser(ip, items[1], generator, env).root
		case "atom":
			ci, skip := parserFlags(items, 2)
			return packrat.NewAtomParser(items[1].Str(), ci, skip)
		case "regex":
			ci, skip := parserFlags(items, 2)
			return packrat.NewRegexParser(items[1].Str(), ci, skip)
		case "list":
			return packrat.NewAndParser(parseSyntaxSlice(ip, items[1:], env)...)
		case "or":
			return packrat.NewOrParser(parseSyntaxSlice(ip, items[1:], env)...)
		case "*", "+":
			sub := parseSyntax(ip, items[1], env)
			sep := packrat.Parser(packrat.NewEmptyParser())
			if len(items) > 2 {
				sep = parseSyntax(ip, items[2], env)
			}
			return packrat.NewKleeneParser(sub, sep)
		case "?":
			if len(items) == 2 {
				return packrat.NewMaybeParser(parseSyntax(ip, items[1], env))
			}
			return packrat.NewMaybeParser(packrat.NewAndParser(parseSyntaxSlice(ip, items[1:], env)...))
		case "define":
			return &scmParserVariable{
				variable: items[1].Symbol(),
				parser:   parseSyntax(ip, items[2], env),
			}
		}
	}
	panic(newEvalError(fmt.Sprintf("unknown parser syntax: %s", Display(syntax))))
}

func parserFlags(items []Scmer, from int) (caseInsensitive, skipWhitespace bool) {
	skipWhitespace = true
	if len(items) > from {
		caseInsensitive = items[from].Truthy()
	}
	if len(items) > from+1 {
		skipWhitespace = items[from+1].Truthy()
	}
	return
}

func parseSyntaxSlice(ip *Interpreter, items []Scmer, env *Env) []packrat.Parser {
	out := make([]packrat.Parser, len(items))
	for i, it := range items {
		out[i] = parseSyntax(ip, it, env)
	}
	return out
}

// buildParser compiles syntax and, when present, the generator expression
// (once, against env, in tail position so a trailing call stays flat)
// into a schemeParser.
func buildParser(ip *Interpreter, syntax, generator Scmer, env *Env) *schemeParser {
	p := &schemeParser{}
	p.root = parseSyntax(ip, syntax, env)
	if !generator.IsNil() {
		p.generator = ip.analyzeExpanded(generator, true)
	}
	return p
}

func (p *schemeParser) run(env *Env, input string) Scmer {
	scanner := packrat.NewScanner(input, packrat.SkipWhitespaceAndCommentsRegex)
	node, err := packrat.Parse(p, scanner)
	if err != nil {
		panic(newEvalError("parse error: " + err.Error()))
	}
	return extractParsed(node, env)
}

func installParserBuiltins(ip *Interpreter) {
	Declare(ip, &Declaration{"parser", "compiles a packrat grammar into a parser value", 1, 2,
		[]DeclarationParameter{
			{"syntax", "any", "grammar: string literal, symbol reference, or a (list|or|*|+|?|atom|regex|define ...) form"},
			{"generator", "any", "optional expression evaluated with captured (define ...) variables in scope"},
		}, "parser",
		func(args []Scmer) Scmer {
			generator := Nil
			if len(args) == 2 {
				generator = args[1]
			}
			return newParserValue(buildParser(ip, args[0], generator, ip.Global))
		}})

	Declare(ip, &Declaration{"parse", "runs a compiled parser against a string", 2, 2,
		[]DeclarationParameter{{"p", "parser", "value built by (parser ...)"}, {"str", "string", "input text"}}, "any",
		func(args []Scmer) Scmer { return args[0].Parser().run(ip.Global, args[1].Str()) }})

	Declare(ip, &Declaration{"parser?", "true iff the value is a compiled parser", 1, 1,
		[]DeclarationParameter{{"v", "any", "value"}}, "boolean",
		func(args []Scmer) Scmer { return NewBool(args[0].IsParser()) }})
}
