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

// Analyze compiles expr (already macro-expanded) into an Expr: a
// function from Frame to trampoline Result. Doing this once per body and
// evaluating many times amortizes the dispatch on the expression's shape.
// tail says whether expr sits in tail position; only
// applications analyzed with tail=true may return a Pending Result.
func Analyze(ip *Interpreter, expr Scmer, tail bool) Expr {
	switch expr.Kind() {
	case KindNumber, KindString, KindBoolean, KindNil:
		v := expr
		return func(env *Env) Result { return Done(v) }
	case KindSymbol:
		name := expr.Symbol()
		return func(env *Env) Result { return Done(env.Lookup(name)) }
	case KindPair:
		if head, ok := HeadSymbol(expr); ok {
			switch head {
			case "quote":
				v := expr.Cdr().Car()
				return func(env *Env) Result { return Done(v) }
			case "if":
				return analyzeIf(ip, expr, tail)
			case "and":
				return analyzeAnd(ip, expr, tail)
			case "or":
				return analyzeOr(ip, expr, tail)
			case "define":
				return analyzeDefine(ip, expr)
			case "set!":
				return analyzeSet(ip, expr)
			case "lambda":
				return analyzeLambda(ip, expr, "")
			case "define-macro":
				return analyzeDefineMacro(ip, expr)
			case "quasiquote":
				return analyzeQuasiquote(ip, expr.Cdr().Car())
			}
		}
		return analyzeApplication(ip, expr, tail)
	default:
		// Builtin/Closure/Thunk literals cannot occur in read source, but
		// if one is ever handed to Analyze directly, it evaluates to itself.
		v := expr
		return func(env *Env) Result { return Done(v) }
	}
}

// analyzeBody compiles a sequence of forms (a lambda or macro body, the
// alternative body of an if): every form but the last is forced for
// effect only; the last form's tail-ness is whatever the caller passed.
func analyzeBody(ip *Interpreter, forms []Scmer, tail bool) Expr {
	if len(forms) == 0 {
		return func(env *Env) Result { return Done(Nil) }
	}
	compiled := make([]Expr, len(forms))
	for i, f := range forms {
		t := false
		if i == len(forms)-1 {
			t = tail
		}
		compiled[i] = ip.analyzeExpanded(f, t)
	}
	return func(env *Env) Result {
		for i := 0; i < len(compiled)-1; i++ {
			Force(compiled[i](env))
		}
		return compiled[len(compiled)-1](env)
	}
}

func analyzeIf(ip *Interpreter, expr Scmer, tail bool) Expr {
	parts := ListToSlice(expr.Cdr())
	if len(parts) < 2 {
		panic(newEvalError("if: expected at least (if cond then)"))
	}
	cond := ip.analyzeExpanded(parts[0], false)
	then := ip.analyzeExpanded(parts[1], tail)
	var els Expr
	if len(parts) >= 3 {
		els = analyzeBody(ip, parts[2:], tail)
	} else {
		els = func(env *Env) Result { return Done(False) }
	}
	return func(env *Env) Result {
		if Force(cond(env)).Truthy() {
			return then(env)
		}
		return els(env)
	}
}

func analyzeAnd(ip *Interpreter, expr Scmer, tail bool) Expr {
	forms := ListToSlice(expr.Cdr())
	if len(forms) == 0 {
		return func(env *Env) Result { return Done(True) }
	}
	compiled := make([]Expr, len(forms))
	for i, f := range forms {
		t := false
		if i == len(forms)-1 {
			t = tail
		}
		compiled[i] = ip.analyzeExpanded(f, t)
	}
	return func(env *Env) Result {
		for i := 0; i < len(compiled)-1; i++ {
			if !Force(compiled[i](env)).Truthy() {
				return Done(False)
			}
		}
		return compiled[len(compiled)-1](env)
	}
}

func analyzeOr(ip *Interpreter, expr Scmer, tail bool) Expr {
	forms := ListToSlice(expr.Cdr())
	if len(forms) == 0 {
		return func(env *Env) Result { return Done(False) }
	}
	compiled := make([]Expr, len(forms))
	for i, f := range forms {
		t := false
		if i == len(forms)-1 {
			t = tail
		}
		compiled[i] = ip.analyzeExpanded(f, t)
	}
	return func(env *Env) Result {
		for i := 0; i < len(compiled)-1; i++ {
			v := Force(compiled[i](env))
			if v.Truthy() {
				return Done(v)
			}
		}
		return compiled[len(compiled)-1](env)
	}
}

// analyzeDefine handles both (define x v) and (define (f a...) body...).
// define always binds in the frame active when it runs -- no parent walk.
func analyzeDefine(ip *Interpreter, expr Scmer) Expr {
	target := expr.Cdr().Car()
	if target.IsSymbol() {
		name := target.Symbol()
		valueExpr := ip.analyzeExpanded(expr.Cdr().Cdr().Car(), false)
		return func(env *Env) Result {
			v := Force(valueExpr(env))
			env.Define(name, v)
			return Done(v)
		}
	}
	if !target.IsPair() {
		panic(newEvalError("define: expected a symbol or (name params...)"))
	}
	name := target.Car().Symbol()
	lambdaExpr := analyzeLambdaForm(ip, target.Cdr(), ListToSlice(expr.Cdr().Cdr()), string(name))
	return func(env *Env) Result {
		v := Force(lambdaExpr(env))
		env.Define(name, v)
		return Done(v)
	}
}

func analyzeSet(ip *Interpreter, expr Scmer) Expr {
	name := expr.Cdr().Car().Symbol()
	valueExpr := ip.analyzeExpanded(expr.Cdr().Cdr().Car(), false)
	return func(env *Env) Result {
		v := Force(valueExpr(env))
		env.Set(name, v)
		return Done(v)
	}
}

func analyzeLambda(ip *Interpreter, expr Scmer, name string) Expr {
	params := expr.Cdr().Car()
	body := ListToSlice(expr.Cdr().Cdr())
	return analyzeLambdaForm(ip, params, body, name)
}

func analyzeLambdaForm(ip *Interpreter, paramList Scmer, body []Scmer, name string) Expr {
	params, rest, hasRest := parseParamList(paramList)
	compiledBody := analyzeBody(ip, body, true)
	return func(env *Env) Result {
		c := &Closure{
			Params:  params,
			Rest:    rest,
			HasRest: hasRest,
			Body:    compiledBody,
			Env:     env,
			Name:    name,
		}
		return Done(NewClosure(c))
	}
}

// parseParamList walks a (possibly dotted, possibly Nil) parameter list.
func parseParamList(v Scmer) (params []string, rest string, hasRest bool) {
	for {
		switch {
		case v.IsNil():
			return
		case v.IsSymbol():
			rest = string(v.Symbol())
			hasRest = true
			return
		case v.IsPair():
			params = append(params, string(v.Car().Symbol()))
			v = v.Cdr()
		default:
			panic(newEvalError("lambda: malformed parameter list"))
		}
	}
}

func analyzeDefineMacro(ip *Interpreter, expr Scmer) Expr {
	target := expr.Cdr().Car()
	if !target.IsPair() {
		panic(newEvalError("define-macro: expected (define-macro (name params...) body...)"))
	}
	name := target.Car().Symbol()
	params, rest, hasRest := parseParamList(target.Cdr())
	body := ListToSlice(expr.Cdr().Cdr())
	compiledBody := analyzeBody(ip, body, true)
	// Registration happens now, at analysis (compile) time, so that the
	// very next top-level form's expansion pass sees the new macro --
	// exactly the sequencing a read/expand/analyze/eval REPL loop gives
	// you for free.
	transformer := &Closure{
		Params:  params,
		Rest:    rest,
		HasRest: hasRest,
		Body:    compiledBody,
		Env:     ip.Global,
		Name:    string(name),
	}
	ip.Macros.define(name, transformer)
	sym := NewSymbol(string(name))
	return func(env *Env) Result { return Done(sym) }
}

func analyzeApplication(ip *Interpreter, expr Scmer, tail bool) Expr {
	opExpr := ip.analyzeExpanded(expr.Car(), false)
	argForms := ListToSlice(expr.Cdr())
	argExprs := make([]Expr, len(argForms))
	for i, a := range argForms {
		argExprs[i] = ip.analyzeExpanded(a, false)
	}
	if tail {
		return func(env *Env) Result {
			proc := Force(opExpr(env))
			args := make([]Scmer, len(argExprs))
			for i, a := range argExprs {
				args[i] = Force(a(env))
			}
			return PendingStep(func() Result {
				return applyResult(proc, args)
			})
		}
	}
	return func(env *Env) Result {
		proc := Force(opExpr(env))
		args := make([]Scmer, len(argExprs))
		for i, a := range argExprs {
			args[i] = Force(a(env))
		}
		// Non-tail position: force the call to a value locally so Pending
		// never escapes to a caller that isn't itself returning in tail
		// position.
		return Done(Force(applyResult(proc, args)))
	}
}
