package preprocessor

import (
	"github.com/vsajip/lacc/internal/macro"
	"github.com/vsajip/lacc/internal/token"
)

// Expand accepts a token list and returns a new list in which every
// macro-invocation site reachable without violating the recursion guard
// has been expanded. A fast path short-circuits when nothing in list
// needs expanding, then the main pass walks list left to right, and
// expandMacro/readArgs handle each invocation site.
func (e *Engine) Expand(list token.List) token.List {
	if !e.needsExpansion(list) {
		return list
	}

	var out token.List
	i := 0
	for i < len(list) {
		t := list[i]
		def, isMacro := e.lookupIdent(t)

		if isMacro && !e.stack.Contains(def.Name) &&
			(def.Form != macro.FunctionLike || (i+1 < len(list) && list[i+1].Kind == token.LParen)) {

			ws := t.LeadingWS
			args, next := e.readArgs(list, i+1, def)
			r := e.expandMacro(def, args)
			if len(r) > 0 {
				r[0].LeadingWS = ws
			}
			out = token.Concat(out, r)
			i = next
			continue
		}

		out = token.Append(out, t)
		i++
	}
	return out
}

// lookupIdent returns the macro (if any) bound to t, when t is an
// identifier. Non-identifier tokens never name a macro.
func (e *Engine) lookupIdent(t token.Token) (macro.Macro, bool) {
	if t.Kind != token.Identifier {
		return macro.Macro{}, false
	}
	return e.Definition(t.Spelling)
}

// needsExpansion reports whether any token in list is bound to a macro
// that isn't already blocked by the recursion guard — the fast path that
// lets Expand return its input unchanged, allocation-free, when there is
// nothing to do.
func (e *Engine) needsExpansion(list token.List) bool {
	for _, t := range list {
		def, ok := e.lookupIdent(t)
		if ok && !e.stack.Contains(def.Name) {
			return true
		}
	}
	return false
}

// readArgs reads a function-like macro's argument list starting right
// after the invocation's macro-name token (pos points at what should be
// '('), or does nothing for an object-like macro. It returns the argument
// token sequences and the index of the first token after the invocation.
func (e *Engine) readArgs(list token.List, pos int, def macro.Macro) ([]token.List, int) {
	if def.Form == macro.ObjectLike {
		return nil, pos
	}

	pos = e.expectAt(list, pos, token.LParen)
	args := make([]token.List, 0, def.Params)
	for n := 0; n < def.Params; n++ {
		var arg token.List
		arg, pos = e.readArg(list, pos)
		args = append(args, arg)
		if n < def.Params-1 {
			pos = e.expectAt(list, pos, token.Comma)
		}
	}
	pos = e.expectAt(list, pos, token.RParen)
	return args, pos
}

// readArg reads one argument, starting at pos (one past '(' or a prior
// ','), tracking parenthesis nesting so that MAX(foo(a), b)-style nested
// calls are handled correctly. The argument ends when nesting is zero and
// the next token is ',' or ')'.
func (e *Engine) readArg(list token.List, pos int) (token.List, int) {
	var arg token.List
	nesting := 0
	for {
		if pos >= len(list) {
			e.diag.Fatalf("unexpected end of input in macro expansion")
		}
		t := list[pos]
		if nesting == 0 && (t.Kind == token.Comma || t.Kind == token.RParen) {
			return arg, pos
		}
		switch t.Kind {
		case token.LParen:
			nesting++
		case token.RParen:
			nesting--
			if nesting < 0 {
				e.diag.Fatalf("negative nesting depth in macro argument")
			}
		}
		arg = token.Append(arg, t)
		pos++
	}
}

func (e *Engine) expectAt(list token.List, pos int, kind token.Kind) int {
	if pos >= len(list) || list[pos].Kind != kind {
		got := "end of input"
		if pos < len(list) {
			got = token.Spell(list[pos])
		}
		e.diag.Fatalf("expected %q, but got %q", kindSpelling(kind), got)
	}
	return pos + 1
}

func kindSpelling(k token.Kind) string {
	switch k {
	case token.LParen:
		return "("
	case token.RParen:
		return ")"
	case token.Comma:
		return ","
	default:
		return k.String()
	}
}

// expandMacro performs substitution of def's replacement list against
// args, applies '##' folding, and recursively expands the result. The
// expansion stack guards the entire operation, including the recursive
// Expand at the end, so a self-reference introduced by substitution is
// caught.
func (e *Engine) expandMacro(def macro.Macro, args []token.List) token.List {
	e.stack.Push(def.Name)
	defer e.stack.Pop()

	var res token.List
	body := def.Replacement
	for i := 0; i < len(body); i++ {
		t := body[i]

		if t.Kind == token.Param {
			res = token.Concat(res, e.Expand(token.Copy(args[t.Payload])))
			continue
		}

		if t.Kind == token.Hash && i+1 < len(body) && body[i+1].Kind == token.Param {
			res = token.Append(res, e.Stringify(args[body[i+1].Payload]))
			i++
			continue
		}

		res = token.Append(res, t)
	}

	res = e.expandPasteOperators(res)
	return e.Expand(res)
}
