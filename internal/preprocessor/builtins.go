package preprocessor

import (
	"github.com/vsajip/lacc/internal/macro"
	"github.com/vsajip/lacc/internal/token"
)

// replacementFromTemplate is a tiny "@"-placeholder parser: it tokenizes
// literal text and turns every '@' into a Param(0) placeholder, adequate
// for single-parameter builtin bodies. There is no length assertion to
// keep in sync — the length is whatever tokenizing the literal text
// actually produces.
func (e *Engine) replacementFromTemplate(text string) token.List {
	var out token.List
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '@' {
			if i > start {
				list, ok := e.tok.Tokenize(text[start:i])
				if !ok {
					e.diag.Fatalf("invalid built-in replacement template %q", text)
				}
				out = token.Concat(out, list)
			}
			out = token.Append(out, token.ParamPlaceholder(0))
			start = i + 1
		}
	}
	if start < len(text) {
		list, ok := e.tok.Tokenize(text[start:])
		if !ok {
			e.diag.Fatalf("invalid built-in replacement template %q", text)
		}
		out = token.Concat(out, list)
	}
	return out
}

// objectMacro defines name as an object-like macro whose replacement is
// the tokenization of text (with '@' standing for a parameter reference,
// unused for object-like macros but kept for symmetry with function-like
// registration below).
func (e *Engine) objectMacro(name, text string) {
	e.Define(macro.Macro{
		Name:        name,
		Form:        macro.ObjectLike,
		Replacement: e.replacementFromTemplate(text),
	})
}

// RegisterBuiltins populates the table with the standard and
// implementation-defined predefined macros: __STDC__ and friends,
// __LINE__ and __FILE__ (dynamic in effect, though modeled as ordinary
// object macros patched by Definition/built at registration time
// respectively), and __builtin_va_end.
func (e *Engine) RegisterBuiltins() {
	e.objectMacro("__STDC_VERSION__", "199409L")
	e.objectMacro("__STDC__", "1")
	e.objectMacro("__STDC_HOSTED__", "1")
	e.objectMacro("__LINE__", "0")
	e.objectMacro("__x86_64__", "1")

	// For some reason this is not properly handled by musl.
	e.Define(macro.Macro{
		Name:        "__inline",
		Form:        macro.ObjectLike,
		Replacement: token.List{{Kind: token.Punct, Spelling: "", LeadingWS: 1}},
	})

	e.registerFile()
	e.registerBuiltinVaEnd()
}

func (e *Engine) registerFile() {
	quoted := e.strtab.Init(quote(e.source.CurrentFilePath()))
	e.Define(macro.Macro{
		Name:        "__FILE__",
		Form:        macro.ObjectLike,
		Replacement: token.List{token.StringLit(quoted)},
	})
}

// registerBuiltinVaEnd defines __builtin_va_end(ap) as its four
// zeroing-assignment statements. The statements are a data table, each
// expanded to tokens independently, so nothing needs to know or assert
// the total token count.
func (e *Engine) registerBuiltinVaEnd() {
	statements := []string{
		"@[0].gp_offset=0;",
		"@[0].fp_offset=0;",
		"@[0].overflow_arg_area=(void*)0;",
		"@[0].reg_save_area=(void*)0;",
	}

	var body token.List
	for _, stmt := range statements {
		body = token.Concat(body, e.replacementFromTemplate(stmt))
	}

	e.Define(macro.Macro{
		Name:        "__builtin_va_end",
		Form:        macro.FunctionLike,
		Params:      1,
		Replacement: body,
	})
}
