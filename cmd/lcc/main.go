// Command lcc is a thin CLI driver over the macro engine. It tokenizes
// one input file, applies any -D definitions and the standard built-ins,
// expands the result, and prints the token list. A full directive parser
// and compiler front end would sit in front of this, but are out of
// scope here.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/vsajip/lacc/internal/diag"
	"github.com/vsajip/lacc/internal/fatalerr"
	"github.com/vsajip/lacc/internal/lex"
	"github.com/vsajip/lacc/internal/macro"
	"github.com/vsajip/lacc/internal/preprocessor"
	"github.com/vsajip/lacc/internal/source"
	"github.com/vsajip/lacc/internal/strtab"
	"github.com/vsajip/lacc/internal/token"
)

// tokenizer adapts internal/lex to preprocessor.Tokenizer.
type tokenizer struct{}

func (tokenizer) Tokenize(input string) (token.List, bool) { return lex.Tokenize(input) }

func loadConfig(c *cli.Context) *viper.Viper {
	v := viper.New()
	v.SetDefault("log-level", "info")
	v.SetConfigName("lcc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("LCC")
	v.AutomaticEnv()
	_ = v.ReadInConfig() // absence of lcc.yaml is not an error

	if lvl := c.String("log-level"); lvl != "" {
		v.Set("log-level", lvl)
	}
	return v
}

func newLogger(v *viper.Viper) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	lvl, err := log.ParseLevel(v.GetString("log-level"))
	if err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

func run(c *cli.Context) (err error) {
	v := loadConfig(c)
	logger := newLogger(v)
	sink := diag.New(logger)

	defer func() {
		if r := recover(); r != nil {
			if fe, ok := r.(*fatalerr.Error); ok {
				err = fe
				return
			}
			panic(r)
		}
	}()

	inputPath := c.Args().First()
	if inputPath == "" {
		return cli.Exit("no input file specified", 1)
	}

	fs := afero.NewOsFs()
	src := source.New(fs, inputPath)
	text, ferr := src.ReadAll()
	if ferr != nil {
		return cli.Exit(ferr.Error(), 1)
	}

	strings_ := strtab.New()
	eng := preprocessor.New(tokenizer{}, src, strings_, sink)
	eng.RegisterBuiltins()

	for _, def := range c.StringSlice("define") {
		name, value, _ := strings.Cut(def, "=")
		if value == "" {
			value = "1"
		}
		repl, ok := tokenizer{}.Tokenize(value)
		if !ok {
			return cli.Exit(fmt.Sprintf("invalid -D value for %s", name), 1)
		}
		eng.Define(macro.Macro{Name: name, Form: macro.ObjectLike, Replacement: repl})
	}

	list, ok := tokenizer{}.Tokenize(text)
	if !ok {
		return cli.Exit("input did not tokenize completely", 1)
	}

	expanded := eng.Expand(list)
	if c.Bool("trace") {
		logger.Info("expanded", "tokens", preprocessor.PrintList(expanded))
	}
	for i, t := range expanded {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(token.Spell(t))
	}
	fmt.Println()
	return nil
}

func main() {
	app := &cli.App{
		Name:  "lcc",
		Usage: "expand C preprocessor macros in a single translation unit",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "define", Aliases: []string{"D"}, Usage: "predefine name[=value]"},
			&cli.BoolFlag{Name: "trace", Usage: "log the expanded token list"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn, error"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
