// Command yapl is a small demonstration driver for the yapl core
// interpreter. There is no lexical scanner or grammar-driven parser in this
// repository, so this binary exercises the AST construction API (ast.New*)
// directly, the same way a front end would after parsing source text, and
// shows the ambient stack (flag/log CLI, trace, config) wired together.
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"yapl/ast"
	"yapl/config"
	"yapl/interp"
	"yapl/trace"
)

func main() {
	configPath := flag.String("config", "", "Path to a yapl.yaml config file (optional)")
	traceEnabled := flag.Bool("trace", false, "Enable statement-level execution tracing")
	traceFilter := flag.String("trace-filter", "", "Trace filter glob patterns, comma-separated")
	demo := flag.String("demo", "counter", "Built-in demo program to run: counter, fizz, bool")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	if *traceEnabled {
		var filters []string
		if *traceFilter != "" {
			filters = strings.Split(*traceFilter, ",")
			for i := range filters {
				filters[i] = strings.TrimSpace(filters[i])
			}
		} else {
			filters = cfg.TraceFilters
		}
		trace.Init(true, filters, os.Stderr)
		log.Printf("Tracing enabled (filters: %v)", filters)
	} else {
		trace.Init(false, nil, nil)
	}

	program, ok := demoPrograms[*demo]
	if !ok {
		log.Fatalf("Unknown demo %q (known: counter, fizz, bool)", *demo)
	}

	log.Printf("yapl demo: %s (fingerprint %s)", *demo, trace.Fingerprint(program()))

	in := interp.NewWithConfig(cfg)
	in.Run(program())
}

var demoPrograms = map[string]func() ast.Stmt{
	"counter": demoCounter,
	"fizz":    demoFizz,
	"bool":    demoBool,
}

// demoCounter builds: for (i = 0; i < 3; i = i + 1) { yapping("%d\n", i); }
func demoCounter() ast.Stmt {
	var pos ast.Position

	init := ast.NewExprStmt(pos, ast.NewAssignment(pos, "i", ast.NewNumber(pos, 0), ast.Modifiers{}))
	cond := ast.NewBinaryOp(pos, ast.OpLt, ast.NewIdentifier(pos, "i"), ast.NewNumber(pos, 3), ast.Modifiers{}, ast.Modifiers{})
	incr := ast.NewExprStmt(pos, ast.NewAssignment(pos, "i",
		ast.NewBinaryOp(pos, ast.OpAdd, ast.NewIdentifier(pos, "i"), ast.NewNumber(pos, 1), ast.Modifiers{}, ast.Modifiers{}),
		ast.Modifiers{}))
	body := ast.NewExprStmt(pos, ast.NewFuncCall(pos, "yapping", []ast.Expr{
		ast.NewStringLiteral(pos, "%d\n"),
		ast.NewIdentifier(pos, "i"),
	}))

	return ast.NewFor(pos, init, cond, incr, body)
}

// demoFizz builds a switch/break program exercising fall-through.
func demoFizz() ast.Stmt {
	var pos ast.Position

	cases := ast.NewCase(pos, ast.NewNumber(pos, 1), []ast.Stmt{
		ast.NewExprStmt(pos, ast.NewFuncCall(pos, "yapping", []ast.Expr{ast.NewStringLiteral(pos, "a\n")})),
	})
	cases = ast.AppendCase(cases, ast.NewCase(pos, ast.NewNumber(pos, 2), []ast.Stmt{
		ast.NewExprStmt(pos, ast.NewFuncCall(pos, "yapping", []ast.Expr{ast.NewStringLiteral(pos, "b\n")})),
		ast.NewBreak(pos),
	}))
	cases = ast.AppendCase(cases, ast.NewCase(pos, ast.NewNumber(pos, 3), []ast.Stmt{
		ast.NewExprStmt(pos, ast.NewFuncCall(pos, "yapping", []ast.Expr{ast.NewStringLiteral(pos, "c\n")})),
	}))

	assign := ast.NewExprStmt(pos, ast.NewAssignment(pos, "x", ast.NewNumber(pos, 1), ast.Modifiers{}))
	sw := ast.NewSwitch(pos, ast.NewIdentifier(pos, "x"), cases)
	return ast.NewStatementList(pos, assign, sw)
}

// demoBool builds: b = true; yapping("val=%s", b);
func demoBool() ast.Stmt {
	var pos ast.Position
	assign := ast.NewExprStmt(pos, ast.NewAssignment(pos, "b", ast.NewBoolean(pos, true), ast.Modifiers{Boolean: true}))
	call := ast.NewExprStmt(pos, ast.NewFuncCall(pos, "yapping", []ast.Expr{
		ast.NewStringLiteral(pos, "val=%s"),
		ast.NewIdentifier(pos, "b"),
	}))
	return ast.NewStatementList(pos, assign, call)
}
