package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/dan-zheng/Lotsawa/cfg"
	"github.com/dan-zheng/Lotsawa/cfg/marpa"
	"github.com/dan-zheng/Lotsawa/cfg/scanner"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// tracer traces with key 'lotsawa.repl'.
func tracer() tracing.Trace {
	return tracing.Select("lotsawa.repl")
}

// We provide a simple expression grammar as a default for recognizer
// experiments.
//
//	Expr   ➞ Expr SumOp Term  |  Term
//	Term   ➞ Term ProdOp Factor  |  Factor
//	Factor ➞ number  |  ( Expr )
//	SumOp  ➞ +  |  -
//	ProdOp ➞ *  |  /
//
func makeExprGrammar() (*cfg.GrammarAnalysis, string) {
	b := cfg.NewGrammarBuilder("Expressions")
	b.LHS("Expr").N("Expr").N("SumOp").N("Term").End()
	b.LHS("Expr").N("Term").End()
	b.LHS("Term").N("Term").N("ProdOp").N("Factor").End()
	b.LHS("Term").N("Factor").End()
	b.LHS("Factor").T("number", int(scanner.Int)).End()
	b.LHS("Factor").T("(", '(').N("Expr").T(")", ')').End()
	b.LHS("SumOp").T("+", '+').End()
	b.LHS("SumOp").T("-", '-').End()
	b.LHS("ProdOp").T("*", '*').End()
	b.LHS("ProdOp").T("/", '/').End()
	g, err := b.Grammar()
	if err != nil {
		panic(fmt.Errorf("error creating grammar: %s", err.Error()))
	}
	return cfg.Analysis(g), "Expr"
}

// A right-recursive list grammar, useful for watching Leo items appear in
// the chart.
//
//	List ➞ number  |  number , List
//
func makeListGrammar() (*cfg.GrammarAnalysis, string) {
	b := cfg.NewGrammarBuilder("List")
	b.LHS("List").T("number", int(scanner.Int)).End()
	b.LHS("List").T("number", int(scanner.Int)).T(",", ',').N("List").End()
	g, err := b.Grammar()
	if err != nil {
		panic(fmt.Errorf("error creating grammar: %s", err.Error()))
	}
	return cfg.Analysis(g), "List"
}

// main() starts an interactive CLI, where users may enter input strings for
// a demo grammar. The input is tokenized and handed to the MARPA recognizer;
// the resulting verdict and chart may be inspected. The CLI is intended as a
// sandbox for experiments during grammar development.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	gname := flag.String("grammar", "expr", "Demo grammar [expr|list]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to the Lotsawa recognizer sandbox")
	//
	var ga *cfg.GrammarAnalysis
	var start string
	switch *gname {
	case "list":
		ga, start = makeListGrammar()
	default:
		ga, start = makeExprGrammar()
	}
	ga.Grammar().Dump() // only visible in debug mode
	tracer().Infof("Grammar %s (%s), start symbol %s",
		ga.Grammar().Name, ga.Grammar().Hash()[:8], start)
	//
	repl, err := readline.New("lotsawa> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		rec:   marpa.NewRecognizer(ga),
		start: start,
		repl:  repl,
	}
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	rec       *marpa.Recognizer
	start     string
	lastInput string
	repl      *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval processes a command or recognizes an input line.
func (intp *Intp) Eval(line string) (bool, error) {
	switch {
	case line == ":quit":
		return true, nil
	case line == ":chart":
		if intp.lastInput == "" {
			return false, fmt.Errorf("no input recognized yet")
		}
		pterm.Println(intp.rec.ChartString())
		return false, nil
	case line == ":grammar":
		intp.printGrammar()
		return false, nil
	case strings.HasPrefix(line, ":trace"):
		arg := strings.TrimSpace(strings.TrimPrefix(line, ":trace"))
		tracer().SetTraceLevel(tracing.TraceLevelFromString(arg))
		return false, nil
	case strings.HasPrefix(line, ":"):
		return false, fmt.Errorf("unknown command %q", line)
	}
	sc := scanner.GoTokenizer("repl", strings.NewReader(line))
	accept, err := intp.rec.RecognizeTokens(sc, intp.start)
	if err != nil {
		return false, err
	}
	intp.lastInput = line
	if accept {
		pterm.Info.Printf("accepted %q as %s\n", line, intp.start)
	} else {
		pterm.Error.Printf("rejected %q\n", line)
	}
	return false, nil
}

// printGrammar renders the demo grammar's rules as a tree.
func (intp *Intp) printGrammar() {
	g := intp.rec.Grammar()
	ll := pterm.LeveledList{pterm.LeveledListItem{Level: 0, Text: g.Name}}
	for i := 0; i < g.Size(); i++ {
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: g.Rule(i).String()})
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}
