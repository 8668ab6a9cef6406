package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/isi-vista/immutable/iset"
	"github.com/isi-vista/immutable/setexpr"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// main() starts an interactive CLI ("IC.REPL"), where users may enter set
// expressions. IC.REPL evaluates each line and prints the result. It is
// intended as a sandbox for getting a feel for the immutable set algebra;
// see package setexpr for the expression syntax.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to IC.REPL") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	repl, err := readline.New("icrepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl: repl,
		env:  setexpr.NewEnv(),
	}
	// a and b are pre-set for quick experiments
	intp.env.Def("a", iset.Of(1, 2, 3))
	intp.env.Def("b", iset.Of(3, 4))
	//
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// tracer traces with key 'immutable.lang'.
func tracer() tracing.Trace {
	return tracing.Select("immutable.lang")
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
	repl *readline.Instance
	env  *setexpr.Env
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
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
		if line == "vars" {
			intp.printVars()
			continue
		}
		if err := intp.Eval(line); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
	println("Good bye!")
}

// Eval evaluates a set expression, given on a line by itself. Contract
// violations from the collection layer arrive as panics and are rendered
// as ordinary errors.
func (intp *Intp) Eval(line string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	result, err := setexpr.Eval(line, intp.env)
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("%v", result))
	return nil
}

func (intp *Intp) printVars() {
	for _, name := range intp.env.Names() {
		set, _ := intp.env.Resolve(name)
		pterm.Println(fmt.Sprintf("%s = %v", name, set))
	}
}
