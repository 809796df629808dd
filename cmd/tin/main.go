package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/tin/document"
	"github.com/lixenwraith/tin/editor"
	"github.com/lixenwraith/tin/parameter"
	"github.com/lixenwraith/tin/terminal"
)

var (
	debugFlag   = flag.Bool("debug", false, "Write a debug log to "+logDir+"/"+logFileName)
	versionFlag = flag.Bool("version", false, "Print version and exit")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the editor crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\n\x1b[31mTIN CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: tin [-debug] [-version] [path]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *versionFlag {
		fmt.Printf("tin %s\n", parameter.Version)
		return
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if code := run(flag.Arg(0)); code != 0 {
		os.Exit(code)
	}
}

// run owns the terminal session; every return path restores the terminal
func run(path string) int {
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	session := terminal.NewSession()
	if err := session.Enter(); err != nil {
		fmt.Fprintf(os.Stderr, "tin: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer session.Exit()

	var (
		doc     *document.Document
		openErr error
	)
	if path != "" {
		doc, openErr = document.Open(path)
	}

	ed := editor.New(session, doc)
	if openErr != nil {
		ed.SetStatus("%v", openErr)
	}

	if err := ed.Run(); err != nil {
		// Restore before printing so the message lands on the normal screen
		session.Exit()
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "tin: %v\n", err)
		return 1
	}
	return 0
}
