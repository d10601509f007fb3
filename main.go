package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hlmerscher/bfc/iokind"
	"github.com/hlmerscher/bfc/logger"
	"github.com/hlmerscher/bfc/onerror"
	"github.com/hlmerscher/bfc/reader"
)

const version = "0.3.0"

var (
	app = kingpin.New("bfc", "Interpreter and native compiler for brainfuck programs.")

	flagVerbose = app.Flag("verbose", "Log every stage of the pipeline.").Short('v').Bool()
	flagLogFile = app.Flag("log-file", "Also write JSON logs to this file.").String()

	compileCmd    = app.Command("compile", "Compile the program")
	compileFile   = compileCmd.Arg("file", "The file to compile").Required().String()
	compileOutput = compileCmd.Flag("output", "The file to write the compiled program to").Short('o').String()
	compileIO     = compileCmd.Flag("io", "How to handle input and output").Default("std").Enum(iokind.Names(true)...)
	compileAsm    = compileCmd.Flag("asm", "Write the generated assembly instead of an executable").Short('S').Bool()

	interpretCmd  = app.Command("interpret", "Interpret the program")
	interpretFile = interpretCmd.Arg("file", "The file to interpret").Required().String()
	interpretIO   = interpretCmd.Flag("io", "How to handle input and output").Default("std").Enum(iokind.Names(false)...)
)

func main() {
	app.Version(version)
	app.HelpFlag.Short('h')
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger.Toggle(*flagVerbose)
	closeLog, err := logger.Setup(os.Stderr, *flagLogFile)
	onErrorf("error opening log file\n", err)

	switch command {
	case compileCmd.FullCommand():
		err = compileProgram(*compileFile, *compileOutput, *compileIO, *compileAsm)
	case interpretCmd.FullCommand():
		err = interpretProgram(*interpretFile, *interpretIO)
	}
	closeErr := closeLogFile(closeLog)

	if errors.Is(err, reader.ErrInterrupted) {
		onerror.Exit(130)
	}
	onError(err)
	onError(closeErr)
}

func closeLogFile(closeLog func() error) error {
	if err := closeLog(); err != nil {
		return fmt.Errorf("error closing log file\n%w", err)
	}
	return nil
}

func onError(err error) {
	onerror.Log(err)
}

func onErrorf(msg string, err error) {
	onerror.Logf(msg, err)
}
