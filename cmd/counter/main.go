// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/counter/account"
	"github.com/ezrec/counter/genesis"
	"github.com/ezrec/counter/program"
)

func main() {
	var genesisFile string
	var script string
	var target string
	var output string
	var load string
	var dump string
	var metrics bool
	var verbose bool

	flag.StringVar(&genesisFile, "g", "", "Genesis .yaml file with the account table")
	flag.StringVar(&script, "c", "-", ".uc instruction file to run")
	flag.StringVar(&target, "k", "", "Target account (default: first genesis account)")
	flag.StringVar(&output, "o", "", "Save account table to .yaml file")
	flag.StringVar(&load, "i", "", "Load target account data from raw file before the run")
	flag.StringVar(&dump, "d", "", "Dump target account data to raw file after the run")
	flag.BoolVar(&metrics, "m", false, "Dump metrics after the run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(genesisFile) == 0 {
		log.Fatalf("%v: -g genesis file required", os.Args[0])
	}

	inf, err := os.Open(genesisFile)
	if err != nil {
		log.Fatalf("%v: %v", genesisFile, err)
	}
	gen, err := genesis.Load(inf)
	inf.Close()
	if err != nil {
		log.Fatalf("%v: %v", genesisFile, err)
	}

	rt, err := gen.Apply()
	if err != nil {
		log.Fatalf("%v: %v", genesisFile, err)
	}
	rt.Verbose = verbose

	var key account.Pubkey
	switch {
	case len(target) != 0:
		key, err = account.ParsePubkey(target)
		if err != nil {
			log.Fatalf("%v: %v", target, err)
		}
	case len(gen.Accounts) != 0:
		key = *gen.Accounts[0].Key
	default:
		log.Fatalf("%v: no accounts", genesisFile)
	}

	if len(load) != 0 {
		inf, err := os.Open(load)
		if err != nil {
			log.Fatalf("%v: %v", load, err)
		}
		err = rt.LoadData(key, inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", load, err)
		}
	}

	asm := &program.Assembler{Verbose: verbose}
	for equ, value := range rt.Defines(key) {
		asm.Predefine(equ, value)
	}

	var input io.Reader = os.Stdin
	if script != "-" {
		inf, err := os.Open(script)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
		defer inf.Close()
		input = inf
	}

	prog, err := asm.Parse(input)
	if err != nil {
		log.Fatalf("%v: %v", script, err)
	}

	err = rt.Run(key, prog)

	for _, line := range rt.Logs() {
		fmt.Println(line)
	}

	if metrics {
		merr := rt.Metrics.WriteText(os.Stdout)
		if merr != nil {
			log.Printf("metrics: %v", merr)
		}
	}

	if err != nil {
		log.Fatal(err)
	}

	if len(dump) != 0 {
		ouf, err := os.Create(dump)
		if err != nil {
			log.Fatalf("%v: %v", dump, err)
		}
		err = rt.DumpData(key, ouf)
		if err == nil {
			err = ouf.Close()
		} else {
			ouf.Close()
		}
		if err != nil {
			log.Fatalf("%v: %v", dump, err)
		}
	}

	if len(output) != 0 {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()

		err = genesis.Snapshot(rt).Save(ouf)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}
}
