// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package program

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Statement is a line of assembled source with its generated instruction.
type Statement struct {
	LineNo      int
	Words       []string
	Instruction Instruction
}

// Script is an assembled sequence of instructions.
type Script struct {
	Statements []Statement
}

// Instructions iterates over the script's instructions.
func (script *Script) Instructions() iter.Seq[Instruction] {
	return func(yield func(in Instruction) bool) {
		for _, st := range script.Statements {
			if !yield(st.Instruction) {
				return
			}
		}
	}
}

// Payloads iterates over the encoded instructions, keyed by source line.
func (script *Script) Payloads() iter.Seq2[int, []byte] {
	return func(yield func(lineno int, data []byte) bool) {
		for _, st := range script.Statements {
			if !yield(st.LineNo, st.Instruction.Marshal()) {
				return
			}
		}
	}
}

// opMap is a map of mnemonics to instruction kinds.
var opMap = map[string]InstructionKind{
	"increment": INSTRUCTION_INCREMENT,
	"inc":       INSTRUCTION_INCREMENT,
	"decrement": INSTRUCTION_DECREMENT,
	"dec":       INSTRUCTION_DECREMENT,
}

// Assembler is a single pass assembler for counter instructions.
type Assembler struct {
	Verbose    bool        // If set, verbosely logs the assembler actions.
	Statements []Statement // List of generated statements.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
// Negative values wrap to their 32-bit two's complement.
func (asm *Assembler) valueOf(word string) (value uint32, err error) {
	if len(word) == 0 {
		err = ErrParseNumber(word)
		return
	}

	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
		if len(word) == 0 {
			err = ErrParseNumber("~")
			return
		}
	}

	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil || v64 > 0xffffffff || v64 < -int64(0x80000000) {
		err = ErrParseNumber(word)
		return
	}

	value = uint32(v64)

	if invert {
		value = ^value
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value32 uint32
		value32, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			err = nil
			continue
		}
		pred[key] = starlark.MakeUint64(uint64(value32))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 > 0xffffffff || st_int64 < -int64(0x80000000) {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}

// parseLine expands a single line into words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#x", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		value := words[2]
		equate, ok := asm.Equate[value]
		if ok {
			value = equate
		}
		asm.Equate[words[1]] = value
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// parseWords generates the statement for an expanded line.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	if len(words) == 0 {
		return
	}

	kind, ok := opMap[strings.ToLower(words[0])]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	switch {
	case len(words) < 2:
		err = ErrOpcodeValueMissing
		return
	case len(words) > 2:
		err = ErrOpcodeExtraArgs
		return
	}

	amount, err := asm.valueOf(words[1])
	if err != nil {
		return
	}

	asm.Statements = append(asm.Statements, Statement{
		LineNo:      lineno,
		Words:       words,
		Instruction: Instruction{Kind: kind, Amount: amount},
	})

	return
}

// Parse parses an input stream into a Script.
func (asm *Assembler) Parse(input io.Reader) (script *Script, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Statements = nil
	asm.Equate = maps.Collect(Defines())
	asm.Equate["LINENO"] = "0"
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(strings.ReplaceAll(text_comment[0], "\t", " "))

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	script = &Script{Statements: asm.Statements}

	return
}
