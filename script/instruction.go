// Package script implements the stack instruction language and its runners.
//
// A program is a sequence of instructions, one per line or separated by ';':
//
//	push <value>   place value on top of the stack
//	pop            remove and print the top
//	peek           print the top without removing it
//	size           print the number of elements
//	empty          print whether the stack is empty
//	clear          remove every element
//
// Blank lines and lines starting with '#' are ignored.
package script

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/stackq/stackq/util"
)

// Op is a stack operation name.
type Op string

const (
	OpPush  Op = "push"
	OpPop   Op = "pop"
	OpPeek  Op = "peek"
	OpSize  Op = "size"
	OpEmpty Op = "empty"
	OpClear Op = "clear"
)

// Ops lists every known operation.
var Ops = []Op{OpPush, OpPop, OpPeek, OpSize, OpEmpty, OpClear}

// maxSuggestionDistance bounds the edit distance of a suggestion that was not found by fuzzy matching.
const maxSuggestionDistance = 2

// Instruction is a single parsed operation.
type Instruction struct {
	Op  Op
	Arg string
}

func (i Instruction) String() string {
	if i.Arg == "" {
		return string(i.Op)
	}
	return string(i.Op) + " " + i.Arg
}

// SyntaxError describes an instruction that could not be parsed.
type SyntaxError struct {
	// Line is 1-based, 0 when the instruction did not come from a program.
	Line       int
	Text       string
	Msg        string
	Suggestion mo.Option[Op]
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	fmt.Fprintf(&b, "%s: %q", e.Msg, e.Text)
	if op, ok := e.Suggestion.Get(); ok {
		fmt.Fprintf(&b, ", did you mean %s?", op)
	}
	return b.String()
}

var instructionPattern = regexp.MustCompile(`^(?P<op>\S+)(?:\s+(?P<arg>.*))?$`)

// ParseLine parses a single instruction.
func ParseLine(text string) (Instruction, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Instruction{}, &SyntaxError{Text: text, Msg: "empty instruction"}
	}

	groups := util.ReGroups(instructionPattern, text)
	op := Op(strings.ToLower(groups["op"]))
	arg := strings.TrimSpace(groups["arg"])

	if !lo.Contains(Ops, op) {
		return Instruction{}, &SyntaxError{
			Text:       text,
			Msg:        "unknown operation",
			Suggestion: Suggest(string(op)),
		}
	}

	switch {
	case op == OpPush && arg == "":
		return Instruction{}, &SyntaxError{Text: text, Msg: "push requires a value"}
	case op != OpPush && arg != "":
		return Instruction{}, &SyntaxError{Text: text, Msg: fmt.Sprintf("%s takes no argument", op)}
	}

	return Instruction{Op: op, Arg: arg}, nil
}

// Parse reads a whole program. Parsing stops at the first invalid instruction.
func Parse(r io.Reader) ([]Instruction, error) {
	var (
		program []Instruction
		scanner = bufio.NewScanner(r)
		line    int
	)

	// Pushed values are unbounded, so lines may exceed the default token size.
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt32)

	for scanner.Scan() {
		line++
		for _, text := range strings.Split(scanner.Text(), ";") {
			text = strings.TrimSpace(text)
			if text == "" || strings.HasPrefix(text, "#") {
				continue
			}

			instruction, err := ParseLine(text)
			if err != nil {
				err.(*SyntaxError).Line = line
				return nil, err
			}
			program = append(program, instruction)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read program: %w", err)
	}

	return program, nil
}

// ParseString parses an inline program such as "push 1; push 2; pop".
func ParseString(src string) ([]Instruction, error) {
	return Parse(strings.NewReader(src))
}

// Suggest returns the known operation closest to op, if any is close enough.
func Suggest(op string) mo.Option[Op] {
	if op == "" {
		return mo.None[Op]()
	}

	names := lo.Map(Ops, func(o Op, _ int) string { return string(o) })

	if ranks := fuzzy.RankFindNormalizedFold(op, names); len(ranks) > 0 {
		sort.Sort(ranks)
		return mo.Some(Op(ranks[0].Target))
	}

	closest := lo.MinBy(names, func(a, b string) bool {
		return levenshtein.Distance(op, a) < levenshtein.Distance(op, b)
	})
	if levenshtein.Distance(op, closest) > maxSuggestionDistance {
		return mo.None[Op]()
	}
	return mo.Some(Op(closest))
}
