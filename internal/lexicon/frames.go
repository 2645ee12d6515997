package lexicon

import (
	"strconv"
	"strings"
)

// CommandKind identifies an imperative the host agent understands.
type CommandKind int

const (
	CommandRun CommandKind = iota
	CommandShow
	CommandStatus
	CommandHelp
	CommandQuit
)

func (k CommandKind) String() string {
	switch k {
	case CommandRun:
		return "run"
	case CommandShow:
		return "show"
	case CommandStatus:
		return "status"
	case CommandHelp:
		return "help"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is a matched imperative. Cycles is set only for run
// commands that carried a count ("run 5").
type Command struct {
	Kind   CommandKind
	Arg    string
	Cycles *int
}

// Goal is a matched goal directive ("learn about France").
type Goal struct {
	Verb string
	Text string
}

// QuestionFrame is the normalized form of an interrogative input.
type QuestionFrame struct {
	Kind         QuestionKind
	QuestionWord string   // surface interrogative, "" for bare yes/no
	Auxiliary    string   // auxiliary that followed it, if any
	Words        []string // content tokens after stripping
	Subject      string   // Words joined with single spaces
	Capability   bool     // asked with a capability modal
}

// ParseQuestionFrame recognizes a question and normalizes it down to
// its content words. A question is an input with a trailing question
// mark, a leading interrogative, or a leading auxiliary (yes/no
// inversion). Returns false for anything else.
func (l *Lexicon) ParseQuestionFrame(input string) (QuestionFrame, bool) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return QuestionFrame{}, false
	}

	hadMark := false
	for strings.HasSuffix(raw, "?") || strings.HasSuffix(raw, "!") {
		if strings.HasSuffix(raw, "?") {
			hadMark = true
		}
		raw = strings.TrimSpace(raw[:len(raw)-1])
	}
	raw = strings.TrimPrefix(raw, "¿")
	raw = strings.TrimPrefix(raw, "¡")

	tokens := splitLower(raw)
	if len(tokens) == 0 {
		return QuestionFrame{}, false
	}

	frame := QuestionFrame{Kind: QuestionNone}

	// Leading interrogative: two-token phrases ("por qué") win over
	// single words.
	if len(tokens) >= 2 {
		phrase := tokens[0] + " " + tokens[1]
		if kind, ok := l.questionPhrases[phrase]; ok {
			frame.Kind = kind
			frame.QuestionWord = phrase
			tokens = tokens[2:]
		}
	}
	if frame.Kind == QuestionNone {
		if kind, ok := l.questionWords[tokens[0]]; ok {
			frame.Kind = kind
			frame.QuestionWord = tokens[0]
			tokens = tokens[1:]
		}
	}

	// Yes/no inversion: a leading auxiliary with no interrogative.
	if frame.Kind == QuestionNone && l.IsAuxiliary(tokens[0]) {
		frame.Kind = QuestionYesNo
		frame.Auxiliary = tokens[0]
		if l.IsCapabilityModal(tokens[0]) {
			frame.Capability = true
		}
		tokens = tokens[1:]
	}

	if frame.Kind == QuestionNone {
		if !hadMark {
			return QuestionFrame{}, false
		}
		// Marked question with no recognizable interrogative.
		frame.Kind = QuestionYesNo
	}

	// Auxiliary after the interrogative ("what CAN you do").
	if frame.Auxiliary == "" && len(tokens) > 0 && l.IsAuxiliary(tokens[0]) {
		frame.Auxiliary = tokens[0]
		if l.IsCapabilityModal(tokens[0]) {
			frame.Capability = true
		}
		tokens = tokens[1:]
	}

	// Trailing auxiliary is dropped only when enough content remains
	// ("what can you do" keeps "you", "what can you" stays intact).
	if len(tokens) >= 2 && l.IsTrailingAuxiliary(tokens[len(tokens)-1]) {
		tokens = tokens[:len(tokens)-1]
	}

	// Leading article is dropped the same way ("the capital of France"
	// -> "capital of France").
	if len(tokens) >= 2 && l.IsArticle(tokens[0]) {
		tokens = tokens[1:]
	}

	frame.Words = tokens
	frame.Subject = strings.Join(tokens, " ")
	return frame, true
}

// MatchCommand matches imperatives against the command table.
// Run commands accept an optional trailing cycle count; show commands
// carry the rest of the input as a free-text argument.
func (l *Lexicon) MatchCommand(input string) (Command, bool) {
	tokens := splitLower(input)
	if len(tokens) == 0 {
		return Command{}, false
	}

	kind, ok := l.commands[tokens[0]]
	if !ok {
		return Command{}, false
	}

	cmd := Command{Kind: kind}
	rest := tokens[1:]

	switch kind {
	case CommandRun:
		if len(rest) > 1 {
			return Command{}, false // "run" takes at most a count
		}
		if len(rest) == 1 {
			n, err := strconv.Atoi(rest[0])
			if err != nil || n <= 0 {
				return Command{}, false
			}
			cmd.Cycles = &n
		}
	case CommandShow:
		if len(rest) == 0 {
			return Command{}, false // "show" needs a topic
		}
		cmd.Arg = strings.Join(rest, " ")
	default:
		if len(rest) > 0 {
			return Command{}, false // bare commands take no args
		}
	}

	return cmd, true
}

// MatchGoal matches goal directives ("learn about France"). The verb
// must open the input; connector words after it are stripped.
func (l *Lexicon) MatchGoal(input string) (Goal, bool) {
	tokens := splitLower(input)
	if len(tokens) < 2 {
		return Goal{}, false
	}

	if !l.goalVerbs[tokens[0]] {
		return Goal{}, false
	}

	goal := Goal{Verb: tokens[0]}
	rest := tokens[1:]
	for len(rest) > 0 && l.goalConnectors[rest[0]] {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return Goal{}, false
	}

	goal.Text = strings.Join(rest, " ")
	return goal, true
}

// splitLower splits on whitespace, lowercases, and trims clause-level
// punctuation from token edges. The full lexer handles scripts and
// spans; this lighter pass is enough for frame and command matching.
func splitLower(input string) []string {
	fields := strings.Fields(strings.ToLower(input))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:!?¿¡\"'()[]{}")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
