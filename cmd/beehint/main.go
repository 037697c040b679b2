// Command beehint prints Spelling Bee candidates and hints from the terminal.
//
//	beehint -center a -outer bcdefg            one hint
//	beehint -center a -outer bcdefg -words     candidate list
//	beehint -center a -outer bcdefg -hints 3   three hints
//	beehint                                    interactive prompt
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/beehint/internal/config"
	"github.com/robalobadob/beehint/internal/dictionary"
	"github.com/robalobadob/beehint/internal/hint"
	"github.com/robalobadob/beehint/internal/lexicon"
	"github.com/robalobadob/beehint/internal/puzzle"
	"github.com/robalobadob/beehint/internal/session"
)

const usageLetters = "Please enter a center letter and exactly 6 outer letters."

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	cfg.LogFormat = "console"
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.LogLevel = zerolog.WarnLevel.String()
	}
	cfg.SetupLogging(os.Stderr)

	if err := run(cfg, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("beehint", flag.ContinueOnError)
	center := fs.String("center", "", "center letter")
	outer := fs.String("outer", "", "six outer letters, no spaces")
	showWords := fs.Bool("words", false, "print every candidate instead of a hint")
	hints := fs.Int("hints", 1, "number of hints to print")
	lexPath := fs.String("lexicon", cfg.LexiconFile, "path to the word list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	lex, err := lexicon.Load(*lexPath)
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}
	log.Debug().Int("words", lex.Len()).Msg("lexicon loaded")

	gen := hint.New(
		dictionary.New(dictionary.WithBaseURL(cfg.DictionaryBaseURL)),
		hint.WithMaxAttempts(cfg.HintMaxAttempts),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *center == "" && *outer == "" {
		return interactive(ctx, lex, gen, in, out)
	}

	l, err := puzzle.Parse(*center, *outer)
	if err != nil {
		fmt.Fprintln(out, usageLetters)
		return err
	}
	cands := l.Candidates(lex)
	if *showWords {
		printWords(out, l, cands)
		return nil
	}
	for i := 0; i < *hints; i++ {
		if err := printHint(ctx, out, gen, cands); err != nil {
			return err
		}
	}
	return nil
}

// interactive runs the prompt loop: read letters, then print a hint
// for every empty line; entering new letters refilters the lexicon.
func interactive(ctx context.Context, lex lexicon.Lexicon, gen *hint.Generator, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	var st session.State
	var have bool

	prompt := func() { fmt.Fprint(out, "letters (center then 6 outer, empty = hint, q = quit)> ") }
	prompt()
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "q" || line == "quit":
			return nil
		case line == "":
			if !have {
				fmt.Fprintln(out, usageLetters)
				break
			}
			if err := printHint(ctx, out, gen, st.Candidates); err != nil {
				return err
			}
		default:
			fields := strings.Fields(line)
			var c, o string
			if len(fields) == 2 {
				c, o = fields[0], fields[1]
			} else if compact := strings.Join(fields, ""); len(compact) > 0 {
				c, o = compact[:1], compact[1:]
			}
			l, err := puzzle.Parse(c, o)
			if err != nil {
				fmt.Fprintln(out, usageLetters)
				break
			}
			cands, _ := st.Refresh(lex, l)
			have = true
			fmt.Fprintf(out, "Center letter: %s\n", l.CenterString())
			fmt.Fprintf(out, "Outer letters: %s\n", strings.Join(strings.Split(l.Outer, ""), ", "))
			fmt.Fprintf(out, "%d candidate words\n", len(cands))
		}
		prompt()
	}
	return sc.Err()
}

func printHint(ctx context.Context, out io.Writer, gen *hint.Generator, cands []string) error {
	text, err := gen.Give(ctx, cands)
	if err != nil && !errors.Is(err, hint.ErrNoValidWord) {
		return err
	}
	fmt.Fprintf(out, "Hint: %s\n", text)
	return nil
}

func printWords(out io.Writer, l puzzle.Letters, cands []string) {
	pangrams := make(map[string]bool)
	for _, w := range l.Pangrams(cands) {
		pangrams[w] = true
	}
	for _, w := range cands {
		if pangrams[w] {
			fmt.Fprintf(out, "%s *\n", w)
			continue
		}
		fmt.Fprintln(out, w)
	}
	fmt.Fprintf(out, "%d words, %d pangrams\n", len(cands), len(pangrams))
}
