package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Toasterson/akh-medu-sub001/internal/config"
	"github.com/Toasterson/akh-medu-sub001/internal/grammar"
	"github.com/Toasterson/akh-medu-sub001/internal/interlingua"
	"github.com/Toasterson/akh-medu-sub001/internal/lexicon"
	"github.com/Toasterson/akh-medu-sub001/internal/logging"
	"github.com/Toasterson/akh-medu-sub001/internal/parser"
)

var (
	// Global flags
	verbose      bool
	configPath   string
	flagLanguage string
	flagGrammar  string

	// Render flags
	treeFile string

	// Loaded at boot
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "medu",
	Short: "medu - bidirectional prose/semantic-tree translator",
	Long: `medu translates between natural-language prose and language-neutral
semantic trees, in both directions.

Parsing runs a cascade (commands, goals, questions, relational facts,
freeform fallback) over five supported languages (en, es, fr, de, ru).
Rendering goes the other way through pluggable concrete grammars:
formal, terse, narrative, rustgen, plus any custom TOML grammars.

Entities can be grounded in a hypervector item memory so that nearby
spellings still resolve to the same symbol.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		path := configPath
		if path == "" {
			path = config.DefaultPath(".")
		}
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if flagLanguage != "" {
			cfg.Core.DefaultLanguage = flagLanguage
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		// Category-level file logging is best effort; the CLI still
		// works from a read-only directory.
		if err := logging.Initialize(cfg.Core.Workspace); err != nil {
			logger.Warn("file logging unavailable", zap.Error(err))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// parseCmd turns prose into semantic trees
var parseCmd = &cobra.Command{
	Use:   "parse [prose]",
	Short: "Parse prose into semantic trees",
	Long: `Runs the parse cascade over the input and prints what it recognized.

Facts print as tree JSON, questions print the extracted frame plus a
gap tree, commands and goals print their matched directive, and text
the cascade cannot structure comes back as freeform.

Example:
  medu parse "Socrates is a man and Socrates knows philosophy."`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

// renderCmd turns a tree (or re-parsed prose) back into prose
var renderCmd = &cobra.Command{
	Use:   "render [prose]",
	Short: "Render a semantic tree as prose in a chosen grammar",
	Long: `Linearizes a tree through one of the registered grammars.

The tree comes either from --tree (a JSON file, the shape printed by
'medu parse') or from parsing the prose arguments first.

Example:
  medu render --grammar terse "The dog chased the cat."
  medu render --grammar narrative --tree fact.json`,
	RunE: runRender,
}

// roundtripCmd parses prose and immediately renders it back
var roundtripCmd = &cobra.Command{
	Use:   "roundtrip [prose]",
	Short: "Parse prose and render it back through a grammar",
	Long: `Parses the input into a tree, renders the tree back to prose, and
prints both. Useful for checking what survives the trip through the
semantic representation.

Example:
  medu roundtrip --language es "El perro es un animal."`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRoundtrip,
}

// grammarsCmd lists the grammar registry
var grammarsCmd = &cobra.Command{
	Use:   "grammars",
	Short: "List registered grammars",
	RunE:  runGrammars,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: .medu/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flagLanguage, "language", "l", "", "Input language: en, es, fr, de, ru (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagGrammar, "grammar", "g", "", "Grammar for rendering (default from config)")

	renderCmd.Flags().StringVar(&treeFile, "tree", "", "Tree JSON file to render instead of parsing prose")

	// Ask flags
	askCmd.Flags().StringVar(&factsFile, "facts", "", "YAML fact file seeding the knowledge graph")

	// Index subcommands
	indexCmd.AddCommand(indexInsertCmd)
	indexCmd.AddCommand(indexSearchCmd)
	indexSearchCmd.Flags().IntVar(&flagK, "k", 0, "Number of matches to return (default from config)")

	// Add commands to root
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(roundtripCmd)
	rootCmd.AddCommand(grammarsCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(indexCmd)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runParse parses the joined arguments and prints the result.
func runParse(cmd *cobra.Command, args []string) error {
	input := joinArgs(args)
	pctx, err := parserContext()
	if err != nil {
		return err
	}
	logger.Debug("parsing", zap.String("input", input), zap.String("language", string(pctx.Language)))

	result, err := parser.ParseProse(input, pctx)
	if err != nil {
		return err
	}

	fmt.Printf("kind: %s\n", result.Kind)
	switch result.Kind {
	case parser.ResultFacts:
		for _, tree := range result.Facts {
			if err := printTree(tree); err != nil {
				return err
			}
		}
	case parser.ResultQuery:
		fmt.Printf("subject: %s\n", result.Query.Subject)
		if result.Query.Frame.QuestionWord != "" {
			fmt.Printf("question word: %s\n", result.Query.Frame.QuestionWord)
		}
		return printTree(result.Query.Tree)
	case parser.ResultCommand:
		fmt.Printf("command: %s\n", result.Command.Kind)
		if result.Command.Arg != "" {
			fmt.Printf("arg: %s\n", result.Command.Arg)
		}
		if result.Command.Cycles != nil {
			fmt.Printf("cycles: %d\n", *result.Command.Cycles)
		}
	case parser.ResultGoal:
		fmt.Printf("verb: %s\ntopic: %s\n", result.Goal.Verb, result.Goal.Text)
	case parser.ResultFreeform:
		fmt.Printf("text: %s\n", result.Freeform.Text)
		for _, tree := range result.Freeform.Partial {
			if err := printTree(tree); err != nil {
				return err
			}
		}
	}
	return nil
}

// runRender linearizes a tree from --tree, or from parsing the args.
func runRender(cmd *cobra.Command, args []string) error {
	if treeFile == "" && len(args) == 0 {
		return fmt.Errorf("nothing to render: pass prose arguments or --tree")
	}

	pctx, err := parserContext()
	if err != nil {
		return err
	}
	registry, err := buildRegistry()
	if err != nil {
		return err
	}

	var tree *interlingua.Tree
	if treeFile != "" {
		data, err := os.ReadFile(treeFile)
		if err != nil {
			return fmt.Errorf("failed to read tree file: %w", err)
		}
		if err := json.Unmarshal(data, &tree); err != nil {
			return fmt.Errorf("invalid tree JSON in %s: %w", treeFile, err)
		}
	} else {
		tree, err = parser.ParseUniversal(joinArgs(args), pctx)
		if err != nil {
			return err
		}
	}

	out, err := registry.Linearize(flagGrammar, tree, pctx)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// runRoundtrip parses then renders, printing each stage.
func runRoundtrip(cmd *cobra.Command, args []string) error {
	input := joinArgs(args)
	pctx, err := parserContext()
	if err != nil {
		return err
	}
	registry, err := buildRegistry()
	if err != nil {
		return err
	}

	tree, err := registry.Parse(flagGrammar, input, interlingua.CategoryAny, pctx)
	if err != nil {
		return err
	}
	out, err := registry.Linearize(flagGrammar, tree, pctx)
	if err != nil {
		return err
	}

	fmt.Printf("in:   %s\n", input)
	fmt.Printf("tree: %s (%s)\n", tree.Kind, tree.Category())
	fmt.Printf("out:  %s\n", out)
	return nil
}

// runGrammars prints every registered grammar and marks the default.
func runGrammars(cmd *cobra.Command, args []string) error {
	registry, err := buildRegistry()
	if err != nil {
		return err
	}

	def := registry.Default().Name()
	for _, name := range registry.Names() {
		g, err := registry.Get(name)
		if err != nil {
			return err
		}
		marker := " "
		if name == def {
			marker = "*"
		}
		fmt.Printf("%s %-12s %s\n", marker, name, g.Description())
	}
	return nil
}

// parserContext builds the per-invocation parse context. The CLI parses
// ungrounded; symbols and item memory belong to embedding hosts.
func parserContext() (*parser.Context, error) {
	lang, err := activeLanguage()
	if err != nil {
		return nil, err
	}
	return &parser.Context{Language: lang}, nil
}

func activeLanguage() (lexicon.Language, error) {
	lang, ok := lexicon.ParseLanguage(cfg.Core.DefaultLanguage)
	if !ok {
		return "", interlingua.Errorf(interlingua.UnsupportedLanguage, "cli.language",
			"unknown language %q", cfg.Core.DefaultLanguage)
	}
	return lang, nil
}

// buildRegistry assembles the built-in grammars plus any custom TOML
// grammars under the configured directory, and applies the configured
// default.
func buildRegistry() (*grammar.Registry, error) {
	registry := grammar.NewRegistry()

	if dir := cfg.Grammar.CustomDir; dir != "" {
		paths, err := filepath.Glob(filepath.Join(dir, "*.toml"))
		if err != nil {
			return nil, err
		}
		for _, path := range paths {
			custom, err := grammar.LoadCustomGrammar(path)
			if err != nil {
				logger.Warn("skipping custom grammar", zap.String("path", path), zap.Error(err))
				continue
			}
			registry.Register(custom)
		}
	}

	if cfg.Grammar.Default != "" {
		if err := registry.SetDefault(cfg.Grammar.Default); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func printTree(t *interlingua.Tree) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
