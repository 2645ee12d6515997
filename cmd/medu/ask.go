package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Toasterson/akh-medu-sub001/internal/discourse"
	"github.com/Toasterson/akh-medu-sub001/internal/knowledge"
	"github.com/Toasterson/akh-medu-sub001/internal/lexicon"
)

// Ask flags
var factsFile string

// askCmd answers a question over a small knowledge graph
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a question over a fact graph",
	Long: `Resolves the question against a knowledge graph and renders the
answer through a grammar. Pronouns hop through refers-to links, the
question word picks which predicates matter, and the subject's
response-detail policy caps how much comes back.

The graph is seeded from --facts (a YAML file with a 'facts' list of
[subject, predicate, object] triples) or from a small built-in demo
graph when no file is given.

Example:
  medu ask "What can you do?"
  medu ask --facts world.yaml --grammar narrative "Who is Socrates?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := joinArgs(args)

	graph, err := askGraph()
	if err != nil {
		return err
	}
	pctx, err := parserContext()
	if err != nil {
		return err
	}
	registry, err := buildRegistry()
	if err != nil {
		return err
	}

	resolver := discourse.NewResolverWithConfig(graph, discourseOptions())
	dctx := resolver.ResolveContext(question, lexicon.ForLanguage(pctx.Language))
	logger.Debug("question resolved",
		zap.String("subject", dctx.Subject),
		zap.Bool("known", dctx.Resolved),
		zap.String("focus", dctx.Focus.String()))

	var candidates []knowledge.Triple
	if dctx.Resolved {
		candidates = graph.TriplesFrom(dctx.Symbol)
	}

	tree, err := resolver.BuildResponse(dctx, candidates)
	if err != nil {
		return err
	}
	out, err := registry.Linearize(flagGrammar, tree, pctx)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// discourseOptions maps the config section onto the resolver's tuning.
func discourseOptions() discourse.Config {
	opts := discourse.DefaultConfig()
	opts.SelfLabel = cfg.Core.SelfLabel
	opts.FocusBoost = cfg.Discourse.FocusBoost
	opts.IsABoost = cfg.Discourse.IdentityBoost
	opts.DeprioritizedPenalty = cfg.Discourse.Deprioritized
	opts.ConciseLimit = cfg.Discourse.ConciseLimit
	opts.NormalLimit = cfg.Discourse.NormalLimit
	opts.DefaultDetail = cfg.Discourse.ResponseDetail
	return opts
}

func askGraph() (*knowledge.MemoryGraph, error) {
	if factsFile == "" {
		return demoGraph(), nil
	}
	return loadFactFile(factsFile)
}

// factFile is the --facts YAML shape.
type factFile struct {
	Facts [][]string `yaml:"facts"`
}

func loadFactFile(path string) (*knowledge.MemoryGraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fact file: %w", err)
	}
	var file factFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid fact file %s: %w", path, err)
	}

	graph := knowledge.NewMemoryGraph()
	for i, fact := range file.Facts {
		if len(fact) != 3 {
			return nil, fmt.Errorf("fact %d in %s has %d fields, want [subject, predicate, object]",
				i, path, len(fact))
		}
		graph.Assert(fact[0], fact[1], fact[2])
	}
	logger.Debug("fact graph loaded", zap.String("path", path), zap.Int("facts", len(file.Facts)))
	return graph, nil
}

// demoGraph seeds enough facts to exercise pronoun hops, capability
// focus, and the detail policy without an external file.
func demoGraph() *knowledge.MemoryGraph {
	g := knowledge.NewMemoryGraph()
	self := cfg.Core.SelfLabel
	if self == "" {
		self = "self"
	}

	g.Assert("you", "refers-to", self)
	g.Assert(self, "is-a", "translator")
	g.Assert(self, "can-do", "parsing")
	g.Assert(self, "can-do", "rendering")
	g.Assert(self, "knows", "five languages")

	g.Assert("Socrates", "is-a", "man")
	g.Assert("Socrates", "is-a", "philosopher")
	g.Assert("Socrates", "knows", "Plato")
	g.Assert("Socrates", "lives-in", "Athens")
	g.Assert("Athens", "located-in", "Greece")
	g.Assert("water", "is-a", "liquid")
	g.Assert("water", "made-of", "hydrogen and oxygen")
	return g
}
