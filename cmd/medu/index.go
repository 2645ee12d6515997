package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Toasterson/akh-medu-sub001/internal/itemmem"
	"github.com/Toasterson/akh-medu-sub001/internal/knowledge"
	"github.com/Toasterson/akh-medu-sub001/internal/lexer"
)

// Index flags
var flagK int

// indexCmd groups item-memory inspection commands
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Inspect the hypervector item memory",
	Long: `Works directly with the item memory that grounds entity labels.

Labels are encoded as bundled character trigrams, so searches match on
spelling: 'Moskow' lands near 'Moscow' even though the tokens differ.
With vector.database_path set in the config the vectors persist in
sqlite; otherwise each invocation works in memory.`,
}

var indexInsertCmd = &cobra.Command{
	Use:   "insert [labels...]",
	Short: "Encode labels into the item memory",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIndexInsert,
}

var indexSearchCmd = &cobra.Command{
	Use:   "search [query] [labels...]",
	Short: "Find the stored labels nearest a query token",
	Long: `Encodes the query token and ranks stored vectors by hamming
similarity. Any labels after the query are indexed first, which makes
a one-shot demo possible:

  medu index search Moskow Moscow Minsk "Saint Petersburg"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIndexSearch,
}

func runIndexInsert(cmd *cobra.Command, args []string) error {
	index, err := openItemIndex()
	if err != nil {
		return err
	}
	defer index.Close()

	graph := knowledge.NewMemoryGraph()
	for _, label := range args {
		sym := graph.Intern(label)
		if err := lexer.IndexLabel(index, sym, label); err != nil {
			return err
		}
		fmt.Printf("  %-4d %s\n", sym, label)
	}

	total, err := index.Count()
	if err != nil {
		return err
	}
	fmt.Printf("%d labels indexed, %d vectors stored\n", len(args), total)
	return nil
}

func runIndexSearch(cmd *cobra.Command, args []string) error {
	query, corpus := args[0], args[1:]

	index, err := openItemIndex()
	if err != nil {
		return err
	}
	defer index.Close()

	// Labels interned this run can be printed by name; anything already
	// in a persistent database only has its symbol id.
	graph := knowledge.NewMemoryGraph()
	for _, label := range corpus {
		if err := lexer.IndexLabel(index, graph.Intern(label), label); err != nil {
			return err
		}
	}

	matches, err := index.Search(lexer.EncodeToken(index.Dims(), query), flagK)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Println("no matches")
		return nil
	}
	for _, m := range matches {
		if label, ok := graph.Get(m.Symbol); ok {
			fmt.Printf("%d. %s (%.3f)\n", m.Rank, label, m.Similarity)
		} else {
			fmt.Printf("%d. symbol %d (%.3f)\n", m.Rank, m.Symbol, m.Similarity)
		}
	}
	return nil
}

func openItemIndex() (*itemmem.Index, error) {
	return itemmem.New(itemmem.Config{
		Dims:         cfg.Vector.Dimension,
		Path:         cfg.Vector.DatabasePath,
		SearchK:      cfg.Vector.SearchK,
		BatchWorkers: cfg.Vector.BatchWorkers,
	})
}
