// Package itemmem is the item memory: the durable mapping from graph
// symbols to their hypervectors, plus approximate nearest-neighbour
// search over them. Exact lookups are served from an in-process map;
// similarity search runs as a hamming-distance KNN query against a
// sqlite table so memories survive restarts.
package itemmem

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Toasterson/akh-medu-sub001/internal/interlingua"
	"github.com/Toasterson/akh-medu-sub001/internal/knowledge"
	"github.com/Toasterson/akh-medu-sub001/internal/logging"
	"github.com/Toasterson/akh-medu-sub001/internal/vsa"
)

// Match is one nearest-neighbour hit. Similarity is normalized to [0,1]
// where 1 means identical bit patterns. Rank starts at 1 for the best
// match.
type Match struct {
	Symbol     knowledge.SymbolID
	Similarity float64
	Rank       int
}

// Config controls index geometry and storage placement.
type Config struct {
	// Dims is the hypervector width in bits. Must be a positive
	// multiple of 64.
	Dims int
	// Path is the sqlite database location. Empty means in-memory.
	Path string
	// SearchK is the default result count for Search when the caller
	// passes k <= 0.
	SearchK int
	// BatchWorkers bounds InsertBatch concurrency. Zero means
	// GOMAXPROCS.
	BatchWorkers int
}

// DefaultConfig returns an in-memory index sized for the standard
// hypervector width.
func DefaultConfig() Config {
	return Config{Dims: 8192, SearchK: 8}
}

// Index stores symbol vectors and answers nearest-neighbour queries.
//
// The exact map is the hot path: GetOrCreate and the lexer's resolution
// cascade hit it lock-free per key. The sqlite table is the ANN side;
// one RWMutex guards it, where Insert and Search take the read lock
// (database/sql serializes statement execution internally) and only
// schema setup and Close take the write lock.
type Index struct {
	dims    int
	searchK int
	workers int

	exact sync.Map // knowledge.SymbolID -> vsa.Vector

	mu sync.RWMutex
	db *sql.DB
}

// New opens the index, creating the ANN table when absent.
func New(cfg Config) (*Index, error) {
	if cfg.Dims <= 0 || cfg.Dims%64 != 0 {
		return nil, interlingua.Errorf(interlingua.VsaError, "itemmem.New",
			"dimension %d must be a positive multiple of 64", cfg.Dims)
	}
	if cfg.SearchK <= 0 {
		cfg.SearchK = DefaultConfig().SearchK
	}
	workers := cfg.BatchWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	dsn := cfg.Path
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open item memory at %s: %w", dsn, err)
	}
	// A single connection sidesteps SQLITE_BUSY across drivers and, for
	// in-memory databases, keeps every statement on the same database.
	db.SetMaxOpenConns(1)

	idx := &Index{dims: cfg.Dims, searchK: cfg.SearchK, workers: workers, db: db}
	if err := idx.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	logging.Vector("item memory ready (dims=%d, dsn=%s)", cfg.Dims, dsn)
	return idx, nil
}

func (x *Index) initSchema() error {
	x.mu.Lock()
	defer x.mu.Unlock()
	_, err := x.db.Exec(`
		CREATE TABLE IF NOT EXISTS hyper_ann (
			symbol    INTEGER PRIMARY KEY,
			embedding BLOB NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create hyper_ann table: %w", err)
	}
	return nil
}

// Dims reports the hypervector width in bits.
func (x *Index) Dims() int { return x.dims }

// GetOrCreate returns the vector for a symbol, deriving and storing a
// deterministic one on first sight. Two concurrent first sights agree
// because derivation is seeded by the symbol itself.
func (x *Index) GetOrCreate(sym knowledge.SymbolID) (vsa.Vector, error) {
	if v, ok := x.exact.Load(sym); ok {
		return v.(vsa.Vector), nil
	}
	vec := vsa.Random(x.dims, uint64(sym))
	if actual, loaded := x.exact.LoadOrStore(sym, vec); loaded {
		return actual.(vsa.Vector), nil
	}
	if err := x.persist(sym, vec); err != nil {
		return vsa.Vector{}, err
	}
	return vec, nil
}

// Insert stores an explicit vector for a symbol, replacing any previous
// one in both the exact map and the ANN table.
func (x *Index) Insert(sym knowledge.SymbolID, vec vsa.Vector) error {
	if vec.Dims() != x.dims {
		return interlingua.Errorf(interlingua.VsaError, "itemmem.Insert",
			"vector has %d dims, index expects %d", vec.Dims(), x.dims)
	}
	x.exact.Store(sym, vec)
	return x.persist(sym, vec)
}

func (x *Index) persist(sym knowledge.SymbolID, vec vsa.Vector) error {
	x.mu.RLock()
	defer x.mu.RUnlock()
	_, err := x.db.Exec(
		`INSERT OR REPLACE INTO hyper_ann (symbol, embedding) VALUES (?, ?)`,
		int64(sym), vec.Bytes(),
	)
	if err != nil {
		return interlingua.Wrap(interlingua.VsaError, "itemmem.Insert",
			fmt.Sprintf("storing vector for symbol %d", sym), err)
	}
	return nil
}

// Get returns the exact vector for a symbol without deriving one.
func (x *Index) Get(sym knowledge.SymbolID) (vsa.Vector, bool) {
	if v, ok := x.exact.Load(sym); ok {
		return v.(vsa.Vector), true
	}
	return vsa.Vector{}, false
}

// Search returns the k nearest stored symbols by hamming distance,
// best first. Passing k <= 0 uses the configured default.
func (x *Index) Search(query vsa.Vector, k int) ([]Match, error) {
	if query.Dims() != x.dims {
		return nil, interlingua.Errorf(interlingua.VsaError, "itemmem.Search",
			"query has %d dims, index expects %d", query.Dims(), x.dims)
	}
	if k <= 0 {
		k = x.searchK
	}

	timer := logging.StartTimer(logging.CategoryVector, "ann search")
	defer timer.Stop()

	x.mu.RLock()
	defer x.mu.RUnlock()

	rows, err := x.db.Query(`
		SELECT symbol, vec_distance_hamming(vec_bit(embedding), vec_bit(?)) AS distance
		FROM hyper_ann
		ORDER BY distance ASC
		LIMIT ?
	`, query.Bytes(), k)
	if err != nil {
		return nil, interlingua.Wrap(interlingua.VsaError, "itemmem.Search", "knn query", err)
	}
	defer rows.Close()

	var matches []Match
	rank := 1
	for rows.Next() {
		var symbol int64
		var distance float64
		if err := rows.Scan(&symbol, &distance); err != nil {
			return nil, interlingua.Wrap(interlingua.VsaError, "itemmem.Search", "scanning hit", err)
		}
		matches = append(matches, Match{
			Symbol:     knowledge.SymbolID(uint64(symbol)),
			Similarity: 1.0 - distance/float64(x.dims),
			Rank:       rank,
		})
		rank++
	}
	if err := rows.Err(); err != nil {
		return nil, interlingua.Wrap(interlingua.VsaError, "itemmem.Search", "iterating hits", err)
	}
	logging.VectorDebug("ann search returned %d/%d hits", len(matches), k)
	return matches, nil
}

// InsertBatch derives and stores vectors for many symbols concurrently.
// Worker count is bounded by the configured batch width.
func (x *Index) InsertBatch(ctx context.Context, syms []knowledge.SymbolID) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(x.workers)
	for _, sym := range syms {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := x.GetOrCreate(sym)
			return err
		})
	}
	return g.Wait()
}

// Count reports how many vectors the ANN table holds.
func (x *Index) Count() (int, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	var n int
	if err := x.db.QueryRow(`SELECT COUNT(*) FROM hyper_ann`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count item memory: %w", err)
	}
	return n, nil
}

// Warm loads every persisted vector into the exact map. Called on open
// when the index backs onto a file from a previous run.
func (x *Index) Warm() error {
	x.mu.RLock()
	defer x.mu.RUnlock()
	rows, err := x.db.Query(`SELECT symbol, embedding FROM hyper_ann`)
	if err != nil {
		return fmt.Errorf("failed to warm item memory: %w", err)
	}
	defer rows.Close()

	loaded := 0
	for rows.Next() {
		var symbol int64
		var blob []byte
		if err := rows.Scan(&symbol, &blob); err != nil {
			return fmt.Errorf("failed to scan stored vector: %w", err)
		}
		vec, err := vsa.FromBytes(x.dims, blob)
		if err != nil {
			logging.VectorError("skipping malformed vector for symbol %d: %v", symbol, err)
			continue
		}
		x.exact.Store(knowledge.SymbolID(uint64(symbol)), vec)
		loaded++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to warm item memory: %w", err)
	}
	logging.Vector("warmed %d vectors from disk", loaded)
	return nil
}

// Close releases the underlying database.
func (x *Index) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.db.Close()
}
