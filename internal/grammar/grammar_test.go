package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Toasterson/akh-medu-sub001/internal/interlingua"
)

func TestRegistryBuiltins(t *testing.T) {
	reg := NewRegistry()

	assert.Equal(t, []string{"formal", "narrative", "rustgen", "terse"}, reg.Names())
	require.NotNil(t, reg.Default())
	assert.Equal(t, "formal", reg.Default().Name())
}

func TestRegistryEmptyNameRoutesToDefault(t *testing.T) {
	reg := NewRegistry()

	g, err := reg.Get("")
	require.NoError(t, err)
	assert.Equal(t, "formal", g.Name())

	out, err := reg.Linearize("", interlingua.NewStatement("Socrates", "is-a", "man"), nil)
	require.NoError(t, err)
	assert.Equal(t, "The entity 'Socrates' is a 'man'.", out)
}

func TestRegistryUnknownGrammarNamesTheMissingGrammar(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Get("pirate")
	require.Error(t, err)
	assert.True(t, interlingua.IsKind(err, interlingua.UnknownGrammar))
	assert.Contains(t, err.Error(), "pirate")

	_, err = reg.Linearize("pirate", interlingua.NewEntity("x"), nil)
	assert.True(t, interlingua.IsKind(err, interlingua.UnknownGrammar))

	_, err = reg.Parse("pirate", "x", interlingua.CategoryAny, nil)
	assert.True(t, interlingua.IsKind(err, interlingua.UnknownGrammar))
}

func TestRegistrySetDefault(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.SetDefault("terse"))
	assert.Equal(t, "terse", reg.Default().Name())

	err := reg.SetDefault("nonexistent")
	require.Error(t, err)
	assert.True(t, interlingua.IsKind(err, interlingua.UnknownGrammar))
	assert.Equal(t, "terse", reg.Default().Name())
}

func TestRegistryUnregister(t *testing.T) {
	reg := NewRegistry()

	assert.True(t, reg.Unregister("narrative"))
	_, err := reg.Get("narrative")
	assert.True(t, interlingua.IsKind(err, interlingua.UnknownGrammar))

	assert.False(t, reg.Unregister("narrative"), "double unregister reports false")
	assert.False(t, reg.Unregister("formal"), "default cannot be unregistered")
	_, err = reg.Get("formal")
	assert.NoError(t, err)
}

func TestRegistryRegisterReplaces(t *testing.T) {
	reg := NewRegistry()

	custom, err := ParseCustomGrammar("[grammar]\nname = \"terse\"\n")
	require.NoError(t, err)
	reg.Register(custom)

	g, err := reg.Get("terse")
	require.NoError(t, err)
	assert.Equal(t, "User-defined grammar", g.Description())
}

func TestPredicatePhrase(t *testing.T) {
	assert.Equal(t, "is a", predicatePhrase("is-a"))
	assert.Equal(t, "is located in", predicatePhrase("located-in"))
	assert.Equal(t, "orbits", predicatePhrase("orbits"))
	assert.Equal(t, "spins around", predicatePhrase("spins-around"))
}
