package technique

import (
	"testing"

	"github.com/gitaurr/gitaurr/model"
	"github.com/stretchr/testify/assert"
)

func TestCatalogCoversEveryType(t *testing.T) {
	all := All()

	assert := assert.New(t)
	assert.Equal(17, len(all))
	seen := make(map[string]bool)
	for _, e := range all {
		assert.NotEmpty(e.Symbol)
		assert.NotEmpty(e.Name)
		assert.NotEmpty(e.Description)
		assert.False(seen[string(e.Type)])
		seen[string(e.Type)] = true
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup(model.HammerOn)

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal("h", e.Symbol)
	assert.Equal("Hammer On", e.Name)
	assert.Equal(model.Beginner, e.Difficulty)

	_, ok = Lookup("legato")
	assert.False(ok)
}

func TestSymbol(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("~", Symbol(model.Vibrato))
	assert.Equal("PM", Symbol(model.PalmMute))
	assert.Equal("", Symbol("legato"))
}

func TestNewStampsIdAndSymbol(t *testing.T) {
	first := New(model.Bend)
	second := New(model.Bend)

	assert := assert.New(t)
	assert.NotEmpty(first.Id)
	assert.NotEqual(first.Id, second.Id)
	assert.Equal(model.Bend, first.Type)
	assert.Equal("b", first.Symbol)
	assert.Nil(first.Parameters)
}

func TestNewWithParams(t *testing.T) {
	amount := 1.5
	tech := NewWithParams(model.Bend, &model.TechniqueParams{BendAmount: &amount})

	assert := assert.New(t)
	assert.Equal("b", tech.Symbol)
	assert.NotNil(tech.Parameters)
	assert.Equal(1.5, *tech.Parameters.BendAmount)
}
