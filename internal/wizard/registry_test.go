package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCoversEveryStep(t *testing.T) {
	r := NewRegistry(DefaultCatalog())
	for _, s := range Steps() {
		screen := r.Screen(s)
		assert.Equal(t, s, screen.Step)
		assert.NotEmpty(t, screen.Kind)
		assert.Equal(t, BackTarget(s), screen.BackTo)
	}

	assert.False(t, r.Screen(Landing).CanBack)
	assert.True(t, r.Screen(Recommendation).CanBack)
	assert.Equal(t, KindBranchSelector, r.Screen(MainMenu).Kind)
	assert.Equal(t, []string{"routine", "allergy", "condition"}, r.Screen(MainMenu).Options)
	assert.Contains(t, r.Screen(BrandPick).Options, "Plum")
}

func TestBindCallbacks(t *testing.T) {
	r := NewRegistry(DefaultCatalog())
	c := NewController()

	landing := r.Bind(c)
	require.NotNil(t, landing.OnNext)
	assert.Nil(t, landing.OnSelectOption)
	landing.OnNext(nil)
	assert.Equal(t, SkinTypeAnalysis, c.Current())

	r.Bind(c).OnNext(SkinTypeAnswer("Dry"))
	assert.Equal(t, MainMenu, c.Current())

	menu := r.Bind(c)
	assert.Nil(t, menu.OnNext)
	require.NotNil(t, menu.OnSelectOption)
	menu.OnSelectOption(BranchCondition)
	assert.Equal(t, ConditionAnalysis, c.Current())
}

func TestBoundCallbacksGoStale(t *testing.T) {
	r := NewRegistry(DefaultCatalog())
	c := NewController()
	c.Start()

	skin := r.Bind(c)
	skin.OnNext(SkinTypeAnswer("Oily"))
	require.Equal(t, MainMenu, c.Current())

	// A delayed resolution from the skin type screen arrives late.
	skin.OnNext(SkinTypeAnswer("Dry"))
	skin.OnBack()
	assert.Equal(t, MainMenu, c.Current())
	assert.Equal(t, "Oily", c.Answers().SkinType)
}
