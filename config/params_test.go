package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/basiutekk/peatyvc/config"
)

func TestNewDefaults(t *testing.T) {
	p := config.New()
	assert.Equal(t, config.ClassEnlargingUnitPropagation, p.ColouringVariant)
	assert.Equal(t, -1, p.MaxSATLevel)
	assert.Equal(t, 1, p.NumThreads)
	assert.False(t, p.Quiet)
	assert.False(t, p.UnweightedSort)
	assert.False(t, p.EnableBowTie)
}

func TestWithColouringVariantIgnoresOutOfRange(t *testing.T) {
	p := config.New(config.WithColouringVariant(99))
	assert.Equal(t, config.ClassEnlargingUnitPropagation, p.ColouringVariant)

	p = config.New(config.WithColouringVariant(0))
	assert.Equal(t, config.GreedyOnly, p.ColouringVariant)
}

func TestWithNumThreadsClampedWithoutAlgorithmFive(t *testing.T) {
	p := config.New(config.WithNumThreads(8))
	assert.Equal(t, 1, p.NumThreads)

	p = config.New(config.WithAlgorithmNum(5), config.WithNumThreads(8))
	assert.Equal(t, 8, p.NumThreads)
}

func TestWithNumThreadsIgnoresNonPositive(t *testing.T) {
	p := config.New(config.WithAlgorithmNum(5), config.WithNumThreads(0))
	assert.Equal(t, 1, p.NumThreads)
}

func TestWithBowTie(t *testing.T) {
	p := config.New(config.WithBowTie(true))
	assert.True(t, p.EnableBowTie)
}
