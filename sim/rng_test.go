package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSimulationKey_PreservesSeed(t *testing.T) {
	for _, seed := range []int64{42, 0, -1, math.MaxInt64, math.MinInt64} {
		assert.Equal(t, seed, int64(NewSimulationKey(seed)))
	}
}

func TestPartitionedRNG_SameKey_SameSequence(t *testing.T) {
	a := NewPartitionedRNG(NewSimulationKey(42)).ForSubsystem(SubsystemPopulation)
	b := NewPartitionedRNG(NewSimulationKey(42)).ForSubsystem(SubsystemPopulation)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000), "draw %d", i)
	}
}

func TestPartitionedRNG_PopulationDoesNotPerturbSpawn(t *testing.T) {
	// GIVEN two runs with the same key, one of which draws heavily from population
	busy := NewPartitionedRNG(NewSimulationKey(7))
	idle := NewPartitionedRNG(NewSimulationKey(7))
	for i := 0; i < 100; i++ {
		busy.ForSubsystem(SubsystemPopulation).Intn(25)
	}

	// THEN the spawn streams are still identical
	for i := 0; i < 10; i++ {
		assert.Equal(t, idle.ForSubsystem(SubsystemSpawn).Intn(25), busy.ForSubsystem(SubsystemSpawn).Intn(25))
	}
}

func TestPartitionedRNG_SpawnUsesMasterSeed(t *testing.T) {
	spawn := NewPartitionedRNG(NewSimulationKey(42)).ForSubsystem(SubsystemSpawn)
	direct := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		assert.Equal(t, direct.Float64(), spawn.Float64())
	}
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	assert.Same(t, rng.ForSubsystem(SubsystemSpawn), rng.ForSubsystem(SubsystemSpawn))
	assert.NotSame(t, rng.ForSubsystem(SubsystemSpawn), rng.ForSubsystem(SubsystemPopulation))
	assert.Len(t, rng.subsystems, 2)
	assert.Equal(t, SimulationKey(42), rng.Key())
}

func TestFnv1a64_DistinctSubsystems(t *testing.T) {
	assert.Equal(t, fnv1a64(SubsystemPopulation), fnv1a64(SubsystemPopulation))
	assert.NotEqual(t, fnv1a64(SubsystemSpawn), fnv1a64(SubsystemPopulation))
}

func BenchmarkPartitionedRNG_ForSubsystem_CacheHit(b *testing.B) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	rng.ForSubsystem(SubsystemSpawn)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rng.ForSubsystem(SubsystemSpawn)
	}
}
