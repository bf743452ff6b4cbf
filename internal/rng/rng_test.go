package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeed(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.True(t, Seed() > 0)
	}
}
