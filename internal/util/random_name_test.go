package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeGen struct {
	values []int
	idx    int
}

func (g *fakeGen) Intn(n int) int {
	v := g.values[g.idx%len(g.values)] % n
	g.idx++

	return v
}

func TestGetRandomName(t *testing.T) {
	gen := &fakeGen{values: []int{0, 1, 2, 3}}
	assert.Equal(t, "Lucky Fox", GetRandomName(gen))
	assert.Equal(t, "Stoic Wolf", GetRandomName(gen))
}
