package hal

import (
	"math/rand/v2"
	"time"
)

type hostRNG struct {
	r *rand.Rand
}

func newHostRNG(seed uint64) *hostRNG {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &hostRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Int returns a value in [0, 2^31), the same range as C rand().
func (g *hostRNG) Int() int {
	return int(g.r.Int32())
}
