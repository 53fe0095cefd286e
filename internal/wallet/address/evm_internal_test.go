package address

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroScalarWipesBackingWords(t *testing.T) {
	d, ok := new(big.Int).SetString("1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727", 16)
	assert.True(t, ok)

	words := d.Bits()
	assert.NotEmpty(t, words)

	zeroScalar(d)

	assert.Zero(t, d.Sign())
	for _, w := range words {
		assert.Zero(t, w)
	}
}
