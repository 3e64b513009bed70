package flp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The sample loader flags are distinct bits on the wire; an aliased
// value would silently combine other flags.
func TestSampleLoadFlagValues(t *testing.T) {
	assert.Equal(t, SampleLoadFlags(1), SampleShowDialog)
	assert.Equal(t, SampleLoadFlags(2), SampleForceReload)
	assert.Equal(t, SampleLoadFlags(4), SampleGetName)
	assert.Equal(t, SampleLoadFlags(8), SampleNoResampling)

	assert.Zero(t, SampleNoResampling&(SampleShowDialog|SampleForceReload|SampleGetName))
}
