package cpu

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisters_GetSet(t *testing.T) {
	assert := assert.New(t)

	regs := &Registers{}
	regs.Reset()
	assert.Equal(byte(SP_INIT), regs[REG_SP])

	for index := range byte(REGISTER_COUNT) {
		assert.NoError(regs.Set(index, 0x10+index))
	}
	for index := range byte(REGISTER_COUNT) {
		value, err := regs.Get(index)
		assert.NoError(err)
		assert.Equal(0x10+index, value)
	}

	_, err := regs.Get(REGISTER_COUNT)
	assert.Equal(ErrRegisterInvalid(REGISTER_COUNT), err)
	err = regs.Set(0xff, 1)
	assert.Equal(ErrRegisterInvalid(0xff), err)
}

func TestCompare(t *testing.T) {
	assert := assert.New(t)

	for a := range 256 {
		for b := range 256 {
			fl := Compare(byte(a), byte(b))
			assert.Equal(1, bits.OnesCount8(byte(fl)))
			assert.Equal(Flags(0), fl&^(FL_EQUAL|FL_GREATER|FL_LESS))
			assert.Equal(a == b, fl.Equal())
			assert.Equal(a > b, fl.Greater())
			assert.Equal(a < b, fl.Less())
		}
	}
}

func TestFlags_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("---", Flags(0).String())
	assert.Equal("--E", FL_EQUAL.String())
	assert.Equal("-G-", FL_GREATER.String())
	assert.Equal("L--", FL_LESS.String())
}
