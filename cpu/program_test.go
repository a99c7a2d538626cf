package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Statements: []Statement{
			{LineNo: 1, Addr: 0, Words: []string{"LDI", "R0", "8"},
				Bytes: []byte{byte(OP_LDI), 0, 8}},
			{LineNo: 2, Addr: 3, Words: []string{"PRN", "R0"},
				Bytes: []byte{byte(OP_PRN), 0}},
			{LineNo: 4, Addr: 5, Words: []string{"HLT"},
				Bytes: []byte{byte(OP_HLT)}},
		},
	}

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Statement)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(2)
	assert.NotNil(dbg.Statement)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(2, dbg.Index)

	dbg = prog.Debug(4)
	assert.Equal(2, dbg.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(5)
	assert.Equal(4, dbg.LineNo)

	dbg = prog.Debug(6)
	assert.Nil(dbg.Statement)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}
	assert.Empty(prog.Binary())

	prog.Statements = []Statement{
		{Addr: 0, Bytes: []byte{1, 2}},
		{Addr: 4, Bytes: []byte{3}},
	}
	assert.Equal([]byte{1, 2, 0, 0, 3}, prog.Binary())

	var addrs []int
	for addr := range prog.Bytes() {
		addrs = append(addrs, addr)
		if addr == 1 {
			break
		}
	}
	assert.Equal([]int{0, 1}, addrs)
}

func TestProgram_WriteImage(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Statements: []Statement{
			{LineNo: 1, Addr: 0, Words: []string{"LDI", "R0", "8"},
				Bytes: []byte{byte(OP_LDI), 0, 8}},
			{LineNo: 2, Addr: 3, Bytes: []byte{byte(OP_HLT)}},
		},
	}

	buff := &bytes.Buffer{}
	assert.NoError(prog.WriteImage(buff))

	expected := []string{
		"10000010 # LDI R0 8",
		"00000000",
		"00001000",
		"00000001",
		"",
	}
	assert.Equal(strings.Join(expected, "\n"), buff.String())

	bins, err := LoadImage(buff)
	assert.NoError(err)
	assert.Equal(prog.Binary(), bins)
}
