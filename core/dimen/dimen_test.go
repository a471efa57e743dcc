package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.core")
	defer teardown()
	//
	d, err := ParseDimen("12px")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12*PX {
		t.Errorf("(1) expected d to be 12px (%d), is %d", 12*PX, d)
	}
	//
	d, err = ParseDimen("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %d", d)
	}
	//
	d, err = ParseDimen("1in")
	assert.NoError(t, err)
	assert.Equal(t, 96*PX, d)
	//
	d, err = ParseDimen("2.5px")
	assert.NoError(t, err)
	assert.Equal(t, PX*5/2, d)
	//
	_, err = ParseDimen("12")
	assert.Error(t, err, "non-zero numbers need a unit")
	_, err = ParseDimen("12qq")
	assert.Error(t, err)
}

func TestArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webframe.core")
	defer teardown()
	//
	assert.Equal(t, Zero, NonNeg(-3*PX))
	assert.Equal(t, 3*PX, NonNeg(3*PX))
	assert.Equal(t, 50*PX, Clamp(20*PX, 50*PX, 100*PX))
	assert.Equal(t, 100*PX, Clamp(120*PX, 50*PX, 100*PX))
	assert.Equal(t, 80*PX, Clamp(20*PX, 80*PX, 40*PX), "min wins over max")
	assert.Equal(t, 150*PX, Scale(300*PX, 0.5))
	assert.Equal(t, Zero, MulDiv(100*PX, 1, 0))
	assert.Equal(t, 75*PX, MulDiv(300*PX, 1, 4))
	assert.Equal(t, Infinity, Add(Infinity, PX))
	assert.Equal(t, "150px", (150 * PX).String())
}
