package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := map[string]int64{
		"4999":    499900,
		"4999.5":  499950,
		"4999.50": 499950,
		"0.99":    99,
		"-12.50":  -1250,
		".75":     75,
	}
	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, Money(want), got, in)
	}

	_, err := Parse("19.999")
	assert.Error(t, err)
	_, err = Parse("")
	assert.Error(t, err)
	_, err = Parse("abc")
	assert.Error(t, err)
}

func TestLineTotalIsExact(t *testing.T) {
	// 19.99 * 4 must be exactly 79.96, no float drift.
	price, err := Parse("19.99")
	require.NoError(t, err)

	total := price.Mul(4)
	assert.Equal(t, Money(7996), total)
	assert.Equal(t, "79.96", total.String())
}

func TestPercent(t *testing.T) {
	gross := Money(100000) // 1000.00

	discount := gross.Percent(5)
	assert.Equal(t, Money(5000), discount)

	taxable := gross.Sub(discount)
	tax := taxable.Percent(12)
	assert.Equal(t, Money(11400), tax)

	net := taxable.Add(tax)
	assert.Equal(t, "1064.00", net.String())
}

func TestJSONRoundTrip(t *testing.T) {
	type line struct {
		Price Money `json:"price"`
	}

	out, err := json.Marshal(line{Price: Money(499950)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":4999.50}`, string(out))

	var in line
	require.NoError(t, json.Unmarshal([]byte(`{"price":4999.5}`), &in))
	assert.Equal(t, Money(499950), in.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"price":"129.00"}`), &in))
	assert.Equal(t, Money(12900), in.Price)
}

func TestScan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan(int64(7996)))
	assert.Equal(t, Money(7996), m)

	require.NoError(t, m.Scan([]byte("1250")))
	assert.Equal(t, Money(1250), m)

	require.NoError(t, m.Scan(nil))
	assert.Equal(t, Money(0), m)

	assert.Error(t, m.Scan("not-a-type-we-accept-without-bytes"))
}

func TestFromRupees(t *testing.T) {
	assert.Equal(t, Money(1999), FromRupees(19.99))
	assert.Equal(t, Money(100), FromRupees(0.999))
}
