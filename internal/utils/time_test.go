package util_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/saulo-duarte/chronos-events/internal/config"
	util "github.com/saulo-duarte/chronos-events/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDateTimeJSON(t *testing.T) {
	config.Location = time.FixedZone("BRT", -3*60*60)
	t.Cleanup(func() { config.Location = time.UTC })

	var ldt util.LocalDateTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-05T18:30:00"`), &ldt))
	assert.Equal(t, 18, ldt.Hour())
	assert.Equal(t, "BRT", ldt.Location().String())

	out, err := json.Marshal(ldt)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-03-05T18:30:00"`, string(out))

	var utc util.LocalDateTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-05T21:30:00Z"`), &utc))
	assert.True(t, utc.Equal(ldt.Time))

	var empty util.LocalDateTime
	require.NoError(t, json.Unmarshal([]byte(`null`), &empty))
	assert.True(t, empty.IsZero())
}

func TestLocalDate(t *testing.T) {
	d, err := util.ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, util.LocalDate{Year: 2024, Month: time.February, Day: 29}, d)
	assert.Equal(t, "2024-02-29", d.String())

	loc := time.FixedZone("X", 5*60*60)
	midnight := d.In(loc)
	assert.Equal(t, 0, midnight.Hour())
	assert.Equal(t, d, util.DateOf(midnight))

	_, err = util.ParseDate("2024-02-30")
	assert.Error(t, err)

	var decoded struct {
		Date util.LocalDate `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2023-12-31"}`), &decoded))
	assert.Equal(t, 31, decoded.Date.Day)

	out, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2023-12-31"}`, string(out))
}

func TestLocalDateSQL(t *testing.T) {
	d := util.LocalDate{Year: 2024, Month: time.March, Day: 5}

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", v)

	v, err = util.LocalDate{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	var scanned util.LocalDate
	require.NoError(t, scanned.Scan(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, d, scanned)

	require.NoError(t, scanned.Scan([]byte("2024-03-06T00:00:00Z")))
	assert.Equal(t, 6, scanned.Day)

	require.NoError(t, scanned.Scan(nil))
	assert.True(t, scanned.IsZero())

	assert.Error(t, scanned.Scan(42))
}
