package levels

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/tilerunner/engine"
)

func desc(id int) *engine.Descriptor {
	return &engine.Descriptor{ID: id, Width: 1, Height: 1, Data: [][]string{{""}}}
}

func TestEmbeddedCampaign(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, c.Levels())

	first := c.First()
	assert.Equal(t, 1, first.ID)
	for _, d := range c.Levels() {
		assert.NoError(t, d.Validate())
	}
}

func TestCampaignNext(t *testing.T) {
	c, err := NewCampaign(desc(3), desc(1), desc(2))
	require.NoError(t, err)

	cases := []struct {
		name string
		id   int
		want int
	}{
		{"advances", 1, 2},
		{"advances_again", 2, 3},
		{"wraps_after_last", 3, 1},
		{"unknown_restarts", 9, 1},
	}
	for _, c2 := range cases {
		t.Run(c2.name, func(t *testing.T) {
			assert.Equal(t, c2.want, c.Next(c2.id).ID)
		})
	}
	assert.Nil(t, c.ByID(7))
	assert.Equal(t, 2, c.ByID(2).ID)
}

func TestNewCampaignEmpty(t *testing.T) {
	_, err := NewCampaign()
	assert.ErrorIs(t, err, engine.ErrNoCampaign)
}

func TestLoadCampaignRejectsBadLevel(t *testing.T) {
	fsys := fstest.MapFS{
		"01.json": {Data: []byte(`{"id":1,"width":2,"height":1,"data":[[""]]}`)},
	}
	_, err := LoadCampaign(fsys)
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrInvalidDescriptor))
}

func TestParse(t *testing.T) {
	d, err := Parse([]byte(`{"id":4,"width":2,"height":2,"background":3,"data":[["","stone"],["coin","stone"]]}`))
	require.NoError(t, err)
	assert.Equal(t, 4, d.ID)
	assert.Equal(t, 3, d.Background)
	assert.Equal(t, "coin", d.Data[1][0])

	_, err = Parse([]byte(`{`))
	assert.Error(t, err)
}

func TestListFS(t *testing.T) {
	fsys := fstest.MapFS{
		"02.json":   {Data: []byte(`{}`)},
		"01.json":   {Data: []byte(`{}`)},
		"notes.txt": {Data: []byte(`x`)},
	}
	names, err := ListFS(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"01.json", "02.json"}, names)
}

func TestCampaignReplace(t *testing.T) {
	c, err := NewCampaign(desc(1), desc(3))
	require.NoError(t, err)

	t.Run("swaps_existing_id", func(t *testing.T) {
		d := desc(3)
		d.Background = 7
		require.NoError(t, c.Replace(d))
		assert.Equal(t, 7, c.ByID(3).Background)
		assert.Len(t, c.Levels(), 2)
	})

	t.Run("inserts_new_id_in_order", func(t *testing.T) {
		require.NoError(t, c.Replace(desc(2)))
		assert.Equal(t, 3, c.Next(2).ID)
		assert.Equal(t, 2, c.Next(1).ID)
	})

	t.Run("rejects_invalid", func(t *testing.T) {
		bad := desc(4)
		bad.Width = 9
		assert.ErrorIs(t, c.Replace(bad), engine.ErrInvalidDescriptor)
		assert.Nil(t, c.ByID(4))
	})
}
