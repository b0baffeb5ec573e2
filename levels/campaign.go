package levels

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/milk9111/tilerunner/engine"
)

// Campaign is the ordered list of levels played in sequence. After the last
// level it wraps to the first.
type Campaign struct {
	levels []*engine.Descriptor
}

// NewCampaign orders the given levels by id.
func NewCampaign(descs ...*engine.Descriptor) (*Campaign, error) {
	if len(descs) == 0 {
		return nil, engine.ErrNoCampaign
	}
	levels := make([]*engine.Descriptor, 0, len(descs))
	for _, d := range descs {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		levels = append(levels, d)
	}
	sort.SliceStable(levels, func(i, j int) bool { return levels[i].ID < levels[j].ID })
	return &Campaign{levels: levels}, nil
}

// LoadCampaign builds a campaign from every level in fsys.
func LoadCampaign(fsys fs.FS) (*Campaign, error) {
	names, err := ListFS(fsys)
	if err != nil {
		return nil, err
	}
	descs := make([]*engine.Descriptor, 0, len(names))
	for _, name := range names {
		d, err := LoadFromFS(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("campaign %s: %w", name, err)
		}
		descs = append(descs, d)
	}
	return NewCampaign(descs...)
}

// Default is the campaign of embedded levels.
func Default() (*Campaign, error) {
	return LoadCampaign(LevelsFS)
}

func (c *Campaign) Levels() []*engine.Descriptor {
	return c.levels
}

func (c *Campaign) First() *engine.Descriptor {
	if len(c.levels) == 0 {
		return nil
	}
	return c.levels[0]
}

// Next returns the level after id, wrapping to the first.
func (c *Campaign) Next(id int) *engine.Descriptor {
	for i, d := range c.levels {
		if d.ID == id {
			return c.levels[(i+1)%len(c.levels)]
		}
	}
	return c.First()
}

// ByID returns the level with the given id, or nil.
func (c *Campaign) ByID(id int) *engine.Descriptor {
	for _, d := range c.levels {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// Replace swaps in d for the level with the same id, or adds it in order.
func (c *Campaign) Replace(d *engine.Descriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}
	for i, old := range c.levels {
		if old.ID == d.ID {
			c.levels[i] = d
			return nil
		}
	}
	c.levels = append(c.levels, d)
	sort.SliceStable(c.levels, func(i, j int) bool { return c.levels[i].ID < c.levels[j].ID })
	return nil
}
