package slidemenu_test

import (
	"fmt"
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"

	"github.com/ErikKalkoken/slidemenu/internal/slidemenu"
)

func TestConstraint_Resolve(t *testing.T) {
	cases := []struct {
		c    slidemenu.Constraint
		v    float32
		want float32
	}{
		{slidemenu.ExactSize(100), 30, 100},
		{slidemenu.ExactSize(100), 300, 100},
		{slidemenu.AtMostSize(100), 30, 30},
		{slidemenu.AtMostSize(100), 300, 100},
		{slidemenu.Constraint{}, 300, 300},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%+v %v", tc.c, tc.v), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.c.Resolve(tc.v))
		})
	}
}

func TestMeasure(t *testing.T) {
	natural := fyne.NewSize(120, 40)
	t.Run("total width is container width plus menu width", func(t *testing.T) {
		for _, w := range []float32{0, 1, 100, 400, 1080.5} {
			m := slidemenu.Measure(slidemenu.ExactSize(w), slidemenu.ExactSize(50), slidemenu.HeightPolicy{}, natural)
			assert.Equal(t, w*3/4, m.Menu.Width)
			assert.Equal(t, w+w*3/4, m.Total.Width)
		}
	})
	t.Run("width constraint passes through to content", func(t *testing.T) {
		m := slidemenu.Measure(slidemenu.ExactSize(400), slidemenu.ExactSize(50), slidemenu.HeightPolicy{}, natural)
		assert.Equal(t, float32(400), m.Content.Width)
		m = slidemenu.Measure(slidemenu.AtMostSize(400), slidemenu.ExactSize(50), slidemenu.HeightPolicy{}, natural)
		assert.Equal(t, float32(120), m.Content.Width)
	})
	cases := []struct {
		name   string
		height slidemenu.Constraint
		policy slidemenu.HeightPolicy
		want   float32
	}{
		{"match parent", slidemenu.ExactSize(50), slidemenu.HeightPolicy{Kind: slidemenu.MatchParent}, 50},
		{"wrap content smaller than container", slidemenu.ExactSize(50), slidemenu.HeightPolicy{Kind: slidemenu.WrapContent}, 40},
		{"wrap content larger than container", slidemenu.ExactSize(30), slidemenu.HeightPolicy{Kind: slidemenu.WrapContent}, 30},
		{"fixed", slidemenu.ExactSize(50), slidemenu.Fixed(70), 70},
	}
	for _, tc := range cases {
		t.Run("height for "+tc.name, func(t *testing.T) {
			m := slidemenu.Measure(slidemenu.ExactSize(400), tc.height, tc.policy, natural)
			assert.Equal(t, tc.want, m.Content.Height)
			assert.Equal(t, tc.want, m.Menu.Height)
			assert.Equal(t, tc.want, m.Total.Height)
		})
	}
}

func TestArrange(t *testing.T) {
	m := slidemenu.Measure(slidemenu.ExactSize(400), slidemenu.ExactSize(50), slidemenu.HeightPolicy{}, fyne.NewSize(10, 10))
	p := slidemenu.Arrange(m)
	assert.Equal(t, fyne.NewPos(0, 0), p.Content.Position)
	assert.Equal(t, fyne.NewSize(400, 50), p.Content.Size)
	assert.Equal(t, fyne.NewPos(400, 0), p.Menu.Position)
	assert.Equal(t, fyne.NewSize(300, 50), p.Menu.Size)
}
