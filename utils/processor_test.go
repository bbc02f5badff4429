package utils

import (
	"testing"

	"github.com/frankban/quicktest"
)

func TestProcessor_CountsAdditions(t *testing.T) {
	c := quicktest.New(t)
	p := NewProcessor[string]()
	c.Assert(p.Count(), quicktest.Equals, 0)

	p.Add("one")
	p.Add("two")
	p.Add("three")

	c.Assert(p.Count(), quicktest.Equals, 3)
	c.Assert(p.Items(), quicktest.DeepEquals, []string{"one", "two", "three"})
}

func TestProcessor_ItemsReturnsCopy(t *testing.T) {
	c := quicktest.New(t)
	p := NewProcessor[int]()
	p.Add(1)
	p.Add(2)

	items := p.Items()
	items[0] = 99

	c.Assert(p.Items(), quicktest.DeepEquals, []int{1, 2})
}

func TestProcessor_EmptyItems(t *testing.T) {
	c := quicktest.New(t)
	p := NewProcessor[int]()
	c.Assert(p.Items(), quicktest.HasLen, 0)
}
