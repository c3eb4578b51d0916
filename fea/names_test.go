package fea

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestGroupRole(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	role, base := GroupRole("public.kern1.round")
	if role != LeftKerningName {
		t.Errorf("expected public.kern1.round to be a left kerning group, is %v", role)
	}
	assert.Equal(t, "round", base)
	role, base = GroupRole("public.kern2.A")
	assert.Equal(t, RightKerningName, role)
	assert.Equal(t, "A", base)
	role, _ = GroupRole("public.kern1.") // empty base is not a kerning group
	assert.Equal(t, NotKerningName, role)
	role, _ = GroupRole("myOtherGroup")
	assert.Equal(t, NotKerningName, role)
}

func TestClassRole(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	role, base := ClassRole("@MMK_L_A")
	assert.Equal(t, LeftKerningName, role)
	assert.Equal(t, "A", base)
	role, base = ClassRole("@MMK_R_quote")
	assert.Equal(t, RightKerningName, role)
	assert.Equal(t, "quote", base)
	role, _ = ClassRole("@LETTERS")
	assert.Equal(t, NotKerningName, role)
}

func TestLegalNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	assert.True(t, IsLegalName("@MMK_L_A"))
	assert.True(t, IsLegalName("@public.kern1.foo"))
	assert.False(t, IsLegalName("MMK_L_A"), "missing class marker")
	assert.False(t, IsLegalName("@foo bar"), "space is illegal")
	assert.False(t, IsLegalName("@"), "marker alone is no name")
}

func TestMakeClassName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	if name := MakeClassName("public.kern1.foo bar"); name != "@public.kern1.foobar" {
		t.Errorf("expected corrected name @public.kern1.foobar, have %s", name)
	}
	assert.Equal(t, "@a.b_c", MakeClassName("a-'&.b_c"))
}
