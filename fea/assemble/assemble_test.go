package assemble

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/feagen/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handWritten = `feature kern {
    pos T o -55;
} kern;`

func TestFeaturesPreservesHandWrittenKern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	f := font.NewFont(map[font.Pair]int{
		{Left: "A", Right: "V"}: -40,
	}, nil, handWritten)
	asm := Assembler{Font: f}
	featxt, err := asm.Features("\n")
	require.NoError(t, err)
	assert.Equal(t, handWritten, featxt, "hand-written kern feature must survive untouched")
}

func TestFeaturesOverwrite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	f := font.NewFont(map[font.Pair]int{
		{Left: "A", Right: "V"}: -40,
	}, nil, handWritten)
	asm := Assembler{Font: f, Overwrite: true}
	featxt, err := asm.Features("\n")
	require.NoError(t, err)
	want := `feature kern {
    pos A V -40;
} kern;`
	assert.Equal(t, want, featxt)
}

func TestFeaturesGeneratesAlongsideOtherFeatures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	liga := `feature liga {
    sub f i by fi;
} liga;`
	f := font.NewFont(map[font.Pair]int{
		{Left: "A", Right: "V"}: -40,
	}, nil, liga)
	asm := Assembler{Font: f}
	featxt, err := asm.Features("\n")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(featxt, liga), "existing features must come first")
	assert.Contains(t, featxt, "pos A V -40;")
	assert.Contains(t, featxt, "\n\nfeature kern {")
}

func TestFeaturesNothingToGenerate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	f := font.NewFont(nil, nil, "")
	asm := Assembler{Font: f}
	featxt, err := asm.Features("\n")
	require.NoError(t, err)
	if featxt != "" {
		t.Errorf("expected empty result for empty font, have %q", featxt)
	}
}

func TestAbsoluteIncludes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	text := `include(../family.fea);
include(` + filepath.Join(string(filepath.Separator), "abs", "path.fea") + `);`
	result := AbsoluteIncludes(text, filepath.Join(string(filepath.Separator), "fonts", "foo"))
	assert.Contains(t, result, "include("+filepath.Join(string(filepath.Separator), "fonts", "family.fea")+")")
	assert.Contains(t, result, "include("+filepath.Join(string(filepath.Separator), "abs", "path.fea")+")")
}
