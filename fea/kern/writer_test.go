package kern

import (
	"testing"

	"github.com/npillmayer/feagen/core"
	"github.com/npillmayer/feagen/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEmptyFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	f := font.NewFont(nil, nil, "")
	featxt, err := NewWriter(f).Write("\n")
	require.NoError(t, err)
	if featxt != "" {
		t.Errorf("expected empty output for empty font, have %q", featxt)
	}
}

func TestWriteGlyphPairsOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	f := font.NewFont(map[font.Pair]int{
		{Left: "T", Right: "o"}: -60,
		{Left: "A", Right: "V"}: -40,
	}, nil, "")
	featxt, err := NewWriter(f).Write("\n")
	require.NoError(t, err)
	want := `feature kern {
    pos A V -40;
    pos T o -60;
} kern;`
	assert.Equal(t, want, featxt)
}

// A glyph which is both a literal in a glyph pair rule and a member of a
// class used in a broader rule must be kept only in the more specific rule;
// the class rule narrows to the surviving members.
func TestPureGlyphConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	f := font.NewFont(map[font.Pair]int{
		{Left: "A", Right: "B"}:              -10,
		{Left: "A", Right: "C"}:              -10,
		{Left: "public.kern1.X", Right: "B"}: -20,
	}, font.Groups{
		"public.kern1.X": {"A", "D"},
	}, "")
	featxt, err := NewWriter(f).Write("\n")
	require.NoError(t, err)
	want := `feature kern {
    pos A B -10;
    pos A C -10;
    subtable;
    enum pos [D] B -20;
} kern;`
	assert.Equal(t, want, featxt)
}

// The symmetric case: a glyph–right-class rule loses the members whose
// concrete pairs a glyph pair rule already claims.
func TestRightClassNarrowing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	f := font.NewFont(map[font.Pair]int{
		{Left: "y", Right: "V"}:              -20,
		{Left: "y", Right: "public.kern2.R"}: -30,
	}, font.Groups{
		"public.kern2.R": {"V", "W"},
	}, "")
	featxt, err := NewWriter(f).Write("\n")
	require.NoError(t, err)
	want := `feature kern {
    pos y V -20;
    subtable;
    enum pos y [W] -30;
} kern;`
	assert.Equal(t, want, featxt)
}

// A class–class rule narrows a side when one of its members is covered by
// glyph pair rules in every combination with the other side.
func TestClassPairNarrowing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	f := font.NewFont(map[font.Pair]int{
		{Left: "public.kern1.ONE", Right: "public.kern2.TWO"}: -15,
		{Left: "A", Right: "X"}:                               -5,
		{Left: "A", Right: "Y"}:                               -7,
	}, font.Groups{
		"public.kern1.ONE": {"A", "B"},
		"public.kern2.TWO": {"X", "Y"},
	}, "")
	featxt, err := NewWriter(f).Write("\n")
	require.NoError(t, err)
	want := `@public.kern2.TWO = [X Y];

feature kern {
    pos A X -5;
    pos A Y -7;
    subtable;
    pos [B] @public.kern2.TWO -15;
} kern;`
	assert.Equal(t, want, featxt)
}

// Regression: a member stays on a class–class rule's side as long as any of
// its concrete pairs is unclaimed. With only (A,X) claimed, A survives via
// (A,Y), so the rule keeps both class names even though it still expands to
// the claimed pair. The cross-product narrowing resolves against prior
// buckets and earlier rules only; this pins the behavior down.
func TestClassPairSharedCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	f := font.NewFont(map[font.Pair]int{
		{Left: "public.kern1.ONE", Right: "public.kern2.TWO"}: -15,
		{Left: "A", Right: "X"}:                               -5,
	}, font.Groups{
		"public.kern1.ONE": {"A", "B"},
		"public.kern2.TWO": {"X", "Y"},
	}, "")
	featxt, err := NewWriter(f).Write("\n")
	require.NoError(t, err)
	want := `@public.kern1.ONE = [A B];
@public.kern2.TWO = [X Y];

feature kern {
    pos A X -5;
    subtable;
    pos @public.kern1.ONE @public.kern2.TWO -15;
} kern;`
	assert.Equal(t, want, featxt)
}

// A group name illegal in feature syntax is rewritten to a legal
// identifier; its kerning entries and its declaration line follow suit.
func TestGroupRenaming(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	f := font.NewFont(map[font.Pair]int{
		{Left: "public.kern1.foo bar", Right: "x"}: -30,
	}, font.Groups{
		"public.kern1.foo bar": {"a", "b"},
	}, "")
	featxt, err := NewWriter(f).Write("\n")
	require.NoError(t, err)
	want := `@public.kern1.foobar = [a b];

feature kern {
    subtable;
    enum pos @public.kern1.foobar x -30;
} kern;`
	assert.Equal(t, want, featxt)
}

// Two groups whose corrected names collide get deterministic numeric
// suffixes, first free suffix starting at 1, in sorted group-name order.
func TestGroupRenamingCollision(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	f := font.NewFont(map[font.Pair]int{
		{Left: "public.kern1.A B", Right: "x"}: -1,
		{Left: "public.kern1.AB", Right: "x"}:  -2,
	}, font.Groups{
		"public.kern1.A B": {"a"},
		"public.kern1.AB":  {"b"},
	}, "")
	featxt, err := NewWriter(f).Write("\n")
	require.NoError(t, err)
	want := `@public.kern1.AB = [a];
@public.kern1.AB_1 = [b];

feature kern {
    subtable;
    enum pos @public.kern1.AB x -1;
    enum pos @public.kern1.AB_1 x -2;
} kern;`
	assert.Equal(t, want, featxt)
}

// Pre-declared feature classes carry no kerning of their own; their first
// member is the key glyph, and its raw values are pulled up to the class.
func TestKeyGlyphResolution(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	featsrc := `@MMK_L_A = [A Aacute];
@MMK_R_V = [V W];
`
	f := font.NewFont(map[font.Pair]int{
		{Left: "A", Right: "V"}: -40, // key–key, becomes the class pair value
		{Left: "A", Right: "x"}: -10, // left key, becomes a class–glyph rule
		{Left: "y", Right: "V"}: -20, // right key, becomes a glyph–class rule
	}, nil, featsrc)
	featxt, err := NewWriter(f).Write("\n")
	require.NoError(t, err)
	want := `feature kern {
    subtable;
    enum pos @MMK_L_A x -10;
    subtable;
    enum pos y @MMK_R_V -20;
    subtable;
    pos @MMK_L_A @MMK_R_V -40;
} kern;`
	assert.Equal(t, want, featxt)
}

func TestWriteDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	f := font.NewFont(map[font.Pair]int{
		{Left: "public.kern1.ONE", Right: "public.kern2.TWO"}: -15,
		{Left: "public.kern1.ONE", Right: "x"}:                -25,
		{Left: "y", Right: "public.kern2.TWO"}:                -35,
		{Left: "A", Right: "X"}:                               -5,
		{Left: "T", Right: "o"}:                               -60,
	}, font.Groups{
		"public.kern1.ONE": {"A", "B"},
		"public.kern2.TWO": {"X", "Y"},
		"otherGroup":       {"m", "n"},
	}, "")
	first, err := NewWriter(f).Write("\n")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := NewWriter(f).Write("\n")
		require.NoError(t, err)
		if again != first {
			t.Fatalf("output differs between runs:\n%s\n----\n%s", first, again)
		}
	}
}

func TestWriterSingleShot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	w := NewWriter(font.NewFont(nil, nil, ""))
	_, err := w.Write("\n")
	require.NoError(t, err)
	_, err = w.Write("\n")
	if err == nil {
		t.Error("expected error from second Write on single-shot writer")
	}
}

func TestWriteMalformedFeatureSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "feagen.fea")
	defer teardown()
	//
	f := font.NewFont(map[font.Pair]int{
		{Left: "A", Right: "V"}: -40,
	}, nil, "@MMK_L_A = [A")
	_, err := NewWriter(f).Write("\n")
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}
