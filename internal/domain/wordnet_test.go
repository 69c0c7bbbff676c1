package domain

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleWordNet is a small taxonomy rooted at "entity":
//
//	0 entity
//	1 animal          -> 0
//	2 plant           -> 0
//	3 dog domestic_dog -> 1
//	4 cat             -> 1
//	5 bark            -> 2   (tree bark)
//	6 oak             -> 2
//	7 puppy           -> 3
//	8 sound           -> 0
//	9 bark bay dog    -> 8, 3 (the noise, also a dog sense)
func sampleWordNet(t *testing.T) *WordNet {
	t.Helper()
	synsets := []Synset{
		{ID: 0, Nouns: []string{"entity"}, Gloss: "that which exists"},
		{ID: 1, Nouns: []string{"animal"}, Gloss: "a living organism"},
		{ID: 2, Nouns: []string{"plant"}, Gloss: "a living organism lacking locomotion"},
		{ID: 3, Nouns: []string{"dog", "domestic_dog"}, Gloss: "a member of the genus Canis"},
		{ID: 4, Nouns: []string{"cat"}, Gloss: "feline mammal"},
		{ID: 5, Nouns: []string{"bark"}, Gloss: "tough protective covering of a woody stem"},
		{ID: 6, Nouns: []string{"oak"}, Gloss: "a deciduous tree"},
		{ID: 7, Nouns: []string{"puppy"}, Gloss: "a young dog"},
		{ID: 8, Nouns: []string{"sound"}, Gloss: "mechanical vibrations"},
		{ID: 9, Nouns: []string{"bark", "bay", "dog"}, Gloss: "the sound made by a dog"},
	}
	hypernyms := []Hypernym{
		{Synset: 1, Hypernyms: []int{0}},
		{Synset: 2, Hypernyms: []int{0}},
		{Synset: 3, Hypernyms: []int{1}},
		{Synset: 4, Hypernyms: []int{1}},
		{Synset: 5, Hypernyms: []int{2}},
		{Synset: 6, Hypernyms: []int{2}},
		{Synset: 7, Hypernyms: []int{3}},
		{Synset: 8, Hypernyms: []int{0}},
		{Synset: 9, Hypernyms: []int{8, 3}},
	}
	wn, err := NewWordNet(synsets, hypernyms)
	require.NoError(t, err)
	return wn
}

func TestWordNet_NounIndex(t *testing.T) {
	wn := sampleWordNet(t)

	assert.True(t, wn.IsNoun("bark"))
	assert.True(t, wn.IsNoun("domestic_dog"))
	assert.False(t, wn.IsNoun("unicorn"))
	assert.False(t, wn.IsNoun(""))

	ids, err := wn.Synsets("bark")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 9}, ids)

	ids, err = wn.Synsets("dog")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 9}, ids)

	assert.Equal(t, 10, wn.SynsetCount())
	assert.Equal(t, 11, wn.NounCount())
}

func TestWordNet_NounsIsSortedAndRestartable(t *testing.T) {
	wn := sampleWordNet(t)

	first := slices.Collect(wn.Nouns())
	second := slices.Collect(wn.Nouns())

	assert.Equal(t, first, second)
	assert.True(t, slices.IsSorted(first))
	assert.Len(t, first, wn.NounCount())

	// Early exit must stop the scan
	var got []string
	for noun := range wn.Nouns() {
		got = append(got, noun)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, first[:2], got)
}

func TestWordNet_LabelAndGloss(t *testing.T) {
	wn := sampleWordNet(t)

	label, err := wn.Label(3)
	require.NoError(t, err)
	assert.Equal(t, "dog domestic_dog", label)

	gloss, err := wn.Gloss(7)
	require.NoError(t, err)
	assert.Equal(t, "a young dog", gloss)

	_, err = wn.Label(10)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = wn.Gloss(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestWordNet_DistanceAndSCA(t *testing.T) {
	wn := sampleWordNet(t)

	tests := []struct {
		noun1, noun2 string
		wantDistance int
		wantSCA      string
	}{
		{noun1: "puppy", noun2: "cat", wantDistance: 3, wantSCA: "animal"},
		{noun1: "oak", noun2: "cat", wantDistance: 4, wantSCA: "entity"},
		{noun1: "puppy", noun2: "puppy", wantDistance: 0, wantSCA: "puppy"},
		{noun1: "bay", noun2: "sound", wantDistance: 1, wantSCA: "sound"},
		{noun1: "cat", noun2: "animal", wantDistance: 1, wantSCA: "animal"},
	}

	for _, tt := range tests {
		t.Run(tt.noun1+"-"+tt.noun2, func(t *testing.T) {
			d, err := wn.Distance(tt.noun1, tt.noun2)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDistance, d)

			back, err := wn.Distance(tt.noun2, tt.noun1)
			require.NoError(t, err)
			assert.Equal(t, d, back)

			sca, err := wn.SCA(tt.noun1, tt.noun2)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSCA, sca)
		})
	}
}

func TestWordNet_SharedSynsetHasZeroDistance(t *testing.T) {
	wn := sampleWordNet(t)

	// "bark" is {5, 9}, "dog" is {3, 9}: the sets meet at 9
	d, err := wn.Distance("bark", "dog")
	require.NoError(t, err)
	assert.Zero(t, d)

	ids1, err := wn.Synsets("bark")
	require.NoError(t, err)
	ids2, err := wn.Synsets("dog")
	require.NoError(t, err)
	want, err := wn.sap.LengthSet(ids1, ids2)
	require.NoError(t, err)
	assert.Equal(t, want, d)

	p, err := wn.Path("bark", "dog")
	require.NoError(t, err)
	assert.Equal(t, 9, p.Ancestor)
	assert.Equal(t, "bark bay dog", p.AncestorLabel)
	assert.Equal(t, 9, p.From)
	assert.Equal(t, 9, p.To)
}

func TestWordNet_Errors(t *testing.T) {
	wn := sampleWordNet(t)

	_, err := wn.Distance("", "dog")
	assert.ErrorIs(t, err, ErrNullInput)

	// Absent operands are reported before unknown ones
	_, err = wn.Distance("unicorn", "")
	assert.ErrorIs(t, err, ErrNullInput)

	_, err = wn.Distance("unicorn", "dog")
	assert.ErrorIs(t, err, ErrUnknownNoun)
	var unknown *UnknownNounError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "unicorn", unknown.Noun)

	_, err = wn.SCA("dog", "griffin")
	assert.ErrorIs(t, err, ErrUnknownNoun)

	_, err = wn.Synsets("griffin")
	assert.ErrorIs(t, err, ErrUnknownNoun)
}

func TestWordNet_NoCommonAncestor(t *testing.T) {
	wn, err := NewWordNet(
		[]Synset{
			{ID: 0, Nouns: []string{"left"}},
			{ID: 1, Nouns: []string{"right"}},
		},
		nil,
	)
	require.NoError(t, err)

	sca, err := wn.SCA("left", "right")
	require.NoError(t, err)
	assert.Equal(t, NoAncestor, sca)

	_, err = wn.Distance("left", "right")
	assert.ErrorIs(t, err, ErrNoCommonAncestor)
}

func TestNewWordNet_RejectsBadIDs(t *testing.T) {
	tests := []struct {
		name      string
		synsets   []Synset
		hypernyms []Hypernym
	}{
		{
			name:    "id out of range",
			synsets: []Synset{{ID: 0, Nouns: []string{"a"}}, {ID: 2, Nouns: []string{"b"}}},
		},
		{
			name:    "duplicate id",
			synsets: []Synset{{ID: 0, Nouns: []string{"a"}}, {ID: 0, Nouns: []string{"b"}}},
		},
		{
			name:      "hypernym out of range",
			synsets:   []Synset{{ID: 0, Nouns: []string{"a"}}, {ID: 1, Nouns: []string{"b"}}},
			hypernyms: []Hypernym{{Synset: 1, Hypernyms: []int{5}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWordNet(tt.synsets, tt.hypernyms)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestNewWordNet_RepeatedNounIsIdempotent(t *testing.T) {
	wn, err := NewWordNet(
		[]Synset{
			{ID: 0, Nouns: []string{"root"}},
			{ID: 1, Nouns: []string{"twin", "twin"}},
		},
		[]Hypernym{{Synset: 1, Hypernyms: []int{0}}},
	)
	require.NoError(t, err)

	ids, err := wn.Synsets("twin")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids)
}

func TestWordNet_ConcurrentReaders(t *testing.T) {
	wn := sampleWordNet(t)

	pairs := [][2]string{{"puppy", "cat"}, {"oak", "cat"}, {"bark", "dog"}, {"bay", "sound"}}
	type answer struct {
		distance int
		sca      string
	}
	want := make([]answer, len(pairs))
	for i, p := range pairs {
		d, err := wn.Distance(p[0], p[1])
		require.NoError(t, err)
		sca, err := wn.SCA(p[0], p[1])
		require.NoError(t, err)
		want[i] = answer{distance: d, sca: sca}
	}
	nouns := slices.Collect(wn.Nouns())

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				k := (g + i) % len(pairs)
				p := pairs[k]

				d, err := wn.Distance(p[0], p[1])
				assert.NoError(t, err)
				assert.Equal(t, want[k].distance, d)

				sca, err := wn.SCA(p[0], p[1])
				assert.NoError(t, err)
				assert.Equal(t, want[k].sca, sca)

				assert.True(t, wn.IsNoun(p[0]))
				assert.False(t, wn.IsNoun("unicorn"))
				assert.Equal(t, nouns, slices.Collect(wn.Nouns()))
			}
		}()
	}
	wg.Wait()
}
