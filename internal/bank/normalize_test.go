package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBank_JSONArray(t *testing.T) {
	data := []byte(`[
		{"id": 7, "stem": "Pick A", "options": ["a", "b"], "answer": "A", "category": "logic"},
		{"qid": "q8", "question": "Pick B", "choices": ["a", "b", "c"], "answer_index": 1}
	]`)

	b, err := ParseBank(data)
	require.NoError(t, err)
	require.Len(t, b, 2)

	assert.Equal(t, "7", b[0].ID, "numeric ids are string-coerced")
	assert.Equal(t, "Pick A", b[0].Stem)
	assert.Equal(t, "logic", b[0].Category)

	assert.Equal(t, "q8", b[1].ID)
	assert.Equal(t, "Pick B", b[1].Stem)
	assert.Equal(t, []string{"a", "b", "c"}, b[1].Options)
	assert.Equal(t, "B", b[1].Answer, "answer_index letterizes")
}

func TestParseBank_NDJSONFallback(t *testing.T) {
	data := []byte(`{"id": "1", "stem": "one", "options": ["x"], "answer": "A"}
not json at all
{"id": "2", "stem": "two", "options": ["y"], "answer": "A"}`)

	b, err := ParseBank(data)
	require.NoError(t, err)
	require.Len(t, b, 2, "bad lines are skipped")
	assert.Equal(t, "2", b[1].ID)
}

func TestParseBank_StemHTMLStripped(t *testing.T) {
	data := []byte(`[{"id": "1", "stem_html": "<p>first</p><p>second<br>third</p>", "options": ["x"], "answer": "A"}]`)

	b, err := ParseBank(data)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\nthird", b[0].Stem)
}

func TestParseBank_MissingIDUsesPosition(t *testing.T) {
	data := []byte(`[{"stem": "s", "options": ["x"], "answer": "A"}, {"stem": "t", "options": ["x"], "answer": "B"}]`)

	b, err := ParseBank(data)
	require.NoError(t, err)
	assert.Equal(t, "1", b[0].ID)
	assert.Equal(t, "2", b[1].ID)
}

func TestParseBank_SynonymFields(t *testing.T) {
	data := []byte(`[{"_id": "z", "text": "via text", "options": ["x"], "correct": "c", "analysis": "because"}]`)

	b, err := ParseBank(data)
	require.NoError(t, err)
	assert.Equal(t, "z", b[0].ID)
	assert.Equal(t, "via text", b[0].Stem)
	assert.Equal(t, "c", b[0].Answer)
	assert.Equal(t, "because", b[0].Explanation)
}

func TestParseBank_EmptyInput(t *testing.T) {
	_, err := ParseBank([]byte("   "))
	assert.Error(t, err)
}

func TestParseCategoryMap_Object(t *testing.T) {
	cm, err := ParseCategoryMap([]byte(`{"1": "logic", "2": "reading"}`))
	require.NoError(t, err)
	assert.Equal(t, CategoryMap{"1": "logic", "2": "reading"}, cm)
}

func TestParseCategoryMap_ArrayRows(t *testing.T) {
	cm, err := ParseCategoryMap([]byte(`[{"id": "1", "category": "logic"}, {"qid": 2, "cat": "reading"}]`))
	require.NoError(t, err)
	assert.Equal(t, CategoryMap{"1": "logic", "2": "reading"}, cm)
}

func TestParseCategoryMap_DelimitedLines(t *testing.T) {
	cm, err := ParseCategoryMap([]byte("1,logic\n2\treading\n\nbroken-line\n"))
	require.NoError(t, err)
	assert.Equal(t, CategoryMap{"1": "logic", "2": "reading"}, cm)
}

func TestIndexToLetter(t *testing.T) {
	assert.Equal(t, "A", IndexToLetter(0))
	assert.Equal(t, "D", IndexToLetter(3))
	assert.Equal(t, "Z", IndexToLetter(25))
	assert.Equal(t, "", IndexToLetter(-1))
	assert.Equal(t, "", IndexToLetter(26))
}

func TestEffectiveCategoryOverride(t *testing.T) {
	q := Question{ID: "9", Category: "native"}
	assert.Equal(t, "native", EffectiveCategory(&q, CategoryMap{}))
	assert.Equal(t, "mapped", EffectiveCategory(&q, CategoryMap{"9": "mapped"}))
}

func TestBankCategoriesSorted(t *testing.T) {
	b := Bank{
		{ID: "1", Category: "zeta"},
		{ID: "2", Category: "alpha"},
		{ID: "3", Category: ""},
		{ID: "4", Category: "alpha"},
	}
	assert.Equal(t, []string{"alpha", "zeta"}, b.Categories(CategoryMap{}))
	assert.Equal(t, []string{"alpha", "mapped", "zeta"}, b.Categories(CategoryMap{"3": "mapped"}))
}

func TestValidateBank_RejectsBadAnswer(t *testing.T) {
	err := ValidateBank(Bank{{ID: "1", Stem: "s", Options: []string{"x"}, Answer: "AB"}})
	assert.Error(t, err)
}

func TestValidateBank_RejectsEmptyID(t *testing.T) {
	err := ValidateBank(Bank{{ID: "", Stem: "s", Options: []string{"x"}, Answer: "A"}})
	assert.Error(t, err)
}
