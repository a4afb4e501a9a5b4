package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypePath(t *testing.T) {
	p1 := NewTypePath("Article")
	assert.Equal(t, "Article", p1.String())

	p2 := p1.Field("Tags")
	assert.Equal(t, "Article.Tags", p2.String())

	p3 := p2.Slice()
	assert.Equal(t, "Article.Tags[]", p3.String())
	assert.Equal(t, "Article.Tags", p2.String(), "paths are immutable")

	p4 := NewTypePath("Article").Field("Author").Pointer().Field("Name")
	assert.Equal(t, "Article.*Author.Name", p4.String())
}

func TestTypeString(t *testing.T) {
	graph := loadNews(t)

	article := graph.GetType(newsID("Article"))
	require.NotNil(t, article)

	tests := []struct {
		field string
		want  string
	}{
		{field: "Title", want: "string"},
		{field: "Author", want: "*Author"},
		{field: "Tags", want: "[]string"},
		{field: "Status", want: "Status"},
		{field: "ID", want: "uuid.UUID"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f := fieldByName(article, tt.field)
			require.NotNil(t, f)
			assert.Equal(t, tt.want, TypeString(f.Type))
		})
	}

	assert.Equal(t, "Article", TypeString(article))
	assert.Equal(t, "<nil>", TypeString(nil))
}
