package article_ser

import (
	"testing"
	"time"

	"engipec/models"
	"engipec/models/ctypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draft(title string) models.ArticleDraft {
	return models.ArticleDraft{
		Title:      title,
		Excerpt:    "excerpt " + title,
		Content:    "content " + title,
		Category:   "obras",
		ImageSrc:   "/images/" + title + ".jpg",
		AuthorID:   2,
		AuthorName: "João",
	}
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	store := NewArticleStore(nil)

	a := store.Add(draft("a"))
	b := store.Add(draft("b"))
	c := store.Add(draft("c"))

	assert.Equal(t, uint(1), a.ID)
	assert.Equal(t, uint(2), b.ID)
	assert.Equal(t, uint(3), c.ID)

	// id始终是现有最大id加一
	store.Remove(b.ID)
	d := store.Add(draft("d"))
	assert.Equal(t, uint(4), d.ID)
}

func TestAddSetsCreationDate(t *testing.T) {
	store := NewArticleStore(nil)
	a := store.Add(draft("a"))

	assert.True(t, a.CreatedAt.Equal(ctypes.Today()))
	assert.Nil(t, a.UpdatedAt)
}

func TestFeaturedExclusivity(t *testing.T) {
	store := NewArticleStore(nil)

	first := draft("a")
	first.Featured = true
	first.Category = "tools"
	a := store.Add(first)
	assert.True(t, a.Featured)

	second := draft("b")
	second.Featured = true
	second.Category = "Tools"
	b := store.Add(second)

	// 新头条接管，旧头条被取消
	featured, ok := store.FeaturedArticle()
	require.True(t, ok)
	assert.Equal(t, b.ID, featured.ID)

	got, ok := store.GetByID(a.ID)
	require.True(t, ok)
	assert.False(t, got.Featured)

	// 两种写法收敛为同一个分类
	assert.Equal(t, []string{"Tools"}, store.Categories())

	// 任何可达状态下头条数量不超过1
	count := 0
	for _, art := range store.Articles() {
		if art.Featured {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestFeaturedExclusivityOnUpdate(t *testing.T) {
	store := NewArticleStore(nil)
	a := store.Add(draft("a"))
	fb := draft("b")
	fb.Featured = true
	b := store.Add(fb)

	// 更新a为头条，b被取消
	ua := draft("a")
	ua.Featured = true
	require.True(t, store.Update(a.ID, ua))

	featured, ok := store.FeaturedArticle()
	require.True(t, ok)
	assert.Equal(t, a.ID, featured.ID)

	got, _ := store.GetByID(b.ID)
	assert.False(t, got.Featured)
}

func TestNoFeaturedArticle(t *testing.T) {
	store := NewArticleStore(nil)
	store.Add(draft("a"))

	_, ok := store.FeaturedArticle()
	assert.False(t, ok)
}

func TestUpdateMissingIDIsNoop(t *testing.T) {
	store := NewArticleStore(nil)
	a := store.Add(draft("a"))

	assert.False(t, store.Update(99, draft("x")))

	got, ok := store.GetByID(a.ID)
	require.True(t, ok)
	assert.Equal(t, "a", got.Title)
	assert.Len(t, store.Articles(), 1)
}

func TestUpdatePreservesCreationDate(t *testing.T) {
	seed := []models.Article{{
		ID:        1,
		Title:     "a",
		Excerpt:   "e",
		Content:   "c",
		Category:  "Obras",
		CreatedAt: ctypes.NewDate(2023, time.June, 15),
	}}
	store := NewArticleStore(seed)

	require.True(t, store.Update(1, draft("renamed")))
	got, ok := store.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, "15/06/2023", got.CreatedAt.String())
}

func TestUpdatedAtGating(t *testing.T) {
	store := NewArticleStore(nil)
	d := draft("a")
	a := store.Add(d)

	// 内容完全相同，不刷新更新日期
	require.True(t, store.Update(a.ID, d))
	got, _ := store.GetByID(a.ID)
	assert.Nil(t, got.UpdatedAt)

	// 仅改头条标记或封面，也不刷新更新日期
	d2 := d
	d2.Featured = true
	d2.ImageSrc = "/images/other.jpg"
	require.True(t, store.Update(a.ID, d2))
	got, _ = store.GetByID(a.ID)
	assert.Nil(t, got.UpdatedAt)

	// 标题变化，刷新更新日期
	d3 := d
	d3.Title = "b"
	require.True(t, store.Update(a.ID, d3))
	got, _ = store.GetByID(a.ID)
	require.NotNil(t, got.UpdatedAt)
	assert.True(t, got.UpdatedAt.Equal(ctypes.Today()))
}

func TestRemoveIsIdempotent(t *testing.T) {
	store := NewArticleStore(nil)
	a := store.Add(draft("a"))

	store.Remove(a.ID)
	assert.Empty(t, store.Articles())

	// 再删一次不报错不变化
	store.Remove(a.ID)
	assert.Empty(t, store.Articles())
}

func TestGetByIDMissing(t *testing.T) {
	store := NewArticleStore(nil)
	_, ok := store.GetByID(7)
	assert.False(t, ok)
}

func TestSortByRecency(t *testing.T) {
	seed := []models.Article{
		{ID: 1, Title: "old", Category: "Obras", CreatedAt: ctypes.NewDate(2023, time.January, 10)},
		{ID: 2, Title: "newest", Category: "Obras", CreatedAt: ctypes.NewDate(2024, time.May, 1)},
		{ID: 3, Title: "middle", Category: "Obras", CreatedAt: ctypes.NewDate(2023, time.August, 20)},
	}
	store := NewArticleStore(seed)

	assertSorted := func() {
		t.Helper()
		articles := store.Articles()
		for i := 1; i < len(articles); i++ {
			assert.False(t, articles[i-1].CreatedAt.Before(articles[i].CreatedAt),
				"articles out of order at %d", i)
		}
	}

	assertSorted()
	assert.Equal(t, "newest", store.Articles()[0].Title)

	// 新增的文章日期为今天，排在最前
	store.Add(draft("today"))
	assertSorted()
	assert.Equal(t, "today", store.Articles()[0].Title)

	store.Remove(2)
	assertSorted()
}

func TestSortStableOnEqualDates(t *testing.T) {
	store := NewArticleStore(nil)
	store.Add(draft("first"))
	store.Add(draft("second"))
	store.Add(draft("third"))

	// 同一天创建，保持插入顺序
	titles := []string{}
	for _, a := range store.Articles() {
		titles = append(titles, a.Title)
	}
	assert.Equal(t, []string{"first", "second", "third"}, titles)
}

func TestCategoryRegistration(t *testing.T) {
	store := NewArticleStore(nil)

	store.AddCategory("paint")
	store.AddCategory("Paint")
	store.AddCategory(" paint ")
	assert.Equal(t, []string{"Paint"}, store.Categories())

	// 文章带来的新分类自动注册
	d := draft("a")
	d.Category = "city hall"
	store.Add(d)
	assert.Equal(t, []string{"Paint", "City hall"}, store.Categories())
}

func TestRemoveCategoryKeepsArticles(t *testing.T) {
	store := NewArticleStore(nil)
	d := draft("a")
	d.Category = "obras"
	a := store.Add(d)

	store.RemoveCategory("Obras")
	assert.Empty(t, store.Categories())

	// 文章仍引用被移除的分类
	got, ok := store.GetByID(a.ID)
	require.True(t, ok)
	assert.Equal(t, "Obras", got.Category)
}

func TestSeedCategoriesDerived(t *testing.T) {
	seed := []models.Article{
		{ID: 1, Title: "a", Category: "obras", CreatedAt: ctypes.NewDate(2024, time.January, 1)},
		{ID: 2, Title: "b", Category: "Obras", CreatedAt: ctypes.NewDate(2024, time.January, 2)},
		{ID: 3, Title: "c", Category: "paint", CreatedAt: ctypes.NewDate(2024, time.January, 3)},
	}
	store := NewArticleStore(seed)
	assert.Equal(t, []string{"Obras", "Paint"}, store.Categories())
}
