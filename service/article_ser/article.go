package article_ser

import (
	"sort"

	"engipec/models"
	"engipec/models/ctypes"
	"engipec/utils"
)

// ArticleStore 文章仓库，持有文章集合、分类集合和头条文章的派生视图
// 文章只存活于进程生命周期内，不写入持久化底座
type ArticleStore struct {
	articles   []models.Article
	categories []string
}

// NewArticleStore 创建文章仓库，seed为初始文章集合
// 初始分类集合由seed中出现过的分类推导，初始集合按日期排序
func NewArticleStore(seed []models.Article) *ArticleStore {
	s := &ArticleStore{
		articles:   make([]models.Article, len(seed)),
		categories: make([]string, 0),
	}
	copy(s.articles, seed)
	for i := range s.articles {
		s.articles[i].Category = utils.NormalizeCategory(s.articles[i].Category)
		s.registerCategory(s.articles[i].Category)
	}
	s.sortByDate()
	return s
}

// Add 添加文章，分配id并记录创建日期，返回新文章
func (s *ArticleStore) Add(draft models.ArticleDraft) models.Article {
	category := utils.NormalizeCategory(draft.Category)

	article := models.Article{
		ID:         s.nextID(),
		Title:      draft.Title,
		Excerpt:    draft.Excerpt,
		Content:    draft.Content,
		Category:   category,
		ImageSrc:   draft.ImageSrc,
		Featured:   draft.Featured,
		CreatedAt:  ctypes.Today(),
		AuthorID:   draft.AuthorID,
		AuthorName: draft.AuthorName,
	}

	// 新文章设为头条时，先取消其他文章的头条标记
	if draft.Featured {
		s.clearFeatured()
	}

	s.articles = append(s.articles, article)
	s.registerCategory(category)
	s.sortByDate()
	return article
}

// Update 整体替换可编辑字段，id不存在时静默忽略
// 仅当标题、摘要、内容或分类变化时才刷新更新日期
func (s *ArticleStore) Update(id uint, draft models.ArticleDraft) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	category := utils.NormalizeCategory(draft.Category)
	existing := s.articles[idx]

	contentChanged := existing.Title != draft.Title ||
		existing.Excerpt != draft.Excerpt ||
		existing.Content != draft.Content ||
		existing.Category != category

	if draft.Featured {
		s.clearFeatured()
	}

	updated := existing
	updated.Title = draft.Title
	updated.Excerpt = draft.Excerpt
	updated.Content = draft.Content
	updated.Category = category
	updated.ImageSrc = draft.ImageSrc
	updated.Featured = draft.Featured
	updated.AuthorID = draft.AuthorID
	updated.AuthorName = draft.AuthorName
	if contentChanged {
		today := ctypes.Today()
		updated.UpdatedAt = &today
	}

	s.articles[idx] = updated
	s.registerCategory(category)
	s.sortByDate()
	return true
}

// Remove 删除文章，id不存在时静默忽略
func (s *ArticleStore) Remove(id uint) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	s.articles = append(s.articles[:idx], s.articles[idx+1:]...)
	s.sortByDate()
}

// GetByID 按id查找文章，第二个返回值表示是否存在
func (s *ArticleStore) GetByID(id uint) (models.Article, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Article{}, false
	}
	return s.articles[idx], true
}

// Articles 返回文章集合的只读快照
func (s *ArticleStore) Articles() []models.Article {
	out := make([]models.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

// FeaturedArticle 返回当前头条文章，没有头条时第二个返回值为false
// 每次扫描集合重新计算，不单独维护状态
func (s *ArticleStore) FeaturedArticle() (models.Article, bool) {
	for _, a := range s.articles {
		if a.Featured {
			return a, true
		}
	}
	return models.Article{}, false
}

// Categories 返回分类集合的只读快照，保持注册顺序
func (s *ArticleStore) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// AddCategory 注册分类，规范化后去重，重复添加为空操作
func (s *ArticleStore) AddCategory(name string) {
	category := utils.NormalizeCategory(name)
	if category == "" {
		return
	}
	s.registerCategory(category)
}

// RemoveCategory 从展示集合中移除分类标签
// 仍引用该分类的文章不受影响
func (s *ArticleStore) RemoveCategory(name string) {
	for i, c := range s.categories {
		if c == name {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return
		}
	}
}

// nextID 分配下一个id：现有最大id加一，集合为空时为1
func (s *ArticleStore) nextID() uint {
	var max uint
	for _, a := range s.articles {
		if a.ID > max {
			max = a.ID
		}
	}
	return max + 1
}

func (s *ArticleStore) indexOf(id uint) int {
	for i, a := range s.articles {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// clearFeatured 取消所有文章的头条标记，保证头条唯一
func (s *ArticleStore) clearFeatured() {
	for i := range s.articles {
		s.articles[i].Featured = false
	}
}

func (s *ArticleStore) registerCategory(category string) {
	if category == "" {
		return
	}
	for _, c := range s.categories {
		if c == category {
			return
		}
	}
	s.categories = append(s.categories, category)
}

// sortByDate 按创建日期倒序排列，同一天的文章保持原有相对顺序
func (s *ArticleStore) sortByDate() {
	sort.SliceStable(s.articles, func(i, j int) bool {
		return s.articles[j].CreatedAt.Before(s.articles[i].CreatedAt)
	})
}
