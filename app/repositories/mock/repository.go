package mock

import (
	"context"
	"strconv"
	"sync"
	"time"

	"bloghub/app/models"
	"bloghub/app/repositories"
)

// BlogRepository keeps blogs in memory in creation order.
type BlogRepository struct {
	blogs  []*models.Blog
	nextID int
	mutex  sync.RWMutex
}

// PostRepository keeps posts in memory and resolves blogs through Blogs.
type PostRepository struct {
	Blogs  *BlogRepository
	posts  []*models.Post
	nextID int
	mutex  sync.RWMutex
}

// VideoRepository keeps videos in memory. Now stamps new videos.
type VideoRepository struct {
	Now    func() time.Time
	videos []*models.Video
	nextID int64
	mutex  sync.RWMutex
}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{nextID: 1}
}

func NewPostRepository(blogs *BlogRepository) *PostRepository {
	return &PostRepository{Blogs: blogs, nextID: 1}
}

func NewVideoRepository() *VideoRepository {
	return &VideoRepository{Now: time.Now, nextID: 1}
}

// BlogRepository implementation
func (m *BlogRepository) List(ctx context.Context) ([]*models.Blog, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	blogs := make([]*models.Blog, 0, len(m.blogs))
	for _, blog := range m.blogs {
		copied := *blog
		blogs = append(blogs, &copied)
	}
	return blogs, nil
}

func (m *BlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, repositories.ErrNotFound
	}
	copied := *m.blogs[i]
	return &copied, nil
}

func (m *BlogRepository) Create(ctx context.Context, in models.BlogInput) (*models.Blog, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	blog := &models.Blog{ID: strconv.Itoa(m.nextID)}
	blog.Apply(in)
	m.nextID++
	m.blogs = append(m.blogs, blog)
	copied := *blog
	return &copied, nil
}

func (m *BlogRepository) Update(ctx context.Context, id string, in models.BlogInput) (*models.Blog, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, repositories.ErrNotFound
	}
	m.blogs[i].Apply(in)
	copied := *m.blogs[i]
	return &copied, nil
}

func (m *BlogRepository) Delete(ctx context.Context, id string) (*models.Blog, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, repositories.ErrNotFound
	}
	blog := m.blogs[i]
	m.blogs = append(m.blogs[:i], m.blogs[i+1:]...)
	return blog, nil
}

func (m *BlogRepository) Clear(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.blogs = nil
	return nil
}

func (m *BlogRepository) indexOf(id string) int {
	for i, blog := range m.blogs {
		if blog.ID == id {
			return i
		}
	}
	return -1
}

// PostRepository implementation
func (m *PostRepository) List(ctx context.Context) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := make([]*models.Post, 0, len(m.posts))
	for _, post := range m.posts {
		copied := *post
		posts = append(posts, &copied)
	}
	return posts, nil
}

func (m *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, repositories.ErrNotFound
	}
	copied := *m.posts[i]
	return &copied, nil
}

func (m *PostRepository) Create(ctx context.Context, in models.PostInput) (*models.Post, error) {
	blog, err := m.Blogs.GetByID(ctx, in.BlogID)
	if err != nil {
		return nil, repositories.ErrBlogNotFound
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	post := &models.Post{ID: strconv.Itoa(m.nextID)}
	post.Apply(in)
	if err := post.SetBlog(blog); err != nil {
		return nil, err
	}
	m.nextID++
	m.posts = append(m.posts, post)
	copied := *post
	return &copied, nil
}

func (m *PostRepository) Update(ctx context.Context, id string, in models.PostInput) (*models.Post, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, repositories.ErrNotFound
	}
	m.posts[i].Apply(in)
	copied := *m.posts[i]
	return &copied, nil
}

func (m *PostRepository) Delete(ctx context.Context, id string) (*models.Post, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, repositories.ErrNotFound
	}
	post := m.posts[i]
	m.posts = append(m.posts[:i], m.posts[i+1:]...)
	return post, nil
}

func (m *PostRepository) Clear(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.posts = nil
	return nil
}

func (m *PostRepository) indexOf(id string) int {
	for i, post := range m.posts {
		if post.ID == id {
			return i
		}
	}
	return -1
}

// VideoRepository implementation
func (m *VideoRepository) List(ctx context.Context) ([]*models.Video, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	videos := make([]*models.Video, 0, len(m.videos))
	for _, video := range m.videos {
		copied := *video
		videos = append(videos, &copied)
	}
	return videos, nil
}

func (m *VideoRepository) GetByID(ctx context.Context, id int64) (*models.Video, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, repositories.ErrNotFound
	}
	copied := *m.videos[i]
	return &copied, nil
}

func (m *VideoRepository) Create(ctx context.Context, in models.VideoInput) (*models.Video, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	video := &models.Video{ID: m.nextID}
	video.Apply(in)
	video.BeforeCreate(m.Now())
	m.nextID++
	m.videos = append(m.videos, video)
	copied := *video
	return &copied, nil
}

func (m *VideoRepository) Update(ctx context.Context, id int64, in models.VideoInput) (*models.Video, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, repositories.ErrNotFound
	}
	m.videos[i].Apply(in)
	copied := *m.videos[i]
	return &copied, nil
}

func (m *VideoRepository) Delete(ctx context.Context, id int64) (*models.Video, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, repositories.ErrNotFound
	}
	video := m.videos[i]
	m.videos = append(m.videos[:i], m.videos[i+1:]...)
	return video, nil
}

func (m *VideoRepository) Clear(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.videos = nil
	return nil
}

func (m *VideoRepository) indexOf(id int64) int {
	for i, video := range m.videos {
		if video.ID == id {
			return i
		}
	}
	return -1
}

var (
	_ repositories.BlogRepository  = (*BlogRepository)(nil)
	_ repositories.PostRepository  = (*PostRepository)(nil)
	_ repositories.VideoRepository = (*VideoRepository)(nil)
)
