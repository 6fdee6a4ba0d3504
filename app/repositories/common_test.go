package repositories

import (
	"context"
	"testing"
	"time"

	"bloghub/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 31, 10, 20, 30, 123000000, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore("", nil, WithClock(func() time.Time { return testNow }))
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func TestGetNextID(t *testing.T) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	defer db.Close()

	base := testNow.UnixMilli()

	t.Run("first ID is the current millisecond", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			id, err := getNextID(txn, PostSeqKey, testNow)
			assert.NoError(t, err)
			assert.Equal(t, base, id)
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("same millisecond is bumped", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			for i := int64(1); i <= 3; i++ {
				id, err := getNextID(txn, PostSeqKey, testNow)
				assert.NoError(t, err)
				assert.Equal(t, base+i, id)
			}
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("clock going backwards keeps ids increasing", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			id, err := getNextID(txn, PostSeqKey, testNow.Add(-time.Hour))
			assert.NoError(t, err)
			assert.Equal(t, base+4, id)
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("different sequence keys", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			id, err := getNextID(txn, VideoSeqKey, testNow)
			assert.NoError(t, err)
			assert.Equal(t, base, id, "video sequence is independent of posts")
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("later clock wins", func(t *testing.T) {
		later := testNow.Add(time.Minute)
		err := db.Update(func(txn *badger.Txn) error {
			id, err := getNextID(txn, PostSeqKey, later)
			assert.NoError(t, err)
			assert.Equal(t, later.UnixMilli(), id)
			return nil
		})
		assert.NoError(t, err)
	})
}

func TestEntityKeyOrdering(t *testing.T) {
	assert.Equal(t, "blog:00000000000000000042", string(entityKey(BlogKeyPrefix, 42)))
	assert.Less(t, string(entityKey(VideoKeyPrefix, 9)), string(entityKey(VideoKeyPrefix, 10)))
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1711880430123", 1711880430123, true},
		{"42", 42, true},
		{"", 0, false},
		{"0", 0, false},
		{"-5", 0, false},
		{"0042", 0, false},
		{"+42", 0, false},
		{"abc", 0, false},
		{"99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseID(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarshalEntity(t *testing.T) {
	t.Run("marshal post", func(t *testing.T) {
		post := &models.Post{
			ID:       "1",
			Title:    "Test Post",
			Content:  "Test Content",
			BlogID:   "2",
			BlogName: "blog",
		}

		data, err := marshalEntity(post)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"id":"1","title":"Test Post","shortDescription":"","content":"Test Content","blogId":"2","blogName":"blog"}`, string(data))
	})

	t.Run("marshal invalid entity", func(t *testing.T) {
		invalidEntity := struct {
			Ch chan int
		}{
			Ch: make(chan int),
		}

		_, err := marshalEntity(invalidEntity)
		assert.Error(t, err)
	})
}

func TestUnmarshalEntity(t *testing.T) {
	t.Run("unmarshal video", func(t *testing.T) {
		data := []byte(`{"id":7,"title":"t","author":"a","minAgeRestriction":null,"availableResolutions":["P144"]}`)
		var video models.Video
		err := unmarshalEntity(data, &video)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), video.ID)
		assert.Nil(t, video.MinAgeRestriction)
		assert.Equal(t, []models.Resolution{models.P144}, video.AvailableResolutions)
	})

	t.Run("unmarshal invalid JSON", func(t *testing.T) {
		data := []byte(`{"id":1,invalid json}`)
		var post models.Post
		err := unmarshalEntity(data, &post)
		assert.Error(t, err)
	})

	t.Run("unmarshal into nil", func(t *testing.T) {
		data := []byte(`{"id":1}`)
		err := unmarshalEntity(data, nil)
		assert.Error(t, err)
	})
}

func TestUpdateHonoursContext(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := update(ctx, store.db, func(txn *badger.Txn) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestStoreReset(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	blog, err := store.Blogs().Create(ctx, models.BlogInput{Name: "n", Description: "d", WebsiteURL: "https://a.com"})
	require.NoError(t, err)
	_, err = store.Posts().Create(ctx, models.PostInput{Title: "t", ShortDescription: "s", Content: "c", BlogID: blog.ID})
	require.NoError(t, err)
	_, err = store.Videos().Create(ctx, models.VideoInput{Title: "t", Author: "a"})
	require.NoError(t, err)

	require.NoError(t, store.Reset(ctx))

	blogs, err := store.Blogs().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, blogs)
	posts, err := store.Posts().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
	videos, err := store.Videos().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, videos)
	assert.True(t, store.InMemory())
}
