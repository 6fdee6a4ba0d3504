package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"bloghub/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentCreates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	blog, err := store.Blogs().Create(ctx, blogInput("parent"))
	require.NoError(t, err)

	const workers = 64
	var wg sync.WaitGroup
	errs := make(chan error, workers*3)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := store.Blogs().Create(ctx, blogInput(fmt.Sprintf("blog%d", i))); err != nil {
				errs <- err
			}
			if _, err := store.Posts().Create(ctx, postInput(fmt.Sprintf("post%d", i), blog.ID)); err != nil {
				errs <- err
			}
			if _, err := store.Videos().Create(ctx, models.VideoInput{Title: "video", Author: "author"}); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	blogs, err := store.Blogs().List(ctx)
	require.NoError(t, err)
	assert.Len(t, blogs, workers+1)
	blogIDs := make(map[string]bool)
	for _, b := range blogs {
		blogIDs[b.ID] = true
	}
	assert.Len(t, blogIDs, workers+1)

	posts, err := store.Posts().List(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, workers)

	videos, err := store.Videos().List(ctx)
	require.NoError(t, err)
	require.Len(t, videos, workers)
	for i := 1; i < len(videos); i++ {
		assert.Greater(t, videos[i].ID, videos[i-1].ID)
	}
}

func TestConcurrentUpdatesAndDeletes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	blog, err := store.Blogs().Create(ctx, blogInput("shared"))
	require.NoError(t, err)

	const workers = 32
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := store.Blogs().Update(ctx, blog.ID, blogInput(fmt.Sprintf("name%d", i))); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	deleted := make(chan bool, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Blogs().Delete(ctx, blog.ID)
			deleted <- err == nil
		}()
	}
	wg.Wait()
	close(deleted)

	successes := 0
	for ok := range deleted {
		if ok {
			successes++
		}
	}
	assert.Equal(t, 1, successes)
}
