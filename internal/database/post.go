package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thereayou/microblog/internal/models"
	"github.com/thereayou/microblog/internal/store"
)

// CreatePost publishes a new post by the named author and fans its id out
// to every structure that lists it: the author's post list, the global
// timeline, and the mention list of every resolvable @name in the content.
// The steps run sequentially with no rollback; a failure after the post
// hash is written surfaces ErrPartialWrite.
func (d *Database) CreatePost(ctx context.Context, author, content, replyTo string) (*models.Post, error) {
	uid, err := d.FindUID(ctx, author)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UID:       uid,
		Name:      author,
		Content:   content,
		Timestamp: time.Now(),
	}
	if replyTo != "" {
		replyUID, err := d.FindUID(ctx, replyTo)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		if err == nil {
			post.ReplyUID = replyUID
			post.ReplyName = replyTo
		}
	}

	pid, err := d.nextID(ctx, keyGlobalPID)
	if err != nil {
		return nil, err
	}
	post.PID = pid

	if err := d.store.HSet(ctx, postKey(pid), post.AsMap()); err != nil {
		return nil, fmt.Errorf("write post %s: %w", pid, err)
	}
	if err := d.store.LPush(ctx, postsKey(uid), pid); err != nil {
		return nil, fmt.Errorf("%w: posts list of uid %s: %w", ErrPartialWrite, uid, err)
	}
	if err := d.store.LPush(ctx, keyTimeline, pid); err != nil {
		return nil, fmt.Errorf("%w: timeline push for post %s: %w", ErrPartialWrite, pid, err)
	}

	// Mention fan-out scans the raw content; names that don't resolve to a
	// user are silently skipped.
	for _, mention := range extractMentions(content) {
		mentionUID, err := d.FindUID(ctx, mention)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: resolve mention @%s: %w", ErrPartialWrite, mention, err)
		}
		if err := d.store.LPush(ctx, mentionsKey(mentionUID), pid); err != nil {
			return nil, fmt.Errorf("%w: mentions list of uid %s: %w", ErrPartialWrite, mentionUID, err)
		}
	}

	return post, nil
}

// GetPosts returns a page of the user's own posts, newest first, with
// mention links rendered.
func (d *Database) GetPosts(ctx context.Context, uid string, r models.Range) ([]*models.Post, error) {
	return d.postPage(ctx, postsKey(uid), r, true)
}

// Timeline returns a page of the global timeline, newest first, with
// mention links rendered.
func (d *Database) Timeline(ctx context.Context, r models.Range) ([]*models.Post, error) {
	return d.postPage(ctx, keyTimeline, r, true)
}

// GetMentions returns a page of posts mentioning the user. Content is left
// raw: the mention feed shows what was written, not the rendered form.
func (d *Database) GetMentions(ctx context.Context, uid string, r models.Range) ([]*models.Post, error) {
	return d.postPage(ctx, mentionsKey(uid), r, false)
}

// postPage range-reads a pid list and hydrates each id. Hydration is one
// point lookup per pid, in list order: the read order is the feed order, so
// these stay sequential and unbatched. Pids whose hash is gone (debris from
// an interrupted fan-out) are skipped rather than failing the page.
func (d *Database) postPage(ctx context.Context, listKey string, r models.Range, render bool) ([]*models.Post, error) {
	pids, err := d.store.LRange(ctx, listKey, r.Begin, r.End)
	if err != nil {
		return nil, fmt.Errorf("range %s: %w", listKey, err)
	}

	posts := make([]*models.Post, 0, len(pids))
	for _, pid := range pids {
		post, err := d.findPost(ctx, pid)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if render {
			post.Content = renderMentions(post.Content)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// findPost hydrates a pid into a full post: hash read plus display-name
// resolution for the author and, when present, the reply target.
func (d *Database) findPost(ctx context.Context, pid string) (*models.Post, error) {
	fields, err := d.store.HGetAll(ctx, postKey(pid))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read post %s: %w", pid, err)
	}

	post := models.PostFromMap(pid, fields)

	name, err := d.FindName(ctx, post.UID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	post.Name = name

	if post.ReplyUID != "" {
		replyName, err := d.FindName(ctx, post.ReplyUID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		post.ReplyName = replyName
	}
	return post, nil
}
