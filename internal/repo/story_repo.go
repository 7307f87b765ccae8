package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"
	"github.com/lib/pq"

	"prepository/internal/model"
	"prepository/internal/pkg/dbutil"
	appErr "prepository/internal/pkg/errors"
)

var storyColumns = []string{"id", "user_id", "title", "categories", "situation", "action", "result", "ctime"}

type StoryRepo struct {
	db *sql.DB
}

func NewStoryRepo(db *sql.DB) *StoryRepo {
	return &StoryRepo{db: db}
}

func (r *StoryRepo) Create(ctx context.Context, story *model.Story) error {
	data := map[string]interface{}{
		"id":         story.ID,
		"user_id":    story.UserID,
		"title":      story.Title,
		"categories": pq.Array(story.Categories),
		"situation":  story.Situation,
		"action":     story.Action,
		"result":     story.Result,
		"ctime":      story.Ctime,
	}
	sqlStr, args, err := builder.BuildInsert("stories", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *StoryRepo) ListByUser(ctx context.Context, userID string) ([]model.Story, error) {
	where := map[string]interface{}{
		"user_id":  userID,
		"_orderby": "ctime desc, id desc",
	}
	sqlStr, args, err := builder.BuildSelect("stories", where, storyColumns)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	stories := make([]model.Story, 0)
	for rows.Next() {
		var story model.Story
		if err := scanStory(rows, &story); err != nil {
			return nil, err
		}
		stories = append(stories, story)
	}
	return stories, rows.Err()
}

// GetByID scopes the lookup to the owner, so a story that exists but
// belongs to someone else is indistinguishable from an absent one.
func (r *StoryRepo) GetByID(ctx context.Context, userID, storyID string) (*model.Story, error) {
	where := map[string]interface{}{
		"id":      storyID,
		"user_id": userID,
	}
	sqlStr, args, err := builder.BuildSelect("stories", where, storyColumns)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	var story model.Story
	if err := scanStory(rows, &story); err != nil {
		return nil, err
	}
	return &story, nil
}

func (r *StoryRepo) Update(ctx context.Context, userID, storyID string, update map[string]interface{}) error {
	if categories, ok := update["categories"].([]string); ok {
		update["categories"] = pq.Array(categories)
	}
	where := map[string]interface{}{
		"id":      storyID,
		"user_id": userID,
	}
	sqlStr, args, err := builder.BuildUpdate("stories", where, update)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func (r *StoryRepo) Delete(ctx context.Context, userID, storyID string) error {
	where := map[string]interface{}{
		"id":      storyID,
		"user_id": userID,
	}
	sqlStr, args, err := builder.BuildDelete("stories", where)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func scanStory(rows *sql.Rows, story *model.Story) error {
	return rows.Scan(
		&story.ID,
		&story.UserID,
		&story.Title,
		pq.Array(&story.Categories),
		&story.Situation,
		&story.Action,
		&story.Result,
		&story.Ctime,
	)
}
