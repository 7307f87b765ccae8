package service

import (
	"context"

	"prepository/internal/model"
	appErr "prepository/internal/pkg/errors"
	"prepository/internal/pkg/timeutil"
	"prepository/internal/repo"
)

type StoryService struct {
	stories *repo.StoryRepo
}

func NewStoryService(stories *repo.StoryRepo) *StoryService {
	return &StoryService{stories: stories}
}

type StoryCreateInput struct {
	Title      string
	Categories []string
	Situation  string
	Action     string
	Result     string
}

// StoryPatch carries only the fields the caller supplied; nil means
// "leave as is".
type StoryPatch struct {
	Title      *string
	Categories *[]string
	Situation  *string
	Action     *string
	Result     *string
}

func (s *StoryService) Create(ctx context.Context, userID string, input StoryCreateInput) (*model.Story, error) {
	if input.Title == "" {
		return nil, appErr.Invalidf("title is required")
	}
	if err := validateCategories(input.Categories); err != nil {
		return nil, err
	}
	story := &model.Story{
		ID:         newID(),
		UserID:     userID,
		Title:      input.Title,
		Categories: input.Categories,
		Situation:  input.Situation,
		Action:     input.Action,
		Result:     input.Result,
		Ctime:      timeutil.NowUnix(),
	}
	if err := s.stories.Create(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *StoryService) List(ctx context.Context, userID string) ([]model.Story, error) {
	return s.stories.ListByUser(ctx, userID)
}

func (s *StoryService) Get(ctx context.Context, userID, storyID string) (*model.Story, error) {
	return s.stories.GetByID(ctx, userID, storyID)
}

func (s *StoryService) Update(ctx context.Context, userID, storyID string, patch StoryPatch) (*model.Story, error) {
	if _, err := s.stories.GetByID(ctx, userID, storyID); err != nil {
		return nil, err
	}
	update, err := buildStoryUpdate(patch)
	if err != nil {
		return nil, err
	}
	if err := s.stories.Update(ctx, userID, storyID, update); err != nil {
		return nil, err
	}
	return s.stories.GetByID(ctx, userID, storyID)
}

func (s *StoryService) Delete(ctx context.Context, userID, storyID string) error {
	if _, err := s.stories.GetByID(ctx, userID, storyID); err != nil {
		return err
	}
	return s.stories.Delete(ctx, userID, storyID)
}

// buildStoryUpdate filters the patch down to fields that are present and
// valid. Text fields only overwrite with non-empty values; categories
// only overwrite with a non-empty, all-non-empty label list.
func buildStoryUpdate(patch StoryPatch) (map[string]interface{}, error) {
	update := make(map[string]interface{})
	if patch.Title != nil && *patch.Title != "" {
		update["title"] = *patch.Title
	}
	if patch.Categories != nil && validateCategories(*patch.Categories) == nil {
		update["categories"] = *patch.Categories
	}
	if patch.Situation != nil && *patch.Situation != "" {
		update["situation"] = *patch.Situation
	}
	if patch.Action != nil && *patch.Action != "" {
		update["action"] = *patch.Action
	}
	if patch.Result != nil && *patch.Result != "" {
		update["result"] = *patch.Result
	}
	if len(update) == 0 {
		return nil, appErr.Invalidf("nothing to update")
	}
	return update, nil
}

func validateCategories(categories []string) error {
	if len(categories) == 0 {
		return appErr.Invalidf("at least one category is required")
	}
	for _, category := range categories {
		if category == "" {
			return appErr.Invalidf("categories must not contain empty labels")
		}
	}
	return nil
}
