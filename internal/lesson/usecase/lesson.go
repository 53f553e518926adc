package usecase

import (
	"context"

	"classhub-api/internal/lesson"
	"classhub-api/internal/lesson/repository"
	"classhub-api/internal/model"
)

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip lesson.CreateInput) (lesson.LessonOutput, error) {
	if !canAuthor(sc) {
		return lesson.LessonOutput{}, lesson.ErrForbidden
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Lesson: model.Lesson{
			Title:     ip.Title,
			Subject:   ip.Subject,
			Content:   ip.Content,
			AuthorID:  sc.UserID,
			Published: ip.Published,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.lesson.usecase.Create: %v", err)
		return lesson.LessonOutput{}, err
	}

	uc.invalidateListCache(ctx)
	return lesson.LessonOutput{Lesson: created}, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip lesson.UpdateInput) (lesson.LessonOutput, error) {
	lsn, err := uc.mutableLesson(ctx, sc, ip.ID)
	if err != nil {
		return lesson.LessonOutput{}, err
	}

	if ip.Title != nil {
		lsn.Title = *ip.Title
	}
	if ip.Subject != nil {
		lsn.Subject = *ip.Subject
	}
	if ip.Content != nil {
		lsn.Content = *ip.Content
	}
	if ip.Published != nil {
		lsn.Published = *ip.Published
	}

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Lesson: lsn})
	if err != nil {
		if err == repository.ErrNotFound {
			return lesson.LessonOutput{}, lesson.ErrLessonNotFound
		}
		uc.l.Errorf(ctx, "internal.lesson.usecase.Update: %v", err)
		return lesson.LessonOutput{}, err
	}

	uc.invalidateListCache(ctx)
	return lesson.LessonOutput{Lesson: updated}, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.mutableLesson(ctx, sc, id); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if err == repository.ErrNotFound {
			return lesson.ErrLessonNotFound
		}
		uc.l.Errorf(ctx, "internal.lesson.usecase.Delete: %v", err)
		return err
	}

	uc.invalidateListCache(ctx)
	return nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (lesson.LessonOutput, error) {
	lsn, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return lesson.LessonOutput{}, lesson.ErrLessonNotFound
		}
		uc.l.Errorf(ctx, "internal.lesson.usecase.Detail: %v", err)
		return lesson.LessonOutput{}, err
	}

	return lesson.LessonOutput{Lesson: lsn}, nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip lesson.GetInput) (lesson.GetLessonOutput, error) {
	key := uc.listCacheKey(ctx, ip)
	if out, ok := uc.getCachedList(ctx, key); ok {
		return out, nil
	}

	lessons, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter: repository.Filter{
			Subject:  ip.Filter.Subject,
			AuthorID: ip.Filter.AuthorID,
		},
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.lesson.usecase.Get: %v", err)
		return lesson.GetLessonOutput{}, err
	}

	out := lesson.GetLessonOutput{
		Lessons:   lessons,
		Paginator: pag,
	}
	uc.storeCachedList(ctx, key, out)
	return out, nil
}

// mutableLesson loads a lesson and checks the caller may mutate it.
// Teachers own their lessons; admins own everything.
func (uc *usecase) mutableLesson(ctx context.Context, sc model.Scope, id string) (model.Lesson, error) {
	if !canAuthor(sc) {
		return model.Lesson{}, lesson.ErrForbidden
	}

	lsn, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Lesson{}, lesson.ErrLessonNotFound
		}
		uc.l.Errorf(ctx, "internal.lesson.usecase.mutableLesson: %v", err)
		return model.Lesson{}, err
	}

	if sc.Role != model.RoleAdmin && lsn.AuthorID != sc.UserID {
		return model.Lesson{}, lesson.ErrForbidden
	}

	return lsn, nil
}

func canAuthor(sc model.Scope) bool {
	return sc.Role == model.RoleAdmin || sc.Role == model.RoleTeacher
}
