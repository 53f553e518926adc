package http

import (
	"time"

	"classhub-api/internal/lesson"
	"classhub-api/internal/model"
	"classhub-api/pkg/paginator"
)

type lessonResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorId"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newLessonResp(l model.Lesson) lessonResp {
	return lessonResp{
		ID:        l.ID,
		Title:     l.Title,
		Subject:   l.Subject,
		Content:   l.Content,
		AuthorID:  l.AuthorID,
		Published: l.Published,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

type createReq struct {
	Title     string `json:"title"`
	Subject   string `json:"subject"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

func (r createReq) toInput() lesson.CreateInput {
	return lesson.CreateInput{
		Title:     r.Title,
		Subject:   r.Subject,
		Content:   r.Content,
		Published: r.Published,
	}
}

type updateReq struct {
	Title     *string `json:"title"`
	Subject   *string `json:"subject"`
	Content   *string `json:"content"`
	Published *bool   `json:"published"`
}

func (r updateReq) toInput(id string) lesson.UpdateInput {
	return lesson.UpdateInput{
		ID:        id,
		Title:     r.Title,
		Subject:   r.Subject,
		Content:   r.Content,
		Published: r.Published,
	}
}

type getReq struct {
	Subject  string `form:"subject"`
	AuthorID string `form:"author_id"`
	paginator.PaginateQuery
}

func (r getReq) toInput() lesson.GetInput {
	return lesson.GetInput{
		Filter: lesson.Filter{
			Subject:  r.Subject,
			AuthorID: r.AuthorID,
		},
		PaginateQuery: r.PaginateQuery,
	}
}

type listResp struct {
	Lessons   []lessonResp                `json:"lessons"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListResp(out lesson.GetLessonOutput) listResp {
	lessons := make([]lessonResp, len(out.Lessons))
	for i, l := range out.Lessons {
		lessons[i] = newLessonResp(l)
	}
	return listResp{
		Lessons:   lessons,
		Paginator: out.Paginator.ToResponse(),
	}
}
