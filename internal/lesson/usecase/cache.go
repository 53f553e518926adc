package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"classhub-api/internal/lesson"
	postgresPkg "classhub-api/pkg/postgre"
)

const (
	// listCacheTTL keeps list pages hot briefly; correctness comes from the
	// version key, the TTL only bounds memory.
	listCacheTTL = time.Minute

	cacheVersionKey = "lessons:list:ver"
)

// listVersion returns the current cache generation. Mutations bump it, which
// orphans every key minted under the old generation; orphans age out via TTL.
func (uc *usecase) listVersion(ctx context.Context) string {
	ver, err := uc.cache.Get(ctx, cacheVersionKey)
	if err != nil {
		return "0"
	}
	return ver
}

func (uc *usecase) listCacheKey(ctx context.Context, ip lesson.GetInput) string {
	pq := ip.PaginateQuery
	pq.Adjust()
	return fmt.Sprintf("lessons:list:%s:%d:%d:%s:%s",
		uc.listVersion(ctx), pq.Page, pq.Limit, ip.Filter.Subject, ip.Filter.AuthorID)
}

func (uc *usecase) getCachedList(ctx context.Context, key string) (lesson.GetLessonOutput, bool) {
	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		return lesson.GetLessonOutput{}, false
	}

	var out lesson.GetLessonOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		uc.l.Warnf(ctx, "internal.lesson.usecase.getCachedList.Unmarshal: %v", err)
		return lesson.GetLessonOutput{}, false
	}
	return out, true
}

func (uc *usecase) storeCachedList(ctx context.Context, key string, out lesson.GetLessonOutput) {
	raw, err := json.Marshal(out)
	if err != nil {
		uc.l.Warnf(ctx, "internal.lesson.usecase.storeCachedList.Marshal: %v", err)
		return
	}
	if err := uc.cache.Set(ctx, key, string(raw), listCacheTTL); err != nil {
		uc.l.Warnf(ctx, "internal.lesson.usecase.storeCachedList.Set: %v", err)
	}
}

func (uc *usecase) invalidateListCache(ctx context.Context) {
	if err := uc.cache.Set(ctx, cacheVersionKey, postgresPkg.NewUUID(), 0); err != nil {
		uc.l.Warnf(ctx, "internal.lesson.usecase.invalidateListCache: %v", err)
	}
}
