package repository

import (
	"context"

	"github.com/kmsol/fabtrack/internal/domain/notice"
)

// NoticeRepository provides read-only access to the notice board.
type NoticeRepository interface {
	List(ctx context.Context) ([]notice.Notice, error)
}
