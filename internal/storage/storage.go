package storage

import (
	"context"
	"io"
)

// Storage は画像ファイルの保存・削除を抽象化するインターフェース。
// ローカルファイルシステム実装の他、S3 等に差し替え可能。
type Storage interface {
	// Save はファイルを保存し、公開 URL を返す。
	// key はストレージ内の一意なファイル名 (例: "image-1712345678901.png")。
	Save(ctx context.Context, key string, data io.Reader) (url string, err error)

	// Delete は key に対応するファイルを削除する。存在しない key は no-op。
	Delete(ctx context.Context, key string) error
}
