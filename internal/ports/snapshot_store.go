package ports

import "context"

// SnapshotStore — персистентное key-value хранилище снимков страниц.
// Значения — сериализованный JSON PaginatedContent; ключ совпадает с ключом кэша.
type SnapshotStore interface {
	// Load — (data, true, nil) при наличии ключа, (nil, false, nil) при отсутствии.
	Load(ctx context.Context, key string) ([]byte, bool, error)

	// Save — записать/перезаписать снимок.
	Save(ctx context.Context, key string, data []byte) error

	// Close — освободить ресурсы хранилища.
	Close() error
}
