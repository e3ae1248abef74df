package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	cachebolt "github.com/Gunvolt24/trickbook/internal/cache/bolt"
	"github.com/Gunvolt24/trickbook/internal/domain"
	"github.com/Gunvolt24/trickbook/internal/usecase"
)

// CLI для просмотра и чистки локального хранилища снимков (bolt).
func main() {
	dbPath := flag.String("db", "data/snapshots.db", "path to bolt snapshot file")
	list := flag.Bool("list", false, "list snapshot keys")
	user := flag.String("user", "", "with -list: only keys of this user")
	get := flag.String("get", "", "print snapshot stored under the key")
	purgeStale := flag.Bool("purge-stale", false, "delete snapshots of other schema versions")
	flag.Parse()

	if !*list && *get == "" && !*purgeStale {
		flag.Usage()
		os.Exit(2)
	}

	store, err := cachebolt.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := run(context.Background(), store, *list, *user, *get, *purgeStale); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, store *cachebolt.SnapshotStore, list bool, user, get string, purgeStale bool) error {
	if list {
		prefix := ""
		if user != "" {
			prefix = usecase.UserKeyPrefix(user)
		}
		keys, err := store.Keys(prefix)
		if err != nil {
			return fmt.Errorf("list: %w", err)
		}
		for _, k := range keys {
			mark := ""
			if usecase.IsStaleKey(k) {
				mark = "\t(stale)"
			}
			fmt.Printf("%s%s\n", k, mark)
		}
		fmt.Fprintf(os.Stderr, "keys: %d\n", len(keys))
	}

	if get != "" {
		data, ok, err := store.Load(ctx, get)
		if err != nil {
			return fmt.Errorf("get: %w", err)
		}
		if !ok {
			return fmt.Errorf("key %q not found", get)
		}
		var page domain.PaginatedContent
		if err := json.Unmarshal(data, &page); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		out, _ := json.MarshalIndent(&page, "", "  ")
		fmt.Println(string(out))
	}

	if purgeStale {
		n, err := store.DeleteFunc(usecase.IsStaleKey)
		if err != nil {
			return fmt.Errorf("purge: %w", err)
		}
		fmt.Fprintf(os.Stderr, "purged: %d\n", n)
	}
	return nil
}
