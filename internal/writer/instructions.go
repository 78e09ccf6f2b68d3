package writer

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"codeberg.org/branchadmin/server/internal/logger"
)

const (
	replyInstructionsFile     = "reply.txt"
	marketingInstructionsFile = "marketing.txt"
)

// returns DefaultInstructions for every tenant
type StaticInstructions struct{}

func (StaticInstructions) ReplyInstructions(context.Context, string) string {
	return DefaultInstructions
}

func (StaticInstructions) MarketingInstructions(context.Context, string) string {
	return DefaultInstructions
}

// reads <dir>/<tenant>/reply.txt and marketing.txt, caching what it found
type FileInstructions struct {
	dir string

	mu    sync.RWMutex
	cache map[string]string
}

func NewFileInstructions(dir string) *FileInstructions {
	return &FileInstructions{
		dir:   dir,
		cache: make(map[string]string),
	}
}

func (f *FileInstructions) ReplyInstructions(ctx context.Context, tenant string) string {
	return f.load(ctx, tenant, replyInstructionsFile)
}

func (f *FileInstructions) MarketingInstructions(ctx context.Context, tenant string) string {
	return f.load(ctx, tenant, marketingInstructionsFile)
}

func (f *FileInstructions) load(ctx context.Context, tenant, name string) string {
	if f.dir == "" || !validTenant(tenant) {
		return DefaultInstructions
	}

	path := filepath.Join(f.dir, tenant, name)

	f.mu.RLock()
	cached, ok := f.cache[path]
	f.mu.RUnlock()

	if ok {
		return cached
	}

	text := DefaultInstructions

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if trimmed := strings.TrimSpace(string(content)); trimmed != "" {
			text = trimmed
		}
	case errors.Is(err, fs.ErrNotExist):
		logger.FromContext(ctx).Debug("no instructions on file", "tenant", tenant, "file", name)
	default:
		// unreadable files are retried on the next call
		logger.FromContext(ctx).Warn("failed to read instructions", "path", path, "error", err)
		return DefaultInstructions
	}

	f.mu.Lock()
	f.cache[path] = text
	f.mu.Unlock()

	return text
}

// forget cached instructions so edits on disk are picked up
func (f *FileInstructions) Reset() {
	f.mu.Lock()
	f.cache = make(map[string]string)
	f.mu.Unlock()
}

func validTenant(tenant string) bool {
	if tenant == "" || tenant == "." || tenant == ".." {
		return false
	}

	return !strings.ContainsAny(tenant, `/\`)
}
