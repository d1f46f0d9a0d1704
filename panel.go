package mdpanel

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/riverfjs/mdpanel/internal/store"
)

// AutosaveKey is the default key a Panel saves its buffer under.
const AutosaveKey = store.AutosaveKey

// ErrNotFound is returned by a Store when a key has no value.
var ErrNotFound = store.ErrNotFound

// Store persists panel buffers. *store.Store satisfies it.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Panel 是绑定持久化存储的编辑缓冲区
//
// 每次 Update 都会重新渲染并保存原始文本，Restore 在启动时取回上次保存的内容。
// Panel 可以被多个 goroutine 并发使用。
type Panel struct {
	mu    sync.Mutex
	store Store
	key   string
	opts  []Option
	text  string
	doc   *Document
}

// NewPanel 创建编辑面板
//
// 参数:
//   - s: 持久化存储，nil 表示不保存
//   - key: 存储键，空字符串使用 AutosaveKey
//   - opts: 每次渲染使用的转换选项
func NewPanel(s Store, key string, opts ...Option) *Panel {
	if key == "" {
		key = AutosaveKey
	}
	return &Panel{store: s, key: key, opts: opts}
}

// Update replaces the buffer with text, re-renders it and saves the raw text.
// The rendered document is returned even when saving fails.
func (p *Panel) Update(ctx context.Context, text string) (*Document, error) {
	doc, err := Process(ctx, text, p.opts...)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.text = text
	p.doc = doc

	if p.store != nil {
		if err := p.store.Set(ctx, p.key, []byte(text)); err != nil {
			return doc, fmt.Errorf("autosave: %w", err)
		}
	}
	return doc, nil
}

// Restore loads the saved buffer. A missing or empty entry leaves the panel
// empty and returns (nil, nil).
func (p *Panel) Restore(ctx context.Context) (*Document, error) {
	if p.store == nil {
		return nil, nil
	}
	data, err := p.store.Get(ctx, p.key)
	if errors.Is(err, store.ErrNotFound) || (err == nil && len(data) == 0) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}

	doc, err := Process(ctx, string(data), p.opts...)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.text = string(data)
	p.doc = doc
	return doc, nil
}

// Clear empties the buffer and removes the saved entry.
func (p *Panel) Clear(ctx context.Context) error {
	p.mu.Lock()
	p.text = ""
	p.doc = nil
	p.mu.Unlock()

	if p.store == nil {
		return nil
	}
	if err := p.store.Delete(ctx, p.key); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}

// Text returns the current buffer.
func (p *Panel) Text() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.text
}

// Document returns the last rendered document, or nil before the first
// Update or Restore.
func (p *Panel) Document() *Document {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.doc
}
