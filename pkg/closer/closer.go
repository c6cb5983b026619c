package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// allClosed - индекс, означающий, что все ресурсы закрылись в штатном режиме
const allClosed = -1

// Func закрывает один ресурс.
type Func func(ctx context.Context) error

type resource struct {
	name  string
	close Func
}

// Closer хранит зарегистрированные ресурсы приложения и закрывает их в обратном порядке (LIFO).
type Closer struct {
	mu            sync.Mutex
	once          sync.Once
	resources     []resource
	forcedTimeout time.Duration
}

// New создаёт Closer. forcedTimeout ограничивает принудительное закрытие ресурсов,
// не успевших закрыться до отмены контекста Close. Ноль означает значение по умолчанию.
func New(forcedTimeout time.Duration) *Closer {
	const defaultForcedTimeout = 2 * time.Second

	if forcedTimeout <= 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{forcedTimeout: forcedTimeout}
}

// Add регистрирует ресурс под именем name.
func (c *Closer) Add(name string, f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resources = append(c.resources, resource{name: name, close: f})
}

// AddSimple регистрирует ресурс, закрытие которого не зависит от контекста.
func (c *Closer) AddSimple(name string, f func() error) {
	c.Add(name, func(context.Context) error {
		return f()
	})
}

// Close закрывает ресурсы в порядке LIFO. Повторные вызовы ничего не делают.
// Если ctx отменяется раньше, оставшиеся ресурсы закрываются параллельно с forcedTimeout.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		resources := make([]resource, len(c.resources))
		copy(resources, c.resources)
		c.mu.Unlock()

		stopIdx, msgs := c.closeInOrder(ctx, resources)
		if stopIdx == allClosed {
			if len(msgs) > 0 {
				err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(msgs, "\n"))
			}
			return
		}

		msgs = append(msgs, c.forceClose(resources[:stopIdx+1])...)
		err = fmt.Errorf(
			"shutdown interrupted after %d/%d resources:\n%s",
			len(resources)-1-stopIdx,
			len(resources),
			strings.Join(msgs, "\n"),
		)
	})

	return err
}

func (c *Closer) closeInOrder(ctx context.Context, resources []resource) (int, []string) {
	var msgs []string
	for i := len(resources) - 1; i >= 0; i-- {
		res := resources[i]
		done := make(chan error, 1)

		go func() {
			done <- res.close(ctx)
		}()

		select {
		case err := <-done:
			if err != nil {
				msgs = append(msgs, fmt.Sprintf("[!] %s: %v", res.name, err))
			}
		case <-ctx.Done():
			return i, msgs
		}
	}

	return allClosed, msgs
}

func (c *Closer) forceClose(resources []resource) []string {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		msgs []string
	)

	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	for _, res := range resources {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := res.close(ctx); err != nil {
				mu.Lock()
				msgs = append(msgs, fmt.Sprintf("[FORCED] %s: %v", res.name, err))
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return msgs
}
