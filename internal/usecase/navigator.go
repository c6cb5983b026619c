package usecase

import (
	"sync"

	"github.com/DRSN-tech/bakery-backend/internal/cfg"
	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
)

// Navigator хранит текущий экран витрины и признак админ-сессии.
// Состояние не сохраняется и при старте равно (home, false).
type Navigator struct {
	mu      sync.RWMutex
	current domain.View
	admin   bool
	creds   cfg.AdminCfg
	logger  logger.Logger
}

func NewNavigator(creds cfg.AdminCfg, logger logger.Logger) *Navigator {
	return &Navigator{
		current: domain.ViewHome,
		creds:   creds,
		logger:  logger,
	}
}

func (n *Navigator) Navigate(view domain.View) error {
	const op = "Navigator.Navigate"

	if _, ok := domain.ParseView(string(view)); !ok {
		return e.Wrap(op, e.ErrUnknownView)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.current = view

	return nil
}

// Current возвращает запрошенный экран, даже если он сейчас не может быть показан.
func (n *Navigator) Current() domain.View {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.current
}

// Screen возвращает экран, который нужно показать. Без админ-сессии вместо
// admin показывается login, запрос admin при этом сохраняется.
func (n *Navigator) Screen() domain.View {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.current == domain.ViewAdmin && !n.admin {
		return domain.ViewLogin
	}
	if _, ok := domain.ParseView(string(n.current)); !ok {
		return domain.ViewHome
	}

	return n.current
}

// Login сверяет пару логин/пароль с настроенной. Это не механизм безопасности.
func (n *Navigator) Login(username, password string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if username != n.creds.Username || password != n.creds.Password {
		n.logger.Warnf("admin login failed, username: %s", username)
		return false
	}

	n.admin = true
	n.current = domain.ViewAdmin
	n.logger.Infof("admin session started")

	return true
}

func (n *Navigator) Logout() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.admin = false
	n.current = domain.ViewHome
}

func (n *Navigator) IsAdmin() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.admin
}
