// Package auth provides the session-token identity provider.
package auth

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"voltfeed/config"
	"voltfeed/internal/domain/entity"
	"voltfeed/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/fx"
)

const defaultCheckInterval = 5 * time.Second

// jwtIdentityProvider watches a session-token file and derives the identity
// state from the JWT it holds. The platform writes and removes the file on
// login and logout; this provider turns those writes into identity
// transitions.
type jwtIdentityProvider struct {
	tokenPath     string
	checkInterval time.Duration
	logger        *slog.Logger

	mu          sync.RWMutex
	current     entity.IdentityState
	subscribers map[int]chan entity.IdentityState
	nextSubID   int
}

// IdentityParams holds dependencies for the identity provider, injected by Fx.
type IdentityParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewJWTIdentityProvider creates the file-watching identity provider and
// starts its check loop on the Fx lifecycle.
func NewJWTIdentityProvider(params IdentityParams) service.IdentityProvider {
	interval := params.Config.Identity.CheckInterval
	if interval <= 0 {
		interval = defaultCheckInterval
	}

	provider := &jwtIdentityProvider{
		tokenPath:     params.Config.Identity.TokenPath,
		checkInterval: interval,
		logger:        params.Logger,
		current:       initialIdentity(params.Config.Identity.TokenPath, params.Logger),
		subscribers:   make(map[int]chan entity.IdentityState),
	}

	loopCtx, cancel := context.WithCancel(params.Ctx)
	done := make(chan struct{})

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				provider.run(loopCtx)
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-ctx.Done():
			}

			return nil
		},
	})

	return provider
}

func initialIdentity(tokenPath string, logger *slog.Logger) entity.IdentityState {
	state, err := readIdentity(tokenPath)
	if err != nil {
		logger.Debug("[Identity] No valid session token at startup",
			slog.String("error", err.Error()),
		)

		return entity.Anonymous
	}

	return state
}

func (p *jwtIdentityProvider) Current() entity.IdentityState {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.current
}

// Subscribe delivers the current state first, then every transition. The
// channel closes when ctx ends or the cancel function runs.
func (p *jwtIdentityProvider) Subscribe(ctx context.Context) (<-chan entity.IdentityState, func()) {
	ch := make(chan entity.IdentityState, 4)

	p.mu.Lock()
	id := p.nextSubID
	p.nextSubID++
	p.subscribers[id] = ch
	ch <- p.current
	p.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subscribers, id)
			p.mu.Unlock()
			close(ch)
		})
	}

	go func() {
		<-ctx.Done()
		cancel()
	}()

	return ch, cancel
}

func (p *jwtIdentityProvider) run(ctx context.Context) {
	ticker := time.NewTicker(p.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.check()
		}
	}
}

func (p *jwtIdentityProvider) check() {
	state, err := readIdentity(p.tokenPath)
	if err != nil {
		state = entity.Anonymous
	}

	p.mu.Lock()
	if state.Equal(p.current) {
		p.mu.Unlock()

		return
	}
	p.current = state
	subscribers := make([]chan entity.IdentityState, 0, len(p.subscribers))
	for _, ch := range p.subscribers {
		subscribers = append(subscribers, ch)
	}
	p.mu.Unlock()

	p.logger.Info("[Identity] State transition",
		slog.Bool("authenticated", state.Authenticated),
		slog.Int64("user_id", state.UserID),
	)

	for _, ch := range subscribers {
		select {
		case ch <- state:
		default:
			// Slow subscriber; it will catch up on the next transition.
		}
	}
}

// readIdentity reads the session-token file and extracts the user identity.
// The token signature belongs to the backend; only the subject and expiry
// are inspected here.
func readIdentity(tokenPath string) (entity.IdentityState, error) {
	if tokenPath == "" {
		return entity.Anonymous, os.ErrNotExist
	}

	raw, err := os.ReadFile(tokenPath)
	if err != nil {
		return entity.Anonymous, err
	}

	tokenString := strings.TrimSpace(string(raw))
	if tokenString == "" {
		return entity.Anonymous, jwt.ErrTokenMalformed
	}

	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return entity.Anonymous, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entity.Anonymous, jwt.ErrTokenInvalidClaims
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil && exp.Before(time.Now()) {
		return entity.Anonymous, jwt.ErrTokenExpired
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return entity.Anonymous, jwt.ErrTokenInvalidSubject
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return entity.Anonymous, jwt.ErrTokenInvalidSubject
	}

	return entity.IdentityState{UserID: userID, Authenticated: true}, nil
}
