// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package identity implements the mock identity provider: an in-memory user
// registry, the single current actor, and a deliberately reversible session
// token. Passwords are stored as bcrypt hashes; everything else about the
// provider is intentionally simple, modeling a demo auth context rather than
// a hardened one.
package identity

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"agora/internal/models"
)

// Sentinel errors returned by provider operations.
var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("user not found")
	ErrUnauthenticated    = errors.New("not authenticated")
)

// ProfilePatch carries optional updates to the current user's profile.
// Nil fields are left untouched.
type ProfilePatch struct {
	Name   *string `json:"name,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
	Bio    *string `json:"bio,omitempty"`
}

// Provider owns the user registry and the current actor. One actor is
// active at a time, mirroring a single session.
type Provider struct {
	mu      sync.Mutex
	users   []*models.User
	current *models.User
	token   string
	now     func() time.Time
}

// NewProvider creates an empty identity provider.
func NewProvider() *Provider {
	return &Provider{now: time.Now}
}

// Signup registers a new user with role "user" and zero counters, binds
// them as the current actor, and issues a session token. The email must not
// already be registered; uniqueness is case-insensitive.
func (p *Provider) Signup(name, email, password string) (*models.User, string, error) {
	email = normalizeEmail(email)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.findByEmail(email) != nil {
		return nil, "", ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("signup: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		Avatar:       avatarURL(email),
		JoinDate:     p.now(),
	}
	p.users = append(p.users, user)
	p.bind(user)
	return user.Clone(), p.token, nil
}

// Login authenticates by email and password, binds the user as the current
// actor, and issues a session token. Unknown emails and wrong passwords
// fail identically, with ErrInvalidCredentials.
func (p *Provider) Login(email, password string) (*models.User, string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	user := p.findByEmail(normalizeEmail(email))
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	p.bind(user)
	return user.Clone(), p.token, nil
}

// Logout clears the current actor and discards the session token.
func (p *Provider) Logout() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = nil
	p.token = ""
}

// ResetPassword checks the email exists and signals success without
// actually rotating credentials. A real implementation would rotate and
// send a verifiable reset link.
func (p *Provider) ResetPassword(email string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.findByEmail(normalizeEmail(email)) == nil {
		return ErrNotFound
	}
	slog.Info("password reset requested", "email", email)
	return nil
}

// UpdateProfile merges the patch into the current user's record in place.
func (p *Provider) UpdateProfile(patch ProfilePatch) (*models.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return nil, ErrUnauthenticated
	}
	if patch.Name != nil {
		p.current.Name = *patch.Name
	}
	if patch.Avatar != nil {
		p.current.Avatar = *patch.Avatar
	}
	if patch.Bio != nil {
		p.current.Bio = *patch.Bio
	}
	return p.current.Clone(), nil
}

// Restore rebinds the actor referenced by a previously issued token. If the
// token does not decode or the user no longer exists, the provider stays
// unauthenticated and the token is discarded.
func (p *Provider) Restore(token string) (*models.User, error) {
	claims, err := DecodeToken(token)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	user := p.findByID(claims.ID)
	if user == nil {
		return nil, ErrNotFound
	}
	p.bind(user)
	return user.Clone(), nil
}

// Current returns the currently authenticated actor, or nil.
func (p *Provider) Current() *models.Actor {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return nil
	}
	return p.current.Actor()
}

// CurrentUser returns a copy of the full record of the current user, or nil.
func (p *Provider) CurrentUser() *models.User {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return nil
	}
	return p.current.Clone()
}

// Token returns the active session token, or "" when unauthenticated.
func (p *Provider) Token() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token
}

// UserByID returns a copy of the user with the given id, or nil. Used by
// presentation code to resolve author names and avatars.
func (p *Provider) UserByID(id uuid.UUID) *models.User {
	p.mu.Lock()
	defer p.mu.Unlock()

	if user := p.findByID(id); user != nil {
		return user.Clone()
	}
	return nil
}

// bind sets the current actor and issues a fresh token.
// Callers must hold the lock.
func (p *Provider) bind(user *models.User) {
	p.current = user
	p.token = EncodeToken(user.ID, user.Email)
}

// findByEmail returns the registered user with the given normalized email,
// or nil. Callers must hold the lock.
func (p *Provider) findByEmail(email string) *models.User {
	for _, u := range p.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// findByID returns the registered user with the given id, or nil.
// Callers must hold the lock.
func (p *Provider) findByID(id uuid.UUID) *models.User {
	for _, u := range p.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// normalizeEmail lower-cases and trims an email address so the uniqueness
// check cannot be dodged by case tricks.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// avatarURL derives a deterministic placeholder avatar for a new account.
func avatarURL(seed string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + seed
}
