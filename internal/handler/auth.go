package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type SessionClaims struct {
	Member  string `json:"member"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

const sessionCookieName = "__vacation_tracker_token"

// ValidatePIN checks a member's PIN and hands out a session cookie.
// Placeholder access control for the UI, not a real authentication system:
// no other route demands the cookie.
func (h *Handler) ValidatePIN(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Member string `json:"member" validate:"required"`
		PIN    string `json:"pin" validate:"required,len=4,numeric"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	doc, err := h.repository.Document()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !doc.HasMember(req.Member) {
		h.writeJSON(w, r, http.StatusOK, map[string]any{"valid": false})
		return
	}

	locked, err := h.registerPINAttempt(r.Context(), req.Member)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if locked {
		h.errorResponse(w, r, http.StatusTooManyRequests, "too many failed attempts, try again later")
		return
	}

	isAdmin := doc.IsAdmin(req.Member)
	pinHash := h.memberPINHash
	if isAdmin {
		pinHash = h.adminPINHash
	}

	if err := bcrypt.CompareHashAndPassword(pinHash, []byte(req.PIN)); err != nil {
		h.writeJSON(w, r, http.StatusOK, map[string]any{"valid": false})
		return
	}

	h.clearPINAttempts(r.Context(), req.Member)

	expiration := time.Now().Add(time.Duration(h.config.JWT.Expiration) * time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		Member:  req.Member,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   req.Member,
		},
	})
	ss, err := token.SignedString([]byte(h.config.JWT.Secret))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    ss,
		Expires:  expiration,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
	}
	if h.config.Environment == "production" {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteStrictMode
	}
	http.SetCookie(w, cookie)

	h.writeJSON(w, r, http.StatusOK, map[string]any{
		"valid":   true,
		"member":  req.Member,
		"isAdmin": isAdmin,
	})
}

// registerPINAttempt bumps the member's expiring attempt counter and reports
// whether the lockout threshold was passed. Throttling is off without redis.
func (h *Handler) registerPINAttempt(ctx context.Context, member string) (bool, error) {
	if h.redisClient == nil {
		return false, nil
	}

	key := fmt.Sprintf("pin_attempts:%s", member)
	attempts, err := h.redisClient.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if attempts == 1 {
		if err := h.redisClient.Expire(ctx, key, time.Duration(h.config.Auth.LockoutSeconds)*time.Second).Err(); err != nil {
			return false, err
		}
	}
	return attempts > int64(h.config.Auth.MaxPINAttempts), nil
}

func (h *Handler) clearPINAttempts(ctx context.Context, member string) {
	if h.redisClient == nil {
		return
	}
	h.redisClient.Del(ctx, fmt.Sprintf("pin_attempts:%s", member))
}
