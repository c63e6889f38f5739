package api

import (
	"context"
)

type keyType string

const adminIdentityKey keyType = "adminIdentity"

// AdminIdentity is the verified identity attached to admin requests by the
// auth middleware.
type AdminIdentity struct {
	UserID   string
	Username string
	Email    string
	Role     string
}

// ctxWithAdmin adds a verified admin identity to the context
func ctxWithAdmin(ctx context.Context, identity AdminIdentity) context.Context {
	return context.WithValue(ctx, adminIdentityKey, identity)
}

// adminFromCtx retrieves the admin identity set by the auth middleware.
func adminFromCtx(ctx context.Context) (AdminIdentity, bool) {
	identity, ok := ctx.Value(adminIdentityKey).(AdminIdentity)
	return identity, ok
}
