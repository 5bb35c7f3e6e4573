package ports

import "context"

// TokenStore guarda el bearer token de la sesión.
// Get devuelve ("", false) cuando no hay token.
type TokenStore interface {
	Set(token string)
	Get() (string, bool)
	Clear()
}

type tokenStoreKey struct{}

// WithTokenStore asocia el TokenStore de la petición en curso al contexto.
// El cliente del backend lo usa para decorar cada llamada con el token.
func WithTokenStore(ctx context.Context, store TokenStore) context.Context {
	return context.WithValue(ctx, tokenStoreKey{}, store)
}

// TokenStoreFrom recupera el TokenStore del contexto, si existe.
func TokenStoreFrom(ctx context.Context) (TokenStore, bool) {
	if ctx == nil {
		return nil, false
	}
	s, ok := ctx.Value(tokenStoreKey{}).(TokenStore)
	return s, ok && s != nil
}
