package repository

// Durable storage keys. They match the keys the storefront has always
// written, so existing browser data keeps loading.
const (
	CartKey     = "boutique-cart"
	AccountsKey = "boutique-users"
	SessionKey  = "boutique-user"
)
